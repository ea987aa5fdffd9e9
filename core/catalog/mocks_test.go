package catalog

import (
	"context"
	"sync"
	"time"

	"reels-app-api/core/domain"
)

// mockSource is a func-field implementation of VideoSource and ProfileSource
type mockSource struct {
	getVideosFunc    func(ctx context.Context, req domain.PageRequest) (*domain.FeedPage, error)
	toggleLikeFunc   func(ctx context.Context, videoID string) (*domain.VideoItem, error)
	toggleFollowFunc func(ctx context.Context, authorID string) (*domain.VideoItem, error)
	getProfileFunc   func(ctx context.Context, userID string) (*domain.UserProfile, error)
}

func (m *mockSource) GetVideos(ctx context.Context, req domain.PageRequest) (*domain.FeedPage, error) {
	if m.getVideosFunc != nil {
		return m.getVideosFunc(ctx, req)
	}
	return &domain.FeedPage{Items: []domain.VideoItem{}, Page: req.Page}, nil
}

func (m *mockSource) ToggleLike(ctx context.Context, videoID string) (*domain.VideoItem, error) {
	if m.toggleLikeFunc != nil {
		return m.toggleLikeFunc(ctx, videoID)
	}
	return &domain.VideoItem{ID: videoID}, nil
}

func (m *mockSource) ToggleFollow(ctx context.Context, authorID string) (*domain.VideoItem, error) {
	if m.toggleFollowFunc != nil {
		return m.toggleFollowFunc(ctx, authorID)
	}
	return &domain.VideoItem{AuthorID: authorID}, nil
}

func (m *mockSource) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if m.getProfileFunc != nil {
		return m.getProfileFunc(ctx, userID)
	}
	return &domain.UserProfile{ID: userID}, nil
}

// mapCache is a minimal in-memory Cache
type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte)}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// countingMetrics records SourceCall invocations
type countingMetrics struct {
	mu      sync.Mutex
	calls   map[string]int
	failure map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{calls: map[string]int{}, failure: map[string]int{}}
}

func (m *countingMetrics) PageLoaded(kind string, success bool) {}

func (m *countingMetrics) Mutation(action, outcome string) {}

func (m *countingMetrics) SourceCall(op string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[op]++
	if !success {
		m.failure[op]++
	}
}
