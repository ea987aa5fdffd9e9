package interaction

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"reels-app-api/core/domain"
)

// mockSource is a testify mock of VideoSource
type mockSource struct {
	mock.Mock
}

func (m *mockSource) GetVideos(ctx context.Context, req domain.PageRequest) (*domain.FeedPage, error) {
	args := m.Called(ctx, req)
	page, _ := args.Get(0).(*domain.FeedPage)
	return page, args.Error(1)
}

func (m *mockSource) ToggleLike(ctx context.Context, videoID string) (*domain.VideoItem, error) {
	args := m.Called(ctx, videoID)
	item, _ := args.Get(0).(*domain.VideoItem)
	return item, args.Error(1)
}

func (m *mockSource) ToggleFollow(ctx context.Context, authorID string) (*domain.VideoItem, error) {
	args := m.Called(ctx, authorID)
	item, _ := args.Get(0).(*domain.VideoItem)
	return item, args.Error(1)
}

// recordingReconciler keeps every reconcile call
type recordingReconciler struct {
	mu      sync.Mutex
	likes   []likeCall
	follows []followCall
}

type likeCall struct {
	id    string
	liked bool
	count int64
}

type followCall struct {
	authorID  string
	following bool
}

func (r *recordingReconciler) ReconcileLike(videoID string, liked bool, count int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.likes = append(r.likes, likeCall{videoID, liked, count})
}

func (r *recordingReconciler) ReconcileFollow(authorID string, following bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.follows = append(r.follows, followCall{authorID, following})
}

// mockLogger captures warn messages
type mockLogger struct {
	mu    sync.Mutex
	warns []map[string]interface{}
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (l *mockLogger) Warn(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fields)
}

// stubSharer returns a fixed share
type stubSharer struct {
	err error
}

func (s *stubSharer) CreateShare(ctx context.Context, videoID, baseURL string) (*domain.Share, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Share{ID: "share-1", VideoID: videoID, URL: baseURL + "/s/share-1"}, nil
}
