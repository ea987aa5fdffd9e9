package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"reels-app-api/core/domain"
)

var errNetwork = errors.New("network error")

// stubSource serves a fixed list and can fail or block chosen page loads
type stubSource struct {
	mu       sync.Mutex
	items    []domain.VideoItem
	requests []domain.PageRequest
	failNext int
	gate     chan struct{}
	held     chan struct{}
	started  chan struct{}
}

func newStubSource(n int) *stubSource {
	items := make([]domain.VideoItem, n)
	for i := range items {
		items[i] = domain.VideoItem{
			ID:              fmt.Sprintf("%d", i+1),
			AuthorID:        fmt.Sprintf("user_%d", i%3+1),
			LikeCount:       int64(100 * (i + 1)),
			DurationSeconds: 30,
		}
	}
	return &stubSource{items: items}
}

// block makes the next GetVideos call wait until release is called.
// Later calls are not blocked.
func (s *stubSource) block() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate = make(chan struct{})
	s.started = make(chan struct{})
}

func (s *stubSource) release() {
	s.mu.Lock()
	held := s.held
	s.held = nil
	s.mu.Unlock()
	close(held)
}

func (s *stubSource) waitStarted() {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	<-started
}

func (s *stubSource) GetVideos(ctx context.Context, req domain.PageRequest) (*domain.FeedPage, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	gate, started := s.gate, s.started
	if gate != nil {
		s.held = gate
		s.gate = nil
	}
	fail := s.failNext > 0
	if fail {
		s.failNext--
	}
	s.mu.Unlock()

	if gate != nil {
		close(started)
		<-gate
	}
	if fail {
		return nil, errNetwork
	}

	start := req.Start()
	page := &domain.FeedPage{Items: []domain.VideoItem{}, Page: req.Page}
	if start < len(s.items) {
		end := start + req.Limit
		if end > len(s.items) {
			end = len(s.items)
		}
		page.Items = append(page.Items, s.items[start:end]...)
		page.HasMore = end < len(s.items)
	}
	return page, nil
}

func (s *stubSource) ToggleLike(ctx context.Context, videoID string) (*domain.VideoItem, error) {
	return nil, errors.New("not used")
}

func (s *stubSource) ToggleFollow(ctx context.Context, authorID string) (*domain.VideoItem, error) {
	return nil, errors.New("not used")
}

func (s *stubSource) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// recordingMetrics counts page loads by kind and outcome
type recordingMetrics struct {
	mu    sync.Mutex
	pages map[string]int
}

func (m *recordingMetrics) PageLoaded(kind string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pages == nil {
		m.pages = map[string]int{}
	}
	m.pages[fmt.Sprintf("%s:%t", kind, success)]++
}

func (m *recordingMetrics) Mutation(action, outcome string) {}

func (m *recordingMetrics) SourceCall(op string, success bool) {}
