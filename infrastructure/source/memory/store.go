// ABOUTME: In-memory video source with simulated latency and injectable failures
// ABOUTME: Owned by its caller; Reset restores the seed between runs

package memory

import (
	"context"
	"sync"
	"time"

	"reels-app-api/core/catalog"
	"reels-app-api/core/domain"
	coreerrors "reels-app-api/core/errors"
	"reels-app-api/core/interfaces"
)

// Latency is the simulated delay of each operation
type Latency struct {
	GetVideos    time.Duration
	ToggleLike   time.Duration
	ToggleFollow time.Duration
	GetProfile   time.Duration
}

// DefaultLatency mirrors a slow mobile network
func DefaultLatency() Latency {
	return Latency{
		GetVideos:    500 * time.Millisecond,
		ToggleLike:   200 * time.Millisecond,
		ToggleFollow: 300 * time.Millisecond,
		GetProfile:   300 * time.Millisecond,
	}
}

// Scale multiplies every delay by f
func (l Latency) Scale(f float64) Latency {
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * f)
	}
	return Latency{
		GetVideos:    scale(l.GetVideos),
		ToggleLike:   scale(l.ToggleLike),
		ToggleFollow: scale(l.ToggleFollow),
		GetProfile:   scale(l.GetProfile),
	}
}

// Option configures a Store
type Option func(*Store)

// WithSeed replaces the default catalog
func WithSeed(seed Seed) Option {
	return func(s *Store) {
		s.seed = seed
	}
}

// WithLatency sets the simulated delays
func WithLatency(l Latency) Option {
	return func(s *Store) {
		s.latency = l
	}
}

// WithoutLatency answers immediately
func WithoutLatency() Option {
	return WithLatency(Latency{})
}

// WithFailurePolicy injects failures
func WithFailurePolicy(p FailurePolicy) Option {
	return func(s *Store) {
		s.failures = p
	}
}

// WithLogger logs every simulated failure
func WithLogger(l interfaces.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Store is an in-memory VideoSource and ProfileSource
type Store struct {
	seed     Seed
	latency  Latency
	failures FailurePolicy
	logger   interfaces.Logger

	mu        sync.RWMutex
	videos    []domain.VideoItem
	following map[string]bool
	profile   domain.UserProfile
}

// NewStore creates a store loaded with the seed
func NewStore(opts ...Option) *Store {
	s := &Store{
		seed:     DefaultSeed(),
		latency:  DefaultLatency(),
		failures: NoFailures{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset restores the seed content
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.videos = make([]domain.VideoItem, len(s.seed.Videos))
	s.following = make(map[string]bool)
	for i, v := range s.seed.Videos {
		s.videos[i] = v.Clone()
		if _, seen := s.following[v.AuthorID]; !seen {
			s.following[v.AuthorID] = v.IsFollowingAuthor
		}
	}
	s.profile = s.seed.Profile
}

// Len returns the number of videos
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.videos)
}

// GetVideos returns one page of videos
func (s *Store) GetVideos(ctx context.Context, req domain.PageRequest) (*domain.FeedPage, error) {
	if err := req.Validate(); err != nil {
		return nil, &coreerrors.ValidationError{Field: "page", Message: err.Error()}
	}
	if err := s.simulate(ctx, OpGetVideos, s.latency.GetVideos); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	page := catalog.Paginate(s.videos, req)
	for i := range page.Items {
		page.Items[i].IsFollowingAuthor = s.following[page.Items[i].AuthorID]
	}
	return page, nil
}

// ToggleLike flips the like on a video
func (s *Store) ToggleLike(ctx context.Context, videoID string) (*domain.VideoItem, error) {
	if err := s.simulate(ctx, OpToggleLike, s.latency.ToggleLike); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.videos {
		if s.videos[i].ID == videoID {
			s.videos[i].FlipLike()
			return s.viewLocked(s.videos[i]), nil
		}
	}
	return nil, &coreerrors.NotFoundError{Resource: "video", ID: videoID}
}

// ToggleFollow flips the follow on an author and returns the author's first video
func (s *Store) ToggleFollow(ctx context.Context, authorID string) (*domain.VideoItem, error) {
	if err := s.simulate(ctx, OpToggleFollow, s.latency.ToggleFollow); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	following, known := s.following[authorID]
	if !known {
		return nil, &coreerrors.NotFoundError{Resource: "author", ID: authorID}
	}
	s.following[authorID] = !following

	for _, v := range s.videos {
		if v.AuthorID == authorID {
			return s.viewLocked(v), nil
		}
	}
	return nil, &coreerrors.NotFoundError{Resource: "author", ID: authorID}
}

// GetUserProfile returns the viewer profile; "me" is an alias for its ID
func (s *Store) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if err := s.simulate(ctx, OpGetProfile, s.latency.GetProfile); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if userID != "me" && userID != s.profile.ID {
		return nil, &coreerrors.NotFoundError{Resource: "user", ID: userID}
	}
	profile := s.profile
	return &profile, nil
}

func (s *Store) viewLocked(v domain.VideoItem) *domain.VideoItem {
	out := v.Clone()
	out.IsFollowingAuthor = s.following[v.AuthorID]
	return &out
}

// simulate waits out the latency and then applies the failure policy
func (s *Store) simulate(ctx context.Context, op Operation, delay time.Duration) error {
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	if s.failures.ShouldFail(op) {
		if s.logger != nil {
			s.logger.Debug("Simulated source failure", map[string]interface{}{"operation": string(op)})
		}
		return &coreerrors.ExternalAPIError{
			StatusCode: 503,
			Message:    "simulated network error",
			API:        "video-source",
		}
	}
	return nil
}
