// ABOUTME: Catalog service exposes the video source to the HTTP layer
// ABOUTME: Validates page requests, caches profiles and records source metrics

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"reels-app-api/core/domain"
	coreerrors "reels-app-api/core/errors"
	"reels-app-api/core/interfaces"
)

const (
	// DefaultLimit is used when a request does not name a page size
	DefaultLimit = 5

	// MaxLimit caps the page size a client may request
	MaxLimit = 50

	// DefaultProfileTTL is how long profiles stay cached
	DefaultProfileTTL = 5 * time.Minute
)

// Service wraps a video source for server-side use
type Service struct {
	source     interfaces.VideoSource
	profiles   interfaces.ProfileSource
	deps       interfaces.Dependencies
	profileTTL time.Duration
}

// NewService creates a new catalog service instance
func NewService(source interfaces.VideoSource, profiles interfaces.ProfileSource, deps interfaces.Dependencies) *Service {
	return &Service{
		source:     source,
		profiles:   profiles,
		deps:       deps,
		profileTTL: DefaultProfileTTL,
	}
}

// SetProfileTTL overrides how long profiles are cached
func (s *Service) SetProfileTTL(ttl time.Duration) {
	s.profileTTL = ttl
}

// ListVideos returns one page of the feed. Zero page and limit take defaults.
func (s *Service) ListVideos(ctx context.Context, page, limit, offset int) (*domain.FeedPage, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		return nil, &coreerrors.ValidationError{Field: "limit", Message: fmt.Sprintf("must be at most %d", MaxLimit)}
	}

	req := domain.PageRequest{Page: page, Limit: limit, Offset: offset}
	if err := req.Validate(); err != nil {
		return nil, &coreerrors.ValidationError{Field: "page", Message: err.Error()}
	}

	result, err := s.source.GetVideos(ctx, req)
	s.recordCall("get_videos", err)
	if err != nil {
		s.logError("Failed to load videos", err, map[string]interface{}{
			"page":   page,
			"limit":  limit,
			"offset": offset,
		})
		return nil, err
	}

	return result, nil
}

// ToggleLike flips the like on a video
func (s *Service) ToggleLike(ctx context.Context, videoID string) (*domain.VideoItem, error) {
	if videoID == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "cannot be empty"}
	}

	item, err := s.source.ToggleLike(ctx, videoID)
	s.recordCall("toggle_like", err)
	if err != nil {
		s.logError("Failed to toggle like", err, map[string]interface{}{"video_id": videoID})
		return nil, err
	}

	return item, nil
}

// ToggleFollow flips the follow on an author
func (s *Service) ToggleFollow(ctx context.Context, authorID string) (*domain.VideoItem, error) {
	if authorID == "" {
		return nil, &coreerrors.ValidationError{Field: "authorId", Message: "cannot be empty"}
	}

	item, err := s.source.ToggleFollow(ctx, authorID)
	s.recordCall("toggle_follow", err)
	if err != nil {
		s.logError("Failed to toggle follow", err, map[string]interface{}{"author_id": authorID})
		return nil, err
	}

	return item, nil
}

// GetProfile returns a user profile, served from cache when possible
func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if userID == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "cannot be empty"}
	}

	if s.profiles == nil {
		return nil, &coreerrors.NotFoundError{Resource: "profile", ID: userID}
	}

	if cached := s.getCachedProfile(ctx, userID); cached != nil {
		return cached, nil
	}

	profile, err := s.profiles.GetUserProfile(ctx, userID)
	s.recordCall("get_profile", err)
	if err != nil {
		return nil, err
	}

	// Cache under the requested ID so "me" hits too (ignore cache errors)
	_ = s.cacheProfile(ctx, userID, profile)

	return profile, nil
}

// getCachedProfile retrieves a profile from cache, nil on miss
func (s *Service) getCachedProfile(ctx context.Context, userID string) *domain.UserProfile {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, profileKey(userID))
	if err != nil || data == nil {
		return nil
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil
	}

	return &profile
}

// cacheProfile stores a profile in cache
func (s *Service) cacheProfile(ctx context.Context, userID string, profile *domain.UserProfile) error {
	if s.deps.Cache == nil || profile == nil {
		return nil
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	return s.deps.Cache.Set(ctx, profileKey(userID), data, s.profileTTL)
}

func profileKey(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}

func (s *Service) recordCall(op string, err error) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.SourceCall(op, err == nil)
	}
}

func (s *Service) logError(msg string, err error, fields map[string]interface{}) {
	if s.deps.Logger == nil {
		return
	}
	fields["error"] = err.Error()
	s.deps.Logger.Error(msg, fields)
}
