// ABOUTME: Share service creates and resolves share links for videos
// ABOUTME: Links expire after a TTL and are kept in ShareStorage

package share

import (
	"context"
	"time"

	"github.com/google/uuid"

	"reels-app-api/core/domain"
	coreerrors "reels-app-api/core/errors"
	"reels-app-api/core/interfaces"
)

// DefaultTTL is how long a share link stays valid
const DefaultTTL = 7 * 24 * time.Hour

// ShareService handles share operations
type ShareService struct {
	storage interfaces.ShareStorage
	ttl     time.Duration
}

// NewShareService creates a new share service instance
func NewShareService(storage interfaces.ShareStorage) *ShareService {
	return &ShareService{
		storage: storage,
		ttl:     DefaultTTL,
	}
}

// WithTTL returns the service with a different link lifetime; zero means links never expire
func (s *ShareService) WithTTL(ttl time.Duration) *ShareService {
	s.ttl = ttl
	return s
}

// CreateShare creates a link to videoID under baseURL
func (s *ShareService) CreateShare(ctx context.Context, videoID, baseURL string) (*domain.Share, error) {
	share, err := domain.NewShare(videoID, baseURL, s.ttl)
	if err != nil {
		return nil, &coreerrors.ValidationError{Field: "share", Message: err.Error()}
	}

	if err := s.storage.Save(ctx, share); err != nil {
		return nil, coreerrors.WrapError(err, "saving share")
	}

	return share, nil
}

// GetShare retrieves a share by ID. Missing and expired shares are both reported as not found.
func (s *ShareService) GetShare(ctx context.Context, id string) (*domain.Share, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "cannot be empty"}
	}

	// Validate UUID format
	if _, err := uuid.Parse(id); err != nil {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "invalid share ID format"}
	}

	share, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if share == nil || share.IsExpired() {
		return nil, &coreerrors.NotFoundError{Resource: "share", ID: id}
	}

	return share, nil
}
