// ABOUTME: Share domain model represents a shareable link to a single video
// ABOUTME: Provides validation and expiration checking for share links

package domain

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Share represents a link handed out when a viewer shares a video
type Share struct {
	// ID is the unique identifier (UUID) for the share
	ID string `json:"id"`

	// VideoID is the shared video
	VideoID string `json:"videoId"`

	// URL is the link that opens the video
	URL string `json:"url"`

	// CreatedAt is when the share was created
	CreatedAt time.Time `json:"createdAt"`

	// ExpiresAt is when the share expires (nil means no expiration)
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// NewShare creates a share link for videoID under baseURL.
// A zero ttl produces a link that never expires.
func NewShare(videoID, baseURL string, ttl time.Duration) (*Share, error) {
	if videoID == "" {
		return nil, errors.New("video ID cannot be empty")
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, errors.New("base URL must be valid")
	}

	id := uuid.New().String()
	link := parsedURL.JoinPath("s", id)

	share := &Share{
		ID:        id,
		VideoID:   videoID,
		URL:       link.String(),
		CreatedAt: time.Now(),
	}

	if ttl > 0 {
		expires := share.CreatedAt.Add(ttl)
		share.ExpiresAt = &expires
	}

	return share, nil
}

// IsExpired checks if the share has expired
func (s *Share) IsExpired() bool {
	if s.ExpiresAt == nil {
		return false
	}

	return time.Now().After(*s.ExpiresAt)
}
