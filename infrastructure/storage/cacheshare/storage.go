// ABOUTME: ShareStorage implementation on top of any Cache backend
// ABOUTME: Stores shares as JSON and lets the cache expire them with the link

package cacheshare

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"reels-app-api/core/domain"
	"reels-app-api/core/interfaces"
)

// Storage persists shares in a cache
type Storage struct {
	cache interfaces.Cache
}

// New creates share storage backed by cache
func New(cache interfaces.Cache) *Storage {
	return &Storage{cache: cache}
}

func shareKey(id string) string {
	return fmt.Sprintf("share:%s", id)
}

// Save stores the share until it expires
func (s *Storage) Save(ctx context.Context, share *domain.Share) error {
	if share == nil || share.ID == "" {
		return errors.New("share must have an ID")
	}

	data, err := json.Marshal(share)
	if err != nil {
		return fmt.Errorf("encoding share: %w", err)
	}

	var ttl time.Duration
	if share.ExpiresAt != nil {
		ttl = time.Until(*share.ExpiresAt)
		if ttl <= 0 {
			// Already expired; nothing worth storing
			return nil
		}
	}

	return s.cache.Set(ctx, shareKey(share.ID), data, ttl)
}

// Get returns the share, or nil when it is not stored
func (s *Storage) Get(ctx context.Context, id string) (*domain.Share, error) {
	data, err := s.cache.Get(ctx, shareKey(id))
	if errors.Is(err, interfaces.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var share domain.Share
	if err := json.Unmarshal(data, &share); err != nil {
		return nil, fmt.Errorf("decoding share %s: %w", id, err)
	}
	return &share, nil
}
