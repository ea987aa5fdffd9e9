// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"reels-app-api/core/domain"
)

// ShareStorage defines the interface for share persistence
type ShareStorage interface {
	// Save persists a share
	Save(ctx context.Context, share *domain.Share) error

	// Get retrieves a share by ID, returning nil when it does not exist
	Get(ctx context.Context, id string) (*domain.Share, error)
}
