// ABOUTME: Page domain models for requesting and returning slices of the video feed
// ABOUTME: FeedPage is transient: produced by a source, consumed once by the feed

package domain

import "errors"

// PageRequest describes a slice of the feed
type PageRequest struct {
	// Page is 1-based
	Page int

	// Limit is the maximum number of items to return
	Limit int

	// Offset, when positive, is the number of items the caller already holds.
	// It takes precedence over Page so pages of different sizes never overlap.
	Offset int
}

// Validate checks the request bounds
func (r PageRequest) Validate() error {
	if r.Page < 1 {
		return errors.New("page must be at least 1")
	}
	if r.Limit < 1 {
		return errors.New("limit must be at least 1")
	}
	if r.Offset < 0 {
		return errors.New("offset cannot be negative")
	}
	return nil
}

// Start returns the index of the first item covered by the request
func (r PageRequest) Start() int {
	if r.Offset > 0 {
		return r.Offset
	}
	return (r.Page - 1) * r.Limit
}

// FeedPage is one page of videos. The tags match the /videos response body.
type FeedPage struct {
	Items      []VideoItem `json:"data"`
	HasMore    bool        `json:"hasMore"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
}
