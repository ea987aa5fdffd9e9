// ABOUTME: Video domain model represents a single entry of the short-video feed
// ABOUTME: Provides validation and the like/follow flips applied by sources and views

package domain

import (
	"errors"
	"net/url"
)

// VideoItem represents one video in the feed
type VideoItem struct {
	// ID is the stable identifier of the video across pages
	ID string `json:"id"`

	// MediaURL points at the playable media
	MediaURL string `json:"videoUrl"`

	// AuthorID identifies the author; follow actions are keyed by it
	AuthorID string `json:"authorId"`

	// Display metadata
	AuthorName      string   `json:"userName,omitempty"`
	AuthorImage     string   `json:"userImage,omitempty"`
	Title           string   `json:"title,omitempty"`
	Description     string   `json:"description,omitempty"`
	Hashtags        []string `json:"hashtags,omitempty"`
	IsPaid          bool     `json:"isPaid"`
	DurationSeconds int      `json:"duration"`

	// LikeCount is never negative
	LikeCount int64 `json:"likes"`

	// IsLiked reports whether the viewer liked the video
	IsLiked bool `json:"isLiked"`

	// IsFollowingAuthor reports whether the viewer follows the author
	IsFollowingAuthor bool `json:"isFollowing"`

	// Display-only counters
	CommentCount int64   `json:"comments"`
	ShareCount   int64   `json:"shares"`
	Earnings     float64 `json:"earnings"`
}

// Validate checks that the video has the fields the feed relies on
func (v *VideoItem) Validate() error {
	if v.ID == "" {
		return errors.New("video ID cannot be empty")
	}

	if v.AuthorID == "" {
		return errors.New("video author cannot be empty")
	}

	if v.MediaURL != "" {
		parsed, err := url.Parse(v.MediaURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return errors.New("video media URL must be valid")
		}
	}

	if v.LikeCount < 0 {
		return errors.New("like count cannot be negative")
	}

	return nil
}

// FlipLike toggles the like flag and moves the counter by one in the same direction.
// The counter never drops below zero.
func (v *VideoItem) FlipLike() {
	v.IsLiked = !v.IsLiked
	if v.IsLiked {
		v.LikeCount++
		return
	}
	if v.LikeCount > 0 {
		v.LikeCount--
	}
}

// Clone returns a copy that shares no slices with the receiver
func (v VideoItem) Clone() VideoItem {
	if v.Hashtags != nil {
		tags := make([]string, len(v.Hashtags))
		copy(tags, v.Hashtags)
		v.Hashtags = tags
	}
	return v
}
