// ABOUTME: Video source interfaces for the feed and its mutations
// ABOUTME: Implemented by the in-memory store and by the remote HTTP adapter

package interfaces

import (
	"context"

	"reels-app-api/core/domain"
)

// VideoSource serves pages of videos and applies like/follow toggles.
// Any call may fail; callers decide how to recover.
type VideoSource interface {
	// GetVideos returns the page described by req
	GetVideos(ctx context.Context, req domain.PageRequest) (*domain.FeedPage, error)

	// ToggleLike flips the viewer's like on the video with the given ID
	ToggleLike(ctx context.Context, videoID string) (*domain.VideoItem, error)

	// ToggleFollow flips the viewer's follow of the given author
	ToggleFollow(ctx context.Context, authorID string) (*domain.VideoItem, error)
}

// ProfileSource serves user profiles
type ProfileSource interface {
	GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
}
