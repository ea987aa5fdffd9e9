// ABOUTME: Main client for the reels library: feed sessions without the HTTP server
// ABOUTME: Builds feed controllers and item views wired to one video source

package reels

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"reels-app-api/core/domain"
	coreerrors "reels-app-api/core/errors"
	"reels-app-api/core/feed"
	"reels-app-api/core/interaction"
	"reels-app-api/core/interfaces"
	"reels-app-api/core/share"
)

// ErrNoSource is returned by NewClient when no source option was given
var ErrNoSource = errors.New("reels: a video source is required (WithBaseURL, WithRemote or WithSource)")

// Client is the entry point for the reels library
type Client struct {
	config Config
	deps   interfaces.Dependencies
	shares *share.ShareService

	mu       sync.Mutex
	sessions []*Session
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()
	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if config.Source == nil {
		return nil, ErrNoSource
	}

	c := &Client{
		config: config,
		deps: interfaces.Dependencies{
			Logger:  config.Logger,
			Metrics: config.Metrics,
		},
	}
	if config.ShareStorage != nil {
		c.shares = share.NewShareService(config.ShareStorage)
	}
	return c, nil
}

// Session is one mounted feed: a controller plus the item views created from it
type Session struct {
	client     *Client
	controller *feed.Controller

	mu      sync.Mutex
	views   map[string]*interaction.ItemView
	version uint64
}

// NewSession creates a feed session. Call Start on its controller to load the first page.
func (c *Client) NewSession() *Session {
	s := &Session{
		client:     c,
		controller: feed.NewController(c.config.Source, c.deps, c.config.Feed),
		views:      make(map[string]*interaction.ItemView),
	}

	c.mu.Lock()
	c.sessions = append(c.sessions, s)
	c.mu.Unlock()
	return s
}

// Feed returns the session's controller
func (s *Session) Feed() *feed.Controller {
	return s.controller
}

// View returns the item view for the video at index, creating it on first use.
// Views created before the controller last replaced its list are closed and rebuilt.
func (s *Session) View(index int) (*interaction.ItemView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if version := s.controller.ListVersion(); version != s.version {
		s.closeViewsLocked()
		s.version = version
	}

	item, ok := s.controller.Item(index)
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "feed item", ID: fmt.Sprintf("%d", index)}
	}

	if v, ok := s.views[item.ID]; ok {
		return v, nil
	}

	opts := []interaction.Option{
		interaction.WithReconciler(s.controller),
		interaction.WithPlayback(s.controller.Playback(item.ID)),
	}
	if s.client.shares != nil {
		opts = append(opts, interaction.WithSharer(s.client.shares, s.client.config.ShareBaseURL))
	}

	v := interaction.NewItemView(item, s.client.config.Source, s.client.deps, opts...)
	s.views[item.ID] = v
	return v, nil
}

// ActiveView returns the view of the active item, or nil when none is active
func (s *Session) ActiveView() *interaction.ItemView {
	idx := s.controller.ActiveIndex()
	if idx == feed.NoActive {
		return nil
	}
	v, err := s.View(idx)
	if err != nil {
		return nil
	}
	return v
}

// Close disposes the controller and every view
func (s *Session) Close() {
	s.controller.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeViewsLocked()
}

func (s *Session) closeViewsLocked() {
	for id, v := range s.views {
		v.Close()
		delete(s.views, id)
	}
}

// Profile returns a user profile from the configured source
func (c *Client) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if c.config.Profiles == nil {
		return nil, &coreerrors.NotFoundError{Resource: "profile", ID: userID}
	}
	return c.config.Profiles.GetUserProfile(ctx, userID)
}

// Close closes every session created by the client
func (c *Client) Close() error {
	c.mu.Lock()
	sessions := c.sessions
	c.sessions = nil
	c.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
	return nil
}
