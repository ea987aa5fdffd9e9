// ABOUTME: Feed controller owns the ordered video list, the active index and pagination
// ABOUTME: Drives the Idle/LoadingInitial/Ready/LoadingMore/Exhausted/Error state machine

package feed

import (
	"context"
	"errors"
	"sync"
	"time"

	"reels-app-api/core/domain"
	coreerrors "reels-app-api/core/errors"
	"reels-app-api/core/interfaces"
	"reels-app-api/core/playback"
)

// ErrClosed is returned by a controller after Close
var ErrClosed = errors.New("feed controller closed")

// Config tunes the controller
type Config struct {
	// InitialPageSize is the limit of the first request
	InitialPageSize int

	// PageSize is the limit of every following request
	PageSize int

	// ActiveThreshold is the visibility ratio an item must exceed to become active
	ActiveThreshold float64

	// LoadMoreThreshold is the scrolled fraction that triggers the next page
	LoadMoreThreshold float64
}

// DefaultConfig returns the stock feed settings
func DefaultConfig() Config {
	return Config{
		InitialPageSize:   5,
		PageSize:          3,
		ActiveThreshold:   DefaultActiveThreshold,
		LoadMoreThreshold: 0.8,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.InitialPageSize < 1 {
		c.InitialPageSize = def.InitialPageSize
	}
	if c.PageSize < 1 {
		c.PageSize = def.PageSize
	}
	if c.ActiveThreshold <= 0 || c.ActiveThreshold >= 1 {
		c.ActiveThreshold = def.ActiveThreshold
	}
	if c.LoadMoreThreshold <= 0 || c.LoadMoreThreshold >= 1 {
		c.LoadMoreThreshold = def.LoadMoreThreshold
	}
	return c
}

// ScrollPosition is the scroll state of the feed container
type ScrollPosition struct {
	Offset         float64
	ViewportHeight float64
	ContentHeight  float64
}

// Fraction returns how much of the scrollable content has been reached
func (p ScrollPosition) Fraction() float64 {
	if p.ContentHeight <= 0 {
		return 0
	}
	return (p.Offset + p.ViewportHeight) / p.ContentHeight
}

// Controller owns the canonical list of videos for one feed session.
// Source calls are made without holding the lock; results that arrive after
// Close or after a Refresh replaced the list are discarded.
type Controller struct {
	source  interfaces.VideoSource
	deps    interfaces.Dependencies
	cfg     Config
	tracker *ActiveTracker
	players *playback.Registry

	mu            sync.Mutex
	state         State
	items         []domain.VideoItem
	hasMore       bool
	page          int
	lastErr       error
	failedInitial bool
	generation    uint64
	listVersion   uint64
	closed        bool
}

// NewController creates a feed controller in the Idle state
func NewController(source interfaces.VideoSource, deps interfaces.Dependencies, cfg Config) *Controller {
	cfg = cfg.withDefaults()
	return &Controller{
		source:  source,
		deps:    deps,
		cfg:     cfg,
		tracker: NewActiveTracker(cfg.ActiveThreshold),
		players: playback.NewRegistry(),
		state:   Idle,
	}
}

// Start runs the initial load. It only has an effect from Idle.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state != Idle {
		c.mu.Unlock()
		return nil
	}
	gen := c.beginInitialLocked()
	c.mu.Unlock()

	return c.loadInitial(ctx, gen)
}

// Refresh replaces the whole list with a fresh first page.
// It is the only way out of Exhausted and also invalidates an in-flight LoadMore.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state == LoadingInitial {
		c.mu.Unlock()
		return nil
	}
	gen := c.beginInitialLocked()
	c.mu.Unlock()

	return c.loadInitial(ctx, gen)
}

// Retry repeats the load that failed. It only has an effect from Error.
func (c *Controller) Retry(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state != Error {
		c.mu.Unlock()
		return nil
	}

	if c.failedInitial {
		gen := c.beginInitialLocked()
		c.mu.Unlock()
		return c.loadInitial(ctx, gen)
	}

	req, gen := c.beginMoreLocked()
	c.mu.Unlock()
	return c.loadMore(ctx, req, gen)
}

// LoadMore fetches the next page when the feed is Ready and has more items
func (c *Controller) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state != Ready || !c.hasMore {
		c.mu.Unlock()
		return nil
	}
	req, gen := c.beginMoreLocked()
	c.mu.Unlock()

	return c.loadMore(ctx, req, gen)
}

// OnScroll loads the next page once the scroll position crosses the near-bottom threshold.
// It reports whether a load was started.
func (c *Controller) OnScroll(ctx context.Context, pos ScrollPosition) (bool, error) {
	if pos.Fraction() <= c.cfg.LoadMoreThreshold {
		return false, nil
	}

	c.mu.Lock()
	ready := !c.closed && c.state == Ready && c.hasMore
	c.mu.Unlock()
	if !ready {
		return false, nil
	}

	return true, c.LoadMore(ctx)
}

func (c *Controller) beginInitialLocked() uint64 {
	c.generation++
	c.state = LoadingInitial
	c.lastErr = nil
	return c.generation
}

func (c *Controller) beginMoreLocked() (domain.PageRequest, uint64) {
	c.state = LoadingMore
	c.lastErr = nil
	req := domain.PageRequest{
		Page:   c.page + 1,
		Limit:  c.cfg.PageSize,
		Offset: len(c.items),
	}
	return req, c.generation
}

func (c *Controller) loadInitial(ctx context.Context, gen uint64) error {
	req := domain.PageRequest{Page: 1, Limit: c.cfg.InitialPageSize}
	started := time.Now()
	result, err := c.source.GetVideos(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if gen != c.generation {
		c.logDebug("Discarded stale initial page", map[string]interface{}{"page": req.Page})
		return nil
	}

	c.recordPage("initial", err == nil)
	if err != nil {
		fetchErr := &coreerrors.FetchError{Page: req.Page, Initial: true, Cause: err}
		c.state = Error
		c.lastErr = fetchErr
		c.failedInitial = true
		c.logError("Failed to load feed", fetchErr)
		return fetchErr
	}

	if active, ok := c.itemAtLocked(c.tracker.Active()); ok {
		c.playerFor(active).Deactivate()
	}

	c.items = cloneItems(result.Items)
	c.page = req.Page
	c.hasMore = result.HasMore
	c.state = c.settledState()
	c.listVersion++
	c.tracker.Reset()
	c.players.Clear()

	c.logInfo("Loaded feed", map[string]interface{}{
		"items":       len(c.items),
		"has_more":    c.hasMore,
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return nil
}

func (c *Controller) loadMore(ctx context.Context, req domain.PageRequest, gen uint64) error {
	result, err := c.source.GetVideos(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if gen != c.generation || c.state != LoadingMore {
		c.logDebug("Discarded stale page", map[string]interface{}{"page": req.Page})
		return nil
	}

	c.recordPage("more", err == nil)
	if err != nil {
		fetchErr := &coreerrors.FetchError{Page: req.Page, Cause: err}
		c.state = Error
		c.lastErr = fetchErr
		c.failedInitial = false
		c.logError("Failed to load more videos", fetchErr)
		return fetchErr
	}

	c.items = append(c.items, cloneItems(result.Items)...)
	c.page = req.Page
	c.hasMore = result.HasMore
	c.state = c.settledState()

	c.logInfo("Loaded more videos", map[string]interface{}{
		"page":     req.Page,
		"added":    len(result.Items),
		"total":    len(c.items),
		"has_more": c.hasMore,
	})
	return nil
}

func (c *Controller) settledState() State {
	if c.hasMore {
		return Ready
	}
	return Exhausted
}

// UpdateVisibility recomputes the active item from item geometry and applies playback side effects
func (c *Controller) UpdateVisibility(viewport Viewport, geoms []ItemGeometry) Transition {
	ratios := ComputeVisibilityRatios(viewport, geoms)
	c.mu.Lock()
	ordered := ratiosInOrder(c.itemIDsLocked(), ratios)
	c.mu.Unlock()

	return c.ApplyRatios(ordered)
}

// ApplyRatios updates the active item from ratios given in item order.
// A closed controller ignores it and returns a zero Transition.
func (c *Controller) ApplyRatios(ratios []float64) Transition {
	if c.Closed() {
		return Transition{}
	}
	transition := c.tracker.Update(ratios)
	c.applyTransition(transition)
	return transition
}

// Next activates the item after the active one and returns its index
func (c *Controller) Next() int {
	return c.GoTo(c.tracker.Active() + 1)
}

// Previous activates the item before the active one and returns its index
func (c *Controller) Previous() int {
	active := c.tracker.Active()
	if active == NoActive {
		return c.GoTo(0)
	}
	return c.GoTo(active - 1)
}

// GoTo activates the item at index, clamped to the list bounds
func (c *Controller) GoTo(index int) int {
	c.mu.Lock()
	count := len(c.items)
	closed := c.closed
	c.mu.Unlock()

	if closed || count == 0 {
		return NoActive
	}
	if index < 0 {
		index = 0
	}
	if index >= count {
		index = count - 1
	}

	c.applyTransition(c.tracker.Set(index))
	return index
}

func (c *Controller) applyTransition(t Transition) {
	if !t.Changed {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	prev, hasPrev := c.itemAtLocked(t.Previous)
	next, hasNext := c.itemAtLocked(t.Current)
	c.mu.Unlock()

	if hasPrev {
		c.playerFor(prev).Deactivate()
	}
	if hasNext {
		c.playerFor(next).Activate()
	}
}

// Playback returns the player state of the video with the given ID
func (c *Controller) Playback(id string) *playback.Playback {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.ID == id {
			return c.playerFor(item)
		}
	}
	return c.players.Get(id, 0)
}

func (c *Controller) playerFor(item domain.VideoItem) *playback.Playback {
	return c.players.Get(item.ID, time.Duration(item.DurationSeconds)*time.Second)
}

// ReconcileLike writes a confirmed like state into the canonical item
func (c *Controller) ReconcileLike(videoID string, liked bool, count int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	for i := range c.items {
		if c.items[i].ID == videoID {
			c.items[i].IsLiked = liked
			c.items[i].LikeCount = count
			return
		}
	}
}

// ReconcileFollow writes a confirmed follow state into every item by the author
func (c *Controller) ReconcileFollow(authorID string, following bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	for i := range c.items {
		if c.items[i].AuthorID == authorID {
			c.items[i].IsFollowingAuthor = following
		}
	}
}

// Close disposes the controller. Results still in flight are discarded on arrival.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	active, ok := c.itemAtLocked(c.tracker.Active())
	c.mu.Unlock()

	if ok {
		c.playerFor(active).Deactivate()
	}
}

// Items returns a copy of the current list
func (c *Controller) Items() []domain.VideoItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneItems(c.items)
}

// Item returns a copy of the item at index
func (c *Controller) Item(index int) (domain.VideoItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.itemAtLocked(index)
	if !ok {
		return domain.VideoItem{}, false
	}
	return item.Clone(), true
}

// State returns the pagination state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ListVersion changes every time a first page replaces the list.
// Views built from an older version hold items and players the controller no longer owns.
func (c *Controller) ListVersion() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listVersion
}

// ActiveIndex returns the active item index or NoActive
func (c *Controller) ActiveIndex() int {
	return c.tracker.Active()
}

// HasMore reports whether the source has more pages
func (c *Controller) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

// LastError returns the fetch error behind the Error state
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Closed reports whether Close was called
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Controller) itemIDsLocked() []string {
	ids := make([]string, len(c.items))
	for i, item := range c.items {
		ids[i] = item.ID
	}
	return ids
}

func (c *Controller) itemAtLocked(index int) (domain.VideoItem, bool) {
	if index < 0 || index >= len(c.items) {
		return domain.VideoItem{}, false
	}
	return c.items[index], true
}

func cloneItems(items []domain.VideoItem) []domain.VideoItem {
	out := make([]domain.VideoItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

func (c *Controller) recordPage(kind string, success bool) {
	if c.deps.Metrics != nil {
		c.deps.Metrics.PageLoaded(kind, success)
	}
}

func (c *Controller) logDebug(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Debug(msg, fields)
	}
}

func (c *Controller) logInfo(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Info(msg, fields)
	}
}

func (c *Controller) logError(msg string, err *coreerrors.FetchError) {
	if c.deps.Logger != nil {
		c.deps.Logger.Error(msg, map[string]interface{}{
			"page":    err.Page,
			"initial": err.Initial,
			"error":   err.Cause.Error(),
		})
	}
}
