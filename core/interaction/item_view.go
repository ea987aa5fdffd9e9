// ABOUTME: Item view holds the locally mutable copy of one video for optimistic updates
// ABOUTME: Applies like/follow immediately, confirms with the source and rolls back on failure

package interaction

import (
	"context"
	"errors"
	"sync"

	"reels-app-api/core/domain"
	coreerrors "reels-app-api/core/errors"
	"reels-app-api/core/interfaces"
	"reels-app-api/core/playback"
	"reels-app-api/pkg/featureflags"
	"reels-app-api/pkg/utils/format"
)

// Outcome is the result of one optimistic mutation
type Outcome string

const (
	// OutcomeApplied means the source confirmed the local change
	OutcomeApplied Outcome = "applied"

	// OutcomeRolledBack means the source failed and the snapshot was restored
	OutcomeRolledBack Outcome = "rolled_back"

	// OutcomeIgnored means the click arrived while the same mutation was in flight
	OutcomeIgnored Outcome = "ignored"

	// OutcomeDiscarded means the view was closed before the result arrived
	OutcomeDiscarded Outcome = "discarded"
)

// ErrSharingUnavailable is returned by Share when no Sharer is configured
var ErrSharingUnavailable = errors.New("sharing is not available")

// Reconciler receives confirmed mutations for the canonical item list
type Reconciler interface {
	ReconcileLike(videoID string, liked bool, count int64)
	ReconcileFollow(authorID string, following bool)
}

// Sharer creates share links
type Sharer interface {
	CreateShare(ctx context.Context, videoID, baseURL string) (*domain.Share, error)
}

// Option configures an ItemView
type Option func(*ItemView)

// WithReconciler sets the owner of the canonical item
func WithReconciler(r Reconciler) Option {
	return func(v *ItemView) {
		v.reconciler = r
	}
}

// WithSharer enables Share with links under baseURL
func WithSharer(s Sharer, baseURL string) Option {
	return func(v *ItemView) {
		v.sharer = s
		v.shareBaseURL = baseURL
	}
}

// WithPlayback attaches the item's player so mute reaches the media
func WithPlayback(p *playback.Playback) Option {
	return func(v *ItemView) {
		v.player = p
	}
}

// ItemView is the optimistic view of one feed item
type ItemView struct {
	source       interfaces.VideoSource
	deps         interfaces.Dependencies
	reconciler   Reconciler
	sharer       Sharer
	shareBaseURL string
	player       *playback.Playback

	mu             sync.Mutex
	item           domain.VideoItem
	likeInFlight   bool
	followInFlight int
	muted          bool
	closed         bool
}

// NewItemView creates a view over a copy of item
func NewItemView(item domain.VideoItem, source interfaces.VideoSource, deps interfaces.Dependencies, opts ...Option) *ItemView {
	v := &ItemView{
		source: source,
		deps:   deps,
		item:   item.Clone(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

type likeSnapshot struct {
	liked bool
	count int64
}

// ToggleLike flips the like locally, then confirms it with the source.
// Clicks while a like is in flight are ignored.
func (v *ItemView) ToggleLike(ctx context.Context) Outcome {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return OutcomeDiscarded
	}
	if v.likeInFlight {
		v.mu.Unlock()
		v.recordMutation("like", OutcomeIgnored)
		return OutcomeIgnored
	}

	snapshot := likeSnapshot{liked: v.item.IsLiked, count: v.item.LikeCount}
	v.item.FlipLike()
	v.likeInFlight = true
	videoID := v.item.ID
	v.mu.Unlock()

	_, err := v.source.ToggleLike(ctx, videoID)

	v.mu.Lock()
	v.likeInFlight = false
	if v.closed {
		v.mu.Unlock()
		v.recordMutation("like", OutcomeDiscarded)
		return OutcomeDiscarded
	}
	if err != nil {
		v.item.IsLiked = snapshot.liked
		v.item.LikeCount = snapshot.count
		v.mu.Unlock()
		v.logRollback(&coreerrors.MutationError{Action: "like", Key: videoID, Cause: err})
		v.recordMutation("like", OutcomeRolledBack)
		return OutcomeRolledBack
	}
	liked, count := v.item.IsLiked, v.item.LikeCount
	v.mu.Unlock()

	if v.reconciler != nil {
		v.reconciler.ReconcileLike(videoID, liked, count)
	}
	v.recordMutation("like", OutcomeApplied)
	return OutcomeApplied
}

// ToggleFollow flips the follow locally, then confirms it with the source.
// Follow clicks are not guarded against in-flight calls unless the
// follow_inflight_guard flag is enabled, so overlapping calls may complete out of order.
func (v *ItemView) ToggleFollow(ctx context.Context) Outcome {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return OutcomeDiscarded
	}
	if v.followInFlight > 0 && featureflags.IsEnabled(ctx, featureflags.FollowInflightGuard) {
		v.mu.Unlock()
		v.recordMutation("follow", OutcomeIgnored)
		return OutcomeIgnored
	}

	snapshot := v.item.IsFollowingAuthor
	v.item.IsFollowingAuthor = !v.item.IsFollowingAuthor
	v.followInFlight++
	authorID := v.item.AuthorID
	v.mu.Unlock()

	_, err := v.source.ToggleFollow(ctx, authorID)

	v.mu.Lock()
	v.followInFlight--
	if v.closed {
		v.mu.Unlock()
		v.recordMutation("follow", OutcomeDiscarded)
		return OutcomeDiscarded
	}
	if err != nil {
		v.item.IsFollowingAuthor = snapshot
		v.mu.Unlock()
		v.logRollback(&coreerrors.MutationError{Action: "follow", Key: authorID, Cause: err})
		v.recordMutation("follow", OutcomeRolledBack)
		return OutcomeRolledBack
	}
	following := v.item.IsFollowingAuthor
	v.mu.Unlock()

	if v.reconciler != nil {
		v.reconciler.ReconcileFollow(authorID, following)
	}
	v.recordMutation("follow", OutcomeApplied)
	return OutcomeApplied
}

// ToggleMute flips mute for this item and returns the new value
func (v *ItemView) ToggleMute() bool {
	if v.player != nil {
		muted := v.player.ToggleMute()
		v.mu.Lock()
		v.muted = muted
		v.mu.Unlock()
		return muted
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.muted = !v.muted
	return v.muted
}

// Muted reports the mute flag
func (v *ItemView) Muted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.muted
}

// Share creates a share link for the video and bumps the local share counter
func (v *ItemView) Share(ctx context.Context) (*domain.Share, error) {
	if v.sharer == nil {
		return nil, ErrSharingUnavailable
	}

	v.mu.Lock()
	videoID := v.item.ID
	v.mu.Unlock()

	share, err := v.sharer.CreateShare(ctx, videoID, v.shareBaseURL)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	if !v.closed {
		v.item.ShareCount++
	}
	v.mu.Unlock()

	return share, nil
}

// Snapshot returns a copy of the local item state
func (v *ItemView) Snapshot() domain.VideoItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.item.Clone()
}

// DisplayCounts are the formatted counters shown on the item overlay
type DisplayCounts struct {
	Likes    string
	Comments string
	Shares   string
	Earnings string
	Duration string
}

// Display returns the overlay counters
func (v *ItemView) Display() DisplayCounts {
	v.mu.Lock()
	defer v.mu.Unlock()

	return DisplayCounts{
		Likes:    format.CountInt(v.item.LikeCount),
		Comments: format.CountInt(v.item.CommentCount),
		Shares:   format.CountInt(v.item.ShareCount),
		Earnings: format.Earnings(v.item.Earnings),
		Duration: format.Duration(v.item.DurationSeconds),
	}
}

// Close disposes the view; mutations still in flight will not touch its state
func (v *ItemView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}

func (v *ItemView) logRollback(err *coreerrors.MutationError) {
	if v.deps.Logger == nil {
		return
	}
	v.deps.Logger.Warn("Optimistic update rolled back", map[string]interface{}{
		"action": err.Action,
		"key":    err.Key,
		"error":  err.Cause.Error(),
	})
}

func (v *ItemView) recordMutation(action string, outcome Outcome) {
	if v.deps.Metrics != nil {
		v.deps.Metrics.Mutation(action, string(outcome))
	}
}
