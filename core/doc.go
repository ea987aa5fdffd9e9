// Package core contains the feed logic of the Reels API.
// It has no HTTP or storage dependencies and is used both by the server
// and by in-process clients.
//
// Sub-packages:
//
//   - domain: video items, pages, profiles and share links
//   - catalog: server-side access to a video source
//   - feed: active-item tracking and the pagination state machine
//   - interaction: optimistic like and follow for one item
//   - playback: per-item player state
//   - share: share link creation and lookup
//   - errors: typed errors shared by every layer
//   - interfaces: contracts for the source, cache, logger and metrics
//
// # Usage Example
//
//	import (
//	    "reels-app-api/core/feed"
//	    "reels-app-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Logger:  myLogger,  // implements interfaces.Logger
//	    Metrics: myMetrics, // optional
//	}
//
//	ctrl := feed.NewController(source, deps, feed.DefaultConfig())
//	if err := ctrl.Start(ctx); err != nil {
//	    // ctrl.State() is feed.Error; ctrl.Retry(ctx) repeats the load
//	}
//	ctrl.ApplyRatios([]float64{0.9, 0.1, 0})
package core
