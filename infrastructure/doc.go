// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
//   - cache/memory: in-process cache on go-cache
//   - cache/redis: Redis cache on go-redis
//   - cache/sqlite: SQLite cache with periodic expiry cleanup
//   - http/standard: HTTP client with opt-in retries for GET
//   - logger/logrus: structured logger with optional file rotation
//   - metrics: Prometheus collectors and the /metrics handler
//   - source/memory: simulated video source with latency and failure injection
//   - source/remote: video source backed by a running Reels API
//   - storage/cacheshare: share link storage on any cache
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), time.Hour)
//	value, err := cache.Get(ctx, "key")
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//	    // not cached
//	}
//
// # Video Sources
//
//	store := memory.NewStore(memory.WithLatency(memory.DefaultLatency().Scale(0.5)))
//	remoteSource := remote.New("http://localhost:8000", standard.NewStandardHTTPClient(10*time.Second))
//
// # Logger
//
//	logger := logrus.New(logrus.Options{Level: "debug", Format: "text"})
//	logger.Info("Page loaded", map[string]interface{}{
//	    "page":  2,
//	    "items": 3,
//	})
package infrastructure
