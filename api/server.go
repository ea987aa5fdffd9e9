// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"reels-app-api/api/middleware"
	"reels-app-api/core/interfaces"
	"reels-app-api/pkg/featureflags"
)

const (
	title   = "Reels API"
	version = "1.0.0"
)

// MetricsExporter instruments requests and serves the metrics endpoint
type MetricsExporter interface {
	Handler() http.Handler
	Middleware(next http.Handler) http.Handler
}

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window; 0 disables limiting
	RateWindow time.Duration // rate limit window
	Flags      featureflags.Manager
	Metrics    MetricsExporter // nil leaves /metrics unmounted
}

// NewAPI creates a Huma API with CORS and nothing else
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run before anything that can reject the request
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware)
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	// chi requires every Use before the first route
	if cfg.Metrics != nil {
		router.Handle("/metrics", cfg.Metrics.Handler())
	}

	config := huma.DefaultConfig(title, version)
	config.Info.Description = "Short-video feed: paged videos, optimistic like/follow, profiles and share links"

	// OpenAPI spec at /openapi.json, docs at /docs
	api := humachi.New(router, config)

	if cfg.Flags != nil {
		api.UseMiddleware(middleware.FeatureFlags(cfg.Flags))
	}

	return api, router
}
