// ABOUTME: Main entry point for the Reels API server
// ABOUTME: Wires the video source, caches, services and handlers and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"reels-app-api/api"
	"reels-app-api/api/handlers"
	"reels-app-api/core/catalog"
	"reels-app-api/core/interfaces"
	"reels-app-api/core/share"
	"reels-app-api/infrastructure/cache/memory"
	"reels-app-api/infrastructure/cache/redis"
	"reels-app-api/infrastructure/cache/sqlite"
	logruslogger "reels-app-api/infrastructure/logger/logrus"
	"reels-app-api/infrastructure/metrics"
	memsource "reels-app-api/infrastructure/source/memory"
	"reels-app-api/infrastructure/storage/cacheshare"
	"reels-app-api/pkg/config"
	"reels-app-api/pkg/featureflags"
)

func main() {
	// A missing .env is fine; the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(logruslogger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	flags := featureflags.NewEnvManager("")
	ctx := context.Background()

	logger.Info("Starting Reels API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"flags":      flags.GetAllFlags(),
	})

	cache, closeCache := newCache(cfg, logger)
	defer closeCache()

	var recorder *metrics.Recorder
	if flags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		recorder = metrics.NewRecorder()
	}

	store := newStore(ctx, cfg, flags, logger)

	deps := interfaces.Dependencies{
		Logger: logger,
	}
	if recorder != nil {
		deps.Metrics = recorder
	}
	if flags.IsEnabled(ctx, featureflags.ProfileCacheEnabled) {
		deps.Cache = cache
	}

	catalogService := catalog.NewService(store, store, deps)
	shareService := share.NewShareService(cacheshare.New(cache))

	apiConfig := api.APIConfig{
		Logger: logger,
		Flags:  flags,
	}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateWindow = cfg.Server.RateWindow()
	}
	if recorder != nil {
		apiConfig.Metrics = recorder
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewVideoHandler(catalogService).RegisterRoutes(humaAPI)
	handlers.NewShareHandler(shareService, cfg.Server.ShareBaseURL).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(store.Len).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured cache backend, falling back to memory when it cannot connect
func newCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func()) {
	fallback := func(backend string, err error) (interfaces.Cache, func()) {
		logger.Error(fmt.Sprintf("Failed to create %s cache, falling back to memory", backend), map[string]interface{}{
			"error": err.Error(),
		})
		return memory.NewMemoryCacheWithCleanup(time.Duration(cfg.Cache.Memory.CleanupSeconds) * time.Second), func() {}
	}

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			return fallback("Redis", err)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache, func() { _ = redisCache.Close() }
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			return fallback("SQLite", err)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache, func() { _ = sqliteCache.Close() }
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCacheWithCleanup(time.Duration(cfg.Cache.Memory.CleanupSeconds) * time.Second), func() {}
	}
}

func newStore(ctx context.Context, cfg *config.Config, flags featureflags.Manager, logger interfaces.Logger) *memsource.Store {
	opts := []memsource.Option{
		memsource.WithLatency(memsource.DefaultLatency().Scale(cfg.Source.LatencyScale)),
		memsource.WithLogger(logger),
	}
	if flags.IsEnabled(ctx, featureflags.FailureInjection) {
		opts = append(opts, memsource.WithFailurePolicy(memsource.NewRandomFailures(cfg.Source.FailureRate, time.Now().UnixNano())))
		logger.Warn("Failure injection enabled", map[string]interface{}{
			"rate": cfg.Source.FailureRate,
		})
	}
	return memsource.NewStore(opts...)
}

func init() {
	fmt.Println(`
    ____            __        ___    ____  ____
   / __ \___  ___  / /____   /   |  / __ \/  _/
  / /_/ / _ \/ _ \/ / ___/  / /| | / /_/ // /
 / _, _/  __/  __/ (__  )  / ___ |/ ____// /
/_/ |_|\___/\___/_/____/  /_/  |_/_/   /___/
	`)
}
