// ABOUTME: Scripted feed session against a running Reels API or the in-memory source
// ABOUTME: Scrolls through the feed, likes and follows the active item and logs every step

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"reels-app-api/api/middleware"
	reels "reels-app-api/client"
	"reels-app-api/core/feed"
	"reels-app-api/core/interfaces"
	"reels-app-api/infrastructure/http/standard"
	logruslogger "reels-app-api/infrastructure/logger/logrus"
	memsource "reels-app-api/infrastructure/source/memory"
	"reels-app-api/pkg/config"
)

// itemHeight is the simulated viewport height; each item fills one viewport
const itemHeight = 800.0

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	baseURL := flag.String("url", cfg.Server.APIBaseURL, "reels API base URL")
	local := flag.Bool("local", false, "use the in-memory source instead of the API")
	steps := flag.Int("steps", 10, "number of scroll steps")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	logger := logruslogger.New(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: "text",
	})

	opts := []reels.Option{
		reels.WithLogger(logger),
		reels.WithFeedConfig(feed.Config{
			InitialPageSize:   cfg.Feed.InitialPageSize,
			PageSize:          cfg.Feed.PageSize,
			ActiveThreshold:   cfg.Feed.ActiveThreshold,
			LoadMoreThreshold: cfg.Feed.LoadMoreThreshold,
		}),
	}
	if *local {
		store := memsource.NewStore(
			memsource.WithLatency(memsource.DefaultLatency().Scale(cfg.Source.LatencyScale)),
			memsource.WithLogger(logger),
		)
		opts = append(opts, reels.WithSource(store, store))
	} else {
		httpClient := standard.NewStandardHTTPClient(*timeout,
			standard.WithTransport(&middleware.LoggingRoundTripper{Logger: logger}))
		opts = append(opts, reels.WithRemote(*baseURL, httpClient))
	}

	client, err := reels.NewClient(opts...)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	session := client.NewSession()

	if err := run(ctx, session, *steps, logger); err != nil {
		logger.Error("Session failed", map[string]interface{}{"error": err.Error()})
		return
	}

	if profile, err := client.Profile(ctx, "me"); err == nil {
		logger.Info("Viewer profile", map[string]interface{}{
			"name":      profile.Name,
			"followers": profile.Followers,
		})
	}
}

func run(ctx context.Context, session *reels.Session, steps int, logger interfaces.Logger) error {
	ctrl := session.Feed()

	if err := ctrl.Start(ctx); err != nil {
		logger.Warn("Initial load failed, retrying", map[string]interface{}{"error": err.Error()})
		if err := ctrl.Retry(ctx); err != nil {
			return err
		}
	}

	for step := 0; step < steps; step++ {
		count := len(ctrl.Items())
		if count == 0 {
			break
		}
		index := step % (count + 1)
		if index >= count {
			index = count - 1
		}

		ctrl.ApplyRatios(ratiosFor(index, count))

		if view := session.ActiveView(); view != nil {
			item := view.Snapshot()
			display := view.Display()
			logger.Info("Watching", map[string]interface{}{
				"step":     step,
				"index":    index,
				"video_id": item.ID,
				"author":   item.AuthorName,
				"likes":    display.Likes,
				"duration": display.Duration,
				"playback": ctrl.Playback(item.ID).Status().State.String(),
			})

			if step%2 == 0 {
				logger.Info("Like", map[string]interface{}{"outcome": string(view.ToggleLike(ctx))})
			}
			if step%3 == 0 {
				logger.Info("Follow", map[string]interface{}{"outcome": string(view.ToggleFollow(ctx))})
			}
		}

		pos := feed.ScrollPosition{
			Offset:         float64(index) * itemHeight,
			ViewportHeight: itemHeight,
			ContentHeight:  float64(count) * itemHeight,
		}
		started, err := ctrl.OnScroll(ctx, pos)
		if err != nil {
			logger.Warn("Load more failed, retrying", map[string]interface{}{"error": err.Error()})
			_ = ctrl.Retry(ctx)
		}
		if started {
			logger.Info("Loaded more", map[string]interface{}{
				"items":    len(ctrl.Items()),
				"has_more": ctrl.HasMore(),
				"state":    ctrl.State().String(),
			})
		}
	}

	logger.Info("Session finished", map[string]interface{}{
		"items": len(ctrl.Items()),
		"state": ctrl.State().String(),
	})
	return nil
}

// ratiosFor reports the item at index as fully visible and its neighbours as hidden
func ratiosFor(index, count int) []float64 {
	ratios := make([]float64, count)
	ratios[index] = 1
	return ratios
}
