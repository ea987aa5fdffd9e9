// ABOUTME: Configuration options for the reels library client
// ABOUTME: Functional options pick the video source, logging, metrics and feed tuning

package reels

import (
	"errors"
	"time"

	"reels-app-api/core/feed"
	"reels-app-api/core/interfaces"
	"reels-app-api/infrastructure/http/standard"
	"reels-app-api/infrastructure/source/remote"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	// Source serves feed pages and mutations
	Source interfaces.VideoSource

	// Profiles serves user profiles; optional
	Profiles interfaces.ProfileSource

	// Logger receives feed and mutation logs
	Logger interfaces.Logger

	// Metrics records page loads and mutation outcomes; optional
	Metrics interfaces.Metrics

	// Feed tunes every controller the client creates
	Feed feed.Config

	// ShareStorage enables ItemView.Share when set
	ShareStorage interfaces.ShareStorage

	// ShareBaseURL prefixes share links
	ShareBaseURL string
}

// WithBaseURL points the client at a reels API server
func WithBaseURL(baseURL string, timeout time.Duration) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return errors.New("base URL cannot be empty")
		}
		src := remote.New(baseURL, standard.NewStandardHTTPClient(timeout))
		c.Source = src
		c.Profiles = src
		return nil
	}
}

// WithRemote uses a custom HTTP client against baseURL
func WithRemote(baseURL string, httpClient interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if baseURL == "" || httpClient == nil {
			return errors.New("remote source needs a base URL and an HTTP client")
		}
		src := remote.New(baseURL, httpClient)
		c.Source = src
		c.Profiles = src
		return nil
	}
}

// WithSource uses an in-process source such as the memory store
func WithSource(source interfaces.VideoSource, profiles interfaces.ProfileSource) Option {
	return func(c *Config) error {
		if source == nil {
			return errors.New("source cannot be nil")
		}
		c.Source = source
		c.Profiles = profiles
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics sets a metrics recorder
func WithMetrics(m interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = m
		return nil
	}
}

// WithFeedConfig overrides page sizes and thresholds
func WithFeedConfig(cfg feed.Config) Option {
	return func(c *Config) error {
		c.Feed = cfg
		return nil
	}
}

// WithSharing enables share links stored in storage under baseURL
func WithSharing(storage interfaces.ShareStorage, baseURL string) Option {
	return func(c *Config) error {
		if storage == nil {
			return errors.New("share storage cannot be nil")
		}
		c.ShareStorage = storage
		c.ShareBaseURL = baseURL
		return nil
	}
}

func defaultConfig() Config {
	return Config{
		Logger: QuietLogger(),
		Feed:   feed.DefaultConfig(),
	}
}

// QuietLogger returns a logger that discards all output
func QuietLogger() interfaces.Logger {
	return quietLogger{}
}

type quietLogger struct{}

func (quietLogger) Debug(string, map[string]interface{}) {}
func (quietLogger) Info(string, map[string]interface{})  {}
func (quietLogger) Warn(string, map[string]interface{})  {}
func (quietLogger) Error(string, map[string]interface{}) {}
