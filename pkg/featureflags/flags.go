// ABOUTME: Feature flags for optional endpoints and feed behaviors
// ABOUTME: Flags come from FEATURE_* environment variables or a static map and travel in the request context

package featureflags

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"
)

// FeatureFlag names one toggle
type FeatureFlag string

const (
	// FollowInflightGuard ignores follow clicks while a follow call is in flight,
	// matching the guard likes always have
	FollowInflightGuard FeatureFlag = "follow_inflight_guard"

	// FailureInjection lets the video source fail calls at the configured rate
	FailureInjection FeatureFlag = "failure_injection"

	// ShareEnabled enables the share endpoints
	ShareEnabled FeatureFlag = "share_enabled"

	// MetricsEnabled enables the metrics endpoint
	MetricsEnabled FeatureFlag = "metrics_enabled"

	// RateLimitEnabled enables rate limiting
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"

	// ProfileCacheEnabled caches user profiles
	ProfileCacheEnabled FeatureFlag = "profile_cache_enabled"
)

// AllFlags lists every defined flag
var AllFlags = []FeatureFlag{
	FollowInflightGuard,
	FailureInjection,
	ShareEnabled,
	MetricsEnabled,
	RateLimitEnabled,
	ProfileCacheEnabled,
}

// Manager answers whether a flag is on
type Manager interface {
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled overrides a flag for the lifetime of the manager
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of every known flag
	GetAllFlags() map[FeatureFlag]bool
}

// overrides is the mutable flag map shared by both managers
type overrides struct {
	mu    sync.RWMutex
	flags map[FeatureFlag]bool
}

func (o *overrides) lookup(flag FeatureFlag) (enabled, ok bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	enabled, ok = o.flags[flag]
	return enabled, ok
}

func (o *overrides) set(flag FeatureFlag, enabled bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.flags == nil {
		o.flags = make(map[FeatureFlag]bool)
	}
	o.flags[flag] = enabled
}

// EnvManager reads flags from <prefix><FLAG_NAME> environment variables
type EnvManager struct {
	overrides
	prefix string
}

// NewEnvManager creates an env-backed manager; an empty prefix means "FEATURE_"
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{prefix: prefix}
}

// IsEnabled prefers an override, then the environment
func (m *EnvManager) IsEnabled(_ context.Context, flag FeatureFlag) bool {
	if enabled, ok := m.lookup(flag); ok {
		return enabled
	}
	return parseValue(os.Getenv(m.prefix + strings.ToUpper(string(flag))))
}

// SetEnabled overrides the environment for flag
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.set(flag, enabled)
}

// GetAllFlags evaluates every flag in AllFlags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	out := make(map[FeatureFlag]bool, len(AllFlags))
	for _, flag := range AllFlags {
		out[flag] = m.IsEnabled(ctx, flag)
	}
	return out
}

// parseValue accepts the strconv booleans plus "enabled"
func parseValue(value string) bool {
	if strings.EqualFold(value, "enabled") {
		return true
	}
	enabled, err := strconv.ParseBool(value)
	return err == nil && enabled
}

// StaticManager serves a fixed map; unknown flags are off
type StaticManager struct {
	overrides
}

// NewStaticManager copies flags into a new manager
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	m := &StaticManager{}
	for flag, enabled := range flags {
		m.set(flag, enabled)
	}
	return m
}

// IsEnabled reports the stored value
func (m *StaticManager) IsEnabled(_ context.Context, flag FeatureFlag) bool {
	enabled, _ := m.lookup(flag)
	return enabled
}

// SetEnabled stores a value
func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.set(flag, enabled)
}

// GetAllFlags returns a copy of the stored values
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[FeatureFlag]bool, len(m.flags))
	for k, v := range m.flags {
		out[k] = v
	}
	return out
}

type contextKey struct{}

// WithManager returns ctx carrying manager
func WithManager(ctx context.Context, manager Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, manager)
}

// FromContext returns the manager in ctx, or one with every flag off
func FromContext(ctx context.Context) Manager {
	if manager, ok := ctx.Value(contextKey{}).(Manager); ok {
		return manager
	}
	return NewStaticManager(nil)
}

// IsEnabled checks flag against the manager carried by ctx
func IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	return FromContext(ctx).IsEnabled(ctx, flag)
}
