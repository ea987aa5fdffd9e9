// ABOUTME: Huma middleware that makes the feature flag manager available to handlers
// ABOUTME: Handlers read flags with featureflags.IsEnabled(ctx, flag)

package middleware

import (
	"github.com/danielgtaylor/huma/v2"

	"reels-app-api/pkg/featureflags"
)

// FeatureFlags attaches manager to every operation's context
func FeatureFlags(manager featureflags.Manager) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, featureflags.WithManager(ctx.Context(), manager)))
	}
}
