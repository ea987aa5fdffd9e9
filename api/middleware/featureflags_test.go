package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"

	"reels-app-api/pkg/featureflags"
)

type flagOutput struct {
	Body struct {
		Share bool `json:"share"`
	}
}

func TestFeatureFlags_AttachesManager(t *testing.T) {
	_, api := humatest.New(t)
	manager := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.ShareEnabled: true,
	})
	api.UseMiddleware(FeatureFlags(manager))

	huma.Register(api, huma.Operation{
		OperationID: "flags",
		Method:      http.MethodGet,
		Path:        "/flags",
	}, func(ctx context.Context, _ *struct{}) (*flagOutput, error) {
		out := &flagOutput{}
		out.Body.Share = featureflags.IsEnabled(ctx, featureflags.ShareEnabled)
		return out, nil
	})

	resp := api.Get("/flags")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"share":true`)
}
