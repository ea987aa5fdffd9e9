// ABOUTME: Health check handler
// ABOUTME: Reports service status and catalog size

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"reels-app-api/api/dto/responses"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthHandler serves GET /health
type HealthHandler struct {
	countVideos func() int
}

// NewHealthHandler creates a health handler. countVideos may be nil.
func NewHealthHandler(countVideos func() int) *HealthHandler {
	return &HealthHandler{countVideos: countVideos}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"System"},
	}, h.Health)
}

// HealthOutput defines the output for the health check
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{Body: responses.HealthResponse{Status: "ok", Version: Version}}
	if h.countVideos != nil {
		out.Body.Videos = h.countVideos()
	}
	return out, nil
}
