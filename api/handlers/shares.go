// ABOUTME: Share handlers for the Huma API
// ABOUTME: Creates and resolves share links when the share feature is enabled

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"reels-app-api/api/dto/mappers"
	"reels-app-api/api/dto/requests"
	"reels-app-api/api/dto/responses"
	"reels-app-api/core/domain"
	"reels-app-api/pkg/featureflags"
)

// ShareService interface defines the methods needed from the share service
type ShareService interface {
	CreateShare(ctx context.Context, videoID, baseURL string) (*domain.Share, error)
	GetShare(ctx context.Context, id string) (*domain.Share, error)
}

// ShareHandler handles share-related HTTP requests
type ShareHandler struct {
	shareService ShareService
	baseURL      string
}

// NewShareHandler creates a share handler that builds links under baseURL
func NewShareHandler(shareService ShareService, baseURL string) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
		baseURL:      baseURL,
	}
}

// RegisterRoutes registers all share-related routes
func (h *ShareHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "createShare",
		Method:        http.MethodPost,
		Path:          "/videos/{id}/share",
		Summary:       "Create a share link",
		Tags:          []string{"Shares"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateShare)

	huma.Register(api, huma.Operation{
		OperationID: "getShare",
		Method:      http.MethodGet,
		Path:        "/shares/{id}",
		Summary:     "Resolve a share link",
		Tags:        []string{"Shares"},
	}, h.GetShare)
}

// CreateShareInput defines the input for the CreateShare operation
type CreateShareInput struct {
	requests.VideoPathRequest
}

// ShareOutput wraps a share link
type ShareOutput struct {
	Body responses.ShareResponse
}

// CreateShare handles the POST /videos/{id}/share endpoint
func (h *ShareHandler) CreateShare(ctx context.Context, input *CreateShareInput) (*ShareOutput, error) {
	if !featureflags.IsEnabled(ctx, featureflags.ShareEnabled) {
		return nil, huma.Error404NotFound("sharing is not enabled")
	}

	share, err := h.shareService.CreateShare(ctx, input.ID, h.baseURL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ShareOutput{Body: *mappers.ToShareResponse(share)}, nil
}

// GetShareInput defines the input for the GetShare operation
type GetShareInput struct {
	requests.SharePathRequest
}

// GetShare handles the GET /shares/{id} endpoint
func (h *ShareHandler) GetShare(ctx context.Context, input *GetShareInput) (*ShareOutput, error) {
	if !featureflags.IsEnabled(ctx, featureflags.ShareEnabled) {
		return nil, huma.Error404NotFound("sharing is not enabled")
	}

	share, err := h.shareService.GetShare(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ShareOutput{Body: *mappers.ToShareResponse(share)}, nil
}
