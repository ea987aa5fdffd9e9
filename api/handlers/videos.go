// ABOUTME: Video handlers for the Huma API
// ABOUTME: Serves feed pages, like/follow toggles and user profiles

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"reels-app-api/api/dto/mappers"
	"reels-app-api/api/dto/requests"
	"reels-app-api/api/dto/responses"
	"reels-app-api/core/domain"
)

// VideoService interface defines the methods needed from the catalog service
type VideoService interface {
	ListVideos(ctx context.Context, page, limit, offset int) (*domain.FeedPage, error)
	ToggleLike(ctx context.Context, videoID string) (*domain.VideoItem, error)
	ToggleFollow(ctx context.Context, authorID string) (*domain.VideoItem, error)
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// VideoHandler handles video-related HTTP requests
type VideoHandler struct {
	videoService VideoService
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(videoService VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// RegisterRoutes registers all video-related routes
func (h *VideoHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listVideos",
		Method:      http.MethodGet,
		Path:        "/videos",
		Summary:     "List feed videos",
		Description: "Returns one page of the video feed. Pass offset to continue from the videos already loaded.",
		Tags:        []string{"Videos"},
	}, h.ListVideos)

	huma.Register(api, huma.Operation{
		OperationID: "toggleLike",
		Method:      http.MethodPost,
		Path:        "/videos/{id}/like",
		Summary:     "Toggle like on a video",
		Tags:        []string{"Videos"},
	}, h.ToggleLike)

	huma.Register(api, huma.Operation{
		OperationID: "toggleFollow",
		Method:      http.MethodPost,
		Path:        "/authors/{authorId}/follow",
		Summary:     "Toggle follow on an author",
		Description: "Flips the follow state for every video by the author and returns one of them",
		Tags:        []string{"Authors"},
	}, h.ToggleFollow)

	huma.Register(api, huma.Operation{
		OperationID: "getUserProfile",
		Method:      http.MethodGet,
		Path:        "/users/{id}",
		Summary:     "Get a user profile",
		Tags:        []string{"Users"},
	}, h.GetProfile)
}

// ListVideosInput defines the input for the ListVideos operation
type ListVideosInput struct {
	requests.ListVideosRequest
}

// ListVideosOutput defines the output for the ListVideos operation
type ListVideosOutput struct {
	Body responses.VideosResponse
}

// ListVideos handles the GET /videos endpoint
func (h *VideoHandler) ListVideos(ctx context.Context, input *ListVideosInput) (*ListVideosOutput, error) {
	page, err := h.videoService.ListVideos(ctx, input.Page, input.Limit, input.Offset)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListVideosOutput{Body: *mappers.ToVideosResponse(page)}, nil
}

// ToggleLikeInput defines the input for the ToggleLike operation
type ToggleLikeInput struct {
	requests.VideoPathRequest
}

// VideoOutput wraps a single video
type VideoOutput struct {
	Body responses.VideoResponse
}

// ToggleLike handles the POST /videos/{id}/like endpoint
func (h *VideoHandler) ToggleLike(ctx context.Context, input *ToggleLikeInput) (*VideoOutput, error) {
	item, err := h.videoService.ToggleLike(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &VideoOutput{Body: *mappers.ToVideoResponse(item)}, nil
}

// ToggleFollowInput defines the input for the ToggleFollow operation
type ToggleFollowInput struct {
	requests.AuthorPathRequest
}

// ToggleFollow handles the POST /authors/{authorId}/follow endpoint
func (h *VideoHandler) ToggleFollow(ctx context.Context, input *ToggleFollowInput) (*VideoOutput, error) {
	item, err := h.videoService.ToggleFollow(ctx, input.AuthorID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &VideoOutput{Body: *mappers.ToVideoResponse(item)}, nil
}

// GetProfileInput defines the input for the GetProfile operation
type GetProfileInput struct {
	requests.UserPathRequest
}

// ProfileOutput wraps a user profile
type ProfileOutput struct {
	Body responses.ProfileResponse
}

// GetProfile handles the GET /users/{id} endpoint
func (h *VideoHandler) GetProfile(ctx context.Context, input *GetProfileInput) (*ProfileOutput, error) {
	profile, err := h.videoService.GetProfile(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ProfileOutput{Body: *mappers.ToProfileResponse(profile)}, nil
}
