package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reels-app-api/api/dto/responses"
	"reels-app-api/core/domain"
	"reels-app-api/core/errors"
)

// mockVideoService is a func-field implementation of VideoService
type mockVideoService struct {
	listVideosFunc   func(ctx context.Context, page, limit, offset int) (*domain.FeedPage, error)
	toggleLikeFunc   func(ctx context.Context, videoID string) (*domain.VideoItem, error)
	toggleFollowFunc func(ctx context.Context, authorID string) (*domain.VideoItem, error)
	getProfileFunc   func(ctx context.Context, userID string) (*domain.UserProfile, error)
}

func (m *mockVideoService) ListVideos(ctx context.Context, page, limit, offset int) (*domain.FeedPage, error) {
	if m.listVideosFunc != nil {
		return m.listVideosFunc(ctx, page, limit, offset)
	}
	return &domain.FeedPage{Page: page}, nil
}

func (m *mockVideoService) ToggleLike(ctx context.Context, videoID string) (*domain.VideoItem, error) {
	if m.toggleLikeFunc != nil {
		return m.toggleLikeFunc(ctx, videoID)
	}
	return nil, &errors.NotFoundError{Resource: "video", ID: videoID}
}

func (m *mockVideoService) ToggleFollow(ctx context.Context, authorID string) (*domain.VideoItem, error) {
	if m.toggleFollowFunc != nil {
		return m.toggleFollowFunc(ctx, authorID)
	}
	return nil, &errors.NotFoundError{Resource: "author", ID: authorID}
}

func (m *mockVideoService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if m.getProfileFunc != nil {
		return m.getProfileFunc(ctx, userID)
	}
	return nil, &errors.NotFoundError{Resource: "user", ID: userID}
}

func newVideoAPI(t *testing.T, svc VideoService) humatest.TestAPI {
	_, api := humatest.New(t)
	NewVideoHandler(svc).RegisterRoutes(api)
	return api
}

func TestVideoHandler_RegisterRoutes(t *testing.T) {
	api := newVideoAPI(t, &mockVideoService{})

	paths := api.OpenAPI().Paths
	require.NotNil(t, paths["/videos"])
	assert.NotNil(t, paths["/videos"].Get)
	require.NotNil(t, paths["/videos/{id}/like"])
	assert.NotNil(t, paths["/videos/{id}/like"].Post)
	require.NotNil(t, paths["/authors/{authorId}/follow"])
	assert.NotNil(t, paths["/authors/{authorId}/follow"].Post)
	require.NotNil(t, paths["/users/{id}"])
	assert.NotNil(t, paths["/users/{id}"].Get)
}

func TestVideoHandler_ListVideos_Defaults(t *testing.T) {
	var gotPage, gotLimit, gotOffset int
	svc := &mockVideoService{
		listVideosFunc: func(ctx context.Context, page, limit, offset int) (*domain.FeedPage, error) {
			gotPage, gotLimit, gotOffset = page, limit, offset
			return &domain.FeedPage{
				Items:      []domain.VideoItem{{ID: "1", AuthorID: "gabbar_singh", LikeCount: 1500}},
				HasMore:    true,
				Page:       page,
				TotalPages: 2,
			}, nil
		},
	}
	api := newVideoAPI(t, svc)

	resp := api.Get("/videos")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, 0, gotOffset)

	var body responses.VideosResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "1", body.Data[0].ID)
	assert.Equal(t, int64(1500), body.Data[0].Likes)
	assert.True(t, body.HasMore)
	assert.Equal(t, 2, body.TotalPages)
}

func TestVideoHandler_ListVideos_PassesOffset(t *testing.T) {
	var gotPage, gotLimit, gotOffset int
	svc := &mockVideoService{
		listVideosFunc: func(ctx context.Context, page, limit, offset int) (*domain.FeedPage, error) {
			gotPage, gotLimit, gotOffset = page, limit, offset
			return &domain.FeedPage{Page: page}, nil
		},
	}
	api := newVideoAPI(t, svc)

	resp := api.Get("/videos?page=2&limit=3&offset=5")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 2, gotPage)
	assert.Equal(t, 3, gotLimit)
	assert.Equal(t, 5, gotOffset)
	assert.Contains(t, resp.Body.String(), `"data":[]`)
}

func TestVideoHandler_ListVideos_RejectsOutOfRangeQuery(t *testing.T) {
	api := newVideoAPI(t, &mockVideoService{})

	tests := []string{
		"/videos?limit=0",
		"/videos?limit=51",
		"/videos?page=0",
		"/videos?offset=-1",
	}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			resp := api.Get(path)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		})
	}
}

func TestVideoHandler_ListVideos_SourceFailure(t *testing.T) {
	svc := &mockVideoService{
		listVideosFunc: func(ctx context.Context, page, limit, offset int) (*domain.FeedPage, error) {
			return nil, &errors.ExternalAPIError{StatusCode: 503, Message: "simulated network error", API: "video-source"}
		},
	}
	api := newVideoAPI(t, svc)

	resp := api.Get("/videos")

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestVideoHandler_ToggleLike(t *testing.T) {
	svc := &mockVideoService{
		toggleLikeFunc: func(ctx context.Context, videoID string) (*domain.VideoItem, error) {
			return &domain.VideoItem{ID: videoID, AuthorID: "a", IsLiked: true, LikeCount: 101}, nil
		},
	}
	api := newVideoAPI(t, svc)

	resp := api.Post("/videos/7/like")

	require.Equal(t, http.StatusOK, resp.Code)
	var body responses.VideoResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "7", body.ID)
	assert.True(t, body.IsLiked)
	assert.Equal(t, int64(101), body.Likes)
}

func TestVideoHandler_ToggleLike_UnknownVideo(t *testing.T) {
	api := newVideoAPI(t, &mockVideoService{})

	resp := api.Post("/videos/missing/like")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestVideoHandler_ToggleFollow(t *testing.T) {
	var got string
	svc := &mockVideoService{
		toggleFollowFunc: func(ctx context.Context, authorID string) (*domain.VideoItem, error) {
			got = authorID
			return &domain.VideoItem{ID: "1", AuthorID: authorID, IsFollowingAuthor: true}, nil
		},
	}
	api := newVideoAPI(t, svc)

	resp := api.Post("/authors/gabbar_singh/follow")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "gabbar_singh", got)
	assert.Contains(t, resp.Body.String(), `"isFollowing":true`)
}

func TestVideoHandler_GetProfile(t *testing.T) {
	svc := &mockVideoService{
		getProfileFunc: func(ctx context.Context, userID string) (*domain.UserProfile, error) {
			return &domain.UserProfile{ID: "user_1", Name: "Siddharth", Followers: 12500}, nil
		},
	}
	api := newVideoAPI(t, svc)

	resp := api.Get("/users/me")

	require.Equal(t, http.StatusOK, resp.Code)
	var body responses.ProfileResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "user_1", body.ID)
	assert.Equal(t, int64(12500), body.Followers)
}

func TestVideoHandler_GetProfile_NotFound(t *testing.T) {
	api := newVideoAPI(t, &mockVideoService{})

	resp := api.Get("/users/nobody")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
