package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reels-app-api/api/dto/responses"
	"reels-app-api/api/middleware"
	"reels-app-api/core/domain"
	"reels-app-api/core/errors"
	"reels-app-api/pkg/featureflags"
)

type mockShareService struct {
	createShareFunc func(ctx context.Context, videoID, baseURL string) (*domain.Share, error)
	getShareFunc    func(ctx context.Context, id string) (*domain.Share, error)
}

func (m *mockShareService) CreateShare(ctx context.Context, videoID, baseURL string) (*domain.Share, error) {
	if m.createShareFunc != nil {
		return m.createShareFunc(ctx, videoID, baseURL)
	}
	return domain.NewShare(videoID, baseURL, time.Hour)
}

func (m *mockShareService) GetShare(ctx context.Context, id string) (*domain.Share, error) {
	if m.getShareFunc != nil {
		return m.getShareFunc(ctx, id)
	}
	return nil, &errors.NotFoundError{Resource: "share", ID: id}
}

func newShareAPI(t *testing.T, svc ShareService, enabled bool) humatest.TestAPI {
	_, api := humatest.New(t)
	api.UseMiddleware(middleware.FeatureFlags(featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.ShareEnabled: enabled,
	})))
	NewShareHandler(svc, "https://reels.example.com").RegisterRoutes(api)
	return api
}

func TestShareHandler_CreateShare(t *testing.T) {
	var gotBase string
	svc := &mockShareService{
		createShareFunc: func(ctx context.Context, videoID, baseURL string) (*domain.Share, error) {
			gotBase = baseURL
			return domain.NewShare(videoID, baseURL, time.Hour)
		},
	}
	api := newShareAPI(t, svc, true)

	resp := api.Post("/videos/3/share")

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "https://reels.example.com", gotBase)

	var body responses.ShareResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "3", body.VideoID)
	assert.Contains(t, body.URL, "https://reels.example.com/s/")
	assert.NotNil(t, body.ExpiresAt)
}

func TestShareHandler_DisabledReturns404(t *testing.T) {
	api := newShareAPI(t, &mockShareService{}, false)

	assert.Equal(t, http.StatusNotFound, api.Post("/videos/3/share").Code)
	assert.Equal(t, http.StatusNotFound, api.Get("/shares/123e4567-e89b-12d3-a456-426614174000").Code)
}

func TestShareHandler_GetShare(t *testing.T) {
	share, err := domain.NewShare("5", "https://reels.example.com", time.Hour)
	require.NoError(t, err)

	svc := &mockShareService{
		getShareFunc: func(ctx context.Context, id string) (*domain.Share, error) {
			if id == share.ID {
				return share, nil
			}
			return nil, &errors.NotFoundError{Resource: "share", ID: id}
		},
	}
	api := newShareAPI(t, svc, true)

	resp := api.Get("/shares/" + share.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"videoId":"5"`)

	missing := api.Get("/shares/123e4567-e89b-12d3-a456-426614174000")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestShareHandler_GetShare_InvalidID(t *testing.T) {
	svc := &mockShareService{
		getShareFunc: func(ctx context.Context, id string) (*domain.Share, error) {
			return nil, &errors.ValidationError{Field: "id", Message: "invalid share ID format"}
		},
	}
	api := newShareAPI(t, svc, true)

	resp := api.Get("/shares/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
