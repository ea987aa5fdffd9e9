package cacheshare

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reels-app-api/core/domain"
	"reels-app-api/core/share"
	"reels-app-api/infrastructure/cache/memory"
	"reels-app-api/infrastructure/cache/sqlite"
)

func TestStorage_SaveAndGet(t *testing.T) {
	storage := New(memory.NewMemoryCache())
	ctx := context.Background()

	s, err := domain.NewShare("3", "https://reels.example.com", time.Hour)
	require.NoError(t, err)
	require.NoError(t, storage.Save(ctx, s))

	got, err := storage.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.VideoID, got.VideoID)
	assert.Equal(t, s.URL, got.URL)
}

func TestStorage_GetMissingReturnsNil(t *testing.T) {
	storage := New(memory.NewMemoryCache())

	got, err := storage.Get(context.Background(), "nope")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStorage_SaveRequiresID(t *testing.T) {
	storage := New(memory.NewMemoryCache())

	assert.Error(t, storage.Save(context.Background(), nil))
	assert.Error(t, storage.Save(context.Background(), &domain.Share{}))
}

func TestStorage_ExpiresWithShare(t *testing.T) {
	storage := New(memory.NewMemoryCache())
	ctx := context.Background()

	s, err := domain.NewShare("3", "https://reels.example.com", 20*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, storage.Save(ctx, s))

	time.Sleep(40 * time.Millisecond)

	got, err := storage.Get(ctx, s.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestShareService_OverSQLite(t *testing.T) {
	cache, err := sqlite.NewSQLiteCache(":memory:")
	require.NoError(t, err)
	defer cache.Close()

	svc := share.NewShareService(New(cache))
	ctx := context.Background()

	created, err := svc.CreateShare(ctx, "5", "https://reels.example.com")
	require.NoError(t, err)

	got, err := svc.GetShare(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "5", got.VideoID)
}
