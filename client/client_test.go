package reels

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "reels-app-api/core/errors"
	"reels-app-api/core/feed"
	"reels-app-api/core/interaction"
	"reels-app-api/infrastructure/cache/memory"
	"reels-app-api/infrastructure/storage/cacheshare"
	memsource "reels-app-api/infrastructure/source/memory"
)

func newTestClient(t *testing.T, extra ...Option) (*Client, *memsource.Store) {
	t.Helper()
	store := memsource.NewStore(memsource.WithoutLatency())
	opts := append([]Option{WithSource(store, store)}, extra...)
	client, err := NewClient(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client, store
}

func TestNewClient_RequiresSource(t *testing.T) {
	_, err := NewClient()
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestNewClient_OptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"empty base URL", WithBaseURL("", 0)},
		{"nil source", WithSource(nil, nil)},
		{"nil share storage", WithSharing(nil, "http://x")},
		{"remote without client", WithRemote("http://x", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.opt)
			assert.Error(t, err)
		})
	}
}

func TestNewClient_BaseURL(t *testing.T) {
	client, err := NewClient(WithBaseURL("http://localhost:8000", 0))
	require.NoError(t, err)
	assert.NotNil(t, client.config.Source)
	assert.NotNil(t, client.config.Profiles)
}

func TestSession_StartAndView(t *testing.T) {
	client, _ := newTestClient(t)
	session := client.NewSession()
	ctx := context.Background()

	require.NoError(t, session.Feed().Start(ctx))
	assert.Equal(t, feed.Ready, session.Feed().State())
	assert.Nil(t, session.ActiveView())

	view, err := session.View(0)
	require.NoError(t, err)
	again, err := session.View(0)
	require.NoError(t, err)
	assert.Same(t, view, again)

	_, err = session.View(99)
	assert.True(t, coreerrors.IsNotFound(err))
}

func TestSession_LikeReconcilesFeed(t *testing.T) {
	client, _ := newTestClient(t)
	session := client.NewSession()
	ctx := context.Background()
	require.NoError(t, session.Feed().Start(ctx))

	before, ok := session.Feed().Item(0)
	require.True(t, ok)

	view, err := session.View(0)
	require.NoError(t, err)
	assert.Equal(t, interaction.OutcomeApplied, view.ToggleLike(ctx))

	after, ok := session.Feed().Item(0)
	require.True(t, ok)
	assert.True(t, after.IsLiked)
	assert.Equal(t, before.LikeCount+1, after.LikeCount)
}

func TestSession_ViewAfterRefreshShowsReloadedItem(t *testing.T) {
	client, store := newTestClient(t)
	session := client.NewSession()
	ctx := context.Background()
	require.NoError(t, session.Feed().Start(ctx))

	stale, err := session.View(0)
	require.NoError(t, err)
	id := stale.Snapshot().ID

	// another device likes the video
	_, err = store.ToggleLike(ctx, id)
	require.NoError(t, err)
	require.NoError(t, session.Feed().Refresh(ctx))

	fresh, err := session.View(0)
	require.NoError(t, err)
	assert.NotSame(t, stale, fresh)

	canonical, ok := session.Feed().Item(0)
	require.True(t, ok)
	assert.True(t, canonical.IsLiked)
	assert.Equal(t, canonical.IsLiked, fresh.Snapshot().IsLiked)
	assert.Equal(t, canonical.LikeCount, fresh.Snapshot().LikeCount)

	assert.Equal(t, interaction.OutcomeDiscarded, stale.ToggleLike(ctx))
	after, _ := session.Feed().Item(0)
	assert.True(t, after.IsLiked, "a stale view cannot write back")

	session.Feed().GoTo(0)
	fresh.ToggleMute()
	assert.True(t, session.Feed().Playback(id).Status().Muted)
}

func TestSession_ActiveViewFollowsTracker(t *testing.T) {
	client, _ := newTestClient(t)
	session := client.NewSession()
	require.NoError(t, session.Feed().Start(context.Background()))

	session.Feed().GoTo(1)

	view := session.ActiveView()
	require.NotNil(t, view)
	item, _ := session.Feed().Item(1)
	assert.Equal(t, item.ID, view.Snapshot().ID)
}

func TestSession_ShareNeedsStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		client, _ := newTestClient(t)
		session := client.NewSession()
		require.NoError(t, session.Feed().Start(ctx))
		view, err := session.View(0)
		require.NoError(t, err)

		_, err = view.Share(ctx)
		assert.ErrorIs(t, err, interaction.ErrSharingUnavailable)
	})

	t.Run("enabled", func(t *testing.T) {
		storage := cacheshare.New(memory.NewMemoryCache())
		client, _ := newTestClient(t, WithSharing(storage, "https://reels.example"))
		session := client.NewSession()
		require.NoError(t, session.Feed().Start(ctx))
		view, err := session.View(0)
		require.NoError(t, err)

		share, err := view.Share(ctx)
		require.NoError(t, err)
		assert.Contains(t, share.URL, "https://reels.example")
	})
}

func TestClient_Profile(t *testing.T) {
	client, _ := newTestClient(t)

	profile, err := client.Profile(context.Background(), "me")
	require.NoError(t, err)
	assert.Equal(t, "user_1", profile.ID)

	noProfiles, err := NewClient(WithSource(memsource.NewStore(memsource.WithoutLatency()), nil))
	require.NoError(t, err)
	_, err = noProfiles.Profile(context.Background(), "me")
	assert.True(t, coreerrors.IsNotFound(err))
}

func TestClient_CloseDisposesSessions(t *testing.T) {
	client, _ := newTestClient(t)
	session := client.NewSession()
	require.NoError(t, session.Feed().Start(context.Background()))

	require.NoError(t, client.Close())
	assert.True(t, session.Feed().Closed())
	assert.ErrorIs(t, session.Feed().Refresh(context.Background()), feed.ErrClosed)
}
