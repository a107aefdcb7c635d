package favorites

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmitSalunkhe/jmbm-v2/internal/content/domain"
	"github.com/AmitSalunkhe/jmbm-v2/internal/content/repository"
)

func setupTestRedis(t *testing.T) *redis.Client {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestForIdentity(t *testing.T) {
	rdb := setupTestRedis(t)
	store := repository.NewMemStore()

	fav := ForIdentity(Identity{UID: "u1", SessionID: "s1"}, store, rdb)
	assert.IsType(t, &remoteStore{}, fav, "uid wins over session")

	fav = ForIdentity(Identity{SessionID: "s1"}, store, rdb)
	assert.IsType(t, &localStore{}, fav)
}

func TestLocalToggleAndList(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	fav := newLocal(rdb, "session-1")

	b1 := domain.Bhajan{ID: "b1", Title: "रूप पाहता लोचनी"}
	b2 := domain.Bhajan{ID: "b2", Title: "सुंदर ते ध्यान"}

	ok, err := fav.IsFavorite(ctx, "b1")
	require.NoError(t, err)
	assert.False(t, ok)

	added, err := fav.Toggle(ctx, b1)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = fav.Toggle(ctx, b2)
	require.NoError(t, err)
	assert.True(t, added)

	items, err := fav.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// insertion order, full snapshots
	assert.Equal(t, "b1", items[0].ID)
	assert.Equal(t, "रूप पाहता लोचनी", items[0].Title)

	// toggling again removes
	added, err = fav.Toggle(ctx, b1)
	require.NoError(t, err)
	assert.False(t, added)

	ok, err = fav.IsFavorite(ctx, "b1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fav.IsFavorite(ctx, "b2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalClearAll(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	fav := newLocal(rdb, "session-1")

	_, err := fav.Toggle(ctx, domain.Bhajan{ID: "b1"})
	require.NoError(t, err)

	require.NoError(t, fav.ClearAll(ctx))

	items, err := fav.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLocalSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)

	a := newLocal(rdb, "session-a")
	b := newLocal(rdb, "session-b")

	_, err := a.Toggle(ctx, domain.Bhajan{ID: "b1"})
	require.NoError(t, err)

	ok, err := b.IsFavorite(ctx, "b1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoteToggleAndOrder(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStore()
	fav := newRemote(store, "uid-1")

	base := time.Date(2025, 11, 26, 10, 0, 0, 0, time.UTC)
	clock := base
	fav.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	_, err := fav.Toggle(ctx, domain.Bhajan{ID: "b1", Title: "पहिला"})
	require.NoError(t, err)
	_, err = fav.Toggle(ctx, domain.Bhajan{ID: "b2", Title: "दुसरा"})
	require.NoError(t, err)

	items, err := fav.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// most recently added first
	assert.Equal(t, "b2", items[0].ID)
	assert.Equal(t, "b1", items[1].ID)

	added, err := fav.Toggle(ctx, domain.Bhajan{ID: "b2"})
	require.NoError(t, err)
	assert.False(t, added)

	items, err = fav.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b1", items[0].ID)
	assert.Equal(t, "पहिला", items[0].Title)
}

// brokenDeleteStore fails every Delete, leaving reads and writes intact.
type brokenDeleteStore struct {
	*repository.MemStore
}

func (s *brokenDeleteStore) Delete(context.Context, string, string) error {
	return errors.New("delete refused")
}

func TestRemoteToggleDeleteFailure(t *testing.T) {
	ctx := context.Background()
	fav := newRemote(&brokenDeleteStore{repository.NewMemStore()}, "uid-1")

	added, err := fav.Toggle(ctx, domain.Bhajan{ID: "b1", Title: "पहिला"})
	require.NoError(t, err)
	assert.True(t, added)

	// the second toggle tries to remove and fails; the bool is the zero value
	added, err = fav.Toggle(ctx, domain.Bhajan{ID: "b1"})
	require.Error(t, err)
	assert.False(t, added)

	// the favorite is still there
	is, err := fav.IsFavorite(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, is)
}

func TestRemoteOrderWithinOneSecond(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStore()
	fav := newRemote(store, "uid-1")

	// Fractions chosen so a trimmed rendering would sort them backwards:
	// "10:00:01.5Z" compares after "10:00:01.52Z" as strings.
	base := time.Date(2025, 11, 26, 10, 0, 1, 0, time.UTC)
	stamps := []time.Time{
		base.Add(500 * time.Millisecond),
		base.Add(520 * time.Millisecond),
	}
	calls := 0
	fav.now = func() time.Time {
		ts := stamps[calls]
		calls++
		return ts
	}

	_, err := fav.Toggle(ctx, domain.Bhajan{ID: "b1", Title: "पहिला"})
	require.NoError(t, err)
	_, err = fav.Toggle(ctx, domain.Bhajan{ID: "b2", Title: "दुसरा"})
	require.NoError(t, err)

	items, err := fav.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b2", items[0].ID)
	assert.Equal(t, "b1", items[1].ID)
}

func TestRemoteClearAll(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStore()
	fav := newRemote(store, "uid-1")

	clock := time.Date(2025, 11, 26, 10, 0, 0, 0, time.UTC)
	fav.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	for _, id := range []string{"b1", "b2", "b3"} {
		_, err := fav.Toggle(ctx, domain.Bhajan{ID: id})
		require.NoError(t, err)
	}

	require.NoError(t, fav.ClearAll(ctx))

	items, err := fav.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRemoteNilStore(t *testing.T) {
	ctx := context.Background()
	fav := newRemote(nil, "uid-1")

	ok, err := fav.IsFavorite(ctx, "b1")
	require.NoError(t, err)
	assert.False(t, ok)

	items, err := fav.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = fav.Toggle(ctx, domain.Bhajan{ID: "b1"})
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestRemoteAndLocalAreDisjoint(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	store := repository.NewMemStore()

	local := ForIdentity(Identity{SessionID: "s1"}, store, rdb)
	_, err := local.Toggle(ctx, domain.Bhajan{ID: "b1"})
	require.NoError(t, err)

	// signing in does not migrate the anonymous set
	remote := ForIdentity(Identity{UID: "u1", SessionID: "s1"}, store, rdb)
	items, err := remote.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
