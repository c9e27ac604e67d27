package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Abdessamed08/boutique-api/models"
)

func testStore(t *testing.T) *Store {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	return NewStore(client, time.Minute, false)
}

func TestMissingCartIsEmpty(t *testing.T) {
	store := testStore(t)
	cart, err := store.Cart(context.Background(), "sess-missing")
	require.NoError(t, err)
	require.True(t, cart.IsEmpty())
}

func TestCartSurvivesRequests(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	const sid = "sess-roundtrip"
	t.Cleanup(func() { store.ClearCart(ctx, sid) })

	cart := models.Cart{"7": 2, "9": 1}
	require.NoError(t, store.SaveCart(ctx, sid, cart))

	loaded, err := store.Cart(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, cart, loaded)

	require.NoError(t, store.ClearCart(ctx, sid))
	loaded, err = store.Cart(ctx, sid)
	require.NoError(t, err)
	require.True(t, loaded.IsEmpty())
}

func TestSavingEmptyCartDeletesKey(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	const sid = "sess-emptied"

	require.NoError(t, store.SaveCart(ctx, sid, models.Cart{"7": 1}))
	require.NoError(t, store.SaveCart(ctx, sid, models.Cart{}))

	_, err := store.cache.Get(ctx, cartKey(sid)).Result()
	require.ErrorIs(t, err, redis.Nil)
}
