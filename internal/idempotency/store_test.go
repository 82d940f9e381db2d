package idempotency

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func exerciseStore(t *testing.T, store Store) {
	ctx := context.Background()
	key := uuid.NewString()

	id, err := store.Claim(ctx, key)
	require.NoError(t, err)
	assert.Zero(t, id, "first claim owns the key")

	_, err = store.Claim(ctx, key)
	assert.ErrorIs(t, err, ErrInFlight)

	require.NoError(t, store.Complete(ctx, key, 42))
	id, err = store.Claim(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	other := uuid.NewString()
	_, err = store.Claim(ctx, other)
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, other))
	id, err = store.Claim(ctx, other)
	require.NoError(t, err)
	assert.Zero(t, id, "released key can be claimed again")
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Hour))
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := store.Claim(ctx, "k")
	require.NoError(t, err)
	require.NoError(t, store.Complete(ctx, "k", 7))

	now = now.Add(2 * time.Minute)
	id, err := store.Claim(ctx, "k")
	require.NoError(t, err)
	assert.Zero(t, id, "expired key behaves as new")
}

func TestRedisStore(t *testing.T) {
	client := getRedisClient(t)
	exerciseStore(t, NewRedisStore(client, time.Minute))
}
