package lock

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"
)

func TestRedisLocker_UnreachableBackend(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })

	locker := NewRedisLocker(client, "test:", idgen.NewUUIDGenerator(), logger.NewNoopLogger())

	err := locker.Acquire(context.Background(), "acc-1", time.Second)
	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)

	// Nothing was taken, so there is nothing to release
	assert.NoError(t, locker.Release(context.Background(), "acc-1"))
}

func TestRedisLocker(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set, skipping redis integration test")
	}

	ctx := context.Background()
	client, err := NewRedisClient(ctx, config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	prefix := "wallet-ledger-test:" + idgen.NewUUIDGenerator().NewID() + ":"
	first := NewRedisLocker(client, prefix, idgen.NewUUIDGenerator(), logger.NewNoopLogger())
	second := NewRedisLocker(client, prefix, idgen.NewUUIDGenerator(), logger.NewNoopLogger())

	t.Run("Second owner is refused", func(t *testing.T) {
		require.NoError(t, first.Acquire(ctx, "acc-1", 5*time.Second))
		assert.ErrorIs(t, second.Acquire(ctx, "acc-1", 5*time.Second), errs.ErrAccountLocked)

		require.NoError(t, first.Release(ctx, "acc-1"))
		require.NoError(t, second.Acquire(ctx, "acc-1", 5*time.Second))
		require.NoError(t, second.Release(ctx, "acc-1"))
	})

	t.Run("Expired lease is taken over and not released by the old owner", func(t *testing.T) {
		require.NoError(t, first.Acquire(ctx, "acc-2", 50*time.Millisecond))
		time.Sleep(150 * time.Millisecond)

		require.NoError(t, second.Acquire(ctx, "acc-2", 5*time.Second))
		require.NoError(t, first.Release(ctx, "acc-2"))

		holder, err := client.Get(ctx, prefix+"acc-2").Result()
		require.NoError(t, err)
		assert.NotEmpty(t, holder)
		require.NoError(t, second.Release(ctx, "acc-2"))

		_, err = client.Get(ctx, prefix+"acc-2").Result()
		assert.ErrorIs(t, err, redis.Nil)
	})
}
