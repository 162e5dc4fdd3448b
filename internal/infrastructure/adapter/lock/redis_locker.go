package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"
)

// releaseScript deletes the key only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implements persistence.AccountLocker with SET NX leases
type RedisLocker struct {
	client      redis.UniversalClient
	prefix      string
	idGenerator coreport.IDGenerator
	logger      coreport.Logger
	tokens      sync.Map // account ID -> token of the lease this process holds
}

var _ persistence.AccountLocker = (*RedisLocker)(nil)

// NewRedisClient builds a client from the redis settings and checks it answers
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewRedisLocker creates a locker whose keys are prefix + account ID
func NewRedisLocker(client redis.UniversalClient, prefix string, idGenerator coreport.IDGenerator, logger coreport.Logger) *RedisLocker {
	return &RedisLocker{
		client:      client,
		prefix:      prefix,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

func (l *RedisLocker) key(accountID string) string {
	return l.prefix + accountID
}

// Acquire sets the lease key unless another owner holds it
func (l *RedisLocker) Acquire(ctx context.Context, accountID string, ttl time.Duration) error {
	token := l.idGenerator.NewID()

	ok, err := l.client.SetNX(ctx, l.key(accountID), token, ttl).Result()
	if err != nil {
		l.logger.Error("Redis error acquiring lock", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return storeError(err)
	}
	if !ok {
		l.logger.Debug("Account is already locked", map[string]any{"account_id": accountID})
		return errs.ErrAccountLocked
	}

	l.tokens.Store(accountID, token)
	return nil
}

// Release deletes the lease taken by this process; a lease already taken over is left alone
func (l *RedisLocker) Release(ctx context.Context, accountID string) error {
	value, ok := l.tokens.LoadAndDelete(accountID)
	if !ok {
		return nil
	}

	deleted, err := releaseScript.Run(ctx, l.client, []string{l.key(accountID)}, value.(string)).Int64()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			l.logger.Warn("Context ended when releasing lock, lock will expire automatically", map[string]any{
				"account_id": accountID,
			})
			return nil
		}
		l.logger.Error("Failed to release lock", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return storeError(err)
	}

	if deleted == 0 {
		l.logger.Warn("Lock expired before release", map[string]any{"account_id": accountID})
	}
	return nil
}

func storeError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
}
