package main

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/lock"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/mongostore"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"
)

// lockCleanupInterval is how often expired postgres leases are purged
const lockCleanupInterval = time.Minute

// ledgerStore is the store selected by database.driver with its lock and health probes
type ledgerStore struct {
	uow     persistence.UnitOfWork
	locker  persistence.AccountLocker
	checks  []handler.HealthCheck
	closers []func(ctx context.Context) error
}

func (s *ledgerStore) close(ctx context.Context, logger coreport.Logger) {
	// Reverse order of opening
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			logger.Error("Failed to close store resource", map[string]any{"error": err.Error()})
		}
	}
}

func openStore(
	ctx context.Context,
	cfg *config.Config,
	logger coreport.Logger,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
) (*ledgerStore, error) {
	store := &ledgerStore{}

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		manager := database.NewManager(database.FromAppConfig(cfg), logger, idGenerator, timeProvider)
		if err := manager.Connect(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		locks := manager.CreateAccountLocker()

		cleanupCtx, stopCleanup := context.WithCancel(context.Background())
		go cleanupExpiredLocks(cleanupCtx, locks, logger)

		store.uow = manager.CreateUnitOfWork()
		store.locker = locks
		store.checks = append(store.checks, handler.HealthCheck{
			Name:    "postgres",
			Check:   manager.Ping,
			Details: func() any { return manager.PoolMetrics() },
		})
		store.closers = append(store.closers, func(context.Context) error {
			stopCleanup()
			return manager.Close()
		})

	case config.DriverMongo:
		mongoStore, err := mongostore.Connect(ctx, mongostore.FromAppConfig(cfg), logger, idGenerator, timeProvider)
		if err != nil {
			return nil, err
		}
		store.uow = mongoStore
		store.checks = append(store.checks, handler.HealthCheck{Name: "mongo", Check: mongoStore.Ping})
		store.closers = append(store.closers, mongoStore.Close)

	case config.DriverMemory:
		logger.Warn("Using the in-memory ledger store; balances are lost on restart", nil)
		store.uow = memory.NewStore(idGenerator, timeProvider, logger)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if cfg.Redis.Enabled {
		client, err := lock.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			store.close(ctx, logger)
			return nil, err
		}
		store.locker = lock.NewRedisLocker(client, cfg.Redis.Prefix, idGenerator, logger.With(map[string]any{"component": "redis-lock"}))
		store.checks = append(store.checks, handler.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
		store.closers = append(store.closers, func(context.Context) error { return client.Close() })
	}

	return store, nil
}

func cleanupExpiredLocks(ctx context.Context, locks interface {
	CleanupExpiredLocks(ctx context.Context) (int64, error)
}, logger coreport.Logger) {
	ticker := time.NewTicker(lockCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := locks.CleanupExpiredLocks(ctx); err != nil {
				logger.Warn("Expired lock cleanup failed", map[string]any{"error": err.Error()})
			}
		}
	}
}
