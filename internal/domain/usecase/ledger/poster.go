package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

// Scope exposes the repositories bound to one unit of work
type Scope struct {
	Accounts     persistence.AccountRepository
	Transactions persistence.TransactionRepository
}

// PostFunc performs the reads and writes of one balance change inside a unit of work.
// Returning an error rolls every write back.
type PostFunc func(ctx context.Context, scope Scope) error

// PosterConfig tunes serialization and conflict retries
type PosterConfig struct {
	MaxRetries int           // extra attempts after a lost compare-and-swap
	RetryDelay time.Duration // base delay, doubled per attempt
	LockTTL    time.Duration // expiry of distributed account locks
}

// Poster applies balance changes: serialized per account, atomic per change,
// and retried when a concurrent writer won the compare-and-swap
type Poster struct {
	uow          persistence.UnitOfWork
	queue        *AccountQueue
	locker       persistence.AccountLocker
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       PosterConfig
}

// NewPoster creates a poster; locker may be nil when a single process owns the store
func NewPoster(
	uow persistence.UnitOfWork,
	queue *AccountQueue,
	locker persistence.AccountLocker,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config PosterConfig,
) *Poster {
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.LockTTL <= 0 {
		config.LockTTL = 30 * time.Second
	}
	return &Poster{
		uow:          uow,
		queue:        queue,
		locker:       locker,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// Post runs fn on the account's queue, under its distributed lock when configured
func (p *Poster) Post(ctx context.Context, accountID string, fn PostFunc) error {
	return p.queue.Do(ctx, accountID, func(ctx context.Context) error {
		if p.locker != nil {
			if err := p.locker.Acquire(ctx, accountID, p.config.LockTTL); err != nil {
				return err
			}
			defer func() {
				if err := p.locker.Release(context.WithoutCancel(ctx), accountID); err != nil {
					p.logger.Warn("Failed to release account lock", map[string]any{
						"account_id": accountID,
						"error":      err.Error(),
					})
				}
			}()
		}
		return p.withRetry(ctx, accountID, fn)
	})
}

// Read runs fn inside a unit of work without serialization, for consistent multi-record reads
func (p *Poster) Read(ctx context.Context, fn PostFunc) error {
	return p.attempt(ctx, fn)
}

func (p *Poster) withRetry(ctx context.Context, accountID string, fn PostFunc) error {
	delay := p.config.RetryDelay
	for attempt := 0; ; attempt++ {
		err := p.attempt(ctx, fn)
		if err == nil || !errors.Is(err, errs.ErrConcurrentUpdate) || attempt >= p.config.MaxRetries {
			return err
		}

		p.logger.Warn("Concurrent balance update, retrying", map[string]any{
			"account_id": accountID,
			"attempt":    attempt + 1,
			"error":      err.Error(),
		})

		if delay > 0 {
			if err := p.timeProvider.Sleep(ctx, coreport.Duration(delay)); err != nil {
				return err
			}
			delay *= 2
		}
	}
}

func (p *Poster) attempt(ctx context.Context, fn PostFunc) error {
	txCtx, err := p.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := p.uow.Rollback(txCtx); rbErr != nil {
			p.logger.Error("Failed to roll back unit of work", map[string]any{
				"error": rbErr.Error(),
			})
		}
	}()

	scope := Scope{
		Accounts:     p.uow.Accounts(txCtx),
		Transactions: p.uow.Transactions(txCtx),
	}
	if err := fn(txCtx, scope); err != nil {
		return err
	}

	// A failed commit has already ended the store transaction
	committed = true
	return p.uow.Commit(txCtx)
}

// Shutdown drains the account queues
func (p *Poster) Shutdown() {
	p.queue.Shutdown()
}
