package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// AccountLockRepository implements persistence.AccountLocker on the account_locks table
type AccountLockRepository struct {
	db              *gorm.DB
	idGenerator     coreport.IDGenerator
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	tokens          sync.Map // account ID -> token of the lease this process holds
}

var _ persistence.AccountLocker = (*AccountLockRepository)(nil)

// NewAccountLockRepository creates a new AccountLockRepository instance
func NewAccountLockRepository(
	db *gorm.DB,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AccountLockRepository {
	return &AccountLockRepository{
		db:              db,
		idGenerator:     idGenerator,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Acquire takes the lease on the account unless another owner holds an unexpired one
func (r *AccountLockRepository) Acquire(ctx context.Context, accountID string, ttl time.Duration) error {
	now := r.timeProvider.Now()
	expiresAt := now.Add(ttl)
	token := r.idGenerator.NewID()

	r.logger.Debug("Attempting to acquire lock", map[string]any{
		"account_id": accountID,
		"ttl":        ttl.String(),
	})

	// An expired lease is taken over in place; a live one leaves the row untouched
	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO account_locks (account_id, token, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (account_id) DO UPDATE
		SET token = EXCLUDED.token,
		    locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE account_locks.expires_at <= ?`,
		accountID, token, now, expiresAt, now, now,
		now,
	)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrAccountLocked
		}
		r.logger.Error("Database error acquiring lock", map[string]any{
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return r.errorClassifier.ToDomainError(result.Error, nil, nil)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Account is already locked", map[string]any{
			"account_id": accountID,
		})
		return errs.ErrAccountLocked
	}

	r.tokens.Store(accountID, token)
	r.logger.Debug("Lock acquired", map[string]any{
		"account_id": accountID,
		"expires_at": expiresAt,
	})
	return nil
}

// Release deletes the lease taken by this process; a lease already taken over is left alone
func (r *AccountLockRepository) Release(ctx context.Context, accountID string) error {
	value, ok := r.tokens.LoadAndDelete(accountID)
	if !ok {
		r.logger.Debug("No lock held to release", map[string]any{
			"account_id": accountID,
		})
		return nil
	}

	result := r.db.WithContext(ctx).
		Where("account_id = ? AND token = ?", accountID, value.(string)).
		Delete(&model.AccountLock{})

	if result.Error != nil {
		// The lease expires on its own
		if errors.Is(result.Error, context.Canceled) || errors.Is(result.Error, context.DeadlineExceeded) {
			r.logger.Warn("Context ended when releasing lock, lock will expire automatically", map[string]any{
				"account_id": accountID,
				"error":      result.Error.Error(),
			})
			return nil
		}
		r.logger.Error("Failed to release lock", map[string]any{
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return r.errorClassifier.ToDomainError(result.Error, nil, nil)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Lock expired before release", map[string]any{
			"account_id": accountID,
		})
	}
	return nil
}

// CleanupExpiredLocks removes all expired leases
func (r *AccountLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.AccountLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired locks", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, r.errorClassifier.ToDomainError(result.Error, nil, nil)
	}

	r.logger.Info("Expired locks cleanup completed", map[string]any{
		"locks_removed": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
