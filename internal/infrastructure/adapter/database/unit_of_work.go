package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// txState is the open transaction carried in the context
type txState struct {
	db   *gorm.DB
	done bool
}

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	errorMapper  *ErrorMapper
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(
	db *gorm.DB,
	logger coreport.Logger,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		errorMapper:  NewErrorMapper(),
	}
}

// Begin starts a new database transaction with SERIALIZABLE isolation
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := ctx.Value(txKey).(*txState); ok {
		return ctx, errors.New("nested unit of work")
	}

	u.logger.Debug("Beginning database transaction with SERIALIZABLE isolation", nil)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapBeginError(tx.Error)
	}

	if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
		tx.Rollback()
		u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
		return ctx, u.errorMapper.MapBeginError(err)
	}

	return context.WithValue(ctx, txKey, &txState{db: tx}), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	state, ok := ctx.Value(txKey).(*txState)
	if !ok || state.done {
		return fmt.Errorf("no transaction found in context")
	}
	state.done = true

	u.logger.Debug("Committing database transaction", nil)
	if err := state.db.Commit().Error; err != nil {
		mapped := u.errorMapper.MapCommitError(err)
		u.logger.Error("Failed to commit transaction", map[string]any{
			"error":  err.Error(),
			"mapped": mapped.Error(),
		})
		return mapped
	}

	return nil
}

// Rollback rolls back the current transaction; it is a no-op once the transaction ended
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	state, ok := ctx.Value(txKey).(*txState)
	if !ok || state.done {
		return nil
	}
	state.done = true

	u.logger.Debug("Rolling back database transaction", nil)

	if err := state.db.Rollback().Error; err != nil {
		if errors.Is(err, gorm.ErrInvalidTransaction) {
			u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
				"error": err.Error(),
			})
			return nil
		}
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// Accounts returns an account repository in the current transaction
func (u *UnitOfWork) Accounts(ctx context.Context) persistence.AccountRepository {
	return repository.NewAccountRepository(u.dbFromContext(ctx), u.logger)
}

// Transactions returns a transaction repository in the current transaction
func (u *UnitOfWork) Transactions(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.dbFromContext(ctx), u.idGenerator, u.timeProvider, u.logger)
}

// dbFromContext retrieves the transaction from context, falling back to the pool
func (u *UnitOfWork) dbFromContext(ctx context.Context) *gorm.DB {
	if state, ok := ctx.Value(txKey).(*txState); ok && !state.done {
		return state.db
	}
	return u.db.WithContext(ctx)
}
