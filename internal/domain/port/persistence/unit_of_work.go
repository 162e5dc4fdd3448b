package persistence

import (
	"context"
)

// UnitOfWork coordinates the writes of a balance change so that the
// transaction append and the balance update commit or roll back together
type UnitOfWork interface {
	// Begin starts a new store transaction and returns a context carrying it
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the store transaction in the given context.
	// ErrInconsistentLedgerState is returned when the outcome is unknown.
	Commit(ctx context.Context) error

	// Rollback discards the store transaction; it is a no-op after Commit
	Rollback(ctx context.Context) error

	// Accounts returns an account repository bound to the current transaction
	Accounts(ctx context.Context) AccountRepository

	// Transactions returns a transaction repository bound to the current transaction
	Transactions(ctx context.Context) TransactionRepository
}
