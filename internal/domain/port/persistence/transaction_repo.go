package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// TransactionRepository defines the append-only ledger operations.
// Entries are never updated or deleted.
type TransactionRepository interface {
	// Append stores a new transaction, assigning ID and CreatedAt when they are empty
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If the account already used the idempotency key
	// - ErrStoreUnavailable: If the store cannot be reached
	Append(ctx context.Context, transaction *entity.Transaction) error

	// ListByAccount returns at most limit transactions of the account, newest first.
	// A non-positive limit returns every transaction.
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the store cannot be reached
	ListByAccount(ctx context.Context, accountID string, limit int) ([]*entity.Transaction, error)

	// ListByAccountBetween returns the account's transactions inside the range, newest first
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the store cannot be reached
	ListByAccountBetween(ctx context.Context, accountID string, dateRange entity.DateRange) ([]*entity.Transaction, error)

	// GetByIdempotencyKey retrieves the transaction appended with the key
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the key was never used by the account
	// - ErrStoreUnavailable: If the store cannot be reached
	GetByIdempotencyKey(ctx context.Context, accountID, key string) (*entity.Transaction, error)
}
