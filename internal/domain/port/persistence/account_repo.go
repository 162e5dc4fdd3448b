package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// AccountRepository defines the account operations of the ledger store
type AccountRepository interface {
	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account has the given ID
	// - ErrStoreUnavailable: If the store cannot be reached
	GetByID(ctx context.Context, id string) (*entity.Account, error)

	// GetForUpdate retrieves an account and locks it until the surrounding unit of work ends.
	// Outside a unit of work it behaves like GetByID.
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account has the given ID
	// - ErrStoreUnavailable: If the store cannot be reached
	GetForUpdate(ctx context.Context, id string) (*entity.Account, error)

	// GetByEmail retrieves an account by its (normalized) email
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account has the given email
	// - ErrStoreUnavailable: If the store cannot be reached
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)

	// GetByPhone retrieves an account by phone number
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account has the given phone
	// - ErrStoreUnavailable: If the store cannot be reached
	GetByPhone(ctx context.Context, phone string) (*entity.Account, error)

	// Create stores a new account with its opening balance
	//
	// Possible errors:
	// - ErrDuplicateAccount: If the email or phone is already registered
	// - ErrStoreUnavailable: If the store cannot be reached
	Create(ctx context.Context, account *entity.Account) error

	// UpdateBalance writes account's balance, version and update time only if the
	// stored version still equals expectedVersion (compare-and-swap)
	//
	// Possible errors:
	// - ErrConcurrentUpdate: If the stored version moved on
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrStoreUnavailable: If the store cannot be reached
	UpdateBalance(ctx context.Context, account *entity.Account, expectedVersion int64) error
}
