package persistence

import (
	"context"
	"time"
)

// AccountLocker serializes balance changes of an account across processes
type AccountLocker interface {
	// Acquire takes the lock on the account for at most ttl
	//
	// Possible errors:
	// - ErrAccountLocked: If another owner holds an unexpired lock
	// - ErrStoreUnavailable: If the lock backend cannot be reached
	Acquire(ctx context.Context, accountID string, ttl time.Duration) error

	// Release gives up a lock previously taken by this process
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the lock backend cannot be reached
	Release(ctx context.Context, accountID string) error
}
