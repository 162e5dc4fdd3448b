package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

// IdempotencyHandler finds earlier results of requests carrying the same key
type IdempotencyHandler struct{}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler() *IdempotencyHandler {
	return &IdempotencyHandler{}
}

// CheckIdempotency looks up the transaction previously appended with the key.
// It returns the transaction, whether it was found, and any store error.
// A found transaction that differs from the new request yields ErrIdempotencyConflict.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	repo persistence.TransactionRepository,
	accountID string,
	key string,
	matches func(*entity.Transaction) bool,
) (*entity.Transaction, bool, error) {
	if key == "" {
		return nil, false, nil
	}

	txn, err := repo.GetByIdempotencyKey(ctx, accountID, key)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	if !matches(txn) {
		return txn, true, errs.ErrIdempotencyConflict
	}
	return txn, true, nil
}
