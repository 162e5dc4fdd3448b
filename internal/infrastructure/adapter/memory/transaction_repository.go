package memory

import (
	"context"
	"sort"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

type transactionRepository struct {
	view         view
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

func (r *transactionRepository) Append(ctx context.Context, transaction *entity.Transaction) error {
	return r.view(func(st *state) error {
		if _, ok := st.accounts[transaction.AccountID]; !ok {
			return errs.ErrAccountNotFound
		}
		if transaction.IdempotencyKey != "" {
			if _, exists := st.byKey[idempotencyIndex(transaction.AccountID, transaction.IdempotencyKey)]; exists {
				return errs.ErrDuplicateTransaction
			}
		}

		if transaction.ID == "" {
			transaction.ID = r.idGenerator.NewID()
		}
		if transaction.CreatedAt.IsZero() {
			transaction.CreatedAt = r.timeProvider.Now()
		}

		stored := *transaction
		st.transactions = append(st.transactions, &stored)
		if stored.IdempotencyKey != "" {
			st.byKey[idempotencyIndex(stored.AccountID, stored.IdempotencyKey)] = &stored
		}

		r.logger.Debug("Transaction appended", map[string]any{
			"transaction_id": stored.ID,
			"account_id":     stored.AccountID,
			"kind":           string(stored.Kind),
		})
		return nil
	})
}

func (r *transactionRepository) ListByAccount(ctx context.Context, accountID string, limit int) ([]*entity.Transaction, error) {
	return r.list(accountID, entity.DateRange{}, limit)
}

func (r *transactionRepository) ListByAccountBetween(ctx context.Context, accountID string, dateRange entity.DateRange) ([]*entity.Transaction, error) {
	return r.list(accountID, dateRange, 0)
}

func (r *transactionRepository) list(accountID string, dateRange entity.DateRange, limit int) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	err := r.view(func(st *state) error {
		// Newest insertion first so equal timestamps keep reverse insertion order
		for i := len(st.transactions) - 1; i >= 0; i-- {
			t := st.transactions[i]
			if t.AccountID == accountID && dateRange.Contains(t.CreatedAt) {
				c := *t
				result = append(result, &c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *transactionRepository) GetByIdempotencyKey(ctx context.Context, accountID, key string) (*entity.Transaction, error) {
	var found *entity.Transaction
	err := r.view(func(st *state) error {
		t, ok := st.byKey[idempotencyIndex(accountID, key)]
		if !ok {
			return errs.ErrTransactionNotFound
		}
		c := *t
		found = &c
		return nil
	})
	return found, err
}
