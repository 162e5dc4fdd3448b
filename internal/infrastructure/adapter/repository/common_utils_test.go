package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"Nil", nil, ""},
		{"Unique violation code", &pgconn.PgError{Code: "23505"}, DuplicateKeyError},
		{"Gorm duplicated key", gorm.ErrDuplicatedKey, DuplicateKeyError},
		{"Serialization failure", &pgconn.PgError{Code: "40001"}, LockError},
		{"Deadlock", &pgconn.PgError{Code: "40P01"}, LockError},
		{"Broken pipe", errors.New("write: broken pipe"), TransientError},
		{"Dial failure", errors.New("dial tcp 127.0.0.1:5432"), ConnectionError},
		{"Check violation", &pgconn.PgError{Code: "23514"}, ConstraintError},
		{"Unknown", errors.New("something odd"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_ToDomainError(t *testing.T) {
	c := NewErrorClassifier()

	t.Run("Not found", func(t *testing.T) {
		err := c.ToDomainError(fmt.Errorf("query: %w", gorm.ErrRecordNotFound), errs.ErrAccountNotFound, nil)
		assert.Equal(t, errs.ErrAccountNotFound, err)
	})

	t.Run("Not found without mapping is a store failure", func(t *testing.T) {
		err := c.ToDomainError(gorm.ErrRecordNotFound, nil, nil)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("Duplicate", func(t *testing.T) {
		err := c.ToDomainError(&pgconn.PgError{Code: "23505"}, nil, errs.ErrDuplicateTransaction)
		assert.Equal(t, errs.ErrDuplicateTransaction, err)
	})

	t.Run("Context errors pass through", func(t *testing.T) {
		assert.ErrorIs(t, c.ToDomainError(context.Canceled, nil, nil), context.Canceled)
		assert.ErrorIs(t, c.ToDomainError(context.DeadlineExceeded, nil, nil), context.DeadlineExceeded)
	})

	t.Run("Serialization failure is a concurrent update", func(t *testing.T) {
		err := c.ToDomainError(&pgconn.PgError{Code: "40001", Message: "could not serialize access"}, nil, nil)
		assert.ErrorIs(t, err, errs.ErrConcurrentUpdate)
		assert.True(t, errs.IsRetryable(err))
	})

	t.Run("Check violation is an inconsistency", func(t *testing.T) {
		err := c.ToDomainError(&pgconn.PgError{Code: "23514"}, nil, nil)
		assert.ErrorIs(t, err, errs.ErrInconsistentLedgerState)
	})

	t.Run("Translated gorm errors", func(t *testing.T) {
		assert.Equal(t, errs.ErrDuplicateAccount, c.ToDomainError(gorm.ErrDuplicatedKey, nil, errs.ErrDuplicateAccount))
		assert.ErrorIs(t, c.ToDomainError(gorm.ErrCheckConstraintViolated, nil, nil), errs.ErrInconsistentLedgerState)
		assert.True(t, c.IsForeignKeyError(gorm.ErrForeignKeyViolated))
		assert.True(t, c.IsForeignKeyError(&pgconn.PgError{Code: "23503"}))
	})

	t.Run("Anything else is a store failure", func(t *testing.T) {
		err := c.ToDomainError(errors.New("connection refused"), nil, nil)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestAccountModelMapping(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	account := &entity.Account{
		ID:          "acc-1",
		DisplayName: "Jane",
		Email:       " Jane@Example.com",
		Version:     4,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	account.SetBalance(485000)

	m := AccountToModel(account)
	assert.Equal(t, "jane@example.com", m.Email)
	assert.Nil(t, m.Phone)
	assert.Equal(t, int64(485000), m.Balance)

	account.Phone = "+15551234567"
	m = AccountToModel(account)
	require.NotNil(t, m.Phone)
	assert.Equal(t, "+15551234567", *m.Phone)

	back := AccountFromModel(&m)
	assert.Equal(t, "acc-1", back.ID)
	assert.Equal(t, "+15551234567", back.Phone)
	assert.Equal(t, "4850.00", back.GetBalance())
	assert.Equal(t, int64(4), back.Version)
}

func TestTransactionModelMapping(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Optional columns are NULL when empty", func(t *testing.T) {
		m := TransactionToModel(&entity.Transaction{
			ID:            "tx-1",
			AccountID:     "acc-1",
			Kind:          entity.KindWithdraw,
			AmountInCents: 2000,
			Counterparty:  "bank",
			CreatedAt:     created,
		})

		assert.Nil(t, m.CounterpartyAccountID)
		assert.Nil(t, m.IdempotencyKey)
		assert.Equal(t, "withdraw", m.Kind)
	})

	t.Run("Round trip", func(t *testing.T) {
		original := &entity.Transaction{
			ID:                    "tx-2",
			AccountID:             "acc-1",
			Kind:                  entity.KindSend,
			AmountInCents:         15000,
			Counterparty:          "x@example.com",
			CounterpartyAccountID: "acc-2",
			Description:           "lunch",
			Category:              entity.CategoryTransfer,
			IdempotencyKey:        "key-1",
			BalanceAfter:          485000,
			CreatedAt:             created,
		}

		m := TransactionToModel(original)
		back, err := TransactionFromModel(&m)

		require.NoError(t, err)
		assert.Equal(t, original, back)
	})

	t.Run("Unknown kind is rejected", func(t *testing.T) {
		_, err := TransactionFromModel(&model.Transaction{ID: "tx-3", Kind: "refund"})
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionKind)
	})
}
