package mongostore

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{URI: "mongodb://localhost:27017", Database: "wallet_ledger", ConnectTimeout: time.Second}
	require.NoError(t, valid.Validate())

	badURI := valid
	badURI.URI = "localhost:27017"
	assert.Error(t, badURI.Validate())

	noDatabase := valid
	noDatabase.Database = ""
	assert.Error(t, noDatabase.Validate())

	noTimeout := valid
	noTimeout.ConnectTimeout = 0
	assert.Error(t, noTimeout.Validate())
}

func TestToDomainError(t *testing.T) {
	duplicate := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	conflict := mongo.CommandError{Code: 112, Name: "WriteConflict", Labels: []string{labelTransientTransaction}}

	assert.NoError(t, toDomainError(nil, errs.ErrAccountNotFound, nil))
	assert.Equal(t, errs.ErrAccountNotFound, toDomainError(mongo.ErrNoDocuments, errs.ErrAccountNotFound, nil))
	assert.Equal(t, errs.ErrDuplicateAccount, toDomainError(duplicate, nil, errs.ErrDuplicateAccount))
	assert.ErrorIs(t, toDomainError(conflict, nil, nil), errs.ErrConcurrentUpdate)
	assert.ErrorIs(t, toDomainError(context.DeadlineExceeded, nil, nil), context.DeadlineExceeded)
	assert.ErrorIs(t, toDomainError(errors.New("server selection timeout"), nil, nil), errs.ErrStoreUnavailable)

	// Without a duplicate sentinel the failure is a store failure
	assert.ErrorIs(t, toDomainError(duplicate, nil, nil), errs.ErrStoreUnavailable)
}

func TestCommitError(t *testing.T) {
	aborted := mongo.CommandError{Code: 112, Labels: []string{labelTransientTransaction}}
	unknown := mongo.CommandError{Code: 91, Labels: []string{labelUnknownCommitResult}}

	assert.NoError(t, commitError(nil))
	assert.ErrorIs(t, commitError(aborted), errs.ErrConcurrentUpdate)
	assert.ErrorIs(t, commitError(unknown), errs.ErrInconsistentLedgerState)
	assert.ErrorIs(t, commitError(errors.New("connection reset")), errs.ErrInconsistentLedgerState)
}

func TestDocuments(t *testing.T) {
	clock := timeadapter.NewManualTimeProvider(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), 0)

	t.Run("Account round trip normalizes email", func(t *testing.T) {
		account, err := entity.NewAccount("acc-1", entity.Identity{Email: "Jane@Example.com"}, "12.34", clock)
		require.NoError(t, err)
		account.Email = "Jane@Example.com"

		doc := newAccountDocument(account)
		assert.Equal(t, "jane@example.com", doc.Email)
		assert.Equal(t, int64(1234), doc.Balance)

		restored := doc.toEntity()
		assert.Equal(t, "12.34", restored.GetBalance())
		assert.Equal(t, account.CreatedAt, restored.CreatedAt)
	})

	t.Run("Unknown transaction kind is rejected", func(t *testing.T) {
		doc := transactionDocument{ID: "tx-1", Kind: "refund"}
		_, err := doc.toEntity()
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionKind)
	})

	t.Run("Transaction round trip", func(t *testing.T) {
		transaction := &entity.Transaction{
			ID:                    "tx-1",
			AccountID:             "acc-1",
			Kind:                  entity.KindSend,
			AmountInCents:         500,
			Counterparty:          "bob@example.com",
			CounterpartyAccountID: "acc-2",
			Category:              entity.CategoryTransfer,
			IdempotencyKey:        "key-1",
			BalanceAfter:          734,
			CreatedAt:             clock.Now(),
		}

		doc := newTransactionDocument(transaction)
		restored, err := doc.toEntity()
		require.NoError(t, err)
		assert.Equal(t, transaction, restored)
	})
}

// setupMongo connects to TEST_MONGO_URI, which must point at a replica set
func setupMongo(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set, skipping mongo integration test")
	}

	ctx := context.Background()
	database := "wallet_ledger_test_" + idgen.NewUUIDGenerator().NewID()[:8]
	store, err := Connect(ctx, Config{URI: uri, Database: database, ConnectTimeout: 10 * time.Second},
		logger.NewNoopLogger(), idgen.NewUUIDGenerator(), timeadapter.NewRealTimeProvider())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.client.Database(database).Drop(ctx)
		_ = store.Close(ctx)
	})
	return store
}

func TestMongo_Accounts(t *testing.T) {
	store := setupMongo(t)
	ctx := context.Background()
	accounts := store.Accounts(ctx)

	account, err := entity.NewAccount("acc-1", entity.Identity{Email: "jane@example.com"}, "100.00", store.timeProvider)
	require.NoError(t, err)
	require.NoError(t, accounts.Create(ctx, account))

	dup, err := entity.NewAccount("acc-2", entity.Identity{Email: "JANE@example.com"}, "0", store.timeProvider)
	require.NoError(t, err)
	assert.ErrorIs(t, accounts.Create(ctx, dup), errs.ErrDuplicateAccount)

	// Two accounts without a phone do not collide on the phone index
	other, err := entity.NewAccount("acc-3", entity.Identity{Email: "other@example.com"}, "0", store.timeProvider)
	require.NoError(t, err)
	require.NoError(t, accounts.Create(ctx, other))

	stored, err := accounts.GetByEmail(ctx, "Jane@Example.com")
	require.NoError(t, err)
	require.NoError(t, stored.Debit(2500, store.timeProvider))
	require.NoError(t, accounts.UpdateBalance(ctx, stored, stored.Version-1))
	assert.ErrorIs(t, accounts.UpdateBalance(ctx, stored, stored.Version-1), errs.ErrConcurrentUpdate)
	assert.ErrorIs(t, accounts.UpdateBalance(ctx, &entity.Account{ID: "ghost", Version: 1}, 0), errs.ErrAccountNotFound)

	after, err := accounts.GetByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "75.00", after.GetBalance())
}

func TestMongo_TransactionsAndRollback(t *testing.T) {
	store := setupMongo(t)
	ctx := context.Background()

	account, err := entity.NewAccount("acc-1", entity.Identity{Email: "x@example.com"}, "10.00", store.timeProvider)
	require.NoError(t, err)
	require.NoError(t, store.Accounts(ctx).Create(ctx, account))

	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	transactions := store.Transactions(ctx)
	for i := 0; i < 3; i++ {
		require.NoError(t, transactions.Append(ctx, &entity.Transaction{
			AccountID:      "acc-1",
			Kind:           entity.KindDeposit,
			AmountInCents:  int64(100 * (i + 1)),
			Counterparty:   "card",
			IdempotencyKey: []string{"", "key-1", ""}[i],
			CreatedAt:      start.Add(time.Duration(i) * time.Hour),
		}))
	}

	recent, err := transactions.ListByAccount(ctx, "acc-1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, int64(300), recent[0].AmountInCents)

	between, err := transactions.ListByAccountBetween(ctx, "acc-1", entity.DateRange{From: start, To: start.Add(2 * time.Hour)})
	require.NoError(t, err)
	assert.Len(t, between, 2)

	keyed, err := transactions.GetByIdempotencyKey(ctx, "acc-1", "key-1")
	require.NoError(t, err)
	assert.Equal(t, int64(200), keyed.AmountInCents)

	err = transactions.Append(ctx, &entity.Transaction{AccountID: "acc-1", Kind: entity.KindDeposit, AmountInCents: 1, IdempotencyKey: "key-1"})
	assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	err = transactions.Append(ctx, &entity.Transaction{AccountID: "ghost", Kind: entity.KindDeposit, AmountInCents: 1})
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)

	txCtx, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Transactions(txCtx).Append(txCtx, &entity.Transaction{AccountID: "acc-1", Kind: entity.KindDeposit, AmountInCents: 9}))
	require.NoError(t, store.Rollback(txCtx))
	require.NoError(t, store.Rollback(txCtx))

	all, err := transactions.ListByAccount(ctx, "acc-1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
