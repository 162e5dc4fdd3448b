package query

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/memory"
	timeadapter "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
	mockpersistence "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

var may = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

type ledgerFixture struct {
	store *memory.Store
	clock *timeadapter.ManualTimeProvider
}

func newLedgerFixture(t *testing.T, accountIDs ...string) *ledgerFixture {
	log := logger.NewNoopLogger()
	clock := timeadapter.NewManualTimeProvider(may, time.Millisecond)
	store := memory.NewStore(idgen.NewUUIDGenerator(), clock, log)

	for _, id := range accountIDs {
		account, err := entity.NewAccount(id, entity.Identity{Email: id + "@example.com"}, "0", clock)
		require.NoError(t, err)
		require.NoError(t, store.Accounts(context.Background()).Create(context.Background(), account))
	}
	return &ledgerFixture{store: store, clock: clock}
}

func (f *ledgerFixture) record(t *testing.T, accountID string, kind entity.TransactionKind, cents int64, category string, at time.Time) {
	t.Helper()
	txn, err := entity.NewTransaction(accountID, kind, cents)
	require.NoError(t, err)
	txn.Category = category
	txn.CreatedAt = at
	require.NoError(t, f.store.Transactions(context.Background()).Append(context.Background(), txn))
}

func (f *ledgerFixture) useCase() *QueryUseCase {
	return NewQueryUseCase(f.store.Transactions(context.Background()), logger.NewNoopLogger())
}

func TestRecentTransactions(t *testing.T) {
	fixture := newLedgerFixture(t, "acc-x", "acc-y")
	for i := 0; i < 15; i++ {
		fixture.record(t, "acc-x", entity.KindSend, int64(100+i), "", may.Add(time.Duration(i)*time.Hour))
	}
	fixture.record(t, "acc-y", entity.KindReceive, 999, "", may.Add(30*time.Hour))
	// Recorded last but dated first
	fixture.record(t, "acc-x", entity.KindDeposit, 1, "", may.Add(-time.Hour))

	useCase := fixture.useCase()

	t.Run("Newest first, at most n", func(t *testing.T) {
		transactions, err := useCase.RecentTransactions(context.Background(), "acc-x", 5)

		require.NoError(t, err)
		require.Len(t, transactions, 5)
		assert.Equal(t, int64(114), transactions[0].AmountInCents)
		for i := 1; i < len(transactions); i++ {
			assert.False(t, transactions[i].CreatedAt.After(transactions[i-1].CreatedAt))
		}
		for _, txn := range transactions {
			assert.Equal(t, "acc-x", txn.AccountID)
		}
	})

	t.Run("Non-positive n uses the default", func(t *testing.T) {
		transactions, err := useCase.RecentTransactions(context.Background(), "acc-x", 0)

		require.NoError(t, err)
		assert.Len(t, transactions, DefaultRecentLimit)
	})

	t.Run("Fewer than n", func(t *testing.T) {
		transactions, err := useCase.RecentTransactions(context.Background(), "acc-x", 50)

		require.NoError(t, err)
		require.Len(t, transactions, 16)
		assert.Equal(t, int64(1), transactions[15].AmountInCents)
	})

	t.Run("Unknown account has no activity", func(t *testing.T) {
		transactions, err := useCase.RecentTransactions(context.Background(), "acc-z", 5)

		require.NoError(t, err)
		assert.Empty(t, transactions)
	})

	t.Run("Empty account ID", func(t *testing.T) {
		_, err := useCase.RecentTransactions(context.Background(), " ", 5)

		assert.True(t, errs.IsValidationError(err))
	})
}

func TestRecentTransactions_CapsLimit(t *testing.T) {
	mockRepo := mockpersistence.NewMockTransactionRepository(t)
	mockRepo.EXPECT().ListByAccount(mock.Anything, "acc-x", MaxRecentLimit).Return([]*entity.Transaction{}, nil).Once()

	useCase := NewQueryUseCase(mockRepo, logger.NewNoopLogger())
	transactions, err := useCase.RecentTransactions(context.Background(), "acc-x", 1000)

	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestRecentTransactions_StoreFailure(t *testing.T) {
	mockRepo := mockpersistence.NewMockTransactionRepository(t)
	mockRepo.EXPECT().ListByAccount(mock.Anything, "acc-x", DefaultRecentLimit).Return(nil, errs.ErrStoreUnavailable).Once()

	useCase := NewQueryUseCase(mockRepo, logger.NewNoopLogger())
	_, err := useCase.RecentTransactions(context.Background(), "acc-x", 0)

	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestCategoryTotals(t *testing.T) {
	fixture := newLedgerFixture(t, "acc-x")
	fixture.record(t, "acc-x", entity.KindSend, 1000, "Food", may.Add(time.Hour))
	fixture.record(t, "acc-x", entity.KindSend, 550, "Food", may.Add(2*time.Hour))
	fixture.record(t, "acc-x", entity.KindSend, 2000, "Rent", may.Add(3*time.Hour))
	fixture.record(t, "acc-x", entity.KindReceive, 700, "", may.Add(4*time.Hour))
	fixture.record(t, "acc-x", entity.KindSend, 9999, "Food", may.AddDate(0, 1, 0))

	useCase := fixture.useCase()

	t.Run("Sums per category inside the range", func(t *testing.T) {
		totals, err := useCase.CategoryTotals(context.Background(), "acc-x", entity.MonthRange(may))

		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"Food": 1550, "Rent": 2000, "Other": 700}, totals)
	})

	t.Run("Empty range yields an empty map", func(t *testing.T) {
		totals, err := useCase.CategoryTotals(context.Background(), "acc-x", entity.MonthRange(may.AddDate(-1, 0, 0)))

		require.NoError(t, err)
		assert.NotNil(t, totals)
		assert.Empty(t, totals)
	})

	t.Run("Inverted range", func(t *testing.T) {
		_, err := useCase.CategoryTotals(context.Background(), "acc-x", entity.DateRange{From: may.AddDate(0, 1, 0), To: may})

		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})
}

func TestSummary(t *testing.T) {
	fixture := newLedgerFixture(t, "acc-x")
	fixture.record(t, "acc-x", entity.KindDeposit, 100000, entity.CategoryDeposit, may.Add(time.Hour))
	fixture.record(t, "acc-x", entity.KindReceive, 20000, entity.CategoryTransfer, may.Add(2*time.Hour))
	fixture.record(t, "acc-x", entity.KindSend, 30000, "Rent", may.Add(3*time.Hour))
	fixture.record(t, "acc-x", entity.KindSend, 10000, "Food", may.Add(4*time.Hour))
	fixture.record(t, "acc-x", entity.KindWithdraw, 10000, entity.CategoryWithdraw, may.Add(5*time.Hour))
	fixture.record(t, "acc-x", entity.KindSend, 50000, "Rent", may.AddDate(0, 2, 0))

	useCase := fixture.useCase()

	summary, err := useCase.Summary(context.Background(), "acc-x", entity.MonthRange(may))

	require.NoError(t, err)
	assert.Equal(t, int64(120000), summary.IncomeInCents)
	assert.Equal(t, int64(50000), summary.ExpensesInCents)
	assert.Equal(t, int64(70000), summary.SavingsInCents)
	assert.Equal(t, []usecase.CategoryShare{
		{Name: "Rent", AmountInCents: 30000, Percentage: 60},
		{Name: "Food", AmountInCents: 10000, Percentage: 20},
		{Name: entity.CategoryWithdraw, AmountInCents: 10000, Percentage: 20},
	}, summary.Categories)

	t.Run("No activity", func(t *testing.T) {
		empty, err := useCase.Summary(context.Background(), "acc-x", entity.MonthRange(may.AddDate(1, 0, 0)))

		require.NoError(t, err)
		assert.Zero(t, empty.IncomeInCents)
		assert.Zero(t, empty.ExpensesInCents)
		assert.NotNil(t, empty.Categories)
		assert.Empty(t, empty.Categories)
	})

	t.Run("Percentages round to two decimals", func(t *testing.T) {
		f := newLedgerFixture(t, "acc-r")
		f.record(t, "acc-r", entity.KindSend, 100, "A", may.Add(time.Hour))
		f.record(t, "acc-r", entity.KindSend, 100, "B", may.Add(2*time.Hour))
		f.record(t, "acc-r", entity.KindSend, 100, "C", may.Add(3*time.Hour))

		s, err := f.useCase().Summary(context.Background(), "acc-r", entity.DateRange{})

		require.NoError(t, err)
		require.Len(t, s.Categories, 3)
		for i, name := range []string{"A", "B", "C"} {
			assert.Equal(t, name, s.Categories[i].Name)
			assert.Equal(t, 33.33, s.Categories[i].Percentage, fmt.Sprintf("category %s", name))
		}
		assert.Equal(t, int64(-300), s.SavingsInCents)
	})
}
