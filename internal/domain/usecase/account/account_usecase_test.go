package account

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/memory"
	timeadapter "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
	mockmessaging "github.com/amirhossein-jamali/wallet-ledger/mocks/port/messaging"
	mockpersistence "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

var testStart = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	store     *memory.Store
	clock     *timeadapter.ManualTimeProvider
	publisher *mockmessaging.MockEventPublisher
	useCase   *AccountUseCase
}

func setupTestEnv(t *testing.T, config Config) *testEnv {
	log := logger.NewNoopLogger()
	clock := timeadapter.NewManualTimeProvider(testStart, time.Millisecond)
	ids := idgen.NewUUIDGenerator()
	store := memory.NewStore(ids, clock, log)

	poster := ledger.NewPoster(store, ledger.NewAccountQueue(log, 0), nil, clock, log, ledger.PosterConfig{MaxRetries: 3})
	t.Cleanup(poster.Shutdown)

	publisher := mockmessaging.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	return &testEnv{
		store:     store,
		clock:     clock,
		publisher: publisher,
		useCase:   NewAccountUseCase(store.Accounts(context.Background()), poster, ids, publisher, clock, log, config),
	}
}

func TestEnsureAccount(t *testing.T) {
	t.Run("First touch provisions the account", func(t *testing.T) {
		env := setupTestEnv(t, Config{})

		account, err := env.useCase.EnsureAccount(context.Background(), entity.Identity{
			Subject: "uid-1",
			Email:   "New.User@Example.com",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, account.ID)
		assert.Equal(t, "new.user@example.com", account.Email)
		assert.Equal(t, "new.user", account.DisplayName)
		assert.Equal(t, "5000.00", account.GetBalance())
		assert.False(t, account.KYCVerified)
		assert.Equal(t, testStart, account.CreatedAt)
	})

	t.Run("Second touch returns the same account", func(t *testing.T) {
		env := setupTestEnv(t, Config{})
		identity := entity.Identity{Email: "y@example.com", DisplayName: "Yara"}

		first, err := env.useCase.EnsureAccount(context.Background(), identity)
		require.NoError(t, err)
		second, err := env.useCase.EnsureAccount(context.Background(), identity)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Yara", second.DisplayName)
	})

	t.Run("Configured opening balance", func(t *testing.T) {
		env := setupTestEnv(t, Config{OpeningBalance: "0"})

		account, err := env.useCase.EnsureAccount(context.Background(), entity.Identity{Email: "z@example.com"})

		require.NoError(t, err)
		assert.Equal(t, "0.00", account.GetBalance())
	})

	t.Run("Invalid identity", func(t *testing.T) {
		env := setupTestEnv(t, Config{})

		_, err := env.useCase.EnsureAccount(context.Background(), entity.Identity{Email: "not-an-email"})

		assert.ErrorIs(t, err, errs.ErrInvalidIdentity)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Concurrent first touches converge", func(t *testing.T) {
		env := setupTestEnv(t, Config{})
		identity := entity.Identity{Email: "race@example.com"}

		const callers = 16
		ids := make([]string, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				account, err := env.useCase.EnsureAccount(context.Background(), identity)
				if assert.NoError(t, err) {
					ids[i] = account.ID
				}
			}(i)
		}
		wg.Wait()

		for _, id := range ids {
			assert.Equal(t, ids[0], id)
		}
		stored, err := env.store.Accounts(context.Background()).GetByEmail(context.Background(), "race@example.com")
		require.NoError(t, err)
		assert.Equal(t, ids[0], stored.ID)
	})

	t.Run("Phone taken by another account", func(t *testing.T) {
		env := setupTestEnv(t, Config{})

		owner, err := env.useCase.EnsureAccount(context.Background(), entity.Identity{Email: "a@example.com", Phone: "+1555"})
		require.NoError(t, err)

		account, err := env.useCase.EnsureAccount(context.Background(), entity.Identity{Email: "b@example.com", Phone: "+1555"})
		require.NoError(t, err)

		assert.NotEqual(t, owner.ID, account.ID)
		assert.Empty(t, account.Phone)

		byPhone, err := env.store.Accounts(context.Background()).GetByPhone(context.Background(), "+1555")
		require.NoError(t, err)
		assert.Equal(t, owner.ID, byPhone.ID)
	})
}

func TestEnsureAccount_LostRace(t *testing.T) {
	mockRepo := mockpersistence.NewMockAccountRepository(t)
	mockIDs := mockcore.NewMockIDGenerator(t)
	mockTime := mockcore.NewMockTimeProvider(t)

	winner := &entity.Account{ID: "acc-winner", Email: "y@example.com"}

	mockTime.EXPECT().Now().Return(testStart).Maybe()
	mockIDs.EXPECT().NewID().Return("acc-loser").Once()
	mockRepo.EXPECT().GetByEmail(mock.Anything, "y@example.com").Return(nil, errs.ErrAccountNotFound).Once()
	mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Account")).Return(errs.ErrDuplicateAccount).Once()
	mockRepo.EXPECT().GetByEmail(mock.Anything, "y@example.com").Return(winner, nil).Once()

	useCase := NewAccountUseCase(mockRepo, nil, mockIDs, nil, mockTime, logger.NewNoopLogger(), Config{})

	account, err := useCase.EnsureAccount(context.Background(), entity.Identity{Email: "Y@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "acc-winner", account.ID)
}

func TestEnsureAccount_StoreFailure(t *testing.T) {
	mockRepo := mockpersistence.NewMockAccountRepository(t)
	mockRepo.EXPECT().GetByEmail(mock.Anything, "y@example.com").Return(nil, errs.ErrStoreUnavailable).Once()

	useCase := NewAccountUseCase(mockRepo, nil, mockcore.NewMockIDGenerator(t), nil,
		mockcore.NewMockTimeProvider(t), logger.NewNoopLogger(), Config{})

	_, err := useCase.EnsureAccount(context.Background(), entity.Identity{Email: "y@example.com"})

	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestGetAccount(t *testing.T) {
	env := setupTestEnv(t, Config{})
	created, err := env.useCase.EnsureAccount(context.Background(), entity.Identity{Email: "x@example.com"})
	require.NoError(t, err)

	account, err := env.useCase.GetAccount(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, account.ID)

	account, err = env.useCase.GetAccountByEmail(context.Background(), " X@EXAMPLE.com ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, account.ID)

	_, err = env.useCase.GetAccount(context.Background(), "")
	assert.True(t, errs.IsValidationError(err))

	_, err = env.useCase.GetAccount(context.Background(), "acc-missing")
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)

	_, err = env.useCase.GetAccountByEmail(context.Background(), "bad")
	assert.True(t, errs.IsValidationError(err))
}

func TestDepositWithdraw(t *testing.T) {
	t.Run("Deposit credits the account", func(t *testing.T) {
		env := setupTestEnv(t, Config{OpeningBalance: "10.00"})
		account, err := env.useCase.EnsureAccount(context.Background(), entity.Identity{Email: "x@example.com"})
		require.NoError(t, err)

		result, err := env.useCase.Deposit(context.Background(), account.ID, usecase.FundsRequest{Amount: "90.55"})

		require.NoError(t, err)
		assert.Equal(t, "100.55", result.NewBalance)

		transactions, err := env.store.Transactions(context.Background()).ListByAccount(context.Background(), account.ID, 0)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, entity.KindDeposit, transactions[0].Kind)
		assert.Equal(t, "Deposit via card", transactions[0].Description)
		assert.Equal(t, entity.CategoryDeposit, transactions[0].Category)
		assert.Equal(t, "card", transactions[0].Counterparty)
		assert.Equal(t, int64(10055), transactions[0].BalanceAfter)
	})

	t.Run("Withdraw debits the account", func(t *testing.T) {
		env := setupTestEnv(t, Config{OpeningBalance: "50.00"})
		account, err := env.useCase.EnsureAccount(context.Background(), entity.Identity{Email: "x@example.com"})
		require.NoError(t, err)

		result, err := env.useCase.Withdraw(context.Background(), account.ID, usecase.FundsRequest{
			Amount: "20", Method: "bank",
		})

		require.NoError(t, err)
		assert.Equal(t, "30.00", result.NewBalance)

		transactions, err := env.store.Transactions(context.Background()).ListByAccount(context.Background(), account.ID, 0)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, entity.KindWithdraw, transactions[0].Kind)
		assert.Equal(t, "Withdrawal to bank", transactions[0].Description)
		assert.Equal(t, entity.CategoryWithdraw, transactions[0].Category)
	})

	t.Run("Withdraw beyond balance changes nothing", func(t *testing.T) {
		env := setupTestEnv(t, Config{OpeningBalance: "5.00"})
		account, err := env.useCase.EnsureAccount(context.Background(), entity.Identity{Email: "x@example.com"})
		require.NoError(t, err)

		_, err = env.useCase.Withdraw(context.Background(), account.ID, usecase.FundsRequest{Amount: "5.01"})

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		stored, err := env.useCase.GetAccount(context.Background(), account.ID)
		require.NoError(t, err)
		assert.Equal(t, "5.00", stored.GetBalance())
	})

	t.Run("Invalid amounts are rejected", func(t *testing.T) {
		env := setupTestEnv(t, Config{})

		for _, amount := range []string{"0", "-1", "1.001", ""} {
			_, err := env.useCase.Deposit(context.Background(), "acc-1", usecase.FundsRequest{Amount: amount})
			assert.True(t, errs.IsValidationError(err), amount)
		}

		_, err := env.useCase.Deposit(context.Background(), "", usecase.FundsRequest{Amount: "1"})
		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
	})

	t.Run("Unknown account", func(t *testing.T) {
		env := setupTestEnv(t, Config{})

		_, err := env.useCase.Deposit(context.Background(), "acc-missing", usecase.FundsRequest{Amount: "1"})

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("Same key replays the deposit", func(t *testing.T) {
		env := setupTestEnv(t, Config{OpeningBalance: "0"})
		account, err := env.useCase.EnsureAccount(context.Background(), entity.Identity{Email: "x@example.com"})
		require.NoError(t, err)

		req := usecase.FundsRequest{Amount: "10", IdempotencyKey: "dep-1"}
		first, err := env.useCase.Deposit(context.Background(), account.ID, req)
		require.NoError(t, err)
		second, err := env.useCase.Deposit(context.Background(), account.ID, req)
		require.NoError(t, err)

		assert.True(t, second.Replayed)
		assert.Equal(t, first.TransactionID, second.TransactionID)
		assert.Equal(t, "10.00", second.NewBalance)

		_, err = env.useCase.Withdraw(context.Background(), account.ID, req)
		assert.ErrorIs(t, err, errs.ErrIdempotencyConflict)

		env.publisher.AssertNumberOfCalls(t, "Publish", 1)
	})
}

func TestDeposit_PublishesEvent(t *testing.T) {
	log := logger.NewNoopLogger()
	clock := timeadapter.NewManualTimeProvider(testStart, time.Millisecond)
	ids := idgen.NewUUIDGenerator()
	store := memory.NewStore(ids, clock, log)
	poster := ledger.NewPoster(store, ledger.NewAccountQueue(log, 0), nil, clock, log, ledger.PosterConfig{})
	t.Cleanup(poster.Shutdown)

	publisher := mockmessaging.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(event messaging.LedgerEvent) bool {
		return event.Type == messaging.EventDepositCompleted && event.Amount == "3.00" && event.Counterparty == "card"
	})).Return(errors.New("broker down")).Once()

	useCase := NewAccountUseCase(store.Accounts(context.Background()), poster, ids, publisher, clock, log, Config{})
	account, err := useCase.EnsureAccount(context.Background(), entity.Identity{Email: "x@example.com"})
	require.NoError(t, err)

	result, err := useCase.Deposit(context.Background(), account.ID, usecase.FundsRequest{Amount: "3"})

	require.NoError(t, err)
	assert.Equal(t, "5003.00", result.NewBalance)
}
