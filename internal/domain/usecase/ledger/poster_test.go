package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

type txCtxKey struct{}

func setupUnitOfWork(t *testing.T) (*mockpersistence.MockUnitOfWork, context.Context) {
	mockUow := mockpersistence.NewMockUnitOfWork(t)
	txCtx := context.WithValue(context.Background(), txCtxKey{}, "tx")

	mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Maybe()
	mockUow.EXPECT().Accounts(txCtx).Return(mockpersistence.NewMockAccountRepository(t)).Maybe()
	mockUow.EXPECT().Transactions(txCtx).Return(mockpersistence.NewMockTransactionRepository(t)).Maybe()
	return mockUow, txCtx
}

func TestPoster_Post(t *testing.T) {
	t.Run("Commits on success", func(t *testing.T) {
		mockUow, txCtx := setupUnitOfWork(t)
		mockUow.EXPECT().Commit(txCtx).Return(nil).Once()

		poster := NewPoster(mockUow, NewAccountQueue(logger.NewNoopLogger(), 0), nil,
			mockcore.NewMockTimeProvider(t), logger.NewNoopLogger(), PosterConfig{})
		defer poster.Shutdown()

		var gotCtx context.Context
		err := poster.Post(context.Background(), "acc-1", func(ctx context.Context, scope Scope) error {
			gotCtx = ctx
			assert.NotNil(t, scope.Accounts)
			assert.NotNil(t, scope.Transactions)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, "tx", gotCtx.Value(txCtxKey{}))
		mockUow.AssertNotCalled(t, "Rollback", mock.Anything)
	})

	t.Run("Rolls back and returns the error", func(t *testing.T) {
		mockUow, txCtx := setupUnitOfWork(t)
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		poster := NewPoster(mockUow, NewAccountQueue(logger.NewNoopLogger(), 0), nil,
			mockcore.NewMockTimeProvider(t), logger.NewNoopLogger(), PosterConfig{MaxRetries: 3})
		defer poster.Shutdown()

		err := poster.Post(context.Background(), "acc-1", func(ctx context.Context, scope Scope) error {
			return errs.ErrInsufficientFunds
		})

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		mockUow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Retries a lost compare-and-swap", func(t *testing.T) {
		mockUow, txCtx := setupUnitOfWork(t)
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Twice()
		mockUow.EXPECT().Commit(txCtx).Return(nil).Once()

		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Sleep(mock.Anything, mock.Anything).Return(nil).Twice()

		poster := NewPoster(mockUow, NewAccountQueue(logger.NewNoopLogger(), 0), nil,
			mockTime, logger.NewNoopLogger(), PosterConfig{MaxRetries: 3, RetryDelay: time.Millisecond})
		defer poster.Shutdown()

		attempts := 0
		err := poster.Post(context.Background(), "acc-1", func(ctx context.Context, scope Scope) error {
			attempts++
			if attempts < 3 {
				return errs.ErrConcurrentUpdate
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		mockUow, txCtx := setupUnitOfWork(t)
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Times(3)

		poster := NewPoster(mockUow, NewAccountQueue(logger.NewNoopLogger(), 0), nil,
			mockcore.NewMockTimeProvider(t), logger.NewNoopLogger(), PosterConfig{MaxRetries: 2})
		defer poster.Shutdown()

		attempts := 0
		err := poster.Post(context.Background(), "acc-1", func(ctx context.Context, scope Scope) error {
			attempts++
			return errs.ErrConcurrentUpdate
		})

		assert.ErrorIs(t, err, errs.ErrConcurrentUpdate)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Store errors are not retried", func(t *testing.T) {
		mockUow, txCtx := setupUnitOfWork(t)
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		poster := NewPoster(mockUow, NewAccountQueue(logger.NewNoopLogger(), 0), nil,
			mockcore.NewMockTimeProvider(t), logger.NewNoopLogger(), PosterConfig{MaxRetries: 5})
		defer poster.Shutdown()

		attempts := 0
		err := poster.Post(context.Background(), "acc-1", func(ctx context.Context, scope Scope) error {
			attempts++
			return errs.ErrStoreUnavailable
		})

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
		assert.Equal(t, 1, attempts)
	})

	t.Run("Begin failure surfaces", func(t *testing.T) {
		mockUow := mockpersistence.NewMockUnitOfWork(t)
		mockUow.EXPECT().Begin(mock.Anything).Return(nil, errs.ErrStoreUnavailable).Once()

		poster := NewPoster(mockUow, NewAccountQueue(logger.NewNoopLogger(), 0), nil,
			mockcore.NewMockTimeProvider(t), logger.NewNoopLogger(), PosterConfig{})
		defer poster.Shutdown()

		err := poster.Post(context.Background(), "acc-1", func(ctx context.Context, scope Scope) error {
			t.Fatal("function must not run without a unit of work")
			return nil
		})

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestPoster_Locker(t *testing.T) {
	t.Run("Acquires and releases the account lock", func(t *testing.T) {
		mockUow, txCtx := setupUnitOfWork(t)
		mockUow.EXPECT().Commit(txCtx).Return(nil).Once()

		mockLocker := mockpersistence.NewMockAccountLocker(t)
		mockLocker.EXPECT().Acquire(mock.Anything, "acc-1", 5*time.Second).Return(nil).Once()
		mockLocker.EXPECT().Release(mock.Anything, "acc-1").Return(nil).Once()

		poster := NewPoster(mockUow, NewAccountQueue(logger.NewNoopLogger(), 0), mockLocker,
			mockcore.NewMockTimeProvider(t), logger.NewNoopLogger(), PosterConfig{LockTTL: 5 * time.Second})
		defer poster.Shutdown()

		err := poster.Post(context.Background(), "acc-1", func(ctx context.Context, scope Scope) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("Locked account is not touched", func(t *testing.T) {
		mockUow := mockpersistence.NewMockUnitOfWork(t)
		mockLocker := mockpersistence.NewMockAccountLocker(t)
		mockLocker.EXPECT().Acquire(mock.Anything, "acc-1", mock.Anything).Return(errs.ErrAccountLocked).Once()

		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		poster := NewPoster(mockUow, NewAccountQueue(mockLogger, 0), mockLocker,
			mockcore.NewMockTimeProvider(t), mockLogger, PosterConfig{})
		defer poster.Shutdown()

		err := poster.Post(context.Background(), "acc-1", func(ctx context.Context, scope Scope) error {
			return errors.New("must not run")
		})

		assert.ErrorIs(t, err, errs.ErrAccountLocked)
		mockLocker.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})
}
