package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// FundsRequest represents a deposit or withdrawal through an external funding method
type FundsRequest struct {
	Amount         string
	Method         string // e.g. "card", "bank"; recorded as counterparty
	IdempotencyKey string
}

// FundsResult reports the outcome of a deposit or withdrawal
type FundsResult struct {
	TransactionID string
	NewBalance    string
	Replayed      bool
}

// AccountUseCase provisions accounts and applies explicit deposits and withdrawals
type AccountUseCase interface {
	// EnsureAccount returns the caller's account, creating it on first touch
	EnsureAccount(ctx context.Context, identity entity.Identity) (*entity.Account, error)

	// GetAccount retrieves an account by ID
	GetAccount(ctx context.Context, accountID string) (*entity.Account, error)

	// GetAccountByEmail retrieves an account by the identity's email
	GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Deposit credits the account from an external funding method
	Deposit(ctx context.Context, accountID string, req FundsRequest) (*FundsResult, error)

	// Withdraw debits the account to an external funding method
	Withdraw(ctx context.Context, accountID string, req FundsRequest) (*FundsResult, error)
}
