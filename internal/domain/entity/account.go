package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// Account represents a user's cash position
type Account struct {
	ID          string    // Opaque identifier, immutable once assigned
	DisplayName string    // Name shown to the user
	Email       string    // Identity key, stored lower-cased
	Phone       string    // Optional, unique when set
	balance     int64     // Balance in minor units (private, mutated through Credit/Debit)
	KYCVerified bool      // Not enforced by any money path yet
	Version     int64     // Optimistic concurrency counter, bumped on every balance change
	CreatedAt   time.Time // When the account was created
	UpdatedAt   time.Time // When the balance last changed
}

// NewAccount creates an account for the given identity with an opening balance
func NewAccount(id string, identity Identity, openingBalance string, timeProvider coreport.TimeProvider) (*Account, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidAccountID
	}

	identity = identity.Normalize()
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	balanceInCents, err := ParseBalance(openingBalance)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Account{
		ID:          id,
		DisplayName: identity.ResolvedDisplayName(),
		Email:       identity.Email,
		Phone:       identity.Phone,
		balance:     balanceInCents,
		KYCVerified: false,
		Version:     0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Balance returns the current balance in minor units
func (a *Account) Balance() int64 {
	return a.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (a *Account) GetBalance() string {
	return FormatAmount(a.balance)
}

// SetBalance restores a persisted balance (for repositories only)
func (a *Account) SetBalance(balanceInCents int64) {
	a.balance = balanceInCents
}

// CanDebit checks if the account has enough balance for a debit
func (a *Account) CanDebit(amountInCents int64) bool {
	return a.balance >= amountInCents
}

// Credit adds the amount to the balance
func (a *Account) Credit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if amountInCents <= 0 {
		return errs.ErrNonPositiveAmount
	}

	newBalance, err := AddCents(a.balance, amountInCents)
	if err != nil {
		return err
	}

	a.balance = newBalance
	a.touch(timeProvider)
	return nil
}

// Debit subtracts the amount from the balance if sufficient funds exist
func (a *Account) Debit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if amountInCents <= 0 {
		return errs.ErrNonPositiveAmount
	}
	if !a.CanDebit(amountInCents) {
		return errs.NewInsufficientFundsError(a.ID, FormatAmount(amountInCents), a.GetBalance())
	}

	a.balance -= amountInCents
	a.touch(timeProvider)
	return nil
}

func (a *Account) touch(timeProvider coreport.TimeProvider) {
	a.Version++
	a.UpdatedAt = timeProvider.Now()
}

// Clone returns a copy that can be mutated without affecting the original
func (a *Account) Clone() *Account {
	c := *a
	return &c
}
