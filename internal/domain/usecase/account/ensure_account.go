package account

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// EnsureAccount returns the account of the identity, creating it on first touch.
// Concurrent first touches converge on one account through the store's unique email.
func (u *AccountUseCase) EnsureAccount(ctx context.Context, identity entity.Identity) (*entity.Account, error) {
	identity = identity.Normalize()
	if err := identity.Validate(); err != nil {
		return nil, errs.NewValidationError("identity", err)
	}

	existing, err := u.accountRepo.GetByEmail(ctx, identity.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrAccountNotFound) {
		return nil, err
	}

	account, err := entity.NewAccount(u.idGenerator.NewID(), identity, u.config.OpeningBalance, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.accountRepo.Create(ctx, account); err != nil {
		if !errors.Is(err, errs.ErrDuplicateAccount) {
			return nil, err
		}

		// Lost the race to a concurrent first touch; return the winner
		winner, lookupErr := u.accountRepo.GetByEmail(ctx, identity.Email)
		if lookupErr == nil {
			return winner, nil
		}
		if !errors.Is(lookupErr, errs.ErrAccountNotFound) {
			return nil, lookupErr
		}

		// The email is free, so the phone collided with another account
		account.Phone = ""
		if err := u.accountRepo.Create(ctx, account); err != nil {
			if errors.Is(err, errs.ErrDuplicateAccount) {
				return u.accountRepo.GetByEmail(ctx, identity.Email)
			}
			return nil, err
		}
		u.logger.Warn("Phone already registered to another account, provisioned without phone", map[string]any{
			"account_id": account.ID,
		})
	}

	u.logger.Info("Account provisioned", map[string]any{
		"account_id":      account.ID,
		"opening_balance": account.GetBalance(),
	})
	return account, nil
}
