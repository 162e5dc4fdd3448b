package memory

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

type accountRepository struct {
	view view
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	var found *entity.Account
	err := r.view(func(st *state) error {
		account, ok := st.accounts[id]
		if !ok {
			return errs.ErrAccountNotFound
		}
		found = account.Clone()
		return nil
	})
	return found, err
}

// GetForUpdate needs no extra locking: a unit of work already owns the store
func (r *accountRepository) GetForUpdate(ctx context.Context, id string) (*entity.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.getByIndex(func(st *state) (string, bool) {
		id, ok := st.byEmail[entity.NormalizeEmail(email)]
		return id, ok
	})
}

func (r *accountRepository) GetByPhone(ctx context.Context, phone string) (*entity.Account, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, errs.ErrAccountNotFound
	}
	return r.getByIndex(func(st *state) (string, bool) {
		id, ok := st.byPhone[phone]
		return id, ok
	})
}

func (r *accountRepository) getByIndex(lookup func(st *state) (string, bool)) (*entity.Account, error) {
	var found *entity.Account
	err := r.view(func(st *state) error {
		id, ok := lookup(st)
		if !ok {
			return errs.ErrAccountNotFound
		}
		found = st.accounts[id].Clone()
		return nil
	})
	return found, err
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.view(func(st *state) error {
		email := entity.NormalizeEmail(account.Email)
		if _, exists := st.accounts[account.ID]; exists {
			return errs.ErrDuplicateAccount
		}
		if _, exists := st.byEmail[email]; exists {
			return errs.ErrDuplicateAccount
		}
		if account.Phone != "" {
			if _, exists := st.byPhone[account.Phone]; exists {
				return errs.ErrDuplicateAccount
			}
		}

		stored := account.Clone()
		stored.Email = email
		st.accounts[stored.ID] = stored
		st.byEmail[email] = stored.ID
		if stored.Phone != "" {
			st.byPhone[stored.Phone] = stored.ID
		}
		return nil
	})
}

func (r *accountRepository) UpdateBalance(ctx context.Context, account *entity.Account, expectedVersion int64) error {
	return r.view(func(st *state) error {
		current, ok := st.accounts[account.ID]
		if !ok {
			return errs.ErrAccountNotFound
		}
		if current.Version != expectedVersion {
			return errs.ErrConcurrentUpdate
		}

		updated := current.Clone()
		updated.SetBalance(account.Balance())
		updated.Version = account.Version
		updated.UpdatedAt = account.UpdatedAt
		st.accounts[updated.ID] = updated
		return nil
	})
}
