package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AccountToModel converts an account entity to a database model
func AccountToModel(account *entity.Account) model.Account {
	m := model.Account{
		ID:          account.ID,
		DisplayName: account.DisplayName,
		Email:       entity.NormalizeEmail(account.Email),
		Balance:     account.Balance(),
		KYCVerified: account.KYCVerified,
		Version:     account.Version,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
	if phone := strings.TrimSpace(account.Phone); phone != "" {
		m.Phone = &phone
	}
	return m
}

// AccountFromModel converts a database model to an account entity
func AccountFromModel(m *model.Account) *entity.Account {
	account := &entity.Account{
		ID:          m.ID,
		DisplayName: m.DisplayName,
		Email:       m.Email,
		KYCVerified: m.KYCVerified,
		Version:     m.Version,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Phone != nil {
		account.Phone = *m.Phone
	}
	account.SetBalance(m.Balance)
	return account
}

func (r *AccountRepository) first(ctx context.Context, query *gorm.DB, lookup string) (*entity.Account, error) {
	var accountModel model.Account
	if err := query.First(&accountModel).Error; err != nil {
		mapped := r.errorClassifier.ToDomainError(err, errs.ErrAccountNotFound, nil)
		if mapped != errs.ErrAccountNotFound {
			r.logger.Error("Database error when getting account", map[string]any{
				"lookup": lookup,
				"error":  err.Error(),
			})
		}
		return nil, mapped
	}
	return AccountFromModel(&accountModel), nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.first(ctx, r.db.WithContext(ctx).Where("id = ?", id), "id")
}

// GetForUpdate reads the account with a row lock held until the transaction ends
func (r *AccountRepository) GetForUpdate(ctx context.Context, id string) (*entity.Account, error) {
	query := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id)
	return r.first(ctx, query, "id_for_update")
}

// GetByEmail retrieves an account by email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.first(ctx, r.db.WithContext(ctx).Where("email = ?", entity.NormalizeEmail(email)), "email")
}

// GetByPhone retrieves an account by phone number
func (r *AccountRepository) GetByPhone(ctx context.Context, phone string) (*entity.Account, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, errs.ErrAccountNotFound
	}
	return r.first(ctx, r.db.WithContext(ctx).Where("phone = ?", phone), "phone")
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	r.logger.Debug("Creating new account", map[string]any{
		"account_id": account.ID,
		"balance":    account.GetBalance(),
	})

	accountModel := AccountToModel(account)
	if err := r.db.WithContext(ctx).Create(&accountModel).Error; err != nil {
		mapped := r.errorClassifier.ToDomainError(err, nil, errs.ErrDuplicateAccount)
		if mapped == errs.ErrDuplicateAccount {
			r.logger.Warn("Duplicate account", map[string]any{
				"account_id": account.ID,
			})
		} else {
			r.logger.Error("Database error when creating account", map[string]any{
				"account_id": account.ID,
				"error":      err.Error(),
			})
		}
		return mapped
	}

	r.logger.Info("Account created successfully", map[string]any{
		"account_id": account.ID,
		"balance":    account.GetBalance(),
	})
	return nil
}

// UpdateBalance writes the new balance only if the stored version still matches
func (r *AccountRepository) UpdateBalance(ctx context.Context, account *entity.Account, expectedVersion int64) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ? AND version = ?", account.ID, expectedVersion).
		Updates(map[string]interface{}{
			"balance":    account.Balance(),
			"version":    account.Version,
			"updated_at": account.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Error("Database error when updating balance", map[string]any{
			"account_id": account.ID,
			"error":      result.Error.Error(),
		})
		return r.errorClassifier.ToDomainError(result.Error, nil, nil)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Account{}).Where("id = ?", account.ID).Count(&count).Error; err != nil {
			return r.errorClassifier.ToDomainError(err, nil, nil)
		}
		if count == 0 {
			return errs.ErrAccountNotFound
		}

		r.logger.Warn("Balance changed concurrently", map[string]any{
			"account_id":       account.ID,
			"expected_version": expectedVersion,
		})
		return errs.ErrConcurrentUpdate
	}

	r.logger.Debug("Balance updated", map[string]any{
		"account_id":  account.ID,
		"new_balance": account.GetBalance(),
		"version":     account.Version,
	})
	return nil
}
