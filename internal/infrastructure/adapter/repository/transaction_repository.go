package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	idGenerator     coreport.IDGenerator
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(
	db *gorm.DB,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		idGenerator:     idGenerator,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// TransactionToModel converts a transaction entity to a database model
func TransactionToModel(t *entity.Transaction) model.Transaction {
	m := model.Transaction{
		ID:            t.ID,
		AccountID:     t.AccountID,
		Kind:          string(t.Kind),
		AmountInCents: t.AmountInCents,
		Counterparty:  t.Counterparty,
		Description:   t.Description,
		Category:      t.Category,
		BalanceAfter:  t.BalanceAfter,
		CreatedAt:     t.CreatedAt,
	}
	if t.CounterpartyAccountID != "" {
		id := t.CounterpartyAccountID
		m.CounterpartyAccountID = &id
	}
	if t.IdempotencyKey != "" {
		key := t.IdempotencyKey
		m.IdempotencyKey = &key
	}
	return m
}

// TransactionFromModel converts a database model to a transaction entity
func TransactionFromModel(m *model.Transaction) (*entity.Transaction, error) {
	kind, err := entity.ParseTransactionKind(m.Kind)
	if err != nil {
		return nil, err
	}

	t := &entity.Transaction{
		ID:            m.ID,
		AccountID:     m.AccountID,
		Kind:          kind,
		AmountInCents: m.AmountInCents,
		Counterparty:  m.Counterparty,
		Description:   m.Description,
		Category:      m.Category,
		BalanceAfter:  m.BalanceAfter,
		CreatedAt:     m.CreatedAt.UTC(),
	}
	if m.CounterpartyAccountID != nil {
		t.CounterpartyAccountID = *m.CounterpartyAccountID
	}
	if m.IdempotencyKey != nil {
		t.IdempotencyKey = *m.IdempotencyKey
	}
	return t, nil
}

// Append stores a new ledger entry
func (r *TransactionRepository) Append(ctx context.Context, transaction *entity.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = r.idGenerator.NewID()
	}
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = r.timeProvider.Now()
	}

	txModel := TransactionToModel(transaction)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&txModel).Error; err != nil {
		if r.errorClassifier.IsForeignKeyError(err) {
			return errs.ErrAccountNotFound
		}

		mapped := r.errorClassifier.ToDomainError(err, nil, errs.ErrDuplicateTransaction)
		if errors.Is(mapped, errs.ErrDuplicateTransaction) {
			r.logger.Warn("Duplicate idempotency key", map[string]any{
				"account_id":      transaction.AccountID,
				"idempotency_key": transaction.IdempotencyKey,
			})
		} else {
			r.logger.Error("Failed to append transaction", map[string]any{
				"account_id": transaction.AccountID,
				"kind":       string(transaction.Kind),
				"error":      err.Error(),
			})
		}
		return mapped
	}

	r.logger.Debug("Transaction appended", map[string]any{
		"transaction_id": transaction.ID,
		"account_id":     transaction.AccountID,
		"kind":           string(transaction.Kind),
		"amount":         transaction.Amount(),
	})
	return nil
}

// ListByAccount returns the newest transactions of an account
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, limit int) ([]*entity.Transaction, error) {
	query := r.newestFirst(ctx, accountID)
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.find(query, accountID)
}

// ListByAccountBetween returns the account's transactions created in [From, To)
func (r *TransactionRepository) ListByAccountBetween(ctx context.Context, accountID string, dateRange entity.DateRange) ([]*entity.Transaction, error) {
	query := r.newestFirst(ctx, accountID)
	if !dateRange.From.IsZero() {
		query = query.Where("created_at >= ?", dateRange.From)
	}
	if !dateRange.To.IsZero() {
		query = query.Where("created_at < ?", dateRange.To)
	}
	return r.find(query, accountID)
}

// GetByIdempotencyKey retrieves the entry the account appended with key
func (r *TransactionRepository) GetByIdempotencyKey(ctx context.Context, accountID, key string) (*entity.Transaction, error) {
	var txModel model.Transaction
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND idempotency_key = ?", accountID, key).
		First(&txModel).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomainError(err, errs.ErrTransactionNotFound, nil)
	}
	return TransactionFromModel(&txModel)
}

func (r *TransactionRepository) newestFirst(ctx context.Context, accountID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Order("id DESC")
}

func (r *TransactionRepository) find(query *gorm.DB, accountID string) ([]*entity.Transaction, error) {
	var txModels []model.Transaction
	if err := query.Find(&txModels).Error; err != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return nil, r.errorClassifier.ToDomainError(err, nil, nil)
	}

	transactions := make([]*entity.Transaction, 0, len(txModels))
	for i := range txModels {
		t, err := TransactionFromModel(&txModels[i])
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}
