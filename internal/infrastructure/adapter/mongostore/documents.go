package mongostore

import (
	"strings"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// Collection names
const (
	accountsCollection     = "accounts"
	transactionsCollection = "transactions"
)

// accountDocument is the stored form of an account; Phone is omitted when empty
// so that the sparse unique index ignores accounts without one
type accountDocument struct {
	ID          string    `bson:"_id"`
	DisplayName string    `bson:"display_name"`
	Email       string    `bson:"email"`
	Phone       string    `bson:"phone,omitempty"`
	Balance     int64     `bson:"balance"`
	KYCVerified bool      `bson:"kyc_verified"`
	Version     int64     `bson:"version"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func newAccountDocument(a *entity.Account) accountDocument {
	return accountDocument{
		ID:          a.ID,
		DisplayName: a.DisplayName,
		Email:       entity.NormalizeEmail(a.Email),
		Phone:       strings.TrimSpace(a.Phone),
		Balance:     a.Balance(),
		KYCVerified: a.KYCVerified,
		Version:     a.Version,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (d *accountDocument) toEntity() *entity.Account {
	a := &entity.Account{
		ID:          d.ID,
		DisplayName: d.DisplayName,
		Email:       d.Email,
		Phone:       d.Phone,
		KYCVerified: d.KYCVerified,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	a.SetBalance(d.Balance)
	return a
}

// transactionDocument is the stored form of a ledger entry
type transactionDocument struct {
	ID                    string    `bson:"_id"`
	AccountID             string    `bson:"account_id"`
	Kind                  string    `bson:"kind"`
	AmountInCents         int64     `bson:"amount_in_cents"`
	Counterparty          string    `bson:"counterparty"`
	CounterpartyAccountID string    `bson:"counterparty_account_id,omitempty"`
	Description           string    `bson:"description,omitempty"`
	Category              string    `bson:"category,omitempty"`
	IdempotencyKey        string    `bson:"idempotency_key,omitempty"`
	BalanceAfter          int64     `bson:"balance_after"`
	CreatedAt             time.Time `bson:"created_at"`
}

func newTransactionDocument(t *entity.Transaction) transactionDocument {
	return transactionDocument{
		ID:                    t.ID,
		AccountID:             t.AccountID,
		Kind:                  string(t.Kind),
		AmountInCents:         t.AmountInCents,
		Counterparty:          t.Counterparty,
		CounterpartyAccountID: t.CounterpartyAccountID,
		Description:           t.Description,
		Category:              t.Category,
		IdempotencyKey:        t.IdempotencyKey,
		BalanceAfter:          t.BalanceAfter,
		CreatedAt:             t.CreatedAt,
	}
}

func (d *transactionDocument) toEntity() (*entity.Transaction, error) {
	kind, err := entity.ParseTransactionKind(d.Kind)
	if err != nil {
		return nil, err
	}
	return &entity.Transaction{
		ID:                    d.ID,
		AccountID:             d.AccountID,
		Kind:                  kind,
		AmountInCents:         d.AmountInCents,
		Counterparty:          d.Counterparty,
		CounterpartyAccountID: d.CounterpartyAccountID,
		Description:           d.Description,
		Category:              d.Category,
		IdempotencyKey:        d.IdempotencyKey,
		BalanceAfter:          d.BalanceAfter,
		CreatedAt:             d.CreatedAt.UTC(),
	}, nil
}
