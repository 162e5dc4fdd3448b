package model

import (
	"time"
)

// Transaction represents the database model for ledger entries.
// Rows are inserted once and never updated.
type Transaction struct {
	ID                    string    `gorm:"primaryKey;size:36"`
	AccountID             string    `gorm:"not null;size:36;index:idx_transactions_account_created,priority:1"`
	Kind                  string    `gorm:"not null;size:16"`
	AmountInCents         int64     `gorm:"not null;check:chk_transactions_amount_positive,amount_in_cents > 0"`
	Counterparty          string    `gorm:"not null;size:320"`
	CounterpartyAccountID *string   `gorm:"size:36"`
	Description           string    `gorm:"type:text"`
	Category              string    `gorm:"size:64"`
	IdempotencyKey        *string   `gorm:"size:128"`
	BalanceAfter          int64     `gorm:"not null"`
	CreatedAt             time.Time `gorm:"not null;index:idx_transactions_account_created,priority:2,sort:desc"`

	// Define relationships
	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
