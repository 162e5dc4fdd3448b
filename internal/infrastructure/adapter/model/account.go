package model

import (
	"time"
)

// Account represents the database model for accounts.
// Balance is in cents; Phone is NULL when absent so its unique index admits many accounts without one.
type Account struct {
	ID          string    `gorm:"primaryKey;size:36"`
	DisplayName string    `gorm:"not null;size:255"`
	Email       string    `gorm:"uniqueIndex;not null;size:320"`
	Phone       *string   `gorm:"uniqueIndex;size:32"`
	Balance     int64     `gorm:"not null;check:chk_accounts_balance_non_negative,balance >= 0"`
	KYCVerified bool      `gorm:"not null;default:false"`
	Version     int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
