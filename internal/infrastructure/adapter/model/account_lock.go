package model

import (
	"time"
)

// AccountLock is a lease on an account held by one process while it posts a balance change
type AccountLock struct {
	AccountID string    `gorm:"primaryKey;size:36"`
	Token     string    `gorm:"not null;size:36"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for AccountLock
func (AccountLock) TableName() string {
	return "account_locks"
}
