package dto

import (
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// AccountResponse represents the caller's account and balance
type AccountResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Balance     string    `json:"balance"`
	KYCVerified bool      `json:"kycVerified"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewAccountResponse maps an account to its API form
func NewAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		DisplayName: a.DisplayName,
		Email:       a.Email,
		Phone:       a.Phone,
		Balance:     a.GetBalance(),
		KYCVerified: a.KYCVerified,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FundsRequest represents a deposit or withdrawal through an external method
type FundsRequest struct {
	Amount string `json:"amount" binding:"required"`
	Method string `json:"method"`
}

// FundsResponse represents the outcome of a deposit or withdrawal
type FundsResponse struct {
	TransactionID string `json:"transactionId"`
	NewBalance    string `json:"newBalance"`
	Replayed      bool   `json:"replayed,omitempty"`
}
