package usecase

import (
	"context"
)

// TransferRequest represents a funds movement requested by the sender
type TransferRequest struct {
	Counterparty   string // Phone, email or free-text payee
	Amount         string // Decimal string, at most two places
	Note           string // Optional description; defaults to "Transfer to <counterparty>"
	Category       string // Optional; defaults to "Transfer"
	IdempotencyKey string // Optional caller-supplied request id
}

// TransferResult reports the outcome of a successful transfer
type TransferResult struct {
	TransactionID         string
	NewBalance            string
	CounterpartyAccountID string // Empty when the counterparty is an external payee
	Replayed              bool   // True when an earlier result was returned for the same key
}

// TransferUseCase moves funds from an account to a counterparty
type TransferUseCase interface {
	// Transfer debits the sender and, for registered counterparties, credits the
	// recipient in one atomic unit
	Transfer(ctx context.Context, senderAccountID string, req TransferRequest) (*TransferResult, error)

	// ValidateTransferRequest checks the request without touching the store
	ValidateTransferRequest(senderAccountID string, req TransferRequest) error
}
