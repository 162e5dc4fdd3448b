package transfer

import (
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// maxIdempotencyKeyLength matches the width of the stored key column
const maxIdempotencyKeyLength = 128

// TransferValidator checks transfer requests before any store access
type TransferValidator struct{}

// NewTransferValidator creates a new TransferValidator
func NewTransferValidator() *TransferValidator {
	return &TransferValidator{}
}

// ValidateTransfer validates all request fields and returns the amount in minor units
func (v *TransferValidator) ValidateTransfer(senderAccountID string, req usecase.TransferRequest) (int64, error) {
	if strings.TrimSpace(senderAccountID) == "" {
		return 0, errs.NewValidationError("senderAccountId", errs.ErrInvalidAccountID)
	}

	if strings.TrimSpace(req.Counterparty) == "" {
		return 0, errs.NewValidationError("counterparty", errs.ErrEmptyCounterparty)
	}

	if len(req.IdempotencyKey) > maxIdempotencyKeyLength {
		return 0, errs.NewValidationError("idempotencyKey", errs.ErrInvalidIdempotencyKey)
	}

	amountInCents, err := entity.ParseAmount(req.Amount)
	if err != nil {
		return 0, errs.NewValidationError("amount", err)
	}

	return amountInCents, nil
}
