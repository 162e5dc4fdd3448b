package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientFunds.Error() != "insufficient funds" {
		t.Errorf("ErrInsufficientFunds has unexpected message: %s", ErrInsufficientFunds.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrAccountNotFound.Error() != "account not found" {
		t.Errorf("ErrAccountNotFound has unexpected message: %s", ErrAccountNotFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientFunds", ErrInsufficientFunds, 4001},
		{"InsufficientFundsTyped", NewInsufficientFundsError("a1", "10.00", "5.00"), 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NonPositiveAmount", NewValidationError("amount", ErrNonPositiveAmount), 4002},
		{"InvalidAccountID", ErrInvalidAccountID, 4003},
		{"EmptyCounterparty", NewValidationError("counterparty", ErrEmptyCounterparty), 4000},
		{"DuplicateTransaction", ErrDuplicateTransaction, 4004},
		{"IdempotencyConflict", ErrIdempotencyConflict, 4005},
		{"SelfTransfer", ErrSelfTransfer, 4007},
		{"Unauthenticated", ErrUnauthenticated, 4010},
		{"AccountNotFound", ErrAccountNotFound, 4040},
		{"CounterpartyNotFound", ErrCounterpartyNotFound, 4041},
		{"DuplicateAccount", ErrDuplicateAccount, 4090},
		{"ConcurrentUpdate", ErrConcurrentUpdate, 4091},
		{"AccountLocked", ErrAccountLocked, 4230},
		{"InconsistentLedger", ErrInconsistentLedgerState, 5001},
		{"StoreUnavailable", ErrStoreUnavailable, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidAccountID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("amount", ErrInvalidAmount)

	expected := "validation failed on amount: invalid amount format"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("errors.Is(err, ErrInvalidAmount) = false, want true")
	}
	if errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("errors.Is(err, ErrInsufficientFunds) = true, want false")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "amount" {
		t.Errorf("errors.As did not yield the amount field")
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError("acc-1", "150.00", "100.00")

	expected := "insufficient funds for account acc-1: required 150.00, available 100.00"
	if err.Error() != expected {
		t.Errorf("InsufficientFundsError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("errors.Is(err, ErrInsufficientFunds) = false, want true")
	}

	var ife *InsufficientFundsError
	if !errors.As(err, &ife) {
		t.Fatalf("errors.As(err, &InsufficientFundsError) = false, want true")
	}
	fields := ife.LogFields()
	if fields["account_id"] != "acc-1" || fields["error_code"] != CodeInsufficientFunds {
		t.Errorf("LogFields() = %v", fields)
	}
}

func TestTransferError(t *testing.T) {
	err := NewTransferError("acc-1", "bob@example.com", "25.00", "key-1", "debit failed", ErrConcurrentUpdate)

	expected := `transfer from account acc-1 to "bob@example.com" (amount: 25.00) failed: debit failed: account was modified concurrently`
	if err.Error() != expected {
		t.Errorf("TransferError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrConcurrentUpdate) {
		t.Errorf("errors.Is(err, ErrConcurrentUpdate) = false, want true")
	}

	var te *TransferError
	if !errors.As(err, &te) {
		t.Fatalf("errors.As(err, &TransferError) = false, want true")
	}
	fields := te.LogFields()
	if fields["idempotency_key"] != "key-1" || fields["error_code"] != CodeConcurrentUpdate {
		t.Errorf("LogFields() = %v", fields)
	}
}

func TestErrorPredicates(t *testing.T) {
	if !IsValidationError(NewValidationError("x", ErrEmptyCounterparty)) {
		t.Errorf("IsValidationError returned false for a validation error")
	}
	if !IsInsufficientFundsError(fmt.Errorf("wrapped: %w", NewInsufficientFundsError("a", "1", "0"))) {
		t.Errorf("IsInsufficientFundsError returned false for a wrapped error")
	}
	if !IsNotFoundError(ErrCounterpartyNotFound) || IsNotFoundError(ErrInternal) {
		t.Errorf("IsNotFoundError misclassified")
	}
	if !IsConflictError(ErrDuplicateAccount) || IsConflictError(ErrStoreUnavailable) {
		t.Errorf("IsConflictError misclassified")
	}
}

func TestIsRetryable(t *testing.T) {
	testCases := []struct {
		err      error
		expected bool
	}{
		{ErrStoreUnavailable, true},
		{fmt.Errorf("%w: connection reset", ErrStoreUnavailable), true},
		{ErrConcurrentUpdate, true},
		{ErrAccountLocked, true},
		{ErrInsufficientFunds, false},
		{ErrInconsistentLedgerState, false},
		{NewValidationError("amount", ErrInvalidAmount), false},
	}

	for _, tc := range testCases {
		if got := IsRetryable(tc.err); got != tc.expected {
			t.Errorf("IsRetryable(%v) = %v, want %v", tc.err, got, tc.expected)
		}
	}
}
