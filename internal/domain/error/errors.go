package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation           = 4000
	CodeInsufficientFunds    = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidAccountID     = 4003
	CodeDuplicateTransaction = 4004
	CodeIdempotencyConflict  = 4005
	CodeAmountOverflow       = 4006
	CodeSelfTransfer         = 4007
	CodeInvalidDateRange     = 4008
	CodeUnauthenticated      = 4010
	CodeAccountNotFound      = 4040
	CodeCounterpartyNotFound = 4041
	CodeTransactionNotFound  = 4042
	CodeDuplicateAccount     = 4090
	CodeConcurrentUpdate     = 4091
	CodeAccountLocked        = 4230

	// 5xxx - Server errors
	CodeInternal           = 5000
	CodeInconsistentLedger = 5001
	CodeStoreUnavailable   = 5030
)

// Base error types
var (
	// ErrValidation is the umbrella for every malformed-input error; it is
	// always raised before any store access.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when an amount cannot be parsed as a finite decimal
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNonPositiveAmount is returned for zero or negative amounts
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrAmountOverflow is returned when the amount does not fit in minor units
	ErrAmountOverflow = errors.New("amount is too large")

	// ErrEmptyCounterparty is returned when no counterparty identifier is given
	ErrEmptyCounterparty = errors.New("counterparty cannot be empty")

	// ErrInvalidAccountID is returned when the account identifier is empty
	ErrInvalidAccountID = errors.New("account ID cannot be empty")

	// ErrInvalidIdempotencyKey is returned when the idempotency key is too long
	ErrInvalidIdempotencyKey = errors.New("idempotency key is too long")

	// ErrInvalidIdentity is returned when an identity carries no usable email
	ErrInvalidIdentity = errors.New("identity must carry an email")

	// ErrSelfTransfer is returned when the counterparty resolves to the sender
	ErrSelfTransfer = errors.New("cannot transfer to the same account")

	// ErrInvalidDateRange is returned when a range's start is not before its end
	ErrInvalidDateRange = errors.New("date range start must be before its end")

	// ErrInvalidTransactionKind is returned for kinds outside send/receive/deposit/withdraw
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrInsufficientFunds is returned when the amount exceeds the balance at check time
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound is returned when no account matches the identity or ID
	ErrAccountNotFound = errors.New("account not found")

	// ErrCounterpartyNotFound is returned when registered counterparties are required
	// and the identifier resolves to no account
	ErrCounterpartyNotFound = errors.New("counterparty account not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateAccount is returned when an account with the same email or phone exists
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrDuplicateTransaction is returned when an idempotency key was already used
	ErrDuplicateTransaction = errors.New("transaction with this idempotency key already exists")

	// ErrIdempotencyConflict is returned when a key is reused with a different payload
	ErrIdempotencyConflict = errors.New("idempotency key reused with a different request")

	// ErrConcurrentUpdate is returned when a conditional balance write lost a race
	ErrConcurrentUpdate = errors.New("account was modified concurrently")

	// ErrAccountLocked is returned when an account is locked by another operation
	ErrAccountLocked = errors.New("account is locked by another operation")

	// ErrStoreUnavailable is returned for transient storage failures; callers may retry
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	// ErrInconsistentLedgerState is returned when the outcome of a commit is unknown
	ErrInconsistentLedgerState = errors.New("ledger state may be inconsistent")

	// ErrUnauthenticated is returned when no identity is attached to the request
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInternal is returned for unexpected server-side errors
	ErrInternal = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNonPositiveAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidAccountID):
		return CodeInvalidAccountID
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrInvalidDateRange):
		return CodeInvalidDateRange
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrIdempotencyConflict):
		return CodeIdempotencyConflict
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrCounterpartyNotFound):
		return CodeCounterpartyNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrDuplicateAccount):
		return CodeDuplicateAccount
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrAccountLocked):
		return CodeAccountLocked
	case errors.Is(err, ErrInconsistentLedgerState):
		return CodeInconsistentLedger
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	default:
		return CodeInternal
	}
}

// IsRetryable reports whether the caller may safely retry the failed operation.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) ||
		errors.Is(err, ErrConcurrentUpdate) ||
		errors.Is(err, ErrAccountLocked)
}

// ValidationError names the offending field of a rejected request
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %v", e.Field, e.Err)
}

// Unwrap returns the specific validation cause
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is makes every ValidationError match ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// InsufficientFundsError provides detailed error information for insufficient funds
type InsufficientFundsError struct {
	AccountID string
	Amount    string
	Balance   string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for account %s: required %s, available %s",
		e.AccountID, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"account_id": e.AccountID,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(accountID, amount, balance string) error {
	return &InsufficientFundsError{
		AccountID: accountID,
		Amount:    amount,
		Balance:   balance,
	}
}

// TransferError wraps a failure of a balance-affecting operation with its context
type TransferError struct {
	AccountID      string
	Counterparty   string
	Amount         string
	IdempotencyKey string
	Reason         string
	Err            error
}

// Error implements the error interface
func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer from account %s to %q (amount: %s) failed: %s: %v",
		e.AccountID, e.Counterparty, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "transfer_error",
		"account_id":      e.AccountID,
		"counterparty":    e.Counterparty,
		"amount":          e.Amount,
		"idempotency_key": e.IdempotencyKey,
		"reason":          e.Reason,
		"error":           e.Err.Error(),
		"error_code":      ErrorCode(e.Err),
	}
}

// NewTransferError creates a detailed transfer error
func NewTransferError(accountID, counterparty, amount, idempotencyKey, reason string, err error) error {
	return &TransferError{
		AccountID:      accountID,
		Counterparty:   counterparty,
		Amount:         amount,
		IdempotencyKey: idempotencyKey,
		Reason:         reason,
		Err:            err,
	}
}

// IsValidationError checks if the error was raised by input validation
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrCounterpartyNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsConflictError checks if the error reports a clash with existing or concurrent state
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateAccount) ||
		errors.Is(err, ErrDuplicateTransaction) ||
		errors.Is(err, ErrIdempotencyConflict) ||
		errors.Is(err, ErrConcurrentUpdate)
}
