package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// TransactionKind is the direction-bearing type of a ledger entry
type TransactionKind string

// Transaction kinds
const (
	KindSend     TransactionKind = "send"
	KindReceive  TransactionKind = "receive"
	KindDeposit  TransactionKind = "deposit"
	KindWithdraw TransactionKind = "withdraw"
)

// Default categories
const (
	CategoryTransfer = "Transfer"
	CategoryDeposit  = "Deposit"
	CategoryWithdraw = "Withdrawal"
)

// ParseTransactionKind validates a kind read from storage or input
func ParseTransactionKind(kind string) (TransactionKind, error) {
	switch k := TransactionKind(kind); k {
	case KindSend, KindReceive, KindDeposit, KindWithdraw:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidTransactionKind, kind)
	}
}

// IsCredit returns true for kinds that increase the balance
func (k TransactionKind) IsCredit() bool {
	return k == KindReceive || k == KindDeposit
}

// IsDebit returns true for kinds that decrease the balance
func (k TransactionKind) IsDebit() bool {
	return k == KindSend || k == KindWithdraw
}

// Transaction is an immutable record of one balance-affecting event.
// It is never updated or deleted once appended.
type Transaction struct {
	ID                    string          // Assigned by the store on append when empty
	AccountID             string          // Owning account
	Kind                  TransactionKind // send, receive, deposit or withdraw
	AmountInCents         int64           // Always positive, direction comes from Kind
	Counterparty          string          // Free-text recipient or sender (phone/email/payee)
	CounterpartyAccountID string          // Set when the counterparty resolved to an account
	Description           string
	Category              string
	IdempotencyKey        string    // Optional, unique per account
	BalanceAfter          int64     // Owning account's balance once applied
	CreatedAt             time.Time // Assigned by the store on append when zero
}

// NewTransaction creates a ledger entry with basic validation
func NewTransaction(accountID string, kind TransactionKind, amountInCents int64) (*Transaction, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, errs.ErrInvalidAccountID
	}
	if _, err := ParseTransactionKind(string(kind)); err != nil {
		return nil, err
	}
	if amountInCents <= 0 {
		return nil, errs.ErrNonPositiveAmount
	}

	return &Transaction{
		AccountID:     accountID,
		Kind:          kind,
		AmountInCents: amountInCents,
	}, nil
}

// Amount returns the amount as a string with 2 decimal places
func (t *Transaction) Amount() string {
	return FormatAmount(t.AmountInCents)
}

// SignedAmount returns the amount with the sign of its effect on the balance
func (t *Transaction) SignedAmount() int64 {
	if t.Kind.IsDebit() {
		return -t.AmountInCents
	}
	return t.AmountInCents
}

// NewTransferDescription builds the default description of an outgoing transfer
func NewTransferDescription(counterparty string) string {
	return "Transfer to " + counterparty
}

// NewReceiptDescription builds the default description of an incoming transfer
func NewReceiptDescription(counterparty string) string {
	return "Transfer from " + counterparty
}
