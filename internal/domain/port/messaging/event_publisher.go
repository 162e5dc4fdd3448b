package messaging

import (
	"context"
	"time"
)

// Event types
const (
	EventTransferCompleted = "transfer.completed"
	EventDepositCompleted  = "deposit.completed"
	EventWithdrawCompleted = "withdraw.completed"
)

// LedgerEvent is published after a balance change has been committed
type LedgerEvent struct {
	Type                  string    `json:"type"`
	TransactionID         string    `json:"transactionId"`
	AccountID             string    `json:"accountId"`
	CounterpartyAccountID string    `json:"counterpartyAccountId,omitempty"`
	Counterparty          string    `json:"counterparty,omitempty"`
	Amount                string    `json:"amount"`
	BalanceAfter          string    `json:"balanceAfter"`
	OccurredAt            time.Time `json:"occurredAt"`
}

// EventPublisher delivers committed ledger events to downstream consumers
type EventPublisher interface {
	// Publish sends the event; the caller treats failures as non-fatal
	Publish(ctx context.Context, event LedgerEvent) error
	// Close releases the underlying connection
	Close() error
}
