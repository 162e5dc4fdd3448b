package messaging

import (
	"context"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
)

// LogPublisher writes every event to the logger at info level
type LogPublisher struct {
	logger coreport.Logger
}

var _ messaging.EventPublisher = (*LogPublisher)(nil)

// NewLogPublisher creates a new LogPublisher instance
func NewLogPublisher(logger coreport.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event messaging.LedgerEvent) error {
	fields := map[string]any{
		"type":           event.Type,
		"transaction_id": event.TransactionID,
		"account_id":     event.AccountID,
		"amount":         event.Amount,
		"balance_after":  event.BalanceAfter,
		"occurred_at":    event.OccurredAt,
	}
	if event.Counterparty != "" {
		fields["counterparty"] = event.Counterparty
	}
	if event.CounterpartyAccountID != "" {
		fields["counterparty_account_id"] = event.CounterpartyAccountID
	}

	p.logger.Info("Ledger event", fields)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}

// NoopPublisher drops every event
type NoopPublisher struct{}

var _ messaging.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, messaging.LedgerEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
