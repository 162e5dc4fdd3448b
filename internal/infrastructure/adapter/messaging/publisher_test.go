package messaging

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"
	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

func sampleEvent() messaging.LedgerEvent {
	return messaging.LedgerEvent{
		Type:                  messaging.EventTransferCompleted,
		TransactionID:         "tx-1",
		AccountID:             "acc-1",
		CounterpartyAccountID: "acc-2",
		Counterparty:          "bob@example.com",
		Amount:                "5.00",
		BalanceAfter:          "95.00",
		OccurredAt:            time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestLogPublisher(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Info("Ledger event", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["type"] == messaging.EventTransferCompleted &&
			fields["amount"] == "5.00" &&
			fields["counterparty_account_id"] == "acc-2"
	})).Once()

	publisher := NewLogPublisher(mockLogger)
	require.NoError(t, publisher.Publish(context.Background(), sampleEvent()))
	assert.NoError(t, publisher.Close())
}

func TestLogPublisher_OmitsEmptyCounterparty(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Info("Ledger event", mock.MatchedBy(func(fields map[string]any) bool {
		_, hasCounterparty := fields["counterparty"]
		return !hasCounterparty
	})).Once()

	event := sampleEvent()
	event.Type = messaging.EventDepositCompleted
	event.Counterparty = ""
	event.CounterpartyAccountID = ""
	require.NoError(t, NewLogPublisher(mockLogger).Publish(context.Background(), event))
}

func TestNewPublisher(t *testing.T) {
	noop := logger.NewNoopLogger()

	logPublisher, err := NewPublisher(config.EventsConfig{Driver: config.EventsLog}, noop)
	require.NoError(t, err)
	assert.IsType(t, &LogPublisher{}, logPublisher)

	noopPublisher, err := NewPublisher(config.EventsConfig{Driver: config.EventsNoop}, noop)
	require.NoError(t, err)
	assert.NoError(t, noopPublisher.Publish(context.Background(), sampleEvent()))
	assert.NoError(t, noopPublisher.Close())

	_, err = NewPublisher(config.EventsConfig{Driver: "kafka"}, noop)
	assert.Error(t, err)
}

func TestRabbitMQPublisher(t *testing.T) {
	url := os.Getenv("TEST_RABBITMQ_URL")
	if url == "" {
		t.Skip("TEST_RABBITMQ_URL not set, skipping rabbitmq integration test")
	}

	queue := "ledger.events.test." + time.Now().Format("150405.000000")
	publisher, err := NewRabbitMQPublisher(url, queue, logger.NewNoopLogger())
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent()))
	require.NoError(t, publisher.Close())
	require.NoError(t, publisher.Close())
	assert.ErrorIs(t, publisher.Publish(context.Background(), sampleEvent()), ErrPublisherClosed)

	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	defer conn.Close()
	ch, err := conn.Channel()
	require.NoError(t, err)
	defer func() { _, _ = ch.QueueDelete(queue, false, false, false) }()

	var delivery amqp.Delivery
	require.Eventually(t, func() bool {
		var ok bool
		delivery, ok, err = ch.Get(queue, true)
		return err == nil && ok
	}, 5*time.Second, 50*time.Millisecond)

	assert.Equal(t, "application/json", delivery.ContentType)
	assert.Equal(t, "tx-1", delivery.MessageId)
	assert.Equal(t, uint8(amqp.Persistent), delivery.DeliveryMode)

	var received messaging.LedgerEvent
	require.NoError(t, json.Unmarshal(delivery.Body, &received))
	assert.Equal(t, sampleEvent(), received)
}
