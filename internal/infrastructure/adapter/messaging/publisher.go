package messaging

import (
	"fmt"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"
)

// NewPublisher builds the publisher selected by events.driver
func NewPublisher(cfg config.EventsConfig, logger coreport.Logger) (messaging.EventPublisher, error) {
	logger = logger.With(map[string]any{"component": "events", "driver": cfg.Driver})

	switch cfg.Driver {
	case config.EventsRabbitMQ:
		return NewRabbitMQPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, logger)
	case config.EventsLog:
		return NewLogPublisher(logger), nil
	case config.EventsNoop, "":
		return NoopPublisher{}, nil
	default:
		return nil, fmt.Errorf("unsupported events driver %q", cfg.Driver)
	}
}
