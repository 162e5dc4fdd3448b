package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// Error labels the server attaches to transaction failures
const (
	labelTransientTransaction = "TransientTransactionError"
	labelUnknownCommitResult  = "UnknownTransactionCommitResult"
)

type labeledError interface {
	HasErrorLabel(label string) bool
}

func hasLabel(err error, label string) bool {
	var le labeledError
	return errors.As(err, &le) && le.HasErrorLabel(label)
}

// toDomainError maps a driver error; notFound and duplicate may be nil when
// the operation cannot produce them
func toDomainError(err error, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments) && notFound != nil:
		return notFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case mongo.IsDuplicateKeyError(err) && duplicate != nil:
		return duplicate
	case hasLabel(err, labelTransientTransaction):
		// Write conflict with a concurrent transaction; nothing was applied
		return fmt.Errorf("%w: %s", errs.ErrConcurrentUpdate, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}
}

// commitError maps a failed commit. A transient transaction error means the
// transaction was aborted; anything else leaves the outcome unknown.
func commitError(err error) error {
	if err == nil {
		return nil
	}
	if hasLabel(err, labelTransientTransaction) && !hasLabel(err, labelUnknownCommitResult) {
		return fmt.Errorf("%w: %s", errs.ErrConcurrentUpdate, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInconsistentLedgerState, err.Error())
}
