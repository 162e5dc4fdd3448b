package database

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps failures of transaction control statements to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapBeginError maps a failure to open a transaction; nothing was written
func (m *ErrorMapper) MapBeginError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
}

// MapCommitError maps a failed COMMIT. A serialization failure means postgres
// rolled the transaction back, so the caller may retry. Any other failure
// leaves the outcome unknown.
func (m *ErrorMapper) MapCommitError(err error) error {
	if err == nil {
		return nil
	}
	if m.classifier.IsLockError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConcurrentUpdate, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInconsistentLedgerState, err.Error())
}

// MapError maps any other database error
func (m *ErrorMapper) MapError(err error) error {
	return m.classifier.ToDomainError(err, nil, nil)
}
