package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// DateRange selects transactions created in [From, To). A zero bound is unbounded.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Validate rejects ranges whose start is not before their end
func (r DateRange) Validate() error {
	if !r.From.IsZero() && !r.To.IsZero() && !r.From.Before(r.To) {
		return errs.NewValidationError("dateRange", errs.ErrInvalidDateRange)
	}
	return nil
}

// Contains reports whether t falls inside the range
func (r DateRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && !t.Before(r.To) {
		return false
	}
	return true
}

// MonthRange returns the calendar month containing t, in t's location
func MonthRange(t time.Time) DateRange {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return DateRange{From: from, To: from.AddDate(0, 1, 0)}
}
