package core

import (
	"context"
	"time"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Common duration constants
const (
	Millisecond Duration = Duration(time.Millisecond)
	Second               = Duration(time.Second)
	Minute               = Duration(time.Minute)
	Hour                 = Duration(time.Hour)
	Day                  = Duration(24 * time.Hour)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider abstracts the clock so ledger timestamps and lock expiries are testable
type TimeProvider interface {
	// Now returns the current time in UTC
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) Duration
	// Until returns the duration until t
	Until(t time.Time) Duration
	// Sleep pauses the caller for d, returning early when ctx is done
	Sleep(ctx context.Context, d Duration) error
	// WithTimeout derives a context that is cancelled after timeout
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}
