package query

import (
	"math"
	"time"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// ComputeDueInDays returns the days until dueDate, rounded up.
// It turns negative once the due date is more than a full day past.
func ComputeDueInDays(dueDate, now time.Time) int {
	return int(math.Ceil(float64(dueDate.Sub(now)) / float64(coreport.Day)))
}

// LoanProgress returns the share of the term already paid, in percent within [0, 100]
func LoanProgress(termMonths, remainingMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	progress := float64(termMonths-remainingMonths) / float64(termMonths) * 100
	return math.Max(0, math.Min(100, progress))
}
