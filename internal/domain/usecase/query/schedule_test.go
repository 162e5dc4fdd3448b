package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeDueInDays(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		due      time.Time
		expected int
	}{
		{"Same instant", now, 0},
		{"One hour ahead rounds up", now.Add(time.Hour), 1},
		{"Exactly three days", now.AddDate(0, 0, 3), 3},
		{"Three days and a minute", now.AddDate(0, 0, 3).Add(time.Minute), 4},
		{"Earlier today", now.Add(-time.Hour), 0},
		{"Two days past", now.AddDate(0, 0, -2), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeDueInDays(tt.due, now))
		})
	}
}

func TestLoanProgress(t *testing.T) {
	tests := []struct {
		name      string
		term      int
		remaining int
		expected  float64
	}{
		{"Just started", 12, 12, 0},
		{"Halfway", 12, 6, 50},
		{"Paid off", 12, 0, 100},
		{"Quarter", 24, 18, 25},
		{"Remaining exceeds term", 12, 20, 0},
		{"Negative remaining", 12, -3, 100},
		{"No term", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, LoanProgress(tt.term, tt.remaining), 0.0001)
		})
	}
}
