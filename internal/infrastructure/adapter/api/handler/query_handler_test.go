package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

func TestParseDateRange(t *testing.T) {
	now := time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC)

	t.Run("No bounds is the current month", func(t *testing.T) {
		r, err := ParseDateRange("", "", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), r.From)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), r.To)
	})

	t.Run("Date-only end includes the day", func(t *testing.T) {
		r, err := ParseDateRange("2024-01-01", "2024-01-31", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), r.To)
	})

	t.Run("RFC3339 bounds are exact and in UTC", func(t *testing.T) {
		r, err := ParseDateRange("2024-01-01T10:00:00+02:00", "2024-01-01T12:00:00Z", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), r.From)
		assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), r.To)
	})

	t.Run("One open side", func(t *testing.T) {
		r, err := ParseDateRange("2024-01-01", "", now)
		require.NoError(t, err)
		assert.True(t, r.To.IsZero())
		assert.True(t, r.Contains(now))
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := ParseDateRange("yesterday", "", now)
		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "from", validationErr.Field)

		_, err = ParseDateRange("2024-01-02", "2024-01-01", now)
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)

		_, err = ParseDateRange("", "2024-13-01", now)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Empty range is rejected", func(t *testing.T) {
		_, err := ParseDateRange("2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z", now)
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})
}
