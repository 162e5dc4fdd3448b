package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

func TestIdentity(t *testing.T) {
	id := Identity{Subject: " uid-1 ", Email: " Y@Example.COM", Phone: " +1555 "}.Normalize()

	assert.Equal(t, "uid-1", id.Subject)
	assert.Equal(t, "y@example.com", id.Email)
	assert.Equal(t, "+1555", id.Phone)
	assert.Equal(t, "y", id.ResolvedDisplayName())
	assert.NoError(t, id.Validate())

	for _, email := range []string{"", "nobody", "@example.com", "user@"} {
		assert.ErrorIs(t, Identity{Email: email}.Validate(), errs.ErrInvalidIdentity, email)
	}
}

func TestDateRange(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	r := DateRange{From: from, To: to}

	assert.NoError(t, r.Validate())
	assert.True(t, r.Contains(from))
	assert.True(t, r.Contains(to.Add(-time.Nanosecond)))
	assert.False(t, r.Contains(to))
	assert.False(t, r.Contains(from.Add(-time.Second)))

	assert.True(t, DateRange{}.Contains(from), "zero range is unbounded")
	assert.True(t, DateRange{From: from}.Contains(to.AddDate(10, 0, 0)))

	err := DateRange{From: to, To: from}.Validate()
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	assert.Error(t, DateRange{From: from, To: from}.Validate())
}

func TestMonthRange(t *testing.T) {
	r := MonthRange(time.Date(2024, 12, 15, 13, 4, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), r.To)
}
