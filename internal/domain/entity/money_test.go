package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"150", 15000},
			{" 42.42 ", 4242},
			{"1234567.89", 123456789},
			{"1.500", 150},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"0", errs.ErrNonPositiveAmount, "Zero"},
			{"0.00", errs.ErrNonPositiveAmount, "Zero with decimals"},
			{"-5", errs.ErrNonPositiveAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"NaN", errs.ErrInvalidAmount, "NaN"},
			{"Inf", errs.ErrInvalidAmount, "Infinity"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
			{"92233720368547758.08", errs.ErrAmountOverflow, "Overflows minor units"},
			{"1e30", errs.ErrInvalidAmount, "Exponent form"},
			{"1e10000000", errs.ErrInvalidAmount, "Huge positive exponent"},
			{"1e-100000", errs.ErrInvalidAmount, "Huge negative exponent"},
			{"1E2", errs.ErrInvalidAmount, "Upper case exponent"},
			{"123456789012345678", errs.ErrAmountOverflow, "Too many whole digits"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})

	t.Run("Largest representable amount", func(t *testing.T) {
		cents, err := ParseAmount("92233720368547758.07")
		assert.NoError(t, err)
		assert.Equal(t, int64(9223372036854775807), cents)
	})
}

func TestParseBalance(t *testing.T) {
	cents, err := ParseBalance("0")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), cents)

	cents, err = ParseBalance("5000.00")
	assert.NoError(t, err)
	assert.Equal(t, int64(500000), cents)

	_, err = ParseBalance("-1")
	assert.ErrorIs(t, err, errs.ErrNonPositiveAmount)
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{10, "0.10"},
		{1015, "10.15"},
		{500000, "5000.00"},
		{-5, "-0.05"},
		{-123456, "-1234.56"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(tc.cents))
		})
	}
}

func TestAddCents(t *testing.T) {
	sum, err := AddCents(100, 250)
	assert.NoError(t, err)
	assert.Equal(t, int64(350), sum)

	_, err = AddCents(9223372036854775807, 1)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)

	_, err = AddCents(-9223372036854775807, -2)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)
}
