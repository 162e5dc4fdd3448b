package entity

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// maxIntegerDigits is the digit count of the largest whole amount, 92233720368547758
const maxIntegerDigits = 17

var maxCents = decimal.NewFromInt(math.MaxInt64)

// plainDecimal accepts digits with an optional fraction; exponents are rejected
var plainDecimal = regexp.MustCompile(`^([+-]?)(\d+)(?:\.(\d*))?$`)

// ParseAmount converts a decimal string into minor units and requires it to be positive.
// Used for every balance-affecting request amount.
func ParseAmount(amount string) (int64, error) {
	cents, err := toCents(amount)
	if err != nil {
		return 0, err
	}
	if cents <= 0 {
		return 0, errs.ErrNonPositiveAmount
	}
	return cents, nil
}

// ParseBalance converts a decimal string into minor units, allowing zero.
func ParseBalance(balance string) (int64, error) {
	cents, err := toCents(balance)
	if err != nil {
		return 0, err
	}
	if cents < 0 {
		return 0, errs.ErrNonPositiveAmount
	}
	return cents, nil
}

func toCents(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	parts := plainDecimal.FindStringSubmatch(amount)
	if parts == nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}

	sign, whole, fraction := parts[1], strings.TrimLeft(parts[2], "0"), strings.TrimRight(parts[3], "0")
	if len(whole) > maxIntegerDigits {
		return 0, errs.ErrAmountOverflow
	}
	if len(fraction) > MaxDecimalPlaces {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	if whole == "" {
		whole = "0"
	}
	if fraction == "" {
		fraction = "0"
	}

	d, err := decimal.NewFromString(sign + whole + "." + fraction)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}

	cents := d.Shift(MaxDecimalPlaces)
	if cents.Abs().GreaterThan(maxCents) {
		return 0, errs.ErrAmountOverflow
	}
	return cents.IntPart(), nil
}

// FormatAmount converts minor units to a decimal string with exactly two places.
// For example 1015 becomes "10.15" and -5 becomes "-0.05".
func FormatAmount(amountInCents int64) string {
	return decimal.New(amountInCents, -MaxDecimalPlaces).StringFixed(MaxDecimalPlaces)
}

// AddCents adds two minor-unit values and reports int64 overflow.
func AddCents(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, errs.ErrAmountOverflow
	}
	return a + b, nil
}
