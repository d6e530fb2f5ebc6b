package money

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is an ISO 4217 currency code.
type Currency struct {
	code string
}

// NewCurrency creates a Currency after validating the code is exactly 3 uppercase letters.
func NewCurrency(code string) (Currency, error) {
	if !currencyCodeRe.MatchString(code) {
		return Currency{}, fmt.Errorf("invalid currency code %q: must be exactly 3 uppercase letters", code)
	}
	return Currency{code: code}, nil
}

// MustCurrency creates a Currency and panics on error. Intended for package-level variable
// initialization only.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the ISO 4217 currency code.
func (c Currency) Code() string {
	return c.code
}

// String returns the currency code.
func (c Currency) String() string {
	return c.code
}

// USD is the normalization currency for cross-currency comparisons.
var USD = MustCurrency("USD")

// centTolerance is the largest difference at which two monetary amounts are
// still considered equal after independent rounding.
var centTolerance = decimal.New(1, -2) // 0.01

// RoundCents rounds a monetary amount to 2 decimal places. decimal.Round
// rounds half away from zero, which is the half-up convention for the
// positive amounts handled here.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PercentOf computes pct percent of amount, rounded to cents.
// A zero percentage yields a zero amount, never a missing one.
func PercentOf(amount, pct decimal.Decimal) decimal.Decimal {
	if pct.IsZero() {
		return decimal.Zero.Round(2)
	}
	return RoundCents(amount.Mul(pct).Div(decimal.NewFromInt(100)))
}

// WithinCentTolerance reports whether a and b differ by at most 0.01
// currency units. Derived amounts (installment sums, per-installment splits)
// are compared with this tolerance rather than exact equality.
func WithinCentTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(centTolerance)
}
