// Package money represents currency amounts as integer counts of minor units.
//
// All balance arithmetic in settleup happens on Amount values. Decimal strings
// ("12.50") only appear at the edges: request parsing and display formatting.
//
// Usage:
//
//	exp, _ := money.Exponent("USD")        // 2
//	amt, _ := money.Parse("12.50", exp)    // 1250
//	amt.Format(exp)                        // "12.50"
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	ErrUnknownCurrency = errors.New("unknown currency code")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrTooPrecise      = errors.New("amount has more decimal places than the currency allows")
)

// Amount is a signed number of minor currency units (cents for USD).
type Amount int64

// Abs returns the absolute value of a.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// Decimal converts a to a decimal in major units for a currency with the given exponent.
func (a Amount) Decimal(exp int) decimal.Decimal {
	return decimal.New(int64(a), -int32(exp))
}

// Format renders a with exactly exp decimal places, e.g. 1250 -> "12.50".
func (a Amount) Format(exp int) string {
	return a.Decimal(exp).StringFixed(int32(exp))
}

// Exponent returns the number of minor-unit digits of an ISO 4217 currency code
// (2 for USD and INR, 0 for JPY).
func Exponent(code string) (int, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale, nil
}

// Parse converts a decimal string in major units into an Amount.
// Values with more fractional digits than exp allows are rejected rather than rounded.
func Parse(s string, exp int) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidAmount, s, err)
	}
	return FromDecimal(d, exp)
}

// FromDecimal converts a major-unit decimal into an Amount.
func FromDecimal(d decimal.Decimal, exp int) (Amount, error) {
	scaled := d.Shift(int32(exp))
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("%w: %s", ErrTooPrecise, d.String())
	}
	if scaled.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidAmount, d.String())
	}
	return Amount(scaled.IntPart()), nil
}

// FromFloat converts a float in major units, rounding half away from zero to the
// currency's minor unit. Only meant for snapshot files that carry plain numbers.
func FromFloat(f float64, exp int) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, f)
	}
	return FromDecimal(decimal.NewFromFloat(f).Round(int32(exp)), exp)
}
