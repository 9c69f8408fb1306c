// Package money provides an exact decimal amount for ledger arithmetic.
//
// Amounts never pass through binary floating point except at display
// boundaries (Float64, FromFloat). Rounding is half-up on magnitude, which is
// the SYSCOHADA convention for currency (2 places) and ratio percentages (1 place).
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scales used across the ledger.
const (
	CurrencyPlaces int32 = 2
	PercentPlaces  int32 = 1
)

// ErrDivisionByZero is returned by Div when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

var hundred = decimal.NewFromInt(100)

// Amount is an immutable exact decimal value.
type Amount struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{d: decimal.Zero}

// New creates an amount from an integer number of units.
func New(units int64) Amount {
	return Amount{d: decimal.NewFromInt(units)}
}

// Of parses a decimal literal such as "19.25" or "-1000".
func Of(literal string) (Amount, error) {
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return Zero, fmt.Errorf("invalid amount %q: %w", literal, err)
	}
	return Amount{d: d}, nil
}

// MustOf is like Of but panics on malformed input. Intended for constants and tests.
func MustOf(literal string) Amount {
	a, err := Of(literal)
	if err != nil {
		panic(err)
	}
	return a
}

// FromFloat converts a float at an input boundary. The shortest decimal
// representation of f is used, so FromFloat(0.1) is exactly 0.1.
func FromFloat(f float64) Amount {
	return Amount{d: decimal.NewFromFloat(f)}
}

// FromDecimal wraps an existing decimal.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{d: d}
}

// Sum adds all amounts.
func Sum(amounts ...Amount) Amount {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.d)
	}
	return Amount{d: total}
}

// Decimal returns the underlying decimal.
func (a Amount) Decimal() decimal.Decimal { return a.d }

func (a Amount) Add(b Amount) Amount { return Amount{d: a.d.Add(b.d)} }
func (a Amount) Sub(b Amount) Amount { return Amount{d: a.d.Sub(b.d)} }
func (a Amount) Mul(b Amount) Amount { return Amount{d: a.d.Mul(b.d)} }

// MulInt multiplies by an integer factor.
func (a Amount) MulInt(n int64) Amount { return Amount{d: a.d.Mul(decimal.NewFromInt(n))} }

// Div divides a by b. The quotient carries 16 fractional digits before any
// explicit rounding by the caller.
func (a Amount) Div(b Amount) (Amount, error) {
	if b.d.IsZero() {
		return Zero, ErrDivisionByZero
	}
	return Amount{d: a.d.Div(b.d)}, nil
}

// Percent returns a * rate / 100, unrounded.
func (a Amount) Percent(rate Amount) Amount {
	return Amount{d: a.d.Mul(rate.d).Div(hundred)}
}

func (a Amount) Neg() Amount { return Amount{d: a.d.Neg()} }
func (a Amount) Abs() Amount { return Amount{d: a.d.Abs()} }

// Round rounds half-up (away from zero) to the given number of decimal places.
func (a Amount) Round(places int32) Amount { return Amount{d: a.d.Round(places)} }

// RoundCurrency rounds to CurrencyPlaces.
func (a Amount) RoundCurrency() Amount { return a.Round(CurrencyPlaces) }

// RoundPercent rounds to PercentPlaces.
func (a Amount) RoundPercent() Amount { return a.Round(PercentPlaces) }

// Float64 converts for display. Never feed the result back into arithmetic.
func (a Amount) Float64() float64 {
	f, _ := a.d.Float64()
	return f
}

func (a Amount) IsZero() bool     { return a.d.IsZero() }
func (a Amount) IsNegative() bool { return a.d.IsNegative() }
func (a Amount) IsPositive() bool { return a.d.IsPositive() }

// Cmp returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int { return a.d.Cmp(b.d) }

func (a Amount) Equal(b Amount) bool       { return a.d.Equal(b.d) }
func (a Amount) GreaterThan(b Amount) bool { return a.d.GreaterThan(b.d) }
func (a Amount) LessThan(b Amount) bool    { return a.d.LessThan(b.d) }

// Max returns the larger of a and b.
func Max(a, b Amount) Amount {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func (a Amount) String() string { return a.d.String() }

// StringFixed formats with exactly places decimals.
func (a Amount) StringFixed(places int32) string { return a.d.StringFixed(places) }

// MarshalJSON encodes the amount as a quoted decimal string.
func (a Amount) MarshalJSON() ([]byte, error) { return a.d.MarshalJSON() }

// UnmarshalJSON accepts quoted strings and bare JSON numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.d.UnmarshalJSON(data)
}
