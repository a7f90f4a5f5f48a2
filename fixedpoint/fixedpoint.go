// Package fixedpoint provides exact base-10 arithmetic for money math. All
// operations are arbitrary precision; rounding happens only when a value is
// rendered to a fixed number of decimal places.
package fixedpoint

import (
	"strings"

	"github.com/shopspring/decimal"
)

// divPrecision bounds the number of fractional digits produced by Div. The
// flows that must stay exact (scaling by powers of ten) go through ShiftPow10
// instead and never round.
const divPrecision = 32

// ArithmeticError reports an invalid numeric literal or an undefined
// operation such as division by zero.
type ArithmeticError struct {
	Op     string
	Reason string
}

func (e *ArithmeticError) Error() string {
	return "fixedpoint: " + e.Op + ": " + e.Reason
}

// Decimal wraps an arbitrary-precision base-10 value.
type Decimal struct {
	v decimal.Decimal
}

// New parses a decimal literal.
func New(value string) (Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Decimal{}, &ArithmeticError{Op: "parse", Reason: "empty literal"}
	}
	parsed, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Decimal{}, &ArithmeticError{Op: "parse", Reason: "invalid literal " + trimmed}
	}
	return Decimal{v: parsed}, nil
}

// MustNew parses a decimal literal and panics on failure. Reserved for
// package-level constants.
func MustNew(value string) Decimal {
	d, err := New(value)
	if err != nil {
		panic(err)
	}
	return d
}

// FromInt64 converts an integer.
func FromInt64(value int64) Decimal {
	return Decimal{v: decimal.NewFromInt(value)}
}

// Zero returns the additive identity.
func Zero() Decimal { return Decimal{} }

// One returns the multiplicative identity.
func One() Decimal { return Decimal{v: decimal.New(1, 0)} }

func (d Decimal) Add(other Decimal) Decimal { return Decimal{v: d.v.Add(other.v)} }

func (d Decimal) Sub(other Decimal) Decimal { return Decimal{v: d.v.Sub(other.v)} }

func (d Decimal) Mul(other Decimal) Decimal { return Decimal{v: d.v.Mul(other.v)} }

// Div divides by other, rounding half-up at divPrecision fractional digits.
// Dividing by zero returns an ArithmeticError.
func (d Decimal) Div(other Decimal) (Decimal, error) {
	if other.v.IsZero() {
		return Decimal{}, &ArithmeticError{Op: "div", Reason: "division by zero"}
	}
	return Decimal{v: d.v.DivRound(other.v, divPrecision)}, nil
}

// PowInt raises d to an integer exponent by squaring. Positive exponents are
// exact; negative exponents divide one by the exact positive power and are
// subject to Div rounding.
func (d Decimal) PowInt(exp int) (Decimal, error) {
	if exp < 0 {
		positive, err := d.PowInt(-exp)
		if err != nil {
			return Decimal{}, err
		}
		return One().Div(positive)
	}
	result := One()
	base := d
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result, nil
}

// ShiftPow10 multiplies by 10^n exactly. Negative n scales down without loss.
func (d Decimal) ShiftPow10(n int32) Decimal {
	return Decimal{v: d.v.Shift(n)}
}

func (d Decimal) Cmp(other Decimal) int { return d.v.Cmp(other.v) }

func (d Decimal) GreaterThan(other Decimal) bool { return d.v.Cmp(other.v) > 0 }

func (d Decimal) GreaterThanOrEqual(other Decimal) bool { return d.v.Cmp(other.v) >= 0 }

func (d Decimal) LessThan(other Decimal) bool { return d.v.Cmp(other.v) < 0 }

func (d Decimal) LessThanOrEqual(other Decimal) bool { return d.v.Cmp(other.v) <= 0 }

func (d Decimal) Equal(other Decimal) bool { return d.v.Cmp(other.v) == 0 }

func (d Decimal) IsZero() bool { return d.v.IsZero() }

func (d Decimal) IsNegative() bool { return d.v.IsNegative() }

// IsInteger reports whether d has no fractional part.
func (d Decimal) IsInteger() bool { return d.v.IsInteger() }

func (d Decimal) Sign() int { return d.v.Sign() }

// String renders the full-precision value without trailing zeros.
func (d Decimal) String() string { return d.v.String() }

// StringFixed renders exactly places fractional digits, rounding half away
// from zero.
func (d Decimal) StringFixed(places int32) string {
	return d.v.StringFixed(places)
}

// StringFixedTrunc renders exactly places fractional digits, truncating any
// excess digits instead of rounding.
func (d Decimal) StringFixedTrunc(places int32) string {
	return d.v.Truncate(places).StringFixed(places)
}

// Truncate drops fractional digits beyond places without rounding.
func (d Decimal) Truncate(places int32) Decimal {
	return Decimal{v: d.v.Truncate(places)}
}
