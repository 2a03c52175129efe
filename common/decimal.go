package common

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimal rounds x to places digits after the point, ties away from zero.
func (x Rational) Decimal(places int32) decimal.Decimal {
	n := decimal.NewFromBigInt(x.n.BigInt(), 0)
	d := decimal.NewFromBigInt(x.Den().BigInt(), 0)
	return n.DivRound(d, places)
}

func (x Rational) FloatString(places int32) string {
	return x.Decimal(places).StringFixed(places)
}

// DecimalExponentMaximum bounds |exponent| of decimals turned into rationals,
// the power of ten is materialized as an Integer.
const DecimalExponentMaximum = 1024

// NewRationalFromDecimal is exact, a decimal is always a ratio over a power
// of ten.
func NewRationalFromDecimal(d decimal.Decimal) (Rational, error) {
	c, exp := NewIntegerFromBig(d.Coefficient()), d.Exponent()
	if exp > DecimalExponentMaximum || exp < -DecimalExponentMaximum {
		return Rational{}, fmt.Errorf("%w: decimal exponent %d", ErrInvalidFormat, exp)
	}
	if exp >= 0 {
		return NewRationalFromInteger(c.Mul(pow10(exp))), nil
	}
	return ration(c, pow10(-exp)), nil
}

// ParseDecimal reads decimal literals such as "0.25", "-1.5" or "3e-2".
func ParseDecimal(s string) (Rational, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: decimal %q", ErrInvalidFormat, s)
	}
	return NewRationalFromDecimal(d)
}

func pow10(e int32) Integer {
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(e)), nil)
	return NewIntegerFromBig(p)
}
