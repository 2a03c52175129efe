package common

import (
	"fmt"
	"math/big"
	"strconv"
)

var (
	Zero = NewInteger(0)
	One  = NewInteger(1)
)

// Integer is an immutable signed integer of unbounded magnitude. Copies
// share their digits, so every operation writes into a fresh value and
// nothing mutates a receiver in place.
type Integer struct {
	i big.Int
}

func NewInteger(x int64) (v Integer) {
	v.i.SetInt64(x)
	return
}

func NewIntegerFromBig(x *big.Int) (v Integer) {
	if x != nil {
		v.i.Set(x)
	}
	return
}

func NewIntegerFromString(x string) (v Integer, err error) {
	_, ok := v.i.SetString(x, 10)
	if !ok {
		return Zero, fmt.Errorf("%w: integer %q", ErrInvalidFormat, x)
	}
	return v, nil
}

func RequireIntegerFromString(x string) Integer {
	v, err := NewIntegerFromString(x)
	if err != nil {
		panic(err)
	}
	return v
}

func (x Integer) Add(y Integer) (v Integer) {
	v.i.Add(&x.i, &y.i)
	return
}

func (x Integer) Sub(y Integer) (v Integer) {
	v.i.Sub(&x.i, &y.i)
	return
}

func (x Integer) Mul(y Integer) (v Integer) {
	v.i.Mul(&x.i, &y.i)
	return
}

// Div truncates toward zero.
func (x Integer) Div(y Integer) (Integer, error) {
	if y.Sign() == 0 {
		return Zero, ErrDivisionByZero
	}
	return x.quo(y), nil
}

// Rem has the sign of x, so that x == y*x.Div(y) + x.Rem(y).
func (x Integer) Rem(y Integer) (Integer, error) {
	if y.Sign() == 0 {
		return Zero, ErrDivisionByZero
	}
	return x.rem(y), nil
}

func (x Integer) quo(y Integer) (v Integer) {
	v.i.Quo(&x.i, &y.i)
	return
}

func (x Integer) rem(y Integer) (v Integer) {
	v.i.Rem(&x.i, &y.i)
	return
}

func (x Integer) Neg() (v Integer) {
	v.i.Neg(&x.i)
	return
}

func (x Integer) Abs() (v Integer) {
	v.i.Abs(&x.i)
	return
}

// GCD returns the non-negative greatest common divisor of |x| and |y| by
// the Euclidean algorithm. GCD(0, 0) is 0.
func (x Integer) GCD(y Integer) Integer {
	a, b := x.Abs(), y.Abs()
	for b.Sign() != 0 {
		a, b = b, a.rem(b)
	}
	return a
}

// LCM is non-negative, and 0 when either operand is 0.
func (x Integer) LCM(y Integer) Integer {
	if x.Sign() == 0 || y.Sign() == 0 {
		return Zero
	}
	return x.Mul(y).Abs().quo(x.GCD(y))
}

func (x Integer) Cmp(y Integer) int {
	return x.i.Cmp(&y.i)
}

func (x Integer) Equal(y Integer) bool {
	return x.Cmp(y) == 0
}

func (x Integer) Sign() int {
	return x.i.Sign()
}

func (x Integer) IsInt64() bool {
	return x.i.IsInt64()
}

// Int64 is undefined when x does not fit, check IsInt64 first.
func (x Integer) Int64() int64 {
	return x.i.Int64()
}

func (x Integer) BigInt() *big.Int {
	return new(big.Int).Set(&x.i)
}

func (x Integer) Float64() float64 {
	f, _ := new(big.Float).SetInt(&x.i).Float64()
	return f
}

func (x Integer) String() string {
	return x.i.String()
}

func (x Integer) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

func (x *Integer) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	i, err := NewIntegerFromString(unquoted)
	if err != nil {
		return err
	}
	*x = i
	return nil
}

// The msgpack payload is a sign byte (0 or 1) followed by the big-endian
// magnitude, never empty so the ext length stays non zero.
func (x Integer) MarshalMsgpack() ([]byte, error) {
	return x.Bytes(), nil
}

func (x *Integer) UnmarshalMsgpack(data []byte) error {
	v, err := NewIntegerFromBytes(data)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Integer) Bytes() []byte {
	if x.Sign() < 0 {
		return append([]byte{1}, x.i.Bytes()...)
	}
	return append([]byte{0}, x.i.Bytes()...)
}

func NewIntegerFromBytes(data []byte) (v Integer, err error) {
	if len(data) == 0 {
		return Zero, nil
	}
	switch data[0] {
	case 0:
		v.i.SetBytes(data[1:])
	case 1:
		v.i.SetBytes(data[1:])
		v.i.Neg(&v.i)
	default:
		return Zero, fmt.Errorf("%w: integer sign byte %d", ErrInvalidFormat, data[0])
	}
	return v, nil
}
