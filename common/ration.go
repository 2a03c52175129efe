package common

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/MixinNetwork/rational/crypto"
)

var OneRat = NewRationalFromInteger(One)

// Rational is an exact ratio of two Integers, always in lowest terms with
// the sign carried by the numerator. The zero value is the rational 0.
//
// Canonical zero is stored with both fields zero, and a zero stored
// denominator is reported as 1, so 0 prints as "0" and Den never returns 0.
type Rational struct {
	n Integer
	d Integer
}

func (x Integer) Ration(y Integer) (Rational, error) {
	return canonical(x, y)
}

func NewRational(n, d int64) (Rational, error) {
	return NewInteger(n).Ration(NewInteger(d))
}

func NewRationalFromBig(n, d *big.Int) (Rational, error) {
	return NewIntegerFromBig(n).Ration(NewIntegerFromBig(d))
}

func NewRationalFromInteger(x Integer) Rational {
	return ration(x, One)
}

func RequireRational(n, d int64) Rational {
	r, err := NewRational(n, d)
	if err != nil {
		panic(err)
	}
	return r
}

// canonical is the only place a numerator and denominator pair is stored.
// A zero numerator yields zero whatever the denominator, 0/0 included.
func canonical(n, d Integer) (Rational, error) {
	if n.Sign() == 0 {
		return Rational{}, nil
	}
	if d.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	g := n.GCD(d)
	n, d = n.quo(g), d.quo(g)
	if d.Sign() < 0 {
		n, d = n.Neg(), d.Neg()
	}
	return Rational{n: n, d: d}, nil
}

// ration is canonical for denominators already known to be non zero.
func ration(n, d Integer) Rational {
	r, err := canonical(n, d)
	if err != nil {
		panic(fmt.Errorf("ration(%s, %s) %v", n, d, err))
	}
	return r
}

func (x Rational) Num() Integer {
	return x.n
}

func (x Rational) Den() Integer {
	if x.d.Sign() == 0 {
		return One
	}
	return x.d
}

func (x Rational) Sign() int {
	return x.n.Sign()
}

func (x Rational) IsZero() bool {
	return x.n.Sign() == 0
}

func (x Rational) IsInteger() bool {
	return x.Den().Equal(One)
}

// cross brings x and y over the common denominator x.d*y.d.
func cross(x, y Rational) (den, xn, yn Integer) {
	xd, yd := x.Den(), y.Den()
	return xd.Mul(yd), x.n.Mul(yd), y.n.Mul(xd)
}

func (x Rational) Add(y Rational) Rational {
	den, xn, yn := cross(x, y)
	return ration(xn.Add(yn), den)
}

func (x Rational) Sub(y Rational) Rational {
	den, xn, yn := cross(x, y)
	return ration(xn.Sub(yn), den)
}

func (x Rational) Mul(y Rational) Rational {
	return ration(x.n.Mul(y.n), x.Den().Mul(y.Den()))
}

func (x Rational) Div(y Rational) (Rational, error) {
	inv, err := y.Inverse()
	if err != nil {
		return Rational{}, err
	}
	return x.Mul(inv), nil
}

func (x Rational) Neg() Rational {
	return Rational{n: x.n.Neg(), d: x.d}
}

func (x Rational) Abs() Rational {
	return Rational{n: x.n.Abs(), d: x.d}
}

func (x Rational) Inverse() (Rational, error) {
	if x.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	return ration(x.d, x.n), nil
}

// Product scales x by the ratio, truncating toward zero.
func (x Rational) Product(y Integer) Integer {
	return y.Mul(x.n).quo(x.Den())
}

// Truncate drops the fractional part, rounding toward zero.
func (x Rational) Truncate() Integer {
	return x.n.quo(x.Den())
}

func (x Rational) Cmp(y Rational) int {
	_, xn, yn := cross(x, y)
	return xn.Cmp(yn)
}

func (x Rational) Equal(y Rational) bool {
	return x.n.Equal(y.n) && x.Den().Equal(y.Den())
}

func (x Rational) Less(y Rational) bool {
	return x.Cmp(y) < 0
}

func (x Rational) LessOrEqual(y Rational) bool {
	return x.Cmp(y) <= 0
}

func (x Rational) Greater(y Rational) bool {
	return x.Cmp(y) > 0
}

func (x Rational) GreaterOrEqual(y Rational) bool {
	return x.Cmp(y) >= 0
}

// InRange reports whether lo <= x <= hi.
func (x Rational) InRange(lo, hi Rational) bool {
	return lo.LessOrEqual(x) && x.LessOrEqual(hi)
}

func (x Rational) Hash() crypto.Hash {
	return crypto.NewHash([]byte(x.String()))
}

func (x Rational) Float64() float64 {
	den := x.Den()
	n := new(big.Float).SetInt(&x.n.i)
	d := new(big.Float).SetInt(&den.i)
	f, _ := n.Quo(n, d).Float64()
	return f
}

func (x Rational) String() string {
	if x.IsInteger() {
		return x.n.String()
	}
	return x.n.String() + "/" + x.d.String()
}

// ParseRational reads "n" or "n/d" in base 10, splitting on the first
// slash. The input need not be in lowest terms, but a zero denominator is
// rejected even under a zero numerator.
func ParseRational(s string) (Rational, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "/", 2)
	n, err := NewIntegerFromString(parts[0])
	if err != nil {
		return Rational{}, err
	}
	d := One
	if len(parts) == 2 {
		d, err = NewIntegerFromString(parts[1])
		if err != nil {
			return Rational{}, err
		}
		if d.Sign() == 0 {
			return Rational{}, fmt.Errorf("%w: %q", ErrDivisionByZero, s)
		}
	}
	r, err := n.Ration(d)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: %q", err, s)
	}
	return r, nil
}

func RequireRationalFromString(s string) Rational {
	r, err := ParseRational(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (x Rational) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

func (x *Rational) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	r, err := ParseRational(unquoted)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// The msgpack payload is the uvarint length of the numerator bytes, the
// numerator bytes, then the denominator bytes, both in Integer.Bytes form.
func (x Rational) MarshalMsgpack() ([]byte, error) {
	n, d := x.n.Bytes(), x.Den().Bytes()
	buf := make([]byte, binary.MaxVarintLen64, binary.MaxVarintLen64+len(n)+len(d))
	l := binary.PutUvarint(buf, uint64(len(n)))
	buf = append(buf[:l], n...)
	return append(buf, d...), nil
}

func (x *Rational) UnmarshalMsgpack(data []byte) error {
	l, size := binary.Uvarint(data)
	if size <= 0 || uint64(len(data)-size) < l {
		return fmt.Errorf("%w: rational payload %x", ErrInvalidFormat, data)
	}
	data = data[size:]
	n, err := NewIntegerFromBytes(data[:l])
	if err != nil {
		return err
	}
	d, err := NewIntegerFromBytes(data[l:])
	if err != nil {
		return err
	}
	r, err := n.Ration(d)
	if err != nil {
		return err
	}
	*x = r
	return nil
}
