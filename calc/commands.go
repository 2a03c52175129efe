package calc

import (
	"github.com/MixinNetwork/rational/common"
)

var commands map[string]func(*Machine) error

func init() {
	commands = map[string]func(*Machine) error{
		"+": binary(func(a, b common.Rational) (common.Rational, error) {
			return a.Add(b), nil
		}),
		"-": binary(func(a, b common.Rational) (common.Rational, error) {
			return a.Sub(b), nil
		}),
		"*": binary(func(a, b common.Rational) (common.Rational, error) {
			return a.Mul(b), nil
		}),
		"/": binary(func(a, b common.Rational) (common.Rational, error) {
			return a.Div(b)
		}),
		"cmp": binary(func(a, b common.Rational) (common.Rational, error) {
			return common.NewRational(int64(a.Cmp(b)), 1)
		}),

		"neg": unary(func(a common.Rational) (common.Rational, error) {
			return a.Neg(), nil
		}),
		"inv": unary(func(a common.Rational) (common.Rational, error) {
			return a.Inverse()
		}),
		"abs": unary(func(a common.Rational) (common.Rational, error) {
			return a.Abs(), nil
		}),
		"trunc": unary(func(a common.Rational) (common.Rational, error) {
			return common.NewRationalFromInteger(a.Truncate()), nil
		}),

		// x lo hi in
		"in": func(m *Machine) error {
			v, err := m.stack.top(3)
			if err != nil {
				return err
			}
			in := common.Rational{}
			if v[0].InRange(v[1], v[2]) {
				in = common.OneRat
			}
			m.stack.replace(3, in)
			return nil
		},

		"dup": func(m *Machine) error {
			r, err := m.stack.Peek()
			if err != nil {
				return err
			}
			m.stack.Push(r)
			return nil
		},
		"swap": func(m *Machine) error {
			v, err := m.stack.top(2)
			if err != nil {
				return err
			}
			v[0], v[1] = v[1], v[0]
			return nil
		},
		"drop": func(m *Machine) error {
			_, err := m.stack.Pop()
			return err
		},
		"clear": func(m *Machine) error {
			m.stack.Clear()
			return nil
		},
	}
}

func unary(op func(a common.Rational) (common.Rational, error)) func(*Machine) error {
	return func(m *Machine) error {
		v, err := m.stack.top(1)
		if err != nil {
			return err
		}
		r, err := op(v[0])
		if err != nil {
			return err
		}
		m.stack.replace(1, r)
		return nil
	}
}

// binary applies op to (second, top), the operands stay on failure.
func binary(op func(a, b common.Rational) (common.Rational, error)) func(*Machine) error {
	return func(m *Machine) error {
		v, err := m.stack.top(2)
		if err != nil {
			return err
		}
		r, err := op(v[0], v[1])
		if err != nil {
			return err
		}
		m.stack.replace(2, r)
		return nil
	}
}
