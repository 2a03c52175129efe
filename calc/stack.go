package calc

import (
	"errors"
	"fmt"

	"github.com/MixinNetwork/rational/common"
)

var (
	ErrStackEmpty     = errors.New("stack empty")
	ErrNotEnoughStack = errors.New("not enough values on stack")
	ErrRegisterEmpty  = errors.New("register empty")
)

type Stack struct {
	data []common.Rational
}

func NewStack() *Stack {
	return &Stack{data: make([]common.Rational, 0)}
}

func (s *Stack) Push(r common.Rational) {
	s.data = append(s.data, r)
}

func (s *Stack) Pop() (common.Rational, error) {
	if len(s.data) == 0 {
		return common.Rational{}, ErrStackEmpty
	}
	r := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return r, nil
}

func (s *Stack) Peek() (common.Rational, error) {
	if len(s.data) == 0 {
		return common.Rational{}, ErrStackEmpty
	}
	return s.data[len(s.data)-1], nil
}

// top returns the n topmost values, deepest first, without popping them.
func (s *Stack) top(n int) ([]common.Rational, error) {
	if len(s.data) == 0 {
		return nil, ErrStackEmpty
	}
	if len(s.data) < n {
		return nil, fmt.Errorf("%w: less than %d values", ErrNotEnoughStack, n)
	}
	return s.data[len(s.data)-n:], nil
}

// replace pops n values and pushes r in their place.
func (s *Stack) replace(n int, r common.Rational) {
	s.data = append(s.data[:len(s.data)-n], r)
}

func (s *Stack) Clear() {
	s.data = s.data[:0]
}

// Values lists the stack bottom first.
func (s *Stack) Values() []common.Rational {
	values := make([]common.Rational, len(s.data))
	copy(values, s.data)
	return values
}
