package common

import "errors"

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidFormat  = errors.New("invalid rational number format")
)
