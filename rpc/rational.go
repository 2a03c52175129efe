package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/MixinNetwork/rational/calc"
	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/crypto"
)

var errRegistersUnavailable = errors.New("registers unavailable without storage")

func parseRational(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	r, err := paramRational(params, 0)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"value":       r,
		"numerator":   r.Num(),
		"denominator": r.Den(),
		"integer":     r.IsInteger(),
	}, nil
}

func arithmetic(method string, params []interface{}) (common.Rational, error) {
	if len(params) != 2 {
		return common.Rational{}, errors.New("invalid params count")
	}
	x, err := paramRational(params, 0)
	if err != nil {
		return x, err
	}
	y, err := paramRational(params, 1)
	if err != nil {
		return y, err
	}
	switch method {
	case "add":
		return x.Add(y), nil
	case "sub":
		return x.Sub(y), nil
	case "mul":
		return x.Mul(y), nil
	default:
		return x.Div(y)
	}
}

func unary(method string, params []interface{}) (common.Rational, error) {
	if len(params) != 1 {
		return common.Rational{}, errors.New("invalid params count")
	}
	x, err := paramRational(params, 0)
	if err != nil {
		return x, err
	}
	if method == "neg" {
		return x.Neg(), nil
	}
	return x.Inverse()
}

func compare(params []interface{}) (int, error) {
	if len(params) != 2 {
		return 0, errors.New("invalid params count")
	}
	x, err := paramRational(params, 0)
	if err != nil {
		return 0, err
	}
	y, err := paramRational(params, 1)
	if err != nil {
		return 0, err
	}
	return x.Cmp(y), nil
}

func inRange(params []interface{}) (bool, error) {
	if len(params) != 3 {
		return false, errors.New("invalid params count")
	}
	var v [3]common.Rational
	for i := range v {
		r, err := paramRational(params, i)
		if err != nil {
			return false, err
		}
		v[i] = r
	}
	return v[0].InRange(v[1], v[2]), nil
}

func toDecimal(custom *config.Custom, params []interface{}) (string, error) {
	if len(params) != 1 && len(params) != 2 {
		return "", errors.New("invalid params count")
	}
	x, err := paramRational(params, 0)
	if err != nil {
		return "", err
	}
	places := int64(custom.Calculator.Precision)
	if len(params) == 2 {
		places, err = strconv.ParseInt(fmt.Sprint(params[1]), 10, 32)
		if err != nil || places < 0 || places > config.PrecisionMaximum {
			return "", fmt.Errorf("invalid decimal places %v", params[1])
		}
	}
	return x.FloatString(int32(places)), nil
}

func hash(params []interface{}) (crypto.Hash, error) {
	if len(params) != 1 {
		return crypto.Hash{}, errors.New("invalid params count")
	}
	x, err := paramRational(params, 0)
	if err != nil {
		return crypto.Hash{}, err
	}
	return x.Hash(), nil
}

func eval(store calc.Registers, params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	program, ok := params[0].(string)
	if !ok {
		return nil, fmt.Errorf("invalid program %v", params[0])
	}
	m := calc.NewMachine(store)
	err := m.Eval(program)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"stack": m.Stack()}, nil
}

func paramRational(params []interface{}, i int) (common.Rational, error) {
	switch v := params[i].(type) {
	case string:
		return calc.ParseLiteral(v)
	case json.Number:
		return calc.ParseLiteral(v.String())
	default:
		return common.Rational{}, fmt.Errorf("invalid rational param %d %v", i, params[i])
	}
}
