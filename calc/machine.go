package calc

import (
	"fmt"
	"strings"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/logger"
)

const (
	storePrefix = "s:"
	loadPrefix  = "l:"
)

// Machine evaluates whitespace separated postfix programs over Rationals.
// It is not safe for concurrent use.
type Machine struct {
	stack     *Stack
	registers Registers
}

func NewMachine(regs Registers) *Machine {
	if regs == nil {
		regs = NewMemoryRegisters()
	}
	return &Machine{stack: NewStack(), registers: regs}
}

// Eval stops at the first failing token, values pushed before it stay.
func (m *Machine) Eval(program string) error {
	for _, token := range strings.Fields(program) {
		err := m.exec(token)
		if err != nil {
			return fmt.Errorf("%s: %w", token, err)
		}
		logger.Debugf("calc %s => %v\n", token, m.stack.data)
	}
	return nil
}

func (m *Machine) Stack() []common.Rational {
	return m.stack.Values()
}

func (m *Machine) Top() (common.Rational, error) {
	return m.stack.Peek()
}

func (m *Machine) exec(token string) error {
	if cmd, found := commands[token]; found {
		return cmd(m)
	}
	if strings.HasPrefix(token, storePrefix) && len(token) > len(storePrefix) {
		return m.store(token[len(storePrefix):])
	}
	if strings.HasPrefix(token, loadPrefix) && len(token) > len(loadPrefix) {
		return m.load(token[len(loadPrefix):])
	}
	r, err := ParseLiteral(token)
	if err != nil {
		return err
	}
	m.stack.Push(r)
	return nil
}

func (m *Machine) store(name string) error {
	r, err := m.stack.Peek()
	if err != nil {
		return err
	}
	err = m.registers.WriteRegister(name, r)
	if err != nil {
		return err
	}
	_, err = m.stack.Pop()
	return err
}

func (m *Machine) load(name string) error {
	r, found, err := m.registers.ReadRegister(name)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrRegisterEmpty, name)
	}
	m.stack.Push(r)
	return nil
}

// ParseLiteral reads "n", "n/d", decimals such as "1.25" or "3e-2", and
// the dc style negative "_n/d".
func ParseLiteral(token string) (common.Rational, error) {
	if strings.HasPrefix(token, "_") {
		if strings.IndexAny(token[1:], "_+-") == 0 {
			return common.Rational{}, fmt.Errorf("%w: %q", common.ErrInvalidFormat, token)
		}
		r, err := ParseLiteral(token[1:])
		if err != nil {
			return r, err
		}
		return r.Neg(), nil
	}
	if strings.ContainsAny(token, ".eE") && !strings.Contains(token, "/") {
		return common.ParseDecimal(token)
	}
	return common.ParseRational(token)
}
