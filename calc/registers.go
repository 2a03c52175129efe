package calc

import (
	"sync"

	"github.com/MixinNetwork/rational/common"
)

// Registers is satisfied by storage.Store for persistent registers.
type Registers interface {
	ReadRegister(name string) (common.Rational, bool, error)
	WriteRegister(name string, value common.Rational) error
}

type MemoryRegisters struct {
	sync.RWMutex
	values map[string]common.Rational
}

func NewMemoryRegisters() *MemoryRegisters {
	return &MemoryRegisters{values: make(map[string]common.Rational)}
}

func (m *MemoryRegisters) ReadRegister(name string) (common.Rational, bool, error) {
	m.RLock()
	defer m.RUnlock()
	r, found := m.values[name]
	return r, found, nil
}

func (m *MemoryRegisters) WriteRegister(name string, value common.Rational) error {
	m.Lock()
	defer m.Unlock()
	m.values[name] = value
	return nil
}
