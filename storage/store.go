package storage

import "github.com/MixinNetwork/rational/common"

type Register struct {
	Name  string          `json:"name"`
	Value common.Rational `json:"value"`
}

type Store interface {
	Close() error

	ReadRegister(name string) (common.Rational, bool, error)
	WriteRegister(name string, value common.Rational) error
	RemoveRegister(name string) error
	ListRegisters() ([]*Register, error)
}
