package storage

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/logger"
	"github.com/dgraph-io/badger/v3"
)

const (
	registerPrefix          = "REGISTER:"
	registerNameMaximumSize = 256
)

func (s *BadgerStore) ReadRegister(name string) (common.Rational, bool, error) {
	var r common.Rational
	err := validateRegisterName(name)
	if err != nil {
		return r, false, err
	}

	key := registerKey(name)
	if val, ok := s.cache.HasGet(nil, key); ok {
		err = common.MsgpackUnmarshal(val, &r)
		return r, err == nil, err
	}

	// miss fills share the writers' mutex, the cache never goes behind a commit
	s.mutex.Lock()
	defer s.mutex.Unlock()

	txn := s.registersDB.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return r, false, nil
	} else if err != nil {
		return r, false, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return r, false, err
	}
	err = common.DecompressMsgpackUnmarshal(val, &r)
	if err != nil {
		return r, false, err
	}
	s.cache.Set(key, common.MsgpackMarshalPanic(r))
	return r, true, nil
}

func (s *BadgerStore) WriteRegister(name string, value common.Rational) error {
	err := validateRegisterName(name)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	txn := s.registersDB.NewTransaction(true)
	defer txn.Discard()

	key := registerKey(name)
	err = txn.Set(key, common.CompressMsgpackMarshalPanic(value))
	if err != nil {
		return err
	}
	err = txn.Commit()
	if err != nil {
		return err
	}
	s.cache.Set(key, common.MsgpackMarshalPanic(value))
	logger.Debugf("register %s = %s\n", name, value)
	return nil
}

func (s *BadgerStore) RemoveRegister(name string) error {
	err := validateRegisterName(name)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	key := registerKey(name)
	err = s.registersDB.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		return err
	}
	s.cache.Del(key)
	logger.Debugf("register %s removed\n", name)
	return nil
}

func (s *BadgerStore) ListRegisters() ([]*Register, error) {
	txn := s.registersDB.NewTransaction(false)
	defer txn.Discard()

	prefix := []byte(registerPrefix)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	registers := make([]*Register, 0)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		name := string(item.KeyCopy(nil)[len(prefix):])
		reg := &Register{Name: name}
		err := item.Value(func(v []byte) error {
			return common.DecompressMsgpackUnmarshal(v, &reg.Value)
		})
		if err != nil {
			return nil, err
		}
		registers = append(registers, reg)
	}
	return registers, nil
}

func validateRegisterName(name string) error {
	if name == "" || len(name) > registerNameMaximumSize {
		return fmt.Errorf("invalid register name size %d", len(name))
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("invalid register name %q", name)
	}
	return nil
}

func registerKey(name string) []byte {
	return append([]byte(registerPrefix), name...)
}
