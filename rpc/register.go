package rpc

import (
	"errors"
	"fmt"

	"github.com/MixinNetwork/rational/calc"
	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/storage"
)

func getRegister(store storage.Store, params []interface{}) (*storage.Register, error) {
	if store == nil {
		return nil, errRegistersUnavailable
	}
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	name := fmt.Sprint(params[0])
	r, found, err := store.ReadRegister(name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", calc.ErrRegisterEmpty, name)
	}
	return &storage.Register{Name: name, Value: r}, nil
}

func setRegister(store storage.Store, params []interface{}) (*storage.Register, error) {
	if store == nil {
		return nil, errRegistersUnavailable
	}
	if len(params) != 2 {
		return nil, errors.New("invalid params count")
	}
	name := fmt.Sprint(params[0])
	r, err := paramRational(params, 1)
	if err != nil {
		return nil, err
	}
	err = store.WriteRegister(name, r)
	if err != nil {
		return nil, err
	}
	return &storage.Register{Name: name, Value: r}, nil
}

func removeRegister(store storage.Store, params []interface{}) (map[string]interface{}, error) {
	if store == nil {
		return nil, errRegistersUnavailable
	}
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	name := fmt.Sprint(params[0])
	err := store.RemoveRegister(name)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"name": name}, nil
}

func listRegisters(store storage.Store) ([]*storage.Register, error) {
	if store == nil {
		return nil, errRegistersUnavailable
	}
	return store.ListRegisters()
}

func getInfo(custom *config.Custom, store storage.Store) (map[string]interface{}, error) {
	info := map[string]interface{}{
		"version":   config.BuildVersion,
		"precision": custom.Calculator.Precision,
	}
	if store == nil {
		return info, nil
	}
	registers, err := store.ListRegisters()
	if err != nil {
		return info, err
	}
	info["registers"] = len(registers)
	return info, nil
}
