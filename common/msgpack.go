package common

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v4"
)

func init() {
	msgpack.RegisterExt(0, (*Integer)(nil))
	msgpack.RegisterExt(1, (*Rational)(nil))
}

func MsgpackMarshalPanic(val interface{}) []byte {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseCompactEncoding(true).SortMapKeys(true)
	err := enc.Encode(val)
	if err != nil {
		panic(fmt.Errorf("MsgpackMarshalPanic: %#v %s", val, err.Error()))
	}
	return buf.Bytes()
}

func MsgpackUnmarshal(data []byte, val interface{}) error {
	err := msgpack.Unmarshal(data, val)
	if err == nil {
		return err
	}
	return fmt.Errorf("MsgpackUnmarshal: %s %s", hex.EncodeToString(data), err.Error())
}

func CompressMsgpackMarshalPanic(val interface{}) []byte {
	return Compress(MsgpackMarshalPanic(val))
}

// DecompressMsgpackUnmarshal also accepts plain msgpack without the
// compression header.
func DecompressMsgpackUnmarshal(data []byte, val interface{}) error {
	if payload := Decompress(data); payload != nil {
		return MsgpackUnmarshal(payload, val)
	}
	return MsgpackUnmarshal(data, val)
}
