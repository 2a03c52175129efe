package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMsgpack(t *testing.T) {
	assert := assert.New(t)

	for _, s := range []string{"-1/2", "0", "7", "-912016490186296920119201192141970416029/1824032980372593840238402384283940832059"} {
		r := RequireRationalFromString(s)
		var u Rational
		err := MsgpackUnmarshal(MsgpackMarshalPanic(r), &u)
		assert.Nil(err)
		assert.True(r.Equal(u), s)
		assert.Equal(s, u.String())
	}

	for _, s := range []string{"0", "1", "-258", "20325830850349869048604856908"} {
		i := RequireIntegerFromString(s)
		var u Integer
		err := MsgpackUnmarshal(MsgpackMarshalPanic(i), &u)
		assert.Nil(err)
		assert.Equal(s, u.String())
	}

	type register struct {
		Name  string
		Value Rational
		Count Integer
	}
	reg := register{Name: "x", Value: RequireRational(5, -7), Count: NewInteger(3)}
	var out register
	err := MsgpackUnmarshal(MsgpackMarshalPanic(reg), &out)
	assert.Nil(err)
	assert.Equal("x", out.Name)
	assert.Equal("-5/7", out.Value.String())
	assert.Equal("3", out.Count.String())

	out = register{}
	data := CompressMsgpackMarshalPanic(reg)
	assert.Equal(CompressionVersionLatest, data[:4])
	err = DecompressMsgpackUnmarshal(data, &out)
	assert.Nil(err)
	assert.Equal("-5/7", out.Value.String())

	out = register{}
	err = DecompressMsgpackUnmarshal(MsgpackMarshalPanic(reg), &out)
	assert.Nil(err)
	assert.Equal("-5/7", out.Value.String())

	err = MsgpackUnmarshal([]byte{0xc1}, &out)
	assert.NotNil(err)
}

func TestMsgpackPayload(t *testing.T) {
	assert := assert.New(t)

	var r Rational
	err := r.UnmarshalMsgpack([]byte{5, 0})
	assert.ErrorIs(err, ErrInvalidFormat)
	err = r.UnmarshalMsgpack(nil)
	assert.ErrorIs(err, ErrInvalidFormat)
	err = r.UnmarshalMsgpack([]byte{2, 0, 1})
	assert.ErrorIs(err, ErrDivisionByZero)
	err = r.UnmarshalMsgpack([]byte{2, 3, 1, 0, 2})
	assert.ErrorIs(err, ErrInvalidFormat)

	err = r.UnmarshalMsgpack([]byte{2, 1, 6, 0, 8})
	assert.Nil(err)
	assert.Equal("-3/4", r.String())

	assert.Nil(Decompress([]byte("not compressed")))
	assert.Nil(Decompress([]byte{0, 0, 0, 0, 1, 2, 3, 4}))
	assert.Equal([]byte("1/2"), Decompress(Compress([]byte("1/2"))))
}
