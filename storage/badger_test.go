package storage

import (
	"sync"
	"testing"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/config"
	"github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/require"
)

func TestBadger(t *testing.T) {
	require := require.New(t)
	custom, err := config.Initialize("../config/config.example.toml")
	require.Nil(err)

	root := t.TempDir()
	store, err := NewBadgerStore(custom, root)
	require.Nil(err)
	require.NotNil(store)
	defer store.Close()

	_, found, err := store.ReadRegister("x")
	require.Nil(err)
	require.False(found)

	err = store.WriteRegister("x", common.RequireRational(-2, 4))
	require.Nil(err)
	err = store.WriteRegister("big", common.RequireRationalFromString("20325830850349869048604856908/9192901948302584358938698"))
	require.Nil(err)
	err = store.WriteRegister("zero", common.Rational{})
	require.Nil(err)

	r, found, err := store.ReadRegister("x")
	require.Nil(err)
	require.True(found)
	require.Equal("-1/2", r.String())

	store.cache.Reset()
	r, found, err = store.ReadRegister("x")
	require.Nil(err)
	require.True(found)
	require.Equal("-1/2", r.String())

	r, found, err = store.ReadRegister("zero")
	require.Nil(err)
	require.True(found)
	require.True(r.IsZero())

	err = store.WriteRegister("x", common.RequireRational(7, 3))
	require.Nil(err)
	r, _, err = store.ReadRegister("x")
	require.Nil(err)
	require.Equal("7/3", r.String())

	registers, err := store.ListRegisters()
	require.Nil(err)
	require.Len(registers, 3)
	require.Equal("big", registers[0].Name)
	require.Equal("10162915425174934524302428454/4596450974151292179469349", registers[0].Value.String())
	require.Equal("x", registers[1].Name)
	require.Equal("zero", registers[2].Name)

	err = store.RemoveRegister("x")
	require.Nil(err)
	_, found, err = store.ReadRegister("x")
	require.Nil(err)
	require.False(found)
	err = store.RemoveRegister("missing")
	require.Nil(err)

	for _, name := range []string{"", "a b", string(make([]byte, 257))} {
		err = store.WriteRegister(name, common.OneRat)
		require.NotNil(err)
		_, _, err = store.ReadRegister(name)
		require.NotNil(err)
	}

	err = store.registersDB.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte("key-not-found"))
	})
	require.Nil(err)

	err = store.Close()
	require.Nil(err)
	err = store.Close()
	require.Nil(err)

	store, err = NewBadgerStore(nil, root)
	require.Nil(err)
	defer store.Close()
	r, found, err = store.ReadRegister("big")
	require.Nil(err)
	require.True(found)
	require.Equal("10162915425174934524302428454/4596450974151292179469349", r.String())
	registers, err = store.ListRegisters()
	require.Nil(err)
	require.Len(registers, 2)
}

func TestBadgerConcurrentReadWrite(t *testing.T) {
	require := require.New(t)

	store, err := NewBadgerStore(nil, t.TempDir())
	require.Nil(err)
	defer store.Close()

	const rounds = 200
	key := registerKey("counter")
	err = store.WriteRegister("counter", common.Rational{})
	require.Nil(err)

	var wg sync.WaitGroup
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				store.cache.Del(key)
				_, _, err := store.ReadRegister("counter")
				if err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}

	for i := int64(1); i <= rounds; i++ {
		err := store.WriteRegister("counter", common.RequireRational(i, 1))
		require.Nil(err)
	}
	close(done)
	wg.Wait()

	r, found, err := store.ReadRegister("counter")
	require.Nil(err)
	require.True(found)
	require.Equal("200", r.String())

	registers, err := store.ListRegisters()
	require.Nil(err)
	require.Len(registers, 1)
	require.Equal(r.String(), registers[0].Value.String())
}
