package crypto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	assert := assert.New(t)

	h := NewHash([]byte(""))
	assert.Equal("a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a", h.String())
	assert.NotEqual(Hash{}, h)

	a, b := NewHash([]byte("1/2")), NewHash([]byte("1/2"))
	assert.Equal(a, b)
	assert.NotEqual(a, NewHash([]byte("2/4")))

	j, err := json.Marshal(map[string]Hash{"hash": a})
	assert.Nil(err)
	assert.Equal(`{"hash":"`+a.String()+`"}`, string(j))
}
