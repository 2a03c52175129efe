package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Hash is a SHA3-256 digest, rendered as lowercase hex.
type Hash [32]byte

func NewHash(data []byte) Hash {
	return sha3.Sum256(data)
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, len(h)*2+2)
	b = append(b, '"')
	b = append(b, h.String()...)
	return append(b, '"'), nil
}
