package chacha20_test

import (
	"bytes"
	"testing"

	"github.com/pmuens/chacha-core/chacha20"
)

func TestNewProducesKeystream(t *testing.T) {
	t.Parallel()

	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	for i := range key {
		key[i] = byte(i)
	}

	c := chacha20.New(key, nonce)
	out := make([]byte, 64)
	c.ApplyKeystream(out)

	if bytes.Equal(out, make([]byte, 64)) {
		t.Error("keystream must not be all zero")
	}
}

func TestDifferentNoncesProduceDifferentKeystreams(t *testing.T) {
	t.Parallel()

	var key [chacha20.KeySize]byte
	nonceA := [chacha20.NonceSize]byte{0: 1}
	nonceB := [chacha20.NonceSize]byte{0: 2}

	a := make([]byte, 64)
	chacha20.New(key, nonceA).ApplyKeystream(a)

	b := make([]byte, 64)
	chacha20.New(key, nonceB).ApplyKeystream(b)

	if bytes.Equal(a, b) {
		t.Error("distinct nonces must not produce the same keystream")
	}
}
