package chacha12_test

import (
	"bytes"
	"testing"

	"github.com/pmuens/chacha-core/chacha12"
	"github.com/pmuens/chacha-core/chacha20"
)

func TestNewProducesKeystream(t *testing.T) {
	t.Parallel()

	var key [chacha12.KeySize]byte
	var nonce [chacha12.NonceSize]byte

	c := chacha12.New(key, nonce)
	out := make([]byte, 64)
	c.ApplyKeystream(out)

	if bytes.Equal(out, make([]byte, 64)) {
		t.Error("keystream must not be all zero")
	}
}

// TestDiffersFromChaCha20 checks the reduced round count actually changes
// the output for the same key and nonce.
func TestDiffersFromChaCha20(t *testing.T) {
	t.Parallel()

	var key [32]byte
	var nonce [8]byte
	for i := range key {
		key[i] = byte(i)
	}

	twelve := make([]byte, 64)
	chacha12.New(key, nonce).ApplyKeystream(twelve)

	twenty := make([]byte, 64)
	chacha20.New(key, nonce).ApplyKeystream(twenty)

	if bytes.Equal(twelve, twenty) {
		t.Error("ChaCha12 and ChaCha20 must diverge after the 12th round")
	}
}
