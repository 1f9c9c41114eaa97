// Package chacha8 implements ChaCha8: the ChaCha20 cipher reduced to 8
// rounds (4 double rounds), with the original 8-byte-nonce, 64-bit-counter
// layout.
package chacha8

import "github.com/pmuens/chacha-core/chacha"

// KeySize is the size, in bytes, of a ChaCha8 key.
const KeySize = 32

// NonceSize is the size, in bytes, of a ChaCha8 nonce.
const NonceSize = 8

// Rounds is the number of single rounds ChaCha8 runs per block.
const Rounds = 8

// Cipher is a stateful instance of the ChaCha8 stream cipher.
type Cipher struct {
	*chacha.ChaChaAny
}

// New creates a new ChaCha8 cipher from a 256-bit key and an 8-byte nonce.
func New(key [KeySize]byte, nonce [NonceSize]byte) *Cipher {
	return &Cipher{chacha.NewNarrowNonce(key, nonce, Rounds)}
}

// Clone returns an independent copy of c with identical state.
func (c *Cipher) Clone() *Cipher {
	return &Cipher{c.ChaChaAny.Clone()}
}
