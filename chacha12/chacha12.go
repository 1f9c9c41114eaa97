// Package chacha12 implements ChaCha12: the ChaCha20 cipher reduced to 12
// rounds (6 double rounds), with the original 8-byte-nonce, 64-bit-counter
// layout.
package chacha12

import "github.com/pmuens/chacha-core/chacha"

// KeySize is the size, in bytes, of a ChaCha12 key.
const KeySize = 32

// NonceSize is the size, in bytes, of a ChaCha12 nonce.
const NonceSize = 8

// Rounds is the number of single rounds ChaCha12 runs per block.
const Rounds = 12

// Cipher is a stateful instance of the ChaCha12 stream cipher.
type Cipher struct {
	*chacha.ChaChaAny
}

// New creates a new ChaCha12 cipher from a 256-bit key and an 8-byte nonce.
func New(key [KeySize]byte, nonce [NonceSize]byte) *Cipher {
	return &Cipher{chacha.NewNarrowNonce(key, nonce, Rounds)}
}

// Clone returns an independent copy of c with identical state.
func (c *Cipher) Clone() *Cipher {
	return &Cipher{c.ChaChaAny.Clone()}
}
