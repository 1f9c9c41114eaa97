// Package chacha20 implements the original Bernstein ChaCha20 stream cipher:
// a 256-bit key, an 8-byte nonce, a 64-bit block counter, and 20 rounds (10
// double rounds). For the IETF 96-bit-nonce variant (RFC 7539/8439) see
// package ietf; for the extended-nonce variant see package xchacha20.
package chacha20

import "github.com/pmuens/chacha-core/chacha"

// KeySize is the size, in bytes, of a ChaCha20 key.
const KeySize = 32

// NonceSize is the size, in bytes, of a ChaCha20 nonce.
const NonceSize = 8

// Rounds is the number of single rounds ChaCha20 runs per block.
const Rounds = 20

// Cipher is a stateful instance of the ChaCha20 stream cipher.
type Cipher struct {
	*chacha.ChaChaAny
}

// New creates a new ChaCha20 cipher from a 256-bit key and an 8-byte nonce.
// The nonce must never repeat for a given key.
func New(key [KeySize]byte, nonce [NonceSize]byte) *Cipher {
	return &Cipher{chacha.NewNarrowNonce(key, nonce, Rounds)}
}

// Clone returns an independent copy of c with identical state.
func (c *Cipher) Clone() *Cipher {
	return &Cipher{c.ChaChaAny.Clone()}
}
