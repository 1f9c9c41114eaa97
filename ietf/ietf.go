// Package ietf implements the IETF 96-bit-nonce variant of ChaCha20, as
// specified in RFC 7539 / RFC 8439: a 256-bit key, a 12-byte nonce, a
// 32-bit block counter, and 20 rounds. Unlike package chacha20's original
// Bernstein layout, this variant has a strict horizon at 2^32 blocks
// (2^32 * 64 = 256 GiB of keystream) and panics on an out-of-range Seek.
package ietf

import "github.com/pmuens/chacha-core/chacha"

// KeySize is the size, in bytes, of an IETF ChaCha20 key.
const KeySize = 32

// NonceSize is the size, in bytes, of an IETF ChaCha20 nonce.
const NonceSize = 12

// Rounds is the number of single rounds this cipher runs per block.
const Rounds = 20

// Cipher is a stateful instance of the IETF ChaCha20 stream cipher.
type Cipher struct {
	*chacha.ChaChaAny
}

// New creates a new IETF ChaCha20 cipher from a 256-bit key and a 12-byte
// nonce.
func New(key [KeySize]byte, nonce [NonceSize]byte) *Cipher {
	return &Cipher{chacha.NewIETF(key, nonce, Rounds)}
}

// Clone returns an independent copy of c with identical state.
func (c *Cipher) Clone() *Cipher {
	return &Cipher{c.ChaChaAny.Clone()}
}
