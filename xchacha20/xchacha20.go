// Package xchacha20 implements XChaCha20, as specified in
// draft-irtf-cfrg-xchacha: a 256-bit key and a 24-byte extended nonce. The
// first 16 bytes of the nonce and the key are run through a single HChaCha
// permutation to derive a subkey; the remaining 8 bytes become the inner
// cipher's nonce. Like package chacha20, this uses the 64-bit
// counter layout, so its horizon is 2^64 blocks.
package xchacha20

import "github.com/pmuens/chacha-core/chacha"

// KeySize is the size, in bytes, of an XChaCha20 key.
const KeySize = 32

// NonceSize is the size, in bytes, of an XChaCha20 nonce.
const NonceSize = 24

// Rounds is the number of single rounds XChaCha20 runs per block, including
// the HChaCha subkey-derivation permutation.
const Rounds = 20

// Cipher is a stateful instance of the XChaCha20 stream cipher.
type Cipher struct {
	*chacha.ChaChaAny
}

// New creates a new XChaCha20 cipher from a 256-bit key and a 24-byte
// extended nonce.
func New(key [KeySize]byte, nonce [NonceSize]byte) *Cipher {
	return &Cipher{chacha.NewExtended(key, nonce, Rounds)}
}

// Clone returns an independent copy of c with identical state.
func (c *Cipher) Clone() *Cipher {
	return &Cipher{c.ChaChaAny.Clone()}
}
