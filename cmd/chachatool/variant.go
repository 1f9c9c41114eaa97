package main

import (
	"fmt"

	"github.com/pmuens/chacha-core/chacha"
)

// variantSpec describes one of chachatool's five supported cipher
// variants: key/nonce sizes and how to build a chacha.ChaChaAny from them.
type variantSpec struct {
	KeySize   int
	NonceSize int
	Rounds    int
	build     func(key, nonce []byte) *chacha.ChaChaAny
}

var variants = map[string]variantSpec{
	"chacha20": {
		KeySize: 32, NonceSize: 8, Rounds: 20,
		build: func(key, nonce []byte) *chacha.ChaChaAny {
			var k [32]byte
			var n [8]byte
			copy(k[:], key)
			copy(n[:], nonce)
			return chacha.NewNarrowNonce(k, n, 20)
		},
	},
	"chacha12": {
		KeySize: 32, NonceSize: 8, Rounds: 12,
		build: func(key, nonce []byte) *chacha.ChaChaAny {
			var k [32]byte
			var n [8]byte
			copy(k[:], key)
			copy(n[:], nonce)
			return chacha.NewNarrowNonce(k, n, 12)
		},
	},
	"chacha8": {
		KeySize: 32, NonceSize: 8, Rounds: 8,
		build: func(key, nonce []byte) *chacha.ChaChaAny {
			var k [32]byte
			var n [8]byte
			copy(k[:], key)
			copy(n[:], nonce)
			return chacha.NewNarrowNonce(k, n, 8)
		},
	},
	"ietf": {
		KeySize: 32, NonceSize: 12, Rounds: 20,
		build: func(key, nonce []byte) *chacha.ChaChaAny {
			var k [32]byte
			var n [12]byte
			copy(k[:], key)
			copy(n[:], nonce)
			return chacha.NewIETF(k, n, 20)
		},
	},
	"xchacha20": {
		KeySize: 32, NonceSize: 24, Rounds: 20,
		build: func(key, nonce []byte) *chacha.ChaChaAny {
			var k [32]byte
			var n [24]byte
			copy(k[:], key)
			copy(n[:], nonce)
			return chacha.NewExtended(k, n, 20)
		},
	},
}

// newCipher looks up name and builds a cipher from key/nonce, which must
// already be exactly the variant's KeySize/NonceSize.
func newCipher(name string, key, nonce []byte) (*chacha.ChaChaAny, error) {
	spec, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown variant %q (want one of chacha20, chacha12, chacha8, ietf, xchacha20)", name)
	}
	if len(key) != spec.KeySize {
		return nil, fmt.Errorf("variant %s wants a %d-byte key, got %d", name, spec.KeySize, len(key))
	}
	if len(nonce) != spec.NonceSize {
		return nil, fmt.Errorf("variant %s wants a %d-byte nonce, got %d", name, spec.NonceSize, len(nonce))
	}
	return spec.build(key, nonce), nil
}
