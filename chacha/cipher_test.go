package chacha_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/pmuens/chacha-core/chacha12"
	"github.com/pmuens/chacha-core/chacha20"
	"github.com/pmuens/chacha-core/chacha8"
	"github.com/pmuens/chacha-core/ietf"
	"github.com/pmuens/chacha-core/xchacha20"
)

// cipherFactory builds a fresh cipher from a fixed, variant-sized key and
// nonce, so the property tests below can run once per variant.
type cipherFactory struct {
	name string
	new  func() interface {
		Seek(uint64)
		ApplyKeystream([]byte)
		CurrentPos() uint64
	}
}

func narrowKeyNonce(seed byte) ([32]byte, [8]byte) {
	var key [32]byte
	var nonce [8]byte
	for i := range key {
		key[i] = seed + byte(i)
	}
	for i := range nonce {
		nonce[i] = seed ^ byte(i*7+1)
	}
	return key, nonce
}

func wideKeyNonce(seed byte) ([32]byte, [12]byte) {
	var key [32]byte
	var nonce [12]byte
	for i := range key {
		key[i] = seed + byte(i)
	}
	for i := range nonce {
		nonce[i] = seed ^ byte(i*3+1)
	}
	return key, nonce
}

func xKeyNonce(seed byte) ([32]byte, [24]byte) {
	var key [32]byte
	var nonce [24]byte
	for i := range key {
		key[i] = seed + byte(i)
	}
	for i := range nonce {
		nonce[i] = seed ^ byte(i*5+1)
	}
	return key, nonce
}

func factories() []cipherFactory {
	return []cipherFactory{
		{name: "chacha20", new: func() interface {
			Seek(uint64)
			ApplyKeystream([]byte)
			CurrentPos() uint64
		} {
			key, nonce := narrowKeyNonce(1)
			return chacha20.New(key, nonce)
		}},
		{name: "chacha12", new: func() interface {
			Seek(uint64)
			ApplyKeystream([]byte)
			CurrentPos() uint64
		} {
			key, nonce := narrowKeyNonce(2)
			return chacha12.New(key, nonce)
		}},
		{name: "chacha8", new: func() interface {
			Seek(uint64)
			ApplyKeystream([]byte)
			CurrentPos() uint64
		} {
			key, nonce := narrowKeyNonce(3)
			return chacha8.New(key, nonce)
		}},
		{name: "ietf", new: func() interface {
			Seek(uint64)
			ApplyKeystream([]byte)
			CurrentPos() uint64
		} {
			key, nonce := wideKeyNonce(4)
			return ietf.New(key, nonce)
		}},
		{name: "xchacha20", new: func() interface {
			Seek(uint64)
			ApplyKeystream([]byte)
			CurrentPos() uint64
		} {
			key, nonce := xKeyNonce(5)
			return xchacha20.New(key, nonce)
		}},
	}
}

// TestChunkingInvarianceAllVariants checks chunking invariance across every public variant.
func TestChunkingInvarianceAllVariants(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		f := f
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			oneShot := make([]byte, 1000)
			f.new().ApplyKeystream(oneShot)

			chunked := make([]byte, 1000)
			c := f.new()
			offset := 0
			for _, n := range []int{128, 0, 172, 233, 467} {
				c.ApplyKeystream(chunked[offset : offset+n])
				offset += n
			}

			if !bytes.Equal(oneShot, chunked) {
				t.Errorf("%s: chunking invariance violated", f.name)
			}
		})
	}
}

// TestSeekIdempotenceAllVariants checks seek idempotence across every public variant.
func TestSeekIdempotenceAllVariants(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		f := f
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			const x, n = 311, 150

			seeked := make([]byte, n)
			c1 := f.new()
			c1.Seek(x)
			c1.ApplyKeystream(seeked)

			full := make([]byte, x+n)
			c2 := f.new()
			c2.ApplyKeystream(full)

			if !bytes.Equal(seeked, full[x:]) {
				t.Errorf("%s: seek(x);apply(n) != apply(x+n)[x:]", f.name)
			}
		})
	}
}

// TestXORInvolutionAllVariants checks XOR involution across every public variant.
func TestXORInvolutionAllVariants(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		f := f
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			plaintext := bytes.Repeat([]byte("lorem ipsum dolor sit amet "), 20)
			data := append([]byte(nil), plaintext...)

			f.new().ApplyKeystream(data)
			f.new().ApplyKeystream(data)

			if !bytes.Equal(data, plaintext) {
				t.Errorf("%s: encrypt-then-encrypt did not return the original plaintext", f.name)
			}
		})
	}
}

// TestCurrentPosTracksConsumedBytes exercises CurrentPos after a run of
// ApplyKeystream calls of varying size.
func TestCurrentPosTracksConsumedBytes(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		f := f
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			c := f.new()
			total := 0
			rng := rand.New(rand.NewSource(42))
			for i := 0; i < 10; i++ {
				n := rng.Intn(200)
				buf := make([]byte, n)
				c.ApplyKeystream(buf)
				total += n
				if got := c.CurrentPos(); got != uint64(total) {
					t.Fatalf("%s: after %d bytes consumed, want CurrentPos() == %d, got %d", f.name, total, total, got)
				}
			}
		})
	}
}

// TestCloneIsIndependent checks that Clone produces a cipher whose further
// consumption does not affect the original.
func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	key, nonce := narrowKeyNonce(9)
	c := chacha20.New(key, nonce)

	warm := make([]byte, 128)
	c.ApplyKeystream(warm)

	clone := c.Clone()

	fromClone := make([]byte, 64)
	clone.ApplyKeystream(fromClone)

	fromOriginal := make([]byte, 64)
	c.ApplyKeystream(fromOriginal)

	if !bytes.Equal(fromClone, fromOriginal) {
		t.Errorf("clone diverged from the continuation of the original stream")
	}

	// Consuming further from the clone must not move the original's
	// position.
	moreFromClone := make([]byte, 32)
	clone.ApplyKeystream(moreFromClone)
	if c.CurrentPos() != 192 {
		t.Errorf("original cipher's position moved after consuming from its clone: got %d", c.CurrentPos())
	}
}

// TestIETFSeekPastHorizonPanics checks the InvalidSeek contract for the
// IETF variant: seeking one byte past the 2^32-block horizon panics.
func TestIETFSeekPastHorizonPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("want panic seeking past the IETF horizon")
		}
	}()

	key, nonce := wideKeyNonce(6)
	c := ietf.New(key, nonce)
	c.Seek((uint64(1)<<32)*64 + 1)
}
