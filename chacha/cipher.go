package chacha

// ChaChaAny is the cipher front-end: an owned Buffer plus the round count
// baked in at construction. It is statically parameterized (by the caller's
// choice of constructor) by nonce size, round count, and whether the
// extended (XChaCha) nonce path was used. Instances are single-owner;
// Clone produces an independent copy with identical state.
type ChaChaAny struct {
	buf    Buffer
	rounds int
}

// NewNarrowNonce constructs a ChaChaAny for the 64-bit-counter, 8-byte-nonce
// layout used by "plain" ChaCha8/12/20 (as opposed to the IETF 96-bit-nonce
// variant). rounds is the number of double rounds' worth of *single* rounds
// run per block (i.e. 8, 12 or 20).
func NewNarrowNonce(key [32]byte, nonce [8]byte, rounds int) *ChaChaAny {
	state := newState64(key, nonce)
	return &ChaChaAny{buf: newBuffer(state), rounds: rounds}
}

// NewIETF constructs a ChaChaAny for the IETF 96-bit-nonce, 32-bit-counter
// layout (RFC 7539 / RFC 8439).
func NewIETF(key [32]byte, nonce [12]byte, rounds int) *ChaChaAny {
	state := newState32(key, nonce)
	return &ChaChaAny{buf: newBuffer(state), rounds: rounds}
}

// NewExtended constructs a ChaChaAny for the XChaCha (extended, 24-byte
// nonce) layout: it runs HChaCha once to derive a subkey, then continues as
// a 64-bit-counter cipher keyed on that subkey with the nonce's last 8
// bytes.
func NewExtended(key [32]byte, nonce [24]byte, rounds int) *ChaChaAny {
	var nonce16 [16]byte
	copy(nonce16[:], nonce[0:16])
	subB, subC := deriveSubkey(key, nonce16, rounds)

	var nonceTail [8]byte
	copy(nonceTail[:], nonce[16:24])

	state := newStateExtended(subB, subC, nonceTail)
	return &ChaChaAny{buf: Buffer{state: state, blocksLeft: 0, fresh: true}, rounds: rounds}
}

// Seek repositions the cipher to absolute byte offset ct. It panics
// (InvalidSeek) only for the IETF variant, and only when ct is past the
// 2^32-block horizon or lands unaligned exactly on it.
func (c *ChaChaAny) Seek(ct uint64) {
	c.buf.seek(ct)
}

// TryApplyKeystream XORs the next len(data) keystream bytes into data in
// place. It returns ErrHorizonExceeded, leaving data and the cipher's
// position unchanged, if the request would cross the counter horizon.
func (c *ChaChaAny) TryApplyKeystream(data []byte) error {
	return c.buf.tryApplyKeystream(data, c.rounds)
}

// ApplyKeystream is a convenience wrapper around TryApplyKeystream that
// panics on ErrHorizonExceeded.
func (c *ChaChaAny) ApplyKeystream(data []byte) {
	if err := c.TryApplyKeystream(data); err != nil {
		panic(err)
	}
}

// CurrentPos reports the cipher's absolute byte offset, computed as
// counter*64 - max(have, 0).
func (c *ChaChaAny) CurrentPos() uint64 {
	return c.buf.currentPos()
}

// Clone returns an independent ChaChaAny with identical state; mutating the
// clone never affects the original and vice versa.
func (c *ChaChaAny) Clone() *ChaChaAny {
	return &ChaChaAny{
		buf: Buffer{
			state:      c.buf.state.clone(),
			out:        c.buf.out,
			have:       c.buf.have,
			blocksLeft: c.buf.blocksLeft,
			fresh:      c.buf.fresh,
		},
		rounds: c.rounds,
	}
}
