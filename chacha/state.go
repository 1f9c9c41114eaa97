package chacha

import "encoding/binary"

// constRow is "expand 32-byte k" split into four little-endian words; the
// fixed first row of every ChaCha block. It is never stored in State — it
// is re-broadcast on every refill.
var constRow = V4{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// counterWidth selects how the d row's counter/nonce split is interpreted
// and, with it, the horizon semantics.
type counterWidth int

const (
	// counter64 is the 64-bit-counter, 8-byte-nonce layout (ChaCha8/12/20
	// "original" variant, and the post-HChaCha XChaCha20 layout).
	counter64 counterWidth = iota
	// counter32 is the IETF 32-bit-counter, 12-byte-nonce layout.
	counter32
)

// State is the mutable ChaCha cipher state: two key rows (b, c) and one
// counter-plus-nonce row (d). The constant row a is not stored here.
type State struct {
	b, c V4
	d    V4
	cw   counterWidth
}

// newState64 builds a State for the 64-bit-counter, 8-byte-nonce layout:
// d = [ctr_lo, ctr_hi, nonce0, nonce1].
func newState64(key [32]byte, nonce [8]byte) State {
	return State{
		b: wordsLE(key[0:16]),
		c: wordsLE(key[16:32]),
		d: V4{0, 0, binary.LittleEndian.Uint32(nonce[0:4]), binary.LittleEndian.Uint32(nonce[4:8])},
		cw: counter64,
	}
}

// newState32 builds a State for the IETF 32-bit-counter, 12-byte-nonce
// layout: d = [ctr, nonce0, nonce1, nonce2].
func newState32(key [32]byte, nonce [12]byte) State {
	return State{
		b: wordsLE(key[0:16]),
		c: wordsLE(key[16:32]),
		d: V4{
			0,
			binary.LittleEndian.Uint32(nonce[0:4]),
			binary.LittleEndian.Uint32(nonce[4:8]),
			binary.LittleEndian.Uint32(nonce[8:12]),
		},
		cw: counter32,
	}
}

// newStateExtended builds the post-HChaCha State for XChaCha20: b, c are the
// derived subkey rows, d = [0, 0, nonce16..20, nonce20..24].
func newStateExtended(subB, subC V4, nonceTail [8]byte) State {
	return State{
		b:  subB,
		c:  subC,
		d:  V4{0, 0, binary.LittleEndian.Uint32(nonceTail[0:4]), binary.LittleEndian.Uint32(nonceTail[4:8])},
		cw: counter64,
	}
}

// wordsLE reads four consecutive little-endian uint32s from a 16-byte slice.
func wordsLE(b []byte) V4 {
	_ = b[15]
	return V4{
		binary.LittleEndian.Uint32(b[0:4]),
		binary.LittleEndian.Uint32(b[4:8]),
		binary.LittleEndian.Uint32(b[8:12]),
		binary.LittleEndian.Uint32(b[12:16]),
	}
}

// counter64Value reads d's 64-bit block counter (lanes 0, 1, low word first).
func (s *State) counter64Value() uint64 {
	return uint64(s.d[0]) | uint64(s.d[1])<<32
}

// setCounter64 writes a 64-bit block counter into d's lanes 0 and 1.
func (s *State) setCounter64(ctr uint64) {
	s.d[0] = uint32(ctr)
	s.d[1] = uint32(ctr >> 32)
}

// addCounter64 adds n to the 64-bit counter in lanes 0/1, wrapping on
// overflow (the 64-bit-counter variants accept wraparound; the horizon is
// enforced by Buffer.blocksLeft, not by this arithmetic).
func (s *State) addCounter64(n uint64) {
	s.setCounter64(s.counter64Value() + n)
}

// counter32Value reads d's 32-bit block counter (lane 0 only; lanes 1..3 are
// nonce and must not be touched).
func (s *State) counter32Value() uint32 {
	return s.d[0]
}

// setCounter32 writes the 32-bit block counter into d's lane 0 only.
func (s *State) setCounter32(ctr uint32) {
	s.d[0] = ctr
}

// addCounter32 adds n to the 32-bit counter in lane 0 only, wrapping on
// overflow. The horizon check in Buffer keeps every generated block below
// index 2^32; the only wrap is the increment after block 2^32-1, which
// leaves lane 0 at 0 with no further block producible.
func (s *State) addCounter32(n uint32) {
	s.d[0] += n
}

// incrementBlocks advances the counter by n blocks, dispatching on the
// State's counter width.
func (s *State) incrementBlocks(n uint64) {
	if s.cw == counter32 {
		s.addCounter32(uint32(n))
		return
	}
	s.addCounter64(n)
}

// clone returns a deep copy of s. States are small value types, so this is
// just a Go value copy, but it is named explicitly to mirror ChaChaAny's
// documented clone-is-independent-instance contract.
func (s State) clone() State {
	return s
}
