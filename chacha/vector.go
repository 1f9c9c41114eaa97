// Package chacha implements the core ChaCha8/12/20 engine: the quarter-round
// permutation, block-counter arithmetic, narrow (1-block) and wide (4-block)
// keystream generation, and the byte-granular keystream buffer that bridges
// the two. Variant-specific constructors live in the chacha20, chacha12,
// chacha8, ietf and xchacha20 packages; this package only knows about rounds,
// nonce shape (via the counter/nonce split baked into a State) and the
// resulting byte stream.
package chacha

import "math/bits"

// V4 holds one ChaCha row: four 32-bit words, lane indices 0..3.
//
// Four V4 values (a, b, c, d) form one logical 4x4 ChaCha state. a is never
// stored — it is the fixed constant row and is re-broadcast on every refill.
type V4 [4]uint32

// splatV4 broadcasts a single word across all four lanes.
func splatV4(w uint32) V4 {
	return V4{w, w, w, w}
}

// add performs lane-wise addition modulo 2^32.
func (v V4) add(o V4) V4 {
	return V4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// xor performs lane-wise XOR.
func (v V4) xor(o V4) V4 {
	return V4{v[0] ^ o[0], v[1] ^ o[1], v[2] ^ o[2], v[3] ^ o[3]}
}

// rotl rotates every lane left by n bits.
func (v V4) rotl(n uint32) V4 {
	return V4{
		bits.RotateLeft32(v[0], int(n)),
		bits.RotateLeft32(v[1], int(n)),
		bits.RotateLeft32(v[2], int(n)),
		bits.RotateLeft32(v[3], int(n)),
	}
}

// shiftLanes rotates lane *positions* left by n (0..3); this is the
// "diagonalize" permutation, not a bit rotation.
func (v V4) shiftLanes(n int) V4 {
	n &= 3
	return V4{v[n], v[(n+1)&3], v[(n+2)&3], v[(n+3)&3]}
}

// storeLE copies v's four words into dst (len(dst) >= 4). The conversion
// to canonical little-endian keystream bytes happens afterwards, in
// blockview.PutWordsLE.
func (v V4) storeLE(dst []uint32) {
	_ = dst[3]
	dst[0] = v[0]
	dst[1] = v[1]
	dst[2] = v[2]
	dst[3] = v[3]
}

// V4x4 holds the same logical ChaCha row for four blocks processed in
// parallel: V4x4[i] is the row for block i. The word-permutation used by
// diagonalize acts within each V4x4[i] independently — never across i.
type V4x4 [4]V4

// splatV4x4 broadcasts a single per-block row (shared key/constant material)
// across all four parallel blocks.
func splatV4x4(v V4) V4x4 {
	return V4x4{v, v, v, v}
}

// fromRows builds a V4x4 from four distinct per-block rows, used for the
// counter-plus-nonce row where each block has a different counter.
func fromRows(d0, d1, d2, d3 V4) V4x4 {
	return V4x4{d0, d1, d2, d3}
}

func (v V4x4) add(o V4x4) V4x4 {
	return V4x4{v[0].add(o[0]), v[1].add(o[1]), v[2].add(o[2]), v[3].add(o[3])}
}

func (v V4x4) xor(o V4x4) V4x4 {
	return V4x4{v[0].xor(o[0]), v[1].xor(o[1]), v[2].xor(o[2]), v[3].xor(o[3])}
}

func (v V4x4) rotl(n uint32) V4x4 {
	return V4x4{v[0].rotl(n), v[1].rotl(n), v[2].rotl(n), v[3].rotl(n)}
}

// shiftLanes applies the diagonalize permutation to each block's row
// independently — the inner dimension, never the outer (per-block) one.
func (v V4x4) shiftLanes(n int) V4x4 {
	return V4x4{v[0].shiftLanes(n), v[1].shiftLanes(n), v[2].shiftLanes(n), v[3].shiftLanes(n)}
}

// split returns the four per-block rows that make up v.
func (v V4x4) split() [4]V4 {
	return [4]V4{v[0], v[1], v[2], v[3]}
}
