// Package blockview implements the ChaCha 64-byte block's dual view: the
// same storage accessed as 16 little-endian words during generation and as
// 64 bytes during the keystream XOR. Keeping the conversion in one place
// guarantees the two views coincide byte-for-byte regardless of host
// endianness.
package blockview

import "encoding/binary"

// Block is one 64-byte ChaCha keystream block.
type Block = [64]byte

// PutWordsLE writes 16 words into block as little-endian bytes, word i at
// block[4*i : 4*i+4]. This is the canonical ChaCha keystream byte order.
func PutWordsLE(block *Block, words [16]uint32) {
	for i, w := range words {
		binary.LittleEndian.PutUint32(block[i*4:i*4+4], w)
	}
}

// WordsLE reads block back as 16 little-endian words. Provided for
// symmetry and used by tests that assert the two views agree.
func WordsLE(block *Block) [16]uint32 {
	var words [16]uint32
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(block[i*4 : i*4+4])
	}
	return words
}
