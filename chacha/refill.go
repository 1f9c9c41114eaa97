package chacha

import "github.com/pmuens/chacha-core/internal/blockview"

// refillNarrow produces one 64-byte block from state into out, running r
// single rounds (r/2 double rounds), then increments state's counter by 1.
func refillNarrow(state *State, r int, out *blockview.Block) {
	x := quarterState[V4]{a: constRow, b: state.b, c: state.c, d: state.d}
	x = runRounds(x, r/2)

	words := [16]uint32{}
	x.a.add(constRow).storeLE(words[0:4])
	x.b.add(state.b).storeLE(words[4:8])
	x.c.add(state.c).storeLE(words[8:12])
	x.d.add(state.d).storeLE(words[12:16])
	blockview.PutWordsLE(out, words)

	state.incrementBlocks(1)
}

// refillWide produces four consecutive 64-byte blocks (256 bytes total)
// from state into out, running r single rounds (r/2 double rounds) per
// block in parallel across V4x4 lanes, then increments state's counter by
// 4.
func refillWide(state *State, r int, out *[4]blockview.Block) {
	d0 := state.d
	d1, d2, d3 := d0, d0, d0
	bumpCounter(state.cw, &d1, 1)
	bumpCounter(state.cw, &d2, 2)
	bumpCounter(state.cw, &d3, 3)

	x := quarterState[V4x4]{
		a: splatV4x4(constRow),
		b: splatV4x4(state.b),
		c: splatV4x4(state.c),
		d: fromRows(d0, d1, d2, d3),
	}
	x = runRounds(x, r/2)

	aBlocks := x.a.split()
	bBlocks := x.b.split()
	cBlocks := x.c.split()
	dBlocks := x.d.split()
	origD := [4]V4{d0, d1, d2, d3}

	for i := 0; i < 4; i++ {
		words := [16]uint32{}
		aBlocks[i].add(constRow).storeLE(words[0:4])
		bBlocks[i].add(state.b).storeLE(words[4:8])
		cBlocks[i].add(state.c).storeLE(words[8:12])
		dBlocks[i].add(origD[i]).storeLE(words[12:16])
		blockview.PutWordsLE(&out[i], words)
	}

	state.incrementBlocks(4)
}

// bumpCounter adds n to d's block counter in place, respecting the layout
// (lanes 0/1 for the 64-bit counter, lane 0 only for the IETF 32-bit
// counter, leaving the nonce lanes untouched).
func bumpCounter(cw counterWidth, d *V4, n uint32) {
	if cw == counter32 {
		d[0] += n
		return
	}
	ctr := uint64(d[0]) | uint64(d[1])<<32
	ctr += uint64(n)
	d[0] = uint32(ctr)
	d[1] = uint32(ctr >> 32)
}
