package chacha

import "github.com/pmuens/chacha-core/internal/blockview"

const blockSize = 64

// Buffer holds the one-block keystream residue that bridges block-granular
// generation with byte-granular XOR requests, plus the counter-horizon
// budget.
type Buffer struct {
	state State

	out blockview.Block

	// have is the number of valid residue bytes at the tail of out
	// (out[64-have:64]) when positive. Zero means empty. Negative means a
	// pending partial-block offset from a seek into a not-yet-generated
	// block; its value is -(pos mod 64).
	have int

	// blocksLeft counts blocks still safely producible before the counter
	// horizon. For the 64-bit-counter variants this is a wrapping
	// "blocks remaining" counter disambiguated by fresh; for the IETF
	// variant it is a strict count down from 2^32.
	blocksLeft uint64

	// fresh is true only while no keystream byte has been consumed since
	// construction or a seek to zero. It disambiguates "initial, 2^64
	// blocks available" from "exhausted, 0 blocks available" when
	// blocksLeft == 0 for the 64-bit-counter variants.
	fresh bool
}

// newBuffer wraps state into a Buffer with the horizon budget appropriate
// for state's counter width.
func newBuffer(state State) Buffer {
	if state.cw == counter32 {
		return Buffer{state: state, blocksLeft: 1 << 32, fresh: false}
	}
	return Buffer{state: state, blocksLeft: 0, fresh: true}
}

// seek repositions the buffer to absolute byte offset ct. It
// never produces keystream; the next TryApplyKeystream call performs the
// deferred refill via the negative-have lazy-refill path.
func (b *Buffer) seek(ct uint64) {
	blockCt := ct / blockSize
	byteInBlock := int(ct % blockSize)

	if b.state.cw == counter32 {
		if blockCt > 1<<32 || (blockCt == 1<<32 && byteInBlock != 0) {
			panic("chacha: seek offset exceeds the IETF 32-bit counter horizon")
		}
		b.state.setCounter32(uint32(blockCt))
		b.blocksLeft = (1 << 32) - blockCt
		b.fresh = false
	} else {
		b.state.setCounter64(blockCt)
		b.blocksLeft = -blockCt // wrapping uint64 subtraction from 0
		b.fresh = blockCt == 0
	}

	b.have = -byteInBlock
}

// currentPos reports the absolute byte offset the buffer is positioned at.
func (b *Buffer) currentPos() uint64 {
	var counter uint64
	if b.state.cw == counter32 {
		// Derived from blocksLeft rather than the 32-bit counter register:
		// the aligned-horizon seek (counter == 1<<32) cannot be represented
		// in a uint32 and would read back as 0, but blocksLeft (tracked by
		// subtraction, never by wrapping) still holds the true remaining
		// budget at every point in the buffer's lifecycle.
		counter = (uint64(1) << 32) - b.blocksLeft
	} else {
		counter = b.state.counter64Value()
	}
	pos := counter * blockSize
	if b.have > 0 {
		return pos - uint64(b.have)
	}
	return pos
}

// ceilDiv64 returns ceil(n/64) without overflowing for n close to the
// uint64 max.
func ceilDiv64(n int) uint64 {
	return (uint64(n) + blockSize - 1) / blockSize
}

// tryApplyKeystream XORs the next len(data) keystream bytes into data in
// place, advances the logical position, and runs the refill engines at the
// given round count. It returns ErrHorizonExceeded, leaving data and the
// buffer's position unchanged, if the request would cross the counter
// horizon.
func (b *Buffer) tryApplyKeystream(data []byte, rounds int) error {
	// (a) Lazy refill after a seek into a not-yet-generated block.
	if b.have < 0 {
		dispatchedRefillNarrow()(&b.state, rounds, &b.out)
		b.have += blockSize
		b.blocksLeft--
	}

	// (b) Overflow check, performed before any block of *this* call is
	// generated so a failure never leaks keystream bytes.
	ready := b.have
	if ready > len(data) {
		ready = len(data)
	}
	tailLen := len(data) - ready
	blocksNeeded := ceilDiv64(tailLen)

	newLen := b.blocksLeft - blocksNeeded
	borrow := b.blocksLeft < blocksNeeded
	if borrow && !b.fresh {
		return ErrHorizonExceeded
	}
	b.blocksLeft = newLen
	b.fresh = b.fresh && blocksNeeded == 0

	// (c) Consume residue.
	for i := 0; i < ready; i++ {
		data[i] ^= b.out[blockSize-b.have+i]
	}
	data = data[ready:]
	b.have -= ready

	// (d) Wide bulk: four blocks at a time.
	var wide [4]blockview.Block
	for len(data) >= 4*blockSize {
		dispatchedRefillWide()(&b.state, rounds, &wide)
		for i := 0; i < 4; i++ {
			block := wide[i]
			chunk := data[i*blockSize : (i+1)*blockSize]
			for j := 0; j < blockSize; j++ {
				chunk[j] ^= block[j]
			}
		}
		data = data[4*blockSize:]
	}

	// (e) Narrow tail: at most four remaining <=64-byte chunks.
	for len(data) > 0 {
		dispatchedRefillNarrow()(&b.state, rounds, &b.out)
		k := len(data)
		if k > blockSize {
			k = blockSize
		}
		for i := 0; i < k; i++ {
			data[i] ^= b.out[i]
		}
		data = data[k:]
		b.have = blockSize - k
	}

	return nil
}
