package chacha

// rowVector is satisfied by both V4 (narrow, one block) and V4x4 (wide,
// four blocks in parallel). The round function is written once against
// this constraint and instantiated at both widths — see spec DESIGN NOTES
// "Two refill widths, shared algorithm".
type rowVector[T any] interface {
	add(T) T
	xor(T) T
	rotl(uint32) T
	shiftLanes(int) T
}

// quarterState is the (a, b, c, d) row quadruple being permuted. a is the
// constant row, b/c the key rows, d the counter/nonce row.
type quarterState[T rowVector[T]] struct {
	a, b, c, d T
}

// round performs one ChaCha column round (or diagonal round, depending on
// whether the state is currently diagonalized) across all four rows:
//
//	a += b; d ^= a; d = rotl(d, 16)
//	c += d; b ^= c; b = rotl(b, 12)
//	a += b; d ^= a; d = rotl(d, 8)
//	c += d; b ^= c; b = rotl(b, 7)
func round[T rowVector[T]](s quarterState[T]) quarterState[T] {
	s.a = s.a.add(s.b)
	s.d = s.d.xor(s.a).rotl(16)

	s.c = s.c.add(s.d)
	s.b = s.b.xor(s.c).rotl(12)

	s.a = s.a.add(s.b)
	s.d = s.d.xor(s.a).rotl(8)

	s.c = s.c.add(s.d)
	s.b = s.b.xor(s.c).rotl(7)

	return s
}

// diagonalize rotates lane positions within b, c, d by 1, 2, 3 respectively,
// turning the next column round into a diagonal round.
func diagonalize[T rowVector[T]](s quarterState[T]) quarterState[T] {
	s.b = s.b.shiftLanes(1)
	s.c = s.c.shiftLanes(2)
	s.d = s.d.shiftLanes(3)
	return s
}

// undiagonalize reverses diagonalize.
func undiagonalize[T rowVector[T]](s quarterState[T]) quarterState[T] {
	s.b = s.b.shiftLanes(3)
	s.c = s.c.shiftLanes(2)
	s.d = s.d.shiftLanes(1)
	return s
}

// doubleRound runs one column round followed by one diagonal round.
func doubleRound[T rowVector[T]](s quarterState[T]) quarterState[T] {
	s = round(s)
	s = diagonalize(s)
	s = round(s)
	s = undiagonalize(s)
	return s
}

// runRounds applies r double rounds (r = 4, 6 or 10 for ChaCha8/12/20).
func runRounds[T rowVector[T]](s quarterState[T], r int) quarterState[T] {
	for i := 0; i < r; i++ {
		s = doubleRound(s)
	}
	return s
}
