package chacha

// deriveSubkey runs the HChaCha bootstrap: a single ChaCha permutation (r
// single rounds, i.e. r/2 double rounds, no final add-back) over
// (constants, key, nonce[0:16]), returning the permuted first and last rows
// as the derived subkey for XChaCha20's inner ChaCha20 instance.
func deriveSubkey(key [32]byte, nonce16 [16]byte, r int) (subB, subC V4) {
	x := quarterState[V4]{
		a: constRow,
		b: wordsLE(key[0:16]),
		c: wordsLE(key[16:32]),
		d: wordsLE(nonce16[0:16]),
	}
	x = runRounds(x, r/2)
	return x.a, x.d
}
