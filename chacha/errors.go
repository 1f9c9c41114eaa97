package chacha

import "errors"

// ErrHorizonExceeded is returned by TryApplyKeystream when the requested
// length would require keystream bytes past the cipher's counter horizon
// (2^32 blocks for the IETF variant, 2^64 blocks otherwise). The data slice
// and the cipher's position are left untouched when this is returned.
var ErrHorizonExceeded = errors.New("chacha: requested length exceeds counter horizon")
