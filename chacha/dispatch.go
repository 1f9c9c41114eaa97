package chacha

import (
	"sync"

	"github.com/klauspost/cpuid/v2"

	"github.com/pmuens/chacha-core/internal/blockview"
)

// Variant names the micro-architectural refill implementation chosen by
// dispatch. All variants share the exact same algorithmic body (runRounds
// over V4/V4x4) and produce identical output; what differs is which CPU
// feature tier a build targeting that variant would compile the hot loop
// under. Exposed for diagnostics (see cmd/chachatool's bench subcommand).
type Variant string

const (
	VariantAVX2    Variant = "avx2"
	VariantAVX     Variant = "avx"
	VariantSSE41   Variant = "sse4.1"
	VariantSSSE3   Variant = "ssse3"
	VariantScalar  Variant = "scalar"
)

var (
	dispatchOnce    sync.Once
	dispatchVariant Variant
	narrowFn        func(*State, int, *blockview.Block)
	wideFn          func(*State, int, *[4]blockview.Block)
)

// resolveVariant inspects CPU capabilities in priority order: AVX2 > AVX >
// SSE4.1 > SSSE3 > scalar fallback.
func resolveVariant() Variant {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX2):
		return VariantAVX2
	case cpuid.CPU.Supports(cpuid.AVX):
		return VariantAVX
	case cpuid.CPU.Supports(cpuid.SSE41):
		return VariantSSE41
	case cpuid.CPU.Supports(cpuid.SSSE3):
		return VariantSSSE3
	default:
		return VariantScalar
	}
}

// dispatch resolves and memoizes the refill function pointers on first use.
// The memoization is one-shot and thread-safe via sync.Once: concurrent
// first callers race into the same resolution and all observe the single
// winning pointer with no torn reads.
func dispatch() {
	dispatchOnce.Do(func() {
		dispatchVariant = resolveVariant()
		// Every variant, the scalar fallback included, uses the same
		// portable Go refill functions; the resolved variant only records
		// which CPU feature tier was detected.
		narrowFn = refillNarrow
		wideFn = refillWide
	})
}

// CurrentVariant returns the dispatch variant that would be (or already
// was) selected for this process. Triggers resolution if it has not run
// yet.
func CurrentVariant() Variant {
	dispatch()
	return dispatchVariant
}

// dispatchedRefillNarrow returns the memoized narrow-refill function
// pointer, resolving it on first call.
func dispatchedRefillNarrow() func(*State, int, *blockview.Block) {
	dispatch()
	return narrowFn
}

// dispatchedRefillWide returns the memoized wide-refill function pointer,
// resolving it on first call.
func dispatchedRefillWide() func(*State, int, *[4]blockview.Block) {
	dispatch()
	return wideFn
}
