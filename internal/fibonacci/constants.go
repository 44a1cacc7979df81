package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Sequence Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxUint64Index is the largest n whose Fibonacci term fits in a uint64.
	// F(93) = 12200160415121876738 < 2^64 - 1 < F(94). The iterative strategy
	// uses a uint64 fast path up to this index and switches to big.Int above.
	MaxUint64Index = 93

	// RecursivePracticalLimit is the index beyond which the naive recursive
	// strategy is considered impractical on current hardware (the call tree
	// roughly doubles per index). Configuration validation warns above it;
	// the strategy itself remains unbounded and relies on the timeout.
	RecursivePracticalLimit = 42

	// ProgressCheckInterval is the number of recursion steps between context
	// cancellation checks and progress reports in the recursive strategy.
	// A power of two keeps the modulo cheap.
	ProgressCheckInterval = 4096

	// IterativeProgressSteps is the number of progress reports emitted over
	// the course of an iterative calculation.
	IterativeProgressSteps = 100
)

// ─────────────────────────────────────────────────────────────────────────────
// Verification Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// VerifyRangeStart is the first index checked by Verify.
	VerifyRangeStart = 1
	// VerifyRangeEnd is the last index checked by Verify.
	VerifyRangeEnd = 10
)

// referenceSequence is the literal expected sequence for n = 1..10.
// It is the ground truth for Verify; never mutated.
var referenceSequence = [10]uint64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}

// ReferenceSequence returns a copy of the expected sequence for n = 1..10.
func ReferenceSequence() []uint64 {
	seq := make([]uint64, len(referenceSequence))
	copy(seq, referenceSequence[:])
	return seq
}
