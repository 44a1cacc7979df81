package fibonacci

import (
	"context"
	"math"
	"math/big"

	"github.com/agbru/fibbench/internal/progress"
)

// RecursiveStrategy computes F(n) by naive named recursion,
// F(n) = F(n-1) + F(n-2), re-expanding the full call tree on every
// invocation. No memoization, no internal fallback: O(2^n) time and O(n)
// call-stack depth, exactly the textbook formulation. The context is
// checked every Options.ProgressCheckInterval additions so a timeout
// terminates impractical runs.
type RecursiveStrategy struct{}

// Name returns the strategy display name.
func (RecursiveStrategy) Name() string { return "Recursive (O(2^n), Naive)" }

// CalculateCore computes F(n) recursively.
//
// Progress is derived from the structure of the call tree: computing F(n)
// naively performs exactly F(n+1) - 1 additions, so the completed-addition
// count over that total is an exact progress fraction.
func (s RecursiveStrategy) CalculateCore(ctx context.Context, report progress.ProgressCallback, n uint64, opts Options) (*big.Int, error) {
	if n == 0 {
		return big.NewInt(0), nil
	}
	if n <= 2 {
		return big.NewInt(1), nil
	}

	st := &recursionState{
		ctx:       ctx,
		report:    report,
		totalWork: totalAdditions(n),
		interval:  opts.checkInterval(),
	}
	return st.fib(n)
}

// recursionState carries the shared bookkeeping of one recursive
// calculation: addition counting for progress and periodic cancellation
// checks.
type recursionState struct {
	ctx       context.Context
	report    progress.ProgressCallback
	additions uint64
	sinceLast uint64
	totalWork float64
	interval  uint64
}

// fib is the naive recursion. Each internal node performs one addition.
func (st *recursionState) fib(n uint64) (*big.Int, error) {
	if n == 0 {
		return big.NewInt(0), nil
	}
	if n <= 2 {
		return big.NewInt(1), nil
	}

	a, err := st.fib(n - 1)
	if err != nil {
		return nil, err
	}
	b, err := st.fib(n - 2)
	if err != nil {
		return nil, err
	}

	st.additions++
	st.sinceLast++
	if st.sinceLast >= st.interval {
		st.sinceLast = 0
		if err := st.ctx.Err(); err != nil {
			return nil, err
		}
		if st.report != nil && st.totalWork > 0 {
			st.report(float64(st.additions) / st.totalWork)
		}
	}

	return a.Add(a, b), nil
}

// totalAdditions returns the number of additions the naive recursion
// performs for F(n), which is F(n+1) - 1. Beyond the uint64 range the
// count is approximated via Binet's formula; any n in that regime is far
// past practical anyway and the value only scales the progress fraction.
func totalAdditions(n uint64) float64 {
	if n+1 <= MaxUint64Index {
		return float64(fibUint64(n+1) - 1)
	}
	const (
		phi     = 1.618033988749895
		sqrtFiv = 2.23606797749979
	)
	return math.Pow(phi, float64(n+1)) / sqrtFiv
}
