package fibonacci

import (
	"context"
	"math/big"

	"github.com/agbru/fibbench/internal/progress"
)

// IterativeStrategy computes F(n) with two running accumulators advanced n
// times: O(n) time, O(1) additional space. For n ≤ MaxUint64Index the whole
// calculation runs on uint64; above that the accumulators are big.Int.
type IterativeStrategy struct{}

// Name returns the strategy display name.
func (IterativeStrategy) Name() string { return "Iterative (O(n), Two Accumulators)" }

// CalculateCore computes F(n) iteratively. The accumulators start at
// prev = 0, curr = 1 and advance n times; prev is returned, so F(0) = 0.
func (s IterativeStrategy) CalculateCore(ctx context.Context, report progress.ProgressCallback, n uint64, opts Options) (*big.Int, error) {
	if n <= MaxUint64Index {
		return new(big.Int).SetUint64(fibUint64(n)), nil
	}

	// Report/cancellation cadence: IterativeProgressSteps evenly spaced
	// checkpoints across the n advances.
	stride := n / IterativeProgressSteps
	if stride == 0 {
		stride = 1
	}

	prev := big.NewInt(0)
	curr := big.NewInt(1)
	next := new(big.Int)

	for i := uint64(0); i < n; i++ {
		if i%stride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if report != nil {
				report(float64(i) / float64(n))
			}
		}
		next.Add(prev, curr)
		prev.Set(curr)
		curr.Set(next)
	}

	// The loop advanced n times starting from (F(0), F(1)), leaving
	// prev = F(n).
	return prev, nil
}

// fibUint64 computes F(n) for n ≤ MaxUint64Index entirely in uint64.
func fibUint64(n uint64) uint64 {
	var prev, curr uint64 = 0, 1
	for i := uint64(0); i < n; i++ {
		prev, curr = curr, prev+curr
	}
	return prev
}
