package fibonacci

import (
	"context"
	"math/big"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

// TermFunc computes a single sequence term. It is the function-valued
// parameter accepted by Verify, so any strategy (or a closure in a test)
// can be checked without implementing the full Calculator interface.
type TermFunc func(ctx context.Context, n uint64) (*big.Int, error)

// Verify applies fn to each index in the verification range (n = 1..10) in
// order and requires exact equality with the reference sequence
// [1,1,2,3,5,8,13,21,34,55]. It returns nil on a full match, a
// MismatchError naming the first divergent index otherwise, and the
// underlying error if fn itself fails.
//
// Parameters:
//   - ctx: Context bounding the whole verification.
//   - name: Display name of the strategy under test (for diagnostics).
//   - fn: The term function to check.
//
// Returns:
//   - error: nil if and only if all ten terms match exactly.
func Verify(ctx context.Context, name string, fn TermFunc) error {
	for n := uint64(VerifyRangeStart); n <= VerifyRangeEnd; n++ {
		got, err := fn(ctx, n)
		if err != nil {
			return apperrors.CalculationError{Cause: err}
		}
		want := new(big.Int).SetUint64(referenceSequence[n-1])
		if got == nil || got.Cmp(want) != 0 {
			gotStr := "<nil>"
			if got != nil {
				gotStr = got.String()
			}
			return apperrors.MismatchError{
				Strategy: name,
				Index:    n,
				Got:      gotStr,
				Want:     want.String(),
			}
		}
	}
	return nil
}

// VerifyCalculator checks a Calculator against the reference sequence.
// Progress reporting is disabled during verification.
func VerifyCalculator(ctx context.Context, calc Calculator, opts Options) error {
	return Verify(ctx, calc.Name(), func(ctx context.Context, n uint64) (*big.Int, error) {
		return calc.Calculate(ctx, nil, 0, n, opts)
	})
}
