package fibonacci

import (
	"context"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// propCalcF computes F(n) with the given strategy for property tests.
func propCalcF(s coreCalculator, n uint64) (*big.Int, error) {
	return s.CalculateCore(context.Background(), nil, n, Options{})
}

// recursiveRangeMax bounds n for properties exercising the naive recursion;
// the call tree doubles per index, so larger values dominate the suite's
// runtime.
const recursiveRangeMax = 24

// TestRecurrenceRelation_PropertyBased verifies the defining property of
// the sequence for both strategies:
//
//	F(n) = F(n-1) + F(n-2)  for n > 2
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	ranges := map[string]uint64{
		RecursiveStrategy{}.Name(): recursiveRangeMax,
		IterativeStrategy{}.Name(): 2000,
	}

	for _, strategy := range allStrategies() {
		s := strategy
		properties.Property(s.Name()+" satisfies recurrence F(n) = F(n-1) + F(n-2)", prop.ForAll(
			func(n uint64) bool {
				fn, err := propCalcF(s, n)
				if err != nil {
					return false
				}
				fn1, err := propCalcF(s, n-1)
				if err != nil {
					return false
				}
				fn2, err := propCalcF(s, n-2)
				if err != nil {
					return false
				}
				sum := new(big.Int).Add(fn1, fn2)
				return fn.Cmp(sum) == 0
			},
			gen.UInt64Range(3, ranges[s.Name()]),
		))
	}

	properties.TestingRun(t)
}

// TestStrategyEquality_PropertyBased verifies the two strategies agree on
// every index in the sampled range.
func TestStrategyEquality_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("recursive and iterative agree", prop.ForAll(
		func(n uint64) bool {
			r, err := propCalcF(RecursiveStrategy{}, n)
			if err != nil {
				return false
			}
			i, err := propCalcF(IterativeStrategy{}, n)
			if err != nil {
				return false
			}
			return r.Cmp(i) == 0
		},
		gen.UInt64Range(0, recursiveRangeMax),
	))

	properties.TestingRun(t)
}

// TestIdempotence_PropertyBased verifies both strategies are pure: two
// calls with the same index yield the same term.
func TestIdempotence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	ranges := map[string]uint64{
		RecursiveStrategy{}.Name(): recursiveRangeMax,
		IterativeStrategy{}.Name(): 5000,
	}

	for _, strategy := range allStrategies() {
		s := strategy
		properties.Property(s.Name()+" is idempotent", prop.ForAll(
			func(n uint64) bool {
				first, err := propCalcF(s, n)
				if err != nil {
					return false
				}
				second, err := propCalcF(s, n)
				if err != nil {
					return false
				}
				return first.Cmp(second) == 0
			},
			gen.UInt64Range(0, ranges[s.Name()]),
		))
	}

	properties.TestingRun(t)
}

// TestCassinisIdentity_PropertyBased verifies Cassini's Identity on the
// iterative strategy:
//
//	F(n-1) * F(n+1) - F(n)² = (-1)ⁿ
//
// A strong independent correctness check that does not rely on comparing
// the strategies against each other.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("iterative satisfies Cassini's Identity", prop.ForAll(
		func(n uint64) bool {
			s := IterativeStrategy{}
			fnMinus1, err := propCalcF(s, n-1)
			if err != nil {
				return false
			}
			fn, err := propCalcF(s, n)
			if err != nil {
				return false
			}
			fnPlus1, err := propCalcF(s, n+1)
			if err != nil {
				return false
			}

			leftSide := new(big.Int).Mul(fnMinus1, fnPlus1)
			leftSide.Sub(leftSide, new(big.Int).Mul(fn, fn))

			rightSide := big.NewInt(1)
			if n%2 != 0 {
				rightSide.Neg(rightSide)
			}
			return leftSide.Cmp(rightSide) == 0
		},
		gen.UInt64Range(1, 2000),
	))

	properties.TestingRun(t)
}
