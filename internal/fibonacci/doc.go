// Package fibonacci implements the Fibonacci sequence engine: two
// independent calculation strategies (naive recursive and iterative) behind
// a common Calculator interface, a factory for strategy selection, and a
// verification routine that checks a strategy against the known reference
// sequence for n = 1..10.
//
// The sequence is defined by F(1) = F(2) = 1 and F(n) = F(n-1) + F(n-2).
// Indices are uint64, so negative inputs are unrepresentable; F(0) = 0 is
// defined as the natural extension (it is the initial "previous" accumulator
// of the iterative form). Results are *big.Int, so no index produces an
// overflowed term.
//
// The recursive strategy re-expands the full call tree on every invocation
// (no memoization) and is exponential in n. It honors context cancellation
// so a configured timeout bounds impractical runs. The iterative strategy is
// O(n) time and O(1) additional space.
package fibonacci
