// Package search finds every way a number below a bound can be written as
// a sum of two positive cubes in two different ways.
//
// 🚀 What does it report?
//
//	Quadruples (a, b, c, d) with
//	  • 1 ≤ a < b < N and 1 ≤ c < d < N
//	  • none of c, d equal to a or b
//	  • a³ + b³ = c³ + d³
//	The smallest such sum is the taxicab number 1729 = 1³+12³ = 9³+10³.
//
// ✨ Key features:
//   - exact reference enumeration order (lexicographic in a, b, c, d)
//   - pruning: the d loop is skipped once c³ reaches a³+b³
//   - optional row-parallel mode that reproduces the sequential order
//   - streaming hook (OnMatch) and work counters (Stats)
//   - fail-fast on bounds whose cube sums would overflow uint64
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/taxicab/search"
//
//	res, err := search.Search(
//	  search.WithBound(100),
//	  search.WithWorkers(4),
//	)
//	if err != nil {
//	  // handle ErrOptionViolation or ErrBoundTooLarge
//	}
//	for _, q := range res.Matches {
//	  fmt.Println(q) // "1 12 1729 9 10" ...
//	}
//
// Performance:
//
//   - Time:   O(N⁴) worst case; the c-pruning cuts the constant factor.
//   - Memory: O(matches) when collecting, O(1) otherwise (sequential).
//
// Every emitted line appears in both orientations: (1,12,9,10) and later
// (9,10,1,12).
package search
