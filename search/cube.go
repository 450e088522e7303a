package search

import "fmt"

// MaxBound is the largest exclusive bound the search accepts.
//
// With N = 2²¹ the largest term is 2²¹−1, whose cube is below 2⁶³, so the
// sum of two such cubes stays below 2⁶⁴. One more and a³+b³ wraps.
const MaxBound uint64 = 1 << 21

// Cube returns x·x·x.
func Cube(x uint64) uint64 {
	return x * x * x
}

// CheckBound reports ErrBoundTooLarge if n exceeds MaxBound.
func CheckBound(n uint64) error {
	if n > MaxBound {
		return fmt.Errorf("%w: %d > %d", ErrBoundTooLarge, n, MaxBound)
	}

	return nil
}
