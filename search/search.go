package search

import "fmt"

// Search enumerates every quadruple (a, b, c, d) below the bound with
// a³ + b³ = c³ + d³, a < b, c < d and none of c, d equal to a or b.
//
// Enumeration order (matches are emitted in exactly this order):
//  1. a from 1 to N−1.
//  2. b from a+1 to N−1.
//  3. c from 1 to N−1; the d loop is skipped unless c ≠ a, c ≠ b and
//     c³ < a³+b³. Since d > c and cubes are strictly increasing, no d can
//     close the gap once c³ reaches the target.
//  4. d from c+1 to N−1, skipping d ∈ {a, b, c}.
//  5. emit when a³+b³ == c³+d³.
//
// The order is lexicographic in (a, b, c, d), so a parallel run only has to
// re-assemble whole rows of a in ascending order to reproduce it.
//
// Errors:
//   - ErrOptionViolation — an Option was invalid.
//   - ErrBoundTooLarge   — the bound exceeds MaxBound.
//   - any error returned by OnMatch, unchanged.
//   - the context error, wrapped, when Ctx is cancelled.
//
// Complexity: O(N⁴) time in the worst case, O(1) extra memory when
// collection is off (O(N) pending rows in parallel mode).
func Search(opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := CheckBound(o.Bound); err != nil {
		return nil, err
	}

	res := &Result{Bound: o.Bound}
	var err error
	if o.Workers > 1 {
		err = scanParallel(&o, res)
	} else {
		err = scanSequential(&o, res)
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

// emitter returns the sink that receives matches in emission order:
// it appends to res when collecting, then hands the match to OnMatch.
func emitter(o *Options, res *Result) func(Quadruple) error {
	return func(q Quadruple) error {
		if o.Collect {
			res.Matches = append(res.Matches, q)
		}

		return o.OnMatch(q)
	}
}

// scanSequential is the reference single-goroutine enumeration.
func scanSequential(o *Options, res *Result) error {
	emit := emitter(o, res)
	for a := uint64(1); a < o.Bound; a++ {
		if err := o.Ctx.Err(); err != nil {
			return fmt.Errorf("search: cancelled at a=%d: %w", a, err)
		}
		if err := scanRow(a, o.Bound, emit, &res.Stats); err != nil {
			return err
		}
	}

	return nil
}

// scanRow runs steps 2–5 for a single value of a, emitting matches in
// ascending (b, c, d) order. a³, b³ and c³ are computed once per loop.
//
// Probes are counted arithmetically per c so the innermost loop carries
// no bookkeeping.
func scanRow(a, n uint64, emit func(Quadruple) error, st *Stats) error {
	st.Rows++
	ac := Cube(a)
	for b := a + 1; b < n; b++ {
		st.Pairs++
		sum := ac + Cube(b)
		for c := uint64(1); c < n; c++ {
			st.Candidates++
			cc := Cube(c)
			if c == a || c == b || cc >= sum {
				st.Pruned++
				continue
			}
			st.Probes += n - c - 1
			for d := c + 1; d < n; d++ {
				if d == a || d == b || d == c {
					continue
				}
				if sum == cc+Cube(d) {
					st.Matches++
					if err := emit(Quadruple{A: a, B: b, C: c, D: d, Sum: sum}); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}
