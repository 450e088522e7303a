// Package search defines the result types, tunable options and sentinel
// errors of the equal-sum-of-two-cubes search.
package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBoundTooLarge is returned when the bound would overflow uint64
	// while summing two cubes (see MaxBound).
	ErrBoundTooLarge = errors.New("search: bound exceeds the uint64 safe range")
)

// DefaultBound is the exclusive upper limit used when WithBound is not given.
const DefaultBound uint64 = 1000

// DefaultWorkers runs the reference single-threaded enumeration.
const DefaultWorkers = 1

// Quadruple is a single match a³ + b³ = c³ + d³ with a < b, c < d and
// {a, b} ∩ {c, d} = ∅. Sum holds the common value of both sides.
type Quadruple struct {
	A, B uint64
	C, D uint64
	Sum  uint64
}

// Stats counts the work done by one search.
//
//   - Rows       — values of a scanned.
//   - Pairs      — (a, b) pairs visited.
//   - Candidates — c values visited.
//   - Pruned     — c values rejected before the d loop (c ∈ {a, b} or c³ ≥ a³+b³).
//   - Probes     — d values visited.
//   - Matches    — quadruples emitted.
type Stats struct {
	Rows       uint64
	Pairs      uint64
	Candidates uint64
	Pruned     uint64
	Probes     uint64
	Matches    uint64
}

// add folds o into s.
func (s *Stats) add(o Stats) {
	s.Rows += o.Rows
	s.Pairs += o.Pairs
	s.Candidates += o.Candidates
	s.Pruned += o.Pruned
	s.Probes += o.Probes
	s.Matches += o.Matches
}

// Result is the outcome of Search.
//
// Matches is in emission order, which is ascending (a, b, c, d).
// It is nil when collection was disabled with WithCollect(false).
type Result struct {
	Bound   uint64
	Matches []Quadruple
	Stats   Stats
}

// Option configures Search via functional arguments.
// If an Option is invalid (e.g. negative workers), it is recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds the parameters and hooks of one search.
type Options struct {
	// Ctx allows cancellation. It is checked once per row of a.
	Ctx context.Context

	// Bound is the exclusive upper limit for a, b, c and d.
	Bound uint64

	// Workers is the number of goroutines scanning rows of a.
	// 0 and 1 both mean sequential.
	Workers int

	// OnMatch is called for every match, in emission order, from the
	// goroutine that called Search. A non-nil error aborts the search.
	OnMatch func(q Quadruple) error

	// Collect controls whether Result.Matches is filled.
	Collect bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the reference settings:
//   - context.Background()
//   - Bound = DefaultBound
//   - sequential enumeration
//   - no-op OnMatch
//   - matches collected into Result.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Bound:   DefaultBound,
		Workers: DefaultWorkers,
		OnMatch: func(Quadruple) error { return nil },
		Collect: true,
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBound sets the exclusive upper limit of the search.
// Bounds above MaxBound are rejected with ErrBoundTooLarge at call time.
func WithBound(n uint64) Option {
	return func(o *Options) {
		o.Bound = n
	}
}

// WithWorkers sets the number of goroutines used to scan rows of a.
//
//	w > 1:  parallel, output re-assembled in sequential order;
//	        capped at the number of rows (Bound) when larger
//	w <= 1: sequential
//	w < 0:  invalid option → ErrOptionViolation
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, w)

			return
		}
		o.Workers = w
	}
}

// WithOnMatch registers a callback run for each match; returning an error
// from it stops the search.
func WithOnMatch(fn func(q Quadruple) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMatch = fn
		}
	}
}

// WithCollect toggles accumulation of matches into Result.Matches.
func WithCollect(collect bool) Option {
	return func(o *Options) {
		o.Collect = collect
	}
}
