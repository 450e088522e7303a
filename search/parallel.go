package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// row is the complete output of scanRow for one value of a.
type row struct {
	a       uint64
	matches []Quadruple
	stats   Stats
}

// scanParallel fans rows of a out to at most o.Workers goroutines and re-assembles
// them in ascending a on the calling goroutine, so OnMatch observes the
// same sequence as scanSequential.
//
// Workers never call OnMatch. Rows finishing early wait in a pending map
// until every smaller a has been emitted.
func scanParallel(o *Options, res *Result) error {
	ctx, cancel := context.WithCancel(o.Ctx)
	defer cancel()

	// More workers than rows would only idle; o.Bound ≤ MaxBound fits in int.
	workers := max(min(o.Workers, int(o.Bound)), 1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	rows := make(chan row, workers)
	var scanErr error
	go func() {
		defer close(rows)
		for a := uint64(1); a < o.Bound; a++ {
			if gctx.Err() != nil {
				break
			}
			a := a // per-iteration copy (Go 1.22 loopvar semantics on go 1.21)
			g.Go(func() error {
				r := row{a: a}
				collect := func(q Quadruple) error {
					r.matches = append(r.matches, q)

					return nil
				}
				if err := scanRow(a, o.Bound, collect, &r.stats); err != nil {
					return err
				}
				select {
				case rows <- r:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}
		scanErr = g.Wait()
	}()

	var (
		emit    = emitter(o, res)
		pending = make(map[uint64]row)
		next    = uint64(1)
		emitErr error
	)
	for r := range rows {
		if emitErr != nil {
			continue // drain so workers can exit
		}
		pending[r.a] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			res.Stats.add(ready.stats)
			for _, q := range ready.matches {
				if emitErr = emit(q); emitErr != nil {
					break
				}
			}
			if emitErr != nil {
				cancel()
				break
			}
		}
	}

	if emitErr != nil {
		return emitErr
	}
	if next >= o.Bound {
		return nil
	}
	if err := o.Ctx.Err(); err != nil {
		return fmt.Errorf("search: cancelled at a=%d: %w", next, err)
	}

	return fmt.Errorf("search: parallel scan stopped at a=%d: %w", next, scanErr)
}
