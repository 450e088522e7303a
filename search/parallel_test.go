package search_test

import (
	"context"
	"errors"
	"os"
	"runtime"
	"testing"

	"github.com/katalvlaran/taxicab/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParallel_EqualsSequential checks that every worker count reproduces
// the sequential output, order and counters included.
func TestParallel_EqualsSequential(t *testing.T) {
	ref, err := search.Search(search.WithBound(boundParallel))
	require.NoError(t, err)
	require.NotEmpty(t, ref.Matches)

	for _, w := range []int{0, 2, 3, 8, 64} {
		var streamed []search.Quadruple
		res, err := search.Search(
			search.WithBound(boundParallel),
			search.WithWorkers(w),
			search.WithOnMatch(func(q search.Quadruple) error {
				streamed = append(streamed, q)

				return nil
			}),
		)
		require.NoError(t, err, "workers=%d", w)
		assert.Equal(t, ref.Matches, res.Matches, "workers=%d", w)
		assert.Equal(t, ref.Matches, streamed, "workers=%d", w)
		assert.Equal(t, ref.Stats, res.Stats, "workers=%d", w)
	}
}

// TestParallel_DegenerateBounds mirrors the sequential boundary cases.
func TestParallel_DegenerateBounds(t *testing.T) {
	for _, n := range []uint64{0, 1, 2} {
		res, err := search.Search(search.WithBound(n), search.WithWorkers(4))
		require.NoError(t, err, "bound %d", n)
		assert.Empty(t, res.Matches)
	}
}

// TestParallel_OnMatchAbort stops after the first match and leaves no
// goroutines behind (checked by TestMain).
func TestParallel_OnMatchAbort(t *testing.T) {
	errStop := errors.New("stop")
	var got []search.Quadruple
	res, err := search.Search(
		search.WithBound(boundParallel),
		search.WithWorkers(4),
		search.WithOnMatch(func(q search.Quadruple) error {
			got = append(got, q)

			return errStop
		}),
	)
	assert.ErrorIs(t, err, errStop)
	assert.Nil(t, res)
	require.Len(t, got, 1)
	assert.Equal(t, "1 12 1729 9 10", got[0].String())
}

// TestParallel_Cancelled returns the wrapped context error.
func TestParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Search(
		search.WithContext(ctx),
		search.WithBound(boundParallel),
		search.WithWorkers(4),
	)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestParallel_HugeWorkers caps the worker count at the number of rows
// instead of sizing buffers from it.
func TestParallel_HugeWorkers(t *testing.T) {
	res, err := search.Search(search.WithBound(boundSmoke), search.WithWorkers(1<<40))
	require.NoError(t, err)
	assert.Equal(t, []string{"1 12 1729 9 10", "9 10 1729 1 12"}, lines(res.Matches))
}

// TestParallel_ReferenceBound checks the full N=1000 run against the oracle.
// It takes minutes even when spread over all CPUs, so it only runs when
// TAXICAB_REFERENCE_TEST is set and -short is off.
func TestParallel_ReferenceBound(t *testing.T) {
	if testing.Short() || os.Getenv("TAXICAB_REFERENCE_TEST") == "" {
		t.Skip("set TAXICAB_REFERENCE_TEST=1 to run the N=1000 reference search")
	}

	res, err := search.Search(search.WithWorkers(runtime.NumCPU()))
	require.NoError(t, err)
	assert.Equal(t, search.DefaultBound, res.Bound)
	assert.Equal(t, oracle(search.DefaultBound), res.Matches)
}
