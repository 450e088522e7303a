package search_test

import (
	"math/bits"
	"testing"

	"github.com/katalvlaran/taxicab/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCube checks a few exact values, including the largest term at the
// default bound.
func TestCube(t *testing.T) {
	assert.Equal(t, uint64(1), search.Cube(1))
	assert.Equal(t, uint64(1728), search.Cube(12))
	assert.Equal(t, uint64(997002999), search.Cube(999))
}

// TestMaxBound_NoOverflow verifies that the sum of the two largest cubes
// admitted by MaxBound fits in uint64, and that one step further wraps.
func TestMaxBound_NoOverflow(t *testing.T) {
	top := search.Cube(search.MaxBound - 1)
	_, carry := bits.Add64(top, top, 0)
	assert.Zero(t, carry, "2·(MaxBound−1)³ must fit in uint64")

	over := search.Cube(search.MaxBound)
	_, carry = bits.Add64(over, over, 0)
	assert.Equal(t, uint64(1), carry, "2·MaxBound³ must overflow")
}

// TestCheckBound covers both sides of the limit.
func TestCheckBound(t *testing.T) {
	require.NoError(t, search.CheckBound(0))
	require.NoError(t, search.CheckBound(search.DefaultBound))
	require.NoError(t, search.CheckBound(search.MaxBound))

	err := search.CheckBound(search.MaxBound + 1)
	assert.ErrorIs(t, err, search.ErrBoundTooLarge)
}
