package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvraster/grid"
	"github.com/stretchr/testify/require"
)

func TestRandomBoundsAndDeterminism(t *testing.T) {
	a, err := grid.Random[uint16](90, 100, 10, 13, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, 90, a.Rows())
	require.Equal(t, 100, a.Cols())

	seen := map[uint16]bool{}
	for _, v := range a.Data() {
		require.GreaterOrEqual(t, v, uint16(10))
		require.Less(t, v, uint16(13))
		seen[v] = true
	}
	require.Len(t, seen, 3, "9000 draws over 3 values should hit every value")

	b, err := grid.Random[uint16](90, 100, 10, 13, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.True(t, a.Equal(b), "same seed must reproduce the grid")
}

func TestRandomSigned(t *testing.T) {
	g, err := grid.Random[int8](10, 10, -5, 5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	for _, v := range g.Data() {
		require.GreaterOrEqual(t, v, int8(-5))
		require.Less(t, v, int8(5))
	}
}

func TestRandomErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := grid.Random[uint8](2, 2, 5, 5, rng)
	require.ErrorIs(t, err, grid.ErrInvalidRange)

	_, err = grid.Random[uint8](2, 2, 0, 5, nil)
	require.ErrorIs(t, err, grid.ErrNeedRandSource)

	_, err = grid.Random[uint8](0, 2, 0, 5, rng)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)
}
