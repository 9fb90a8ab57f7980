package combine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// coverage asserts bands tile [0, rows*cols) in order without gaps.
func coverage(t *testing.T, bands []band, rows, cols int) {
	t.Helper()
	next := 0
	for _, b := range bands {
		require.Equal(t, next, b.lo)
		require.Greater(t, b.hi, b.lo)
		require.Zero(t, b.lo%cols, "band must start on a row boundary")
		next = b.hi
	}
	require.Equal(t, rows*cols, next)
}

func TestPlanBands(t *testing.T) {
	cases := []struct {
		rows, cols, workers, minRows int
		want                         int
	}{
		{1, 1, 8, 64, 1},
		{100, 10, 1, 1, 1},
		{100, 10, 4, 1, 4},
		{100, 10, 4, 64, 2},
		{100, 10, 3, 1, 3},
		{7, 3, 16, 1, 7},
		{1000, 5, 0, 64, 1},
	}
	for _, tc := range cases {
		bands := planBands(tc.rows, tc.cols, tc.workers, tc.minRows)
		require.Len(t, bands, tc.want, "%+v", tc)
		coverage(t, bands, tc.rows, tc.cols)
	}
}

func TestPlanBandsEmptyShape(t *testing.T) {
	require.Nil(t, planBands(0, 0, 4, 64))
	require.Nil(t, planBands(0, 10, 4, 1))
	require.Nil(t, planBands(10, 0, 4, 1))
}

func TestRunCounterFlushesRuns(t *testing.T) {
	rc := runCounter{h: make(histogram)}
	for _, z := range []uint64{1, 1, 1, 2, 1, 3, 3} {
		rc.add(z)
	}
	rc.flush()
	require.Equal(t, histogram{1: 4, 2: 1, 3: 2}, rc.h)
}

func TestMergeHistograms(t *testing.T) {
	got := mergeHistograms([]histogram{nil, {1: 2}, {1: 1, 5: 3}, nil})
	require.Equal(t, histogram{1: 3, 5: 3}, got)

	require.Empty(t, mergeHistograms(nil))
}

func TestGatherOptionsDefaults(t *testing.T) {
	o := gatherOptions()
	require.GreaterOrEqual(t, o.workers, 1)
	require.Equal(t, DefaultMinBandRows, o.minBandRows)
	require.NotNil(t, o.log)

	o = gatherOptions(WithWorkers(3), WithMinBandRows(5), WithWorkers(2))
	require.Equal(t, 2, o.Workers(), "last option wins")
	require.Equal(t, 5, o.MinBandRows())
}

func TestOptionPanics(t *testing.T) {
	require.PanicsWithValue(t, panicWorkersInvalid, func() { WithWorkers(-1) })
	require.PanicsWithValue(t, panicBandRowsInvalid, func() { WithMinBandRows(0) })
}
