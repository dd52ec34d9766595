package dtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/warp/dtw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strategies runs fn once per evaluator tier.
func strategies(t *testing.T, fn func(t *testing.T, s dtw.Strategy)) {
	t.Helper()
	for _, s := range []dtw.Strategy{dtw.Reference, dtw.Optimized} {
		s := s
		t.Run(s.String(), func(t *testing.T) { fn(t, s) })
	}
}

// TestDTW_EmptyInput verifies the degenerate-input policy: one empty
// sequence is rejected, two empty sequences align at zero cost.
func TestDTW_EmptyInput(t *testing.T) {
	strategies(t, func(t *testing.T, s dtw.Strategy) {
		_, err := dtw.Distance([]float64{}, []float64{1, 2, 3}, dtw.WithStrategy(s))
		assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first sequence should error")

		_, err = dtw.Distance([]float64{1, 2, 3}, nil, dtw.WithStrategy(s))
		assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second sequence should error")

		d, err := dtw.Distance(nil, nil, dtw.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, 0.0, d)

		path, d, err := dtw.WarpingPathWithDistance(nil, []float64{}, dtw.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, 0.0, d)
		assert.NotNil(t, path)
		assert.Empty(t, path)

		d, m, err := dtw.WarpingPaths(nil, nil, dtw.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, 0.0, d)
		assert.Equal(t, 1, m.Rows())
		assert.Equal(t, 1, m.Cols())
		v, err := m.At(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v)
	})
}

// TestDTW_PathNeedsMatrix ensures a path or matrix request with TwoRows errors.
func TestDTW_PathNeedsMatrix(t *testing.T) {
	a := []float64{1, 2}

	_, err := dtw.WarpingPath(a, a, dtw.WithMemoryMode(dtw.TwoRows))
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix)

	_, _, err = dtw.WarpingPaths(a, a, dtw.WithMemoryMode(dtw.TwoRows))
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix)

	// Without an explicit mode the storage follows the request.
	res, err := dtw.DTW(a, a, dtw.WithPath())
	require.NoError(t, err)
	assert.Equal(t, dtw.FullMatrix, res.MemoryMode)

	res, err = dtw.DTW(a, a)
	require.NoError(t, err)
	assert.Equal(t, dtw.TwoRows, res.MemoryMode)
	assert.Nil(t, res.Path, "no path unless requested")
	assert.Nil(t, res.Matrix, "no matrix unless requested")
}

// TestDTW_IdenticalSequences: zero distance exactly, with and without
// explicit zero penalties, in both memory modes.
func TestDTW_IdenticalSequences(t *testing.T) {
	a := []float64{0, 1, 2, 3, 4}
	strategies(t, func(t *testing.T, s dtw.Strategy) {
		for _, mode := range []dtw.MemoryMode{dtw.FullMatrix, dtw.TwoRows} {
			d, err := dtw.Distance(a, a, dtw.WithStrategy(s), dtw.WithMemoryMode(mode))
			require.NoError(t, err)
			assert.Equal(t, 0.0, d, "mode=%s", mode)

			d, err = dtw.Distance(a, a, dtw.WithStrategy(s), dtw.WithMemoryMode(mode),
				dtw.WithPenaltyS1(0), dtw.WithPenaltyS2(0))
			require.NoError(t, err)
			assert.Equal(t, 0.0, d, "mode=%s", mode)
		}

		path, err := dtw.WarpingPath(a, a, dtw.WithStrategy(s), dtw.WithPenalty(5))
		require.NoError(t, err)
		assert.Equal(t, []dtw.Coord{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}, path)
	})
}

// TestDTW_KnownValues pins distances and paths of small hand-checked inputs.
func TestDTW_KnownValues(t *testing.T) {
	cases := []struct {
		name   string
		a, b   []float64
		s1, s2 float64
		want   float64
		path   []dtw.Coord
	}{
		{
			name: "subsequence/no-penalty",
			a:    []float64{1, 2, 3}, b: []float64{1, 2, 2, 3},
			want: 0,
			path: []dtw.Coord{{0, 0}, {1, 1}, {1, 2}, {2, 3}},
		},
		{
			name: "subsequence/unit-penalty",
			a:    []float64{1, 2, 3}, b: []float64{1, 2, 2, 3},
			s1: 1, s2: 1,
			want: 1,
			path: []dtw.Coord{{0, 0}, {1, 1}, {1, 2}, {2, 3}},
		},
		{
			name: "vertical-before-horizontal",
			a:    []float64{0, 0, 1}, b: []float64{0, 1, 1},
			want: 0,
			path: []dtw.Coord{{0, 0}, {1, 0}, {2, 1}, {2, 2}},
		},
		{
			name: "disjoint-ranges",
			a:    []float64{1, 2, 3}, b: []float64{4, 5, 6, 7},
			want: math.Sqrt(42),
			path: []dtw.Coord{{0, 0}, {1, 0}, {2, 1}, {2, 2}, {2, 3}},
		},
		{
			name: "vertical-charged",
			a:    []float64{0, 1, 2}, b: []float64{0, 1},
			s1: 3,
			want: 2,
			path: []dtw.Coord{{0, 0}, {1, 1}, {2, 1}},
		},
		{
			name: "horizontal-charged-unused",
			a:    []float64{0, 1, 2}, b: []float64{0, 1},
			s2: 3,
			want: 1,
			path: []dtw.Coord{{0, 0}, {1, 1}, {2, 1}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			strategies(t, func(t *testing.T, s dtw.Strategy) {
				opts := []dtw.Option{dtw.WithStrategy(s), dtw.WithPenaltyS1(tc.s1), dtw.WithPenaltyS2(tc.s2)}

				d, err := dtw.Distance(tc.a, tc.b, opts...)
				require.NoError(t, err)
				assert.InDelta(t, tc.want, d, 1e-12)

				path, pd, err := dtw.WarpingPathWithDistance(tc.a, tc.b, opts...)
				require.NoError(t, err)
				assert.Equal(t, tc.path, path)
				assert.Equal(t, d, pd, "path distance must equal streaming distance")
			})
		})
	}
}

// TestWarpingPaths_Matrix checks boundary sentinels and interior cells.
func TestWarpingPaths_Matrix(t *testing.T) {
	a := []float64{0, 1, 2}
	b := []float64{0, 1}
	inf := math.Inf(1)
	want := [][]float64{
		{0, inf, inf},
		{inf, 0, 3},
		{inf, 2, 0},
		{inf, 7, 2},
	}

	strategies(t, func(t *testing.T, s dtw.Strategy) {
		d, m, err := dtw.WarpingPaths(a, b, dtw.WithStrategy(s), dtw.WithPenaltyS1(1), dtw.WithPenaltyS2(2))
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt2, d, 1e-12)
		require.Equal(t, 4, m.Rows())
		require.Equal(t, 3, m.Cols())
		for i := range want {
			for j := range want[i] {
				v, err := m.At(i, j)
				require.NoError(t, err)
				assert.Equal(t, want[i][j], v, "cell (%d,%d)", i, j)
			}
		}
	})
}

// TestDTW_ResultFields checks the unified entry point.
func TestDTW_ResultFields(t *testing.T) {
	a := []float64{0, 1, 2}
	b := []float64{0, 1}

	res, err := dtw.DTW(a, b, dtw.WithPenalty(1), dtw.WithPenaltyS2(2), dtw.WithPath(), dtw.WithMatrix(),
		dtw.WithStrategy(dtw.Reference))
	require.NoError(t, err)
	assert.Equal(t, dtw.Penalties{S1: 1, S2: 2}, res.Penalties)
	assert.Equal(t, dtw.Reference, res.Strategy)
	assert.Equal(t, dtw.FullMatrix, res.MemoryMode)
	assert.InDelta(t, math.Sqrt2, res.Distance, 1e-12)
	assert.Equal(t, []dtw.Coord{{0, 0}, {1, 1}, {2, 1}}, res.Path)
	require.NotNil(t, res.Matrix)
	assert.Equal(t, 4, res.Matrix.Rows())
}

// TestDTW_NoPath: an infinite penalty forbids the only legal moves.
func TestDTW_NoPath(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{1, 4}

	strategies(t, func(t *testing.T, s dtw.Strategy) {
		// s1 longer: at least two vertical steps are required.
		d, err := dtw.Distance(a, b, dtw.WithStrategy(s), dtw.WithPenaltyS1(math.Inf(1)))
		require.NoError(t, err, "an infinite distance is a result, not an error")
		assert.True(t, math.IsInf(d, 1))

		_, err = dtw.WarpingPath(a, b, dtw.WithStrategy(s), dtw.WithPenaltyS1(math.Inf(1)))
		assert.ErrorIs(t, err, dtw.ErrNoPath)

		// Forbidding the unused direction changes nothing.
		d, err = dtw.Distance(a, b, dtw.WithStrategy(s), dtw.WithPenaltyS2(math.Inf(1)))
		require.NoError(t, err)
		assert.False(t, math.IsInf(d, 0))
	})
}

// TestDTW_NonFiniteSamples: NaN and Inf samples propagate as +Inf cost.
func TestDTW_NonFiniteSamples(t *testing.T) {
	strategies(t, func(t *testing.T, s dtw.Strategy) {
		d, err := dtw.Distance([]float64{1, math.NaN(), 3}, []float64{1, 2, 3}, dtw.WithStrategy(s))
		require.NoError(t, err)
		assert.True(t, math.IsInf(d, 1), "NaN sample must yield +Inf, got %v", d)

		d, err = dtw.Distance([]float64{math.Inf(1)}, []float64{math.Inf(1)}, dtw.WithStrategy(s))
		require.NoError(t, err)
		assert.True(t, math.IsInf(d, 1), "Inf−Inf must yield +Inf, got %v", d)

		_, err = dtw.WarpingPath([]float64{math.NaN()}, []float64{1}, dtw.WithStrategy(s))
		assert.ErrorIs(t, err, dtw.ErrNoPath)
	})
}

// TestDTW_InputsNotMutated guards against in-place tricks in either tier.
func TestDTW_InputsNotMutated(t *testing.T) {
	a := []float64{3, 1, 4, 1, 5}
	b := []float64{9, 2, 6}
	ac := append([]float64(nil), a...)
	bc := append([]float64(nil), b...)

	strategies(t, func(t *testing.T, s dtw.Strategy) {
		_, err := dtw.DTW(a, b, dtw.WithStrategy(s), dtw.WithPath(), dtw.WithMatrix())
		require.NoError(t, err)
		_, err = dtw.Distance(a, b, dtw.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, ac, a)
		assert.Equal(t, bc, b)
	})
}

// TestDTW_Positivity: distinct finite inputs have a positive finite distance.
func TestDTW_Positivity(t *testing.T) {
	pairs := [][2][]float64{
		{{1, 2, 3}, {1, 2, 4}},
		{{0}, {1e-3}},
		{{5, 5, 5, 5}, {5, 5, 6}},
	}
	for _, p := range pairs {
		d, err := dtw.Distance(p[0], p[1], dtw.WithPenaltyS1(0.25), dtw.WithPenaltyS2(4))
		require.NoError(t, err)
		assert.Greater(t, d, 0.0)
		assert.False(t, math.IsInf(d, 0))
	}
}

// TestWrappers_CallerOptionsUntouched: the path and matrix wrappers must not
// write into spare capacity of the caller's option slice.
func TestWrappers_CallerOptionsUntouched(t *testing.T) {
	a := []float64{0, 1, 2}
	b := []float64{0, 2}

	opts := make([]dtw.Option, 1, 4)
	opts[0] = dtw.WithPenaltyS1(0.5)
	spare := opts[:cap(opts)]

	_, err := dtw.WarpingPath(a, b, opts...)
	require.NoError(t, err)
	assert.Nil(t, spare[1], "WarpingPath wrote into the caller's slice")

	_, _, err = dtw.WarpingPathWithDistance(a, b, opts...)
	require.NoError(t, err)
	assert.Nil(t, spare[1], "WarpingPathWithDistance wrote into the caller's slice")

	_, _, err = dtw.WarpingPaths(a, b, opts...)
	require.NoError(t, err)
	assert.Nil(t, spare[1], "WarpingPaths wrote into the caller's slice")

	// A later distance-only call with the same slice stays distance-only.
	res, err := dtw.DTW(a, b, opts...)
	require.NoError(t, err)
	assert.Nil(t, res.Path)
	assert.Nil(t, res.Matrix)
}

// TestDTW_ReportedMemoryMode: Result.MemoryMode is the storage actually used.
func TestDTW_ReportedMemoryMode(t *testing.T) {
	a := []float64{0, 1, 2}
	b := []float64{0, 2}

	res, err := dtw.DTW(a, b, dtw.WithStrategy(dtw.Reference), dtw.WithMemoryMode(dtw.TwoRows))
	require.NoError(t, err)
	assert.Equal(t, dtw.FullMatrix, res.MemoryMode, "the reference tier always builds the full grid")

	res, err = dtw.DTW(a, b, dtw.WithStrategy(dtw.Optimized), dtw.WithMemoryMode(dtw.TwoRows))
	require.NoError(t, err)
	assert.Equal(t, dtw.TwoRows, res.MemoryMode)

	res, err = dtw.DTW(a, b, dtw.WithStrategy(dtw.Reference))
	require.NoError(t, err)
	assert.Equal(t, dtw.FullMatrix, res.MemoryMode)
}
