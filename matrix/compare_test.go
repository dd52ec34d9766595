// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/warp/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type and force the At-based fallback.
type hide struct{ matrix.Matrix }

// grid builds a distance-policy Dense from literal rows.
func grid(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDistanceDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, r := range rows {
		for j, v := range r {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

func TestAllClose(t *testing.T) {
	inf := math.Inf(1)
	a := grid(t, [][]float64{{0, inf}, {inf, 1}})
	b := grid(t, [][]float64{{0, inf}, {inf, 1 + 1e-12}})
	c := grid(t, [][]float64{{0, inf}, {2, 1}})

	ok, err := matrix.AllClose(a, b, 1e-9, 1e-6)
	require.NoError(t, err)
	assert.True(t, ok, "equal infinities and tiny drift are close")

	ok, err = matrix.AllClose(a, c, 1e-9, 1e-6)
	require.NoError(t, err)
	assert.False(t, ok, "+Inf against finite is never close")

	ok, err = matrix.AllClose(hide{a}, hide{b}, 1e-9, 1e-6)
	require.NoError(t, err)
	assert.True(t, ok, "generic path agrees with the Dense fast path")
}

func TestAllCloseErrors(t *testing.T) {
	a := grid(t, [][]float64{{0, 1}})
	b := grid(t, [][]float64{{0}, {1}})

	_, err := matrix.AllClose(a, b, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(nil, b, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.AllClose(a, typedNil, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.AllClose(a, a, math.NaN(), 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestMaxAbsDiff(t *testing.T) {
	inf := math.Inf(1)
	a := grid(t, [][]float64{{0, inf, 3}, {inf, 1, 2}})
	b := grid(t, [][]float64{{0, inf, 3.5}, {inf, 1, 4}})

	d, row, col, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)

	d, _, _, err = matrix.MaxAbsDiff(a, a.Clone())
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	c := grid(t, [][]float64{{0, 1, 3}, {inf, 1, 2}})
	d, row, col, err = matrix.MaxAbsDiff(hide{a}, c)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
	assert.Equal(t, [2]int{0, 1}, [2]int{row, col})
}
