// SPDX-License-Identifier: MIT

package dtw

import (
	"math"

	"github.com/katalvlaran/warp/matrix"
)

// ReferenceEvaluator is the straightforward tier: a [][]float64 grid filled
// cell by cell, and a path recovered by backtracking the finished grid.
// It favors readability over speed and is the baseline the optimized tier
// is checked against.
//
// Epsilon is the relative tolerance used when matching a predecessor's
// recomputed step cost against D[i][j]; zero means exact equality.
type ReferenceEvaluator struct {
	Epsilon float64
}

// Strategy implements Evaluator.
func (ReferenceEvaluator) Strategy() Strategy { return Reference }

// Distance implements Evaluator. The reference tier always builds the full grid.
func (r ReferenceEvaluator) Distance(s1, s2 []float64, p Penalties) float64 {
	d := referenceGrid(s1, s2, p)

	return finalDistance(d[len(s1)][len(s2)])
}

// Matrix implements Evaluator.
func (r ReferenceEvaluator) Matrix(s1, s2 []float64, p Penalties) (*matrix.Dense, error) {
	d := referenceGrid(s1, s2, p)
	out, err := matrix.NewDistanceDense(len(s1)+1, len(s2)+1)
	if err != nil {
		return nil, err
	}
	for i := range d {
		for j := range d[i] {
			if err = out.Set(i, j, d[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Path implements Evaluator.
func (r ReferenceEvaluator) Path(s1, s2 []float64, p Penalties) ([]Coord, float64, error) {
	d := referenceGrid(s1, s2, p)
	n, m := len(s1), len(s2)
	if n == 0 && m == 0 {
		return nil, 0, nil
	}
	if math.IsInf(d[n][m], 1) {
		return nil, inf, ErrNoPath
	}
	path, err := backtrackGrid(d, s1, s2, p, r.Epsilon)
	if err != nil {
		return nil, inf, err
	}

	return path, finalDistance(d[n][m]), nil
}

// referenceGrid fills the (n+1)x(m+1) accumulated-cost grid.
//
// Algorithm:
//  1. D[0][0] = 0; D[i][0] = D[0][j] = +Inf for i,j > 0.
//  2. For i = 1..n, j = 1..m:
//     c    = (s1[i-1] − s2[j-1])²
//     diag = D[i-1][j-1] + c
//     vert = D[i-1][j]   + c + p.S1
//     horz = D[i][j-1]   + c + p.S2
//     D[i][j] = min(diag, vert, horz)
//
// Complexity: O(n·m) time and memory.
func referenceGrid(s1, s2 []float64, p Penalties) [][]float64 {
	n, m := len(s1), len(s2)
	d := make([][]float64, n+1)
	for i := range d {
		d[i] = make([]float64, m+1)
		for j := range d[i] {
			d[i][j] = math.Inf(1)
		}
	}
	d[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			c := sqDiff(s1[i-1], s2[j-1])
			diag := d[i-1][j-1] + c
			vert := d[i-1][j] + c + p.S1
			horz := d[i][j-1] + c + p.S2
			d[i][j] = math.Min(diag, math.Min(vert, horz))
		}
	}

	return d
}
