// SPDX-License-Identifier: MIT

package dtw

import "math"

// step is the move that reached a cell.
type step uint8

const (
	stepNone       step = iota // origin or unreachable
	stepDiagonal               // (i-1, j-1) → (i, j)
	stepVertical               // (i-1, j)   → (i, j), charges S1
	stepHorizontal             // (i, j-1)   → (i, j), charges S2
)

// inf is the sentinel for unreachable cells.
var inf = math.Inf(1)

// sqDiff is the element distance: (a−b)².
// A NaN result (NaN sample, or Inf−Inf) is mapped to +Inf so that
// non-finite input propagates as an infinite cost and comparisons never
// see NaN.
func sqDiff(a, b float64) float64 {
	d := a - b
	c := d * d
	if c != c {
		return inf
	}

	return c
}

// best3 returns the minimum of the three step costs and the step that
// attains it. Ties prefer diagonal, then vertical, then horizontal.
func best3(diag, vert, horz float64) (float64, step) {
	if diag <= vert && diag <= horz {
		return diag, stepDiagonal
	}
	if vert <= horz {
		return vert, stepVertical
	}

	return horz, stepHorizontal
}

// finalDistance converts the accumulated squared cost into the reported distance.
func finalDistance(acc float64) float64 {
	return math.Sqrt(acc)
}

// nonFinite counts NaN/±Inf samples and returns the first offending index (-1 if none).
func nonFinite(s []float64) (count, first int) {
	first = -1
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if first < 0 {
				first = i
			}
			count++
		}
	}

	return count, first
}

// within reports |a−b| ≤ atol + rtol·|b|, with equal infinities equal. The
// bound is the one matrix.AllClose applies per cell.
func within(a, b, rtol, atol float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
