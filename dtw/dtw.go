// SPDX-License-Identifier: MIT

package dtw

import (
	"github.com/baditaflorin/l"
	"github.com/katalvlaran/warp/matrix"
)

// DTW: Dynamic Time Warping with directional step penalties
//
// Description:
//
//	DTW measures similarity between two sequences that may vary in time or
//	speed by finding an optimal "warping path". Here the two non-diagonal
//	moves are priced independently: a vertical step (advance along s1 only)
//	costs penalty_s1, a horizontal step (advance along s2 only) costs
//	penalty_s2. This biases the alignment toward stretching one sequence
//	rather than the other.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(s1), m = len(s2). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n, j = 1..m:
//     c       = (s1[i-1] - s2[j-1])²
//     D[i][j] = min(D[i-1][j-1] + c,
//     D[i-1][j]   + c + penalty_s1,
//     D[i][j-1]   + c + penalty_s2)
//  4. distance = sqrt(D[n][m]).
//  5. If a path is requested, walk back from (n,m) to (1,1) preferring
//     diagonal, then vertical, then horizontal predecessors.
//
// With penalty_s1 = penalty_s2 = p this is the symmetric single-penalty DTW;
// with p = 0 it is classical DTW.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(min(n,m)) (TwoRows)
//
// Errors:
//   - ErrBadInput (+ specific sentinel): invalid option values.
//   - ErrEmptyInput     : exactly one input is empty.
//   - ErrPathNeedsMatrix: path/matrix requested with MemoryMode=TwoRows.
//   - ErrNoPath         : path requested, but D[n][m] is +Inf.
//
// Example:
//
//	res, err := DTW(a, b, WithPenaltyS1(2), WithPenaltyS2(0.5), WithPath())
func DTW(s1, s2 []float64, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	p := o.penalties()
	res := &Result{Penalties: p, Strategy: o.strategy, MemoryMode: o.memory}

	n, m := len(s1), len(s2)
	if (n == 0) != (m == 0) {
		return nil, ErrEmptyInput
	}
	if o.memory == TwoRows && (o.wantPath || o.wantMatrix) {
		return nil, ErrPathNeedsMatrix
	}
	// The reference tier has no rolling-row variant.
	if o.strategy == Reference {
		res.MemoryMode = FullMatrix
	}
	logCall(o.logger, n, m, o, p)
	warnNonFinite(o.logger, "s1", s1)
	warnNonFinite(o.logger, "s2", s2)

	ev := o.evaluator()
	if o.wantMatrix {
		if res.Matrix, err = ev.Matrix(s1, s2, p); err != nil {
			return nil, err
		}
	}

	switch {
	case o.wantPath:
		res.Path, res.Distance, err = ev.Path(s1, s2, p)
		if err != nil {
			return nil, err
		}
		if res.Path == nil {
			res.Path = []Coord{} // both inputs empty
		}
	case res.Matrix != nil:
		res.Distance, err = terminalDistance(res.Matrix)
		if err != nil {
			return nil, err
		}
	case o.memory == FullMatrix:
		d, err := ev.Matrix(s1, s2, p)
		if err != nil {
			return nil, err
		}
		if res.Distance, err = terminalDistance(d); err != nil {
			return nil, err
		}
	default:
		res.Distance = ev.Distance(s1, s2, p)
	}

	return res, nil
}

// Distance returns the DTW distance between s1 and s2.
//
// WithPenalty broadcasts to both directions when given alone; WithPenaltyS1
// and WithPenaltyS2 override it per direction. WithStrategy (or
// WithOptimized) selects the evaluator tier.
func Distance(s1, s2 []float64, opts ...Option) (float64, error) {
	res, err := DTW(s1, s2, opts...)
	if err != nil {
		return 0, err
	}

	return res.Distance, nil
}

// WarpingPath returns one optimal warping path (0-based, forward order).
func WarpingPath(s1, s2 []float64, opts ...Option) ([]Coord, error) {
	path, _, err := WarpingPathWithDistance(s1, s2, opts...)

	return path, err
}

// WarpingPathWithDistance returns one optimal warping path together with
// its distance.
func WarpingPathWithDistance(s1, s2 []float64, opts ...Option) ([]Coord, float64, error) {
	res, err := DTW(s1, s2, withExtra(opts, WithPath())...)
	if err != nil {
		return nil, 0, err
	}

	return res.Path, res.Distance, nil
}

// WarpingPaths returns the distance and the full (n+1)x(m+1) accumulated-cost
// matrix. Row 0 and column 0 are the boundary sentinels.
func WarpingPaths(s1, s2 []float64, opts ...Option) (float64, *matrix.Dense, error) {
	res, err := DTW(s1, s2, withExtra(opts, WithMatrix())...)
	if err != nil {
		return 0, nil, err
	}

	return res.Distance, res.Matrix, nil
}

// withExtra returns opts followed by extra in a new backing array, leaving
// the caller's slice untouched.
func withExtra(opts []Option, extra ...Option) []Option {
	out := make([]Option, 0, len(opts)+len(extra))
	out = append(out, opts...)

	return append(out, extra...)
}

// terminalDistance reads D[n][m] from a cost matrix.
func terminalDistance(d *matrix.Dense) (float64, error) {
	v, err := d.At(d.Rows()-1, d.Cols()-1)
	if err != nil {
		return 0, err
	}

	return finalDistance(v), nil
}

// logCall emits the call shape at debug level.
func logCall(log l.Logger, n, m int, o Options, p Penalties) {
	if log == nil {
		return
	}
	log.Debug("dtw: evaluate",
		"n", n,
		"m", m,
		"strategy", o.strategy.String(),
		"memory_mode", o.memory.String(),
		"penalty_s1", p.S1,
		"penalty_s2", p.S2,
		"path", o.wantPath,
		"matrix", o.wantMatrix,
	)
}

// warnNonFinite reports non-finite samples. They are not an error: their
// costs propagate as +Inf through both evaluator tiers.
func warnNonFinite(log l.Logger, name string, s []float64) {
	if log == nil {
		return
	}
	if count, first := nonFinite(s); count > 0 {
		log.Warn("dtw: non-finite samples propagate as +Inf cost",
			"sequence", name,
			"count", count,
			"first_index", first,
		)
	}
}
