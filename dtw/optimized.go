// SPDX-License-Identifier: MIT

package dtw

import "github.com/katalvlaran/warp/matrix"

// OptimizedEvaluator is the performance tier.
//
//   - Distance rolls two rows of length min(n,m)+1 (the problem is transposed
//     when the second sequence is longer, swapping the directional penalties).
//   - Matrix and Path sweep a flat row-major buffer through hoisted row
//     slices; Path records a one-byte direction trace in the same pass and
//     walks it back, so no step cost is recomputed.
//
// Every cell is evaluated with the same float operations, in the same order,
// as ReferenceEvaluator; results are expected to be bit-identical.
type OptimizedEvaluator struct{}

// Strategy implements Evaluator.
func (OptimizedEvaluator) Strategy() Strategy { return Optimized }

// Distance implements Evaluator in O(min(n,m)) memory.
func (OptimizedEvaluator) Distance(s1, s2 []float64, p Penalties) float64 {
	if len(s2) > len(s1) {
		s1, s2 = s2, s1
		p = Penalties{S1: p.S2, S2: p.S1}
	}
	n, m := len(s1), len(s2)
	if n == 0 && m == 0 {
		return 0
	}
	if m == 0 {
		return inf
	}

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	prev[0] = 0
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	var (
		i, j int
		a, c float64
	)
	for i = 1; i <= n; i++ {
		curr[0] = inf
		a = s1[i-1]
		for j = 1; j <= m; j++ {
			c = sqDiff(a, s2[j-1])
			curr[j], _ = best3(prev[j-1]+c, prev[j]+c+p.S1, curr[j-1]+c+p.S2)
		}
		prev, curr = curr, prev
	}

	return finalDistance(prev[m])
}

// Matrix implements Evaluator.
func (o OptimizedEvaluator) Matrix(s1, s2 []float64, p Penalties) (*matrix.Dense, error) {
	d, _, err := o.sweep(s1, s2, p, false)

	return d, err
}

// Path implements Evaluator.
func (o OptimizedEvaluator) Path(s1, s2 []float64, p Penalties) ([]Coord, float64, error) {
	n, m := len(s1), len(s2)
	if n == 0 && m == 0 {
		return nil, 0, nil
	}
	d, trace, err := o.sweep(s1, s2, p, true)
	if err != nil {
		return nil, inf, err
	}
	last, err := d.Row(n)
	if err != nil {
		return nil, inf, err
	}
	if last[m] == inf {
		return nil, inf, ErrNoPath
	}
	path, err := walkTrace(trace, n, m)
	if err != nil {
		return nil, inf, err
	}

	return path, finalDistance(last[m]), nil
}

// sweep fills the full matrix in one pass and, when trace is set, records
// the winning step of every interior cell at offset (i-1)*m + (j-1).
//
// Complexity: O(n·m) time; O(n·m) memory (+ n·m bytes with trace).
func (OptimizedEvaluator) sweep(s1, s2 []float64, p Penalties, trace bool) (*matrix.Dense, []step, error) {
	n, m := len(s1), len(s2)
	d, err := matrix.NewDistanceDense(n+1, m+1)
	if err != nil {
		return nil, nil, err
	}
	if err = d.Fill(inf); err != nil {
		return nil, nil, err
	}
	if err = d.Set(0, 0, 0); err != nil {
		return nil, nil, err
	}

	var steps []step
	if trace {
		steps = make([]step, n*m)
	}

	prev, err := d.Row(0)
	if err != nil {
		return nil, nil, err
	}
	var (
		curr []float64
		i, j int
		a, c float64
		mv   step
		base int
	)
	for i = 1; i <= n; i++ {
		if curr, err = d.Row(i); err != nil {
			return nil, nil, err
		}
		a = s1[i-1]
		base = (i - 1) * m
		for j = 1; j <= m; j++ {
			c = sqDiff(a, s2[j-1])
			curr[j], mv = best3(prev[j-1]+c, prev[j]+c+p.S1, curr[j-1]+c+p.S2)
			if trace {
				steps[base+j-1] = mv
			}
		}
		prev = curr
	}

	return d, steps, nil
}
