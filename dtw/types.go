// SPDX-License-Identifier: MIT

// Package dtw defines the value types shared by both evaluator tiers.
package dtw

import "github.com/katalvlaran/warp/matrix"

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix: keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows: only keep the current and previous row.
//     Reduces memory to O(min(n, m)), but cannot recover the path.
//     Use when you only need the distance.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery, uses O(min(N,M)) memory.
	TwoRows
)

// String returns the mode name as used in logs and CLI flags.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "full"
	case TwoRows:
		return "tworows"
	default:
		return "unknown"
	}
}

// Strategy selects the evaluator tier.
//
//   - Reference: plain [][]float64 grid, explicit three-way min,
//     path recovered by backtracking the finished matrix.
//   - Optimized: flat row-major buffer, rolling rows for distance-only
//     queries, path recovered from a direction trace recorded in the sweep.
//
// Both tiers implement the same recurrence and must agree numerically.
type Strategy int

const (
	// Reference is the straightforward evaluator used as the parity baseline.
	Reference Strategy = iota

	// Optimized is the performance evaluator used by default.
	Optimized
)

// String returns the strategy name as used in logs and CLI flags.
func (s Strategy) String() string {
	switch s {
	case Reference:
		return "reference"
	case Optimized:
		return "optimized"
	default:
		return "unknown"
	}
}

// Coord is one aligned index pair of a warping path (0-based).
// I indexes the first sequence, J the second.
type Coord struct {
	I int
	J int
}

// Penalties is the resolved, per-direction penalty configuration.
//
//   - S1 is charged on a vertical step (advance along the first sequence only).
//   - S2 is charged on a horizontal step (advance along the second sequence only).
//
// Diagonal steps carry no penalty. Both values are ≥ 0; +Inf forbids the step.
type Penalties struct {
	S1 float64
	S2 float64
}

// Symmetric reports whether both directions carry the same penalty.
func (p Penalties) Symmetric() bool { return p.S1 == p.S2 }

// Result is the outcome of DTW.
type Result struct {
	// Distance is sqrt(D[n][m]); +Inf when no alignment exists.
	Distance float64

	// Path is the optimal warping path, nil unless requested.
	Path []Coord

	// Matrix is the (n+1)x(m+1) accumulated-cost matrix, nil unless requested.
	Matrix *matrix.Dense

	// Penalties are the effective per-direction penalties after resolution.
	Penalties Penalties

	// Strategy is the evaluator tier that produced the result.
	Strategy Strategy

	// MemoryMode is the storage mode the distance was actually computed
	// with. The reference tier always reports FullMatrix, whatever was requested.
	MemoryMode MemoryMode
}
