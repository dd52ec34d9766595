// SPDX-License-Identifier: MIT

// Package dtw computes Dynamic Time Warping (DTW) distances between numeric
// sequences with independent penalties for the two non-diagonal moves.
//
// What is asymmetric DTW?
//
//	DTW aligns two sequences by warping the time axis to minimize the
//	accumulated pointwise cost. A vertical step repeats a sample of the
//	second sequence while the first advances; a horizontal step does the
//	opposite. Pricing those steps separately (penalty_s1, penalty_s2) lets a
//	caller say "stretching this sequence is cheap, stretching that one is
//	not", which matters when the two recordings have systematically
//	different sampling density.
//
// Key features:
//   - per-direction penalties; WithPenalty keeps the symmetric single-penalty form
//   - FullMatrix mode: O(N·M) memory, path and matrix available
//   - TwoRows mode: O(min(N,M)) memory for distance-only queries
//   - two evaluator tiers (Reference, Optimized) that must agree numerically,
//     checked by CheckEquivalence
//   - path helpers: ValidatePath, PathCost
//
// Usage:
//
//	import "github.com/katalvlaran/warp/dtw"
//
//	// distance only, rolling rows
//	d, err := dtw.Distance(a, b, dtw.WithPenaltyS1(2), dtw.WithPenaltyS2(0.5))
//
//	// path and distance
//	path, d, err := dtw.WarpingPathWithDistance(a, b, dtw.WithPenalty(1))
//
//	// full accumulated-cost matrix, reference tier
//	d, m, err := dtw.WarpingPaths(a, b, dtw.WithStrategy(dtw.Reference))
//
// Conventions:
//   - element cost (a−b)², penalties added unsquared, distance = sqrt(D[n][m])
//   - path coordinates are 0-based, forward order, {0,0} … {n-1,m-1}
//   - ties between equal-cost moves: diagonal, then vertical, then horizontal
//   - both inputs empty: distance 0, empty path; one empty: ErrEmptyInput
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(min(N,M)) (TwoRows)
//
// All functions are pure and safe for concurrent use.
package dtw
