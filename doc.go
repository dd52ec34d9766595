// SPDX-License-Identifier: MIT

// Package warp aligns numeric sequences with Dynamic Time Warping under
// direction-dependent step penalties.
//
// Classical DTW charges nothing extra for repeating a sample. Here a vertical
// step (advance s1, repeat s2) costs penalty_s1 on top of the squared
// difference, and a horizontal step (advance s2, repeat s1) costs penalty_s2,
// so the caller decides which sequence may be stretched.
//
// Layout:
//
//	dtw/         : distance, warping path and cost matrix; reference and
//	               optimized evaluators with an equivalence check
//	matrix/      : dense float64 grid backing the cost matrix
//	series/      : deterministic test signals (ramp, pulse, chirp) and resampling
//	conformance/ : YAML case corpus and a runner that checks both evaluators
//	cmd/dtwctl/  : command-line front end
//	examples/    : runnable demos
//
// Quick start:
//
//	d, err := dtw.Distance(s1, s2, dtw.WithPenaltyS1(0.5), dtw.WithPenaltyS2(2))
//
//	go get github.com/katalvlaran/warp
package warp
