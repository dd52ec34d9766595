// SPDX-License-Identifier: MIT

// Package series generates deterministic numeric sequences for DTW fixtures,
// demos and conformance runs.
//
// Generators:
//   - Ramp:  linear rise 0..A over n samples
//   - Pulse: rectangular or triangular pulse train
//   - Chirp: linear frequency sweep f0 → f1
//
// Every generator accepts the same functional options (amplitude, frequency,
// trend, noise, seeding). Noise is drawn from an explicit RNG: WithRand for a
// shared stream, WithSeed for a private one, DefaultSeed otherwise, so a fixed
// option set always yields the same samples.
//
// Stretch resamples a sequence to a new length by linear interpolation; it is
// the usual way to build a pair of the same signal at two sampling densities,
// which is what asymmetric DTW penalties are for.
//
//	dense := series.Ramp(9, series.WithAmplitude(8))   // 0 1 2 … 8
//	sparse, _ := series.Stretch(dense, 5)               // 0 2 4 6 8
package series
