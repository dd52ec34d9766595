// SPDX-License-Identifier: MIT

// Package series: functional options.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs
//     (non-positive amplitude or frequency, negative noise, duty outside [0,1]).
//     Generators themselves never panic.
//   - Later options override earlier ones.
//   - Randomness flows only through config.rng; no package-level RNG.
package series

import "math/rand"

// Defaults shared by all generators.
const (
	// DefaultAmplitude is the peak value A.
	DefaultAmplitude = 1.0

	// DefaultFrequency is the pulse base frequency f0 in cycles/sample (period 8).
	DefaultFrequency = 0.125

	// DefaultSweepEnd is the chirp end frequency f1 in cycles/sample.
	DefaultSweepEnd = 0.25

	// DefaultDuty is the rectangular pulse duty cycle.
	DefaultDuty = 0.5

	// DefaultSeed seeds the noise stream when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 1
)

// Option customizes a generator by mutating a config before sampling.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates every generator knob. Passed by value to generators.
type config struct {
	rng *rand.Rand

	amplitude  float64 // > 0
	frequency  float64 // > 0, cycles/sample
	sweepEnd   float64 // > 0, chirp only
	duty       float64 // [0,1], rectangular pulse only
	triangular bool
	trend      float64 // added as trend*i
	noise      float64 // Gaussian sigma ≥ 0
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	c := config{
		amplitude: DefaultAmplitude,
		frequency: DefaultFrequency,
		sweepEnd:  DefaultSweepEnd,
		duty:      DefaultDuty,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// random returns the configured stream or a private one seeded with DefaultSeed.
func (c config) random() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(DefaultSeed))
}

// WithRand provides an explicit RNG, shared across calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("series: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed gives the call a private RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAmplitude sets the peak value A (> 0). Panics if A <= 0.
func WithAmplitude(a float64) Option {
	if !(a > 0) {
		panic("series: WithAmplitude(A<=0)")
	}

	return func(c *config) { c.amplitude = a }
}

// WithFrequency sets the base frequency f0 (> 0, cycles/sample) for pulses
// and the chirp start frequency. Panics if f0 <= 0.
func WithFrequency(f0 float64) Option {
	if !(f0 > 0) {
		panic("series: WithFrequency(f0<=0)")
	}

	return func(c *config) { c.frequency = f0 }
}

// WithSweepEnd sets the chirp end frequency f1 (> 0). Panics if f1 <= 0.
func WithSweepEnd(f1 float64) Option {
	if !(f1 > 0) {
		panic("series: WithSweepEnd(f1<=0)")
	}

	return func(c *config) { c.sweepEnd = f1 }
}

// WithDuty sets the rectangular duty cycle in [0,1]. Panics outside the range.
func WithDuty(d float64) Option {
	if !(d >= 0 && d <= 1) {
		panic("series: WithDuty(d∉[0,1])")
	}

	return func(c *config) { c.duty = d }
}

// WithTriangular switches Pulse to a triangular envelope.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// WithTrend adds trend*i to sample i. Any real value is accepted.
func WithTrend(k float64) Option {
	return func(c *config) { c.trend = k }
}

// WithNoise sets the Gaussian noise sigma (>= 0). Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if !(sigma >= 0) {
		panic("series: WithNoise(sigma<0)")
	}

	return func(c *config) { c.noise = sigma }
}
