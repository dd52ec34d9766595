// SPDX-License-Identifier: MIT

package series

import (
	"math"
	"math/rand"
)

const tau = 2.0 * math.Pi

// Ramp returns n samples rising linearly from 0 to A:
//
//	yᵢ = A·i/(n−1) + trend·i + noise
//
// A single sample is 0. n < 1 yields nil.
//
// Complexity: O(n) time and memory.
func Ramp(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	c := newConfig(opts...)
	out := make([]float64, n)
	if n > 1 {
		step := c.amplitude / float64(n-1)
		for i := range out {
			out[i] = step * float64(i)
		}
		// Pin the endpoint against accumulated rounding.
		out[n-1] = c.amplitude
	}
	c.finish(out)

	return out
}

// Pulse returns a length-n pulse train of base frequency f0.
//
//   - Rectangular (default): A while frac(i·f0) < duty, else 0.
//   - Triangular: A·(1 − |2·frac(i·f0) − 1|).
//
// n < 1 yields nil.
//
// Complexity: O(n) time and memory.
func Pulse(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	c := newConfig(opts...)
	out := make([]float64, n)

	var frac float64
	for i := range out {
		frac = math.Mod(float64(i)*c.frequency, 1)
		switch {
		case c.triangular:
			out[i] = c.amplitude * (1 - math.Abs(2*frac-1))
		case frac < c.duty:
			out[i] = c.amplitude
		}
	}
	c.finish(out)

	return out
}

// Chirp returns a length-n linear chirp sweeping from f0 to f1:
//
//	fᵢ   = f0 + (f1 − f0)·i/(n−1)
//	θᵢ₊₁ = θᵢ + 2π·fᵢ
//	yᵢ   = A·sin(θᵢ) + trend·i + noise
//
// n < 1 yields nil.
//
// Complexity: O(n) time and memory.
func Chirp(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	c := newConfig(opts...)
	out := make([]float64, n)

	var theta, t float64
	for i := range out {
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = c.amplitude * math.Sin(theta)
		theta += tau * (c.frequency + (c.sweepEnd-c.frequency)*t)
	}
	c.finish(out)

	return out
}

// finish adds the trend and noise terms in place.
func (c config) finish(out []float64) {
	if c.trend != 0 {
		for i := range out {
			out[i] += c.trend * float64(i)
		}
	}
	if c.noise > 0 {
		addNoise(out, c.noise, c.random())
	}
}

func addNoise(out []float64, sigma float64, rng *rand.Rand) {
	for i := range out {
		out[i] += sigma * rng.NormFloat64()
	}
}
