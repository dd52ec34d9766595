// SPDX-License-Identifier: MIT

// Package dtw: functional configuration.
//
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions, the single resolution step executed once at call entry.
//
// Penalty resolution (never implicit global defaults):
//
//	penalty_s1 = WithPenaltyS1 value  if given
//	           = WithPenalty value    if given
//	           = DefaultPenalty       otherwise
//
// and likewise for penalty_s2. Directional values win over the legacy
// symmetric one; the legacy value only fills directions left unset.
//
// Setters never panic. Invalid values are recorded and rejected by
// gatherOptions with an ErrBadInput-category error, before any computation.
package dtw

import (
	"math"

	"github.com/baditaflorin/l"
	"github.com/katalvlaran/warp/matrix"
)

// Defaults (single source of truth for zero-option behavior).
const (
	// DefaultPenalty is the penalty of an unset direction: classical DTW.
	DefaultPenalty = 0.0

	// DefaultStrategy is the evaluator tier used when none is requested.
	DefaultStrategy = Optimized

	// DefaultEpsilon is the relative tolerance for backtracking equality
	// checks and for the equivalence layer.
	DefaultEpsilon = matrix.DefaultEpsilon

	// DefaultAbsTolerance is the absolute tolerance of the equivalence layer.
	DefaultAbsTolerance = matrix.DefaultAbsTolerance
)

// Option mutates internal options. Later options override earlier ones.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	penalty    float64 // legacy symmetric penalty
	penaltyS1  float64 // vertical-step penalty
	penaltyS2  float64 // horizontal-step penalty
	hasPenalty bool
	hasS1      bool
	hasS2      bool

	strategy  Strategy
	memory    MemoryMode
	memorySet bool // memory mode chosen explicitly by the caller

	eps    float64
	absTol float64

	wantPath   bool
	wantMatrix bool

	logger l.Logger // nil ⇒ silent
}

// WithPenalty sets the legacy symmetric penalty. It fills both directions
// unless WithPenaltyS1/WithPenaltyS2 set them explicitly.
func WithPenalty(p float64) Option {
	return func(o *Options) {
		o.penalty = p
		o.hasPenalty = true
	}
}

// WithPenaltyS1 sets the penalty charged on a vertical step (advance along
// the first sequence only).
func WithPenaltyS1(p float64) Option {
	return func(o *Options) {
		o.penaltyS1 = p
		o.hasS1 = true
	}
}

// WithPenaltyS2 sets the penalty charged on a horizontal step (advance along
// the second sequence only).
func WithPenaltyS2(p float64) Option {
	return func(o *Options) {
		o.penaltyS2 = p
		o.hasS2 = true
	}
}

// WithPenalties sets both directional penalties from a resolved pair.
func WithPenalties(p Penalties) Option {
	return func(o *Options) {
		o.penaltyS1, o.penaltyS2 = p.S1, p.S2
		o.hasS1, o.hasS2 = true, true
	}
}

// WithStrategy selects the evaluator tier.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.strategy = s }
}

// WithOptimized is shorthand for WithStrategy(Optimized) when use is true and
// WithStrategy(Reference) otherwise.
func WithOptimized(use bool) Option {
	if use {
		return WithStrategy(Optimized)
	}

	return WithStrategy(Reference)
}

// WithMemoryMode forces a storage mode. TwoRows combined with a path or
// matrix request fails with ErrPathNeedsMatrix.
func WithMemoryMode(m MemoryMode) Option {
	return func(o *Options) {
		o.memory = m
		o.memorySet = true
	}
}

// WithEpsilon sets the relative tolerance used by matrix backtracking and by
// CheckEquivalence.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.eps = eps }
}

// WithAbsTolerance sets the absolute tolerance used by CheckEquivalence.
func WithAbsTolerance(tol float64) Option {
	return func(o *Options) { o.absTol = tol }
}

// WithPath requests the warping path in Result.Path.
func WithPath() Option {
	return func(o *Options) { o.wantPath = true }
}

// WithMatrix requests the accumulated-cost matrix in Result.Matrix.
func WithMatrix() Option {
	return func(o *Options) { o.wantMatrix = true }
}

// WithLogger injects a structured logger. Without it the package is silent.
func WithLogger(logger l.Logger) Option {
	return func(o *Options) { o.logger = logger }
}

// defaultOptions returns the zero-option configuration.
func defaultOptions() Options {
	return Options{
		penalty:  DefaultPenalty,
		strategy: DefaultStrategy,
		memory:   TwoRows,
		eps:      DefaultEpsilon,
		absTol:   DefaultAbsTolerance,
	}
}

// gatherOptions applies opts over the defaults and validates the result.
//
// Validation order: penalties (legacy, s1, s2) → tolerances → strategy →
// memory mode. The first violation is returned.
//
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.hasPenalty {
		if err := validatePenalty("penalty", o.penalty); err != nil {
			return o, err
		}
	}
	if o.hasS1 {
		if err := validatePenalty("penalty_s1", o.penaltyS1); err != nil {
			return o, err
		}
	}
	if o.hasS2 {
		if err := validatePenalty("penalty_s2", o.penaltyS2); err != nil {
			return o, err
		}
	}
	if err := validateTolerance("epsilon", o.eps); err != nil {
		return o, err
	}
	if err := validateTolerance("abs_tolerance", o.absTol); err != nil {
		return o, err
	}
	if o.strategy != Reference && o.strategy != Optimized {
		return o, configErrorf("strategy", int(o.strategy), ErrUnknownStrategy)
	}
	if o.memory != FullMatrix && o.memory != TwoRows {
		return o, configErrorf("memory_mode", int(o.memory), ErrUnknownMemoryMode)
	}
	// Without an explicit choice, storage follows the request.
	if !o.memorySet && (o.wantPath || o.wantMatrix) {
		o.memory = FullMatrix
	}

	return o, nil
}

// penalties returns the resolved per-direction pair. Call only on validated Options.
func (o Options) penalties() Penalties {
	p := Penalties{S1: DefaultPenalty, S2: DefaultPenalty}
	if o.hasPenalty {
		p.S1, p.S2 = o.penalty, o.penalty
	}
	if o.hasS1 {
		p.S1 = o.penaltyS1
	}
	if o.hasS2 {
		p.S2 = o.penaltyS2
	}

	return p
}

// ResolvePenalties runs the configuration-resolution step on its own and
// returns the effective per-direction penalties.
func ResolvePenalties(opts ...Option) (Penalties, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return Penalties{}, err
	}

	return o.penalties(), nil
}

// validatePenalty rejects NaN and negative values; +Inf is a legal "forbid".
func validatePenalty(field string, p float64) error {
	if math.IsNaN(p) {
		return configErrorf(field, p, ErrNaNPenalty)
	}
	if p < 0 {
		return configErrorf(field, p, ErrNegativePenalty)
	}

	return nil
}

// validateTolerance rejects negative, NaN and infinite tolerances.
func validateTolerance(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return configErrorf(field, v, ErrBadEpsilon)
	}

	return nil
}
