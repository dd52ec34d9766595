// SPDX-License-Identifier: MIT

package conformance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/series"
)

// Corpus is the root of a conformance file.
type Corpus struct {
	Version   int         `yaml:"version"`
	Tolerance Tolerance   `yaml:"tolerance"`
	Cases     []Case      `yaml:"cases"`
	Generated []Generated `yaml:"generated"`
}

// Tolerance bounds every numeric comparison: |a−b| ≤ atol + rtol·|b|.
type Tolerance struct {
	RTol float64 `yaml:"rtol"`
	ATol float64 `yaml:"atol"`
}

// Config is the per-entry DTW configuration. Unset penalties are left to
// dtw's own resolution (legacy penalty, then default).
type Config struct {
	Penalty    *float64 `yaml:"penalty,omitempty"`
	PenaltyS1  *float64 `yaml:"penalty_s1,omitempty"`
	PenaltyS2  *float64 `yaml:"penalty_s2,omitempty"`
	MemoryMode string   `yaml:"memory_mode,omitempty"` // "", full, tworows
}

// Case is a fixed input with expectations.
type Case struct {
	Name   string    `yaml:"name"`
	S1     []float64 `yaml:"s1"`
	S2     []float64 `yaml:"s2"`
	Config `yaml:",inline"`
	Expect Expect `yaml:"expect"`
}

// Expect lists what a case must produce. Zero values are not checked.
type Expect struct {
	// Distance is the expected distance; YAML .inf is accepted.
	Distance *float64 `yaml:"distance,omitempty"`
	// Path is the expected 0-based path as [i, j] pairs.
	Path [][2]int `yaml:"path,omitempty"`
	// Error names an expected failure: bad_input, empty_input, no_path,
	// path_needs_matrix.
	Error string `yaml:"error,omitempty"`
	// LessThan names another case whose distance must be strictly larger.
	LessThan string `yaml:"less_than,omitempty"`
}

// Generated is a synthesized input pair checked for tier equivalence.
type Generated struct {
	Name      string  `yaml:"name"`
	Kind      string  `yaml:"kind"` // ramp, pulse, chirp
	N         int     `yaml:"n"`
	M         int     `yaml:"m"` // second sequence: the first resampled to m samples
	Amplitude float64 `yaml:"amplitude,omitempty"`
	Noise     float64 `yaml:"noise,omitempty"`
	Seed      int64   `yaml:"seed,omitempty"`
	Config    `yaml:",inline"`
}

// Default tolerances, matching the dtw equivalence defaults.
const (
	DefaultRTol = dtw.DefaultEpsilon
	DefaultATol = dtw.DefaultAbsTolerance
)

// errorSentinels maps corpus error names to dtw sentinels.
var errorSentinels = map[string]error{
	"bad_input":         dtw.ErrBadInput,
	"empty_input":       dtw.ErrEmptyInput,
	"no_path":           dtw.ErrNoPath,
	"path_needs_matrix": dtw.ErrPathNeedsMatrix,
}

var memoryModes = map[string]dtw.MemoryMode{
	"full":    dtw.FullMatrix,
	"tworows": dtw.TwoRows,
}

// ApplyDefaults fills unset tolerances and the corpus version.
func ApplyDefaults(c *Corpus) {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Tolerance.RTol == 0 {
		c.Tolerance.RTol = DefaultRTol
	}
	if c.Tolerance.ATol == 0 {
		c.Tolerance.ATol = DefaultATol
	}
	for i := range c.Generated {
		if c.Generated[i].Amplitude == 0 {
			c.Generated[i].Amplitude = series.DefaultAmplitude
		}
		if c.Generated[i].M == 0 {
			c.Generated[i].M = c.Generated[i].N
		}
	}
}

// Validate checks structure only; numeric option values are left for dtw to
// reject, so that bad_input cases can be expressed.
func Validate(c *Corpus) error {
	if c.Version != 1 {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidCorpus, c.Version)
	}
	if !(c.Tolerance.RTol >= 0) || !(c.Tolerance.ATol >= 0) ||
		math.IsInf(c.Tolerance.RTol, 0) || math.IsInf(c.Tolerance.ATol, 0) {
		return fmt.Errorf("%w: tolerance must be finite and non-negative", ErrInvalidCorpus)
	}
	if len(c.Cases) == 0 && len(c.Generated) == 0 {
		return fmt.Errorf("%w: no cases", ErrInvalidCorpus)
	}

	names := make(map[string]bool, len(c.Cases)+len(c.Generated))
	claim := func(name string) error {
		if name == "" {
			return fmt.Errorf("%w: entry without a name", ErrInvalidCorpus)
		}
		if names[name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidCorpus, name)
		}
		names[name] = true
		return nil
	}

	for _, cs := range c.Cases {
		if err := claim(cs.Name); err != nil {
			return err
		}
		if err := cs.Config.validate(cs.Name); err != nil {
			return err
		}
		if cs.Expect.Error != "" {
			if _, ok := errorSentinels[cs.Expect.Error]; !ok {
				return fmt.Errorf("%w: case %q: unknown error %q", ErrInvalidCorpus, cs.Name, cs.Expect.Error)
			}
		}
	}
	for _, cs := range c.Cases {
		if ref := cs.Expect.LessThan; ref != "" && !names[ref] {
			return fmt.Errorf("%w: case %q: less_than names unknown case %q", ErrInvalidCorpus, cs.Name, ref)
		}
	}
	for _, g := range c.Generated {
		if err := claim(g.Name); err != nil {
			return err
		}
		if err := g.Config.validate(g.Name); err != nil {
			return err
		}
		switch g.Kind {
		case "ramp", "pulse", "chirp":
		default:
			return fmt.Errorf("%w: generated %q: unknown kind %q", ErrInvalidCorpus, g.Name, g.Kind)
		}
		if g.N < 1 || g.M < 1 {
			return fmt.Errorf("%w: generated %q: lengths must be positive", ErrInvalidCorpus, g.Name)
		}
		if !(g.Amplitude > 0) || !(g.Noise >= 0) {
			return fmt.Errorf("%w: generated %q: amplitude must be > 0, noise >= 0", ErrInvalidCorpus, g.Name)
		}
	}

	return nil
}

func (c Config) validate(name string) error {
	if _, ok := memoryModes[c.MemoryMode]; c.MemoryMode != "" && !ok {
		return fmt.Errorf("%w: %q: unknown memory_mode %q", ErrInvalidCorpus, name, c.MemoryMode)
	}

	return nil
}

// options translates the entry configuration into dtw options.
func (c Config) options() []dtw.Option {
	var opts []dtw.Option
	if c.Penalty != nil {
		opts = append(opts, dtw.WithPenalty(*c.Penalty))
	}
	if c.PenaltyS1 != nil {
		opts = append(opts, dtw.WithPenaltyS1(*c.PenaltyS1))
	}
	if c.PenaltyS2 != nil {
		opts = append(opts, dtw.WithPenaltyS2(*c.PenaltyS2))
	}
	if mode, ok := memoryModes[c.MemoryMode]; ok {
		opts = append(opts, dtw.WithMemoryMode(mode))
	}

	return opts
}

// sequences synthesizes the generated pair.
func (g Generated) sequences() ([]float64, []float64, error) {
	opts := []series.Option{series.WithAmplitude(g.Amplitude), series.WithSeed(g.Seed)}
	if g.Noise > 0 {
		opts = append(opts, series.WithNoise(g.Noise))
	}

	var s1 []float64
	switch g.Kind {
	case "ramp":
		s1 = series.Ramp(g.N, opts...)
	case "pulse":
		s1 = series.Pulse(g.N, opts...)
	default:
		s1 = series.Chirp(g.N, opts...)
	}
	s2, err := series.Stretch(s1, g.M)
	if err != nil {
		return nil, nil, err
	}

	return s1, s2, nil
}
