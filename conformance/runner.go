// SPDX-License-Identifier: MIT

package conformance

import (
	"errors"
	"fmt"
	"math"

	"github.com/baditaflorin/l"
	"github.com/katalvlaran/warp/dtw"
)

// Outcome is the result of one corpus entry.
type Outcome struct {
	Name      string
	Generated bool

	// Distance and Path come from the optimized tier.
	Distance float64
	Path     []dtw.Coord
	// Err is the error dtw returned, expected or not.
	Err error

	// Equivalence is nil when the entry is expected to be rejected.
	Equivalence *dtw.EquivalenceReport

	// Failures lists every unmet expectation; empty means passed.
	Failures []string
}

// Passed reports whether every expectation held.
func (o *Outcome) Passed() bool { return len(o.Failures) == 0 }

func (o *Outcome) failf(format string, args ...any) {
	o.Failures = append(o.Failures, fmt.Sprintf(format, args...))
}

// Report collects the outcomes of one corpus run, in corpus order
// (cases first, then generated entries).
type Report struct {
	Outcomes []Outcome
	Passed   int
	Failed   int
}

// OK reports whether every entry passed.
func (r *Report) OK() bool { return r.Failed == 0 }

// Runner evaluates corpora. The zero value is silent.
type Runner struct {
	logger l.Logger
}

// NewRunner returns a Runner that reports through logger (nil for silence).
func NewRunner(logger l.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run evaluates every entry of c. Entry failures are recorded in the report,
// never returned as an error.
func (r *Runner) Run(c *Corpus) *Report {
	rep := &Report{Outcomes: make([]Outcome, 0, len(c.Cases)+len(c.Generated))}
	tol := c.Tolerance

	for _, cs := range c.Cases {
		rep.Outcomes = append(rep.Outcomes, r.runCase(cs, tol))
	}
	r.checkOrdering(c, rep)
	for _, g := range c.Generated {
		rep.Outcomes = append(rep.Outcomes, r.runGenerated(g, tol))
	}

	for i := range rep.Outcomes {
		o := &rep.Outcomes[i]
		if o.Passed() {
			rep.Passed++
			continue
		}
		rep.Failed++
		if r.logger != nil {
			r.logger.Error("conformance: entry failed", "name", o.Name, "failures", o.Failures)
		}
	}
	if r.logger != nil {
		r.logger.Info("conformance: run complete",
			"entries", len(rep.Outcomes), "passed", rep.Passed, "failed", rep.Failed)
	}

	return rep
}

// runCase checks one fixed case with both tiers.
func (r *Runner) runCase(cs Case, tol Tolerance) Outcome {
	out := Outcome{Name: cs.Name}
	wantErr := errorSentinels[cs.Expect.Error]
	wantPath := cs.Expect.Path != nil || errors.Is(wantErr, dtw.ErrNoPath) || errors.Is(wantErr, dtw.ErrPathNeedsMatrix)

	var distances [2]float64
	for k, s := range []dtw.Strategy{dtw.Reference, dtw.Optimized} {
		opts := append(cs.options(), dtw.WithStrategy(s))
		var (
			d    float64
			path []dtw.Coord
			err  error
		)
		if wantPath {
			path, d, err = dtw.WarpingPathWithDistance(cs.S1, cs.S2, opts...)
		} else {
			d, err = dtw.Distance(cs.S1, cs.S2, opts...)
		}
		distances[k] = d
		if s == dtw.Optimized {
			out.Distance, out.Path, out.Err = d, path, err
		}
		if r.logger != nil {
			r.logger.Debug("conformance: case evaluated", "name", cs.Name, "strategy", s.String(), "distance", d)
		}

		switch {
		case wantErr != nil:
			if !errors.Is(err, wantErr) {
				out.failf("%s: want error %s, got %v", s, cs.Expect.Error, err)
			}
			continue
		case err != nil:
			out.failf("%s: unexpected error: %v", s, err)
			continue
		}
		if want := cs.Expect.Distance; want != nil && !approx(d, *want, tol) {
			out.failf("%s: distance %v, want %v", s, d, *want)
		}
		if cs.Expect.Path != nil && !samePath(path, cs.Expect.Path) {
			out.failf("%s: path %v, want %v", s, path, cs.Expect.Path)
		}
	}
	if wantErr == nil && out.Err == nil && !approx(distances[0], distances[1], tol) {
		out.failf("tiers disagree: reference %v, optimized %v", distances[0], distances[1])
	}

	// Inputs rejected at entry have nothing to compare.
	if errors.Is(wantErr, dtw.ErrBadInput) || errors.Is(wantErr, dtw.ErrEmptyInput) {
		return out
	}
	r.equivalence(&out, cs.S1, cs.S2, cs.Config, tol)

	return out
}

// runGenerated synthesizes the pair and checks tier equivalence.
func (r *Runner) runGenerated(g Generated, tol Tolerance) Outcome {
	out := Outcome{Name: g.Name, Generated: true}
	s1, s2, err := g.sequences()
	if err != nil {
		out.Err = err
		out.failf("generate: %v", err)
		return out
	}
	if out.Distance, out.Err = dtw.Distance(s1, s2, g.options()...); out.Err != nil {
		out.failf("distance: %v", out.Err)
		return out
	}
	r.equivalence(&out, s1, s2, g.Config, tol)

	return out
}

// equivalence runs dtw.CheckEquivalence under the corpus tolerance.
func (r *Runner) equivalence(out *Outcome, s1, s2 []float64, cfg Config, tol Tolerance) {
	opts := append(cfg.options(), dtw.WithEpsilon(tol.RTol), dtw.WithAbsTolerance(tol.ATol), dtw.WithLogger(r.logger))
	rep, err := dtw.CheckEquivalence(s1, s2, opts...)
	out.Equivalence = rep
	if err != nil {
		out.failf("equivalence: %v", err)
	}
}

// checkOrdering verifies less_than relations between cases.
func (r *Runner) checkOrdering(c *Corpus, rep *Report) {
	byName := make(map[string]*Outcome, len(rep.Outcomes))
	for i := range rep.Outcomes {
		byName[rep.Outcomes[i].Name] = &rep.Outcomes[i]
	}
	for _, cs := range c.Cases {
		if cs.Expect.LessThan == "" {
			continue
		}
		lo, hi := byName[cs.Name], byName[cs.Expect.LessThan]
		if lo.Err != nil || hi.Err != nil {
			lo.failf("less_than %q: a side failed", cs.Expect.LessThan)
			continue
		}
		if !(lo.Distance < hi.Distance) {
			lo.failf("distance %v is not below %q (%v)", lo.Distance, cs.Expect.LessThan, hi.Distance)
		}
	}
}

// approx compares under tol with equal infinities equal.
func approx(a, b float64, tol Tolerance) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return false
	}

	return math.Abs(a-b) <= tol.ATol+tol.RTol*math.Abs(b)
}

func samePath(got []dtw.Coord, want [][2]int) bool {
	if len(got) != len(want) {
		return false
	}
	for k := range got {
		if got[k].I != want[k][0] || got[k].J != want[k][1] {
			return false
		}
	}

	return true
}
