// SPDX-License-Identifier: MIT

package dtw

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/warp/matrix"
)

// EquivalenceReport records one side-by-side run of both evaluator tiers on
// the same input and configuration.
type EquivalenceReport struct {
	Penalties Penalties

	// Distances from each tier; DistanceDiff is |Reference − Optimized|
	// (0 when both are the same infinity).
	ReferenceDistance float64
	OptimizedDistance float64
	DistanceDiff      float64

	// MatrixDiff is the largest element-wise difference of the two
	// accumulated-cost matrices, found at (MatrixRow, MatrixCol).
	// MatrixClose reports whether every cell agreed within tolerance.
	MatrixDiff  float64
	MatrixRow   int
	MatrixCol   int
	MatrixClose bool

	// Path checks run only when a finite path exists.
	PathsChecked      bool
	ReferencePathCost float64
	OptimizedPathCost float64
	PathsIdentical    bool
}

// Agree reports whether distances and path costs lie within tolerance and
// the matrices agreed when the report was built.
func (r *EquivalenceReport) Agree(rtol, atol float64) bool {
	return r.violation(rtol, atol) == nil
}

// violation returns the first divergence found, or nil.
func (r *EquivalenceReport) violation(rtol, atol float64) error {
	if !within(r.ReferenceDistance, r.OptimizedDistance, rtol, atol) {
		return fmt.Errorf("%w: distance %v vs %v", ErrEquivalenceViolation, r.ReferenceDistance, r.OptimizedDistance)
	}
	if !r.MatrixClose {
		return fmt.Errorf("%w: matrix cell (%d,%d) differs by %v",
			ErrEquivalenceViolation, r.MatrixRow, r.MatrixCol, r.MatrixDiff)
	}
	if !r.PathsChecked {
		return nil
	}
	if !within(r.ReferencePathCost, r.ReferenceDistance, rtol, atol) {
		return fmt.Errorf("%w: reference path costs %v, distance is %v",
			ErrEquivalenceViolation, r.ReferencePathCost, r.ReferenceDistance)
	}
	if !within(r.OptimizedPathCost, r.OptimizedDistance, rtol, atol) {
		return fmt.Errorf("%w: optimized path costs %v, distance is %v",
			ErrEquivalenceViolation, r.OptimizedPathCost, r.OptimizedDistance)
	}

	return nil
}

// CheckEquivalence evaluates s1 and s2 with both tiers under the same options
// and verifies that they agree:
//
//  1. distances within |ref−opt| ≤ atol + rtol·|opt|, equal
//     infinities being equal;
//  2. accumulated-cost matrices element-wise within the same bound;
//  3. when a finite path exists, both paths are valid and each one's
//     re-evaluated cost matches its tier's distance.
//
// Paths need not be identical: equal-cost alignments may be settled
// differently under a positive backtracking tolerance.
// PathsIdentical records whether they were.
//
// Strategy and memory-mode options are ignored; WithEpsilon and
// WithAbsTolerance set rtol and atol. Each tier is also queried through its
// streaming Distance, so the rolling-row path is covered.
//
// Errors: configuration errors as DTW; ErrEmptyInput; ErrEquivalenceViolation
// (the report is returned alongside it).
func CheckEquivalence(s1, s2 []float64, opts ...Option) (*EquivalenceReport, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if (len(s1) == 0) != (len(s2) == 0) {
		return nil, ErrEmptyInput
	}
	p := o.penalties()
	ref := ReferenceEvaluator{Epsilon: o.eps}
	opt := OptimizedEvaluator{}
	rep := &EquivalenceReport{Penalties: p}

	refM, err := ref.Matrix(s1, s2, p)
	if err != nil {
		return nil, err
	}
	optM, err := opt.Matrix(s1, s2, p)
	if err != nil {
		return nil, err
	}
	if rep.MatrixDiff, rep.MatrixRow, rep.MatrixCol, err = matrix.MaxAbsDiff(refM, optM); err != nil {
		return nil, err
	}
	if rep.MatrixClose, err = matrix.AllClose(refM, optM, o.eps, o.absTol); err != nil {
		return nil, err
	}
	if rep.ReferenceDistance, err = terminalDistance(refM); err != nil {
		return nil, err
	}
	rep.OptimizedDistance = opt.Distance(s1, s2, p)
	rep.DistanceDiff = distanceDiff(rep.ReferenceDistance, rep.OptimizedDistance)

	// The streaming query must match the optimized tier's own matrix.
	if optTerm, err := terminalDistance(optM); err != nil {
		return nil, err
	} else if !within(optTerm, rep.OptimizedDistance, o.eps, o.absTol) {
		return rep, o.report(fmt.Errorf("%w: rolling-row distance %v vs matrix %v",
			ErrEquivalenceViolation, rep.OptimizedDistance, optTerm))
	}

	if len(s1) > 0 && !math.IsInf(rep.ReferenceDistance, 1) {
		if err = rep.checkPaths(ref, opt, s1, s2, p); err != nil {
			return rep, o.report(err)
		}
	}

	return rep, o.report(rep.violation(o.eps, o.absTol))
}

// checkPaths fills the path fields of the report.
func (r *EquivalenceReport) checkPaths(ref, opt Evaluator, s1, s2 []float64, p Penalties) error {
	refPath, _, err := ref.Path(s1, s2, p)
	if err != nil {
		return fmt.Errorf("%w: reference path: %w", ErrEquivalenceViolation, err)
	}
	optPath, _, err := opt.Path(s1, s2, p)
	if err != nil {
		return fmt.Errorf("%w: optimized path: %w", ErrEquivalenceViolation, err)
	}
	if r.ReferencePathCost, err = PathCost(s1, s2, refPath, p); err != nil {
		return fmt.Errorf("%w: reference path: %w", ErrEquivalenceViolation, err)
	}
	if r.OptimizedPathCost, err = PathCost(s1, s2, optPath, p); err != nil {
		return fmt.Errorf("%w: optimized path: %w", ErrEquivalenceViolation, err)
	}
	r.PathsChecked = true
	r.PathsIdentical = samePath(refPath, optPath)

	return nil
}

// report logs a violation, if any, and passes err through.
func (o Options) report(err error) error {
	if err != nil && o.logger != nil && errors.Is(err, ErrEquivalenceViolation) {
		o.logger.Error("dtw: evaluator tiers diverged", "error", err.Error())
	}

	return err
}

func distanceDiff(a, b float64) float64 {
	if a == b {
		return 0
	}

	return math.Abs(a - b)
}

func samePath(a, b []Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}
