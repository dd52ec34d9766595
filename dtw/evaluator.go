// SPDX-License-Identifier: MIT

package dtw

import "github.com/katalvlaran/warp/matrix"

// Evaluator is one implementation tier of the directional-penalty recurrence.
//
// Contract shared by every implementation:
//   - Distance is the streaming query: it may keep only O(min(n,m)) state.
//   - Matrix returns the full (n+1)x(m+1) accumulated-cost matrix with
//     D[0][0]=0 and +Inf on the rest of row 0 and column 0.
//   - Path returns one optimal warping path (0-based, forward order) and the
//     distance; ErrNoPath when D[n][m] is +Inf.
//   - Inputs are never mutated. One empty input yields +Inf (Distance),
//     a matrix with an infinite terminal cell, and ErrNoPath (Path).
//   - Penalties must already be validated (see ResolvePenalties).
//
// Implementations are stateless values and safe for concurrent use.
type Evaluator interface {
	Strategy() Strategy
	Distance(s1, s2 []float64, p Penalties) float64
	Matrix(s1, s2 []float64, p Penalties) (*matrix.Dense, error)
	Path(s1, s2 []float64, p Penalties) ([]Coord, float64, error)
}

// Compile-time conformance.
var (
	_ Evaluator = ReferenceEvaluator{}
	_ Evaluator = OptimizedEvaluator{}
)

// NewEvaluator returns the evaluator for s. eps is the relative tolerance the
// reference tier uses when matching backtracking candidates.
func NewEvaluator(s Strategy, eps float64) (Evaluator, error) {
	if err := validateTolerance("epsilon", eps); err != nil {
		return nil, err
	}
	switch s {
	case Reference:
		return ReferenceEvaluator{Epsilon: eps}, nil
	case Optimized:
		return OptimizedEvaluator{}, nil
	default:
		return nil, configErrorf("strategy", int(s), ErrUnknownStrategy)
	}
}

// evaluator returns the tier selected by validated options.
func (o Options) evaluator() Evaluator {
	if o.strategy == Reference {
		return ReferenceEvaluator{Epsilon: o.eps}
	}

	return OptimizedEvaluator{}
}
