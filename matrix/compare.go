// SPDX-License-Identifier: MIT

// Package matrix: element-wise comparison of two grids.
//
// Policy (shared by AllClose and MaxAbsDiff):
//   - a and b must be non-nil and have identical shapes.
//   - Equal infinities (same sign) compare equal; an infinity against a finite
//     value, or opposite infinities, differ by +Inf.
//   - NaN against anything differs by NaN, which never satisfies a tolerance.
package matrix

import "math"

// cellDiff returns |a−b| under the infinity policy above.
func cellDiff(a, b float64) float64 {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		if a == b {
			return 0
		}
		if math.IsNaN(a) || math.IsNaN(b) {
			return math.NaN()
		}

		return math.Inf(1)
	}

	return math.Abs(a - b)
}

// validatePair runs the nil and shape checks for a binary kernel.
func validatePair(tag string, a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf(tag, err)
	}

	return nil
}

// AllClose checks element-wise |a−b| ≤ atol + rtol·|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// rtol and atol are treated as |rtol|, |atol|; NaN or infinite tolerances are
// rejected with ErrNaNInf.
//
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, validatorErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := validatePair("AllClose", a, b); err != nil {
		return false, err
	}

	ok := true
	each(a, b, func(av, bv float64) bool {
		d := cellDiff(av, bv)
		if d == 0 {
			return true
		}
		// NaN falls through the comparison and is rejected.
		if !(d <= atol+rtol*math.Abs(bv)) {
			ok = false
			return false
		}
		return true
	})

	return ok, nil
}

// MaxAbsDiff returns the largest cell-wise |a−b| and the (row, col) where it
// occurs. Identical grids yield (0, 0, 0). A NaN difference is reported
// immediately as the maximum.
//
// Time: O(r*c). Space: O(1).
func MaxAbsDiff(a, b Matrix) (diff float64, row, col int, err error) {
	if err = validatePair("MaxAbsDiff", a, b); err != nil {
		return 0, 0, 0, err
	}

	var i, j int
	c := a.Cols()
	idx := 0
	each(a, b, func(av, bv float64) bool {
		d := cellDiff(av, bv)
		if math.IsNaN(d) || d > diff {
			diff, row, col = d, i, j
		}
		idx++
		i, j = idx/c, idx%c
		return !math.IsNaN(d)
	})

	return diff, row, col, nil
}

// each visits paired cells in row-major order until f returns false.
// Dense operands are read from their flat buffers directly.
func each(a, b Matrix, f func(av, bv float64) bool) {
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range da.data {
				if !f(da.data[k], db.data[k]) {
					return
				}
			}
			return
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !f(av, bv) {
				return
			}
		}
	}
}
