// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
//
// Notes:
//   - validateNaNInf controls whether Set rejects non-finite values at all.
//   - allowPosInf is a narrow exception for +Inf as "unreachable" in
//     distance/cost grids. NaN and −Inf remain rejected under validation.
//   - Cost-matrix builders allocate through NewDistanceDense so that the
//     sentinel boundary (+Inf) is a legal value.
package matrix

const (
	// DefaultEpsilon is the default relative tolerance used by AllClose callers.
	DefaultEpsilon = 1e-9

	// DefaultAbsTolerance is the default absolute tolerance used by AllClose callers.
	DefaultAbsTolerance = 1e-6

	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// DefaultAllowPosInf permits +Inf in Set for ordinary matrices.
	DefaultAllowPosInf = false
)
