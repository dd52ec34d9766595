// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 grid that backs DTW
// cost matrices, plus the small comparison kernels used to check two grids
// against each other.
//
// What lives here:
//
//   - Dense: a contiguous (rows×cols) buffer with bounds-checked At/Set and a
//     per-instance numeric policy (finite-only, or finite plus +Inf).
//   - Row: a no-copy slice over one row, for hot loops that own the matrix.
//   - AllClose / MaxAbsDiff: element-wise comparison with |a−b| ≤ atol+rtol·|b|,
//     treating equal infinities as equal.
//
// Numeric policy:
//
//	NewDense            → rejects NaN and ±Inf in Set.
//	NewDistanceDense    → accepts +Inf ("unreachable"), still rejects NaN and −Inf.
//
// Complexity:
//
//	NewDense/Clone O(r·c); At/Set/Row O(1); AllClose/MaxAbsDiff O(r·c).
package matrix
