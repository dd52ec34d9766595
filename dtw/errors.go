// SPDX-License-Identifier: MIT

package dtw

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message carries the "dtw:" prefix; callers match
// with errors.Is. Configuration problems are reported as ErrBadInput joined
// with the specific sentinel, so both errors.Is(err, ErrBadInput) and
// errors.Is(err, ErrNegativePenalty) hold.
var (
	// ErrBadInput is the configuration error category: the call was rejected
	// before any computation started.
	ErrBadInput = errors.New("dtw: invalid configuration")

	// ErrNegativePenalty indicates a penalty < 0 (including −Inf).
	ErrNegativePenalty = errors.New("dtw: penalty must be non-negative")

	// ErrNaNPenalty indicates a penalty that is not a number.
	ErrNaNPenalty = errors.New("dtw: penalty is NaN")

	// ErrBadEpsilon indicates a tolerance that is negative, NaN or infinite.
	ErrBadEpsilon = errors.New("dtw: epsilon must be finite and non-negative")

	// ErrUnknownStrategy indicates a Strategy value outside the declared set.
	ErrUnknownStrategy = errors.New("dtw: unknown evaluation strategy")

	// ErrUnknownMemoryMode indicates a MemoryMode value outside the declared set.
	ErrUnknownMemoryMode = errors.New("dtw: unknown memory mode")

	// ErrEmptyInput indicates that exactly one input sequence is empty, so no
	// alignment exists. Two empty sequences are a valid, zero-distance input.
	ErrEmptyInput = errors.New("dtw: input sequences must be both empty or both non-empty")

	// ErrPathNeedsMatrix indicates that a path or matrix was requested with
	// MemoryMode=TwoRows.
	ErrPathNeedsMatrix = errors.New("dtw: path and matrix require MemoryMode=FullMatrix")

	// ErrNoPath indicates that the terminal cell is +Inf, so no finite
	// warping path exists.
	ErrNoPath = errors.New("dtw: no finite warping path")

	// ErrInvalidPath indicates a path that breaks the boundary, monotonicity
	// or step-type rules.
	ErrInvalidPath = errors.New("dtw: invalid warping path")

	// ErrEquivalenceViolation indicates that the reference and optimized
	// evaluators diverged beyond tolerance. Always a bug in one of them.
	ErrEquivalenceViolation = errors.New("dtw: reference and optimized evaluators diverged")
)

// configErrorf reports a rejected option value.
func configErrorf(field string, value any, err error) error {
	return fmt.Errorf("%w: %s=%v: %w", ErrBadInput, field, value, err)
}
