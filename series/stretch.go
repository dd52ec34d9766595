// SPDX-License-Identifier: MIT

package series

import (
	"errors"
	"fmt"
)

// ErrBadLength indicates a requested length below 1, or an empty source.
var ErrBadLength = errors.New("series: length must be positive")

// Stretch resamples s to m samples by linear interpolation over a shared
// [0,1] time axis. Both endpoints are preserved for m > 1; a one-sample
// source is repeated and m = 1 keeps the first sample. The input is not
// modified.
//
//	Stretch([0 1 2 3 4 5 6 7 8], 5) = [0 2 4 6 8]
//
// Complexity: O(m) time and memory.
func Stretch(s []float64, m int) ([]float64, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty source", ErrBadLength)
	}
	if m < 1 {
		return nil, fmt.Errorf("%w: target %d", ErrBadLength, m)
	}

	out := make([]float64, m)
	n := len(s)
	if n == 1 || m == 1 {
		for i := range out {
			out[i] = s[0]
		}
		return out, nil
	}

	scale := float64(n-1) / float64(m-1)
	var (
		x    float64
		k    int
		frac float64
	)
	for i := range out {
		x = float64(i) * scale
		k = int(x)
		if k >= n-1 {
			out[i] = s[n-1]
			continue
		}
		frac = x - float64(k)
		out[i] = s[k] + (s[k+1]-s[k])*frac
	}
	out[m-1] = s[n-1]

	return out, nil
}
