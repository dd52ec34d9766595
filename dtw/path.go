// SPDX-License-Identifier: MIT

package dtw

import "fmt"

// Path reconstruction.
//
// Two interchangeable walks recover one optimal path from (n,m) back to (1,1)
// (1-based grid coordinates; emitted 0-based):
//
//   - backtrackGrid (reference tier) recomputes the three candidate step
//     costs at each cell exactly as the forward pass did and follows the
//     first one, in priority order, that equals D[i][j] within tolerance.
//   - walkTrace (optimized tier) follows the step code recorded during the
//     forward pass.
//
// Tie-break, both walks: diagonal, then vertical, then horizontal. With an
// exact tolerance the two walks select the same path; with a positive one
// the reference walk may settle a near-tie differently, at equal cost within
// tolerance. Predecessors outside the grid or in the sentinel row/column
// never match, so a path never passes through a boundary cell.

// backtrackGrid walks the finished grid. D[n][m] must be finite.
//
// Complexity: O(n+m) time, O(n+m) memory for the path.
func backtrackGrid(d [][]float64, s1, s2 []float64, p Penalties, eps float64) ([]Coord, error) {
	i, j := len(s1), len(s2)
	path := make([]Coord, 0, i+j-1)

	var c, target float64
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		target = d[i][j]
		c = sqDiff(s1[i-1], s2[j-1])
		switch {
		case i > 1 && j > 1 && within(d[i-1][j-1]+c, target, eps, 0):
			i, j = i-1, j-1
		case i > 1 && within(d[i-1][j]+c+p.S1, target, eps, 0):
			i--
		case j > 1 && within(d[i][j-1]+c+p.S2, target, eps, 0):
			j--
		default:
			return nil, fmt.Errorf("%w: no predecessor of (%d,%d) matches its cost", ErrNoPath, i-1, j-1)
		}
	}
	reversePath(path)

	return path, nil
}

// walkTrace follows the recorded step codes from (n,m). The trace stores
// cell (i,j) at offset (i-1)*m + (j-1).
//
// Complexity: O(n+m).
func walkTrace(trace []step, n, m int) ([]Coord, error) {
	i, j := n, m
	path := make([]Coord, 0, n+m-1)
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		switch trace[(i-1)*m+j-1] {
		case stepDiagonal:
			i, j = i-1, j-1
		case stepVertical:
			i--
		case stepHorizontal:
			j--
		default:
			return nil, fmt.Errorf("%w: no recorded step at (%d,%d)", ErrNoPath, i-1, j-1)
		}
		if i < 1 || j < 1 {
			return nil, fmt.Errorf("%w: trace leaves the grid at (%d,%d)", ErrNoPath, i-1, j-1)
		}
	}
	reversePath(path)

	return path, nil
}

// reversePath reverses path in place.
func reversePath(path []Coord) {
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
}

// ValidatePath checks that path is a well-formed warping path for sequences
// of lengths n and m:
//   - it starts at {0,0} and ends at {n-1,m-1};
//   - every step is diagonal (+1,+1), vertical (+1,0) or horizontal (0,+1).
//
// Two empty sequences admit only the empty path.
//
// Complexity: O(len(path)).
func ValidatePath(path []Coord, n, m int) error {
	if n == 0 && m == 0 {
		if len(path) != 0 {
			return fmt.Errorf("%w: non-empty path for empty sequences", ErrInvalidPath)
		}
		return nil
	}
	if n <= 0 || m <= 0 {
		return fmt.Errorf("%w: lengths %d and %d admit no path", ErrInvalidPath, n, m)
	}
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if path[0] != (Coord{}) {
		return fmt.Errorf("%w: starts at %v", ErrInvalidPath, path[0])
	}
	if end := path[len(path)-1]; end != (Coord{I: n - 1, J: m - 1}) {
		return fmt.Errorf("%w: ends at %v, want {%d %d}", ErrInvalidPath, end, n-1, m-1)
	}
	for k := 1; k < len(path); k++ {
		if stepBetween(path[k-1], path[k]) == stepNone {
			return fmt.Errorf("%w: illegal step %v -> %v", ErrInvalidPath, path[k-1], path[k])
		}
	}

	return nil
}

// stepBetween classifies the move from a to b.
func stepBetween(a, b Coord) step {
	di, dj := b.I-a.I, b.J-a.J
	switch {
	case di == 1 && dj == 1:
		return stepDiagonal
	case di == 1 && dj == 0:
		return stepVertical
	case di == 0 && dj == 1:
		return stepHorizontal
	default:
		return stepNone
	}
}

// PathCost re-evaluates the distance of an arbitrary valid path under the
// same cost model as the recurrence: every visited cell contributes its
// squared difference, vertical steps add p.S1 and horizontal steps add p.S2.
// For an optimal path the result equals the DTW distance.
//
// Errors: ErrInvalidPath (see ValidatePath).
func PathCost(s1, s2 []float64, path []Coord, p Penalties) (float64, error) {
	if err := ValidatePath(path, len(s1), len(s2)); err != nil {
		return 0, err
	}
	if len(path) == 0 {
		return 0, nil
	}

	acc := sqDiff(s1[0], s2[0])
	var c float64
	for k := 1; k < len(path); k++ {
		c = sqDiff(s1[path[k].I], s2[path[k].J])
		// (acc + c) + penalty, the association order of the recurrence.
		switch stepBetween(path[k-1], path[k]) {
		case stepDiagonal:
			acc += c
		case stepVertical:
			acc = acc + c + p.S1
		case stepHorizontal:
			acc = acc + c + p.S2
		}
	}

	return finalDistance(acc), nil
}
