package solver

import (
	"math"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
	"github.com/ZhangCHW/fast-methods/pkg/grid"
)

// ExtractPath walks the arrival-time field from goal down to a start cell
// (time 0) by repeatedly stepping to the 8-connected neighbor with the
// smallest time. The returned path runs start to goal in Cartesian
// coordinates.
//
// The map must already hold a solved field; a goal the front never reached
// yields an UNREACHABLE_GOAL error.
func ExtractPath(m *grid.Map, goal grid.Point) (grid.Path, error) {
	dims := m.Dims()
	if err := errors.ValidateDimensions(dims); err != nil {
		return nil, err
	}
	w, h := dims[0], dims[1]

	idx, err := cellOf(m, goal, w, h)
	if err != nil {
		return nil, err
	}
	if math.IsInf(m.Value(idx), 1) {
		return nil, errors.New(errors.ErrCodeUnreachableGoal, "goal (%g, %g) was never reached by the front", goal.X, goal.Y)
	}

	var reversed grid.Path
	for {
		x, y := idx%w, idx/w
		reversed = append(reversed, grid.Point{X: float64(x), Y: float64(y)})

		cur := m.Value(idx)
		if cur == 0 {
			break
		}

		next, nextVal := idx, cur
		for _, nIdx := range neighbors8(idx, w, h) {
			if v := m.Value(nIdx); v < nextVal {
				next, nextVal = nIdx, v
			}
		}
		if next == idx {
			// Local minimum above zero: the field is inconsistent.
			return nil, errors.New(errors.ErrCodeInternal, "descent stuck at cell (%d, %d) with time %g", x, y, cur)
		}
		idx = next
	}

	// Reverse into start-to-goal order.
	path := make(grid.Path, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path, nil
}

// neighbors8 returns the 8-connected neighbor indices of idx.
func neighbors8(idx, w, h int) []int {
	x, y := idx%w, idx/w
	out := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			out = append(out, w*ny+nx)
		}
	}
	return out
}
