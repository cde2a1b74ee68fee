package solver

import (
	"container/heap"
	"context"
	"math"
	"time"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
	"github.com/ZhangCHW/fast-methods/pkg/grid"
	"github.com/ZhangCHW/fast-methods/pkg/observability"
)

// minSpeed is the occupancy below which a cell is treated as a hard wall.
const minSpeed = 1e-9

// cancelCheckInterval determines how often the narrow-band loop polls the
// context, in heap pops.
const cancelCheckInterval = 1024

// Solve runs fast marching over a 2D map from one or more start cells.
// Arrival times are written into the map's cell values: 0 at the starts,
// +Inf at cells the front never reaches. The occupancy field doubles as the
// local propagation speed, so a cell with occupancy 0.5 is crossed at half
// speed.
//
// Starts on an occupied or out-of-range cell are rejected before the field
// is touched.
func Solve(ctx context.Context, m *grid.Map, starts ...grid.Point) error {
	dims := m.Dims()
	if err := errors.ValidateDimensions(dims); err != nil {
		return err
	}
	if len(starts) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one start point required")
	}
	w, h := dims[0], dims[1]

	startIdx := make([]int, len(starts))
	for i, p := range starts {
		idx, err := cellOf(m, p, w, h)
		if err != nil {
			return err
		}
		if m.Occupied(idx) {
			return errors.New(errors.ErrCodeInvalidInput, "start point (%g, %g) is on an occupied cell", p.X, p.Y)
		}
		startIdx[i] = idx
	}

	cells := m.CellCount()
	observability.Solver().OnSolveStart(ctx, cells)
	begin := time.Now()

	visited, err := propagate(ctx, m, w, h, startIdx)
	observability.Solver().OnSolveComplete(ctx, cells, visited, time.Since(begin), err)
	return err
}

// cellState tracks a cell's position relative to the advancing front.
type cellState uint8

const (
	far    cellState = iota // untouched
	band                    // in the narrow band, tentative time known
	frozen                  // final time fixed
)

func propagate(ctx context.Context, m *grid.Map, w, h int, starts []int) (int, error) {
	m.FillValue(math.Inf(1))

	states := make([]cellState, m.CellCount())
	nodes := make([]*bandNode, m.CellCount())

	nb := &narrowBand{}
	heap.Init(nb)

	push := func(idx int, t float64) {
		if n := nodes[idx]; n != nil {
			if t < n.time {
				n.time = t
				heap.Fix(nb, n.pos)
			}
			return
		}
		n := &bandNode{idx: idx, time: t}
		nodes[idx] = n
		states[idx] = band
		heap.Push(nb, n)
	}

	for _, idx := range starts {
		push(idx, 0)
	}

	visited := 0
	for nb.Len() > 0 {
		if visited%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return visited, errors.Wrap(errors.ErrCodeInternal, err, "propagation canceled")
			}
		}

		n := heap.Pop(nb).(*bandNode)
		states[n.idx] = frozen
		m.SetValue(n.idx, n.time)
		visited++

		for _, nbIdx := range neighbors4(n.idx, w, h) {
			if states[nbIdx] == frozen || m.Occupied(nbIdx) {
				continue
			}
			speed := m.Occupancy(nbIdx)
			if speed < minSpeed {
				continue
			}
			t := eikonalUpdate(m, nbIdx, w, h, states, speed)
			if !math.IsInf(t, 1) {
				push(nbIdx, t)
			}
		}
	}
	return visited, nil
}

// eikonalUpdate solves the first-order upwind discretization of
// |grad T| * F = 1 at cell idx, using the frozen times of its axis
// neighbors.
func eikonalUpdate(m *grid.Map, idx, w, h int, states []cellState, speed float64) float64 {
	tx := axisMin(m, states, idx%w, idx/w, w, h, 1, 0)
	ty := axisMin(m, states, idx%w, idx/w, w, h, 0, 1)

	inv := 1 / speed
	switch {
	case math.IsInf(tx, 1) && math.IsInf(ty, 1):
		return math.Inf(1)
	case math.IsInf(tx, 1):
		return ty + inv
	case math.IsInf(ty, 1):
		return tx + inv
	}

	if d := tx - ty; d > inv || d < -inv {
		if tx < ty {
			return tx + inv
		}
		return ty + inv
	}

	// Both axes contribute: solve the quadratic.
	sum := tx + ty
	disc := 2*inv*inv - (tx-ty)*(tx-ty)
	return (sum + math.Sqrt(disc)) / 2
}

// axisMin returns the smaller frozen arrival time among the two neighbors
// along one axis, or +Inf if neither is frozen.
func axisMin(m *grid.Map, states []cellState, x, y, w, h, dx, dy int) float64 {
	best := math.Inf(1)
	for _, s := range [2]int{-1, 1} {
		nx, ny := x+s*dx, y+s*dy
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			continue
		}
		idx := w*ny + nx
		if states[idx] != frozen {
			continue
		}
		if v := m.Value(idx); v < best {
			best = v
		}
	}
	return best
}

// neighbors4 returns the 4-connected neighbor indices of idx.
func neighbors4(idx, w, h int) []int {
	x, y := idx%w, idx/w
	out := make([]int, 0, 4)
	if x > 0 {
		out = append(out, idx-1)
	}
	if x < w-1 {
		out = append(out, idx+1)
	}
	if y > 0 {
		out = append(out, idx-w)
	}
	if y < h-1 {
		out = append(out, idx+w)
	}
	return out
}

// cellOf truncates a Cartesian point to its cell index, rejecting points
// outside the grid.
func cellOf(m *grid.Map, p grid.Point, w, h int) (int, error) {
	if p.X < 0 || p.Y < 0 || int(p.X) >= w || int(p.Y) >= h {
		return 0, errors.New(errors.ErrCodeInvalidCell, "point (%g, %g) outside %dx%d grid", p.X, p.Y, w, h)
	}
	return w*int(p.Y) + int(p.X), nil
}

// bandNode is a narrow-band entry: a cell and its tentative arrival time.
type bandNode struct {
	idx  int
	time float64
	pos  int // heap position, maintained by narrowBand
}

// narrowBand is a min-heap of tentative arrival times.
type narrowBand []*bandNode

func (nb narrowBand) Len() int           { return len(nb) }
func (nb narrowBand) Less(i, j int) bool { return nb[i].time < nb[j].time }

func (nb narrowBand) Swap(i, j int) {
	nb[i], nb[j] = nb[j], nb[i]
	nb[i].pos = i
	nb[j].pos = j
}

func (nb *narrowBand) Push(x any) {
	n := x.(*bandNode)
	n.pos = len(*nb)
	*nb = append(*nb, n)
}

func (nb *narrowBand) Pop() any {
	old := *nb
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*nb = old[:len(old)-1]
	return n
}
