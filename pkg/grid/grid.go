package grid

import (
	"math"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
)

// occupiedThreshold is the occupancy below which a cell counts as blocked.
const occupiedThreshold = 0.5

// cell is a single grid location. Occupancy 1 means fully traversable,
// 0 means blocked. The value is whatever the current consumer stores there,
// typically an arrival time; math.Inf(1) marks a cell no wavefront reached.
type cell struct {
	occupancy float64
	value     float64
}

// Map is an n-dimensional grid map stored row-major in Cartesian order.
// The zero value is not usable; construct with [NewMap].
type Map struct {
	dims  []int
	cells []cell
}

// NewMap allocates a map with the given dimension sizes. All cells start
// fully free with value 0. At least one dimension is required and every
// size must be positive.
func NewMap(dims ...int) (*Map, error) {
	if len(dims) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDimensions, "at least one dimension required")
	}
	n := 1
	for i, d := range dims {
		if d <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidDimensions, "dimension %d has non-positive size %d", i, d)
		}
		n *= d
	}

	m := &Map{
		dims:  append([]int(nil), dims...),
		cells: make([]cell, n),
	}
	for i := range m.cells {
		m.cells[i].occupancy = 1
	}
	return m, nil
}

// Dims returns a copy of the dimension sizes.
func (m *Map) Dims() []int {
	return append([]int(nil), m.dims...)
}

// CellCount returns the total number of cells.
func (m *Map) CellCount() int {
	return len(m.cells)
}

// Idx converts Cartesian coordinates to a linear cell index.
// For a 2D map of width w, Idx(x, y) = w*y + x.
func (m *Map) Idx(coords ...int) (int, error) {
	if len(coords) != len(m.dims) {
		return 0, errors.New(errors.ErrCodeInvalidCell, "got %d coordinates for a %d-dimensional map", len(coords), len(m.dims))
	}
	idx := 0
	stride := 1
	for i, c := range coords {
		if c < 0 || c >= m.dims[i] {
			return 0, errors.New(errors.ErrCodeInvalidCell, "coordinate %d out of range: %d not in [0, %d)", i, c, m.dims[i])
		}
		idx += c * stride
		stride *= m.dims[i]
	}
	return idx, nil
}

// Coords converts a linear cell index back to Cartesian coordinates.
func (m *Map) Coords(idx int) ([]int, error) {
	if idx < 0 || idx >= len(m.cells) {
		return nil, errors.New(errors.ErrCodeInvalidCell, "index %d out of range [0, %d)", idx, len(m.cells))
	}
	coords := make([]int, len(m.dims))
	for i, d := range m.dims {
		coords[i] = idx % d
		idx /= d
	}
	return coords, nil
}

// Occupancy returns the occupancy of the cell at idx, in [0, 1].
func (m *Map) Occupancy(idx int) float64 {
	return m.cells[idx].occupancy
}

// Occupied reports whether the cell at idx is blocked.
func (m *Map) Occupied(idx int) bool {
	return m.cells[idx].occupancy < occupiedThreshold
}

// Value returns the scalar value stored at idx.
func (m *Map) Value(idx int) float64 {
	return m.cells[idx].value
}

// SetOccupancy sets the occupancy of the cell at idx, clamped to [0, 1].
func (m *Map) SetOccupancy(idx int, o float64) {
	if o < 0 {
		o = 0
	} else if o > 1 {
		o = 1
	}
	m.cells[idx].occupancy = o
}

// SetOccupied marks the cell at idx as fully blocked.
func (m *Map) SetOccupied(idx int) {
	m.cells[idx].occupancy = 0
}

// SetValue stores a scalar value at idx.
func (m *Map) SetValue(idx int, v float64) {
	m.cells[idx].value = v
}

// FillValue stores v into every cell. The solver uses this to reset the
// arrival-time field to +Inf before propagation.
func (m *Map) FillValue(v float64) {
	for i := range m.cells {
		m.cells[i].value = v
	}
}

// MaxValue returns the largest finite cell value, scanning all cells.
// Cells holding +Inf (never reached) or NaN are skipped. An all-infinite or
// empty field yields 0.
func (m *Map) MaxValue() float64 {
	max := 0.0
	for i := range m.cells {
		v := m.cells[i].value
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		if v > max {
			max = v
		}
	}
	return max
}
