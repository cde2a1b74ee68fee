package grid

import (
	"math"
	"testing"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
)

func TestNewMap(t *testing.T) {
	tests := []struct {
		name    string
		dims    []int
		wantErr bool
	}{
		{name: "2D", dims: []int{4, 3}, wantErr: false},
		{name: "1x1", dims: []int{1, 1}, wantErr: false},
		{name: "3D", dims: []int{2, 2, 2}, wantErr: false},
		{name: "no dims", dims: nil, wantErr: true},
		{name: "zero size", dims: []int{0, 3}, wantErr: true},
		{name: "negative size", dims: []int{4, -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMap(tt.dims...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewMap(%v) error = %v, wantErr %v", tt.dims, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidDimensions) {
					t.Errorf("error code = %v, want INVALID_DIMENSIONS", errors.GetCode(err))
				}
				return
			}

			want := 1
			for _, d := range tt.dims {
				want *= d
			}
			if m.CellCount() != want {
				t.Errorf("CellCount() = %d, want %d", m.CellCount(), want)
			}

			// New cells are free with value 0.
			for i := 0; i < m.CellCount(); i++ {
				if m.Occupied(i) {
					t.Fatalf("cell %d occupied on fresh map", i)
				}
				if m.Value(i) != 0 {
					t.Fatalf("cell %d value = %v, want 0", i, m.Value(i))
				}
			}
		})
	}
}

func TestIdxRowMajor(t *testing.T) {
	m, err := NewMap(4, 3)
	if err != nil {
		t.Fatal(err)
	}

	// idx = width*y + x
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{3, 0, 3},
		{0, 1, 4},
		{2, 1, 6},
		{3, 2, 11},
	}
	for _, tt := range tests {
		idx, err := m.Idx(tt.x, tt.y)
		if err != nil {
			t.Fatalf("Idx(%d, %d) error: %v", tt.x, tt.y, err)
		}
		if idx != tt.want {
			t.Errorf("Idx(%d, %d) = %d, want %d", tt.x, tt.y, idx, tt.want)
		}

		coords, err := m.Coords(idx)
		if err != nil {
			t.Fatalf("Coords(%d) error: %v", idx, err)
		}
		if coords[0] != tt.x || coords[1] != tt.y {
			t.Errorf("Coords(%d) = %v, want [%d %d]", idx, coords, tt.x, tt.y)
		}
	}
}

func TestIdxErrors(t *testing.T) {
	m, _ := NewMap(4, 3)

	if _, err := m.Idx(4, 0); !errors.Is(err, errors.ErrCodeInvalidCell) {
		t.Errorf("Idx(4, 0) error = %v, want INVALID_CELL", err)
	}
	if _, err := m.Idx(0, -1); !errors.Is(err, errors.ErrCodeInvalidCell) {
		t.Errorf("Idx(0, -1) error = %v, want INVALID_CELL", err)
	}
	if _, err := m.Idx(1); !errors.Is(err, errors.ErrCodeInvalidCell) {
		t.Errorf("Idx with wrong arity error = %v, want INVALID_CELL", err)
	}
	if _, err := m.Coords(12); !errors.Is(err, errors.ErrCodeInvalidCell) {
		t.Errorf("Coords(12) error = %v, want INVALID_CELL", err)
	}
}

func TestOccupancy(t *testing.T) {
	m, _ := NewMap(2, 2)

	if m.Occupied(0) {
		t.Error("fresh cell should be free")
	}
	if m.Occupancy(0) != 1 {
		t.Errorf("Occupancy = %v, want 1", m.Occupancy(0))
	}

	m.SetOccupied(0)
	if !m.Occupied(0) {
		t.Error("SetOccupied should block the cell")
	}

	m.SetOccupancy(1, 0.3)
	if !m.Occupied(1) {
		t.Error("occupancy 0.3 should count as blocked")
	}
	m.SetOccupancy(1, 0.7)
	if m.Occupied(1) {
		t.Error("occupancy 0.7 should count as free")
	}

	// Clamping
	m.SetOccupancy(2, 1.5)
	if m.Occupancy(2) != 1 {
		t.Errorf("Occupancy = %v, want clamp to 1", m.Occupancy(2))
	}
	m.SetOccupancy(2, -0.5)
	if m.Occupancy(2) != 0 {
		t.Errorf("Occupancy = %v, want clamp to 0", m.Occupancy(2))
	}
}

func TestMaxValue(t *testing.T) {
	m, _ := NewMap(3, 1)

	if got := m.MaxValue(); got != 0 {
		t.Errorf("MaxValue on fresh map = %v, want 0", got)
	}

	m.SetValue(0, 2.5)
	m.SetValue(1, 7.25)
	m.SetValue(2, 1)
	if got := m.MaxValue(); got != 7.25 {
		t.Errorf("MaxValue = %v, want 7.25", got)
	}

	// Unreached cells hold +Inf and must not dominate the range.
	m.SetValue(2, math.Inf(1))
	if got := m.MaxValue(); got != 7.25 {
		t.Errorf("MaxValue with Inf cell = %v, want 7.25", got)
	}

	m.FillValue(math.Inf(1))
	if got := m.MaxValue(); got != 0 {
		t.Errorf("MaxValue on all-Inf field = %v, want 0", got)
	}
}
