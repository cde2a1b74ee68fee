package solver

import (
	"context"
	"math"
	"testing"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
	"github.com/ZhangCHW/fast-methods/pkg/grid"
)

func TestExtractPathOpenGrid(t *testing.T) {
	m, _ := grid.NewMap(6, 6)
	if err := Solve(context.Background(), m, grid.Point{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}

	path, err := ExtractPath(m, grid.Point{X: 5, Y: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(path) < 2 {
		t.Fatalf("path too short: %v", path)
	}

	if first := path[0]; first.X != 0 || first.Y != 0 {
		t.Errorf("path starts at (%g, %g), want (0, 0)", first.X, first.Y)
	}
	if last := path[len(path)-1]; last.X != 5 || last.Y != 5 {
		t.Errorf("path ends at (%g, %g), want (5, 5)", last.X, last.Y)
	}

	// Consecutive points are 8-adjacent and arrival times increase.
	var prev float64 = -1
	for i, p := range path {
		if i > 0 {
			dx := math.Abs(p.X - path[i-1].X)
			dy := math.Abs(p.Y - path[i-1].Y)
			if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
				t.Fatalf("step %d -> %d is not 8-adjacent: %v -> %v", i-1, i, path[i-1], p)
			}
		}
		idx, _ := m.Idx(int(p.X), int(p.Y))
		if v := m.Value(idx); v <= prev && i > 0 {
			t.Fatalf("arrival time not increasing along path at step %d: %v after %v", i, v, prev)
		} else {
			prev = v
		}
	}
}

func TestExtractPathAroundWall(t *testing.T) {
	m := mustMap(t, `
..#..
..#..
..#..
.....
`)
	if err := Solve(context.Background(), m, grid.Point{X: 0, Y: 3}); err != nil {
		t.Fatal(err)
	}

	path, err := ExtractPath(m, grid.Point{X: 4, Y: 3})
	if err != nil {
		t.Fatal(err)
	}

	// The path must pass through the gap row and never touch a wall cell.
	throughGap := false
	for _, p := range path {
		idx, err := m.Idx(int(p.X), int(p.Y))
		if err != nil {
			t.Fatalf("path leaves the grid at %v", p)
		}
		if m.Occupied(idx) {
			t.Fatalf("path crosses wall cell %v", p)
		}
		if p.Y == 0 {
			throughGap = true
		}
	}
	if !throughGap {
		t.Error("path should detour through the bottom gap")
	}
}

func TestExtractPathUnreachable(t *testing.T) {
	m := mustMap(t, `
..#.
..#.
..#.
..#.
`)
	if err := Solve(context.Background(), m, grid.Point{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}

	_, err := ExtractPath(m, grid.Point{X: 3, Y: 3})
	if !errors.Is(err, errors.ErrCodeUnreachableGoal) {
		t.Fatalf("error = %v, want UNREACHABLE_GOAL", err)
	}
}

func TestExtractPathGoalIsStart(t *testing.T) {
	m, _ := grid.NewMap(3, 3)
	if err := Solve(context.Background(), m, grid.Point{X: 1, Y: 1}); err != nil {
		t.Fatal(err)
	}

	path, err := ExtractPath(m, grid.Point{X: 1, Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 1 || path[0].X != 1 || path[0].Y != 1 {
		t.Errorf("path = %v, want single point (1,1)", path)
	}
}

func TestExtractPathErrors(t *testing.T) {
	m, _ := grid.NewMap(3, 3)
	if err := Solve(context.Background(), m, grid.Point{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}

	if _, err := ExtractPath(m, grid.Point{X: 9, Y: 0}); !errors.Is(err, errors.ErrCodeInvalidCell) {
		t.Errorf("out-of-range goal error = %v, want INVALID_CELL", err)
	}

	m3, _ := grid.NewMap(2, 2, 2)
	if _, err := ExtractPath(m3, grid.Point{}); !errors.Is(err, errors.ErrCodeInvalidDimensions) {
		t.Errorf("3D goal error = %v, want INVALID_DIMENSIONS", err)
	}
}
