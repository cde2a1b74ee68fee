package plot

import (
	"context"
	"image"
	"time"

	"github.com/ZhangCHW/fast-methods/pkg/grid"
	"github.com/ZhangCHW/fast-methods/pkg/observability"
)

// Grid is the capability contract a grid type must satisfy to be plotted.
// Cells are addressed by their row-major Cartesian index (width*row + col,
// origin bottom-left). Implementations must tolerate read-only concurrent
// access if the caller plots from multiple goroutines; the plotter itself
// never mutates the grid.
type Grid interface {
	// Dims returns the dimension sizes. Plotting requires exactly two.
	Dims() []int

	// CellCount returns the total number of cells.
	CellCount() int

	// Occupied reports whether the cell at idx is blocked.
	Occupied(idx int) bool

	// Occupancy returns the cell's traversability in [0, 1], 1 = free.
	Occupancy(idx int) float64

	// Value returns the cell's scalar value (e.g. arrival time).
	Value(idx int) float64

	// MaxValue returns the largest finite cell value.
	MaxValue() float64
}

// Surface displays a finished raster under a window title. Show returns once
// the frame has been handed off; it must not retain the image past the call.
type Surface interface {
	Show(img image.Image, title string) error
}

// Plotter renders grids to a display surface. It holds no per-call state:
// every operation builds a fresh buffer, so repeated calls on an unmodified
// grid produce identical output.
type Plotter struct {
	surface Surface
	lut     *LUT
}

// Option configures a Plotter.
type Option func(*Plotter)

// WithLUT overrides the false-color table used for value plots.
// The default is [Jet].
func WithLUT(l *LUT) Option {
	return func(p *Plotter) {
		if l != nil {
			p.lut = l
		}
	}
}

// New creates a Plotter drawing to the given surface.
func New(s Surface, opts ...Option) *Plotter {
	p := &Plotter{surface: s, lut: Jet}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Map displays the binary occupancy mask: free space white, obstacles black.
// The window title is "<name> Map".
func (p *Plotter) Map(ctx context.Context, g Grid, name string) error {
	return p.run(ctx, g, "map", name+" Map", func() (image.Image, error) {
		return OccupancyImage(g)
	})
}

// OccupancyMap displays continuous occupancy as a soft grayscale map.
// The window title is "<name> Occupancy Map".
func (p *Plotter) OccupancyMap(ctx context.Context, g Grid, name string) error {
	return p.run(ctx, g, "occupancy", name+" Occupancy Map", func() (image.Image, error) {
		return IntensityImage(g)
	})
}

// ArrivalTimes displays the scalar value field normalized against the grid's
// current maximum and false-colored with the plotter's LUT. The window title
// is "<name> Grid values".
func (p *Plotter) ArrivalTimes(ctx context.Context, g Grid, name string) error {
	return p.run(ctx, g, "values", name+" Grid values", func() (image.Image, error) {
		img, err := ValueImage(g)
		if err != nil {
			return nil, err
		}
		return ApplyLUT(img, p.lut), nil
	})
}

// MapPath displays the binary occupancy mask with the path drawn in red.
// The window title is "<name> Map and Path".
func (p *Plotter) MapPath(ctx context.Context, g Grid, path grid.Path, name string) error {
	return p.run(ctx, g, "map-path", name+" Map and Path", func() (image.Image, error) {
		return MapPathImage(g, path)
	})
}

// OccupancyPath displays continuous occupancy with the path drawn in red.
// The window title is "<name> Map and Path".
func (p *Plotter) OccupancyPath(ctx context.Context, g Grid, path grid.Path, name string) error {
	return p.run(ctx, g, "occupancy-path", name+" Map and Path", func() (image.Image, error) {
		return OccupancyPathImage(g, path)
	})
}

// MapPaths displays the binary occupancy mask with up to [MaxPaths] paths,
// each in its palette color. The window title is "<name> Map and Paths".
func (p *Plotter) MapPaths(ctx context.Context, g Grid, paths grid.Paths, name string) error {
	return p.run(ctx, g, "map-paths", name+" Map and Paths", func() (image.Image, error) {
		return MapPathsImage(g, paths)
	})
}

// ArrivalTimesPath displays the false-colored value field with the path
// forced to the LUT's top color. The window title is "<name> Values and Path".
func (p *Plotter) ArrivalTimesPath(ctx context.Context, g Grid, path grid.Path, name string) error {
	return p.run(ctx, g, "values-path", name+" Values and Path", func() (image.Image, error) {
		return ValuePathImage(g, path, p.lut)
	})
}

// run builds a raster and hands it to the surface, emitting plot hooks
// around the build.
func (p *Plotter) run(ctx context.Context, g Grid, kind, title string, build func() (image.Image, error)) error {
	cells := g.CellCount()
	observability.Plot().OnPlotStart(ctx, kind, cells)

	start := time.Now()
	img, err := build()
	observability.Plot().OnPlotComplete(ctx, kind, cells, time.Since(start), err)
	if err != nil {
		return err
	}
	return p.surface.Show(img, title)
}
