// Package plot renders diagnostic images of grid maps: occupancy masks,
// arrival-time heat maps, and path overlays.
//
// # Overview
//
// The package is split into two layers:
//
//   - Pure raster builders ([OccupancyImage], [ValueImage], [MapPathsImage],
//     ...) that turn a [Grid] into stdlib image buffers. These are
//     deterministic and testable without any display backend.
//   - A [Plotter] that runs a builder and hands the result to a [Surface]
//     under a window title, mirroring the plotting helpers of the original
//     C++ fast-methods library.
//
// # Coordinate frames
//
// Grids are Cartesian (origin bottom-left, Y up); images are raster (origin
// top-left, Y down). Every builder performs the vertical flip
//
//	imageRow = gridHeight - gridRow - 1
//
// and no horizontal flip. Getting this wrong produces a vertically mirrored
// image that otherwise looks plausible, so the flip is pinned down by tests
// rather than left to visual inspection.
//
// # Usage
//
//	p := plot.New(surface)
//	if err := p.Map(ctx, m, "FMM"); err != nil {
//	    return err
//	}
//	err := p.ArrivalTimesPath(ctx, m, path, "FMM")
package plot
