// Package grid implements the n-dimensional grid map used by the fast
// marching solver and the plotting utilities.
//
// A [Map] stores one cell per grid location. Each cell carries an occupancy
// in [0, 1] (1 = fully traversable, 0 = blocked) and a scalar value (for
// example the arrival time written by wavefront propagation).
//
// # Coordinates
//
// The grid lives in Cartesian coordinates: the origin is the bottom-left
// cell, X grows to the right and Y grows upward. Cells are stored row-major,
// so for a 2D map of width w the cell at (x, y) has linear index w*y + x.
// This is deliberately not the raster-image convention; the plot package owns
// the conversion between the two frames.
//
// # Paths
//
// [Point], [Path] and [Paths] describe planner output in the same Cartesian
// frame. Points are real-valued; consumers truncate them to cell indices.
package grid
