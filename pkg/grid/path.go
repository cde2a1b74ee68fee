package grid

// Point is a location in the grid's Cartesian frame (origin bottom-left,
// Y growing upward). Coordinates are real-valued; plotting truncates them
// toward zero to obtain cell indices.
type Point struct {
	X, Y float64
}

// Path is an ordered sequence of points, insertion order being traversal
// order along the path. A path may be empty.
type Path []Point

// Paths is an ordered set of paths rendered together.
type Paths []Path
