package errors

import (
	"strings"
	"unicode"
)

// ValidateDimensions validates that a grid's dimension sizes describe a
// plottable 2D grid. Plotting only supports exactly two dimensions, each
// of nonzero size.
func ValidateDimensions(dims []int) error {
	if len(dims) != 2 {
		return New(ErrCodeInvalidDimensions, "grid has %d dimensions, want 2", len(dims))
	}
	for i, d := range dims {
		if d <= 0 {
			return New(ErrCodeInvalidDimensions, "dimension %d has non-positive size %d", i, d)
		}
	}
	return nil
}

// ValidateTitle validates a window/frame title for safety.
// Titles end up in file names and HTML, so control characters are rejected.
func ValidateTitle(title string) error {
	const maxTitleLength = 256
	if len(title) > maxTitleLength {
		return New(ErrCodeInvalidInput, "title too long (max %d characters)", maxTitleLength)
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "title contains invalid control characters")
		}
	}
	return nil
}

// ValidateMapPath validates a map file path supplied on the command line.
// It prevents path traversal and rejects unreasonable paths.
func ValidateMapPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidMap, "map path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidMap, "map path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidMap, "map path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidMap, "map path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateSurfaceName validates a surface backend name from flags or config.
func ValidateSurfaceName(name string, known []string) error {
	for _, k := range known {
		if name == k {
			return nil
		}
	}
	return New(ErrCodeInvalidSurface, "unknown surface %q (supported: %s)", name, strings.Join(known, ", "))
}
