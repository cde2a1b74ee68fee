package plot

import (
	"image"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
	"github.com/ZhangCHW/fast-methods/pkg/grid"
)

// pathPalette lists, per path index, the two RGB channels cleared at each
// path pixel. Clearing two channels leaves the third at its base intensity,
// so each index renders in a distinct color: index 0 clears R and G (blue
// path), index 1 clears G and B (red path). The original plotter indexed
// channels j and j+1 without bounds checks; here the palette is enumerated
// and anything beyond it is rejected.
var pathPalette = [...][2]int{
	{0, 1}, // blue
	{1, 2}, // red
}

// MaxPaths is the number of paths a single overlay can distinguish.
const MaxPaths = len(pathPalette)

// dims2 validates that g is a plottable 2D grid and returns its extent.
func dims2(g Grid) (w, h int, err error) {
	dims := g.Dims()
	if err := errors.ValidateDimensions(dims); err != nil {
		return 0, 0, err
	}
	return dims[0], dims[1], nil
}

// cellIndex maps the image pixel (x, iy) to its grid cell. The vertical
// flip converts raster rows (top-left origin) to Cartesian rows
// (bottom-left origin).
func cellIndex(w, h, x, iy int) int {
	return w*(h-iy-1) + x
}

// pixelOf truncates a Cartesian path point toward zero and converts it to
// raster coordinates. Points outside the grid extent are rejected.
func pixelOf(p grid.Point, w, h int) (x, iy int, err error) {
	if p.X < 0 || p.Y < 0 {
		return 0, 0, errors.New(errors.ErrCodePathOutOfBounds, "path point (%g, %g) has negative coordinates", p.X, p.Y)
	}
	gx, gy := int(p.X), int(p.Y)
	if gx >= w || gy >= h {
		return 0, 0, errors.New(errors.ErrCodePathOutOfBounds, "path point (%g, %g) outside %dx%d grid", p.X, p.Y, w, h)
	}
	return gx, h - gy - 1, nil
}

// validatePaths resolves every path point to raster coordinates before any
// buffer is touched, so a bad point can never leave a half-drawn overlay.
func validatePaths(paths grid.Paths, w, h int) ([][]image.Point, error) {
	if len(paths) > MaxPaths {
		return nil, errors.New(errors.ErrCodePathTooMany, "%d paths given, overlay palette supports %d", len(paths), MaxPaths)
	}
	resolved := make([][]image.Point, len(paths))
	for i, path := range paths {
		pixels := make([]image.Point, len(path))
		for j, p := range path {
			x, iy, err := pixelOf(p, w, h)
			if err != nil {
				return nil, err
			}
			pixels[j] = image.Point{X: x, Y: iy}
		}
		resolved[i] = pixels
	}
	return resolved, nil
}

// OccupancyImage renders the binary occupancy mask of a 2D grid: free cells
// are white (255), blocked cells black (0).
func OccupancyImage(g Grid) (*image.Gray, error) {
	w, h, err := dims2(g)
	if err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	for iy := 0; iy < h; iy++ {
		for x := 0; x < w; x++ {
			if !g.Occupied(cellIndex(w, h, x, iy)) {
				img.Pix[img.PixOffset(x, iy)] = 255
			}
		}
	}
	return img, nil
}

// IntensityImage renders continuous occupancy: each pixel is occupancy*255
// with no inversion, so probabilistic maps show soft gradients rather than
// a hard mask.
func IntensityImage(g Grid) (*image.Gray, error) {
	w, h, err := dims2(g)
	if err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	for iy := 0; iy < h; iy++ {
		for x := 0; x < w; x++ {
			o := g.Occupancy(cellIndex(w, h, x, iy))
			img.Pix[img.PixOffset(x, iy)] = clampSample(o * 255)
		}
	}
	return img, nil
}

// ValueImage renders the scalar field normalized against the grid's current
// maximum value. A non-positive maximum is degenerate (nothing propagated
// yet) and yields an all-zero field instead of NaN samples.
func ValueImage(g Grid) (*image.Gray, error) {
	w, h, err := dims2(g)
	if err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, w, h))

	maxVal := g.MaxValue()
	if maxVal <= 0 {
		return img, nil
	}

	for iy := 0; iy < h; iy++ {
		for x := 0; x < w; x++ {
			v := g.Value(cellIndex(w, h, x, iy))
			img.Pix[img.PixOffset(x, iy)] = clampSample(v / maxVal * 255)
		}
	}
	return img, nil
}

// ApplyLUT expands a single-channel buffer into RGBA via a false-color
// look-up table.
func ApplyLUT(src *image.Gray, lut *LUT) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	for iy := b.Min.Y; iy < b.Max.Y; iy++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetRGBA(x, iy, lut.At(src.GrayAt(x, iy).Y))
		}
	}
	return dst
}

// MapPathImage renders the binary occupancy mask in RGB with path pixels
// drawn in red (green and blue cleared).
func MapPathImage(g Grid, path grid.Path) (*image.RGBA, error) {
	base, err := OccupancyImage(g)
	if err != nil {
		return nil, err
	}
	return overlayOnGray(base, grid.Paths{path}, redOnly)
}

// OccupancyPathImage renders continuous occupancy in RGB with the same red
// path overlay as [MapPathImage].
func OccupancyPathImage(g Grid, path grid.Path) (*image.RGBA, error) {
	base, err := IntensityImage(g)
	if err != nil {
		return nil, err
	}
	return overlayOnGray(base, grid.Paths{path}, redOnly)
}

// MapPathsImage renders the binary occupancy mask in RGB with up to
// [MaxPaths] paths, each drawn in its palette color.
func MapPathsImage(g Grid, paths grid.Paths) (*image.RGBA, error) {
	base, err := OccupancyImage(g)
	if err != nil {
		return nil, err
	}
	return overlayOnGray(base, paths, byIndex)
}

// ValuePathImage renders the normalized scalar field with path pixels forced
// to the top sample (255) before the LUT is applied, so the path always takes
// the map's hottest color regardless of the field underneath.
func ValuePathImage(g Grid, path grid.Path, lut *LUT) (*image.RGBA, error) {
	base, err := ValueImage(g)
	if err != nil {
		return nil, err
	}
	w, h := base.Rect.Dx(), base.Rect.Dy()
	resolved, err := validatePaths(grid.Paths{path}, w, h)
	if err != nil {
		return nil, err
	}
	for _, px := range resolved[0] {
		base.Pix[base.PixOffset(px.X, px.Y)] = 255
	}
	return ApplyLUT(base, lut), nil
}

// paletteMode selects which channel pair an overlay clears.
type paletteMode int

const (
	redOnly paletteMode = iota // always clear G and B, the single-path style
	byIndex                    // clear the palette pair for the path's index
)

// overlayOnGray replicates a single-channel base into RGB, then clears the
// selected channel pair at every path pixel. Paths are validated in full
// before the first write.
func overlayOnGray(base *image.Gray, paths grid.Paths, mode paletteMode) (*image.RGBA, error) {
	w, h := base.Rect.Dx(), base.Rect.Dy()
	resolved, err := validatePaths(paths, w, h)
	if err != nil {
		return nil, err
	}

	img := ApplyLUT(base, Grayscale)

	for i, pixels := range resolved {
		pair := pathPalette[1] // G and B: path shows red
		if mode == byIndex {
			pair = pathPalette[i]
		}
		for _, px := range pixels {
			off := img.PixOffset(px.X, px.Y)
			img.Pix[off+pair[0]] = 0
			img.Pix[off+pair[1]] = 0
		}
	}
	return img, nil
}

// clampSample converts a float sample to the representable 8-bit range.
func clampSample(v float64) uint8 {
	if v <= 0 || v != v { // NaN guards to zero
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
