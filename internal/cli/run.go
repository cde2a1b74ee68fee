package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
	"github.com/ZhangCHW/fast-methods/pkg/grid"
	"github.com/ZhangCHW/fast-methods/pkg/plot"
	"github.com/ZhangCHW/fast-methods/pkg/plot/surface"
	"github.com/ZhangCHW/fast-methods/pkg/solver"
)

// loadMap reads and parses an ASCII map file.
func loadMap(path string) (*grid.Map, error) {
	if err := errors.ValidateMapPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMap, err, "opening %s", path)
	}
	defer f.Close()
	return grid.ParseMap(f)
}

// parsePoint parses a Cartesian "x,y" flag value.
func parsePoint(s string) (grid.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Point{}, errors.New(errors.ErrCodeInvalidInput, "point %q must be x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return grid.Point{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "point %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return grid.Point{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "point %q", s)
	}
	return grid.Point{X: x, Y: y}, nil
}

// parsePoints parses a list of "x,y" flag values.
func parsePoints(raw []string) ([]grid.Point, error) {
	points := make([]grid.Point, len(raw))
	for i, s := range raw {
		p, err := parsePoint(s)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

// buildSurface constructs the display backend selected by the config.
// The http backend has a lifecycle of its own and is owned by the serve
// command, so it is rejected here.
func buildSurface(cfg Config) (plot.Surface, error) {
	switch cfg.Surface {
	case "png":
		return surface.NewPNG(cfg.OutDir, surface.WithPNGScale(cfg.Scale))
	case "term":
		return surface.NewTerminal(os.Stdout), nil
	case "discard":
		return surface.Discard{}, nil
	case "http":
		return nil, errors.New(errors.ErrCodeInvalidSurface, "the http surface is driven by the serve command")
	default:
		return nil, errors.New(errors.ErrCodeInvalidSurface, "unknown surface %q", cfg.Surface)
	}
}

// solveAndRender runs the full demo pipeline against an already constructed
// plotter: occupancy map, wavefront propagation from the starts, and, when
// goals are given, extracted paths overlaid on both the map and the field.
func solveAndRender(ctx context.Context, p *plot.Plotter, m *grid.Map, starts, goals []grid.Point, title string) error {
	logger := loggerFromContext(ctx)

	if err := p.Map(ctx, m, title); err != nil {
		return err
	}

	if len(starts) == 0 {
		return nil
	}

	prog := newProgress(logger)
	if err := solver.Solve(ctx, m, starts...); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Propagated wavefront over %d cells", m.CellCount()))

	if err := p.ArrivalTimes(ctx, m, title); err != nil {
		return err
	}

	if len(goals) == 0 {
		return nil
	}

	paths := make(grid.Paths, 0, len(goals))
	for _, goal := range goals {
		path, err := solver.ExtractPath(m, goal)
		if err != nil {
			return err
		}
		logger.Debug("extracted path", "goal", fmt.Sprintf("(%g,%g)", goal.X, goal.Y), "points", len(path))
		paths = append(paths, path)
	}

	if len(paths) == 1 {
		if err := p.MapPath(ctx, m, paths[0], title); err != nil {
			return err
		}
	} else {
		if err := p.MapPaths(ctx, m, paths, title); err != nil {
			return err
		}
	}
	return p.ArrivalTimesPath(ctx, m, paths[0], title)
}
