// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about plot construction, surface display, and solver runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPlotHooks(&myPlotHooks{})
//	    observability.SetSurfaceHooks(&mySurfaceHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Plot().OnPlotStart(ctx, kind, cells)
//	// ... build the raster ...
//	observability.Plot().OnPlotComplete(ctx, kind, cells, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Plot Hooks
// =============================================================================

// PlotHooks receives events from raster construction.
type PlotHooks interface {
	// OnPlotStart records the start of a plot operation. kind names the
	// operation ("map", "values", "map-paths", ...), cells is the grid size.
	OnPlotStart(ctx context.Context, kind string, cells int)

	// OnPlotComplete records a finished plot operation, successful or not.
	OnPlotComplete(ctx context.Context, kind string, cells int, duration time.Duration, err error)
}

// =============================================================================
// Surface Hooks
// =============================================================================

// SurfaceHooks receives events from display surface operations.
type SurfaceHooks interface {
	// OnShow records a frame handed to a surface backend.
	OnShow(ctx context.Context, backend, title string, width, height int)

	// OnShowError records a failed display attempt.
	OnShowError(ctx context.Context, backend, title string, err error)
}

// =============================================================================
// Solver Hooks
// =============================================================================

// SolverHooks receives events from wavefront propagation runs.
type SolverHooks interface {
	// OnSolveStart records the start of a propagation over cells grid cells.
	OnSolveStart(ctx context.Context, cells int)

	// OnSolveComplete records a finished propagation.
	OnSolveComplete(ctx context.Context, cells, visited int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPlotHooks is a no-op implementation of PlotHooks.
type NoopPlotHooks struct{}

func (NoopPlotHooks) OnPlotStart(context.Context, string, int)                          {}
func (NoopPlotHooks) OnPlotComplete(context.Context, string, int, time.Duration, error) {}

// NoopSurfaceHooks is a no-op implementation of SurfaceHooks.
type NoopSurfaceHooks struct{}

func (NoopSurfaceHooks) OnShow(context.Context, string, string, int, int)   {}
func (NoopSurfaceHooks) OnShowError(context.Context, string, string, error) {}

// NoopSolverHooks is a no-op implementation of SolverHooks.
type NoopSolverHooks struct{}

func (NoopSolverHooks) OnSolveStart(context.Context, int)                               {}
func (NoopSolverHooks) OnSolveComplete(context.Context, int, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	plotHooks    PlotHooks    = NoopPlotHooks{}
	surfaceHooks SurfaceHooks = NoopSurfaceHooks{}
	solverHooks  SolverHooks  = NoopSolverHooks{}
	hooksMu      sync.RWMutex
)

// SetPlotHooks registers custom plot hooks.
// This should be called once at application startup before any plot operations.
func SetPlotHooks(h PlotHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		plotHooks = h
	}
}

// SetSurfaceHooks registers custom surface hooks.
// This should be called once at application startup before any display operations.
func SetSurfaceHooks(h SurfaceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		surfaceHooks = h
	}
}

// SetSolverHooks registers custom solver hooks.
// This should be called once at application startup before any solver runs.
func SetSolverHooks(h SolverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solverHooks = h
	}
}

// Plot returns the registered plot hooks.
func Plot() PlotHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return plotHooks
}

// Surface returns the registered surface hooks.
func Surface() SurfaceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return surfaceHooks
}

// Solver returns the registered solver hooks.
func Solver() SolverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solverHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	plotHooks = NoopPlotHooks{}
	surfaceHooks = NoopSurfaceHooks{}
	solverHooks = NoopSolverHooks{}
}
