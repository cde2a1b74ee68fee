package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Plot hooks
	p := NoopPlotHooks{}
	p.OnPlotStart(ctx, "map", 400)
	p.OnPlotComplete(ctx, "map", 400, time.Second, nil)

	// Surface hooks
	s := NoopSurfaceHooks{}
	s.OnShow(ctx, "png", "FMM Map", 20, 20)
	s.OnShowError(ctx, "png", "FMM Map", nil)

	// Solver hooks
	f := NoopSolverHooks{}
	f.OnSolveStart(ctx, 400)
	f.OnSolveComplete(ctx, 400, 380, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Plot().(NoopPlotHooks); !ok {
		t.Error("Plot() should return NoopPlotHooks by default")
	}
	if _, ok := Surface().(NoopSurfaceHooks); !ok {
		t.Error("Surface() should return NoopSurfaceHooks by default")
	}
	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Solver() should return NoopSolverHooks by default")
	}

	// Set custom hooks
	customPlot := &testPlotHooks{}
	SetPlotHooks(customPlot)
	if Plot() != customPlot {
		t.Error("SetPlotHooks should set custom hooks")
	}

	customSurface := &testSurfaceHooks{}
	SetSurfaceHooks(customSurface)
	if Surface() != customSurface {
		t.Error("SetSurfaceHooks should set custom hooks")
	}

	customSolver := &testSolverHooks{}
	SetSolverHooks(customSolver)
	if Solver() != customSolver {
		t.Error("SetSolverHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Plot().(NoopPlotHooks); !ok {
		t.Error("Reset() should restore NoopPlotHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPlotHooks{}
	SetPlotHooks(custom)

	// Setting nil should be ignored
	SetPlotHooks(nil)

	if Plot() != custom {
		t.Error("SetPlotHooks(nil) should be ignored")
	}

	Reset()
}

func TestHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPlotHooks{}
	SetPlotHooks(custom)

	ctx := context.Background()
	Plot().OnPlotStart(ctx, "values", 100)
	Plot().OnPlotComplete(ctx, "values", 100, time.Millisecond, nil)

	if custom.starts != 1 {
		t.Errorf("starts = %d, want 1", custom.starts)
	}
	if custom.completes != 1 {
		t.Errorf("completes = %d, want 1", custom.completes)
	}
}

// Test hook implementations.

type testPlotHooks struct {
	starts    int
	completes int
}

func (h *testPlotHooks) OnPlotStart(context.Context, string, int) { h.starts++ }
func (h *testPlotHooks) OnPlotComplete(context.Context, string, int, time.Duration, error) {
	h.completes++
}

type testSurfaceHooks struct{}

func (h *testSurfaceHooks) OnShow(context.Context, string, string, int, int)   {}
func (h *testSurfaceHooks) OnShowError(context.Context, string, string, error) {}

type testSolverHooks struct{}

func (h *testSolverHooks) OnSolveStart(context.Context, int)                               {}
func (h *testSolverHooks) OnSolveComplete(context.Context, int, int, time.Duration, error) {}
