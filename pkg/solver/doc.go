// Package solver implements fast marching wavefront propagation over a 2D
// occupancy grid, plus steepest-descent path extraction from the resulting
// arrival-time field.
//
// Propagation writes arrival times into the grid's cell values: starts get
// time 0, every reachable free cell gets the time the front arrives, and
// unreachable or blocked cells keep +Inf. Cell occupancy acts as the local
// front speed, so soft occupancy slows the wave instead of stopping it.
//
// The typical flow pairs the solver with the plot package:
//
//	if err := solver.Solve(ctx, m, start); err != nil { ... }
//	path, err := solver.ExtractPath(m, goal)
//	p.ArrivalTimesPath(ctx, m, path, "FMM")
package solver
