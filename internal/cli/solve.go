package cli

import (
	"github.com/spf13/cobra"

	"github.com/ZhangCHW/fast-methods/pkg/plot"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	plotOpts
	starts []string // wavefront start points, "x,y"
	goals  []string // path goals, "x,y", at most plot.MaxPaths
}

// newSolveCmd creates the solve command: propagate a wavefront from the
// start points and render the arrival-time field, plus extracted paths when
// goals are given.
func newSolveCmd(configPath *string) *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [map]",
		Short: "Run fast marching over a map and render the results",
		Long: `Solve propagates a wavefront from the given start points over the free
cells of the map, writing an arrival time into every reached cell, then
renders the occupancy map and the false-colored field. With --goal, a path
is extracted by steepest descent and overlaid on both.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			applyPlotFlags(&cfg, cmd, &opts.plotOpts)

			starts, err := parsePoints(opts.starts)
			if err != nil {
				return err
			}
			goals, err := parsePoints(opts.goals)
			if err != nil {
				return err
			}

			m, err := loadMap(args[0])
			if err != nil {
				return err
			}

			s, err := buildSurface(cfg)
			if err != nil {
				return err
			}

			return solveAndRender(ctx, plot.New(s), m, starts, goals, cfg.Title)
		},
	}

	cmd.Flags().StringVar(&opts.surface, "surface", "", "display backend: png, term or discard")
	cmd.Flags().StringVar(&opts.outDir, "out", "", "output directory for the png surface")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "integer upscale factor")
	cmd.Flags().StringVar(&opts.title, "title", "", "base window title")
	cmd.Flags().StringArrayVar(&opts.starts, "start", []string{"0,0"}, "wavefront start point \"x,y\" (repeatable)")
	cmd.Flags().StringArrayVar(&opts.goals, "goal", nil, "path goal \"x,y\" (repeatable)")

	return cmd
}
