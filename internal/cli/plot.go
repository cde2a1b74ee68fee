package cli

import (
	"github.com/spf13/cobra"

	"github.com/ZhangCHW/fast-methods/pkg/plot"
)

// plotOpts holds the command-line flags for the plot command.
type plotOpts struct {
	surface   string // display backend override
	outDir    string // output directory override for the png surface
	scale     int    // upscale factor override
	title     string // base window title override
	intensity bool   // also render the continuous occupancy map
}

// newPlotCmd creates the plot command, which renders the occupancy map of an
// ASCII map file without running the solver.
func newPlotCmd(configPath *string) *cobra.Command {
	var opts plotOpts

	cmd := &cobra.Command{
		Use:   "plot [map]",
		Short: "Render the occupancy map of an ASCII map file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			applyPlotFlags(&cfg, cmd, &opts)

			m, err := loadMap(args[0])
			if err != nil {
				return err
			}
			dims := m.Dims()
			logger.Debug("map loaded", "width", dims[0], "height", dims[1])

			s, err := buildSurface(cfg)
			if err != nil {
				return err
			}
			p := plot.New(s)

			if err := p.Map(ctx, m, cfg.Title); err != nil {
				return err
			}
			if opts.intensity {
				if err := p.OccupancyMap(ctx, m, cfg.Title); err != nil {
					return err
				}
			}

			logger.Info("rendered", "surface", cfg.Surface)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.surface, "surface", "", "display backend: png, term or discard")
	cmd.Flags().StringVar(&opts.outDir, "out", "", "output directory for the png surface")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "integer upscale factor")
	cmd.Flags().StringVar(&opts.title, "title", "", "base window title")
	cmd.Flags().BoolVar(&opts.intensity, "intensity", false, "also render the continuous occupancy map")

	return cmd
}

// applyPlotFlags folds explicitly set flags over the config file values.
func applyPlotFlags(cfg *Config, cmd *cobra.Command, opts *plotOpts) {
	if cmd.Flags().Changed("surface") {
		cfg.Surface = opts.surface
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = opts.outDir
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = opts.scale
	}
	if cmd.Flags().Changed("title") {
		cfg.Title = opts.title
	}
}
