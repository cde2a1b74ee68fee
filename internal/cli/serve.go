package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/ZhangCHW/fast-methods/pkg/plot"
	"github.com/ZhangCHW/fast-methods/pkg/plot/surface"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr   string   // listen address override
	scale  int      // upscale factor override
	title  string   // base window title override
	starts []string // wavefront start points
	goals  []string // path goals
}

// newServeCmd creates the serve command: run the demo pipeline into the HTTP
// live preview surface and serve the frames until interrupted.
func newServeCmd(configPath *string) *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [map]",
		Short: "Serve rendered frames to the browser",
		Long: `Serve renders the map (and, with --start/--goal, the solved field and
paths) into an in-memory frame store and serves it over HTTP. Open the
printed address in a browser; pages update live over a websocket as new
frames arrive. Frames are never written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = opts.addr
			}
			if cmd.Flags().Changed("scale") {
				cfg.Scale = opts.scale
			}
			if cmd.Flags().Changed("title") {
				cfg.Title = opts.title
			}

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

			srv := surface.NewServer(cfg.Addr, surface.WithServerScale(cfg.Scale))

			if err := solveAndRender(ctx, plot.New(srv), m, starts, goals, cfg.Title); err != nil {
				return err
			}

			logger.Info("preview ready", "addr", "http://"+cfg.Addr)
			if err := srv.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config)")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "integer upscale factor")
	cmd.Flags().StringVar(&opts.title, "title", "", "base window title")
	cmd.Flags().StringArrayVar(&opts.starts, "start", []string{"0,0"}, "wavefront start point \"x,y\" (repeatable)")
	cmd.Flags().StringArrayVar(&opts.goals, "goal", nil, "path goal \"x,y\" (repeatable)")

	return cmd
}
