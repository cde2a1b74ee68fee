package cli

import (
	"bytes"
	"fmt"
	"image"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
	"github.com/ZhangCHW/fast-methods/pkg/plot"
	"github.com/ZhangCHW/fast-methods/pkg/plot/surface"
)

// capturedFrame is one rendered frame held for interactive browsing.
type capturedFrame struct {
	title string
	body  string // pre-rendered terminal representation
}

// captureSurface implements plot.Surface by rendering frames to strings
// instead of displaying them, for later playback in the viewer.
type captureSurface struct {
	frames []capturedFrame
}

func (c *captureSurface) Show(img image.Image, title string) error {
	var buf bytes.Buffer
	if err := surface.NewTerminal(&buf).Show(img, title); err != nil {
		return err
	}
	c.frames = append(c.frames, capturedFrame{title: title, body: buf.String()})
	return nil
}

// newViewCmd creates the view command: render all frames up front, then let
// the user flip through them in the terminal.
func newViewCmd(configPath *string) *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "view [map]",
		Short: "Browse rendered frames interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
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

			capture := &captureSurface{}
			if err := solveAndRender(ctx, plot.New(capture), m, starts, goals, cfg.Title); err != nil {
				return err
			}
			if len(capture.frames) == 0 {
				return errors.New(errors.ErrCodeInternal, "no frames rendered")
			}

			model := NewFrameViewModel(capture.frames)
			_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "base window title")
	cmd.Flags().StringArrayVar(&opts.starts, "start", []string{"0,0"}, "wavefront start point \"x,y\" (repeatable)")
	cmd.Flags().StringArrayVar(&opts.goals, "goal", nil, "path goal \"x,y\" (repeatable)")

	return cmd
}

// =============================================================================
// FrameViewModel - Interactive frame browsing
// =============================================================================

// FrameViewModel is the bubbletea model for flipping through rendered frames.
type FrameViewModel struct {
	frames []capturedFrame
	cursor int
}

// NewFrameViewModel creates a viewer over the given frames.
func NewFrameViewModel(frames []capturedFrame) FrameViewModel {
	return FrameViewModel{frames: frames}
}

// Init implements tea.Model.
func (m FrameViewModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m FrameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h", "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l", "down", "j":
		if m.cursor < len(m.frames)-1 {
			m.cursor++
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m FrameViewModel) View() string {
	f := m.frames[m.cursor]
	header := StyleTitle.Render(fmt.Sprintf("frame %d/%d", m.cursor+1, len(m.frames)))
	help := StyleDim.Render("←/→ switch frame · q quit")
	return header + "\n" + f.body + help + "\n"
}
