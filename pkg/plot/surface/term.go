package surface

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
	"github.com/ZhangCHW/fast-methods/pkg/observability"
)

var termTitleStyle = lipgloss.NewStyle().Bold(true)

// Terminal is a Surface that draws frames into a terminal using the upper
// half block glyph: the glyph's foreground carries the top pixel and its
// background the bottom pixel, packing two raster rows per text row.
type Terminal struct {
	w io.Writer
}

// NewTerminal creates a terminal surface writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Show renders the frame as colored text. It never clears the screen;
// successive frames stack like successive windows.
func (t *Terminal) Show(img image.Image, title string) error {
	ctx := context.Background()
	if err := errors.ValidateTitle(title); err != nil {
		observability.Surface().OnShowError(ctx, "term", title, err)
		return err
	}

	b := img.Bounds()
	var sb strings.Builder
	sb.WriteString(termTitleStyle.Render(title))
	sb.WriteByte('\n')

	for iy := b.Min.Y; iy < b.Max.Y; iy += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := termHex(img.At(x, iy))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(top))
			if iy+1 < b.Max.Y {
				style = style.Background(lipgloss.Color(termHex(img.At(x, iy+1))))
			}
			sb.WriteString(style.Render("▀"))
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(t.w, sb.String()); err != nil {
		observability.Surface().OnShowError(ctx, "term", title, err)
		return errors.Wrap(errors.ErrCodeInternal, err, "writing frame to terminal")
	}

	observability.Surface().OnShow(ctx, "term", title, b.Dx(), b.Dy())
	return nil
}

// termHex formats a pixel as a lipgloss hex color.
func termHex(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
