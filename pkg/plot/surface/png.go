package surface

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
	"github.com/ZhangCHW/fast-methods/pkg/observability"
)

const bannerHeight = 20 // room for the title text above the frame

// PNGOption configures a PNG surface.
type PNGOption func(*PNG)

// WithPNGScale sets the integer upscale factor applied to each frame.
// Grid cells are tiny; scaling with nearest-neighbor keeps them as crisp
// squares instead of smearing them. The default is 8.
func WithPNGScale(s int) PNGOption {
	return func(p *PNG) {
		if s > 0 {
			p.scale = s
		}
	}
}

// WithPNGBanner toggles the title banner drawn above the frame.
func WithPNGBanner(on bool) PNGOption {
	return func(p *PNG) { p.banner = on }
}

// PNG is a Surface that writes each frame as a PNG file into a directory.
// File names are sequence-prefixed slugs of the frame title, so successive
// frames never clobber each other.
type PNG struct {
	dir    string
	scale  int
	banner bool

	mu       sync.Mutex
	seq      int
	lastPath string
}

// NewPNG creates a PNG surface writing into dir, creating it if needed.
func NewPNG(dir string, opts ...PNGOption) (*PNG, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSurface, err, "creating output directory %s", dir)
	}
	p := &PNG{dir: dir, scale: 8, banner: true}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Show writes the frame to disk. The path of the last written file is
// available via [PNG.LastFile].
func (p *PNG) Show(img image.Image, title string) error {
	ctx := context.Background()
	if err := errors.ValidateTitle(title); err != nil {
		observability.Surface().OnShowError(ctx, "png", title, err)
		return err
	}

	b := img.Bounds()
	scaled := imaging.Resize(img, b.Dx()*p.scale, b.Dy()*p.scale, imaging.NearestNeighbor)

	out := p.compose(scaled, title)

	p.mu.Lock()
	p.seq++
	name := fmt.Sprintf("%03d-%s.png", p.seq, frameSlug(title))
	path := filepath.Join(p.dir, name)
	p.lastPath = path
	p.mu.Unlock()

	if err := gg.SavePNG(path, out); err != nil {
		observability.Surface().OnShowError(ctx, "png", title, err)
		return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", path)
	}

	observability.Surface().OnShow(ctx, "png", title, b.Dx(), b.Dy())
	return nil
}

// compose draws the scaled frame, optionally under a title banner.
func (p *PNG) compose(frame image.Image, title string) image.Image {
	if !p.banner {
		return frame
	}

	fb := frame.Bounds()
	dc := gg.NewContext(fb.Dx(), fb.Dy()+bannerHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.DrawImage(frame, 0, bannerHeight)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, float64(fb.Dx())/2, bannerHeight/2, 0.5, 0.35)
	return dc.Image()
}

// LastFile returns the path of the most recently written frame, or "" if
// none has been written yet.
func (p *PNG) LastFile() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastPath
}

func frameSlug(title string) string {
	if s := slug(title); s != "" {
		return s
	}
	return "frame"
}
