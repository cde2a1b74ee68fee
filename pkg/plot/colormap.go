package plot

import "image/color"

// LUT is a 256-entry false-color look-up table. Index with a normalized
// 8-bit sample to obtain its display color. A LUT is immutable after
// construction; the package-level tables are safe for concurrent use.
type LUT [256]color.RGBA

// At returns the color for an 8-bit sample.
func (l *LUT) At(v uint8) color.RGBA {
	return l[v]
}

// Jet is the classic blue-cyan-green-yellow-red ramp used for arrival-time
// heat maps. Low values map to dark blue, high values to dark red.
var Jet = makeJet()

// Grayscale maps every sample to itself. Useful for surfaces that want the
// raw normalized field without false coloring.
var Grayscale = makeGrayscale()

// makeJet builds the jet ramp analytically. Each channel is a truncated
// triangle wave over the normalized range: red peaks at the top, green in
// the middle, blue at the bottom.
func makeJet() *LUT {
	var l LUT
	for i := range l {
		t := float64(i) / 255
		l[i] = color.RGBA{
			R: jetChannel(1.5 - abs(4*t-3)),
			G: jetChannel(1.5 - abs(4*t-2)),
			B: jetChannel(1.5 - abs(4*t-1)),
			A: 255,
		}
	}
	return &l
}

func makeGrayscale() *LUT {
	var l LUT
	for i := range l {
		v := uint8(i)
		l[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return &l
}

// jetChannel clamps a channel intensity to [0, 1] and scales it to 8 bits.
func jetChannel(v float64) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
