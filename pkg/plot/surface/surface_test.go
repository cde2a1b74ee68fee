package surface

import (
	"image"
	"testing"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "FMM Map", want: "fmm-map"},
		{in: "FMM Grid values", want: "fmm-grid-values"},
		{in: "  spaced  out  ", want: "spaced-out"},
		{in: "Mixed/Case:Title", want: "mixed-case-title"},
		{in: "", want: ""},
		{in: "---", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := slug(tt.in); got != tt.want {
				t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFrameSlugFallback(t *testing.T) {
	if got := frameSlug(""); got != "frame" {
		t.Errorf("frameSlug(\"\") = %q, want \"frame\"", got)
	}
	if got := frameSlug("FMM Map"); got != "fmm-map" {
		t.Errorf("frameSlug = %q, want fmm-map", got)
	}
}

func TestDiscard(t *testing.T) {
	var d Discard
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	if err := d.Show(img, "anything"); err != nil {
		t.Errorf("Discard.Show() = %v, want nil", err)
	}
}
