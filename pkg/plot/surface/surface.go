package surface

import (
	"image"
	"strings"
	"unicode"
)

// Discard is a Surface that drops every frame.
type Discard struct{}

// Show implements plot.Surface by doing nothing.
func (Discard) Show(image.Image, string) error { return nil }

// slug converts a frame title to a safe lowercase file-name fragment.
// Runs of non-alphanumeric characters collapse into single dashes.
func slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
