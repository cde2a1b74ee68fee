package surface

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
)

func TestTerminalShow(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 4))

	var buf bytes.Buffer
	s := NewTerminal(&buf)
	if err := s.Show(img, "Term Map"); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "Term Map") {
		t.Error("output missing title")
	}

	// Two raster rows per text row: 4 rows -> 2 half-block lines, plus the
	// title line.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("output has %d lines, want 3", len(lines))
	}
	if got := strings.Count(out, "▀"); got != 6 {
		t.Errorf("output has %d half blocks, want 6 (3 wide x 2 rows)", got)
	}
}

func TestTerminalOddHeight(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 3))

	var buf bytes.Buffer
	s := NewTerminal(&buf)
	if err := s.Show(img, "odd"); err != nil {
		t.Fatal(err)
	}

	// Three rows pack into two text lines; the last line has no background.
	if got := strings.Count(buf.String(), "▀"); got != 4 {
		t.Errorf("output has %d half blocks, want 4", got)
	}
}

func TestTerminalRejectsBadTitle(t *testing.T) {
	var buf bytes.Buffer
	s := NewTerminal(&buf)

	err := s.Show(image.NewGray(image.Rect(0, 0, 1, 1)), "a\nb")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("error = %v, want INVALID_INPUT", err)
	}
	if buf.Len() != 0 {
		t.Error("rejected frame must not produce output")
	}
}
