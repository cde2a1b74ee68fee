package grid

import (
	"bufio"
	"io"
	"strings"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
)

// ParseMap reads a 2D occupancy map from an ASCII description.
//
// Each non-empty line is one grid row, listed top to bottom the way the map
// is drawn. Rows are flipped into Cartesian storage, so the last line of the
// file becomes grid row 0. Recognized cells:
//
//	'#', '1', 'x', 'X'  blocked
//	'.', '0', ' ', '_'  free
//
// All rows must have the same width.
func ParseMap(r io.Reader) (*Map, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMap, err, "reading map")
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidMap, "map is empty")
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, errors.New(errors.ErrCodeInvalidMap, "row %d has width %d, want %d", i, len(row), width)
		}
	}
	height := len(rows)

	m, err := NewMap(width, height)
	if err != nil {
		return nil, err
	}

	for line, row := range rows {
		y := height - line - 1 // top line of the file is the highest row
		for x, c := range row {
			idx := width*y + x
			switch c {
			case '#', '1', 'x', 'X':
				m.SetOccupied(idx)
			case '.', '0', ' ', '_':
				// free, the default
			default:
				return nil, errors.New(errors.ErrCodeInvalidMap, "unknown cell %q at line %d column %d", c, line, x)
			}
		}
	}
	return m, nil
}
