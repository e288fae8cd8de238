package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a text maze from r.
//
// Format: one row per line; '#' Wall, '.' Passable, 'S' start, 'E' end.
// A trailing '\r' on each line and trailing blank lines are ignored.
// Exactly one 'S' and one 'E' are required.
//
// Validation happens in reading order, so the first offending line or
// character is the one reported.
func Parse(r io.Reader) (*Grid, error) {
	var (
		cells      [][]Cell
		start, end Point
		hasStart   bool
		hasEnd     bool
		blankTail  int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			blankTail++
			continue
		}
		if blankTail > 0 && len(cells) > 0 {
			return nil, fmt.Errorf("%w: blank line inside grid before row %d", ErrNonRectangular, len(cells))
		}
		blankTail = 0
		row := len(cells)
		if row > 0 && len(line) != len(cells[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, row, len(line), len(cells[0]))
		}
		out := make([]Cell, len(line))
		for col := 0; col < len(line); col++ {
			switch ch := line[col]; ch {
			case GlyphWall:
				out[col] = Wall
			case GlyphOpen:
				out[col] = Passable
			case GlyphStart:
				if hasStart {
					return nil, fmt.Errorf("%w: at (%d,%d)", ErrDuplicateStart, row, col)
				}
				hasStart, start = true, Point{Row: row, Col: col}
				out[col] = Passable
			case GlyphEnd:
				if hasEnd {
					return nil, fmt.Errorf("%w: at (%d,%d)", ErrDuplicateEnd, row, col)
				}
				hasEnd, end = true, Point{Row: row, Col: col}
				out[col] = Passable
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCell, ch, row, col)
			}
		}
		cells = append(cells, out)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasEnd {
		return nil, ErrMissingEnd
	}

	return NewGrid(cells, start, end)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
