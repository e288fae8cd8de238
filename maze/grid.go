// Package maze provides the Grid constructor and its read-only accessors.
package maze

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of cells
// and the two marker coordinates. It deep-copies the input to ensure
// immutability. start and end may coincide.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrOutOfBounds (wrapped with the
// offending marker) or ErrMarkerOnWall.
// Complexity: O(R×C) time and memory.
func NewGrid(cells [][]Cell, start, end Point) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	flat := make([]Cell, 0, rows*cols)
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		flat = append(flat, row...)
	}
	g := &Grid{rows: rows, cols: cols, cells: flat, start: start, end: end}
	if err := g.checkMarker("start", start); err != nil {
		return nil, err
	}
	if err := g.checkMarker("end", end); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Grid) checkMarker(name string, p Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s %v", ErrOutOfBounds, name, p)
	}
	if g.cells[g.Index(p)] != Passable {
		return fmt.Errorf("%w: %s %v", ErrMarkerOnWall, name, p)
	}

	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns Rows×Cols.
func (g *Grid) Len() int { return len(g.cells) }

// Start returns the start coordinate.
func (g *Grid) Start() Point { return g.start }

// End returns the end coordinate.
func (g *Grid) End() Point { return g.end }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p; ok is false when p is out of bounds.
func (g *Grid) At(p Point) (c Cell, ok bool) {
	if !g.InBounds(p) {
		return Wall, false
	}

	return g.cells[g.Index(p)], true
}

// Passable reports whether p is in bounds and not a Wall.
// Out-of-bounds points are treated as walls so callers need no extra check.
func (g *Grid) Passable(p Point) bool {
	c, ok := g.At(p)

	return ok && c == Passable
}

// Index maps p to its row-major index: Row*Cols + Col.
// p must be in bounds.
func (g *Grid) Index(p Point) int {
	return p.Row*g.cols + p.Col
}

// Point converts a row-major index back to a coordinate.
func (g *Grid) Point(idx int) Point {
	return Point{Row: idx / g.cols, Col: idx % g.cols}
}

// WithWall returns a copy of g with p turned into a Wall.
// Walling over Start or End yields ErrMarkerOnWall.
func (g *Grid) WithWall(p Point) (*Grid, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if p == g.start || p == g.end {
		return nil, fmt.Errorf("%w: cannot wall over marker %v", ErrMarkerOnWall, p)
	}
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	cp.cells[g.Index(p)] = Wall

	return &cp, nil
}

// Render draws the grid in the text format. Passable points for which mark
// returns true are drawn as GlyphMark unless they hold a marker. A nil mark
// draws the plain grid.
func (g *Grid) Render(mark func(Point) bool) string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Point{Row: r, Col: c}
			switch {
			case p == g.start:
				sb.WriteByte(GlyphStart)
			case p == g.end:
				sb.WriteByte(GlyphEnd)
			case g.cells[g.Index(p)] == Wall:
				sb.WriteByte(GlyphWall)
			case mark != nil && mark(p):
				sb.WriteByte(GlyphMark)
			default:
				sb.WriteByte(GlyphOpen)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String renders the plain grid.
func (g *Grid) String() string {
	return g.Render(nil)
}
