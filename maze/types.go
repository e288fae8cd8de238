// Package maze defines the cell, coordinate and grid types shared by the
// search packages of github.com/katalvlaran/reindeer.
package maze

import "fmt"

// Cell is the content of one grid square.
type Cell uint8

const (
	// Wall blocks movement.
	Wall Cell = iota
	// Passable can be entered and left.
	Passable
)

// String returns the text-grid glyph of the cell.
func (c Cell) String() string {
	if c == Passable {
		return string(GlyphOpen)
	}

	return string(GlyphWall)
}

// Glyphs of the plain-text maze format.
const (
	GlyphWall  = '#'
	GlyphOpen  = '.'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
	// GlyphMark is used by Render for marked points.
	GlyphMark = 'O'
)

// Point is a grid coordinate. Row grows downward, Col grows rightward.
type Point struct {
	Row, Col int
}

// Add returns p translated by (dr, dc).
func (p Point) Add(dr, dc int) Point {
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Less orders points row-major.
func (p Point) Less(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}

	return p.Col < q.Col
}

// String formats p as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is an immutable rectangular maze. Cells are stored row-major;
// start and end are guaranteed Passable and in bounds by construction.
type Grid struct {
	rows, cols int
	cells      []Cell
	start, end Point
}
