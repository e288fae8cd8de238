package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reindeer/maze"
)

func openCells(rows, cols int) [][]maze.Cell {
	cells := make([][]maze.Cell, rows)
	for r := range cells {
		cells[r] = make([]maze.Cell, cols)
		for c := range cells[r] {
			cells[r][c] = maze.Passable
		}
	}

	return cells
}

// TestNewGrid_Errors verifies NewGrid rejects empty, ragged and badly
// marked inputs.
func TestNewGrid_Errors(t *testing.T) {
	walled := openCells(2, 2)
	walled[0][0] = maze.Wall
	origin := maze.Point{}

	cases := []struct {
		name       string
		cells      [][]maze.Cell
		start, end maze.Point
		err        error
	}{
		{"EmptyRows", nil, origin, origin, maze.ErrEmptyGrid},
		{"EmptyCols", [][]maze.Cell{{}}, origin, origin, maze.ErrEmptyGrid},
		{"Ragged", [][]maze.Cell{{maze.Passable, maze.Passable}, {maze.Passable}}, origin, origin, maze.ErrNonRectangular},
		{"StartOutOfBounds", openCells(2, 2), maze.Point{Row: 2, Col: 0}, origin, maze.ErrOutOfBounds},
		{"EndOutOfBounds", openCells(2, 2), origin, maze.Point{Row: 0, Col: -1}, maze.ErrOutOfBounds},
		{"StartOnWall", walled, origin, maze.Point{Row: 1, Col: 1}, maze.ErrMarkerOnWall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.NewGrid(tc.cells, tc.start, tc.end)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak in.
func TestNewGrid_DeepCopy(t *testing.T) {
	cells := openCells(2, 3)
	g, err := maze.NewGrid(cells, maze.Point{}, maze.Point{Row: 1, Col: 2})
	require.NoError(t, err)

	cells[0][1] = maze.Wall
	assert.True(t, g.Passable(maze.Point{Row: 0, Col: 1}))
}

// TestNewGrid_StartEqualsEnd allows the degenerate single-cell route.
func TestNewGrid_StartEqualsEnd(t *testing.T) {
	g, err := maze.NewGrid(openCells(1, 1), maze.Point{}, maze.Point{})
	require.NoError(t, err)
	assert.Equal(t, g.Start(), g.End())
}

// TestGrid_IndexRoundTrip checks Index and Point are inverse on every cell.
func TestGrid_IndexRoundTrip(t *testing.T) {
	g, err := maze.NewGrid(openCells(3, 4), maze.Point{}, maze.Point{Row: 2, Col: 3})
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, i, g.Index(g.Point(i)))
	}
	assert.Equal(t, maze.Point{Row: 1, Col: 2}, g.Point(6))
}

// TestGrid_WithWall returns a modified copy and protects the markers.
func TestGrid_WithWall(t *testing.T) {
	g, err := maze.ParseString("S..\n...\n..E\n")
	require.NoError(t, err)

	mid := maze.Point{Row: 1, Col: 1}
	w, err := g.WithWall(mid)
	require.NoError(t, err)
	assert.False(t, w.Passable(mid))
	assert.True(t, g.Passable(mid), "original grid must be untouched")

	_, err = g.WithWall(g.Start())
	assert.ErrorIs(t, err, maze.ErrMarkerOnWall)
	_, err = g.WithWall(maze.Point{Row: 5, Col: 5})
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)
}

// TestGrid_Render marks passable points but never hides markers or walls.
func TestGrid_Render(t *testing.T) {
	g, err := maze.ParseString("#####\n#S.E#\n#####\n")
	require.NoError(t, err)

	out := g.Render(func(p maze.Point) bool { return p.Row == 1 })
	assert.Equal(t, "#####\n#SOE#\n#####\n", out)
}

func TestPoint_Less(t *testing.T) {
	a := maze.Point{Row: 0, Col: 5}
	b := maze.Point{Row: 1, Col: 0}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, b.Less(b.Add(0, 1)))
	assert.Equal(t, "(1,0)", b.String())
}
