package maze_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reindeer/maze"
)

const corridor = `#######
#S...E#
#######
`

// TestParse_Corridor checks dimensions, markers and passability of a
// one-lane corridor.
func TestParse_Corridor(t *testing.T) {
	g, err := maze.ParseString(corridor)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 7, g.Cols())
	assert.Equal(t, 21, g.Len())
	assert.Equal(t, maze.Point{Row: 1, Col: 1}, g.Start())
	assert.Equal(t, maze.Point{Row: 1, Col: 5}, g.End())
	assert.True(t, g.Passable(maze.Point{Row: 1, Col: 3}))
	assert.False(t, g.Passable(maze.Point{Row: 0, Col: 3}))
	assert.False(t, g.Passable(maze.Point{Row: -1, Col: 3}), "out of bounds reads as wall")
}

// TestParse_CRLFAndTrailingBlank accepts Windows line endings and trailing
// blank lines.
func TestParse_CRLFAndTrailingBlank(t *testing.T) {
	in := strings.ReplaceAll(corridor, "\n", "\r\n") + "\r\n\r\n"
	g, err := maze.ParseString(in)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, corridor, g.String())
}

// TestParse_Errors verifies each input contract violation maps to its sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", maze.ErrEmptyGrid},
		{"OnlyBlankLines", "\n\n", maze.ErrEmptyGrid},
		{"Ragged", "#S#\n#E\n", maze.ErrNonRectangular},
		{"BlankInside", "#S#\n\n#E#\n", maze.ErrNonRectangular},
		{"InvalidChar", "#S.x#E#\n", maze.ErrInvalidCell},
		{"MissingStart", "#..E#\n", maze.ErrMissingStart},
		{"MissingEnd", "#S..#\n", maze.ErrMissingEnd},
		{"DuplicateStart", "#S.S.E#\n", maze.ErrDuplicateStart},
		{"DuplicateEnd", "#S.E.E#\n", maze.ErrDuplicateEnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.ParseString(tc.in)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_InvalidCellPosition reports the offending character and location.
func TestParse_InvalidCellPosition(t *testing.T) {
	_, err := maze.ParseString("#####\n#S?E#\n#####\n")
	require.ErrorIs(t, err, maze.ErrInvalidCell)
	assert.Contains(t, err.Error(), "'?'")
	assert.Contains(t, err.Error(), "(1,2)")
}
