package pathengine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reindeer/maze"
	"github.com/katalvlaran/reindeer/pathengine"
	"github.com/katalvlaran/reindeer/stategraph"
)

// sampleSmall is the 15×15 reference maze: cost 7036, 45 tiles.
const sampleSmall = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

// sampleLarge is the 17×17 reference maze: cost 11048, 64 tiles.
const sampleLarge = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

// openRoom is a 5×5 room without walls, S bottom-left and E top-right.
const openRoom = `....E
.....
.....
.....
S....
`

// detour has a straight corridor plus a longer loop below it.
const detour = `#######
#S...E#
#.###.#
#.....#
#######
`

// enclosed walls the end off completely.
const enclosed = `#######
#S.#E.#
#..####
#######
`

// Common costs used across tests.
const (
	Turn1000 int64 = 1000
	Move1    int64 = 1
)

func mustGrid(t testing.TB, text string) *maze.Grid {
	t.Helper()
	grid, err := maze.ParseString(text)
	require.NoError(t, err)

	return grid
}

func mustGraph(t testing.TB, grid *maze.Grid, opts ...stategraph.Option) *stategraph.Graph {
	t.Helper()
	g, err := stategraph.New(grid, opts...)
	require.NoError(t, err)

	return g
}

func mustSolve(t testing.TB, text string, opts ...pathengine.Option) (*stategraph.Graph, *pathengine.Result) {
	t.Helper()
	g := mustGraph(t, mustGrid(t, text))
	res, err := pathengine.Solve(g, opts...)
	require.NoError(t, err)

	return g, res
}

func pt(row, col int) maze.Point {
	return maze.Point{Row: row, Col: col}
}
