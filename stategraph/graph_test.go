package stategraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reindeer/maze"
	"github.com/katalvlaran/reindeer/stategraph"
)

// plus is a 3×3 cross: the centre has four open neighbours, corners are walls.
const plus = `#.#
.S.
#E#
`

func newGraph(t *testing.T, text string, opts ...stategraph.Option) *stategraph.Graph {
	t.Helper()
	grid, err := maze.ParseString(text)
	require.NoError(t, err)
	g, err := stategraph.New(grid, opts...)
	require.NoError(t, err)

	return g
}

func st(row, col int, f stategraph.Facing) stategraph.State {
	return stategraph.State{Pos: maze.Point{Row: row, Col: col}, Facing: f}
}

func TestNew_NilGrid(t *testing.T) {
	g, err := stategraph.New(nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, stategraph.ErrNilGrid)
}

func TestNew_Options(t *testing.T) {
	g := newGraph(t, plus)
	assert.Equal(t, stategraph.DefaultTurnCost, g.TurnCost())
	assert.Equal(t, stategraph.DefaultMoveCost, g.MoveCost())

	g = newGraph(t, plus, stategraph.WithTurnCost(7), stategraph.WithMoveCost(0))
	assert.Equal(t, int64(7), g.TurnCost())
	assert.Equal(t, int64(0), g.MoveCost())
}

func TestOptions_NegativePanics(t *testing.T) {
	assert.PanicsWithValue(t, stategraph.ErrNegativeCost.Error(), func() {
		stategraph.WithTurnCost(-1)(&stategraph.Options{})
	})
	assert.PanicsWithValue(t, stategraph.ErrNegativeCost.Error(), func() {
		stategraph.WithMoveCost(-1)(&stategraph.Options{})
	})
}

// TestSuccessors_Centre has two turns and one move in each facing.
func TestSuccessors_Centre(t *testing.T) {
	g := newGraph(t, plus)

	edges := g.Successors(st(1, 1, stategraph.Right), nil)
	require.Len(t, edges, 3)
	assert.Equal(t, stategraph.Edge{To: st(1, 1, stategraph.Up), Cost: 1000, Kind: stategraph.Turn}, edges[0])
	assert.Equal(t, stategraph.Edge{To: st(1, 1, stategraph.Down), Cost: 1000, Kind: stategraph.Turn}, edges[1])
	assert.Equal(t, stategraph.Edge{To: st(1, 2, stategraph.Right), Cost: 1, Kind: stategraph.Move}, edges[2])
}

// TestSuccessors_Blocked drops the move edge at a wall or the boundary.
func TestSuccessors_Blocked(t *testing.T) {
	g := newGraph(t, plus)

	// (1,2) facing right leaves the grid.
	edges := g.Successors(st(1, 2, stategraph.Right), nil)
	assert.Len(t, edges, 2)
	// (1,0) facing up hits the wall at (0,0).
	edges = g.Successors(st(1, 0, stategraph.Up), nil)
	assert.Len(t, edges, 2)
	// A wall state only turns.
	edges = g.Successors(st(0, 0, stategraph.Right), nil)
	assert.Len(t, edges, 2)
}

// TestPredecessors_ReverseOfSuccessors checks u→v in Successors iff v has
// an edge back to u in Predecessors, with equal cost, for every state.
func TestPredecessors_ReverseOfSuccessors(t *testing.T) {
	g := newGraph(t, plus, stategraph.WithTurnCost(10), stategraph.WithMoveCost(3))

	type arc struct {
		from, to stategraph.State
		cost     int64
	}
	fwd := map[arc]bool{}
	rev := map[arc]bool{}
	var buf []stategraph.Edge
	for i := 0; i < g.NumStates(); i++ {
		u := g.StateAt(i)
		buf = g.Successors(u, buf[:0])
		for _, e := range buf {
			fwd[arc{u, e.To, e.Cost}] = true
		}
		buf = g.Predecessors(u, buf[:0])
		for _, e := range buf {
			rev[arc{e.To, u, e.Cost}] = true
		}
	}
	assert.Equal(t, fwd, rev)
}

func TestIndex_RoundTrip(t *testing.T) {
	g := newGraph(t, plus)
	require.Equal(t, 36, g.NumStates())
	seen := make(map[stategraph.State]bool, g.NumStates())
	for i := 0; i < g.NumStates(); i++ {
		s := g.StateAt(i)
		assert.True(t, g.InBounds(s))
		assert.Equal(t, i, g.Index(s))
		seen[s] = true
	}
	assert.Len(t, seen, g.NumStates())
	assert.False(t, g.InBounds(st(3, 0, stategraph.Up)))
	assert.False(t, g.InBounds(stategraph.State{Facing: stategraph.Facing(9)}))
}

func TestRouteCost(t *testing.T) {
	g := newGraph(t, plus)

	route := []stategraph.State{
		st(1, 1, stategraph.Right),
		st(1, 1, stategraph.Down),
		st(2, 1, stategraph.Down),
	}
	cost, err := g.RouteCost(route)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), cost)

	cost, err = g.RouteCost(route[:1])
	require.NoError(t, err)
	assert.Zero(t, cost)

	// A U-turn is two edges, not one.
	_, err = g.RouteCost([]stategraph.State{st(1, 1, stategraph.Right), st(1, 1, stategraph.Left)})
	assert.ErrorIs(t, err, stategraph.ErrNotAdjacent)
}
