package stategraph

import (
	"fmt"

	"github.com/katalvlaran/reindeer/maze"
)

// New builds the state graph over grid. The grid is shared, not copied; it
// is immutable by construction.
//
// Returns ErrNilGrid if grid is nil.
// Complexity: O(1); edges are generated on demand.
func New(grid *maze.Grid, opts ...Option) (*Graph, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{
		grid:     grid,
		turnCost: cfg.TurnCost,
		moveCost: cfg.MoveCost,
	}, nil
}

// Grid returns the underlying grid.
func (g *Graph) Grid() *maze.Grid { return g.grid }

// TurnCost returns the configured turn penalty.
func (g *Graph) TurnCost() int64 { return g.turnCost }

// MoveCost returns the configured step cost.
func (g *Graph) MoveCost() int64 { return g.moveCost }

// NumStates returns rows*cols*4.
func (g *Graph) NumStates() int {
	return g.grid.Len() * NumFacings
}

// InBounds reports whether s has an in-bounds position and a valid facing.
func (g *Graph) InBounds(s State) bool {
	return g.grid.InBounds(s.Pos) && s.Facing.Valid()
}

// Index returns the dense index of s. s must satisfy InBounds.
func (g *Graph) Index(s State) int {
	return g.grid.Index(s.Pos)*NumFacings + int(s.Facing)
}

// StateAt is the inverse of Index.
func (g *Graph) StateAt(i int) State {
	return State{
		Pos:    g.grid.Point(i / NumFacings),
		Facing: Facing(i % NumFacings),
	}
}

// forward returns the cell one step ahead of s and whether a move edge
// from s to it exists.
func (g *Graph) forward(s State) (maze.Point, bool) {
	dr, dc := s.Facing.Delta()
	next := s.Pos.Add(dr, dc)

	return next, g.grid.Passable(s.Pos) && g.grid.Passable(next)
}

// Successors appends the outgoing edges of s to buf and returns it:
// two turn edges, then the move edge if present.
// s must satisfy InBounds.
func (g *Graph) Successors(s State, buf []Edge) []Edge {
	buf = g.appendTurns(s, buf)
	if next, ok := g.forward(s); ok {
		buf = append(buf, Edge{
			To:   State{Pos: next, Facing: s.Facing},
			Cost: g.moveCost,
			Kind: Move,
		})
	}

	return buf
}

// Predecessors appends the incoming edges of s to buf, reversed: Edge.To is
// the state the forward edge starts from. Turn edges are their own reverse;
// the move edge comes from the cell behind s with the same facing.
// s must satisfy InBounds.
func (g *Graph) Predecessors(s State, buf []Edge) []Edge {
	buf = g.appendTurns(s, buf)
	dr, dc := s.Facing.Opposite().Delta()
	prev := s.Pos.Add(dr, dc)
	if g.grid.Passable(prev) && g.grid.Passable(s.Pos) {
		buf = append(buf, Edge{
			To:   State{Pos: prev, Facing: s.Facing},
			Cost: g.moveCost,
			Kind: Move,
		})
	}

	return buf
}

func (g *Graph) appendTurns(s State, buf []Edge) []Edge {
	for _, f := range s.Facing.Perpendicular() {
		buf = append(buf, Edge{
			To:   State{Pos: s.Pos, Facing: f},
			Cost: g.turnCost,
			Kind: Turn,
		})
	}

	return buf
}

// RouteCost sums the edge costs along route, a sequence of states where each
// consecutive pair must be joined by a forward edge. An empty or single-state
// route costs 0.
//
// Returns ErrNotAdjacent (wrapped with the offending pair) otherwise.
func (g *Graph) RouteCost(route []State) (int64, error) {
	var (
		total int64
		buf   []Edge
	)
	for i := 1; i < len(route); i++ {
		from, to := route[i-1], route[i]
		if !g.InBounds(from) {
			return 0, fmt.Errorf("%w: %v is outside the grid", ErrNotAdjacent, from)
		}
		buf = g.Successors(from, buf[:0])
		found := false
		for _, e := range buf {
			if e.To == to {
				total += e.Cost
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, from, to)
		}
	}

	return total, nil
}
