// Package stategraph defines states, edges, options and sentinel errors for
// the oriented-state graph.
package stategraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/reindeer/maze"
)

// Sentinel errors returned by the stategraph package.
var (
	// ErrNilGrid indicates that a nil *maze.Grid was passed to New.
	ErrNilGrid = errors.New("stategraph: grid is nil")

	// ErrNegativeCost indicates a negative turn or move cost. Searches over
	// the graph rely on non-negative weights.
	ErrNegativeCost = errors.New("stategraph: edge cost must be non-negative")

	// ErrInvalidFacing indicates an unrecognised facing name.
	ErrInvalidFacing = errors.New("stategraph: invalid facing")

	// ErrNotAdjacent indicates two consecutive route states without an edge
	// between them.
	ErrNotAdjacent = errors.New("stategraph: states are not joined by an edge")
)

// Default edge costs.
const (
	DefaultTurnCost int64 = 1000
	DefaultMoveCost int64 = 1
)

// State is a node of the implicit graph: a position and a facing.
type State struct {
	Pos    maze.Point
	Facing Facing
}

func (s State) String() string {
	return fmt.Sprintf("%v/%s", s.Pos, s.Facing)
}

// EdgeKind tells a turn edge from a move edge.
type EdgeKind uint8

const (
	// Turn rotates in place by 90°.
	Turn EdgeKind = iota
	// Move steps one cell forward.
	Move
)

func (k EdgeKind) String() string {
	if k == Move {
		return "move"
	}

	return "turn"
}

// Edge is a lazily generated transition. In Successors, To is the target
// state; in Predecessors, To is the source state of the forward edge.
type Edge struct {
	To   State
	Cost int64
	Kind EdgeKind
}

// Options configures edge costs.
//
// TurnCost – cost of a 90° turn in place. Must be ≥ 0.
// MoveCost – cost of a single forward step. Must be ≥ 0.
type Options struct {
	TurnCost int64
	MoveCost int64
}

// Option represents a functional option for configuring a Graph.
type Option func(*Options)

// WithTurnCost sets the turn penalty. Negative values panic with
// ErrNegativeCost to signal invalid configuration early.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrNegativeCost.Error())
		}
		o.TurnCost = c
	}
}

// WithMoveCost sets the forward step cost. Negative values panic with
// ErrNegativeCost.
func WithMoveCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrNegativeCost.Error())
		}
		o.MoveCost = c
	}
}

// DefaultOptions returns TurnCost=1000 and MoveCost=1.
func DefaultOptions() Options {
	return Options{
		TurnCost: DefaultTurnCost,
		MoveCost: DefaultMoveCost,
	}
}

// Graph is a read-only oriented-state view over a maze.Grid.
type Graph struct {
	grid     *maze.Grid
	turnCost int64
	moveCost int64
}
