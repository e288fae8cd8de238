// Package stategraph derives, from a static maze.Grid, the implicit graph
// whose nodes are (position, facing) states.
//
// Overview:
//
//   - A State is a grid position plus one of four facings.
//   - From every state there are exactly two turn edges (the perpendicular
//     facings, same position, cost = turn penalty) and at most one move edge
//     (one cell forward, same facing, cost = move cost).
//   - A move edge exists only when both the current and the next cell are
//     Passable. Missing move edges at a boundary or a wall are not errors.
//   - Predecessors exposes the reversed relation used by backward searches:
//     turn edges are symmetric, the move edge comes from the cell behind.
//
// States are never materialised as a node list. Each state has a dense index
// 4*(row*cols+col)+facing in [0, NumStates()), so searches can keep their
// tables in flat slices.
//
// Options:
//
//   - WithTurnCost(c): cost of a 90° turn in place (default 1000).
//   - WithMoveCost(c): cost of one forward step (default 1).
//
// Both must be non-negative; option constructors panic with ErrNegativeCost
// otherwise, the same way invalid thresholds are rejected elsewhere.
//
// Thread safety:
//
//   - A Graph is read-only after New and may be shared between goroutines.
package stategraph
