package pathengine

import (
	"fmt"

	"github.com/katalvlaran/reindeer/maze"
	"github.com/katalvlaran/reindeer/stategraph"
)

// TileCount returns the number of distinct positions on some optimal route.
func (r *Result) TileCount() int {
	return len(r.Tiles)
}

// Cost returns MinCost and Reachable as a pair.
func (r *Result) Cost() (int64, bool) {
	return r.MinCost, r.Reachable
}

// OnOptimalPath reports whether s lies on at least one minimum-cost route.
func (r *Result) OnOptimalPath(s stategraph.State) bool {
	if !r.Reachable {
		return false
	}
	f, ok := r.Forward.Distance(s)
	if !ok {
		return false
	}
	b, ok := r.Backward.Distance(s)
	if !ok {
		return false
	}

	return b <= r.MinCost && f == r.MinCost-b
}

// OnOptimalTile reports whether p is one of r.Tiles.
func (r *Result) OnOptimalTile(p maze.Point) bool {
	return r.tiles.Has(p)
}

// OptimalPath returns one minimum-cost route as a state sequence, from the
// start state to an end state. It follows the backward search tree, whose
// parent links always point one edge closer to the end.
//
// Returns ErrNoPath when the end is unreachable.
// Complexity: O(route length).
func (r *Result) OptimalPath() ([]stategraph.State, error) {
	if !r.Reachable {
		return nil, ErrNoPath
	}
	route := []stategraph.State{r.Start}
	for cur := r.Start; ; {
		next, ok := r.Backward.Parent(cur)
		if !ok {
			break
		}
		route = append(route, next)
		cur = next
	}
	if last := route[len(route)-1]; last.Pos != r.g.Grid().End() {
		return nil, fmt.Errorf("%w: route stops at %v", ErrNoPath, last)
	}

	return route, nil
}

// Render draws the maze with every optimal tile marked.
func (r *Result) Render() string {
	return r.g.Grid().Render(r.OnOptimalTile)
}
