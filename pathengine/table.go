package pathengine

import (
	"github.com/katalvlaran/reindeer/stategraph"
)

// Table is the distance table of one search, indexed densely by state.
// It also records the search tree: parent[i] is the state through which i
// was last improved, or -1 for sources and unreached states.
//
// For a backward table the parent of s is the next state on a cheapest way
// to finish, so following parents walks toward the end.
type Table struct {
	g       *stategraph.Graph
	dist    []int64
	parent  []int
	settled int
}

func newTable(g *stategraph.Graph) *Table {
	n := g.NumStates()
	t := &Table{
		g:      g,
		dist:   make([]int64, n),
		parent: make([]int, n),
	}
	for i := range t.dist {
		t.dist[i] = Infinity
		t.parent[i] = -1
	}

	return t
}

// Distance returns the final cost recorded for s. ok is false when s was
// never reached or lies outside the graph; d is Infinity then.
func (t *Table) Distance(s stategraph.State) (d int64, ok bool) {
	if !t.g.InBounds(s) {
		return Infinity, false
	}
	d = t.dist[t.g.Index(s)]

	return d, d != Infinity
}

// Parent returns the search-tree parent of s.
func (t *Table) Parent(s stategraph.State) (stategraph.State, bool) {
	if !t.g.InBounds(s) {
		return stategraph.State{}, false
	}
	p := t.parent[t.g.Index(s)]
	if p < 0 {
		return stategraph.State{}, false
	}

	return t.g.StateAt(p), true
}

// Len returns the number of entries (the size of the state space).
func (t *Table) Len() int { return len(t.dist) }

// Settled returns how many states were finalised by the search.
func (t *Table) Settled() int { return t.settled }
