// Package pathengine implements the forward and backward Dijkstra phases.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: improved states are pushed
//     again and stale entries are skipped when popped.
//   - Heap order is (cost, state index) so equal-cost pops are reproducible.
//   - Both phases share one runner; only the edge expansion differs.
package pathengine

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/reindeer/stategraph"
)

// Forward computes, for every state, the minimum cost from source.
// The search runs until the queue is empty.
//
// Returns ErrNilGraph, ErrBadSource, or the context error on cancellation.
// Complexity: O(S log S) time, O(S) memory.
func Forward(ctx context.Context, g *stategraph.Graph, source stategraph.State) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return search(ctx, g, g.Successors, source)
}

// Backward computes, for every state, the minimum cost to reach any of
// targets, by a single multi-source search over the reversed edges.
// Seeding all targets at cost 0 is equivalent to a virtual sink joined to
// each of them by a zero-cost edge.
//
// Returns ErrNilGraph, ErrBadSource (also for an empty target list), or the
// context error on cancellation.
func Backward(ctx context.Context, g *stategraph.Graph, targets ...stategraph.State) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: no targets", ErrBadSource)
	}

	return search(ctx, g, g.Predecessors, targets...)
}

// expandFunc appends the edges to relax from a state.
type expandFunc func(s stategraph.State, buf []stategraph.Edge) []stategraph.Edge

func search(ctx context.Context, g *stategraph.Graph, expand expandFunc, sources ...stategraph.State) (*Table, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	for _, s := range sources {
		if !g.InBounds(s) {
			return nil, fmt.Errorf("%w: %v", ErrBadSource, s)
		}
	}
	r := &runner{
		ctx:    ctx,
		g:      g,
		expand: expand,
		table:  newTable(g),
		pq:     make(statePQ, 0, len(sources)),
		buf:    make([]stategraph.Edge, 0, 3),
	}
	r.init(sources)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.table, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	ctx    context.Context
	g      *stategraph.Graph // read-only
	expand expandFunc
	table  *Table
	pq     statePQ
	buf    []stategraph.Edge // reused edge scratch
}

// init sets every source to distance 0 and pushes it once.
func (r *runner) init(sources []stategraph.State) {
	heap.Init(&r.pq)
	for _, s := range sources {
		i := r.g.Index(s)
		if r.table.dist[i] == 0 {
			continue
		}
		r.table.dist[i] = 0
		heap.Push(&r.pq, stateItem{idx: i, cost: 0})
	}
}

// process pops the cheapest state until the heap is empty, skipping stale
// entries whose cost exceeds the table.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(stateItem)
		if item.cost > r.table.dist[item.idx] {
			continue
		}
		r.table.settled++
		r.relax(item.idx, item.cost)
	}

	return nil
}

// relax improves every neighbour of u reachable for less than its current
// table entry. Strict "<" avoids pushing equal-cost duplicates.
// Edges whose sum would reach Infinity are skipped, so a state whose every
// route costs more than an int64 can hold stays unreached.
func (r *runner) relax(u int, d int64) {
	r.buf = r.expand(r.g.StateAt(u), r.buf[:0])
	for _, e := range r.buf {
		if e.Cost >= Infinity-d {
			continue
		}
		v := r.g.Index(e.To)
		nd := d + e.Cost
		if nd >= r.table.dist[v] {
			continue
		}
		r.table.dist[v] = nd
		r.table.parent[v] = u
		heap.Push(&r.pq, stateItem{idx: v, cost: nd})
	}
}

// stateItem is a heap entry: a dense state index and its tentative cost.
type stateItem struct {
	idx  int
	cost int64
}

// statePQ is a min-heap of stateItem ordered by cost, then by index.
type statePQ []stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].idx < pq[j].idx
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
