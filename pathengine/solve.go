package pathengine

import (
	"context"
	"sort"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/reindeer/maze"
	"github.com/katalvlaran/reindeer/stategraph"
)

// Result is the outcome of Solve.
//
// MinCost is Infinity and Tiles is empty when Reachable is false.
// Tiles lists every position on at least one minimum-cost route, sorted
// row-major, each position once regardless of how many facings qualify.
type Result struct {
	Start     stategraph.State
	Reachable bool
	MinCost   int64
	Tiles     []maze.Point
	Forward   *Table
	Backward  *Table

	g     *stategraph.Graph
	tiles mapset.Set[maze.Point]
}

// Solve runs forward search, backward search and the certificate test
// forward[s]+backward[s] == M over g.
//
// Preconditions and validation:
//  1. g must be non-nil (ErrNilGraph).
//  2. Options are applied in order; WithStartFacing panics on invalid facings.
//
// The searches fail only on cancellation; an unreachable end is reported
// through Result.Reachable.
//
// Complexity: O(S log S) time, O(S) memory, S = rows×cols×4.
func Solve(g *stategraph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	grid := g.Grid()
	start := stategraph.State{Pos: grid.Start(), Facing: cfg.StartFacing}
	ends := endStates(grid.End())

	var fwd, bwd *Table
	if cfg.Concurrent {
		eg, ctx := errgroup.WithContext(cfg.Ctx)
		eg.Go(func() (err error) {
			fwd, err = Forward(ctx, g, start)
			return err
		})
		eg.Go(func() (err error) {
			bwd, err = Backward(ctx, g, ends[:]...)
			return err
		})
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		var err error
		if fwd, err = Forward(cfg.Ctx, g, start); err != nil {
			return nil, err
		}
		if bwd, err = Backward(cfg.Ctx, g, ends[:]...); err != nil {
			return nil, err
		}
	}

	return combine(g, start, ends, fwd, bwd), nil
}

// SolveContext is Solve with ctx prepended to opts.
func SolveContext(ctx context.Context, g *stategraph.Graph, opts ...Option) (*Result, error) {
	return Solve(g, append([]Option{WithContext(ctx)}, opts...)...)
}

func endStates(end maze.Point) [stategraph.NumFacings]stategraph.State {
	var out [stategraph.NumFacings]stategraph.State
	for i, f := range stategraph.Facings {
		out[i] = stategraph.State{Pos: end, Facing: f}
	}

	return out
}

// combine computes M and collects the positions of every state that
// satisfies the optimal-path certificate.
func combine(g *stategraph.Graph, start stategraph.State, ends [stategraph.NumFacings]stategraph.State, fwd, bwd *Table) *Result {
	res := &Result{
		Start:    start,
		MinCost:  Infinity,
		Forward:  fwd,
		Backward: bwd,
		g:        g,
		tiles:    mapset.New[maze.Point](),
	}
	for _, s := range ends {
		if d, ok := fwd.Distance(s); ok && d < res.MinCost {
			res.MinCost = d
		}
	}
	if res.MinCost == Infinity {
		return res
	}
	res.Reachable = true

	m := res.MinCost
	for i := 0; i < fwd.Len(); i++ {
		f, b := fwd.dist[i], bwd.dist[i]
		if f == Infinity || b == Infinity {
			continue
		}
		// f + b == m without overflowing.
		if b <= m && f == m-b {
			res.tiles.Put(g.StateAt(i).Pos)
		}
	}

	res.Tiles = make([]maze.Point, 0, res.tiles.Size())
	res.tiles.Each(func(p maze.Point) {
		res.Tiles = append(res.Tiles, p)
	})
	sort.Slice(res.Tiles, func(i, j int) bool { return res.Tiles[i].Less(res.Tiles[j]) })

	return res
}
