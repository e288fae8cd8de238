// Package pathengine solves oriented-state mazes: it finds the minimum cost
// from the start to the end and every tile that lies on at least one
// minimum-cost route.
//
// Overview:
//
//   - Forward runs Dijkstra from the start state over stategraph.Successors,
//     to queue exhaustion, yielding forward[s] for every state.
//   - Backward runs a multi-source Dijkstra seeded with all four end states at
//     cost 0 over stategraph.Predecessors, yielding backward[s], the cheapest
//     way to finish from s.
//   - Solve combines both tables. With M = min over f of forward[(end,f)], a
//     state s lies on some optimal route iff forward[s]+backward[s] == M.
//     The positions of those states form the optimal tile set.
//
// Determinism:
//
//   - Heap entries are ordered by (cost, state index), so ties always pop in
//     the same order and repeated runs return identical tables.
//
// Complexity:
//
//   - Time:  O(S log S) per search, S = rows×cols×4 (each state has ≤ 3 edges).
//   - Space: O(S) per table plus O(S) heap entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:   nil *stategraph.Graph passed to a search.
//   - ErrBadSource:  a source state outside the graph.
//   - ErrNoPath:     OptimalPath on an unreachable result.
//
// An unreachable end is not an error: Solve returns a Result with
// Reachable == false.
//
// Concurrency:
//
//   - WithConcurrentSearch runs the forward and backward phases on separate
//     goroutines. They share only the read-only graph; results are identical
//     to the sequential run.
//   - WithContext makes both searches abort with the context error once it
//     is cancelled.
package pathengine
