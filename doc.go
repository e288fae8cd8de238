// Package reindeer solves turn-weighted mazes: walking straight is cheap,
// turning in place is expensive, and the goal is reached in any facing.
//
// What it computes:
//
//   - The minimum cost from the start to the end.
//   - Every tile that lies on at least one minimum-cost route, found with a
//     forward and a backward Dijkstra and the certificate
//     forward[s] + backward[s] == M.
//
// Layout:
//
//	maze/         Cell, Point, Grid; text parsing and rendering
//	stategraph/   (position, facing) states, turn and move edges, reversed edges
//	pathengine/   forward/backward Dijkstra, optimal tiles, one optimal route
//	config/       environment and .env configuration
//	server/       HTTP API (gin)
//	cmd/reindeer  CLI: solve, serve
//
// Quick ASCII example:
//
//	#######
//	#S...E#   cost 4, tiles 5
//	#######
package reindeer
