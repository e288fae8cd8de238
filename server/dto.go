package server

import (
	"github.com/katalvlaran/reindeer/stategraph"
)

// SolveRequest is the body of POST /solve. Omitted costs and facing fall
// back to the server configuration.
type SolveRequest struct {
	Maze        string `json:"maze" binding:"required"`
	TurnCost    *int64 `json:"turnCost,omitempty"`
	MoveCost    *int64 `json:"moveCost,omitempty"`
	Facing      string `json:"facing,omitempty"`
	IncludePath bool   `json:"includePath,omitempty"`
}

// StateDTO is one step of a route.
type StateDTO struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Facing string `json:"facing"`
}

// SolveResponse is the body returned by POST /solve.
// MinCost is null when the end is unreachable.
type SolveResponse struct {
	ID        string     `json:"id"`
	Reachable bool       `json:"reachable"`
	MinCost   *int64     `json:"minCost"`
	TileCount int        `json:"tileCount"`
	Tiles     [][2]int   `json:"tiles"`
	Path      []StateDTO `json:"path,omitempty"`
}

func toStateDTOs(route []stategraph.State) []StateDTO {
	out := make([]StateDTO, len(route))
	for i, s := range route {
		out[i] = StateDTO{Row: s.Pos.Row, Col: s.Pos.Col, Facing: s.Facing.String()}
	}

	return out
}
