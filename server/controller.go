package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/reindeer/config"
	"github.com/katalvlaran/reindeer/maze"
	"github.com/katalvlaran/reindeer/pathengine"
	"github.com/katalvlaran/reindeer/stategraph"
)

// SolveController handles maze solving requests.
type SolveController struct {
	cfg config.Config
}

// NewSolveController creates a SolveController whose defaults come from cfg.
func NewSolveController(cfg config.Config) *SolveController {
	return &SolveController{cfg: cfg}
}

// RegisterPublic registers the solver routes.
func (c *SolveController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/health", c.health)
	route.POST("/solve", c.solve)
}

func (c *SolveController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// solve parses the maze, runs the engine and reports cost and tiles.
// Input contract violations answer 400; an unreachable end is a normal 200.
func (c *SolveController) solve(ctx *gin.Context) {
	id := uuid.New().String()

	var req SolveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"id": id, "error": err.Error()})
		return
	}

	cfg, err := c.requestConfig(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"id": id, "error": err.Error()})
		return
	}

	grid, err := maze.ParseString(req.Maze)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"id": id, "error": err.Error()})
		return
	}
	g, err := stategraph.New(grid, cfg.GraphOptions()...)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"id": id, "error": err.Error()})
		return
	}

	opts := []pathengine.Option{
		pathengine.WithContext(ctx.Request.Context()),
		pathengine.WithStartFacing(cfg.StartFacing),
	}
	if cfg.Concurrent {
		opts = append(opts, pathengine.WithConcurrentSearch())
	}
	res, err := pathengine.Solve(g, opts...)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"id": id, "error": err.Error()})
		return
	}

	resp := SolveResponse{
		ID:        id,
		Reachable: res.Reachable,
		TileCount: res.TileCount(),
		Tiles:     make([][2]int, len(res.Tiles)),
	}
	for i, p := range res.Tiles {
		resp.Tiles[i] = [2]int{p.Row, p.Col}
	}
	if res.Reachable {
		cost := res.MinCost
		resp.MinCost = &cost
		if req.IncludePath {
			route, err := res.OptimalPath()
			if err != nil && !errors.Is(err, pathengine.ErrNoPath) {
				ctx.JSON(http.StatusInternalServerError, gin.H{"id": id, "error": err.Error()})
				return
			}
			resp.Path = toStateDTOs(route)
		}
	}

	log.Printf("[API] [INFO] solve %s: %dx%d reachable=%t cost=%d tiles=%d",
		id, grid.Rows(), grid.Cols(), res.Reachable, res.MinCost, res.TileCount())
	ctx.JSON(http.StatusOK, resp)
}

// requestConfig overlays the request's optional fields on the server
// configuration.
func (c *SolveController) requestConfig(req SolveRequest) (config.Config, error) {
	cfg := c.cfg
	if req.TurnCost != nil {
		cfg.TurnCost = *req.TurnCost
	}
	if req.MoveCost != nil {
		cfg.MoveCost = *req.MoveCost
	}
	if req.Facing != "" {
		f, err := stategraph.ParseFacing(req.Facing)
		if err != nil {
			return cfg, fmt.Errorf("%w: %v", config.ErrInvalidValue, err)
		}
		cfg.StartFacing = f
	}

	return cfg, cfg.Validate()
}
