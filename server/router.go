// Package server exposes the maze solver over HTTP with gin.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/reindeer/config"
)

// Controller registers a group of routes.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	ginMode     string
	controllers []Controller
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	GinMode     string // gin.ReleaseMode, gin.DebugMode or gin.TestMode
	Controllers []Controller
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(cfg Config) *Router {
	return &Router{
		addr:        cfg.Addr,
		baseURL:     cfg.BaseURL,
		ginMode:     cfg.GinMode,
		controllers: cfg.Controllers,
	}
}

// New wires the solver controller under /api/v1 from the application
// configuration.
func New(cfg config.Config) *Router {
	return NewRouter(Config{
		Addr:        cfg.HTTPAddr,
		BaseURL:     "/api",
		GinMode:     cfg.GinMode,
		Controllers: []Controller{NewSolveController(cfg)},
	})
}

// Handler builds the gin engine with every controller mounted under
// baseURL/v1.
func (r *Router) Handler() *gin.Engine {
	if r.ginMode != "" {
		gin.SetMode(r.ginMode)
	}
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	api := engine.Group(r.baseURL)
	{
		public := api.Group("/v1")
		for _, c := range r.controllers {
			c.RegisterPublic(public)
		}
	}

	return engine
}

// Run starts the HTTP server and blocks until it fails.
func (r *Router) Run() error {
	return r.Handler().Run(r.addr)
}
