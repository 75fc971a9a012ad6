// Package httpapi exposes the decision engine over a small JSON API for the
// serve command. It is a local/dev front-end: JSON in, JSON out, no auth.
package httpapi

import (
	"context"
	"net/http"

	"github.com/facetkit/facet/internal/contract"
	"github.com/gin-gonic/gin"
)

// Server is the HTTP front-end for the decision engine.
type Server struct {
	cfg    *contract.Config
	router *gin.Engine
}

// NewServer builds the gin engine and registers all routes without starting
// the listener. This is exposed for unit testing.
func NewServer(cfg *contract.Config) *Server {
	s := &Server{
		cfg:    cfg,
		router: gin.Default(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes.
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealthz)

	v1 := s.router.Group("/api/v1")
	v1.POST("/analyze", s.handleAnalyze)
	v1.POST("/resolve", s.handleResolve)
	v1.GET("/heuristics", s.handleHeuristics)
}

// Handler exposes the router so tests can drive requests through httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server on the configured listen address and blocks.
func (s *Server) Run() error {
	return s.router.Run(s.cfg.ListenAddr)
}

// StartHTTPServer builds and runs the Facet HTTP API server.
func StartHTTPServer(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	return NewServer(cfg).Run()
}
