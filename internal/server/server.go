// Package server wires the HTTP listener, the shared middleware chain and the
// core routes, and mounts every feature handler onto one ServeMux.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/KurtErsin/perfume/internal/metrics"
	"github.com/KurtErsin/perfume/internal/version"
)

// Registrar mounts a feature's routes onto the shared mux.
type Registrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// Options tunes the middleware chain. A zero RateLimit disables limiting.
type Options struct {
	RateLimit rate.Limit
	Burst     int
}

// Server is the main perfume HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	metrics    *metrics.Metrics
	mux        *http.ServeMux
	limiter    *ClientLimiter
}

// New creates a new Server instance. Registrars are mounted in order after
// the core routes.
func New(addr string, logger *zap.Logger, m *metrics.Metrics, opts Options, registrars ...Registrar) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	mux := http.NewServeMux()

	s := &Server{
		logger:  logger,
		metrics: m,
		mux:     mux,
	}
	if opts.RateLimit > 0 {
		s.limiter = NewClientLimiter(opts.RateLimit, opts.Burst)
	}

	s.registerCoreRoutes()
	for _, r := range registrars {
		r.RegisterRoutes(mux)
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the mux wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	if s.limiter != nil {
		h = RateLimit(s.limiter, s.metrics)(h)
	}
	h = Instrument(s.metrics)(h)
	h = Logging(s.logger)(h)
	return RequestID(h)
}

// registerCoreRoutes sets up routes that are always available.
func (s *Server) registerCoreRoutes() {
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	if s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Perfume-Version", version.Short())
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "perfume",
		"version": version.Map(),
	})
}
