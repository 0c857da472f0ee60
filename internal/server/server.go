// Package server provides the HTTP REST API around the analyzer.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RohanBisht33/trustscan-app/internal/analyze"
	"github.com/RohanBisht33/trustscan-app/internal/profiles"
	"github.com/RohanBisht33/trustscan-app/internal/server/ratelimit"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	analyzer    *analyze.Analyzer
	rateLimiter *ratelimit.Limiter
	useBrowser  bool
}

// Config holds server configuration.
type Config struct {
	Port       int
	Profile    *profiles.Profile
	UseBrowser bool
	CacheSize  int
}

// New creates a new server instance.
func New(cfg Config) *Server {
	profile := cfg.Profile
	if profile == nil {
		profile = profiles.Default()
	}

	s := &Server{
		analyzer:    analyze.New(profile).WithCache(analyze.NewMemoCache(cfg.CacheSize)),
		rateLimiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		useBrowser:  cfg.UseBrowser,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.withRateLimit(s.handleAnalyze))
	mux.HandleFunc("POST /classify", s.withRateLimit(s.handleClassify))
	mux.HandleFunc("POST /resume", s.withRateLimit(s.handleResume))
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	return s
}

// Handler exposes the configured handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("trustscan API listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// withRateLimit wraps a handler with per-client rate limiting keyed by
// remote IP.
func (s *Server) withRateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			key = r.RemoteAddr
		}
		if !s.rateLimiter.Allow(key) {
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next(w, r)
	}
}
