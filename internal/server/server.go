// Package server provides the HTTP REST API for resume generation.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-pilot/internal/analysis"
	"github.com/jonathan/resume-pilot/internal/db"
	"github.com/jonathan/resume-pilot/internal/ingestion"
	"github.com/jonathan/resume-pilot/internal/ranking"
	"github.com/jonathan/resume-pilot/internal/scorer"
	"github.com/jonathan/resume-pilot/internal/store"
	"github.com/jonathan/resume-pilot/internal/writer"
)

// Config holds server configuration.
type Config struct {
	Port      int
	JWTSecret string
}

// Deps are the service dependencies the handlers use. Archive may be nil;
// the archive routes report unavailability instead of failing startup.
type Deps struct {
	Store    *store.Store
	Analyzer *analysis.Analyzer
	Ranker   *ranking.Ranker
	Writer   *writer.Generator
	Scorer   *scorer.Scorer
	Fetcher  *ingestion.Fetcher
	Archive  *db.DB
	Logger   *zap.Logger
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	deps       Deps
	jwtService *JWTService
	logger     *zap.Logger
}

// New creates a new server instance.
func New(cfg Config, deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		deps:   deps,
		logger: logger,
	}
	if cfg.JWTSecret != "" {
		s.jwtService = NewJWTService(cfg.JWTSecret)
	} else {
		logger.Warn("no JWT secret configured, mutating routes are unauthenticated")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze-job", s.handleAnalyzeJob)
	mux.HandleFunc("POST /rank-projects", s.handleRankProjects)
	mux.HandleFunc("POST /project-recommendations", s.handleRecommendations)
	mux.HandleFunc("POST /generate-resume", s.handleGenerateResume)
	mux.HandleFunc("POST /generate-cover-letter", s.handleGenerateCoverLetter)
	mux.HandleFunc("POST /cover-letter-intro", s.handleCoverLetterIntro)
	mux.HandleFunc("POST /score-resume", s.handleScoreResume)
	mux.HandleFunc("POST /optimize-section", s.handleOptimizeSection)
	mux.HandleFunc("POST /suggest-improvements", s.handleSuggestImprovements)

	mux.HandleFunc("GET /projects", s.handleListProjects)
	mux.HandleFunc("GET /projects/statistics", s.handleStatistics)
	mux.HandleFunc("GET /projects/search", s.handleSearchProjects)
	mux.HandleFunc("GET /projects/skills", s.handleProjectSkills)
	mux.HandleFunc("GET /projects/technology/{tech}", s.handleProjectsByTechnology)
	mux.HandleFunc("GET /projects/{title}", s.handleGetProject)
	mux.HandleFunc("POST /projects", s.withAuth(s.handleCreateProject))

	mux.HandleFunc("GET /runs", s.handleListRuns)
	mux.HandleFunc("GET /runs/{id}", s.handleGetRun)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // generation requests make several model calls
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.deps.Archive != nil {
		s.deps.Archive.Close()
	}
	s.logger.Info("server stopped")
	return nil
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
