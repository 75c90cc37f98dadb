package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dgallion1/edgarparse/internal/config"
	"github.com/dgallion1/edgarparse/internal/parser"
	"github.com/dgallion1/edgarparse/internal/pipeline"
)

// Server is the HTTP API server for edgarparse.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	opts         parser.Options
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server. opts are the default
// parser policies; requests may override them per call.
func NewServer(orch *pipeline.Orchestrator, opts parser.Options, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		opts:         opts,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/parse", s.handleParse)
		r.Post("/api/parse/{kind}", s.handleParse)
		r.Post("/api/jobs", s.handleSubmitJobs)
		r.Get("/api/jobs/{jobID}", s.handleJobStatus)
		r.Get("/api/stats/parse", s.handleParseStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
