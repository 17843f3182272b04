package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/sheetview/internal/launcher"
	"github.com/dgallion1/sheetview/internal/source"
	"github.com/dgallion1/sheetview/internal/tools"
)

// StatsSource reports outbound fetch latency.
type StatsSource interface {
	Snapshot() source.StatsSnapshot
}

// Server is the HTTP API serving viewer view-models.
type Server struct {
	router   chi.Router
	driver   *tools.Driver
	launcher *launcher.Launcher
	stats    StatsSource
	log      *slog.Logger
}

// NewServer creates and configures the HTTP server. stats may be nil.
func NewServer(driver *tools.Driver, launch *launcher.Launcher, stats StatsSource, log *slog.Logger) *Server {
	s := &Server{
		driver:   driver,
		launcher: launch,
		stats:    stats,
		log:      log,
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

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/tools", s.handleListTools)
		r.Get("/view/{tool}", s.handleView)
		r.Get("/launch", s.handleLaunch)
		r.Get("/stats/fetch", s.handleFetchStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
