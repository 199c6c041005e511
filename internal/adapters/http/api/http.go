// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/scholarfolio/internal/domain/content"
	"github.com/okian/scholarfolio/internal/domain/scholar"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	MetricsDependencies

	// Profile returns the static portfolio content.
	Profile(ctx context.Context) content.Portfolio
}

// Server wires HTTP routes for the JSON API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	metricsHandler *MetricsHandler
	profileHandler *ProfileHandler
}

// NewServer creates a new API server with all handlers. Manual metric
// updates are only accepted when adminEnabled is set.
func NewServer(deps Dependencies, statsProvider StatsProvider, adminEnabled bool) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		metricsHandler: NewMetricsHandler(deps, adminEnabled),
		profileHandler: NewProfileHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/metrics", MetricsMiddleware(s.metricsHandler.HandleMetrics, "metrics"))
	mux.HandleFunc("/api/profile", MetricsMiddleware(s.profileHandler.HandleProfile, "profile"))
}

// metricsResponse mirrors the OpenAPI schema for GET /api/metrics.
type metricsResponse struct {
	Metrics scholar.Metrics `json:"metrics"`
	Origin  scholar.Origin  `json:"origin"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
