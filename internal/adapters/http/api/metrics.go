package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/scholarfolio/internal/domain/scholar"
)

const maxBodyBytes = 4 << 10

// MetricsDependencies defines the interface for metrics cache operations.
type MetricsDependencies interface {
	GetMetrics(ctx context.Context) scholar.Result
	SetMetrics(ctx context.Context, p scholar.Partial) (scholar.Metrics, error)
}

// MetricsHandler handles /api/metrics.
type MetricsHandler struct {
	deps         MetricsDependencies
	adminEnabled bool
}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler(deps MetricsDependencies, adminEnabled bool) *MetricsHandler {
	return &MetricsHandler{deps: deps, adminEnabled: adminEnabled}
}

// HandleMetrics serves GET and, when enabled, PUT requests.
func (h *MetricsHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPut:
		h.handlePut(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *MetricsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	res := h.deps.GetMetrics(r.Context())
	writeJSON(w, http.StatusOK, metricsResponse{Metrics: res.Metrics, Origin: res.Origin})
}

func (h *MetricsHandler) handlePut(w http.ResponseWriter, r *http.Request) {
	if !h.adminEnabled {
		writeError(w, http.StatusNotFound, "not_found", ErrAdminDisabled)
		return
	}

	var p scholar.Partial
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large", ErrBodyTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}

	m, err := h.deps.SetMetrics(r.Context(), p)
	switch {
	case errors.Is(err, scholar.ErrInvalidMetrics):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	default:
		writeJSON(w, http.StatusOK, m)
	}
}
