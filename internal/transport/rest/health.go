package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

// checkTimeout bounds every health probe.
const checkTimeout = 3 * time.Second

// Checker reports whether one dependency is usable.
type Checker interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  map[string]Checker
	version string
	started time.Time
}

// NewHealthHandler creates a HealthHandler probing checks by component name.
func NewHealthHandler(version string, checks map[string]Checker) *HealthHandler {
	return &HealthHandler{checks: checks, version: version, started: time.Now()}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Failing    []string              `json:"failing,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when every component passes, 503
// listing the failing components otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components := h.probe(r.Context())

	var failing []string
	for name, c := range components {
		if c.Status != "ok" {
			failing = append(failing, name)
		}
	}
	sort.Strings(failing)

	if len(failing) > 0 {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Failing:   failing,
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency, version and
// uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.probe(r.Context())

	overall := "ok"
	for _, c := range components {
		if c.Status != "ok" {
			overall = "down"
			break
		}
	}

	status := http.StatusOK
	if overall != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Uptime:     time.Since(h.started).Truncate(time.Second).String(),
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.checks))
	for name, check := range h.checks {
		start := time.Now()
		err := check.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components[name] = CompStatus{Status: "down", Error: err.Error()}
			continue
		}
		components[name] = CompStatus{Status: "ok", Latency: latency.String()}
	}
	return components
}
