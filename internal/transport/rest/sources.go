package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/internal/service/source"
	"github.com/noah-vh/airbour-web-sub001/internal/transport/middleware"
)

type sourceService interface {
	ListSources(ctx context.Context, filter domain.SourceFilter) ([]*domain.Source, error)
	GetSource(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	GetSourcesByUser(ctx context.Context, userID *uuid.UUID) ([]*domain.Source, error)
	GetSourcesDueForCollection(ctx context.Context, limit int) ([]*domain.Source, error)
	GetSourceStats(ctx context.Context) (*domain.SourceStats, error)
	GetSourceHealthStats(ctx context.Context, timeframe domain.Timeframe) (*domain.SourceHealthStats, error)

	CreateSource(ctx context.Context, input source.CreateSourceInput) (*domain.Source, error)
	UpdateSource(ctx context.Context, id uuid.UUID, input source.UpdateSourceInput) (*domain.Source, error)
	DeleteSource(ctx context.Context, id uuid.UUID) error
	RefreshSource(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	RefreshAllSources(ctx context.Context) (int, error)
	ToggleSource(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	UpdateSourceHealth(ctx context.Context, id uuid.UUID, input source.HealthInput) (*domain.Source, error)
	UpdateSourceCoverage(ctx context.Context, id uuid.UUID, coverage float64) (*domain.Source, error)
	UpdateRateLimitCounters(ctx context.Context, id uuid.UUID, requests int) (*domain.Source, error)
	CreateUniversalSource(ctx context.Context, input source.UniversalSourceInput) (*domain.Source, error)
	UpdateUniversalSourceAnalysis(ctx context.Context, id uuid.UUID, input source.AnalysisInput) (*domain.Source, error)
}

// SourceHandler serves the source endpoints.
type SourceHandler struct {
	svc sourceService
	log *slog.Logger
}

// NewSourceHandler creates a SourceHandler.
func NewSourceHandler(svc sourceService, logger *slog.Logger) *SourceHandler {
	return &SourceHandler{svc: svc, log: logger.With("handler", "source")}
}

// Routes registers the source endpoints on r.
func (h *SourceHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/universal", h.CreateUniversal)
	r.Get("/stats", h.Stats)
	r.Get("/health", h.HealthStats)
	r.Get("/due", h.Due)
	r.Get("/mine", h.ByUser)
	r.Post("/refresh", h.RefreshAll)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Patch("/", h.Update)
		r.Delete("/", h.Delete)
		r.Post("/refresh", h.Refresh)
		r.Post("/toggle", h.Toggle)
		r.Put("/health", h.UpdateHealth)
		r.Put("/coverage", h.UpdateCoverage)
		r.Post("/rate-limit", h.AddRequests)
		r.Put("/analysis", h.UpdateAnalysis)
	})
}

// List handles GET /sources?status=&type=&isActive=.
func (h *SourceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := domain.SourceFilter{
		Status:   enumPtr[domain.SourceStatus](q.str("status")),
		Type:     enumPtr[domain.SourceType](q.str("type")),
		IsActive: q.boolean("isActive"),
	}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sources, err := h.svc.ListSources(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sources)
}

// Get handles GET /sources/{id}.
func (h *SourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	src, err := h.svc.GetSource(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, src)
}

// ByUser handles GET /sources/mine?userId=. Without userId the caller's
// sources are returned.
func (h *SourceHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	userID := q.id("userId")
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sources, err := h.svc.GetSourcesByUser(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sources)
}

// Due handles GET /sources/due?limit=.
func (h *SourceHandler) Due(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	limit := q.integer("limit")
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sources, err := h.svc.GetSourcesDueForCollection(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sources)
}

// Stats handles GET /sources/stats.
func (h *SourceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetSourceStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HealthStats handles GET /sources/health?timeframe=.
func (h *SourceHandler) HealthStats(w http.ResponseWriter, r *http.Request) {
	tf := domain.Timeframe(r.URL.Query().Get("timeframe"))

	stats, err := h.svc.GetSourceHealthStats(r.Context(), tf)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type createSourceRequest struct {
	Name                 string            `json:"name"`
	URL                  string            `json:"url"`
	Type                 domain.SourceType `json:"type"`
	FetchIntervalMinutes int               `json:"fetchIntervalMinutes"`
	Keywords             []string          `json:"keywords"`
}

// Create handles POST /sources.
func (h *SourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSourceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	src, err := h.svc.CreateSource(r.Context(), source.CreateSourceInput{
		Name:                 req.Name,
		URL:                  req.URL,
		Type:                 req.Type,
		FetchIntervalMinutes: req.FetchIntervalMinutes,
		Keywords:             req.Keywords,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, src)
}

type universalSourceRequest struct {
	URL  string  `json:"url"`
	Name *string `json:"name"`
}

// CreateUniversal handles POST /sources/universal.
func (h *SourceHandler) CreateUniversal(w http.ResponseWriter, r *http.Request) {
	var req universalSourceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	src, err := h.svc.CreateUniversalSource(r.Context(), source.UniversalSourceInput{URL: req.URL, Name: req.Name})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, src)
}

type updateSourceRequest struct {
	Name                 *string              `json:"name"`
	URL                  *string              `json:"url"`
	Type                 *domain.SourceType   `json:"type"`
	Status               *domain.SourceStatus `json:"status"`
	FetchIntervalMinutes *int                 `json:"fetchIntervalMinutes"`
	Keywords             []string             `json:"keywords"`
}

// Update handles PATCH /sources/{id}.
func (h *SourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateSourceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	src, err := h.svc.UpdateSource(r.Context(), id, source.UpdateSourceInput{
		Name:                 req.Name,
		URL:                  req.URL,
		Type:                 req.Type,
		Status:               req.Status,
		FetchIntervalMinutes: req.FetchIntervalMinutes,
		Keywords:             req.Keywords,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, src)
}

// Delete handles DELETE /sources/{id}.
func (h *SourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteSource(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Refresh handles POST /sources/{id}/refresh.
func (h *SourceHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.RefreshSource)
}

// Toggle handles POST /sources/{id}/toggle.
func (h *SourceHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.ToggleSource)
}

func (h *SourceHandler) mutate(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.Source, error)) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	src, err := fn(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, src)
}

// RefreshAll handles POST /sources/refresh. Admin only.
func (h *SourceHandler) RefreshAll(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	n, err := h.svc.RefreshAllSources(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"refreshed": n})
}

type healthRequest struct {
	Status      domain.SourceStatus `json:"status"`
	ErrorCount  int                 `json:"errorCount"`
	LastError   *string             `json:"lastError"`
	HealthScore *float64            `json:"healthScore"`
}

// UpdateHealth handles PUT /sources/{id}/health.
func (h *SourceHandler) UpdateHealth(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req healthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	src, err := h.svc.UpdateSourceHealth(r.Context(), id, source.HealthInput{
		Status:      req.Status,
		ErrorCount:  req.ErrorCount,
		LastError:   req.LastError,
		HealthScore: req.HealthScore,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, src)
}

type coverageRequest struct {
	Coverage float64 `json:"coverage"`
}

// UpdateCoverage handles PUT /sources/{id}/coverage.
func (h *SourceHandler) UpdateCoverage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req coverageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	src, err := h.svc.UpdateSourceCoverage(r.Context(), id, req.Coverage)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, src)
}

type rateLimitRequest struct {
	Requests int `json:"requests"`
}

// AddRequests handles POST /sources/{id}/rate-limit.
func (h *SourceHandler) AddRequests(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req rateLimitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	src, err := h.svc.UpdateRateLimitCounters(r.Context(), id, req.Requests)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, src)
}

type analysisRequest struct {
	DetectedType domain.SourceType `json:"detectedType"`
	Topics       []string          `json:"topics"`
	QualityScore float64           `json:"qualityScore"`
	Language     string            `json:"language"`
	Notes        string            `json:"notes"`
}

// UpdateAnalysis handles PUT /sources/{id}/analysis.
func (h *SourceHandler) UpdateAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req analysisRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	src, err := h.svc.UpdateUniversalSourceAnalysis(r.Context(), id, source.AnalysisInput{
		DetectedType: req.DetectedType,
		Topics:       req.Topics,
		QualityScore: req.QualityScore,
		Language:     req.Language,
		Notes:        req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, src)
}
