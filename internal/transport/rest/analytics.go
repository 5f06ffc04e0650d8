package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/internal/service/analytics"
)

type analyticsService interface {
	GetVelocityTrends(ctx context.Context, input analytics.VelocityInput) (*domain.VelocityTrends, error)
	GetSentimentDistribution(ctx context.Context, input analytics.SentimentInput) (*domain.SentimentDistribution, error)
	GetTagAnalysis(ctx context.Context, input analytics.TagInput) (*domain.TagAnalysis, error)
	GetSourceMetrics(ctx context.Context, timeframe domain.Timeframe) (*domain.SourceMetrics, error)
	GetSignalMetrics(ctx context.Context, id *uuid.UUID, limit int) ([]domain.SignalMetricsView, error)
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	GetTrendingSignals(ctx context.Context, limit int) ([]analytics.TrendingSignal, error)
	GetRecentlyActiveSignals(ctx context.Context, hours, limit int) ([]domain.SignalView, error)
}

// AnalyticsHandler serves the read-only analytics endpoints.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

// Routes registers the analytics endpoints on r.
func (h *AnalyticsHandler) Routes(r chi.Router) {
	r.Get("/velocity", h.Velocity)
	r.Get("/sentiment", h.Sentiment)
	r.Get("/tags", h.Tags)
	r.Get("/sources", h.Sources)
	r.Get("/signals", h.SignalMetrics)
	r.Get("/dashboard", h.Dashboard)
	r.Get("/trending", h.Trending)
	r.Get("/recent", h.RecentlyActive)
}

// Velocity handles GET /analytics/velocity?days=&granularity=.
func (h *AnalyticsHandler) Velocity(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := analytics.VelocityInput{Days: q.integer("days")}
	if g := q.str("granularity"); g != nil {
		input.Granularity = domain.Granularity(*g)
	}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.GetVelocityTrends(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Sentiment handles GET /analytics/sentiment?limit=&days=.
func (h *AnalyticsHandler) Sentiment(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := analytics.SentimentInput{Limit: q.integer("limit"), Days: q.integer("days")}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.GetSentimentDistribution(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Tags handles GET /analytics/tags?limit=&minCount=.
func (h *AnalyticsHandler) Tags(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := analytics.TagInput{Limit: q.integer("limit"), MinCount: q.integer("minCount")}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.GetTagAnalysis(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Sources handles GET /analytics/sources?timeframe=.
func (h *AnalyticsHandler) Sources(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.GetSourceMetrics(r.Context(), domain.Timeframe(r.URL.Query().Get("timeframe")))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// SignalMetrics handles GET /analytics/signals?signalId=&limit=.
func (h *AnalyticsHandler) SignalMetrics(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	id := q.id("signalId")
	limit := q.integer("limit")
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.GetSignalMetrics(r.Context(), id, limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Dashboard handles GET /analytics/dashboard.
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.GetDashboardStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Trending handles GET /analytics/trending?limit=.
func (h *AnalyticsHandler) Trending(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	limit := q.integer("limit")
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.GetTrendingSignals(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// RecentlyActive handles GET /analytics/recent?hours=&limit=.
func (h *AnalyticsHandler) RecentlyActive(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	hours := q.integer("hours")
	limit := q.integer("limit")
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.GetRecentlyActiveSignals(r.Context(), hours, limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
