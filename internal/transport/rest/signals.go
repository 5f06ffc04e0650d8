package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/internal/service/signal"
	"github.com/noah-vh/airbour-web-sub001/internal/transport/dataloader"
	"github.com/noah-vh/airbour-web-sub001/internal/transport/middleware"
)

type signalService interface {
	ListSignals(ctx context.Context, input signal.ListSignalsInput) ([]domain.SignalView, error)
	GetSignal(ctx context.Context, id uuid.UUID) (*domain.SignalView, error)
	SearchSignals(ctx context.Context, query string, limit int) ([]domain.SignalView, error)
	GetSignalStats(ctx context.Context) (*domain.SignalStats, error)
	ListSignalsForNewsletter(ctx context.Context, input signal.NewsletterInput) ([]domain.SignalView, error)
	GetTrendingSignals(ctx context.Context, limit int) ([]domain.SignalView, error)
	GetSignalsByLifecycle(ctx context.Context, lifecycle domain.Lifecycle) ([]domain.SignalView, error)
	GetSignalsBySteep(ctx context.Context, category domain.SteepCategory) ([]domain.SignalView, error)
	GetRelatedSignals(ctx context.Context, id uuid.UUID, limit int) ([]domain.SignalView, error)
	ListSignalsWithUpdates(ctx context.Context, limit int) ([]signal.SignalWithUpdates, error)

	CreateSignal(ctx context.Context, input signal.CreateSignalInput) (*domain.SignalView, error)
	UpdateSignal(ctx context.Context, id uuid.UUID, input signal.UpdateSignalInput) (*domain.SignalView, error)
	UpdateSignalDescription(ctx context.Context, id uuid.UUID, description string) (*domain.SignalView, error)
	DeleteSignal(ctx context.Context, id uuid.UUID) error
	DeleteSignals(ctx context.Context, ids []uuid.UUID) (*signal.DeleteResult, error)
	ArchiveSignal(ctx context.Context, id uuid.UUID, reason *string) (*domain.SignalView, error)
	RestoreSignal(ctx context.Context, id uuid.UUID) (*domain.SignalView, error)
	MergeSignals(ctx context.Context, input signal.MergeSignalsInput) (*signal.MergeResult, error)
	ToggleSaveSignal(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) (int, error)
	UpdateSignalMetrics(ctx context.Context, id uuid.UUID, input signal.UpdateMetricsInput) (*domain.SignalView, error)
	AddSignalUpdate(ctx context.Context, id uuid.UUID, input signal.AddUpdateInput) (*domain.SignalUpdate, error)
	RecalculateAllSignalMetrics(ctx context.Context) (*signal.RecalcResult, error)
}

// SignalHandler serves the signal endpoints.
type SignalHandler struct {
	svc signalService
	log *slog.Logger
}

// NewSignalHandler creates a SignalHandler.
func NewSignalHandler(svc signalService, logger *slog.Logger) *SignalHandler {
	return &SignalHandler{svc: svc, log: logger.With("handler", "signal")}
}

// Routes registers the signal endpoints on r. Detail lookups expect the
// dataloader middleware to be installed.
func (h *SignalHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/", h.DeleteMany)
	r.Get("/stats", h.Stats)
	r.Get("/search", h.Search)
	r.Get("/newsletter", h.Newsletter)
	r.Get("/trending", h.Trending)
	r.Get("/with-updates", h.WithUpdates)
	r.Get("/lifecycle/{lifecycle}", h.ByLifecycle)
	r.Get("/steep/{category}", h.BySteep)
	r.Post("/merge", h.Merge)
	r.Post("/recalculate", h.Recalculate)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Patch("/", h.Update)
		r.Delete("/", h.Delete)
		r.Get("/related", h.Related)
		r.Put("/description", h.UpdateDescription)
		r.Post("/archive", h.Archive)
		r.Post("/restore", h.Restore)
		r.Post("/save", h.ToggleSave)
		r.Post("/views", h.IncrementViews)
		r.Put("/metrics", h.UpdateMetrics)
		r.Post("/updates", h.AddUpdate)
	})
}

// List handles GET /signals?lifecycle=&steep=&search=&status=.
func (h *SignalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := signal.ListSignalsInput{
		Lifecycle: enumPtr[domain.Lifecycle](q.str("lifecycle")),
		Steep:     enumPtr[domain.SteepCategory](q.str("steep")),
		Search:    q.str("search"),
		Status:    enumPtr[domain.SignalStatus](q.str("status")),
	}

	views, err := h.svc.ListSignals(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// signalDetail is a signal with its update history and, for merged
// signals, the signal it was merged into.
type signalDetail struct {
	domain.SignalView
	Updates          []*domain.SignalUpdate `json:"updates"`
	MergedIntoSignal *domain.SignalView     `json:"mergedIntoSignal,omitempty"`
}

// Get handles GET /signals/{id}.
func (h *SignalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ctx := r.Context()
	view, err := h.svc.GetSignal(ctx, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	loaders := dataloader.FromContext(ctx)
	updatesThunk := loaders.UpdatesBySignalID.Load(ctx, id)

	detail := signalDetail{SignalView: *view}
	if view.MergedInto != nil {
		primaryThunk := loaders.SignalByID.Load(ctx, *view.MergedInto)
		primaryUpdatesThunk := loaders.UpdatesBySignalID.Load(ctx, *view.MergedInto)

		primary, err := primaryThunk()
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		if primary != nil {
			primaryUpdates, err := primaryUpdatesThunk()
			if err != nil {
				handleError(w, r, h.log, err)
				return
			}
			pv := domain.NewSignalView(primary, firstUpdate(primaryUpdates))
			detail.MergedIntoSignal = &pv
		}
	}

	detail.Updates, err = updatesThunk()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func firstUpdate(updates []*domain.SignalUpdate) *domain.SignalUpdate {
	if len(updates) == 0 {
		return nil
	}
	return updates[0]
}

// Search handles GET /signals/search?q=&limit=.
func (h *SignalHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	query := q.str("q")
	limit := q.integer("limit")
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if query == nil {
		handleError(w, r, h.log, domain.NewValidationError("q", "required"))
		return
	}

	views, err := h.svc.SearchSignals(r.Context(), *query, limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// Stats handles GET /signals/stats.
func (h *SignalHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetSignalStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Newsletter handles GET /signals/newsletter?days=&minConfidence=&limit=.
func (h *SignalHandler) Newsletter(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := signal.NewsletterInput{
		Days:          q.integer("days"),
		MinConfidence: q.number("minConfidence"),
		Limit:         q.integer("limit"),
	}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	views, err := h.svc.ListSignalsForNewsletter(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// Trending handles GET /signals/trending?limit=.
func (h *SignalHandler) Trending(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	limit := q.integer("limit")
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	views, err := h.svc.GetTrendingSignals(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// WithUpdates handles GET /signals/with-updates?limit=.
func (h *SignalHandler) WithUpdates(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	limit := q.integer("limit")
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.svc.ListSignalsWithUpdates(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ByLifecycle handles GET /signals/lifecycle/{lifecycle}.
func (h *SignalHandler) ByLifecycle(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.GetSignalsByLifecycle(r.Context(), domain.Lifecycle(chi.URLParam(r, "lifecycle")))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// BySteep handles GET /signals/steep/{category}.
func (h *SignalHandler) BySteep(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.GetSignalsBySteep(r.Context(), domain.SteepCategory(chi.URLParam(r, "category")))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// Related handles GET /signals/{id}/related?limit=.
func (h *SignalHandler) Related(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	q := newQueryParams(r)
	limit := q.integer("limit")
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	views, err := h.svc.GetRelatedSignals(r.Context(), id, limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

type createSignalRequest struct {
	Description   string                `json:"description"`
	Reasoning     string                `json:"reasoning"`
	BehaviorLayer domain.BehaviorLayer  `json:"behaviorLayer"`
	Lifecycle     *domain.Lifecycle     `json:"lifecycle"`
	ClassifiedBy  string                `json:"classifiedBy"`
	Steep         *domain.SteepCategory `json:"steep"`
	Confidence    float64               `json:"confidence"`
	Keywords      []string              `json:"keywords"`
	Tags          []string              `json:"tags"`
}

// Create handles POST /signals.
func (h *SignalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSignalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	view, err := h.svc.CreateSignal(r.Context(), signal.CreateSignalInput{
		Description:   req.Description,
		Reasoning:     req.Reasoning,
		BehaviorLayer: req.BehaviorLayer,
		Lifecycle:     req.Lifecycle,
		ClassifiedBy:  req.ClassifiedBy,
		Steep:         req.Steep,
		Confidence:    req.Confidence,
		Keywords:      req.Keywords,
		Tags:          req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

type updateSignalRequest struct {
	Description  *string               `json:"description"`
	Reasoning    *string               `json:"reasoning"`
	Lifecycle    *domain.Lifecycle     `json:"lifecycle"`
	ClassifiedBy *string               `json:"classifiedBy"`
	Steep        *domain.SteepCategory `json:"steep"`
	Confidence   *float64              `json:"confidence"`
	Keywords     []string              `json:"keywords"`
	Tags         []string              `json:"tags"`
}

// Update handles PATCH /signals/{id}.
func (h *SignalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateSignalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	view, err := h.svc.UpdateSignal(r.Context(), id, signal.UpdateSignalInput{
		Description:  req.Description,
		Reasoning:    req.Reasoning,
		Lifecycle:    req.Lifecycle,
		ClassifiedBy: req.ClassifiedBy,
		Steep:        req.Steep,
		Confidence:   req.Confidence,
		Keywords:     req.Keywords,
		Tags:         req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type descriptionRequest struct {
	Description string `json:"description"`
}

// UpdateDescription handles PUT /signals/{id}/description.
func (h *SignalHandler) UpdateDescription(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req descriptionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	view, err := h.svc.UpdateSignalDescription(r.Context(), id, req.Description)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Delete handles DELETE /signals/{id}.
func (h *SignalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteSignal(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type idsRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// DeleteMany handles DELETE /signals. Admin only.
func (h *SignalHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req idsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.DeleteSignals(r.Context(), req.IDs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type archiveRequest struct {
	Reason *string `json:"reason"`
}

// Archive handles POST /signals/{id}/archive. The body is optional.
func (h *SignalHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req archiveRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	view, err := h.svc.ArchiveSignal(r.Context(), id, req.Reason)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Restore handles POST /signals/{id}/restore.
func (h *SignalHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	view, err := h.svc.RestoreSignal(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type mergeRequest struct {
	PrimaryID    uuid.UUID   `json:"primaryId"`
	SecondaryIDs []uuid.UUID `json:"secondaryIds"`
	Description  *string     `json:"description"`
}

// Merge handles POST /signals/merge.
func (h *SignalHandler) Merge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.MergeSignals(r.Context(), signal.MergeSignalsInput{
		PrimaryID:    req.PrimaryID,
		SecondaryIDs: req.SecondaryIDs,
		Description:  req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ToggleSave handles POST /signals/{id}/save.
func (h *SignalHandler) ToggleSave(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	saved, err := h.svc.ToggleSaveSignal(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isSaved": saved})
}

// IncrementViews handles POST /signals/{id}/views.
func (h *SignalHandler) IncrementViews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	n, err := h.svc.IncrementViewCount(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"viewCount": n})
}

type metricsRequest struct {
	MentionCount *int     `json:"mentionCount"`
	SourceCount  *int     `json:"sourceCount"`
	Sentiment    *float64 `json:"sentiment"`
	Growth       *float64 `json:"growth"`
}

// UpdateMetrics handles PUT /signals/{id}/metrics.
func (h *SignalHandler) UpdateMetrics(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req metricsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	view, err := h.svc.UpdateSignalMetrics(r.Context(), id, signal.UpdateMetricsInput{
		MentionCount: req.MentionCount,
		SourceCount:  req.SourceCount,
		Sentiment:    req.Sentiment,
		Growth:       req.Growth,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type addUpdateRequest struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// AddUpdate handles POST /signals/{id}/updates.
func (h *SignalHandler) AddUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req addUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.svc.AddSignalUpdate(r.Context(), id, signal.AddUpdateInput{Title: req.Title, Value: req.Value})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// Recalculate handles POST /signals/recalculate. Admin only.
func (h *SignalHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.RecalculateAllSignalMetrics(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
