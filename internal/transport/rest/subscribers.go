package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/internal/service/subscriber"
)

type subscriberService interface {
	List(ctx context.Context, input subscriber.ListInput) (*subscriber.ListResult, error)
	ListActive(ctx context.Context) ([]*domain.Subscriber, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	GetActiveCount(ctx context.Context) (int, error)
	GetStats(ctx context.Context) (*domain.SubscriberStats, error)

	Create(ctx context.Context, input subscriber.CreateInput) (*subscriber.CreateResult, error)
	BulkImport(ctx context.Context, rows []subscriber.ImportRow, source string) (*subscriber.BulkImportResult, error)
	Unsubscribe(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error)
	MarkBounced(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error)
	UpdateTags(ctx context.Context, id uuid.UUID, tags []string) (*domain.Subscriber, error)
}

// SubscriberHandler serves the newsletter subscriber endpoints.
type SubscriberHandler struct {
	svc subscriberService
	log *slog.Logger
}

// NewSubscriberHandler creates a SubscriberHandler.
func NewSubscriberHandler(svc subscriberService, logger *slog.Logger) *SubscriberHandler {
	return &SubscriberHandler{svc: svc, log: logger.With("handler", "subscriber")}
}

// Routes registers the subscriber endpoints on r.
func (h *SubscriberHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/active", h.ListActive)
	r.Get("/count", h.ActiveCount)
	r.Get("/stats", h.Stats)
	r.Get("/lookup", h.GetByEmail)
	r.Post("/import", h.Import)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/unsubscribe", h.Unsubscribe)
		r.Post("/bounce", h.MarkBounced)
		r.Put("/tags", h.UpdateTags)
	})
}

// List handles GET /subscribers?status=&limit=&offset=.
func (h *SubscriberHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := subscriber.ListInput{
		Status: enumPtr[domain.SubscriberStatus](q.str("status")),
		Limit:  q.integer("limit"),
		Offset: q.integer("offset"),
	}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ListActive handles GET /subscribers/active.
func (h *SubscriberHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	subs, err := h.svc.ListActive(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

// ActiveCount handles GET /subscribers/count.
func (h *SubscriberHandler) ActiveCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.GetActiveCount(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"active": n})
}

// Stats handles GET /subscribers/stats.
func (h *SubscriberHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetByEmail handles GET /subscribers/lookup?email=.
func (h *SubscriberHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	sub, err := h.svc.GetByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// Get handles GET /subscribers/{id}.
func (h *SubscriberHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Get)
}

type createSubscriberRequest struct {
	Email  string   `json:"email"`
	Name   *string  `json:"name"`
	Source string   `json:"source"`
	Tags   []string `json:"tags"`
}

// Create handles POST /subscribers. A new subscriber answers 201, an
// existing or reactivated one 200.
func (h *SubscriberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSubscriberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.Create(r.Context(), subscriber.CreateInput{
		Email:  req.Email,
		Name:   req.Name,
		Source: req.Source,
		Tags:   req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if res.Outcome == subscriber.OutcomeCreated {
		status = http.StatusCreated
	}
	writeJSON(w, status, res)
}

type importRow struct {
	Email string   `json:"email"`
	Name  *string  `json:"name"`
	Tags  []string `json:"tags"`
}

type importRequest struct {
	Source string      `json:"source"`
	Rows   []importRow `json:"rows"`
}

// Import handles POST /subscribers/import.
func (h *SubscriberHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rows := make([]subscriber.ImportRow, len(req.Rows))
	for i, row := range req.Rows {
		rows[i] = subscriber.ImportRow{Email: row.Email, Name: row.Name, Tags: row.Tags}
	}

	res, err := h.svc.BulkImport(r.Context(), rows, req.Source)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Unsubscribe handles POST /subscribers/{id}/unsubscribe.
func (h *SubscriberHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Unsubscribe)
}

// MarkBounced handles POST /subscribers/{id}/bounce.
func (h *SubscriberHandler) MarkBounced(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.MarkBounced)
}

func (h *SubscriberHandler) byID(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.Subscriber, error)) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sub, err := fn(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

type tagsRequest struct {
	Tags []string `json:"tags"`
}

// UpdateTags handles PUT /subscribers/{id}/tags.
func (h *SubscriberHandler) UpdateTags(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req tagsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sub, err := h.svc.UpdateTags(r.Context(), id, req.Tags)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}
