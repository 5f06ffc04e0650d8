// Package source implements source persistence on PostgreSQL.
package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/noah-vh/airbour-web-sub001/internal/adapter/postgres"
	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

const sourcesTable = "sources"

// RateLimitWindow is the length of one rate limit accounting window.
const RateLimitWindow = time.Hour

var sourceColumns = []string{
	"id", "org_id", "user_id", "name", "type", "url", "status", "is_active",
	"health_score", "coverage_score", "error_count", "last_error", "last_updated",
	"last_collected_at", "fetch_interval_minutes", "rate_limit_requests",
	"rate_limit_window_start", "keywords", "analysis", "created_at", "updated_at",
}

var returningColumns = "RETURNING " + strings.Join(sourceColumns, ", ")

// Repo provides source persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new source repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func selectSources(orgID uuid.UUID) sq.SelectBuilder {
	return postgres.Builder().
		Select(sourceColumns...).
		From(sourcesTable).
		Where(sq.Eq{"org_id": orgID})
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a source by primary key.
// Returns domain.ErrNotFound if it does not exist in the organisation.
func (r *Repo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Source, error) {
	row, err := postgres.QueryRow(ctx, r.q(ctx), selectSources(orgID).Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	s, err := scanSource(row)
	if err != nil {
		return nil, postgres.MapError(err, "source", id)
	}
	return s, nil
}

// List returns the sources matching filter, ordered by name.
func (r *Repo) List(ctx context.Context, orgID uuid.UUID, filter domain.SourceFilter) ([]*domain.Source, error) {
	b := selectSources(orgID)
	if filter.Status != nil {
		b = b.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.Type != nil {
		b = b.Where(sq.Eq{"type": string(*filter.Type)})
	}
	if filter.IsActive != nil {
		b = b.Where(sq.Eq{"is_active": *filter.IsActive})
	}
	return r.list(ctx, b.OrderBy("name", "id"))
}

// ListByUser returns the sources created by userID.
func (r *Repo) ListByUser(ctx context.Context, orgID, userID uuid.UUID) ([]*domain.Source, error) {
	return r.list(ctx, selectSources(orgID).Where(sq.Eq{"user_id": userID}).OrderBy("created_at DESC", "id"))
}

// ListDue returns enabled, non-failing sources whose fetch interval has
// elapsed at now. Never-collected sources come first.
func (r *Repo) ListDue(ctx context.Context, orgID uuid.UUID, now time.Time, limit int) ([]*domain.Source, error) {
	b := selectSources(orgID).
		Where(sq.Eq{"is_active": true}).
		Where(sq.NotEq{"status": string(domain.SourceStatusError)}).
		Where(sq.Or{
			sq.Eq{"last_collected_at": nil},
			sq.Expr("last_collected_at + make_interval(mins => fetch_interval_minutes) <= ?", now),
		}).
		OrderBy("last_collected_at ASC NULLS FIRST", "created_at").
		Limit(uint64(limit))
	return r.list(ctx, b)
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]*domain.Source, error) {
	rows, err := postgres.Query(ctx, r.q(ctx), b)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	sources, err := postgres.CollectRows(rows, scanSource)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	if sources == nil {
		sources = []*domain.Source{}
	}
	return sources, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a source and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s *domain.Source) (*domain.Source, error) {
	analysis, err := marshalAnalysis(s.Analysis)
	if err != nil {
		return nil, err
	}

	b := postgres.Builder().
		Insert(sourcesTable).
		Columns(
			"id", "org_id", "user_id", "name", "type", "url", "status", "is_active",
			"health_score", "coverage_score", "fetch_interval_minutes", "keywords",
			"analysis", "created_at", "updated_at",
		).
		Values(
			s.ID, s.OrgID, s.UserID, s.Name, string(s.Type), s.URL, string(s.Status), s.IsActive,
			s.HealthScore, s.CoverageScore, s.FetchIntervalMinutes, nonNil(s.Keywords),
			analysis, s.CreatedAt, s.UpdatedAt,
		).
		Suffix(returningColumns)

	row, err := postgres.QueryRow(ctx, r.q(ctx), b)
	if err != nil {
		return nil, err
	}

	created, err := scanSource(row)
	if err != nil {
		return nil, postgres.MapError(err, "source", s.ID)
	}
	return created, nil
}

// Update applies patch and stamps updated_at.
func (r *Repo) Update(ctx context.Context, orgID, id uuid.UUID, patch domain.SourcePatch, at time.Time) (*domain.Source, error) {
	set := map[string]any{"updated_at": at}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.URL != nil {
		set["url"] = *patch.URL
	}
	if patch.Type != nil {
		set["type"] = string(*patch.Type)
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.FetchIntervalMinutes != nil {
		set["fetch_interval_minutes"] = *patch.FetchIntervalMinutes
	}
	if patch.Keywords != nil {
		set["keywords"] = patch.Keywords
	}
	return r.updateReturning(ctx, orgID, id, set)
}

// MarkPending resets a source to pending and stamps last_updated. No fetch
// is performed.
func (r *Repo) MarkPending(ctx context.Context, orgID, id uuid.UUID, at time.Time) (*domain.Source, error) {
	return r.updateReturning(ctx, orgID, id, map[string]any{
		"status":       string(domain.SourceStatusPending),
		"last_updated": at,
		"updated_at":   at,
	})
}

// MarkAllPending resets every enabled source of the organisation to pending
// and returns how many were touched.
func (r *Repo) MarkAllPending(ctx context.Context, orgID uuid.UUID, at time.Time) (int, error) {
	b := postgres.Builder().
		Update(sourcesTable).
		SetMap(map[string]any{
			"status":       string(domain.SourceStatusPending),
			"last_updated": at,
			"updated_at":   at,
		}).
		Where(sq.Eq{"org_id": orgID, "is_active": true})

	n, err := postgres.Exec(ctx, r.q(ctx), b)
	if err != nil {
		return 0, fmt.Errorf("refresh sources: %w", err)
	}
	return int(n), nil
}

// ToggleActive flips is_active. Status is not touched.
func (r *Repo) ToggleActive(ctx context.Context, orgID, id uuid.UUID, at time.Time) (*domain.Source, error) {
	return r.updateReturning(ctx, orgID, id, map[string]any{
		"is_active":  sq.Expr("NOT is_active"),
		"updated_at": at,
	})
}

// UpdateHealth records a health report. A nil health score keeps the
// stored value.
func (r *Repo) UpdateHealth(ctx context.Context, orgID, id uuid.UUID, h domain.SourceHealthUpdate, at time.Time) (*domain.Source, error) {
	set := map[string]any{
		"status":       string(h.Status),
		"error_count":  h.ErrorCount,
		"last_error":   h.LastError,
		"last_updated": at,
		"updated_at":   at,
	}
	if h.HealthScore != nil {
		set["health_score"] = *h.HealthScore
	}
	return r.updateReturning(ctx, orgID, id, set)
}

// UpdateCoverage stores a new coverage score.
func (r *Repo) UpdateCoverage(ctx context.Context, orgID, id uuid.UUID, coverage float64, at time.Time) (*domain.Source, error) {
	return r.updateReturning(ctx, orgID, id, map[string]any{
		"coverage_score": coverage,
		"updated_at":     at,
	})
}

// updateRateLimitSQL starts a new window when none is open or the open one
// began more than RateLimitWindow before now, otherwise accumulates.
const updateRateLimitSQL = `
UPDATE sources SET
    rate_limit_requests = CASE
        WHEN rate_limit_window_start IS NULL OR rate_limit_window_start < $3 THEN $1
        ELSE rate_limit_requests + $1 END,
    rate_limit_window_start = CASE
        WHEN rate_limit_window_start IS NULL OR rate_limit_window_start < $3 THEN $2
        ELSE rate_limit_window_start END,
    updated_at = $2
WHERE id = $4 AND org_id = $5
RETURNING `

// AddRateLimitRequests accounts requests against the current rate limit window.
func (r *Repo) AddRateLimitRequests(ctx context.Context, orgID, id uuid.UUID, requests int, now time.Time) (*domain.Source, error) {
	row := r.q(ctx).QueryRow(ctx,
		updateRateLimitSQL+strings.Join(sourceColumns, ", "),
		requests, now, now.Add(-RateLimitWindow), id, orgID,
	)

	s, err := scanSource(row)
	if err != nil {
		return nil, postgres.MapError(err, "source", id)
	}
	return s, nil
}

// UpdateAnalysis stores an analysis document and promotes a pending source
// to active.
func (r *Repo) UpdateAnalysis(ctx context.Context, orgID, id uuid.UUID, analysis *domain.SourceAnalysis, at time.Time) (*domain.Source, error) {
	doc, err := marshalAnalysis(analysis)
	if err != nil {
		return nil, err
	}

	return r.updateReturning(ctx, orgID, id, map[string]any{
		"analysis": doc,
		"status": sq.Expr("CASE WHEN status = ? THEN ? ELSE status END",
			string(domain.SourceStatusPending), string(domain.SourceStatusActive)),
		"updated_at": at,
	})
}

// Delete removes a source.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	b := postgres.Builder().
		Delete(sourcesTable).
		Where(sq.Eq{"org_id": orgID, "id": id})

	n, err := postgres.Exec(ctx, r.q(ctx), b)
	if err != nil {
		return postgres.MapError(err, "source", id)
	}
	if n == 0 {
		return fmt.Errorf("source %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) updateReturning(ctx context.Context, orgID, id uuid.UUID, set map[string]any) (*domain.Source, error) {
	b := postgres.Builder().
		Update(sourcesTable).
		SetMap(set).
		Where(sq.Eq{"org_id": orgID, "id": id}).
		Suffix(returningColumns)

	row, err := postgres.QueryRow(ctx, r.q(ctx), b)
	if err != nil {
		return nil, err
	}

	s, err := scanSource(row)
	if err != nil {
		return nil, postgres.MapError(err, "source", id)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanSource(row pgx.Row) (*domain.Source, error) {
	var (
		s        domain.Source
		typ      string
		status   string
		analysis []byte
	)
	err := row.Scan(
		&s.ID, &s.OrgID, &s.UserID, &s.Name, &typ, &s.URL, &status, &s.IsActive,
		&s.HealthScore, &s.CoverageScore, &s.ErrorCount, &s.LastError, &s.LastUpdated,
		&s.LastCollectedAt, &s.FetchIntervalMinutes, &s.RateLimitRequests,
		&s.RateLimitWindowStart, &s.Keywords, &analysis, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Type = domain.SourceType(typ)
	s.Status = domain.SourceStatus(status)
	if len(analysis) > 0 {
		var a domain.SourceAnalysis
		if err := json.Unmarshal(analysis, &a); err != nil {
			return nil, fmt.Errorf("decode source analysis: %w", err)
		}
		s.Analysis = &a
	}
	return &s, nil
}

func marshalAnalysis(a *domain.SourceAnalysis) ([]byte, error) {
	if a == nil {
		return nil, nil
	}
	doc, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode source analysis: %w", err)
	}
	return doc, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
