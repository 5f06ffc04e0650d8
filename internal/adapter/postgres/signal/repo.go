// Package signal implements signal and signal update persistence on
// PostgreSQL. Every query is scoped to one organisation.
package signal

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/noah-vh/airbour-web-sub001/internal/adapter/postgres"
	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

const (
	signalsTable = "signals"
	updatesTable = "signal_updates"
)

var signalColumns = []string{
	"id", "org_id", "description", "classification_reasoning_concise",
	"behavior_layer", "classified_by", "steep", "confidence", "keywords", "tags",
	"mention_count", "source_count", "sentiment", "growth", "status",
	"archived_at", "archive_reason", "merged_into", "is_saved", "view_count",
	"created_at", "updated_at",
}

// Repo provides signal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new signal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func selectSignals(orgID uuid.UUID) sq.SelectBuilder {
	return postgres.Builder().
		Select(signalColumns...).
		From(signalsTable).
		Where(sq.Eq{"org_id": orgID})
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a signal by primary key.
// Returns domain.ErrNotFound if it does not exist in the organisation.
func (r *Repo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Signal, error) {
	row, err := postgres.QueryRow(ctx, r.q(ctx), selectSignals(orgID).Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	s, err := scanSignal(row)
	if err != nil {
		return nil, postgres.MapError(err, "signal", id)
	}
	return s, nil
}

// List returns every signal of the organisation, newest first.
func (r *Repo) List(ctx context.Context, orgID uuid.UUID) ([]*domain.Signal, error) {
	return r.list(ctx, selectSignals(orgID).OrderBy("created_at DESC", "id"))
}

// ListByIDs returns the signals among ids that belong to the organisation.
func (r *Repo) ListByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*domain.Signal, error) {
	if len(ids) == 0 {
		return []*domain.Signal{}, nil
	}
	return r.list(ctx, selectSignals(orgID).Where(sq.Eq{"id": ids}))
}

// ListCreatedSince returns at most limit signals created at or after since,
// newest first.
func (r *Repo) ListCreatedSince(ctx context.Context, orgID uuid.UUID, since time.Time, limit int) ([]*domain.Signal, error) {
	b := selectSignals(orgID).
		Where(sq.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit))
	return r.list(ctx, b)
}

// ListRecent returns the limit most recently created signals.
func (r *Repo) ListRecent(ctx context.Context, orgID uuid.UUID, limit int) ([]*domain.Signal, error) {
	return r.list(ctx, selectSignals(orgID).OrderBy("created_at DESC", "id").Limit(uint64(limit)))
}

// ListTouchedSince returns at most limit signals last updated (or, never
// updated, created) at or after since, most recently touched first.
func (r *Repo) ListTouchedSince(ctx context.Context, orgID uuid.UUID, since time.Time, limit int) ([]*domain.Signal, error) {
	b := selectSignals(orgID).
		Where(sq.Expr("COALESCE(updated_at, created_at) >= ?", since)).
		OrderBy("COALESCE(updated_at, created_at) DESC", "id").
		Limit(uint64(limit))
	return r.list(ctx, b)
}

// ListForNewsletter returns active signals created at or after since with
// confidence at least minConfidence, most confident first.
func (r *Repo) ListForNewsletter(ctx context.Context, orgID uuid.UUID, since time.Time, minConfidence float64, limit int) ([]*domain.Signal, error) {
	b := selectSignals(orgID).
		Where(sq.Eq{"status": string(domain.SignalStatusActive)}).
		Where(sq.GtOrEq{"created_at": since}).
		Where(sq.GtOrEq{"confidence": minConfidence}).
		OrderBy("confidence DESC", "created_at DESC").
		Limit(uint64(limit))
	return r.list(ctx, b)
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]*domain.Signal, error) {
	rows, err := postgres.Query(ctx, r.q(ctx), b)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}

	signals, err := postgres.CollectRows(rows, scanSignal)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}
	if signals == nil {
		signals = []*domain.Signal{}
	}
	return signals, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a signal and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s *domain.Signal) (*domain.Signal, error) {
	b := postgres.Builder().
		Insert(signalsTable).
		Columns(
			"id", "org_id", "description", "classification_reasoning_concise",
			"behavior_layer", "classified_by", "steep", "confidence", "keywords", "tags",
			"mention_count", "source_count", "sentiment", "growth", "status", "created_at",
		).
		Values(
			s.ID, s.OrgID, s.Description, s.ClassificationReasoningConcise,
			string(s.BehaviorLayer), s.ClassifiedBy, steepValue(s.Steep), s.Confidence,
			nonNil(s.Keywords), nonNil(s.Tags),
			s.MentionCount, s.SourceCount, s.Sentiment, s.Growth,
			string(s.Status), s.CreatedAt,
		).
		Suffix("RETURNING " + columnList())

	row, err := postgres.QueryRow(ctx, r.q(ctx), b)
	if err != nil {
		return nil, err
	}

	created, err := scanSignal(row)
	if err != nil {
		return nil, postgres.MapError(err, "signal", s.ID)
	}
	return created, nil
}

// Update applies patch and stamps updated_at.
// Returns domain.ErrNotFound if the signal does not exist.
func (r *Repo) Update(ctx context.Context, orgID, id uuid.UUID, patch domain.SignalPatch, at time.Time) (*domain.Signal, error) {
	set := map[string]any{"updated_at": at}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ClassificationReasoningConcise != nil {
		set["classification_reasoning_concise"] = *patch.ClassificationReasoningConcise
	}
	if patch.BehaviorLayer != nil {
		set["behavior_layer"] = string(*patch.BehaviorLayer)
	}
	if patch.ClassifiedBy != nil {
		set["classified_by"] = *patch.ClassifiedBy
	}
	if patch.Steep != nil {
		set["steep"] = string(*patch.Steep)
	}
	if patch.Confidence != nil {
		set["confidence"] = *patch.Confidence
	}
	if patch.Keywords != nil {
		set["keywords"] = patch.Keywords
	}
	if patch.Tags != nil {
		set["tags"] = patch.Tags
	}

	return r.updateReturning(ctx, orgID, id, set)
}

// Archive marks the signal archived.
func (r *Repo) Archive(ctx context.Context, orgID, id uuid.UUID, reason *string, at time.Time) (*domain.Signal, error) {
	return r.updateReturning(ctx, orgID, id, map[string]any{
		"status":         string(domain.SignalStatusArchived),
		"archived_at":    at,
		"archive_reason": reason,
		"updated_at":     at,
	})
}

// Restore returns an archived signal to active and clears archive metadata.
func (r *Repo) Restore(ctx context.Context, orgID, id uuid.UUID, at time.Time) (*domain.Signal, error) {
	return r.updateReturning(ctx, orgID, id, map[string]any{
		"status":         string(domain.SignalStatusActive),
		"archived_at":    nil,
		"archive_reason": nil,
		"updated_at":     at,
	})
}

// MarkMerged re-tags a signal as merged into primaryID.
func (r *Repo) MarkMerged(ctx context.Context, orgID, id, primaryID uuid.UUID, at time.Time) error {
	b := postgres.Builder().
		Update(signalsTable).
		SetMap(map[string]any{
			"status":      string(domain.SignalStatusMerged),
			"merged_into": primaryID,
			"updated_at":  at,
		}).
		Where(sq.Eq{"org_id": orgID, "id": id})

	n, err := postgres.Exec(ctx, r.q(ctx), b)
	if err != nil {
		return postgres.MapError(err, "signal", id)
	}
	if n == 0 {
		return fmt.Errorf("signal %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdateMetrics overwrites the activity metrics of a signal.
func (r *Repo) UpdateMetrics(ctx context.Context, orgID, id uuid.UUID, m domain.SignalMetrics, at time.Time) (*domain.Signal, error) {
	return r.updateReturning(ctx, orgID, id, metricsSet(m, at))
}

// UpdateMetricsBatch overwrites the metrics of many signals in one round
// trip. Signals missing from the organisation are skipped silently.
func (r *Repo) UpdateMetricsBatch(ctx context.Context, orgID uuid.UUID, metrics map[uuid.UUID]domain.SignalMetrics, at time.Time) (int, error) {
	if len(metrics) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for id, m := range metrics {
		sql, args, err := postgres.Builder().
			Update(signalsTable).
			SetMap(metricsSet(m, at)).
			Where(sq.Eq{"org_id": orgID, "id": id}).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build metrics update: %w", err)
		}
		batch.Queue(sql, args...)
	}

	br := r.q(ctx).SendBatch(ctx, batch)
	defer br.Close()

	updated := 0
	for range metrics {
		tag, err := br.Exec()
		if err != nil {
			return updated, fmt.Errorf("update signal metrics: %w", err)
		}
		updated += int(tag.RowsAffected())
	}
	return updated, nil
}

// ToggleSave flips is_saved and returns the new value.
func (r *Repo) ToggleSave(ctx context.Context, orgID, id uuid.UUID) (bool, error) {
	b := postgres.Builder().
		Update(signalsTable).
		Set("is_saved", sq.Expr("NOT is_saved")).
		Where(sq.Eq{"org_id": orgID, "id": id}).
		Suffix("RETURNING is_saved")

	row, err := postgres.QueryRow(ctx, r.q(ctx), b)
	if err != nil {
		return false, err
	}

	var saved bool
	if err := row.Scan(&saved); err != nil {
		return false, postgres.MapError(err, "signal", id)
	}
	return saved, nil
}

// IncrementViewCount adds one view and returns the new count.
func (r *Repo) IncrementViewCount(ctx context.Context, orgID, id uuid.UUID) (int, error) {
	b := postgres.Builder().
		Update(signalsTable).
		Set("view_count", sq.Expr("view_count + 1")).
		Where(sq.Eq{"org_id": orgID, "id": id}).
		Suffix("RETURNING view_count")

	row, err := postgres.QueryRow(ctx, r.q(ctx), b)
	if err != nil {
		return 0, err
	}

	var views int
	if err := row.Scan(&views); err != nil {
		return 0, postgres.MapError(err, "signal", id)
	}
	return views, nil
}

// Delete physically removes a signal and its updates.
// Returns domain.ErrNotFound if the signal does not exist.
func (r *Repo) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	b := postgres.Builder().
		Delete(signalsTable).
		Where(sq.Eq{"org_id": orgID, "id": id})

	n, err := postgres.Exec(ctx, r.q(ctx), b)
	if postgres.IsForeignKeyViolation(err) {
		return fmt.Errorf("signal %s has merged signals: %w", id, domain.ErrConflict)
	}
	if err != nil {
		return postgres.MapError(err, "signal", id)
	}
	if n == 0 {
		return fmt.Errorf("signal %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteMany removes the given signals and returns the ids actually deleted.
func (r *Repo) DeleteMany(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}

	b := postgres.Builder().
		Delete(signalsTable).
		Where(sq.Eq{"org_id": orgID, "id": ids}).
		Suffix("RETURNING id")

	var deleted []uuid.UUID
	rows, err := postgres.Query(ctx, r.q(ctx), b)
	if err == nil {
		deleted, err = postgres.CollectRows(rows, scanID)
	}
	if postgres.IsForeignKeyViolation(err) {
		return nil, fmt.Errorf("delete signals: merged signals reference the batch: %w", domain.ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("delete signals: %w", err)
	}
	if deleted == nil {
		deleted = []uuid.UUID{}
	}
	return deleted, nil
}

// ListMergedPrimaries returns the signals among ids that some signal outside
// ids is merged into.
func (r *Repo) ListMergedPrimaries(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}

	b := postgres.Builder().
		Select("DISTINCT merged_into").
		From(signalsTable).
		Where(sq.Eq{"org_id": orgID, "merged_into": ids}).
		Where(sq.NotEq{"id": ids}).
		OrderBy("merged_into")

	rows, err := postgres.Query(ctx, r.q(ctx), b)
	if err != nil {
		return nil, fmt.Errorf("list merge primaries: %w", err)
	}
	primaries, err := postgres.CollectRows(rows, scanID)
	if err != nil {
		return nil, fmt.Errorf("list merge primaries: %w", err)
	}
	if primaries == nil {
		primaries = []uuid.UUID{}
	}
	return primaries, nil
}

func scanID(row pgx.Row) (uuid.UUID, error) {
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

func (r *Repo) updateReturning(ctx context.Context, orgID, id uuid.UUID, set map[string]any) (*domain.Signal, error) {
	b := postgres.Builder().
		Update(signalsTable).
		SetMap(set).
		Where(sq.Eq{"org_id": orgID, "id": id}).
		Suffix("RETURNING " + columnList())

	row, err := postgres.QueryRow(ctx, r.q(ctx), b)
	if err != nil {
		return nil, err
	}

	s, err := scanSignal(row)
	if err != nil {
		return nil, postgres.MapError(err, "signal", id)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanSignal(row pgx.Row) (*domain.Signal, error) {
	var (
		s        domain.Signal
		behavior string
		status   string
		steep    *string
	)
	err := row.Scan(
		&s.ID, &s.OrgID, &s.Description, &s.ClassificationReasoningConcise,
		&behavior, &s.ClassifiedBy, &steep, &s.Confidence, &s.Keywords, &s.Tags,
		&s.MentionCount, &s.SourceCount, &s.Sentiment, &s.Growth, &status,
		&s.ArchivedAt, &s.ArchiveReason, &s.MergedInto, &s.IsSaved, &s.ViewCount,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.BehaviorLayer = domain.BehaviorLayer(behavior)
	s.Status = domain.SignalStatus(status)
	if steep != nil {
		c := domain.SteepCategory(*steep)
		s.Steep = &c
	}
	return &s, nil
}

func metricsSet(m domain.SignalMetrics, at time.Time) map[string]any {
	return map[string]any{
		"mention_count": m.MentionCount,
		"source_count":  m.SourceCount,
		"sentiment":     m.Sentiment,
		"growth":        m.Growth,
		"updated_at":    at,
	}
}

func columnList() string {
	return strings.Join(signalColumns, ", ")
}

func steepValue(c *domain.SteepCategory) *string {
	if c == nil {
		return nil
	}
	v := string(*c)
	return &v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
