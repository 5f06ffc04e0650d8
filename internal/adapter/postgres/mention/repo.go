// Package mention implements read access to ingested raw mentions.
// Mentions are append-only: the ingestion pipeline inserts them and nothing
// in this service edits them.
package mention

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/noah-vh/airbour-web-sub001/internal/adapter/postgres"
	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

// Repo provides raw mention reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new mention repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListSince returns at most limit mentions fetched at or after since,
// newest first.
func (r *Repo) ListSince(ctx context.Context, orgID uuid.UUID, since time.Time, limit int) ([]*domain.RawMention, error) {
	b := postgres.Builder().
		Select("id", "org_id", "content", "author", "source", "external_id", "fetched_at").
		From("raw_mentions").
		Where(sq.Eq{"org_id": orgID}).
		Where(sq.GtOrEq{"fetched_at": since}).
		OrderBy("fetched_at DESC", "id").
		Limit(uint64(limit))

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, fmt.Errorf("list raw_mentions: %w", err)
	}

	mentions, err := postgres.CollectRows(rows, scanMention)
	if err != nil {
		return nil, fmt.Errorf("list raw_mentions: %w", err)
	}
	if mentions == nil {
		mentions = []*domain.RawMention{}
	}
	return mentions, nil
}

// CountSince counts mentions fetched at or after since.
func (r *Repo) CountSince(ctx context.Context, orgID uuid.UUID, since time.Time) (int, error) {
	b := postgres.Builder().
		Select("count(*)").
		From("raw_mentions").
		Where(sq.Eq{"org_id": orgID}).
		Where(sq.GtOrEq{"fetched_at": since})

	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return 0, err
	}

	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count raw_mentions: %w", err)
	}
	return n, nil
}

// Insert appends a mention. Used by ingestion tooling and tests.
func (r *Repo) Insert(ctx context.Context, m *domain.RawMention) error {
	b := postgres.Builder().
		Insert("raw_mentions").
		Columns("id", "org_id", "content", "author", "source", "external_id", "fetched_at").
		Values(m.ID, m.OrgID, m.Content, m.Author, m.Source, m.ExternalID, m.FetchedAt)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), b); err != nil {
		return postgres.MapError(err, "raw_mention", m.ID)
	}
	return nil
}

func scanMention(row pgx.Row) (*domain.RawMention, error) {
	var m domain.RawMention
	err := row.Scan(&m.ID, &m.OrgID, &m.Content, &m.Author, &m.Source, &m.ExternalID, &m.FetchedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
