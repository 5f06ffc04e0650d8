// Package subscriber implements newsletter subscriber persistence on PostgreSQL.
package subscriber

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

const subscribersTable = "subscribers"

var subscriberColumns = []string{
	"id", "org_id", "email", "name", "status", "source", "tags",
	"created_at", "updated_at", "unsubscribed_at",
}

var returningColumns = "RETURNING " + strings.Join(subscriberColumns, ", ")

// Repo provides subscriber persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new subscriber repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func selectSubscribers(orgID uuid.UUID) sq.SelectBuilder {
	return postgres.Builder().
		Select(subscriberColumns...).
		From(subscribersTable).
		Where(sq.Eq{"org_id": orgID})
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a subscriber by primary key.
func (r *Repo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Subscriber, error) {
	return r.get(ctx, selectSubscribers(orgID).Where(sq.Eq{"id": id}), id)
}

// GetByEmail returns the subscriber with a normalized email.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) GetByEmail(ctx context.Context, orgID uuid.UUID, email string) (*domain.Subscriber, error) {
	return r.get(ctx, selectSubscribers(orgID).Where(sq.Eq{"email": email}), uuid.Nil)
}

func (r *Repo) get(ctx context.Context, b sq.SelectBuilder, id uuid.UUID) (*domain.Subscriber, error) {
	row, err := postgres.QueryRow(ctx, r.q(ctx), b)
	if err != nil {
		return nil, err
	}

	s, err := scanSubscriber(row)
	if err != nil {
		return nil, postgres.MapError(err, "subscriber", id)
	}
	return s, nil
}

// List returns a page of subscribers, newest first, and the total number
// matching status. A nil status matches every subscriber.
func (r *Repo) List(ctx context.Context, orgID uuid.UUID, status *domain.SubscriberStatus, limit, offset int) ([]*domain.Subscriber, int, error) {
	count := postgres.Builder().Select("count(*)").From(subscribersTable).Where(sq.Eq{"org_id": orgID})
	page := selectSubscribers(orgID)
	if status != nil {
		count = count.Where(sq.Eq{"status": string(*status)})
		page = page.Where(sq.Eq{"status": string(*status)})
	}

	row, err := postgres.QueryRow(ctx, r.q(ctx), count)
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count subscribers: %w", err)
	}

	subs, err := r.list(ctx, page.OrderBy("created_at DESC", "id").Limit(uint64(limit)).Offset(uint64(offset)))
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

// ListAll returns every subscriber of the organisation.
func (r *Repo) ListAll(ctx context.Context, orgID uuid.UUID) ([]*domain.Subscriber, error) {
	return r.list(ctx, selectSubscribers(orgID).OrderBy("created_at DESC", "id"))
}

// ListByStatus returns every subscriber with status, oldest first.
func (r *Repo) ListByStatus(ctx context.Context, orgID uuid.UUID, status domain.SubscriberStatus) ([]*domain.Subscriber, error) {
	return r.list(ctx, selectSubscribers(orgID).Where(sq.Eq{"status": string(status)}).OrderBy("created_at", "id"))
}

// CountByStatus counts subscribers with status.
func (r *Repo) CountByStatus(ctx context.Context, orgID uuid.UUID, status domain.SubscriberStatus) (int, error) {
	b := postgres.Builder().
		Select("count(*)").
		From(subscribersTable).
		Where(sq.Eq{"org_id": orgID, "status": string(status)})

	row, err := postgres.QueryRow(ctx, r.q(ctx), b)
	if err != nil {
		return 0, err
	}

	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]*domain.Subscriber, error) {
	rows, err := postgres.Query(ctx, r.q(ctx), b)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	subs, err := postgres.CollectRows(rows, scanSubscriber)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	if subs == nil {
		subs = []*domain.Subscriber{}
	}
	return subs, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a subscriber. A duplicate (org, email) pair surfaces as
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, error) {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}

	b := postgres.Builder().
		Insert(subscribersTable).
		Columns("id", "org_id", "email", "name", "status", "source", "tags", "created_at", "updated_at").
		Values(s.ID, s.OrgID, s.Email, s.Name, string(s.Status), s.Source, tags, s.CreatedAt, s.UpdatedAt).
		Suffix(returningColumns)

	row, err := postgres.QueryRow(ctx, r.q(ctx), b)
	if err != nil {
		return nil, err
	}

	created, err := scanSubscriber(row)
	if err != nil {
		return nil, postgres.MapError(err, "subscriber", s.ID)
	}
	return created, nil
}

// Reactivate returns an unsubscribed subscriber to active under a new source.
func (r *Repo) Reactivate(ctx context.Context, orgID, id uuid.UUID, source string, at time.Time) (*domain.Subscriber, error) {
	return r.updateReturning(ctx, orgID, id, map[string]any{
		"status":          string(domain.SubscriberActive),
		"source":          source,
		"unsubscribed_at": nil,
		"updated_at":      at,
	})
}

// Unsubscribe marks a subscriber unsubscribed.
func (r *Repo) Unsubscribe(ctx context.Context, orgID, id uuid.UUID, at time.Time) (*domain.Subscriber, error) {
	return r.updateReturning(ctx, orgID, id, map[string]any{
		"status":          string(domain.SubscriberUnsubscribed),
		"unsubscribed_at": at,
		"updated_at":      at,
	})
}

// MarkBounced marks a subscriber bounced.
func (r *Repo) MarkBounced(ctx context.Context, orgID, id uuid.UUID, at time.Time) (*domain.Subscriber, error) {
	return r.updateReturning(ctx, orgID, id, map[string]any{
		"status":     string(domain.SubscriberBounced),
		"updated_at": at,
	})
}

// UpdateTags replaces the tag list.
func (r *Repo) UpdateTags(ctx context.Context, orgID, id uuid.UUID, tags []string, at time.Time) (*domain.Subscriber, error) {
	if tags == nil {
		tags = []string{}
	}
	return r.updateReturning(ctx, orgID, id, map[string]any{
		"tags":       tags,
		"updated_at": at,
	})
}

func (r *Repo) updateReturning(ctx context.Context, orgID, id uuid.UUID, set map[string]any) (*domain.Subscriber, error) {
	b := postgres.Builder().
		Update(subscribersTable).
		SetMap(set).
		Where(sq.Eq{"org_id": orgID, "id": id}).
		Suffix(returningColumns)

	row, err := postgres.QueryRow(ctx, r.q(ctx), b)
	if err != nil {
		return nil, err
	}

	s, err := scanSubscriber(row)
	if err != nil {
		return nil, postgres.MapError(err, "subscriber", id)
	}
	return s, nil
}

func scanSubscriber(row pgx.Row) (*domain.Subscriber, error) {
	var (
		s      domain.Subscriber
		status string
	)
	err := row.Scan(
		&s.ID, &s.OrgID, &s.Email, &s.Name, &status, &s.Source, &s.Tags,
		&s.CreatedAt, &s.UpdatedAt, &s.UnsubscribedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Status = domain.SubscriberStatus(status)
	return &s, nil
}
