package signal

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/noah-vh/airbour-web-sub001/internal/adapter/postgres"
	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

// LatestUpdates returns the most recent update of each signal in ids that
// has one. Ties on created_at resolve to the highest id.
func (r *Repo) LatestUpdates(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*domain.SignalUpdate, error) {
	out := make(map[uuid.UUID]*domain.SignalUpdate, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	b := postgres.Builder().
		Select("DISTINCT ON (u.signal_id) u.id", "u.signal_id", "u.title", "u.value", "u.created_at").
		From(updatesTable + " u").
		Join(signalsTable + " s ON s.id = u.signal_id").
		Where(sq.Eq{"s.org_id": orgID, "u.signal_id": ids}).
		OrderBy("u.signal_id", "u.created_at DESC", "u.id DESC")

	rows, err := postgres.Query(ctx, r.q(ctx), b)
	if err != nil {
		return nil, fmt.Errorf("latest signal_updates: %w", err)
	}

	updates, err := postgres.CollectRows(rows, scanUpdate)
	if err != nil {
		return nil, fmt.Errorf("latest signal_updates: %w", err)
	}

	for _, u := range updates {
		out[u.SignalID] = u
	}
	return out, nil
}

// ListUpdates returns every update of the signals in ids, newest first.
func (r *Repo) ListUpdates(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*domain.SignalUpdate, error) {
	if len(ids) == 0 {
		return []*domain.SignalUpdate{}, nil
	}

	b := postgres.Builder().
		Select("u.id", "u.signal_id", "u.title", "u.value", "u.created_at").
		From(updatesTable + " u").
		Join(signalsTable + " s ON s.id = u.signal_id").
		Where(sq.Eq{"s.org_id": orgID, "u.signal_id": ids}).
		OrderBy("u.created_at DESC", "u.id DESC")

	rows, err := postgres.Query(ctx, r.q(ctx), b)
	if err != nil {
		return nil, fmt.Errorf("list signal_updates: %w", err)
	}

	updates, err := postgres.CollectRows(rows, scanUpdate)
	if err != nil {
		return nil, fmt.Errorf("list signal_updates: %w", err)
	}
	if updates == nil {
		updates = []*domain.SignalUpdate{}
	}
	return updates, nil
}

// AddUpdate attaches an update to a signal of the organisation.
// Returns domain.ErrNotFound if the signal does not exist.
func (r *Repo) AddUpdate(ctx context.Context, orgID uuid.UUID, u *domain.SignalUpdate) (*domain.SignalUpdate, error) {
	const insertUpdateSQL = `
INSERT INTO signal_updates (id, signal_id, title, value, created_at)
SELECT $1, s.id, $3, $4, $5 FROM signals s WHERE s.id = $2 AND s.org_id = $6
RETURNING id, signal_id, title, value, created_at`

	row := r.q(ctx).QueryRow(ctx, insertUpdateSQL, u.ID, u.SignalID, u.Title, u.Value, u.CreatedAt, orgID)
	created, err := scanUpdate(row)
	if err != nil {
		return nil, postgres.MapError(err, "signal", u.SignalID)
	}
	return created, nil
}

func scanUpdate(row pgx.Row) (*domain.SignalUpdate, error) {
	var u domain.SignalUpdate
	if err := row.Scan(&u.ID, &u.SignalID, &u.Title, &u.Value, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
