package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewOrg returns a fresh organisation id. Tables carry no organisation
// foreign key, so every test isolates its rows behind its own id.
func NewOrg() uuid.UUID {
	return uuid.New()
}

// SeedSignal inserts an active signal and returns its id.
func SeedSignal(t *testing.T, pool *pgxpool.Pool, orgID uuid.UUID, description string, keywords []string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO signals (id, org_id, description, behavior_layer, confidence, keywords, created_at)
		 VALUES ($1, $2, $3, 'positive', 0.8, $4, $5)`,
		id, orgID, description, keywords, createdAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSignal: %v", err)
	}
	return id
}

// SeedSignalUpdate attaches an update to a signal.
func SeedSignalUpdate(t *testing.T, pool *pgxpool.Pool, signalID uuid.UUID, title, value string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO signal_updates (id, signal_id, title, value, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, signalID, title, value, createdAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSignalUpdate: %v", err)
	}
	return id
}

// SeedMention inserts a raw mention.
func SeedMention(t *testing.T, pool *pgxpool.Pool, orgID uuid.UUID, content, source string, fetchedAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO raw_mentions (id, org_id, content, source, fetched_at) VALUES ($1, $2, $3, $4, $5)`,
		id, orgID, content, source, fetchedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMention: %v", err)
	}
	return id
}
