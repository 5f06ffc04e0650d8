// Package dataloader provides per-request DataLoaders that batch the
// secondary lookups of the signal endpoints into single SQL calls.
// DataLoaders call repositories directly, bypassing the service layer.
// Tenant isolation comes from the organisation id on the request context,
// which every batch passes to the repository.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type updateRepo interface {
	ListUpdates(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*domain.SignalUpdate, error)
}

type signalRepo interface {
	ListByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*domain.Signal, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Update updateRepo
	Signal signalRepo
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	UpdatesBySignalID *dataloader.Loader[uuid.UUID, []*domain.SignalUpdate]
	SignalByID        *dataloader.Loader[uuid.UUID, *domain.Signal]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UpdatesBySignalID: newLoader(newUpdatesBatchFn(repos.Update)),
		SignalByID:        newLoader(newSignalBatchFn(repos.Signal)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
