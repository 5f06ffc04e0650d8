package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/pkg/ctxutil"
)

// Updates by SignalID, newest first as returned by the repository.
func newUpdatesBatchFn(repo updateRepo) dataloader.BatchFunc[uuid.UUID, []*domain.SignalUpdate] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]*domain.SignalUpdate] {
		orgID, ok := ctxutil.OrgIDFromCtx(ctx)
		if !ok {
			return errorResults[[]*domain.SignalUpdate](len(keys), domain.ErrUnauthorized)
		}

		updates, err := repo.ListUpdates(ctx, orgID, keys)
		if err != nil {
			return errorResults[[]*domain.SignalUpdate](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]*domain.SignalUpdate, len(keys))
		for _, u := range updates {
			grouped[u.SignalID] = append(grouped[u.SignalID], u)
		}

		return mapResults(keys, grouped, emptySlice[*domain.SignalUpdate])
	}
}

// Signal by ID. Unknown ids resolve to nil.
func newSignalBatchFn(repo signalRepo) dataloader.BatchFunc[uuid.UUID, *domain.Signal] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Signal] {
		orgID, ok := ctxutil.OrgIDFromCtx(ctx)
		if !ok {
			return errorResults[*domain.Signal](len(keys), domain.ErrUnauthorized)
		}

		rows, err := repo.ListByIDs(ctx, orgID, keys)
		if err != nil {
			return errorResults[*domain.Signal](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Signal, len(rows))
		for _, s := range rows {
			byID[s.ID] = s
		}

		results := make([]*dataloader.Result[*domain.Signal], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Signal]{Data: byID[key]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
