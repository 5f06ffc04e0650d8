package signal

import (
	"context"
	"github.com/google/uuid"
	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"sync"
	"time"
)

var _ signalRepo = &signalRepoMock{}

type signalRepoMock struct {
	GetByIDFunc             func(ctx context.Context, orgID uuid.UUID, id uuid.UUID) (*domain.Signal, error)
	ListFunc                func(ctx context.Context, orgID uuid.UUID) ([]*domain.Signal, error)
	ListByIDsFunc           func(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*domain.Signal, error)
	ListRecentFunc          func(ctx context.Context, orgID uuid.UUID, limit int) ([]*domain.Signal, error)
	ListForNewsletterFunc   func(ctx context.Context, orgID uuid.UUID, since time.Time, minConfidence float64, limit int) ([]*domain.Signal, error)
	CreateFunc              func(ctx context.Context, s *domain.Signal) (*domain.Signal, error)
	UpdateFunc              func(ctx context.Context, orgID uuid.UUID, id uuid.UUID, patch domain.SignalPatch, at time.Time) (*domain.Signal, error)
	ArchiveFunc             func(ctx context.Context, orgID uuid.UUID, id uuid.UUID, reason *string, at time.Time) (*domain.Signal, error)
	RestoreFunc             func(ctx context.Context, orgID uuid.UUID, id uuid.UUID, at time.Time) (*domain.Signal, error)
	MarkMergedFunc          func(ctx context.Context, orgID uuid.UUID, id uuid.UUID, primaryID uuid.UUID, at time.Time) error
	UpdateMetricsFunc       func(ctx context.Context, orgID uuid.UUID, id uuid.UUID, m domain.SignalMetrics, at time.Time) (*domain.Signal, error)
	UpdateMetricsBatchFunc  func(ctx context.Context, orgID uuid.UUID, metrics map[uuid.UUID]domain.SignalMetrics, at time.Time) (int, error)
	ToggleSaveFunc          func(ctx context.Context, orgID uuid.UUID, id uuid.UUID) (bool, error)
	IncrementViewCountFunc  func(ctx context.Context, orgID uuid.UUID, id uuid.UUID) (int, error)
	ListMergedPrimariesFunc func(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	DeleteFunc              func(ctx context.Context, orgID uuid.UUID, id uuid.UUID) error
	DeleteManyFunc          func(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		GetByID []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			ID    uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			OrgID uuid.UUID
		}
		ListByIDs []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			IDs   []uuid.UUID
		}
		ListRecent []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			Limit int
		}
		ListForNewsletter []struct {
			Ctx           context.Context
			OrgID         uuid.UUID
			Since         time.Time
			MinConfidence float64
			Limit         int
		}
		Create []struct {
			Ctx context.Context
			S   *domain.Signal
		}
		Update []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			ID    uuid.UUID
			Patch domain.SignalPatch
			At    time.Time
		}
		Archive []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			ID     uuid.UUID
			Reason *string
			At     time.Time
		}
		Restore []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			ID    uuid.UUID
			At    time.Time
		}
		MarkMerged []struct {
			Ctx       context.Context
			OrgID     uuid.UUID
			ID        uuid.UUID
			PrimaryID uuid.UUID
			At        time.Time
		}
		UpdateMetrics []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			ID    uuid.UUID
			M     domain.SignalMetrics
			At    time.Time
		}
		UpdateMetricsBatch []struct {
			Ctx     context.Context
			OrgID   uuid.UUID
			Metrics map[uuid.UUID]domain.SignalMetrics
			At      time.Time
		}
		ToggleSave []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			ID    uuid.UUID
		}
		IncrementViewCount []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			ID    uuid.UUID
		}
		ListMergedPrimaries []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			IDs   []uuid.UUID
		}
		Delete []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			ID    uuid.UUID
		}
		DeleteMany []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			IDs   []uuid.UUID
		}
	}
	lockGetByID             sync.RWMutex
	lockList                sync.RWMutex
	lockListByIDs           sync.RWMutex
	lockListRecent          sync.RWMutex
	lockListForNewsletter   sync.RWMutex
	lockCreate              sync.RWMutex
	lockUpdate              sync.RWMutex
	lockArchive             sync.RWMutex
	lockRestore             sync.RWMutex
	lockMarkMerged          sync.RWMutex
	lockUpdateMetrics       sync.RWMutex
	lockUpdateMetricsBatch  sync.RWMutex
	lockToggleSave          sync.RWMutex
	lockIncrementViewCount  sync.RWMutex
	lockListMergedPrimaries sync.RWMutex
	lockDelete              sync.RWMutex
	lockDeleteMany          sync.RWMutex
}

func (mock *signalRepoMock) GetByID(ctx context.Context, orgID uuid.UUID, id uuid.UUID) (*domain.Signal, error) {
	if mock.GetByIDFunc == nil {
		panic("signalRepoMock.GetByIDFunc: method is nil but signalRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
	}{
		Ctx:   ctx,
		OrgID: orgID,
		ID:    id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, orgID, id)
}

func (mock *signalRepoMock) GetByIDCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	ID    uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *signalRepoMock) List(ctx context.Context, orgID uuid.UUID) ([]*domain.Signal, error) {
	if mock.ListFunc == nil {
		panic("signalRepoMock.ListFunc: method is nil but signalRepo.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
	}{
		Ctx:   ctx,
		OrgID: orgID,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, orgID)
}

func (mock *signalRepoMock) ListCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *signalRepoMock) ListByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*domain.Signal, error) {
	if mock.ListByIDsFunc == nil {
		panic("signalRepoMock.ListByIDsFunc: method is nil but signalRepo.ListByIDs was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		IDs   []uuid.UUID
	}{
		Ctx:   ctx,
		OrgID: orgID,
		IDs:   ids,
	}
	mock.lockListByIDs.Lock()
	mock.calls.ListByIDs = append(mock.calls.ListByIDs, callInfo)
	mock.lockListByIDs.Unlock()
	return mock.ListByIDsFunc(ctx, orgID, ids)
}

func (mock *signalRepoMock) ListByIDsCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	IDs   []uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		IDs   []uuid.UUID
	}
	mock.lockListByIDs.RLock()
	calls = mock.calls.ListByIDs
	mock.lockListByIDs.RUnlock()
	return calls
}

func (mock *signalRepoMock) ListRecent(ctx context.Context, orgID uuid.UUID, limit int) ([]*domain.Signal, error) {
	if mock.ListRecentFunc == nil {
		panic("signalRepoMock.ListRecentFunc: method is nil but signalRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		Limit int
	}{
		Ctx:   ctx,
		OrgID: orgID,
		Limit: limit,
	}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, orgID, limit)
}

func (mock *signalRepoMock) ListRecentCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		Limit int
	}
	mock.lockListRecent.RLock()
	calls = mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *signalRepoMock) ListForNewsletter(ctx context.Context, orgID uuid.UUID, since time.Time, minConfidence float64, limit int) ([]*domain.Signal, error) {
	if mock.ListForNewsletterFunc == nil {
		panic("signalRepoMock.ListForNewsletterFunc: method is nil but signalRepo.ListForNewsletter was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		OrgID         uuid.UUID
		Since         time.Time
		MinConfidence float64
		Limit         int
	}{
		Ctx:           ctx,
		OrgID:         orgID,
		Since:         since,
		MinConfidence: minConfidence,
		Limit:         limit,
	}
	mock.lockListForNewsletter.Lock()
	mock.calls.ListForNewsletter = append(mock.calls.ListForNewsletter, callInfo)
	mock.lockListForNewsletter.Unlock()
	return mock.ListForNewsletterFunc(ctx, orgID, since, minConfidence, limit)
}

func (mock *signalRepoMock) ListForNewsletterCalls() []struct {
	Ctx           context.Context
	OrgID         uuid.UUID
	Since         time.Time
	MinConfidence float64
	Limit         int
} {
	var calls []struct {
		Ctx           context.Context
		OrgID         uuid.UUID
		Since         time.Time
		MinConfidence float64
		Limit         int
	}
	mock.lockListForNewsletter.RLock()
	calls = mock.calls.ListForNewsletter
	mock.lockListForNewsletter.RUnlock()
	return calls
}

func (mock *signalRepoMock) Create(ctx context.Context, s *domain.Signal) (*domain.Signal, error) {
	if mock.CreateFunc == nil {
		panic("signalRepoMock.CreateFunc: method is nil but signalRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Signal
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *signalRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Signal
} {
	var calls []struct {
		Ctx context.Context
		S   *domain.Signal
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *signalRepoMock) Update(ctx context.Context, orgID uuid.UUID, id uuid.UUID, patch domain.SignalPatch, at time.Time) (*domain.Signal, error) {
	if mock.UpdateFunc == nil {
		panic("signalRepoMock.UpdateFunc: method is nil but signalRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
		Patch domain.SignalPatch
		At    time.Time
	}{
		Ctx:   ctx,
		OrgID: orgID,
		ID:    id,
		Patch: patch,
		At:    at,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, orgID, id, patch, at)
}

func (mock *signalRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	ID    uuid.UUID
	Patch domain.SignalPatch
	At    time.Time
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
		Patch domain.SignalPatch
		At    time.Time
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *signalRepoMock) Archive(ctx context.Context, orgID uuid.UUID, id uuid.UUID, reason *string, at time.Time) (*domain.Signal, error) {
	if mock.ArchiveFunc == nil {
		panic("signalRepoMock.ArchiveFunc: method is nil but signalRepo.Archive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		ID     uuid.UUID
		Reason *string
		At     time.Time
	}{
		Ctx:    ctx,
		OrgID:  orgID,
		ID:     id,
		Reason: reason,
		At:     at,
	}
	mock.lockArchive.Lock()
	mock.calls.Archive = append(mock.calls.Archive, callInfo)
	mock.lockArchive.Unlock()
	return mock.ArchiveFunc(ctx, orgID, id, reason, at)
}

func (mock *signalRepoMock) ArchiveCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	ID     uuid.UUID
	Reason *string
	At     time.Time
} {
	var calls []struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		ID     uuid.UUID
		Reason *string
		At     time.Time
	}
	mock.lockArchive.RLock()
	calls = mock.calls.Archive
	mock.lockArchive.RUnlock()
	return calls
}

func (mock *signalRepoMock) Restore(ctx context.Context, orgID uuid.UUID, id uuid.UUID, at time.Time) (*domain.Signal, error) {
	if mock.RestoreFunc == nil {
		panic("signalRepoMock.RestoreFunc: method is nil but signalRepo.Restore was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
		At    time.Time
	}{
		Ctx:   ctx,
		OrgID: orgID,
		ID:    id,
		At:    at,
	}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, orgID, id, at)
}

func (mock *signalRepoMock) RestoreCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	ID    uuid.UUID
	At    time.Time
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
		At    time.Time
	}
	mock.lockRestore.RLock()
	calls = mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *signalRepoMock) MarkMerged(ctx context.Context, orgID uuid.UUID, id uuid.UUID, primaryID uuid.UUID, at time.Time) error {
	if mock.MarkMergedFunc == nil {
		panic("signalRepoMock.MarkMergedFunc: method is nil but signalRepo.MarkMerged was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OrgID     uuid.UUID
		ID        uuid.UUID
		PrimaryID uuid.UUID
		At        time.Time
	}{
		Ctx:       ctx,
		OrgID:     orgID,
		ID:        id,
		PrimaryID: primaryID,
		At:        at,
	}
	mock.lockMarkMerged.Lock()
	mock.calls.MarkMerged = append(mock.calls.MarkMerged, callInfo)
	mock.lockMarkMerged.Unlock()
	return mock.MarkMergedFunc(ctx, orgID, id, primaryID, at)
}

func (mock *signalRepoMock) MarkMergedCalls() []struct {
	Ctx       context.Context
	OrgID     uuid.UUID
	ID        uuid.UUID
	PrimaryID uuid.UUID
	At        time.Time
} {
	var calls []struct {
		Ctx       context.Context
		OrgID     uuid.UUID
		ID        uuid.UUID
		PrimaryID uuid.UUID
		At        time.Time
	}
	mock.lockMarkMerged.RLock()
	calls = mock.calls.MarkMerged
	mock.lockMarkMerged.RUnlock()
	return calls
}

func (mock *signalRepoMock) UpdateMetrics(ctx context.Context, orgID uuid.UUID, id uuid.UUID, m domain.SignalMetrics, at time.Time) (*domain.Signal, error) {
	if mock.UpdateMetricsFunc == nil {
		panic("signalRepoMock.UpdateMetricsFunc: method is nil but signalRepo.UpdateMetrics was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
		M     domain.SignalMetrics
		At    time.Time
	}{
		Ctx:   ctx,
		OrgID: orgID,
		ID:    id,
		M:     m,
		At:    at,
	}
	mock.lockUpdateMetrics.Lock()
	mock.calls.UpdateMetrics = append(mock.calls.UpdateMetrics, callInfo)
	mock.lockUpdateMetrics.Unlock()
	return mock.UpdateMetricsFunc(ctx, orgID, id, m, at)
}

func (mock *signalRepoMock) UpdateMetricsCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	ID    uuid.UUID
	M     domain.SignalMetrics
	At    time.Time
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
		M     domain.SignalMetrics
		At    time.Time
	}
	mock.lockUpdateMetrics.RLock()
	calls = mock.calls.UpdateMetrics
	mock.lockUpdateMetrics.RUnlock()
	return calls
}

func (mock *signalRepoMock) UpdateMetricsBatch(ctx context.Context, orgID uuid.UUID, metrics map[uuid.UUID]domain.SignalMetrics, at time.Time) (int, error) {
	if mock.UpdateMetricsBatchFunc == nil {
		panic("signalRepoMock.UpdateMetricsBatchFunc: method is nil but signalRepo.UpdateMetricsBatch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OrgID   uuid.UUID
		Metrics map[uuid.UUID]domain.SignalMetrics
		At      time.Time
	}{
		Ctx:     ctx,
		OrgID:   orgID,
		Metrics: metrics,
		At:      at,
	}
	mock.lockUpdateMetricsBatch.Lock()
	mock.calls.UpdateMetricsBatch = append(mock.calls.UpdateMetricsBatch, callInfo)
	mock.lockUpdateMetricsBatch.Unlock()
	return mock.UpdateMetricsBatchFunc(ctx, orgID, metrics, at)
}

func (mock *signalRepoMock) UpdateMetricsBatchCalls() []struct {
	Ctx     context.Context
	OrgID   uuid.UUID
	Metrics map[uuid.UUID]domain.SignalMetrics
	At      time.Time
} {
	var calls []struct {
		Ctx     context.Context
		OrgID   uuid.UUID
		Metrics map[uuid.UUID]domain.SignalMetrics
		At      time.Time
	}
	mock.lockUpdateMetricsBatch.RLock()
	calls = mock.calls.UpdateMetricsBatch
	mock.lockUpdateMetricsBatch.RUnlock()
	return calls
}

func (mock *signalRepoMock) ToggleSave(ctx context.Context, orgID uuid.UUID, id uuid.UUID) (bool, error) {
	if mock.ToggleSaveFunc == nil {
		panic("signalRepoMock.ToggleSaveFunc: method is nil but signalRepo.ToggleSave was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
	}{
		Ctx:   ctx,
		OrgID: orgID,
		ID:    id,
	}
	mock.lockToggleSave.Lock()
	mock.calls.ToggleSave = append(mock.calls.ToggleSave, callInfo)
	mock.lockToggleSave.Unlock()
	return mock.ToggleSaveFunc(ctx, orgID, id)
}

func (mock *signalRepoMock) ToggleSaveCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	ID    uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
	}
	mock.lockToggleSave.RLock()
	calls = mock.calls.ToggleSave
	mock.lockToggleSave.RUnlock()
	return calls
}

func (mock *signalRepoMock) IncrementViewCount(ctx context.Context, orgID uuid.UUID, id uuid.UUID) (int, error) {
	if mock.IncrementViewCountFunc == nil {
		panic("signalRepoMock.IncrementViewCountFunc: method is nil but signalRepo.IncrementViewCount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
	}{
		Ctx:   ctx,
		OrgID: orgID,
		ID:    id,
	}
	mock.lockIncrementViewCount.Lock()
	mock.calls.IncrementViewCount = append(mock.calls.IncrementViewCount, callInfo)
	mock.lockIncrementViewCount.Unlock()
	return mock.IncrementViewCountFunc(ctx, orgID, id)
}

func (mock *signalRepoMock) IncrementViewCountCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	ID    uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
	}
	mock.lockIncrementViewCount.RLock()
	calls = mock.calls.IncrementViewCount
	mock.lockIncrementViewCount.RUnlock()
	return calls
}

func (mock *signalRepoMock) ListMergedPrimaries(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if mock.ListMergedPrimariesFunc == nil {
		panic("signalRepoMock.ListMergedPrimariesFunc: method is nil but signalRepo.ListMergedPrimaries was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		IDs   []uuid.UUID
	}{
		Ctx:   ctx,
		OrgID: orgID,
		IDs:   ids,
	}
	mock.lockListMergedPrimaries.Lock()
	mock.calls.ListMergedPrimaries = append(mock.calls.ListMergedPrimaries, callInfo)
	mock.lockListMergedPrimaries.Unlock()
	return mock.ListMergedPrimariesFunc(ctx, orgID, ids)
}

func (mock *signalRepoMock) ListMergedPrimariesCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	IDs   []uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		IDs   []uuid.UUID
	}
	mock.lockListMergedPrimaries.RLock()
	calls = mock.calls.ListMergedPrimaries
	mock.lockListMergedPrimaries.RUnlock()
	return calls
}

func (mock *signalRepoMock) Delete(ctx context.Context, orgID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("signalRepoMock.DeleteFunc: method is nil but signalRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
	}{
		Ctx:   ctx,
		OrgID: orgID,
		ID:    id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, orgID, id)
}

func (mock *signalRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	ID    uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *signalRepoMock) DeleteMany(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if mock.DeleteManyFunc == nil {
		panic("signalRepoMock.DeleteManyFunc: method is nil but signalRepo.DeleteMany was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		IDs   []uuid.UUID
	}{
		Ctx:   ctx,
		OrgID: orgID,
		IDs:   ids,
	}
	mock.lockDeleteMany.Lock()
	mock.calls.DeleteMany = append(mock.calls.DeleteMany, callInfo)
	mock.lockDeleteMany.Unlock()
	return mock.DeleteManyFunc(ctx, orgID, ids)
}

func (mock *signalRepoMock) DeleteManyCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	IDs   []uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		IDs   []uuid.UUID
	}
	mock.lockDeleteMany.RLock()
	calls = mock.calls.DeleteMany
	mock.lockDeleteMany.RUnlock()
	return calls
}
