package signal

import (
	"context"
	"github.com/google/uuid"
	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"sync"
)

var _ updateRepo = &updateRepoMock{}

type updateRepoMock struct {
	LatestUpdatesFunc func(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*domain.SignalUpdate, error)
	ListUpdatesFunc   func(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*domain.SignalUpdate, error)
	AddUpdateFunc     func(ctx context.Context, orgID uuid.UUID, u *domain.SignalUpdate) (*domain.SignalUpdate, error)

	calls struct {
		LatestUpdates []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			IDs   []uuid.UUID
		}
		ListUpdates []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			IDs   []uuid.UUID
		}
		AddUpdate []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			U     *domain.SignalUpdate
		}
	}
	lockLatestUpdates sync.RWMutex
	lockListUpdates   sync.RWMutex
	lockAddUpdate     sync.RWMutex
}

func (mock *updateRepoMock) LatestUpdates(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*domain.SignalUpdate, error) {
	if mock.LatestUpdatesFunc == nil {
		panic("updateRepoMock.LatestUpdatesFunc: method is nil but updateRepo.LatestUpdates was just called")
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
	mock.lockLatestUpdates.Lock()
	mock.calls.LatestUpdates = append(mock.calls.LatestUpdates, callInfo)
	mock.lockLatestUpdates.Unlock()
	return mock.LatestUpdatesFunc(ctx, orgID, ids)
}

func (mock *updateRepoMock) LatestUpdatesCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	IDs   []uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		IDs   []uuid.UUID
	}
	mock.lockLatestUpdates.RLock()
	calls = mock.calls.LatestUpdates
	mock.lockLatestUpdates.RUnlock()
	return calls
}

func (mock *updateRepoMock) ListUpdates(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*domain.SignalUpdate, error) {
	if mock.ListUpdatesFunc == nil {
		panic("updateRepoMock.ListUpdatesFunc: method is nil but updateRepo.ListUpdates was just called")
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
	mock.lockListUpdates.Lock()
	mock.calls.ListUpdates = append(mock.calls.ListUpdates, callInfo)
	mock.lockListUpdates.Unlock()
	return mock.ListUpdatesFunc(ctx, orgID, ids)
}

func (mock *updateRepoMock) ListUpdatesCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	IDs   []uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		IDs   []uuid.UUID
	}
	mock.lockListUpdates.RLock()
	calls = mock.calls.ListUpdates
	mock.lockListUpdates.RUnlock()
	return calls
}

func (mock *updateRepoMock) AddUpdate(ctx context.Context, orgID uuid.UUID, u *domain.SignalUpdate) (*domain.SignalUpdate, error) {
	if mock.AddUpdateFunc == nil {
		panic("updateRepoMock.AddUpdateFunc: method is nil but updateRepo.AddUpdate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		U     *domain.SignalUpdate
	}{
		Ctx:   ctx,
		OrgID: orgID,
		U:     u,
	}
	mock.lockAddUpdate.Lock()
	mock.calls.AddUpdate = append(mock.calls.AddUpdate, callInfo)
	mock.lockAddUpdate.Unlock()
	return mock.AddUpdateFunc(ctx, orgID, u)
}

func (mock *updateRepoMock) AddUpdateCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	U     *domain.SignalUpdate
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		U     *domain.SignalUpdate
	}
	mock.lockAddUpdate.RLock()
	calls = mock.calls.AddUpdate
	mock.lockAddUpdate.RUnlock()
	return calls
}
