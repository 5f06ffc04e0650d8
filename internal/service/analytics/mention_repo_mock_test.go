package analytics

import (
	"context"
	"github.com/google/uuid"
	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"sync"
	"time"
)

var _ mentionRepo = &mentionRepoMock{}

type mentionRepoMock struct {
	ListSinceFunc  func(ctx context.Context, orgID uuid.UUID, since time.Time, limit int) ([]*domain.RawMention, error)
	CountSinceFunc func(ctx context.Context, orgID uuid.UUID, since time.Time) (int, error)

	calls struct {
		ListSince []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			Since time.Time
			Limit int
		}
		CountSince []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			Since time.Time
		}
	}
	lockListSince  sync.RWMutex
	lockCountSince sync.RWMutex
}

func (mock *mentionRepoMock) ListSince(ctx context.Context, orgID uuid.UUID, since time.Time, limit int) ([]*domain.RawMention, error) {
	if mock.ListSinceFunc == nil {
		panic("mentionRepoMock.ListSinceFunc: method is nil but mentionRepo.ListSince was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		Since time.Time
		Limit int
	}{
		Ctx:   ctx,
		OrgID: orgID,
		Since: since,
		Limit: limit,
	}
	mock.lockListSince.Lock()
	mock.calls.ListSince = append(mock.calls.ListSince, callInfo)
	mock.lockListSince.Unlock()
	return mock.ListSinceFunc(ctx, orgID, since, limit)
}

func (mock *mentionRepoMock) ListSinceCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	Since time.Time
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		Since time.Time
		Limit int
	}
	mock.lockListSince.RLock()
	calls = mock.calls.ListSince
	mock.lockListSince.RUnlock()
	return calls
}

func (mock *mentionRepoMock) CountSince(ctx context.Context, orgID uuid.UUID, since time.Time) (int, error) {
	if mock.CountSinceFunc == nil {
		panic("mentionRepoMock.CountSinceFunc: method is nil but mentionRepo.CountSince was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		Since time.Time
	}{
		Ctx:   ctx,
		OrgID: orgID,
		Since: since,
	}
	mock.lockCountSince.Lock()
	mock.calls.CountSince = append(mock.calls.CountSince, callInfo)
	mock.lockCountSince.Unlock()
	return mock.CountSinceFunc(ctx, orgID, since)
}

func (mock *mentionRepoMock) CountSinceCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	Since time.Time
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		Since time.Time
	}
	mock.lockCountSince.RLock()
	calls = mock.calls.CountSince
	mock.lockCountSince.RUnlock()
	return calls
}
