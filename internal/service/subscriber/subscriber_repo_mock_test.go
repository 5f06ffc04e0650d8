package subscriber

import (
	"context"
	"github.com/google/uuid"
	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"sync"
	"time"
)

var _ subscriberRepo = &subscriberRepoMock{}

type subscriberRepoMock struct {
	GetByIDFunc       func(ctx context.Context, orgID uuid.UUID, id uuid.UUID) (*domain.Subscriber, error)
	GetByEmailFunc    func(ctx context.Context, orgID uuid.UUID, email string) (*domain.Subscriber, error)
	ListFunc          func(ctx context.Context, orgID uuid.UUID, status *domain.SubscriberStatus, limit int, offset int) ([]*domain.Subscriber, int, error)
	ListAllFunc       func(ctx context.Context, orgID uuid.UUID) ([]*domain.Subscriber, error)
	ListByStatusFunc  func(ctx context.Context, orgID uuid.UUID, status domain.SubscriberStatus) ([]*domain.Subscriber, error)
	CountByStatusFunc func(ctx context.Context, orgID uuid.UUID, status domain.SubscriberStatus) (int, error)
	CreateFunc        func(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, error)
	ReactivateFunc    func(ctx context.Context, orgID uuid.UUID, id uuid.UUID, source string, at time.Time) (*domain.Subscriber, error)
	UnsubscribeFunc   func(ctx context.Context, orgID uuid.UUID, id uuid.UUID, at time.Time) (*domain.Subscriber, error)
	MarkBouncedFunc   func(ctx context.Context, orgID uuid.UUID, id uuid.UUID, at time.Time) (*domain.Subscriber, error)
	UpdateTagsFunc    func(ctx context.Context, orgID uuid.UUID, id uuid.UUID, tags []string, at time.Time) (*domain.Subscriber, error)

	calls struct {
		GetByID []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			ID    uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			Email string
		}
		List []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			Status *domain.SubscriberStatus
			Limit  int
			Offset int
		}
		ListAll []struct {
			Ctx   context.Context
			OrgID uuid.UUID
		}
		ListByStatus []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			Status domain.SubscriberStatus
		}
		CountByStatus []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			Status domain.SubscriberStatus
		}
		Create []struct {
			Ctx context.Context
			S   *domain.Subscriber
		}
		Reactivate []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			ID     uuid.UUID
			Source string
			At     time.Time
		}
		Unsubscribe []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			ID    uuid.UUID
			At    time.Time
		}
		MarkBounced []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			ID    uuid.UUID
			At    time.Time
		}
		UpdateTags []struct {
			Ctx   context.Context
			OrgID uuid.UUID
			ID    uuid.UUID
			Tags  []string
			At    time.Time
		}
	}
	lockGetByID       sync.RWMutex
	lockGetByEmail    sync.RWMutex
	lockList          sync.RWMutex
	lockListAll       sync.RWMutex
	lockListByStatus  sync.RWMutex
	lockCountByStatus sync.RWMutex
	lockCreate        sync.RWMutex
	lockReactivate    sync.RWMutex
	lockUnsubscribe   sync.RWMutex
	lockMarkBounced   sync.RWMutex
	lockUpdateTags    sync.RWMutex
}

func (mock *subscriberRepoMock) GetByID(ctx context.Context, orgID uuid.UUID, id uuid.UUID) (*domain.Subscriber, error) {
	if mock.GetByIDFunc == nil {
		panic("subscriberRepoMock.GetByIDFunc: method is nil but subscriberRepo.GetByID was just called")
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

func (mock *subscriberRepoMock) GetByIDCalls() []struct {
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

func (mock *subscriberRepoMock) GetByEmail(ctx context.Context, orgID uuid.UUID, email string) (*domain.Subscriber, error) {
	if mock.GetByEmailFunc == nil {
		panic("subscriberRepoMock.GetByEmailFunc: method is nil but subscriberRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		Email string
	}{
		Ctx:   ctx,
		OrgID: orgID,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, orgID, email)
}

func (mock *subscriberRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		Email string
	}
	mock.lockGetByEmail.RLock()
	calls = mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *subscriberRepoMock) List(ctx context.Context, orgID uuid.UUID, status *domain.SubscriberStatus, limit int, offset int) ([]*domain.Subscriber, int, error) {
	if mock.ListFunc == nil {
		panic("subscriberRepoMock.ListFunc: method is nil but subscriberRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		Status *domain.SubscriberStatus
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		OrgID:  orgID,
		Status: status,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, orgID, status, limit, offset)
}

func (mock *subscriberRepoMock) ListCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	Status *domain.SubscriberStatus
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		Status *domain.SubscriberStatus
		Limit  int
		Offset int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *subscriberRepoMock) ListAll(ctx context.Context, orgID uuid.UUID) ([]*domain.Subscriber, error) {
	if mock.ListAllFunc == nil {
		panic("subscriberRepoMock.ListAllFunc: method is nil but subscriberRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
	}{
		Ctx:   ctx,
		OrgID: orgID,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, orgID)
}

func (mock *subscriberRepoMock) ListAllCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *subscriberRepoMock) ListByStatus(ctx context.Context, orgID uuid.UUID, status domain.SubscriberStatus) ([]*domain.Subscriber, error) {
	if mock.ListByStatusFunc == nil {
		panic("subscriberRepoMock.ListByStatusFunc: method is nil but subscriberRepo.ListByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		Status domain.SubscriberStatus
	}{
		Ctx:    ctx,
		OrgID:  orgID,
		Status: status,
	}
	mock.lockListByStatus.Lock()
	mock.calls.ListByStatus = append(mock.calls.ListByStatus, callInfo)
	mock.lockListByStatus.Unlock()
	return mock.ListByStatusFunc(ctx, orgID, status)
}

func (mock *subscriberRepoMock) ListByStatusCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	Status domain.SubscriberStatus
} {
	var calls []struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		Status domain.SubscriberStatus
	}
	mock.lockListByStatus.RLock()
	calls = mock.calls.ListByStatus
	mock.lockListByStatus.RUnlock()
	return calls
}

func (mock *subscriberRepoMock) CountByStatus(ctx context.Context, orgID uuid.UUID, status domain.SubscriberStatus) (int, error) {
	if mock.CountByStatusFunc == nil {
		panic("subscriberRepoMock.CountByStatusFunc: method is nil but subscriberRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		Status domain.SubscriberStatus
	}{
		Ctx:    ctx,
		OrgID:  orgID,
		Status: status,
	}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx, orgID, status)
}

func (mock *subscriberRepoMock) CountByStatusCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	Status domain.SubscriberStatus
} {
	var calls []struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		Status domain.SubscriberStatus
	}
	mock.lockCountByStatus.RLock()
	calls = mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

func (mock *subscriberRepoMock) Create(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, error) {
	if mock.CreateFunc == nil {
		panic("subscriberRepoMock.CreateFunc: method is nil but subscriberRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Subscriber
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *subscriberRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Subscriber
} {
	var calls []struct {
		Ctx context.Context
		S   *domain.Subscriber
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *subscriberRepoMock) Reactivate(ctx context.Context, orgID uuid.UUID, id uuid.UUID, source string, at time.Time) (*domain.Subscriber, error) {
	if mock.ReactivateFunc == nil {
		panic("subscriberRepoMock.ReactivateFunc: method is nil but subscriberRepo.Reactivate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		ID     uuid.UUID
		Source string
		At     time.Time
	}{
		Ctx:    ctx,
		OrgID:  orgID,
		ID:     id,
		Source: source,
		At:     at,
	}
	mock.lockReactivate.Lock()
	mock.calls.Reactivate = append(mock.calls.Reactivate, callInfo)
	mock.lockReactivate.Unlock()
	return mock.ReactivateFunc(ctx, orgID, id, source, at)
}

func (mock *subscriberRepoMock) ReactivateCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	ID     uuid.UUID
	Source string
	At     time.Time
} {
	var calls []struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		ID     uuid.UUID
		Source string
		At     time.Time
	}
	mock.lockReactivate.RLock()
	calls = mock.calls.Reactivate
	mock.lockReactivate.RUnlock()
	return calls
}

func (mock *subscriberRepoMock) Unsubscribe(ctx context.Context, orgID uuid.UUID, id uuid.UUID, at time.Time) (*domain.Subscriber, error) {
	if mock.UnsubscribeFunc == nil {
		panic("subscriberRepoMock.UnsubscribeFunc: method is nil but subscriberRepo.Unsubscribe was just called")
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
	mock.lockUnsubscribe.Lock()
	mock.calls.Unsubscribe = append(mock.calls.Unsubscribe, callInfo)
	mock.lockUnsubscribe.Unlock()
	return mock.UnsubscribeFunc(ctx, orgID, id, at)
}

func (mock *subscriberRepoMock) UnsubscribeCalls() []struct {
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
	mock.lockUnsubscribe.RLock()
	calls = mock.calls.Unsubscribe
	mock.lockUnsubscribe.RUnlock()
	return calls
}

func (mock *subscriberRepoMock) MarkBounced(ctx context.Context, orgID uuid.UUID, id uuid.UUID, at time.Time) (*domain.Subscriber, error) {
	if mock.MarkBouncedFunc == nil {
		panic("subscriberRepoMock.MarkBouncedFunc: method is nil but subscriberRepo.MarkBounced was just called")
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
	mock.lockMarkBounced.Lock()
	mock.calls.MarkBounced = append(mock.calls.MarkBounced, callInfo)
	mock.lockMarkBounced.Unlock()
	return mock.MarkBouncedFunc(ctx, orgID, id, at)
}

func (mock *subscriberRepoMock) MarkBouncedCalls() []struct {
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
	mock.lockMarkBounced.RLock()
	calls = mock.calls.MarkBounced
	mock.lockMarkBounced.RUnlock()
	return calls
}

func (mock *subscriberRepoMock) UpdateTags(ctx context.Context, orgID uuid.UUID, id uuid.UUID, tags []string, at time.Time) (*domain.Subscriber, error) {
	if mock.UpdateTagsFunc == nil {
		panic("subscriberRepoMock.UpdateTagsFunc: method is nil but subscriberRepo.UpdateTags was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
		Tags  []string
		At    time.Time
	}{
		Ctx:   ctx,
		OrgID: orgID,
		ID:    id,
		Tags:  tags,
		At:    at,
	}
	mock.lockUpdateTags.Lock()
	mock.calls.UpdateTags = append(mock.calls.UpdateTags, callInfo)
	mock.lockUpdateTags.Unlock()
	return mock.UpdateTagsFunc(ctx, orgID, id, tags, at)
}

func (mock *subscriberRepoMock) UpdateTagsCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
	ID    uuid.UUID
	Tags  []string
	At    time.Time
} {
	var calls []struct {
		Ctx   context.Context
		OrgID uuid.UUID
		ID    uuid.UUID
		Tags  []string
		At    time.Time
	}
	mock.lockUpdateTags.RLock()
	calls = mock.calls.UpdateTags
	mock.lockUpdateTags.RUnlock()
	return calls
}
