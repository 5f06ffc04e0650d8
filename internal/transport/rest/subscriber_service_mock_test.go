package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/internal/service/subscriber"
	"sync"
)

var _ subscriberService = &subscriberServiceMock{}

type subscriberServiceMock struct {
	ListFunc           func(ctx context.Context, input subscriber.ListInput) (*subscriber.ListResult, error)
	ListActiveFunc     func(ctx context.Context) ([]*domain.Subscriber, error)
	GetFunc            func(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.Subscriber, error)
	GetActiveCountFunc func(ctx context.Context) (int, error)
	GetStatsFunc       func(ctx context.Context) (*domain.SubscriberStats, error)
	CreateFunc         func(ctx context.Context, input subscriber.CreateInput) (*subscriber.CreateResult, error)
	BulkImportFunc     func(ctx context.Context, rows []subscriber.ImportRow, source string) (*subscriber.BulkImportResult, error)
	UnsubscribeFunc    func(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error)
	MarkBouncedFunc    func(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error)
	UpdateTagsFunc     func(ctx context.Context, id uuid.UUID, tags []string) (*domain.Subscriber, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Input subscriber.ListInput
		}
		ListActive []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetActiveCount []struct {
			Ctx context.Context
		}
		GetStats []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx   context.Context
			Input subscriber.CreateInput
		}
		BulkImport []struct {
			Ctx    context.Context
			Rows   []subscriber.ImportRow
			Source string
		}
		Unsubscribe []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkBounced []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateTags []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Tags []string
		}
	}
	lockList           sync.RWMutex
	lockListActive     sync.RWMutex
	lockGet            sync.RWMutex
	lockGetByEmail     sync.RWMutex
	lockGetActiveCount sync.RWMutex
	lockGetStats       sync.RWMutex
	lockCreate         sync.RWMutex
	lockBulkImport     sync.RWMutex
	lockUnsubscribe    sync.RWMutex
	lockMarkBounced    sync.RWMutex
	lockUpdateTags     sync.RWMutex
}

func (mock *subscriberServiceMock) List(ctx context.Context, input subscriber.ListInput) (*subscriber.ListResult, error) {
	if mock.ListFunc == nil {
		panic("subscriberServiceMock.ListFunc: method is nil but subscriberService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input subscriber.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *subscriberServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input subscriber.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input subscriber.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *subscriberServiceMock) ListActive(ctx context.Context) ([]*domain.Subscriber, error) {
	if mock.ListActiveFunc == nil {
		panic("subscriberServiceMock.ListActiveFunc: method is nil but subscriberService.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *subscriberServiceMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListActive.RLock()
	calls = mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *subscriberServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error) {
	if mock.GetFunc == nil {
		panic("subscriberServiceMock.GetFunc: method is nil but subscriberService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *subscriberServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *subscriberServiceMock) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	if mock.GetByEmailFunc == nil {
		panic("subscriberServiceMock.GetByEmailFunc: method is nil but subscriberService.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *subscriberServiceMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGetByEmail.RLock()
	calls = mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *subscriberServiceMock) GetActiveCount(ctx context.Context) (int, error) {
	if mock.GetActiveCountFunc == nil {
		panic("subscriberServiceMock.GetActiveCountFunc: method is nil but subscriberService.GetActiveCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetActiveCount.Lock()
	mock.calls.GetActiveCount = append(mock.calls.GetActiveCount, callInfo)
	mock.lockGetActiveCount.Unlock()
	return mock.GetActiveCountFunc(ctx)
}

func (mock *subscriberServiceMock) GetActiveCountCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetActiveCount.RLock()
	calls = mock.calls.GetActiveCount
	mock.lockGetActiveCount.RUnlock()
	return calls
}

func (mock *subscriberServiceMock) GetStats(ctx context.Context) (*domain.SubscriberStats, error) {
	if mock.GetStatsFunc == nil {
		panic("subscriberServiceMock.GetStatsFunc: method is nil but subscriberService.GetStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetStats.Lock()
	mock.calls.GetStats = append(mock.calls.GetStats, callInfo)
	mock.lockGetStats.Unlock()
	return mock.GetStatsFunc(ctx)
}

func (mock *subscriberServiceMock) GetStatsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetStats.RLock()
	calls = mock.calls.GetStats
	mock.lockGetStats.RUnlock()
	return calls
}

func (mock *subscriberServiceMock) Create(ctx context.Context, input subscriber.CreateInput) (*subscriber.CreateResult, error) {
	if mock.CreateFunc == nil {
		panic("subscriberServiceMock.CreateFunc: method is nil but subscriberService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input subscriber.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *subscriberServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input subscriber.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input subscriber.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *subscriberServiceMock) BulkImport(ctx context.Context, rows []subscriber.ImportRow, source string) (*subscriber.BulkImportResult, error) {
	if mock.BulkImportFunc == nil {
		panic("subscriberServiceMock.BulkImportFunc: method is nil but subscriberService.BulkImport was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Rows   []subscriber.ImportRow
		Source string
	}{
		Ctx:    ctx,
		Rows:   rows,
		Source: source,
	}
	mock.lockBulkImport.Lock()
	mock.calls.BulkImport = append(mock.calls.BulkImport, callInfo)
	mock.lockBulkImport.Unlock()
	return mock.BulkImportFunc(ctx, rows, source)
}

func (mock *subscriberServiceMock) BulkImportCalls() []struct {
	Ctx    context.Context
	Rows   []subscriber.ImportRow
	Source string
} {
	var calls []struct {
		Ctx    context.Context
		Rows   []subscriber.ImportRow
		Source string
	}
	mock.lockBulkImport.RLock()
	calls = mock.calls.BulkImport
	mock.lockBulkImport.RUnlock()
	return calls
}

func (mock *subscriberServiceMock) Unsubscribe(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error) {
	if mock.UnsubscribeFunc == nil {
		panic("subscriberServiceMock.UnsubscribeFunc: method is nil but subscriberService.Unsubscribe was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockUnsubscribe.Lock()
	mock.calls.Unsubscribe = append(mock.calls.Unsubscribe, callInfo)
	mock.lockUnsubscribe.Unlock()
	return mock.UnsubscribeFunc(ctx, id)
}

func (mock *subscriberServiceMock) UnsubscribeCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockUnsubscribe.RLock()
	calls = mock.calls.Unsubscribe
	mock.lockUnsubscribe.RUnlock()
	return calls
}

func (mock *subscriberServiceMock) MarkBounced(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error) {
	if mock.MarkBouncedFunc == nil {
		panic("subscriberServiceMock.MarkBouncedFunc: method is nil but subscriberService.MarkBounced was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockMarkBounced.Lock()
	mock.calls.MarkBounced = append(mock.calls.MarkBounced, callInfo)
	mock.lockMarkBounced.Unlock()
	return mock.MarkBouncedFunc(ctx, id)
}

func (mock *subscriberServiceMock) MarkBouncedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockMarkBounced.RLock()
	calls = mock.calls.MarkBounced
	mock.lockMarkBounced.RUnlock()
	return calls
}

func (mock *subscriberServiceMock) UpdateTags(ctx context.Context, id uuid.UUID, tags []string) (*domain.Subscriber, error) {
	if mock.UpdateTagsFunc == nil {
		panic("subscriberServiceMock.UpdateTagsFunc: method is nil but subscriberService.UpdateTags was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Tags []string
	}{
		Ctx:  ctx,
		ID:   id,
		Tags: tags,
	}
	mock.lockUpdateTags.Lock()
	mock.calls.UpdateTags = append(mock.calls.UpdateTags, callInfo)
	mock.lockUpdateTags.Unlock()
	return mock.UpdateTagsFunc(ctx, id, tags)
}

func (mock *subscriberServiceMock) UpdateTagsCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Tags []string
} {
	var calls []struct {
		Ctx  context.Context
		ID   uuid.UUID
		Tags []string
	}
	mock.lockUpdateTags.RLock()
	calls = mock.calls.UpdateTags
	mock.lockUpdateTags.RUnlock()
	return calls
}
