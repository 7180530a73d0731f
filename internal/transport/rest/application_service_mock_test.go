package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
	"github.com/jvedigdev/ai-job-ace/internal/service/application"
)

var _ applicationService = &applicationServiceMock{}

type applicationServiceMock struct {
	CreateFunc func(ctx context.Context, input application.CreateInput) (*domain.Application, error)
	ListFunc   func(ctx context.Context, input application.ListInput) (*application.ListResult, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input application.CreateInput
		}
		List []struct {
			Ctx   context.Context
			Input application.ListInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *applicationServiceMock) Create(ctx context.Context, input application.CreateInput) (*domain.Application, error) {
	if mock.CreateFunc == nil {
		panic("applicationServiceMock.CreateFunc: method is nil but applicationService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *applicationServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input application.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input application.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *applicationServiceMock) List(ctx context.Context, input application.ListInput) (*application.ListResult, error) {
	if mock.ListFunc == nil {
		panic("applicationServiceMock.ListFunc: method is nil but applicationService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *applicationServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input application.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input application.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *applicationServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if mock.GetFunc == nil {
		panic("applicationServiceMock.GetFunc: method is nil but applicationService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *applicationServiceMock) GetCalls() []struct {
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

func (mock *applicationServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("applicationServiceMock.DeleteFunc: method is nil but applicationService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *applicationServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
