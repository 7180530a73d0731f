package application

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

var _ applicationRepo = &applicationRepoMock{}

type applicationRepoMock struct {
	CreateFunc  func(ctx context.Context, a *domain.Application) (*domain.Application, error)
	GetByIDFunc func(ctx context.Context, userID, id uuid.UUID) (*domain.Application, error)
	DeleteFunc  func(ctx context.Context, userID, id uuid.UUID) error
	ListFunc    func(ctx context.Context, userID uuid.UUID, f domain.ApplicationFilter) ([]*domain.Application, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Application
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.ApplicationFilter
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockDelete  sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *applicationRepoMock) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	if mock.CreateFunc == nil {
		panic("applicationRepoMock.CreateFunc: method is nil but applicationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Application
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *applicationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Application
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Application, error) {
	if mock.GetByIDFunc == nil {
		panic("applicationRepoMock.GetByIDFunc: method is nil but applicationRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *applicationRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("applicationRepoMock.DeleteFunc: method is nil but applicationRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *applicationRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *applicationRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.ApplicationFilter) ([]*domain.Application, int, error) {
	if mock.ListFunc == nil {
		panic("applicationRepoMock.ListFunc: method is nil but applicationRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.ApplicationFilter
	}{Ctx: ctx, UserID: userID, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, f)
}

func (mock *applicationRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.ApplicationFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
