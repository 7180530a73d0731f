package document

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	CreateFunc  func(ctx context.Context, d *domain.Document) (*domain.Document, error)
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Document, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Document, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, f domain.DocumentFilter) ([]*domain.Document, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			D   *domain.Document
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.DocumentFilter
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockDelete  sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *documentRepoMock) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	if mock.CreateFunc == nil {
		panic("documentRepoMock.CreateFunc: method is nil but documentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.Document
	}{Ctx: ctx, D: d}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *documentRepoMock) CreateCalls() []struct {
		Ctx context.Context
		D   *domain.Document
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *documentRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Document, error) {
	if mock.GetByIDFunc == nil {
		panic("documentRepoMock.GetByIDFunc: method is nil but documentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *documentRepoMock) GetByIDCalls() []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *documentRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Document, error) {
	if mock.DeleteFunc == nil {
		panic("documentRepoMock.DeleteFunc: method is nil but documentRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *documentRepoMock) DeleteCalls() []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *documentRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.DocumentFilter) ([]*domain.Document, int, error) {
	if mock.ListFunc == nil {
		panic("documentRepoMock.ListFunc: method is nil but documentRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.DocumentFilter
	}{Ctx: ctx, UserID: userID, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, f)
}

func (mock *documentRepoMock) ListCalls() []struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.DocumentFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
