package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByExternalIDFunc func(ctx context.Context, externalUserID string) (*domain.Profile, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	calls struct {
		GetByExternalID []struct {
			Ctx            context.Context
			ExternalUserID string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByExternalID sync.RWMutex
	lockGetByID         sync.RWMutex
}

func (mock *profileRepoMock) GetByExternalID(ctx context.Context, externalUserID string) (*domain.Profile, error) {
	if mock.GetByExternalIDFunc == nil {
		panic("profileRepoMock.GetByExternalIDFunc: method is nil but profileRepo.GetByExternalID was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ExternalUserID string
	}{Ctx: ctx, ExternalUserID: externalUserID}
	mock.lockGetByExternalID.Lock()
	mock.calls.GetByExternalID = append(mock.calls.GetByExternalID, callInfo)
	mock.lockGetByExternalID.Unlock()
	return mock.GetByExternalIDFunc(ctx, externalUserID)
}

func (mock *profileRepoMock) GetByExternalIDCalls() []struct {
	Ctx            context.Context
	ExternalUserID string
} {
	var calls []struct {
		Ctx            context.Context
		ExternalUserID string
	}
	mock.lockGetByExternalID.RLock()
	calls = mock.calls.GetByExternalID
	mock.lockGetByExternalID.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
