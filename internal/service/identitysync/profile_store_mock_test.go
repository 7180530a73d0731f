package identitysync

import (
	"context"
	"sync"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

var _ profileStore = &profileStoreMock{}

type profileStoreMock struct {
	UpsertFunc             func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	DeleteByExternalIDFunc func(ctx context.Context, externalUserID string) (bool, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			P   *domain.Profile
		}
		DeleteByExternalID []struct {
			Ctx            context.Context
			ExternalUserID string
		}
	}
	lockUpsert             sync.RWMutex
	lockDeleteByExternalID sync.RWMutex
}

func (mock *profileStoreMock) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if mock.UpsertFunc == nil {
		panic("profileStoreMock.UpsertFunc: method is nil but profileStore.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Profile
	}{Ctx: ctx, P: p}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *profileStoreMock) UpsertCalls() []struct {
	Ctx context.Context
	P   *domain.Profile
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *profileStoreMock) DeleteByExternalID(ctx context.Context, externalUserID string) (bool, error) {
	if mock.DeleteByExternalIDFunc == nil {
		panic("profileStoreMock.DeleteByExternalIDFunc: method is nil but profileStore.DeleteByExternalID was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ExternalUserID string
	}{Ctx: ctx, ExternalUserID: externalUserID}
	mock.lockDeleteByExternalID.Lock()
	mock.calls.DeleteByExternalID = append(mock.calls.DeleteByExternalID, callInfo)
	mock.lockDeleteByExternalID.Unlock()
	return mock.DeleteByExternalIDFunc(ctx, externalUserID)
}

func (mock *profileStoreMock) DeleteByExternalIDCalls() []struct {
	Ctx            context.Context
	ExternalUserID string
} {
	mock.lockDeleteByExternalID.RLock()
	calls := mock.calls.DeleteByExternalID
	mock.lockDeleteByExternalID.RUnlock()
	return calls
}
