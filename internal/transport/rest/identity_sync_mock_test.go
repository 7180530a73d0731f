package rest

import (
	"context"
	"sync"

	"github.com/jvedigdev/ai-job-ace/internal/identity"
	"github.com/jvedigdev/ai-job-ace/internal/service/identitysync"
)

var _ identitySync = &identitySyncMock{}

type identitySyncMock struct {
	ApplyFunc func(ctx context.Context, deliveryID string, ev identity.Event) (identitysync.Outcome, error)

	calls struct {
		Apply []struct {
			Ctx        context.Context
			DeliveryID string
			Ev         identity.Event
		}
	}
	lockApply sync.RWMutex
}

func (mock *identitySyncMock) Apply(ctx context.Context, deliveryID string, ev identity.Event) (identitysync.Outcome, error) {
	if mock.ApplyFunc == nil {
		panic("identitySyncMock.ApplyFunc: method is nil but identitySync.Apply was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DeliveryID string
		Ev         identity.Event
	}{Ctx: ctx, DeliveryID: deliveryID, Ev: ev}
	mock.lockApply.Lock()
	mock.calls.Apply = append(mock.calls.Apply, callInfo)
	mock.lockApply.Unlock()
	return mock.ApplyFunc(ctx, deliveryID, ev)
}

func (mock *identitySyncMock) ApplyCalls() []struct {
	Ctx        context.Context
	DeliveryID string
	Ev         identity.Event
} {
	var calls []struct {
		Ctx        context.Context
		DeliveryID string
		Ev         identity.Event
	}
	mock.lockApply.RLock()
	calls = mock.calls.Apply
	mock.lockApply.RUnlock()
	return calls
}
