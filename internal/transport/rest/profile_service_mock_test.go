package rest

import (
	"context"
	"sync"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	CurrentFunc func(ctx context.Context) (*domain.Profile, error)

	calls struct {
		Current []struct {
			Ctx context.Context
		}
	}
	lockCurrent sync.RWMutex
}

func (mock *profileServiceMock) Current(ctx context.Context) (*domain.Profile, error) {
	if mock.CurrentFunc == nil {
		panic("profileServiceMock.CurrentFunc: method is nil but profileService.Current was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCurrent.Lock()
	mock.calls.Current = append(mock.calls.Current, callInfo)
	mock.lockCurrent.Unlock()
	return mock.CurrentFunc(ctx)
}

func (mock *profileServiceMock) CurrentCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCurrent.RLock()
	calls = mock.calls.Current
	mock.lockCurrent.RUnlock()
	return calls
}
