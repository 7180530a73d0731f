package identitysync

import (
	"context"
	"sync"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

var _ deliveryGuard = &deliveryGuardMock{}

type deliveryGuardMock struct {
	ClaimFunc    func(ctx context.Context, deliveryID string) (domain.DeliveryState, error)
	CompleteFunc func(ctx context.Context, deliveryID string) error
	ReleaseFunc  func(ctx context.Context, deliveryID string) error

	calls struct {
		Claim []struct {
			Ctx        context.Context
			DeliveryID string
		}
		Complete []struct {
			Ctx        context.Context
			DeliveryID string
		}
		Release []struct {
			Ctx        context.Context
			DeliveryID string
		}
	}
	lockClaim    sync.RWMutex
	lockComplete sync.RWMutex
	lockRelease  sync.RWMutex
}

func (mock *deliveryGuardMock) Claim(ctx context.Context, deliveryID string) (domain.DeliveryState, error) {
	if mock.ClaimFunc == nil {
		panic("deliveryGuardMock.ClaimFunc: method is nil but deliveryGuard.Claim was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DeliveryID string
	}{Ctx: ctx, DeliveryID: deliveryID}
	mock.lockClaim.Lock()
	mock.calls.Claim = append(mock.calls.Claim, callInfo)
	mock.lockClaim.Unlock()
	return mock.ClaimFunc(ctx, deliveryID)
}

func (mock *deliveryGuardMock) ClaimCalls() []struct {
	Ctx        context.Context
	DeliveryID string
} {
	mock.lockClaim.RLock()
	calls := mock.calls.Claim
	mock.lockClaim.RUnlock()
	return calls
}

func (mock *deliveryGuardMock) Complete(ctx context.Context, deliveryID string) error {
	if mock.CompleteFunc == nil {
		panic("deliveryGuardMock.CompleteFunc: method is nil but deliveryGuard.Complete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DeliveryID string
	}{Ctx: ctx, DeliveryID: deliveryID}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, deliveryID)
}

func (mock *deliveryGuardMock) CompleteCalls() []struct {
	Ctx        context.Context
	DeliveryID string
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *deliveryGuardMock) Release(ctx context.Context, deliveryID string) error {
	if mock.ReleaseFunc == nil {
		panic("deliveryGuardMock.ReleaseFunc: method is nil but deliveryGuard.Release was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DeliveryID string
	}{Ctx: ctx, DeliveryID: deliveryID}
	mock.lockRelease.Lock()
	mock.calls.Release = append(mock.calls.Release, callInfo)
	mock.lockRelease.Unlock()
	return mock.ReleaseFunc(ctx, deliveryID)
}

func (mock *deliveryGuardMock) ReleaseCalls() []struct {
	Ctx        context.Context
	DeliveryID string
} {
	mock.lockRelease.RLock()
	calls := mock.calls.Release
	mock.lockRelease.RUnlock()
	return calls
}
