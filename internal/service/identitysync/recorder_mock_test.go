package identitysync

import (
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	ObserveWebhookEventFunc func(eventType string, result string)

	calls struct {
		ObserveWebhookEvent []struct {
			EventType string
			Result    string
		}
	}
	lockObserveWebhookEvent sync.RWMutex
}

func (mock *recorderMock) ObserveWebhookEvent(eventType string, result string) {
	callInfo := struct {
		EventType string
		Result    string
	}{EventType: eventType, Result: result}
	mock.lockObserveWebhookEvent.Lock()
	mock.calls.ObserveWebhookEvent = append(mock.calls.ObserveWebhookEvent, callInfo)
	mock.lockObserveWebhookEvent.Unlock()
	if mock.ObserveWebhookEventFunc != nil {
		mock.ObserveWebhookEventFunc(eventType, result)
	}
}

func (mock *recorderMock) ObserveWebhookEventCalls() []struct {
	EventType string
	Result    string
} {
	mock.lockObserveWebhookEvent.RLock()
	calls := mock.calls.ObserveWebhookEvent
	mock.lockObserveWebhookEvent.RUnlock()
	return calls
}
