package document

import (
	"context"
	"io"
	"sync"
)

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	PutFunc    func(ctx context.Context, key string, r io.Reader) (int64, error)
	OpenFunc   func(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteFunc func(ctx context.Context, key string) error

	calls struct {
		Put []struct {
			Ctx context.Context
			Key string
			R   io.Reader
		}
		Open []struct {
			Ctx context.Context
			Key string
		}
		Delete []struct {
			Ctx context.Context
			Key string
		}
	}
	lockPut    sync.RWMutex
	lockOpen   sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *blobStoreMock) Put(ctx context.Context, key string, r io.Reader) (int64, error) {
	if mock.PutFunc == nil {
		panic("blobStoreMock.PutFunc: method is nil but blobStore.Put was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
		R   io.Reader
	}{Ctx: ctx, Key: key, R: r}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, r)
}

func (mock *blobStoreMock) PutCalls() []struct {
		Ctx context.Context
		Key string
		R   io.Reader
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *blobStoreMock) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if mock.OpenFunc == nil {
		panic("blobStoreMock.OpenFunc: method is nil but blobStore.Open was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(ctx, key)
}

func (mock *blobStoreMock) OpenCalls() []struct {
		Ctx context.Context
		Key string
} {
	mock.lockOpen.RLock()
	calls := mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
}

func (mock *blobStoreMock) Delete(ctx context.Context, key string) error {
	if mock.DeleteFunc == nil {
		panic("blobStoreMock.DeleteFunc: method is nil but blobStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *blobStoreMock) DeleteCalls() []struct {
		Ctx context.Context
		Key string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
