package rest

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
	"github.com/jvedigdev/ai-job-ace/internal/service/document"
)

var _ documentService = &documentServiceMock{}

type documentServiceMock struct {
	UploadFunc func(ctx context.Context, input document.UploadInput) (*domain.Document, error)
	ListFunc   func(ctx context.Context, input document.ListInput) (*document.ListResult, error)
	OpenFunc   func(ctx context.Context, id uuid.UUID) (*domain.Document, io.ReadCloser, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Upload []struct {
			Ctx   context.Context
			Input document.UploadInput
		}
		List []struct {
			Ctx   context.Context
			Input document.ListInput
		}
		Open []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockUpload sync.RWMutex
	lockList   sync.RWMutex
	lockOpen   sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *documentServiceMock) Upload(ctx context.Context, input document.UploadInput) (*domain.Document, error) {
	if mock.UploadFunc == nil {
		panic("documentServiceMock.UploadFunc: method is nil but documentService.Upload was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input document.UploadInput
	}{Ctx: ctx, Input: input}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, input)
}

func (mock *documentServiceMock) UploadCalls() []struct {
	Ctx   context.Context
	Input document.UploadInput
} {
	var calls []struct {
		Ctx   context.Context
		Input document.UploadInput
	}
	mock.lockUpload.RLock()
	calls = mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

func (mock *documentServiceMock) List(ctx context.Context, input document.ListInput) (*document.ListResult, error) {
	if mock.ListFunc == nil {
		panic("documentServiceMock.ListFunc: method is nil but documentService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input document.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *documentServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input document.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input document.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *documentServiceMock) Open(ctx context.Context, id uuid.UUID) (*domain.Document, io.ReadCloser, error) {
	if mock.OpenFunc == nil {
		panic("documentServiceMock.OpenFunc: method is nil but documentService.Open was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(ctx, id)
}

func (mock *documentServiceMock) OpenCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockOpen.RLock()
	calls = mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
}

func (mock *documentServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("documentServiceMock.DeleteFunc: method is nil but documentService.Delete was just called")
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

func (mock *documentServiceMock) DeleteCalls() []struct {
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
