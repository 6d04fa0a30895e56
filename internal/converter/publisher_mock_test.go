package converter

import (
	"context"
	"sync"

	"github.com/RexarX/Contexto/internal/domain"
)

var _ Publisher = &PublisherMock{}

type PublisherMock struct {
	SaveRunFunc func(ctx context.Context, run domain.Run, entries []domain.ProcessedEntry) error

	calls struct {
		SaveRun []struct {
			Ctx     context.Context
			Run     domain.Run
			Entries []domain.ProcessedEntry
		}
	}
	lockSaveRun sync.RWMutex
}

func (mock *PublisherMock) SaveRun(ctx context.Context, run domain.Run, entries []domain.ProcessedEntry) error {
	if mock.SaveRunFunc == nil {
		panic("PublisherMock.SaveRunFunc: method is nil but Publisher.SaveRun was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Run     domain.Run
		Entries []domain.ProcessedEntry
	}{Ctx: ctx, Run: run, Entries: entries}
	mock.lockSaveRun.Lock()
	mock.calls.SaveRun = append(mock.calls.SaveRun, callInfo)
	mock.lockSaveRun.Unlock()
	return mock.SaveRunFunc(ctx, run, entries)
}

func (mock *PublisherMock) SaveRunCalls() []struct {
	Ctx     context.Context
	Run     domain.Run
	Entries []domain.ProcessedEntry
} {
	mock.lockSaveRun.RLock()
	calls := mock.calls.SaveRun
	mock.lockSaveRun.RUnlock()
	return calls
}
