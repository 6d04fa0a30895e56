package app

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/RexarX/Contexto/internal/adapter/postgres/dictentry"
	"github.com/RexarX/Contexto/internal/domain"
)

var _ RunStore = &RunStoreMock{}

type RunStoreMock struct {
	GetRunFunc      func(ctx context.Context, id uuid.UUID) (domain.Run, error)
	ListRunsFunc    func(ctx context.Context, limit int) ([]domain.Run, error)
	ListEntriesFunc func(ctx context.Context, f dictentry.Filter) ([]domain.ProcessedEntry, error)

	calls struct {
		GetRun []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListRuns []struct {
			Ctx   context.Context
			Limit int
		}
		ListEntries []struct {
			Ctx context.Context
			F   dictentry.Filter
		}
	}
	lockGetRun      sync.RWMutex
	lockListRuns    sync.RWMutex
	lockListEntries sync.RWMutex
}

func (mock *RunStoreMock) GetRun(ctx context.Context, id uuid.UUID) (domain.Run, error) {
	if mock.GetRunFunc == nil {
		panic("RunStoreMock.GetRunFunc: method is nil but RunStore.GetRun was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetRun.Lock()
	mock.calls.GetRun = append(mock.calls.GetRun, callInfo)
	mock.lockGetRun.Unlock()
	return mock.GetRunFunc(ctx, id)
}

func (mock *RunStoreMock) GetRunCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetRun.RLock()
	calls := mock.calls.GetRun
	mock.lockGetRun.RUnlock()
	return calls
}

func (mock *RunStoreMock) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	if mock.ListRunsFunc == nil {
		panic("RunStoreMock.ListRunsFunc: method is nil but RunStore.ListRuns was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRuns.Lock()
	mock.calls.ListRuns = append(mock.calls.ListRuns, callInfo)
	mock.lockListRuns.Unlock()
	return mock.ListRunsFunc(ctx, limit)
}

func (mock *RunStoreMock) ListRunsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRuns.RLock()
	calls := mock.calls.ListRuns
	mock.lockListRuns.RUnlock()
	return calls
}

func (mock *RunStoreMock) ListEntries(ctx context.Context, f dictentry.Filter) ([]domain.ProcessedEntry, error) {
	if mock.ListEntriesFunc == nil {
		panic("RunStoreMock.ListEntriesFunc: method is nil but RunStore.ListEntries was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   dictentry.Filter
	}{Ctx: ctx, F: f}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, f)
}

func (mock *RunStoreMock) ListEntriesCalls() []struct {
	Ctx context.Context
	F   dictentry.Filter
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}
