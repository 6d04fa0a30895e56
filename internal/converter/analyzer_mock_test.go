package converter

import (
	"context"
	"sync"

	"github.com/RexarX/Contexto/internal/morph"
)

var _ morph.Analyzer = &AnalyzerMock{}

type AnalyzerMock struct {
	AnalyzeFunc func(ctx context.Context, word string) ([]morph.Parse, error)
	CloseFunc   func() error

	calls struct {
		Analyze []struct {
			Ctx  context.Context
			Word string
		}
		Close []struct{}
	}
	lockAnalyze sync.RWMutex
	lockClose   sync.RWMutex
}

func (mock *AnalyzerMock) Analyze(ctx context.Context, word string) ([]morph.Parse, error) {
	if mock.AnalyzeFunc == nil {
		panic("AnalyzerMock.AnalyzeFunc: method is nil but Analyzer.Analyze was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, word)
}

func (mock *AnalyzerMock) AnalyzeCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockAnalyze.RLock()
	calls := mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}

func (mock *AnalyzerMock) Close() error {
	if mock.CloseFunc == nil {
		panic("AnalyzerMock.CloseFunc: method is nil but Analyzer.Close was just called")
	}
	mock.lockClose.Lock()
	mock.calls.Close = append(mock.calls.Close, struct{}{})
	mock.lockClose.Unlock()
	return mock.CloseFunc()
}

func (mock *AnalyzerMock) CloseCalls() []struct{} {
	mock.lockClose.RLock()
	calls := mock.calls.Close
	mock.lockClose.RUnlock()
	return calls
}
