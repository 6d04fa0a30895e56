package httpmorph

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RexarX/Contexto/internal/morph"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClient_Analyze(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/parse", r.URL.Path)
		assert.Equal(t, "полетели", r.URL.Query().Get("word"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"parses":[{"tag":"VERB","lemma":"полететь","score":0.98},{"tag":"NOUN","lemma":"полетель"}]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second, discardLogger())
	defer c.Close()

	parses, err := c.Analyze(context.Background(), "полетели")
	require.NoError(t, err)
	assert.Equal(t, []morph.Parse{
		{Tag: "VERB", Lemma: "полететь", Score: 0.98},
		{Tag: "NOUN", Lemma: "полетель"},
	}, parses)
}

func TestClient_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	parses, err := NewClient(srv.URL, time.Second, discardLogger()).Analyze(context.Background(), "зюзя")
	require.NoError(t, err)
	assert.Nil(t, parses)
}

func TestClient_RetriesOnServerError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `{"parses":[{"tag":"NOUN","lemma":"дом"}]}`)
	}))
	defer srv.Close()

	parses, err := NewClient(srv.URL, time.Second, discardLogger()).Analyze(context.Background(), "дом")
	require.NoError(t, err)
	require.Len(t, parses, 1)
	assert.EqualValues(t, 2, calls.Load())
}

func TestClient_FailsAfterRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, discardLogger()).Analyze(context.Background(), "дом")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
	assert.EqualValues(t, 2, calls.Load())
}

func TestClient_NoRetryOnClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, discardLogger()).Analyze(context.Background(), "дом")
	require.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestClient_BadJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"parses":`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, discardLogger()).Analyze(context.Background(), "дом")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode json")
}

func TestClient_CancelledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"parses":[]}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, time.Second, discardLogger()).Analyze(ctx, "дом")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
