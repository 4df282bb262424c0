package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func testOrchestrator() Orchestrator {
	return NewOrchestrator(resty.New()).WithBackoff(time.Millisecond)
}

func TestFetchFirstSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("payload"))
	}))
	defer server.Close()

	payload, err := testOrchestrator().Fetch(context.Background(), []Source{
		{Name: "primary", Url: server.URL},
	})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "primary", payload.Source.Name)
	require.Equal(t, []byte("payload"), payload.Body)
}

func TestFallbackAfterExhaustingPrimary(t *testing.T) {
	var primaryAttempts atomic.Int64
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		primaryAttempts.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer primary.Close()

	secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("from secondary"))
	}))
	defer secondary.Close()

	payload, err := testOrchestrator().Fetch(context.Background(), []Source{
		{Name: "primary", Url: primary.URL, Attempts: 3},
		{Name: "secondary", Url: secondary.URL, Attempts: 2},
	})
	if err != nil {
		t.Fatal(err)
	}

	// the primary's full attempt budget is spent before falling back
	require.Equal(t, int64(3), primaryAttempts.Load())
	require.Equal(t, "secondary", payload.Source.Name)
	require.Equal(t, []byte("from secondary"), payload.Body)
}

func TestRetryThenSucceed(t *testing.T) {
	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("eventually"))
	}))
	defer server.Close()

	payload, err := testOrchestrator().Fetch(context.Background(), []Source{
		{Name: "flaky", Url: server.URL, Attempts: 4},
	})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, int64(3), attempts.Load())
	require.Equal(t, []byte("eventually"), payload.Body)
}

func TestSourceExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testOrchestrator().Fetch(context.Background(), []Source{
		{Name: "a", Url: server.URL, Attempts: 2},
		{Name: "b", Url: "http://127.0.0.1:1", Attempts: 1, TimeoutSeconds: 1},
	})
	require.Error(t, err)

	var exhausted SourceExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.Error(t, exhausted.Last)
}

func TestSourceHeaders(t *testing.T) {
	var accept atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept.Store(r.Header.Get("Accept"))
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	_, err := testOrchestrator().Fetch(context.Background(), []Source{
		{
			Name:    "feed",
			Url:     server.URL,
			Headers: map[string]string{"accept": "application/json"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "application/json", accept.Load())
}
