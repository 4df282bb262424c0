package results

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fantasyolympics-backend/lib/medals"

	"github.com/stretchr/testify/require"
)

func TestSupabaseUpsert(t *testing.T) {
	type seen struct {
		path     string
		conflict string
		prefer   string
		apikey   string
		body     []medals.MedalEvent
	}
	var got seen

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Error(err)
		}
		got = seen{
			path:     r.URL.Path,
			conflict: r.URL.Query().Get("on_conflict"),
			prefer:   r.Header.Get("Prefer"),
			apikey:   r.Header.Get("apikey"),
		}
		err = json.Unmarshal(body, &got.body)
		if err != nil {
			t.Error(err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	sink := NewSupabaseSink(SupabaseConfig{Url: server.URL, ApiKey: "secret"})

	record := medals.MedalEvent{
		EventID:    "E1-G",
		Discipline: "Biathlon",
		Country:    "NOR",
		Medal:      medals.Gold,
		Timestamp:  time.Date(2022, 2, 12, 10, 0, 0, 0, time.UTC),
	}
	err := sink.Upsert(context.Background(), record)
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, "/rest/v1/results", got.path)
	require.Equal(t, "event_id", got.conflict)
	require.Equal(t, "resolution=merge-duplicates", got.prefer)
	require.Equal(t, "secret", got.apikey)
	require.Len(t, got.body, 1)
	require.Equal(t, record, got.body[0])
}

func TestSupabaseUpsertReportsHttpErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	sink := NewSupabaseSink(SupabaseConfig{Url: server.URL, ApiKey: "wrong"})
	err := sink.Upsert(context.Background(), medals.MedalEvent{EventID: "E1-G"})
	require.Error(t, err)
}
