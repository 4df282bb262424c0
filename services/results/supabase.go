package results

import (
	"context"
	"fmt"
	"time"

	"fantasyolympics-backend/lib/medals"
	"fantasyolympics-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

type SupabaseConfig struct {
	Url    string `json:"url"`
	ApiKey string `json:"api_key"`
	// defaults to "results"
	Table string `json:"table"`
}

// SupabaseSink upserts records into a Supabase (PostgREST) table on
// the event_id key, mirroring the hosted results store the frontend
// reads from.
type SupabaseSink struct {
	http  *resty.Client
	table string
}

func NewSupabaseSink(config SupabaseConfig) SupabaseSink {
	table := config.Table
	if table == "" {
		table = "results"
	}

	client := resty.New()
	client.SetBaseURL(config.Url)
	client.SetHeader("apikey", config.ApiKey)
	client.SetHeader("authorization", fmt.Sprintf("Bearer %s", config.ApiKey))
	client.SetTimeout(time.Second * 15)
	telemetry.InstrumentResty(client, "results/supabase")

	return SupabaseSink{
		http:  client,
		table: table,
	}
}

func (s SupabaseSink) Name() string { return "supabase" }

func (s SupabaseSink) Upsert(ctx context.Context, record medals.MedalEvent) error {
	res, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("on_conflict", "event_id").
		SetHeader("prefer", "resolution=merge-duplicates").
		SetHeader("content-type", "application/json").
		SetBody([]medals.MedalEvent{record}).
		Post(fmt.Sprintf("/rest/v1/%s", s.table))
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("upsert http %d: %s", res.StatusCode(), res.String())
	}
	return nil
}
