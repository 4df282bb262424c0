// Package results runs the medal-results ingestion pipeline: fetch
// raw payloads from heterogeneous sources, extract and normalize
// candidate records, collapse duplicates, and upsert the final set
// into the configured sinks.
package results

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	configlibsql "fantasyolympics-backend/lib/configutil/libsql"
	"fantasyolympics-backend/lib/fetch"
	"fantasyolympics-backend/lib/scrapers/blob"
	"fantasyolympics-backend/lib/scrapers/feed"
	"fantasyolympics-backend/lib/scrapers/wikitable"
	"fantasyolympics-backend/lib/vocab"
	"fantasyolympics-backend/services/results/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("services/results")

type Config struct {
	// source-scope tag distinguishing this competition edition in
	// derived identities, e.g. "W2022"
	Scope string `json:"scope"`
	// placeholder instant (RFC 3339) for sources that carry no
	// award time; fixed so re-runs stay reproducible
	BatchTime string `json:"batch_time"`

	// structured medal feed endpoints, tried in order until one
	// yields a payload
	Feed []fetch.Source `json:"feed"`
	// scraped pages with embedded state blobs; each page is
	// fetched independently and per-page failure is tolerated
	Pages []fetch.Source `json:"pages"`
	// encyclopedia-style medal-winner pages, tried in order
	Wiki []fetch.Source `json:"wiki"`

	// when set, raw payloads are archived here before extraction
	RawDir string `json:"raw_dir"`

	RatePerSecond float64 `json:"rate_per_second"`
	UserAgent     string  `json:"user_agent"`

	Database *configlibsql.Struct `json:"database"`
	Supabase *SupabaseConfig      `json:"supabase"`
}

func (c Config) batchTime() (time.Time, error) {
	if c.BatchTime == "" {
		// start of the Beijing games, the historical default
		return time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(time.RFC3339, c.BatchTime)
}

type Service struct {
	config Config
	orch   fetch.Orchestrator

	feed  feed.Extractor
	blob  blob.Extractor
	wiki  wikitable.Extractor
	sinks []Sink
}

func NewService(config Config) (Service, error) {
	batchTime, err := config.batchTime()
	if err != nil {
		return Service{}, fmt.Errorf("invalid batch_time: %w", err)
	}

	vocabulary := vocab.Default()
	client := fetch.NewClient(fetch.ClientOptions{
		RatePerSecond: config.RatePerSecond,
		UserAgent:     config.UserAgent,
	})

	var sinks []Sink
	if config.Database != nil {
		database, err := config.Database.OpenDB(db.Schema)
		if err != nil {
			return Service{}, fmt.Errorf("open results database: %w", err)
		}
		sinks = append(sinks, NewStore(database))
	}
	if config.Supabase != nil {
		sinks = append(sinks, NewSupabaseSink(*config.Supabase))
	}
	if len(sinks) == 0 {
		return Service{}, fmt.Errorf("no sink configured")
	}

	return Service{
		config: config,
		orch:   fetch.NewOrchestrator(client),
		feed:   feed.NewExtractor(vocabulary, batchTime),
		blob:   blob.NewExtractor(vocabulary, config.Scope, batchTime),
		wiki:   wikitable.NewExtractor(vocabulary, config.Scope, batchTime),
		sinks:  sinks,
	}, nil
}

// Run executes one linear pipeline pass. It fails only when no
// configured source produced a payload at all; extraction misses and
// per-record sink failures are absorbed and reported in the counts.
func (s Service) Run(ctx context.Context) (Counts, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	aggregator := NewAggregator()
	payloads := 0
	var lastErr error

	if len(s.config.Feed) > 0 {
		payload, err := s.orch.Fetch(ctx, s.config.Feed)
		if err != nil {
			lastErr = err
		} else {
			payloads++
			s.archive(ctx, payload)
			s.extractFeed(ctx, payload, aggregator)
		}
	}

	for _, page := range s.config.Pages {
		payload, err := s.orch.Fetch(ctx, []fetch.Source{page})
		if err != nil {
			lastErr = err
			continue
		}
		payloads++
		s.archive(ctx, payload)
		s.extractPage(ctx, payload, aggregator)
	}

	if len(s.config.Wiki) > 0 {
		payload, err := s.orch.Fetch(ctx, s.config.Wiki)
		if err != nil {
			lastErr = err
		} else {
			payloads++
			s.archive(ctx, payload)
			s.extractWiki(ctx, payload, aggregator)
		}
	}

	if payloads == 0 {
		if lastErr == nil {
			lastErr = fmt.Errorf("no sources configured")
		}
		return Counts{}, lastErr
	}

	records := aggregator.Records()
	slog.InfoContext(ctx, "aggregated records", "count", len(records))
	if len(records) == 0 {
		slog.InfoContext(ctx, "no medals found yet")
		return Counts{}, nil
	}

	var counts Counts
	for _, sink := range s.sinks {
		counts = counts.add(WriteAll(ctx, sink, records))
	}

	span.SetAttributes(
		attribute.Int("upserted", counts.Upserted),
		attribute.Int("failed", counts.Failed),
	)
	slog.InfoContext(ctx, "run complete",
		"upserted", counts.Upserted, "failed", counts.Failed)
	return counts, nil
}

func (s Service) extractFeed(ctx context.Context, payload fetch.Payload, aggregator *Aggregator) {
	records, err := s.feed.Extract(ctx, payload.Body)
	if err != nil {
		slog.WarnContext(ctx, "feed payload not parseable",
			"source", payload.Source.Name, "err", err)
		return
	}
	slog.InfoContext(ctx, "extracted feed records",
		"source", payload.Source.Name, "count", len(records))
	aggregator.Add(records...)
}

func (s Service) extractPage(ctx context.Context, payload fetch.Payload, aggregator *Aggregator) {
	blobs, err := blob.Harvest(ctx, payload.Body)
	if err != nil {
		slog.WarnContext(ctx, "page not parseable",
			"source", payload.Source.Name, "err", err)
		return
	}

	total := 0
	for _, value := range blobs {
		records := s.blob.Extract(ctx, value)
		total += len(records)
		aggregator.Add(records...)
	}
	slog.InfoContext(ctx, "extracted page records",
		"source", payload.Source.Name, "blobs", len(blobs), "count", total)
}

func (s Service) extractWiki(ctx context.Context, payload fetch.Payload, aggregator *Aggregator) {
	records, err := s.wiki.Extract(ctx, payload.Body)
	if err != nil {
		slog.WarnContext(ctx, "wiki page not parseable",
			"source", payload.Source.Name, "err", err)
		return
	}
	slog.InfoContext(ctx, "extracted wiki records",
		"source", payload.Source.Name, "count", len(records))
	aggregator.Add(records...)
}

// archiving raw payloads is advisory, failures only log
func (s Service) archive(ctx context.Context, payload fetch.Payload) {
	if s.config.RawDir == "" {
		return
	}
	err := os.MkdirAll(s.config.RawDir, 0755)
	if err != nil {
		slog.WarnContext(ctx, "failed to create raw dir", "err", err)
		return
	}
	path := filepath.Join(s.config.RawDir, fmt.Sprintf("raw_%s.json", payload.Source.Name))
	err = os.WriteFile(path, payload.Body, 0644)
	if err != nil {
		slog.WarnContext(ctx, "failed to archive payload", "path", path, "err", err)
	}
}
