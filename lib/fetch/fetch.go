// Package fetch retrieves raw payloads from an ordered list of
// upstream sources, retrying each with exponential backoff before
// falling back to the next. At most one source's payload is returned
// per call; partial payloads are never merged across sources.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("fetch")

type Source struct {
	Name string `json:"name"`
	Url  string `json:"url"`
	// maximum attempts before falling back, defaults to 4
	Attempts int `json:"attempts"`
	// per-attempt timeout in seconds, defaults to 30
	TimeoutSeconds int               `json:"timeout_seconds"`
	Headers        map[string]string `json:"headers"`
}

func (s Source) attempts() int {
	if s.Attempts <= 0 {
		return 4
	}
	return s.Attempts
}

func (s Source) timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return time.Second * 30
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

type Payload struct {
	Source Source
	Body   []byte
}

// SourceExhaustedError reports that every configured source ran out
// of attempts; it carries the last error of the final source.
type SourceExhaustedError struct {
	Last error
}

func (e SourceExhaustedError) Error() string {
	return fmt.Sprintf("all sources exhausted, last error: %s", e.Last)
}

func (e SourceExhaustedError) Unwrap() error {
	return e.Last
}

type Orchestrator struct {
	client *resty.Client
	// first retry delay, doubled per attempt
	baseBackoff time.Duration
}

func NewOrchestrator(client *resty.Client) Orchestrator {
	return Orchestrator{
		client:      client,
		baseBackoff: 600 * time.Millisecond,
	}
}

// WithBackoff overrides the base retry delay, used by tests.
func (o Orchestrator) WithBackoff(base time.Duration) Orchestrator {
	o.baseBackoff = base
	return o
}

// Fetch tries each source in order and returns the first payload
// obtained. Non-success statuses, timeouts and transport errors all
// count against the source's attempt budget.
func (o Orchestrator) Fetch(ctx context.Context, sources []Source) (Payload, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	var lastErr error
	for _, source := range sources {
		body, err := o.fetchSource(ctx, source)
		if err == nil {
			span.SetAttributes(attribute.String("source", source.Name))
			return Payload{Source: source, Body: body}, nil
		}
		lastErr = err
		slog.WarnContext(ctx, "source exhausted, falling back",
			"source", source.Name, "err", err)
	}

	err := SourceExhaustedError{Last: lastErr}
	span.RecordError(err)
	span.SetStatus(codes.Error, "all sources exhausted")
	return Payload{}, err
}

func (o Orchestrator) fetchSource(ctx context.Context, source Source) ([]byte, error) {
	var lastErr error
	backoff := o.baseBackoff

	for attempt := 1; attempt <= source.attempts(); attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff *= 2
		}

		body, err := o.attempt(ctx, source)
		if err == nil {
			slog.InfoContext(ctx, "fetched source",
				"source", source.Name, "attempt", attempt, "bytes", len(body))
			return body, nil
		}

		lastErr = err
		slog.WarnContext(ctx, "fetch attempt failed",
			"source", source.Name, "attempt", attempt,
			"of", source.attempts(), "backoff", backoff, "err", err)
	}

	return nil, lastErr
}

func (o Orchestrator) attempt(ctx context.Context, source Source) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, source.timeout())
	defer cancel()

	req := o.client.R().SetContext(ctx)
	for header, value := range source.Headers {
		req.SetHeader(header, value)
	}

	res, err := req.Get(source.Url)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("source http %d: %s", res.StatusCode(), res.Status())
	}
	return res.Body(), nil
}
