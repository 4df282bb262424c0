package results

import (
	"context"
	"log/slog"

	"fantasyolympics-backend/lib/medals"

	"go.opentelemetry.io/otel/attribute"
)

// Sink is an upsert-capable destination keyed by event id.
type Sink interface {
	Name() string
	Upsert(ctx context.Context, record medals.MedalEvent) error
}

type Counts struct {
	Upserted int
	Failed   int
}

func (c Counts) add(other Counts) Counts {
	return Counts{
		Upserted: c.Upserted + other.Upserted,
		Failed:   c.Failed + other.Failed,
	}
}

// WriteAll applies every record against the sink. Per-record failures
// are counted and logged; they never abort the rest of the batch.
func WriteAll(ctx context.Context, sink Sink, records []medals.MedalEvent) Counts {
	ctx, span := tracer.Start(ctx, "WriteAll")
	defer span.End()

	var counts Counts
	for _, record := range records {
		err := sink.Upsert(ctx, record)
		if err != nil {
			counts.Failed++
			slog.ErrorContext(ctx, "upsert failed",
				"sink", sink.Name(), "event_id", record.EventID, "err", err)
			span.RecordError(err)
			continue
		}
		counts.Upserted++
	}

	span.SetAttributes(
		attribute.String("sink", sink.Name()),
		attribute.Int("upserted", counts.Upserted),
		attribute.Int("failed", counts.Failed),
	)
	return counts
}
