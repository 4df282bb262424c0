// Package feed extracts medal awards from the structured olympics.com
// style medal feed: an array of medal-award groupings under a known
// top-level key, each carrying up to one country per medal color.
package feed

import (
	"context"
	"encoding/json"
	"time"

	"fantasyolympics-backend/lib/medals"
	"fantasyolympics-backend/lib/vocab"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("scrapers/feed")

type medalResult struct {
	CountryCode string `json:"countryCode"`
}

type medalSet struct {
	Id          string `json:"id"`
	Timestamp   any    `json:"timestamp"`
	LastUpdated any    `json:"lastUpdated"`
	EventUnit   struct {
		EventUnitId string `json:"eventUnitId"`
		Discipline  struct {
			Description string `json:"description"`
			Name        string `json:"name"`
		} `json:"discipline"`
	} `json:"eventUnit"`
	Discipline string `json:"discipline"`

	// flat per-color fields used by older feed revisions
	Gold   string `json:"gold"`
	Silver string `json:"silver"`
	Bronze string `json:"bronze"`

	MedalResults map[string]medalResult `json:"medalResults"`
}

type payload struct {
	MedalSets []medalSet `json:"medalSets"`
}

type Extractor struct {
	norm medals.Normalizer
	// placeholder instant for groupings without a time of
	// their own, keeps re-runs reproducible
	batchTime time.Time
}

func NewExtractor(v *vocab.Vocabulary, batchTime time.Time) Extractor {
	return Extractor{
		norm:      medals.NewNormalizer(v),
		batchTime: batchTime,
	}
}

// Extract parses a feed payload and returns every fully-normalizable
// medal award in it. Partially populated groupings contribute fewer
// records; they are never an error. Only an unparseable payload fails.
func (e Extractor) Extract(ctx context.Context, raw []byte) ([]medals.MedalEvent, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	var body payload
	err := json.Unmarshal(raw, &body)
	if err != nil {
		return nil, err
	}

	var out []medals.MedalEvent
	for _, set := range body.MedalSets {
		out = append(out, e.extractSet(set)...)
	}

	span.SetAttributes(attribute.Int("records", len(out)))
	return out, nil
}

func (e Extractor) extractSet(set medalSet) []medals.MedalEvent {
	id := set.Id
	if id == "" {
		id = set.EventUnit.EventUnitId
	}
	if id == "" {
		// an id-less grouping has no stable identity to upsert under
		return nil
	}

	discipline := e.norm.Discipline(firstNonEmpty(
		set.EventUnit.Discipline.Description,
		set.EventUnit.Discipline.Name,
		set.Discipline,
	))
	if discipline == "" {
		return nil
	}

	ts := set.Timestamp
	if ts == nil {
		ts = set.LastUpdated
	}
	timestamp := e.norm.Timestamp(ts, e.batchTime)

	var out []medals.MedalEvent
	add := func(rawCountry string, medal medals.Medal) {
		country := e.norm.Country(rawCountry)
		if country == "" {
			return
		}
		out = append(out, medals.MedalEvent{
			EventID:    medals.UnitID(id, medal),
			Discipline: discipline,
			Country:    country,
			Medal:      medal,
			Timestamp:  timestamp,
		})
	}

	add(firstNonEmpty(set.Gold, set.MedalResults["GOLD"].CountryCode), medals.Gold)
	add(firstNonEmpty(set.Silver, set.MedalResults["SILVER"].CountryCode), medals.Silver)
	add(firstNonEmpty(set.Bronze, set.MedalResults["BRONZE"].CountryCode), medals.Bronze)
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
