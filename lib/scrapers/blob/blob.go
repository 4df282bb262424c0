// Package blob extracts medal awards from arbitrary nested JSON of
// unknown shape, such as the state blobs embedded in olympics.com
// pages. It walks every object node of a decoded tree and applies a
// small set of named strategies, each of which first tests whether a
// node looks like a medal record before extracting from it. Detection
// requires three independent field signals (medal, country,
// discipline) so unknown wrapper structures cost recall, never
// precision.
package blob

import (
	"context"
	"reflect"
	"time"

	"fantasyolympics-backend/lib/medals"
	"fantasyolympics-backend/lib/textutil"
	"fantasyolympics-backend/lib/vocab"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("scrapers/blob")

var medalKeys = []string{"medal", "rank", "award"}
var countryKeys = []string{"noc", "countrycode", "country", "teamcode"}
var disciplineKeys = []string{"discipline", "sport"}

// a strategy recognizes one shape of medal-record node and pulls the
// raw field values out of it
type strategy interface {
	name() string
	match(node map[string]any) bool
	extract(node map[string]any) rawRecord
}

type rawRecord struct {
	discipline string
	country    string
	medal      any
	timestamp  any
}

type Extractor struct {
	norm       medals.Normalizer
	scope      string
	batchTime  time.Time
	strategies []strategy
}

func NewExtractor(v *vocab.Vocabulary, scope string, batchTime time.Time) Extractor {
	return Extractor{
		norm:      medals.NewNormalizer(v),
		scope:     scope,
		batchTime: batchTime,
		strategies: []strategy{
			nestedResult{},
			flatResult{},
		},
	}
}

// Extract recursively inspects every object node of the decoded value
// and returns the fully-normalizable medal awards it recognizes.
// Nodes that fail any normalization step are skipped silently.
func (e Extractor) Extract(ctx context.Context, root any) []medals.MedalEvent {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	walker := walker{extractor: e, visited: map[uintptr]bool{}}
	walker.walk(root)

	span.SetAttributes(attribute.Int("records", len(walker.out)))
	return walker.out
}

type walker struct {
	extractor Extractor
	// parsed data interchange has no cycles, but the input is
	// untrusted so guard anyway
	visited map[uintptr]bool
	out     []medals.MedalEvent
}

func (w *walker) walk(node any) {
	switch value := node.(type) {
	case map[string]any:
		ptr := reflect.ValueOf(value).Pointer()
		if w.visited[ptr] {
			return
		}
		w.visited[ptr] = true

		if record, ok := w.extractor.candidate(value); ok {
			w.out = append(w.out, record)
		}
		for _, child := range value {
			w.walk(child)
		}
	case []any:
		ptr := reflect.ValueOf(value).Pointer()
		if w.visited[ptr] {
			return
		}
		w.visited[ptr] = true

		for _, child := range value {
			w.walk(child)
		}
	}
}

func (e Extractor) candidate(node map[string]any) (medals.MedalEvent, bool) {
	for _, s := range e.strategies {
		if !s.match(node) {
			continue
		}
		raw := s.extract(node)

		discipline := e.norm.Discipline(raw.discipline)
		country := e.norm.Country(raw.country)
		medal, ok := e.norm.Medal(raw.medal)
		if discipline == "" || country == "" || !ok {
			continue
		}

		return medals.MedalEvent{
			EventID:    medals.BuildID(e.scope, discipline, "", country, medal),
			Discipline: discipline,
			Country:    country,
			Medal:      medal,
			Timestamp:  e.norm.Timestamp(raw.timestamp, e.batchTime),
		}, true
	}
	return medals.MedalEvent{}, false
}

// true when any key of the node fuzzily matches one of the matchers
func hasKeySignal(node map[string]any, matchers []string) bool {
	for key := range node {
		if textutil.MatchName(key, matchers) {
			return true
		}
	}
	return false
}

func hasAllSignals(node map[string]any) bool {
	return hasKeySignal(node, medalKeys) &&
		hasKeySignal(node, countryKeys) &&
		hasKeySignal(node, disciplineKeys)
}

func stringField(node map[string]any, key string) string {
	s, _ := node[key].(string)
	return s
}

func nestedString(node map[string]any, key, child string) string {
	obj, _ := node[key].(map[string]any)
	if obj == nil {
		return ""
	}
	return stringField(obj, child)
}

func firstPresent(node map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := node[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// nestedResult handles api-shaped nodes whose discipline, team and
// medal fields are themselves objects: {discipline:{name}, team:{code},
// medal:{name}}
type nestedResult struct{}

func (nestedResult) name() string { return "nested-result" }

func (nestedResult) match(node map[string]any) bool {
	if !hasKeySignal(node, medalKeys) || !hasKeySignal(node, disciplineKeys) {
		return false
	}
	// a delegation object carrying a code is itself the country
	// signal, even under a key ("team") too generic to sniff on
	for _, key := range []string{"team", "noc", "country"} {
		if nestedString(node, key, "code") != "" {
			return true
		}
	}
	return hasKeySignal(node, countryKeys)
}

func (nestedResult) extract(node map[string]any) rawRecord {
	discipline := nestedString(node, "discipline", "name")
	if discipline == "" {
		discipline = stringField(node, "discipline")
	}
	if discipline == "" {
		if event, ok := node["event"].(map[string]any); ok {
			discipline = nestedString(event, "discipline", "name")
		}
	}
	if discipline == "" {
		discipline = stringField(node, "sport")
	}

	country := nestedString(node, "team", "code")
	if country == "" {
		country = nestedString(node, "noc", "code")
	}
	if country == "" {
		country = nestedString(node, "country", "code")
	}
	if country == "" {
		country = stringField(node, "countryCode")
	}

	medal := firstPresent(node, "medal")
	if m, ok := medal.(map[string]any); ok {
		medal = m["name"]
	}
	if medal == nil {
		medal = firstPresent(node, "rank", "award")
	}

	return rawRecord{
		discipline: discipline,
		country:    country,
		medal:      medal,
		timestamp:  firstPresent(node, "date", "time", "awardedAt", "updatedAt", "lastUpdate", "timestamp"),
	}
}

// flatResult handles nodes whose fields are plain scalars:
// {sport: "...", noc: "NOR", medal: "gold"}
type flatResult struct{}

func (flatResult) name() string { return "flat-result" }

func (flatResult) match(node map[string]any) bool {
	return hasAllSignals(node)
}

func (flatResult) extract(node map[string]any) rawRecord {
	country := stringField(node, "countryCode")
	if country == "" {
		country = stringField(node, "noc")
	}
	if country == "" {
		country = stringField(node, "country")
	}

	discipline := stringField(node, "discipline")
	if discipline == "" {
		discipline = stringField(node, "sport")
	}

	return rawRecord{
		discipline: discipline,
		country:    country,
		medal:      firstPresent(node, "medal", "rank", "award"),
		timestamp:  firstPresent(node, "date", "time", "awardedAt", "updatedAt", "lastUpdate", "timestamp"),
	}
}
