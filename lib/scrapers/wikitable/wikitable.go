// Package wikitable extracts medal awards from encyclopedia-style
// pages that list medal winners in wikitables under per-discipline
// headings: each row names an event followed by the gold, silver and
// bronze cells in fixed column order.
package wikitable

import (
	"bytes"
	"context"
	"time"

	"fantasyolympics-backend/lib/htmlutil"
	"fantasyolympics-backend/lib/medals"
	"fantasyolympics-backend/lib/textutil"
	"fantasyolympics-backend/lib/vocab"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("scrapers/wikitable")

type Extractor struct {
	vocab     *vocab.Vocabulary
	scope     string
	batchTime time.Time
}

func NewExtractor(v *vocab.Vocabulary, scope string, batchTime time.Time) Extractor {
	return Extractor{
		vocab:     v,
		scope:     scope,
		batchTime: batchTime,
	}
}

// Extract parses the page and walks every discipline section: a
// heading, then its siblings up to the next heading of equal or
// higher level. Rows and cells that don't resolve are skipped.
func (e Extractor) Extract(ctx context.Context, page []byte) ([]medals.MedalEvent, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	var out []medals.MedalEvent
	doc.Find("h2, h3").Each(func(_ int, heading *goquery.Selection) {
		level := htmlutil.HeadingLevel(heading.Nodes[0])
		// only canonical discipline headings delimit medal sections,
		// prose sections ("See also", "References") are passed over
		discipline, ok := e.vocab.Discipline(textutil.StripFootnotes(heading.Text()))
		if !ok {
			return
		}

		sibling := heading.Next()
		for sibling.Length() > 0 {
			siblingLevel := htmlutil.HeadingLevel(sibling.Nodes[0])
			if siblingLevel != 0 && siblingLevel <= level {
				break
			}

			sibling.Find("table.wikitable").AddBackFiltered("table.wikitable").
				Each(func(_ int, table *goquery.Selection) {
					out = append(out, e.extractTable(discipline, table)...)
				})

			sibling = sibling.Next()
		}
	})

	span.SetAttributes(attribute.Int("records", len(out)))
	return out, nil
}

var medalOrder = []medals.Medal{medals.Gold, medals.Silver, medals.Bronze}

func (e Extractor) extractTable(discipline string, table *goquery.Selection) []medals.MedalEvent {
	var out []medals.MedalEvent
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			// header row
			return
		}
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		event := textutil.StripFootnotes(cells.Eq(0).Text())
		if event == "" {
			return
		}

		for offset, medal := range medalOrder {
			country, ok := e.resolveCountryCell(cells.Eq(1 + offset))
			if !ok {
				continue
			}
			out = append(out, medals.MedalEvent{
				EventID:    medals.BuildID(e.scope, discipline, event, country, medal),
				Discipline: discipline,
				Event:      event,
				Country:    country,
				Medal:      medal,
				Timestamp:  e.batchTime,
			})
		}
	})
	return out
}

// resolves the awarding country of a medal cell: the flag/link
// annotation's title first, then any linked country name, then a raw
// text scan against the alias table
func (e Extractor) resolveCountryCell(cell *goquery.Selection) (string, bool) {
	for _, link := range htmlutil.GetLinks(cell) {
		if link.Title == "" {
			continue
		}
		if noc, ok := e.vocab.CountryNOC(link.Title); ok {
			return noc, true
		}
	}

	text := textutil.StripFootnotes(cell.Text())
	if noc, ok := e.vocab.FindCountryInText(text); ok {
		return noc, true
	}
	return "", false
}
