package blob

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"fantasyolympics-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/titanous/json5"
	"go.opentelemetry.io/otel/attribute"
)

// Harvest pulls every parseable JSON blob out of the script blocks of
// an HTML page: the __NEXT_DATA__ state blob, ld+json annotations, and
// any inline script whose whole body looks like a JSON value. Script
// bodies that fail to parse are skipped, not errors.
func Harvest(ctx context.Context, page []byte) ([]any, error) {
	ctx, span := tracer.Start(ctx, "Harvest")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	var blobs []any
	for _, script := range doc.Find("script").Nodes {
		body := strings.Trim(htmlutil.GetText(script), " \t\n")
		if body == "" {
			continue
		}

		id := ""
		kind := ""
		for _, a := range script.Attr {
			switch a.Key {
			case "id":
				id = a.Val
			case "type":
				kind = a.Val
			}
		}

		structured := id == "__NEXT_DATA__" || kind == "application/ld+json"
		looksJson := (strings.HasPrefix(body, "{") && strings.HasSuffix(body, "}")) ||
			(strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]"))
		if !structured && !looksJson {
			continue
		}

		if value, ok := parseLoose([]byte(body)); ok {
			blobs = append(blobs, value)
		}
	}

	span.SetAttributes(attribute.Int("blobs", len(blobs)))
	return blobs, nil
}

// strict JSON first, then json5 for the loosely-quoted state objects
// some pages inline
func parseLoose(body []byte) (any, bool) {
	var value any
	if err := json.Unmarshal(body, &value); err == nil {
		return value, true
	}
	if err := json5.Unmarshal(body, &value); err == nil {
		return value, true
	}
	return nil, false
}
