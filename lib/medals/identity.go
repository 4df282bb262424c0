package medals

import (
	"strings"

	"fantasyolympics-backend/lib/textutil"
)

// BuildID derives the stable identity of a medal award from its
// normalized tuple. It is a pure function of its inputs: no clock, no
// ingestion order, no randomness, so re-deriving from the same tuple
// always converges on the same id across runs and sources.
//
// Sources whose upstream already carries a stable event-unit id
// (the typed feed) skip BuildID and use UnitID instead; the two kinds
// of id live in different source scopes and are never forced to merge.
func BuildID(scope, discipline, event, country string, medal Medal) string {
	parts := []string{scope, textutil.Slugify(discipline)}
	if event != "" {
		parts = append(parts, textutil.Slugify(event))
	}
	parts = append(parts, country, string(medal))
	return strings.Join(parts, "-")
}

// UnitID is the identity of a feed record keyed by the feed's own
// stable event-unit id, one per medal color.
func UnitID(unitID string, medal Medal) string {
	return unitID + "-" + string(medal)
}
