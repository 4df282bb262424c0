package results

import "fantasyolympics-backend/lib/medals"

// Aggregator collapses extractor outputs from any number of sources
// into one duplicate-free record set keyed by event id. The first
// record seen under an id wins; sources are therefore added in
// priority order.
type Aggregator struct {
	seen    map[string]bool
	records []medals.MedalEvent
}

func NewAggregator() *Aggregator {
	return &Aggregator{seen: map[string]bool{}}
}

func (a *Aggregator) Add(records ...medals.MedalEvent) {
	for _, record := range records {
		if a.seen[record.EventID] {
			continue
		}
		a.seen[record.EventID] = true
		a.records = append(a.records, record)
	}
}

// Records returns the deduplicated set in first-seen order.
func (a *Aggregator) Records() []medals.MedalEvent {
	return a.records
}
