package results

import (
	"testing"
	"time"

	"fantasyolympics-backend/lib/medals"

	"github.com/google/go-cmp/cmp"
)

func TestAggregatorFirstSeenWins(t *testing.T) {
	fromFeed := medals.MedalEvent{
		EventID:    "W2022-Biathlon-NOR-G",
		Discipline: "Biathlon",
		Country:    "NOR",
		Medal:      medals.Gold,
		Timestamp:  time.Date(2022, 2, 12, 10, 0, 0, 0, time.UTC),
	}
	// same award observed by a later source with a placeholder time
	fromWiki := fromFeed
	fromWiki.Timestamp = time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)

	other := medals.MedalEvent{
		EventID:    "W2022-Biathlon-SWE-S",
		Discipline: "Biathlon",
		Country:    "SWE",
		Medal:      medals.Silver,
		Timestamp:  time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	aggregator := NewAggregator()
	aggregator.Add(fromFeed)
	aggregator.Add(fromWiki, other)
	aggregator.Add(other)

	expected := []medals.MedalEvent{fromFeed, other}
	if diff := cmp.Diff(expected, aggregator.Records()); diff != "" {
		t.Fatalf("unexpected records (-want +got):\n%s", diff)
	}
}

func TestAggregatorPreservesOrder(t *testing.T) {
	aggregator := NewAggregator()
	ids := []string{"c", "a", "b", "a", "c", "d"}
	for _, id := range ids {
		aggregator.Add(medals.MedalEvent{EventID: id})
	}

	var got []string
	for _, record := range aggregator.Records() {
		got = append(got, record.EventID)
	}
	if diff := cmp.Diff([]string{"c", "a", "b", "d"}, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}
