package wikitable

import (
	"context"
	"testing"
	"time"

	"fantasyolympics-backend/lib/medals"
	"fantasyolympics-backend/lib/vocab"

	"github.com/stretchr/testify/require"
)

var batchTime = time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)

const page = `<html><body>
<h2>Biathlon<span class="mw-editsection">[edit]</span></h2>
<p>Some prose about the venue.</p>
<table class="wikitable">
	<tr><th>Event</th><th>Gold</th><th>Silver</th><th>Bronze</th></tr>
	<tr>
		<td>Women's 10 km[a]</td>
		<td><span class="flagicon"></span> <a href="/wiki/Norway" title="Norway">Norway</a></td>
		<td><span class="flagicon"></span> <a href="/wiki/Sweden" title="Sweden">Sweden</a></td>
		<td><span class="flagicon"></span> <a href="/wiki/Finland" title="Finland">Finland</a></td>
	</tr>
	<tr>
		<td>Men's sprint</td>
		<td>France</td>
		<td><a href="/wiki/Utopia" title="Utopia">Utopia</a></td>
		<td><td>
	</tr>
</table>
<h2>See also</h2>
<table class="wikitable">
	<tr><th>Event</th><th>Gold</th><th>Silver</th><th>Bronze</th></tr>
	<tr>
		<td>Not a medal event</td>
		<td><a title="Norway">Norway</a></td>
		<td><a title="Sweden">Sweden</a></td>
		<td><a title="Finland">Finland</a></td>
	</tr>
</table>
</body></html>`

func TestExtract(t *testing.T) {
	extractor := NewExtractor(vocab.Default(), "W2022", batchTime)

	records, err := extractor.Extract(context.Background(), []byte(page))
	if err != nil {
		t.Fatal(err)
	}

	var biathlon []medals.MedalEvent
	for _, record := range records {
		if record.Discipline == "Biathlon" {
			biathlon = append(biathlon, record)
		}
	}

	// the full row yields three records, the sparse row only its
	// text-resolvable gold cell
	require.Len(t, biathlon, 4)

	require.Equal(t, medals.MedalEvent{
		EventID:    "W2022-Biathlon-Women's-10-km-NOR-G",
		Discipline: "Biathlon",
		Event:      "Women's 10 km",
		Country:    "NOR",
		Medal:      medals.Gold,
		Timestamp:  batchTime,
	}, biathlon[0])
	require.Equal(t, "SWE", biathlon[1].Country)
	require.Equal(t, medals.Silver, biathlon[1].Medal)
	require.Equal(t, "FIN", biathlon[2].Country)
	require.Equal(t, medals.Bronze, biathlon[2].Medal)

	ids := map[string]bool{}
	for _, record := range biathlon {
		require.False(t, ids[record.EventID], "duplicate id: %s", record.EventID)
		ids[record.EventID] = true
	}

	require.Equal(t, "W2022-Biathlon-Men's-sprint-FRA-G", biathlon[3].EventID)
}

func TestExtractIsDeterministic(t *testing.T) {
	extractor := NewExtractor(vocab.Default(), "W2022", batchTime)

	first, err := extractor.Extract(context.Background(), []byte(page))
	if err != nil {
		t.Fatal(err)
	}
	second, err := extractor.Extract(context.Background(), []byte(page))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, first, second)
}
