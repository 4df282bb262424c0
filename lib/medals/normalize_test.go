package medals

import (
	"testing"
	"time"

	"fantasyolympics-backend/lib/vocab"

	"github.com/stretchr/testify/require"
)

func TestNormalizeMedal(t *testing.T) {
	norm := NewNormalizer(vocab.Default())

	testCases := []struct {
		input    any
		expected Medal
		ok       bool
	}{
		{input: "Gold Medal", expected: Gold, ok: true},
		{input: "gold", expected: Gold, ok: true},
		{input: "G", expected: Gold, ok: true},
		{input: 1, expected: Gold, ok: true},
		{input: "1", expected: Gold, ok: true},
		{input: float64(1), expected: Gold, ok: true},
		{input: "Silver", expected: Silver, ok: true},
		{input: "s", expected: Silver, ok: true},
		{input: 2, expected: Silver, ok: true},
		{input: "BRONZE medal", expected: Bronze, ok: true},
		{input: "3", expected: Bronze, ok: true},
		{input: "4th place", ok: false},
		{input: "", ok: false},
		{input: nil, ok: false},
		{input: 7, ok: false},
		{input: []any{"gold"}, ok: false},
	}

	for _, tc := range testCases {
		medal, ok := norm.Medal(tc.input)
		require.Equal(t, tc.ok, ok, "input: %v", tc.input)
		if tc.ok {
			require.Equal(t, tc.expected, medal, "input: %v", tc.input)
		}
	}
}

func TestNormalizeDiscipline(t *testing.T) {
	norm := NewNormalizer(vocab.Default())

	require.Equal(t, "Biathlon", norm.Discipline("biathlon"))
	require.Equal(t, "Short Track Speed Skating", norm.Discipline("SHORT TRACK SPEED SKATING"))
	require.Equal(t, "Ice Hockey", norm.Discipline(" Ice Hockey "))
	// unknown names fall back to title casing instead of rejection
	require.Equal(t, "Synchronized Skating", norm.Discipline("synchronized skating"))
	require.Equal(t, "", norm.Discipline(""))
}

func TestNormalizeCountry(t *testing.T) {
	norm := NewNormalizer(vocab.Default())

	require.Equal(t, "NOR", norm.Country("nor"))
	require.Equal(t, "GER", norm.Country(" GER "))
	require.Equal(t, "KOR", norm.Country("Republic of Korea"))
	require.Equal(t, "GBR", norm.Country("Team GB"))
	require.Equal(t, "ROC", norm.Country("Russian Olympic Committee"))
	require.Equal(t, "", norm.Country("Atlantis"))
	require.Equal(t, "", norm.Country(""))
}

func TestNormalizersAreIdempotent(t *testing.T) {
	norm := NewNormalizer(vocab.Default())

	for _, input := range []string{
		"biathlon", "Figure Skating", "something else", "curling",
	} {
		once := norm.Discipline(input)
		require.Equal(t, once, norm.Discipline(once))
	}

	for _, input := range []string{"nor", "NOR", "Norway", "Sweden"} {
		once := norm.Country(input)
		require.Equal(t, once, norm.Country(once))
	}

	for _, input := range []any{"gold", "G", "2", 3} {
		once, ok := norm.Medal(input)
		if !ok {
			t.Fatalf("expected %v to normalize", input)
		}
		twice, ok := norm.Medal(string(once))
		require.True(t, ok)
		require.Equal(t, once, twice)
	}
}

func TestNormalizeTimestamp(t *testing.T) {
	norm := NewNormalizer(vocab.Default())
	fallback := time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)

	parsed := norm.Timestamp("2022-02-12T10:30:00Z", fallback)
	require.Equal(t, time.Date(2022, 2, 12, 10, 30, 0, 0, time.UTC), parsed)

	millis := norm.Timestamp(float64(1644661800000), fallback)
	require.Equal(t, int64(1644661800), millis.Unix())

	require.Equal(t, fallback, norm.Timestamp(nil, fallback))
	require.Equal(t, fallback, norm.Timestamp("not a time", fallback))
}
