package vocab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscipline(t *testing.T) {
	v := Default()

	canonical, ok := v.Discipline("cross-country skiing")
	require.True(t, ok)
	require.Equal(t, "Cross-Country Skiing", canonical)

	_, ok = v.Discipline("underwater basket weaving")
	require.False(t, ok)
}

func TestCountryNOC(t *testing.T) {
	v := Default()

	testCases := []struct {
		name string
		noc  string
	}{
		{name: "Norway", noc: "NOR"},
		{name: "people's republic of china", noc: "CHN"},
		{name: "Republic of Korea", noc: "KOR"},
		{name: "Team GB", noc: "GBR"},
		{name: "Russia", noc: "ROC"},
		// fuzzy fallback for near-miss spellings
		{name: "United State", noc: "USA"},
	}
	for _, tc := range testCases {
		noc, ok := v.CountryNOC(tc.name)
		require.True(t, ok, "name: %s", tc.name)
		require.Equal(t, tc.noc, noc, "name: %s", tc.name)
	}

	_, ok := v.CountryNOC("Mordor")
	require.False(t, ok)
	_, ok = v.CountryNOC("")
	require.False(t, ok)
}

func TestFindCountryInText(t *testing.T) {
	v := Default()

	noc, ok := v.FindCountryInText("  Switzerland (SUI) [a]")
	require.True(t, ok)
	require.Equal(t, "SUI", noc)

	// longest alias wins over substrings of it
	noc, ok = v.FindCountryInText("People's Republic of China")
	require.True(t, ok)
	require.Equal(t, "CHN", noc)

	_, ok = v.FindCountryInText("nobody here")
	require.False(t, ok)
}

func TestIsNOC(t *testing.T) {
	v := Default()
	require.True(t, v.IsNOC("NOR"))
	require.True(t, v.IsNOC("sui"))
	require.False(t, v.IsNOC("XYZ"))
}
