package medals

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildIDDeterminism(t *testing.T) {
	a := BuildID("W2022", "Biathlon", "Women's 10 km", "NOR", Gold)
	b := BuildID("W2022", "Biathlon", "Women's 10 km", "NOR", Gold)
	require.Equal(t, a, b)
	require.Equal(t, "W2022-Biathlon-Women's-10-km-NOR-G", a)

	// the event component is omitted entirely when absent
	require.Equal(t, "W2022-Figure-Skating-USA-S",
		BuildID("W2022", "Figure Skating", "", "USA", Silver))
}

func TestBuildIDDistinctness(t *testing.T) {
	base := BuildID("W2022", "Biathlon", "Women's 10 km", "NOR", Gold)

	variants := []string{
		BuildID("W2026", "Biathlon", "Women's 10 km", "NOR", Gold),
		BuildID("W2022", "Luge", "Women's 10 km", "NOR", Gold),
		BuildID("W2022", "Biathlon", "Men's 10 km", "NOR", Gold),
		BuildID("W2022", "Biathlon", "", "NOR", Gold),
		BuildID("W2022", "Biathlon", "Women's 10 km", "SWE", Gold),
		BuildID("W2022", "Biathlon", "Women's 10 km", "NOR", Silver),
	}

	seen := map[string]bool{base: true}
	for _, id := range variants {
		require.False(t, seen[id], "collision: %s", id)
		seen[id] = true
	}
}

func TestUnitID(t *testing.T) {
	require.Equal(t, "E1-G", UnitID("E1", Gold))
	require.Equal(t, "E1-S", UnitID("E1", Silver))
	require.NotEqual(t, UnitID("E1", Gold), UnitID("E2", Gold))
}
