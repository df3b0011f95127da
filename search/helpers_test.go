package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waterways/gridgraph"
)

// mustGrid builds a grid from map rows or fails the test.
func mustGrid(t testing.TB, rows ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromStrings(rows)
	require.NoError(t, err)

	return g
}

// randomGrid builds a w×h map where each cell is land with probability landPct/100.
func randomGrid(t testing.TB, rng *rand.Rand, w, h, landPct int) *gridgraph.Grid {
	t.Helper()
	rows := make([]string, h)
	for y := range rows {
		b := make([]byte, w)
		for x := range b {
			b[x] = 'W'
			if rng.Intn(100) < landPct {
				b[x] = 'L'
			}
		}
		rows[y] = string(b)
	}

	return mustGrid(t, rows...)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
