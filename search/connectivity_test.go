package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waterways/gridgraph"
	"github.com/katalvlaran/waterways/search"
)

func TestSameComponent_SeparatedByWater(t *testing.T) {
	g := mustGrid(t, "LWL")
	same, err := search.SameComponent(g, gridgraph.Pos(0, 0), gridgraph.Pos(2, 0))
	require.NoError(t, err)
	assert.False(t, same)
}

func TestSameComponent_Reflexive(t *testing.T) {
	g := mustGrid(t, "LW", "WL")
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			same, err := search.SameComponent(g, gridgraph.Pos(x, y), gridgraph.Pos(x, y))
			require.NoError(t, err)
			assert.True(t, same, "(%d,%d)", x, y)
		}
	}
}

func TestSameComponent_DiagonalLandIsSeparate(t *testing.T) {
	g := mustGrid(t, "LW", "WL")
	same, err := search.SameComponent(g, gridgraph.Pos(0, 0), gridgraph.Pos(1, 1))
	require.NoError(t, err)
	assert.False(t, same)
}

func TestSameComponent_WindingIsland(t *testing.T) {
	g := mustGrid(t,
		"LLLLL",
		"WWWWL",
		"LLLWL",
		"LWLLL",
	)
	same, err := search.SameComponent(g, gridgraph.Pos(0, 0), gridgraph.Pos(0, 3))
	require.NoError(t, err)
	assert.True(t, same)

	// water cells are compared against water
	same, err = search.SameComponent(g, gridgraph.Pos(0, 1), gridgraph.Pos(3, 2))
	require.NoError(t, err)
	assert.True(t, same)

	same, err = search.SameComponent(g, gridgraph.Pos(0, 1), gridgraph.Pos(1, 3))
	require.NoError(t, err)
	assert.False(t, same, "enclosed water pocket")

	same, err = search.SameComponent(g, gridgraph.Pos(0, 0), gridgraph.Pos(0, 1))
	require.NoError(t, err)
	assert.False(t, same, "land and water never match")
}

func TestSameComponent_OutOfBounds(t *testing.T) {
	g := mustGrid(t, "LL")
	_, err := search.SameComponent(g, gridgraph.Pos(0, 0), gridgraph.Pos(0, 1))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = search.SameComponent(nil, gridgraph.Pos(0, 0), gridgraph.Pos(0, 0))
	assert.ErrorIs(t, err, search.ErrGridNil)
}

// TestSameComponent_MatchesIslandLabels compares against a flood-fill oracle
// and checks symmetry on random maps.
func TestSameComponent_MatchesIslandLabels(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 60; i++ {
		g := randomGrid(t, rng, 7, 6, 55)
		labels := g.IslandLabels()
		for j := 0; j < 10; j++ {
			a := gridgraph.Pos(rng.Intn(7), rng.Intn(6))
			b := gridgraph.Pos(rng.Intn(7), rng.Intn(6))
			if !g.Is(a, gridgraph.Land) || !g.Is(b, gridgraph.Land) {
				continue
			}
			ab, err := search.SameComponent(g, a, b)
			require.NoError(t, err)
			ba, err := search.SameComponent(g, b, a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "symmetry %s %s", a, b)
			assert.Equal(t, labels[a] == labels[b], ab, "oracle %s %s", a, b)
		}
	}
}
