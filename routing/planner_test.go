package routing

import (
	"testing"

	"github.com/aie-routing/routectl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compute3x1Grid(t *testing.T) *ConstraintGrid {
	t.Helper()
	geom := config.Geometry{
		NumCols:         3,
		NumRows:         3,
		ShimRow:         0,
		MemTileRowStart: 1,
		MemTileNumRows:  1,
		AIETileRowStart: 2,
		AIETileNumRows:  1,
	}
	g, err := NewConstraintGrid(geom)
	require.NoError(t, err)
	return g
}

func TestFindShortestPathSameTile(t *testing.T) {
	g := compute3x1Grid(t)
	loc := TileLoc{Col: 1, Row: 2}

	p, err := findShortestPath(g, loc, loc, nil)
	require.NoError(t, err)
	assert.Equal(t, []TileLoc{loc}, p.tiles)
	assert.Empty(t, p.dirs)
}

func TestFindShortestPathStraightLine(t *testing.T) {
	g := compute3x1Grid(t)
	src := TileLoc{Col: 0, Row: 2}
	dst := TileLoc{Col: 2, Row: 2}

	p, err := findShortestPath(g, src, dst, nil)
	require.NoError(t, err)
	assert.Equal(t, []TileLoc{src, {Col: 1, Row: 2}, dst}, p.tiles)
	assert.Equal(t, []Direction{East, East}, p.dirs)
}

func TestFindShortestPathBlacklistedDestination(t *testing.T) {
	g := compute3x1Grid(t)
	src := TileLoc{Col: 0, Row: 2}
	dst := TileLoc{Col: 2, Row: 2}

	rc := &RouteConstraints{Blacklist: map[TileLoc]bool{dst: true}}
	_, err := findShortestPath(g, src, dst, rc)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestFindShortestPathWhitelistRestrictsDetour(t *testing.T) {
	g := compute3x1Grid(t)
	src := TileLoc{Col: 0, Row: 2}
	mid := TileLoc{Col: 1, Row: 2}
	dst := TileLoc{Col: 2, Row: 2}

	// Whitelisting only the direct intermediate tile still finds the
	// straight path.
	rc := &RouteConstraints{Whitelist: map[TileLoc]bool{mid: true}}
	p, err := findShortestPath(g, src, dst, rc)
	require.NoError(t, err)
	assert.Equal(t, []TileLoc{src, mid, dst}, p.tiles)
}

func TestFindShortestPathWhitelistExcludingOnlyRoute(t *testing.T) {
	g := compute3x1Grid(t)
	src := TileLoc{Col: 0, Row: 2}
	dst := TileLoc{Col: 2, Row: 2}

	// An empty-of-the-real-path whitelist (pointing only at an
	// unrelated tile) makes the only viable route inadmissible.
	rc := &RouteConstraints{Whitelist: map[TileLoc]bool{{Col: 0, Row: 0}: true}}
	_, err := findShortestPath(g, src, dst, rc)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestFirstMatchingPort(t *testing.T) {
	g := compute3x1Grid(t)
	src := g.Tile(TileLoc{Col: 0, Row: 2})
	dst := g.Tile(TileLoc{Col: 1, Row: 2})

	port := firstMatchingPort(src, dst, East)
	assert.NotEqual(t, noPort, port)
	assert.NotZero(t, src.MasterBits[East]&(1<<uint(port)))
	assert.NotZero(t, dst.SlaveBits[West]&(1<<uint(port)))
}
