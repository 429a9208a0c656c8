package diag_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aie-routing/routectl/config"
	"github.com/aie-routing/routectl/diag"
	"github.com/aie-routing/routectl/routing"
)

func TestASCIIGridMarksSourceAndDestination(t *testing.T) {
	inst := newTestInstance(t)

	src := routing.TileLoc{Col: 0, Row: 2}
	dst := routing.TileLoc{Col: 1, Row: 2}
	require.NoError(t, inst.Route(context.Background(), src, dst, nil))

	grid, err := diag.ASCIIGrid(inst, src, dst)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(grid, "\n"), "\n")
	geom := config.Default8x6()
	assert.Len(t, lines, geom.NumRows)
	assert.Contains(t, grid, "S")
	assert.Contains(t, grid, "D")
}

func TestASCIIGridErrorsWithoutARoute(t *testing.T) {
	inst := newTestInstance(t)
	_, err := diag.ASCIIGrid(inst, routing.TileLoc{Col: 0, Row: 2}, routing.TileLoc{Col: 1, Row: 2})
	assert.ErrorIs(t, err, routing.ErrNoRoute)
}
