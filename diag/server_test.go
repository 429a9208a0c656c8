package diag_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aie-routing/routectl/config"
	"github.com/aie-routing/routectl/diag"
	"github.com/aie-routing/routectl/hardware"
	"github.com/aie-routing/routectl/routing"
)

func newTestInstance(t *testing.T) *routing.Instance {
	t.Helper()
	inst, err := routing.InitRoutingHandler(config.Default8x6(), hardware.NewNull(), nil)
	require.NoError(t, err)
	return inst
}

func TestHandleConstraintsReturnsEveryTile(t *testing.T) {
	inst := newTestInstance(t)
	srv := diag.NewServer(inst, nil)

	req := httptest.NewRequest(http.MethodGet, "/constraints", nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var dump []routing.TileDump
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dump))

	geom := config.Default8x6()
	assert.Len(t, dump, geom.NumCols*geom.NumRows)
}

func TestHandleTileReturnsOneTile(t *testing.T) {
	inst := newTestInstance(t)
	srv := diag.NewServer(inst, nil)

	req := httptest.NewRequest(http.MethodGet, "/tile/1/2", nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var dump routing.TileDump
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dump))
	assert.Equal(t, routing.TileLoc{Col: 1, Row: 2}, dump.Loc)
}

func TestHandleTileOutOfBounds(t *testing.T) {
	inst := newTestInstance(t)
	srv := diag.NewServer(inst, nil)

	req := httptest.NewRequest(http.MethodGet, "/tile/99/99", nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
