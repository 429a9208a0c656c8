package trace_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aie-routing/routectl/config"
	"github.com/aie-routing/routectl/dma"
	"github.com/aie-routing/routectl/hardware"
	"github.com/aie-routing/routectl/routing"
	"github.com/aie-routing/routectl/trace"
)

func TestRecorderRecordsRouteAndDeRoute(t *testing.T) {
	dbPath := "test_routectl_recorder"
	os.Remove(dbPath + ".sqlite3")
	t.Cleanup(func() { os.Remove(dbPath + ".sqlite3") })

	dev := hardware.NewNull()
	inst, err := routing.InitRoutingHandler(config.Default8x6(), dev, nil)
	require.NoError(t, err)

	sink := trace.NewSQLiteWriter(dbPath)
	require.NoError(t, sink.Init())

	rec := trace.NewRecorder(inst, dma.NewMover(inst), sink)

	src := routing.TileLoc{Col: 0, Row: 2}
	dst := routing.TileLoc{Col: 1, Row: 2}

	assert.NoError(t, rec.Route(context.Background(), src, dst, nil))
	assert.NoError(t, rec.DeRoute(context.Background(), src, dst, true))

	require.NoError(t, sink.Close())

	db, err := sql.Open("sqlite3", dbPath+".sqlite3")
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("select count(*) from events where op in ('Route', 'DeRoute')").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestRecorderWithNilSinkDropsEvents(t *testing.T) {
	dev := hardware.NewNull()
	inst, err := routing.InitRoutingHandler(config.Default8x6(), dev, nil)
	require.NoError(t, err)

	rec := trace.NewRecorder(inst, dma.NewMover(inst), nil)

	src := routing.TileLoc{Col: 0, Row: 2}
	dst := routing.TileLoc{Col: 1, Row: 2}

	assert.NoError(t, rec.Route(context.Background(), src, dst, nil))
}
