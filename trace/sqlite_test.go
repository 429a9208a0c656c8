package trace_test

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aie-routing/routectl/trace"
)

func TestSQLiteWriterBuffersAndFlushes(t *testing.T) {
	dbPath := "test_routectl_trace"
	os.Remove(dbPath + ".sqlite3")
	t.Cleanup(func() { os.Remove(dbPath + ".sqlite3") })

	w := trace.NewSQLiteWriter(dbPath)
	require.NoError(t, w.Init())

	w.Write(trace.Event{Op: "Route", Source: "(0,2)", Dest: "(2,2)", Ports: "mm2s=0 s2mm=0 hops=2"})
	w.Write(trace.Event{Op: "DeRoute", Source: "(0,2)", Dest: "(2,2)"})
	w.Write(trace.Event{Op: "MoveData", Source: "(0,2)", Dest: "(2,2)", Err: "routing: hardware error"})

	require.NoError(t, w.Close())

	db, err := sql.Open("sqlite3", dbPath+".sqlite3")
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("select count(*) from events").Scan(&count))
	assert.Equal(t, 3, count)

	var errCount int
	require.NoError(t, db.QueryRow("select count(*) from events where error != ''").Scan(&errCount))
	assert.Equal(t, 1, errCount)
}

func TestSQLiteWriterRefusesExistingFile(t *testing.T) {
	dbPath := "test_routectl_trace_dup"
	os.Remove(dbPath + ".sqlite3")
	t.Cleanup(func() { os.Remove(dbPath + ".sqlite3") })

	w1 := trace.NewSQLiteWriter(dbPath)
	require.NoError(t, w1.Init())
	defer w1.Close()

	w2 := trace.NewSQLiteWriter(dbPath)
	assert.Error(t, w2.Init())
}
