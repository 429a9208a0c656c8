// Package trace persists Route/DeRoute/MoveData events to SQLite, giving
// routes a query-able backing store alongside the in-memory routes DB.
// Grounded on tracing/sqlite.go's SQLiteTraceWriter.
package trace

import (
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// Event is one recorded routing operation.
type Event struct {
	Op        string // "Route", "DeRoute", "MoveData"
	Source    string
	Dest      string
	Ports     string // human-readable port allocation summary
	DurationS float64
	Err       string // empty on success
}

// SQLiteWriter buffers Events and flushes them in batches, the same
// way SQLiteTraceWriter does for simulation tasks.
type SQLiteWriter struct {
	db *sql.DB

	statement *sql.Stmt

	dbName    string
	buffered  []Event
	batchSize int
}

// NewSQLiteWriter creates a writer backed by path (".sqlite3" is
// appended). Flush is registered with tebeka/atexit so a process that
// exits without an explicit Close still persists buffered events.
func NewSQLiteWriter(path string) *SQLiteWriter {
	w := &SQLiteWriter{
		dbName:    path,
		batchSize: 1000,
	}

	atexit.Register(func() { w.Flush() })

	return w
}

// Init opens the database and creates the events table.
func (w *SQLiteWriter) Init() error {
	if w.dbName == "" {
		w.dbName = "routectl_trace_" + xid.New().String()
	}

	filename := w.dbName + ".sqlite3"
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("trace: file %s already exists", filename)
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return fmt.Errorf("trace: opening %s: %w", filename, err)
	}
	w.db = db

	if _, err := w.db.Exec(`
		create table events
		(
			id         varchar(200) not null,
			op         varchar(32)  not null,
			source     varchar(64)  not null,
			dest       varchar(64)  not null,
			ports      varchar(200) default '',
			duration_s float        default 0,
			error      varchar(400) default ''
		);
	`); err != nil {
		return fmt.Errorf("trace: creating events table: %w", err)
	}

	stmt, err := w.db.Prepare(`INSERT INTO events VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("trace: preparing insert: %w", err)
	}
	w.statement = stmt

	return nil
}

// Write buffers an event, flushing once batchSize is reached.
func (w *SQLiteWriter) Write(e Event) {
	w.buffered = append(w.buffered, e)
	if len(w.buffered) >= w.batchSize {
		w.Flush()
	}
}

// Flush writes all buffered events to the database in one transaction.
func (w *SQLiteWriter) Flush() {
	if len(w.buffered) == 0 || w.db == nil {
		return
	}

	tx, err := w.db.Begin()
	if err != nil {
		return
	}

	stmt := tx.Stmt(w.statement)
	for _, e := range w.buffered {
		if _, err := stmt.Exec(xid.New().String(), e.Op, e.Source, e.Dest, e.Ports, e.DurationS, e.Err); err != nil {
			_ = tx.Rollback()
			return
		}
	}

	_ = tx.Commit()
	w.buffered = nil
}

// Close flushes and closes the underlying database handle.
func (w *SQLiteWriter) Close() error {
	w.Flush()
	if w.db == nil {
		return nil
	}
	return w.db.Close()
}
