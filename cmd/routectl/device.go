package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aie-routing/routectl/config"
	"github.com/aie-routing/routectl/dma"
	"github.com/aie-routing/routectl/hardware"
	"github.com/aie-routing/routectl/routing"
	"github.com/aie-routing/routectl/trace"
)

// tracePath, set via the persistent --trace flag, names the SQLite
// database (without its .sqlite3 suffix) every Route/DeRoute/MoveData
// call is recorded to (SPEC_FULL §6.6). Empty disables tracing.
var tracePath string

func init() {
	rootCmd.PersistentFlags().StringVar(&tracePath, "trace", "", "record every Route/DeRoute/MoveData call to this SQLite database")
}

// newInstance builds a routing.Instance + dma.Mover against a Null
// hardware fake, loading geometry overrides from a .env file if one
// is present (SPEC_FULL §6.3), and wraps both in a trace.Recorder so
// every subcommand's Route/DeRoute/MoveData call is recorded when
// --trace names a database. Subcommands that need a real backend swap
// the Null fake out for a concrete hardware.Device; routectl itself
// never assumes one exists.
func newInstance(envPath string) (*trace.Recorder, error) {
	geom, err := config.LoadEnv(envPath, config.Default8x6())
	if err != nil {
		return nil, err
	}

	logger := log.New(os.Stderr, "routectl: ", log.LstdFlags)
	dev := hardware.NewNull()

	inst, err := routing.InitRoutingHandler(geom, dev, logger)
	if err != nil {
		return nil, err
	}

	var sink *trace.SQLiteWriter
	if tracePath != "" {
		sink = trace.NewSQLiteWriter(tracePath)
		if err := sink.Init(); err != nil {
			return nil, fmt.Errorf("routectl: opening trace database: %w", err)
		}
	}

	return trace.NewRecorder(inst, dma.NewMover(inst), sink), nil
}

// parseTile parses a "col,row" string into a routing.TileLoc.
func parseTile(s string) (routing.TileLoc, error) {
	var col, row int
	if _, err := fmt.Sscanf(s, "%d,%d", &col, &row); err != nil {
		return routing.TileLoc{}, fmt.Errorf("routectl: invalid tile %q: %w", s, err)
	}
	return routing.TileLoc{Col: col, Row: row}, nil
}
