// Package config loads the device geometry and host-edge overrides a
// routing.Instance is built from, optionally from a .env file via
// github.com/joho/godotenv.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Geometry describes the accelerator's tile grid layout.
type Geometry struct {
	NumCols int
	NumRows int

	ShimRow int

	MemTileRowStart int
	MemTileNumRows  int

	AIETileRowStart int
	AIETileNumRows  int
}

// Validate reports whether the geometry is internally consistent
// enough to build a grid from.
func (g Geometry) Validate() error {
	if g.NumCols <= 0 || g.NumRows <= 0 {
		return fmt.Errorf("config: grid must have positive dimensions, got %dx%d", g.NumCols, g.NumRows)
	}
	if g.MemTileRowStart <= g.ShimRow {
		return fmt.Errorf("config: memory rows must start above the shim row")
	}
	if g.AIETileRowStart < g.MemTileRowStart+g.MemTileNumRows {
		return fmt.Errorf("config: compute rows must start at or above the end of the memory band")
	}
	if g.AIETileRowStart+g.AIETileNumRows > g.NumRows {
		return fmt.Errorf("config: compute band exceeds grid height")
	}
	return nil
}

// Default8x6 is the geometry used throughout the package's test suite:
// shim row 0, one memory row, four compute rows, grid 8 columns wide.
func Default8x6() Geometry {
	return Geometry{
		NumCols:         8,
		NumRows:         6,
		ShimRow:         0,
		MemTileRowStart: 1,
		MemTileNumRows:  1,
		AIETileRowStart: 2,
		AIETileNumRows:  4,
	}
}

// LoadEnv reads geometry overrides from the given .env file (or from
// the process environment if the file does not exist) using
// github.com/joho/godotenv. Unset variables fall back to base.
func LoadEnv(path string, base Geometry) (Geometry, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return base, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}

	g := base
	overrideInt(&g.NumCols, "AIE_NUM_COLS")
	overrideInt(&g.NumRows, "AIE_NUM_ROWS")
	overrideInt(&g.ShimRow, "AIE_SHIM_ROW")
	overrideInt(&g.MemTileRowStart, "AIE_MEM_ROW_START")
	overrideInt(&g.MemTileNumRows, "AIE_MEM_NUM_ROWS")
	overrideInt(&g.AIETileRowStart, "AIE_CORE_ROW_START")
	overrideInt(&g.AIETileNumRows, "AIE_CORE_NUM_ROWS")

	return g, g.Validate()
}

func overrideInt(dst *int, envVar string) {
	v, ok := os.LookupEnv(envVar)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*dst = n
}

// HostEdgeOverride is a user-supplied replacement for a shim tile's
// host-edge port/channel mapping (SPEC_FULL §8.3,
// ConfigHostEdgeConstraints).
type HostEdgeOverride struct {
	Host2AIE []HostEdgePortConfig
	AIE2Host []HostEdgePortConfig
}

// HostEdgePortConfig mirrors routing.HostEdgePort without importing
// the routing package, keeping config dependency-free of it.
type HostEdgePortConfig struct {
	Port    int
	Channel int
}
