package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aie-routing/routectl/config"
)

func TestDefault8x6Validates(t *testing.T) {
	assert.NoError(t, config.Default8x6().Validate())
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	cases := []struct {
		name string
		geom config.Geometry
	}{
		{"zero columns", config.Geometry{NumCols: 0, NumRows: 1}},
		{"memory row at or below shim row", config.Geometry{
			NumCols: 2, NumRows: 4, ShimRow: 1, MemTileRowStart: 1, MemTileNumRows: 1,
			AIETileRowStart: 2, AIETileNumRows: 1,
		}},
		{"compute band overlapping memory band", config.Geometry{
			NumCols: 2, NumRows: 4, ShimRow: 0, MemTileRowStart: 1, MemTileNumRows: 2,
			AIETileRowStart: 1, AIETileNumRows: 1,
		}},
		{"compute band taller than the grid", config.Geometry{
			NumCols: 2, NumRows: 3, ShimRow: 0, MemTileRowStart: 1, MemTileNumRows: 1,
			AIETileRowStart: 2, AIETileNumRows: 5,
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Error(t, c.geom.Validate())
		})
	}
}

func TestLoadEnvAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	envPath := dir + "/aie.env"
	require.NoError(t, os.WriteFile(envPath, []byte("AIE_NUM_COLS=4\nAIE_CORE_NUM_ROWS=2\n"), 0o644))

	geom, err := config.LoadEnv(envPath, config.Default8x6())
	require.NoError(t, err)

	assert.Equal(t, 4, geom.NumCols)
	assert.Equal(t, 2, geom.AIETileNumRows)
	assert.Equal(t, config.Default8x6().NumRows, geom.NumRows, "unset variables keep the base value")
}

func TestLoadEnvMissingFileFallsBackToProcessEnv(t *testing.T) {
	t.Setenv("AIE_NUM_COLS", "5")

	geom, err := config.LoadEnv("/nonexistent/path/to/aie.env", config.Default8x6())
	require.NoError(t, err)
	assert.Equal(t, 5, geom.NumCols)
}

func TestLoadEnvRejectsInvalidResultingGeometry(t *testing.T) {
	t.Setenv("AIE_NUM_COLS", "0")
	_, err := config.LoadEnv("/nonexistent/path/to/aie.env", config.Default8x6())
	assert.Error(t, err)
}
