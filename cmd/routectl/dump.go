package main

import (
	"encoding/json"
	"os"

	"github.com/aie-routing/routectl/diag"
	"github.com/spf13/cobra"
)

var (
	dumpEnvPath string
	dumpTileArg string
	dumpServe   string
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the constraints grid as JSON, or open the live diagnostic dashboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := newInstance(dumpEnvPath)
		if err != nil {
			return err
		}
		inst := rec.Instance

		if dumpServe != "" {
			srv := diag.NewServer(inst, inst.Logger())
			return srv.ListenAndServe(dumpServe)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if dumpTileArg != "" {
			loc, err := parseTile(dumpTileArg)
			if err != nil {
				return err
			}
			tile, err := inst.DumpTileConstraintJSON(loc)
			if err != nil {
				return err
			}
			return enc.Encode(tile)
		}

		return enc.Encode(inst.DumpConstraintsJSON())
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpEnvPath, "env", "", "path to a .env file overriding the default geometry")
	dumpCmd.Flags().StringVar(&dumpTileArg, "tile", "", "dump a single tile (\"col,row\") instead of the whole grid")
	dumpCmd.Flags().StringVar(&dumpServe, "serve", "", "serve the live dashboard on this address instead of printing once (e.g. :8080)")
	rootCmd.AddCommand(dumpCmd)
}
