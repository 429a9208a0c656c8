package main

import (
	"fmt"
	"strings"

	"github.com/aie-routing/routectl/routing"
	"github.com/spf13/cobra"
)

var (
	resetEnvPath string
	resetTiles   string
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the routing switch state of one or more tiles (or the whole grid if --tiles is omitted).",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := newInstance(resetEnvPath)
		if err != nil {
			return err
		}
		inst := rec.Instance

		var tiles []routing.TileLoc
		if resetTiles == "" {
			for _, t := range inst.Grid().AllTiles() {
				tiles = append(tiles, t.Loc)
			}
		} else {
			for _, part := range strings.Split(resetTiles, ";") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				loc, err := parseTile(part)
				if err != nil {
					return err
				}
				tiles = append(tiles, loc)
			}
		}

		inst.RoutingSwitchReset(cmd.Context(), tiles)
		fmt.Printf("reset %d tile(s)\n", len(tiles))
		return nil
	},
}

func init() {
	resetCmd.Flags().StringVar(&resetEnvPath, "env", "", "path to a .env file overriding the default geometry")
	resetCmd.Flags().StringVar(&resetTiles, "tiles", "", "semicolon-separated list of tiles to reset; defaults to the whole grid")
	rootCmd.AddCommand(resetCmd)
}
