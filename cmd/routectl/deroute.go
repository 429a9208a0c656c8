package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	derouteEnvPath          string
	derouteModifyCoreConfig bool
)

var derouteCmd = &cobra.Command{
	Use:   "deroute <src> <dst>",
	Short: "Tear down a committed route between two tiles.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := parseTile(args[0])
		if err != nil {
			return err
		}
		dst, err := parseTile(args[1])
		if err != nil {
			return err
		}

		rec, err := newInstance(derouteEnvPath)
		if err != nil {
			return err
		}

		if err := rec.DeRoute(cmd.Context(), src, dst, derouteModifyCoreConfig); err != nil {
			return err
		}

		fmt.Printf("de-routed %s -> %s\n", src, dst)
		return nil
	},
}

func init() {
	derouteCmd.Flags().StringVar(&derouteEnvPath, "env", "", "path to a .env file overriding the default geometry")
	derouteCmd.Flags().BoolVar(&derouteModifyCoreConfig, "modify-core-config", true, "clear CoreExecuting on a compute-tile endpoint")
	rootCmd.AddCommand(derouteCmd)
}
