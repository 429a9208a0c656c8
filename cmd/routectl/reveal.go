package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var revealEnvPath string

var revealCmd = &cobra.Command{
	Use:   "reveal <src> <dst>",
	Short: "Print an ASCII grid marking the tiles a committed route crosses.",
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

		rec, err := newInstance(revealEnvPath)
		if err != nil {
			return err
		}

		grid, err := rec.Instance.RoutesReveal(src, dst)
		if err != nil {
			return err
		}

		fmt.Print(grid)
		return nil
	},
}

func init() {
	revealCmd.Flags().StringVar(&revealEnvPath, "env", "", "path to a .env file overriding the default geometry")
	rootCmd.AddCommand(revealCmd)
}
