package main

import (
	"fmt"

	"github.com/aie-routing/routectl/dma"
	"github.com/spf13/cobra"
)

var (
	waitEnvPath  string
	waitSampleEv int
)

var waitCmd = &cobra.Command{
	Use:   "wait <src> <dst>",
	Short: "Block until a committed route's S2MM channel drains, without issuing a new move.",
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

		rec, err := newInstance(waitEnvPath)
		if err != nil {
			return err
		}
		if waitSampleEv > 0 {
			rec.Mover.Sampler = dma.NewUtilizationSampler(waitSampleEv, rec.Instance.Logger())
		}

		if err := rec.Mover.RouteDmaWait(cmd.Context(), src, dst); err != nil {
			return err
		}

		fmt.Printf("route %s -> %s drained\n", src, dst)
		return nil
	},
}

func init() {
	waitCmd.Flags().StringVar(&waitEnvPath, "env", "", "path to a .env file overriding the default geometry")
	waitCmd.Flags().IntVar(&waitSampleEv, "sample-every", 0, "log host CPU/RSS every N busy-wait polls (0 disables)")
	rootCmd.AddCommand(waitCmd)
}
