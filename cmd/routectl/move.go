package main

import (
	"fmt"

	"github.com/aie-routing/routectl/dma"
	"github.com/aie-routing/routectl/hardware"
	"github.com/spf13/cobra"
)

var (
	moveEnvPath  string
	moveSize     int
	moveWait     bool
	moveSrcAddr  uint64
	moveDstAddr  uint64
	moveSampleEv int
)

var moveCmd = &cobra.Command{
	Use:   "move <src> <dst>",
	Short: "Move size bytes across an already-committed route.",
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

		rec, err := newInstance(moveEnvPath)
		if err != nil {
			return err
		}
		if moveSampleEv > 0 {
			rec.Mover.Sampler = dma.NewUtilizationSampler(moveSampleEv, rec.Instance.Logger())
		}

		req := dma.NewMoveRequestBuilder().
			WithSrc(src).
			WithDst(dst).
			WithSrcObject(dma.DataObject{Addr: hardware.Addr(moveSrcAddr)}).
			WithDstObject(dma.DataObject{Addr: hardware.Addr(moveDstAddr)}).
			WithSize(moveSize).
			WithWait(moveWait).
			Build()

		if err := rec.MoveData(cmd.Context(), req); err != nil {
			return err
		}

		fmt.Printf("moved %d byte(s) %s -> %s (request %s)\n", moveSize, src, dst, req.ID)
		return nil
	},
}

func init() {
	moveCmd.Flags().StringVar(&moveEnvPath, "env", "", "path to a .env file overriding the default geometry")
	moveCmd.Flags().IntVar(&moveSize, "size", 0, "transfer size in bytes")
	moveCmd.Flags().BoolVar(&moveWait, "wait", true, "block until the destination channel drains")
	moveCmd.Flags().Uint64Var(&moveSrcAddr, "src-addr", 0, "source device address")
	moveCmd.Flags().Uint64Var(&moveDstAddr, "dst-addr", 0, "destination device address")
	moveCmd.Flags().IntVar(&moveSampleEv, "sample-every", 0, "log host CPU/RSS every N busy-wait polls (0 disables)")
	rootCmd.AddCommand(moveCmd)
}
