package dma_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aie-routing/routectl/config"
	"github.com/aie-routing/routectl/dma"
	"github.com/aie-routing/routectl/hardware"
	"github.com/aie-routing/routectl/routing"
)

var _ = Describe("Mover", func() {
	var (
		dev  *hardware.Null
		inst *routing.Instance
		mov  *dma.Mover
		src  routing.TileLoc
		dst  routing.TileLoc
	)

	BeforeEach(func() {
		dev = hardware.NewNull()

		geom := config.Geometry{
			NumCols:         3,
			NumRows:         3,
			ShimRow:         0,
			MemTileRowStart: 1,
			MemTileNumRows:  1,
			AIETileRowStart: 2,
			AIETileNumRows:  1,
		}

		var err error
		inst, err = routing.InitRoutingHandler(geom, dev, nil)
		Expect(err).NotTo(HaveOccurred())

		src = routing.TileLoc{Col: 0, Row: 2}
		dst = routing.TileLoc{Col: 2, Row: 2}
		Expect(inst.Route(context.Background(), src, dst, nil)).To(Succeed())

		mov = dma.NewMover(inst)
	})

	It("rejects a move across two tiles with no committed route", func() {
		req := dma.NewMoveRequestBuilder().
			WithSrc(routing.TileLoc{Col: 0, Row: 2}).
			WithDst(routing.TileLoc{Col: 1, Row: 2}).
			WithSize(64).
			Build()

		err := mov.MoveData(context.Background(), req)
		Expect(err).To(MatchError(routing.ErrNoRoute))
	})

	It("moves data across a committed route and marks it in-use", func() {
		req := dma.NewMoveRequestBuilder().
			WithSrc(src).
			WithDst(dst).
			WithSize(64).
			WithWait(true).
			Build()

		Expect(req.ID).NotTo(BeEmpty())

		Expect(mov.MoveData(context.Background(), req)).To(Succeed())

		path, ok := inst.FindRoute(src, dst)
		Expect(ok).To(BeTrue())
		Expect(path.State()).To(Equal(routing.StateInUse))
	})

	It("releases both endpoints' buffer descriptors for reuse after the move completes", func() {
		for i := 0; i < 20; i++ {
			req := dma.NewMoveRequestBuilder().
				WithSrc(src).
				WithDst(dst).
				WithSize(64).
				WithWait(true).
				Build()
			Expect(mov.MoveData(context.Background(), req)).To(Succeed())
		}
	})
})
