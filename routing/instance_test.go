package routing_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aie-routing/routectl/config"
	"github.com/aie-routing/routectl/hardware"
	"github.com/aie-routing/routectl/routing"
)

// smallGeometry is a 2x3 grid (one shim row, one memory row, one
// compute row of two tiles) small enough to reason about every route
// by hand.
func smallGeometry() config.Geometry {
	return config.Geometry{
		NumCols:         2,
		NumRows:         3,
		ShimRow:         0,
		MemTileRowStart: 1,
		MemTileNumRows:  1,
		AIETileRowStart: 2,
		AIETileNumRows:  1,
	}
}

var _ = Describe("Instance", func() {
	var (
		dev  *hardware.Null
		inst *routing.Instance
	)

	BeforeEach(func() {
		dev = hardware.NewNull()
		var err error
		inst, err = routing.InitRoutingHandler(smallGeometry(), dev, nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("routes between two compute tiles on the same row", func() {
		src := routing.TileLoc{Col: 0, Row: 2}
		dst := routing.TileLoc{Col: 1, Row: 2}

		Expect(inst.Route(context.Background(), src, dst, nil)).To(Succeed())

		path, ok := inst.FindRoute(src, dst)
		Expect(ok).To(BeTrue())
		Expect(path.Source).To(Equal(src))
		Expect(path.Destination).To(Equal(dst))
		Expect(path.Steps).To(HaveLen(2))
		Expect(path.State()).To(Equal(routing.StateCommitted))

		Expect(dev.StreamEnables).NotTo(BeEmpty())
	})

	It("marks compute endpoints executable after a successful route", func() {
		src := routing.TileLoc{Col: 0, Row: 2}
		dst := routing.TileLoc{Col: 1, Row: 2}

		Expect(inst.Route(context.Background(), src, dst, nil)).To(Succeed())

		Expect(inst.Grid().Tile(src).CoreExecuting).To(BeTrue())
		Expect(inst.Grid().Tile(dst).CoreExecuting).To(BeTrue())

		Expect(inst.SetCoreExecute(src, false)).To(Succeed())
		Expect(inst.Run(context.Background(), 1)).To(Succeed())
	})

	It("rejects a second Route call between the same endpoints", func() {
		src := routing.TileLoc{Col: 0, Row: 2}
		dst := routing.TileLoc{Col: 1, Row: 2}

		Expect(inst.Route(context.Background(), src, dst, nil)).To(Succeed())
		err := inst.Route(context.Background(), src, dst, nil)
		Expect(err).To(MatchError(routing.ErrAlreadyRouted))
	})

	It("fails with ErrNoPath when the destination is blacklisted", func() {
		src := routing.TileLoc{Col: 0, Row: 2}
		dst := routing.TileLoc{Col: 1, Row: 2}

		rc := &routing.RouteConstraints{Blacklist: map[routing.TileLoc]bool{dst: true}}
		err := inst.Route(context.Background(), src, dst, rc)
		Expect(err).To(MatchError(routing.ErrNoPath))
	})

	It("rejects out-of-bounds endpoints", func() {
		err := inst.Route(context.Background(), routing.TileLoc{Col: 0, Row: 2}, routing.TileLoc{Col: 99, Row: 99}, nil)
		Expect(err).To(MatchError(routing.ErrInvalidArgs))
	})

	It("tears down a committed route and allows a fresh one to reuse the freed ports", func() {
		src := routing.TileLoc{Col: 0, Row: 2}
		dst := routing.TileLoc{Col: 1, Row: 2}

		Expect(inst.Route(context.Background(), src, dst, nil)).To(Succeed())
		Expect(inst.DeRoute(context.Background(), src, dst, true)).To(Succeed())

		_, ok := inst.FindRoute(src, dst)
		Expect(ok).To(BeFalse())

		Expect(inst.Route(context.Background(), src, dst, nil)).To(Succeed())

		// the second route claims exactly the ports the first one freed
		Expect(dev.StreamEnables).To(HaveLen(4))
		Expect(dev.StreamEnables[2:]).To(Equal(dev.StreamEnables[:2]))
	})

	It("fails DeRoute on a route that was never committed", func() {
		src := routing.TileLoc{Col: 0, Row: 2}
		dst := routing.TileLoc{Col: 1, Row: 2}

		err := inst.DeRoute(context.Background(), src, dst, true)
		Expect(err).To(MatchError(routing.ErrNoRoute))
	})

	It("treats Route(s, s) as a no-op that leaves no route to find", func() {
		loc := routing.TileLoc{Col: 0, Row: 2}

		Expect(inst.Route(context.Background(), loc, loc, nil)).To(Succeed())
		Expect(dev.StreamEnables).To(BeEmpty())

		_, ok := inst.FindRoute(loc, loc)
		Expect(ok).To(BeFalse())
	})

	It("resets every non-auto-configured tile without error", func() {
		var tiles []routing.TileLoc
		for _, t := range inst.Grid().AllTiles() {
			tiles = append(tiles, t.Loc)
		}
		Expect(func() { inst.RoutingSwitchReset(context.Background(), tiles) }).NotTo(Panic())
	})
})
