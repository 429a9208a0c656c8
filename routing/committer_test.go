package routing_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aie-routing/routectl/hardware"
	"github.com/aie-routing/routectl/routing"
)

// These specs pin down the slave direction the committer carries from
// hop to hop. A shim-to-compute route through the memory row is a
// three-tile path whose one intermediate tile is a memory tile, and its
// north/south masks are asymmetric (memory: SlaveBits[North]=0x0F,
// SlaveBits[South]=0x3F), so a wrong carried direction shows up as a
// wrong recorded SourceDirection rather than silently picking a
// differently-numbered but still-valid port.
var _ = Describe("commitPath direction carry", func() {
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

	It("enters every intermediate and terminal tile from the direction facing the previous hop", func() {
		src := routing.TileLoc{Col: 0, Row: 0} // shim
		dst := routing.TileLoc{Col: 0, Row: 2} // compute, straight north through memory

		Expect(inst.Route(context.Background(), src, dst, nil)).To(Succeed())
		Expect(dev.StreamEnables).To(HaveLen(3))

		// Hop 0: shim -> memory. The shim's egress is North; that is the
		// only leg the host-edge ingress special-case applies to, so its
		// recorded direction isn't part of this regression.
		shimHop := dev.StreamEnables[0]
		Expect(shimHop.MasterDir).To(Equal(int(routing.North)))

		// Hop 1: memory tile. It must be entered from the South side
		// (the shim sits below it), not North -- the bug carried the
		// previous hop's egress direction forward unchanged instead of
		// flipping it.
		memHop := dev.StreamEnables[1]
		Expect(memHop.SlaveDir).To(Equal(int(routing.South)))
		Expect(memHop.MasterDir).To(Equal(int(routing.North)))

		// Terminal hop: the compute tile is likewise entered from the
		// South, since the memory tile below it is the previous hop.
		terminalHop := dev.StreamEnables[2]
		Expect(terminalHop.SlaveDir).To(Equal(int(routing.South)))
	})

	It("carries the opposite direction on a southbound route too", func() {
		src := routing.TileLoc{Col: 0, Row: 2} // compute
		dst := routing.TileLoc{Col: 0, Row: 0} // shim, straight south through memory

		Expect(inst.Route(context.Background(), src, dst, nil)).To(Succeed())
		Expect(dev.StreamEnables).To(HaveLen(3))

		memHop := dev.StreamEnables[1]
		Expect(memHop.SlaveDir).To(Equal(int(routing.North)))
		Expect(memHop.MasterDir).To(Equal(int(routing.South)))

		terminalHop := dev.StreamEnables[2]
		Expect(terminalHop.SlaveDir).To(Equal(int(routing.North)))
	})
})
