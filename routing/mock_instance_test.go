package routing_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/aie-routing/routectl/hardware"
	"github.com/aie-routing/routectl/routing"
)

// These specs exercise Route against the generated-shape MockDevice
// rather than the Null fake, asserting the exact hardware calls a
// shim-to-compute route must make (shim DMA enable on the first hop,
// ordinary stream-connect calls on the rest), the way
// switches_suite_test.go's sibling spec pins down call-by-call
// expectations on a MockEngine/MockPort pair.
var _ = Describe("Instance with a mocked Device", func() {
	var (
		ctrl *gomock.Controller
		dev  *hardware.MockDevice
		inst *routing.Instance
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		dev = hardware.NewMockDevice(ctrl)

		var err error
		inst, err = routing.InitRoutingHandler(smallGeometry(), dev, nil)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("enables the shim DMA path once per hop plus the shim DMA-to-AIE gate", func() {
		src := routing.TileLoc{Col: 0, Row: 0} // shim
		dst := routing.TileLoc{Col: 0, Row: 2} // compute, straight north through memory

		// shim(0,0) -> memory(0,1) -> compute(0,2): three tiles touched,
		// three StreamConnectEnable calls (one per hop including the
		// terminal tile's own connect into its DMA engine).
		dev.EXPECT().
			StreamConnectEnable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(3)
		dev.EXPECT().
			EnableShimDMAToAIE(gomock.Any(), hardware.TileLoc{Col: 0, Row: 0}, gomock.Any()).
			Return(nil)

		Expect(inst.Route(context.Background(), src, dst, nil)).To(Succeed())
	})

	It("surfaces a hardware error from StreamConnectEnable without panicking", func() {
		src := routing.TileLoc{Col: 0, Row: 2}
		dst := routing.TileLoc{Col: 1, Row: 2}

		dev.EXPECT().
			StreamConnectEnable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(context.DeadlineExceeded)

		err := inst.Route(context.Background(), src, dst, nil)
		Expect(err).To(MatchError(routing.ErrHardware))
	})
})
