package dma

import (
	"context"
	"fmt"

	"github.com/aie-routing/routectl/hardware"
	"github.com/aie-routing/routectl/routing"
)

// initialPendingBDCountMoveData seeds MoveData's completion poll at 1
// before the first real read, matching XAie_MoveData — this works
// only because the first hardware read overwrites the seed value
// (see DESIGN.md open question 4). Kept distinct from RouteDmaWait's
// own seed rather than unified with it.
const initialPendingBDCountMoveData = 1

// initialPendingBDCountRouteDmaWait = 5, matching XAie_RouteDmaWait's
// own (different) seed constant.
const initialPendingBDCountRouteDmaWait = 5

// Mover drives MoveData/RouteDmaWait against a routing.Instance. It
// is grounded on datamoving/datamover.go's StreamingDataMover, with
// the Tick-staged pipeline collapsed into direct sequential calls
// since the routing engine's concurrency model is single-threaded
// cooperative, not event-driven.
type Mover struct {
	Instance *routing.Instance

	// Sampler, if set, is ticked once per busy-wait poll iteration in
	// MoveData and RouteDmaWait (SPEC_FULL §6.7). Nil disables sampling.
	Sampler *UtilizationSampler
}

// NewMover returns a Mover bound to inst.
func NewMover(inst *routing.Instance) *Mover {
	return &Mover{Instance: inst}
}

// MoveData moves req.Size bytes across a committed route. It requires a committed path from
// req.Src to req.Dst to already exist in the routes DB (else
// routing.ErrNoRoute).
func (m *Mover) MoveData(ctx context.Context, req MoveRequest) error {
	path, ok := m.Instance.FindRoute(req.Src, req.Dst)
	if !ok {
		return fmt.Errorf("dma: MoveData %s->%s: %w", req.Src, req.Dst, routing.ErrNoRoute)
	}

	dev := m.Instance.Device()

	srcBD, err := m.Instance.AllocateBD(req.Src)
	if err != nil {
		return fmt.Errorf("dma: MoveData %s: %w", req.Src, err)
	}
	dstBD, err := m.Instance.AllocateBD(req.Dst)
	if err != nil {
		m.Instance.ReleaseBD(req.Src, srcBD)
		return fmt.Errorf("dma: MoveData %s: %w", req.Dst, err)
	}

	if err := m.programDescriptor(ctx, req.Src, srcBD, req.SrcObj, req.Size); err != nil {
		m.releaseBoth(req, srcBD, dstBD)
		return err
	}
	if err := m.programDescriptor(ctx, req.Dst, dstBD, req.DstObj, req.Size); err != nil {
		m.releaseBoth(req, srcBD, dstBD)
		return err
	}

	if err := dev.DMAEnableBD(ctx, toHW(req.Src), srcBD); err != nil {
		m.releaseBoth(req, srcBD, dstBD)
		return dmaErr(req.Src, err)
	}
	if err := dev.DMAWriteBD(ctx, toHW(req.Src), srcBD); err != nil {
		m.releaseBoth(req, srcBD, dstBD)
		return dmaErr(req.Src, err)
	}
	if err := dev.DMAEnableBD(ctx, toHW(req.Dst), dstBD); err != nil {
		m.releaseBoth(req, srcBD, dstBD)
		return dmaErr(req.Dst, err)
	}
	if err := dev.DMAWriteBD(ctx, toHW(req.Dst), dstBD); err != nil {
		m.releaseBoth(req, srcBD, dstBD)
		return dmaErr(req.Dst, err)
	}

	srcChannel, err := m.resolveChannel(req.Src, path.MM2SPort, false)
	if err != nil {
		m.releaseBoth(req, srcBD, dstBD)
		return err
	}
	dstChannel, err := m.resolveChannel(req.Dst, path.S2MMPort, true)
	if err != nil {
		m.releaseBoth(req, srcBD, dstBD)
		return err
	}

	if err := dev.DMAChannelPushBDToQueue(ctx, toHW(req.Src), srcChannel, true, srcBD); err != nil {
		m.releaseBoth(req, srcBD, dstBD)
		return dmaErr(req.Src, err)
	}
	if err := dev.DMAChannelEnable(ctx, toHW(req.Src), srcChannel, true); err != nil {
		m.releaseBoth(req, srcBD, dstBD)
		return dmaErr(req.Src, err)
	}
	m.Instance.NoteChannelInUse(req.Src, srcChannel, routing.MM2S)

	if err := dev.DMAChannelPushBDToQueue(ctx, toHW(req.Dst), dstChannel, false, dstBD); err != nil {
		m.releaseBoth(req, srcBD, dstBD)
		return dmaErr(req.Dst, err)
	}
	if err := dev.DMAChannelEnable(ctx, toHW(req.Dst), dstChannel, false); err != nil {
		m.releaseBoth(req, srcBD, dstBD)
		return dmaErr(req.Dst, err)
	}
	// the destination-channel tracking list records the destination
	// channel id; the original driver's equivalent list appends the
	// source channel id by what looks like a copy-paste bug (DESIGN.md
	// open question 5) — not reproduced here.
	m.Instance.NoteChannelInUse(req.Dst, dstChannel, routing.S2MM)

	path.MarkInUse()

	if req.Wait {
		pending := initialPendingBDCountMoveData
		for pending != 0 {
			var err error
			pending, err = dev.DMAPendingBDCount(ctx, toHW(req.Dst), dstChannel, false)
			if err != nil {
				return dmaErr(req.Dst, err)
			}
			if m.Sampler != nil {
				m.Sampler.Tick()
			}
		}
	}

	m.Instance.ClearChannelInUse(req.Src, srcChannel, routing.MM2S)
	m.Instance.ClearChannelInUse(req.Dst, dstChannel, routing.S2MM)
	m.Instance.ReleaseBD(req.Src, srcBD)
	m.Instance.ReleaseBD(req.Dst, dstBD)

	return nil
}

// RouteDmaWait waits for a specific route's S2MM channel to drain
// without issuing a fresh MoveData call (SPEC_FULL §8.4, grounded on
// XAie_RouteDmaWait).
func (m *Mover) RouteDmaWait(ctx context.Context, src, dst routing.TileLoc) error {
	path, ok := m.Instance.FindRoute(src, dst)
	if !ok {
		return fmt.Errorf("dma: RouteDmaWait %s->%s: %w", src, dst, routing.ErrNoRoute)
	}

	dstChannel, err := m.resolveChannel(dst, path.S2MMPort, true)
	if err != nil {
		return err
	}

	dev := m.Instance.Device()
	pending := initialPendingBDCountRouteDmaWait
	for pending != 0 {
		pending, err = dev.DMAPendingBDCount(ctx, toHW(dst), dstChannel, false)
		if err != nil {
			return dmaErr(dst, err)
		}
		if m.Sampler != nil {
			m.Sampler.Tick()
		}
	}

	return nil
}

func (m *Mover) releaseBoth(req MoveRequest, srcBD, dstBD int) {
	m.Instance.ReleaseBD(req.Src, srcBD)
	m.Instance.ReleaseBD(req.Dst, dstBD)
}

// resolveChannel resolves a tile's channel ID for a move: for shim
// tiles it translates the port to the host-edge channel, otherwise
// the switch port number is the channel.
func (m *Mover) resolveChannel(loc routing.TileLoc, port int, isEndTile bool) (int, error) {
	if m.Instance.IsShim(loc) {
		return m.Instance.HostEdgeChannel(loc, port, isEndTile)
	}
	return port, nil
}

// programDescriptor initialises and addresses one endpoint's DMA
// descriptor: for shim tiles on a bare-metal or
// socket back-end, set address-from-pointer; otherwise set
// address-from-mem-instance at offset 0. Non-shim tiles always use
// address-from-pointer.
func (m *Mover) programDescriptor(ctx context.Context, loc routing.TileLoc, bd int, obj DataObject, size int) error {
	dev := m.Instance.Device()

	if err := dev.DMADescInit(ctx, toHW(loc), bd); err != nil {
		return dmaErr(loc, err)
	}

	useMem := obj.FromMem
	if m.Instance.IsShim(loc) {
		backend := dev.BackendKind()
		useMem = backend != hardware.BackendBareMetal && backend != hardware.BackendSocket
	} else {
		useMem = false
	}

	if useMem {
		if err := dev.DMASetAddrOffsetLen(ctx, toHW(loc), bd, obj.MemHandle, obj.Offset, size); err != nil {
			return dmaErr(loc, err)
		}
		return nil
	}

	if err := dev.DMASetAddrLen(ctx, toHW(loc), bd, obj.Addr, size); err != nil {
		return dmaErr(loc, err)
	}
	return nil
}

func toHW(loc routing.TileLoc) hardware.TileLoc {
	return hardware.TileLoc{Col: loc.Col, Row: loc.Row}
}

func dmaErr(loc routing.TileLoc, err error) error {
	return fmt.Errorf("dma: %s: %w: %v", loc, routing.ErrHardware, err)
}
