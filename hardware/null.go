package hardware

import (
	"context"
	"sync"
)

// Null is a no-op Device that records every call it receives. It
// backs unit tests that only care about control flow, not real
// hardware side effects, alongside the generated MockDevice for tests
// that need call-by-call expectations instead.
type Null struct {
	mu sync.Mutex

	StreamEnables  []StreamCall
	StreamDisables []StreamCall

	pendingBD map[pendingKey]int
	bdContent map[pendingKey][]byte

	Backend BackendKind
}

// StreamCall records one stream_connect_{enable,disable} invocation.
type StreamCall struct {
	Tile                   TileLoc
	SlaveDir, SlavePort    int
	MasterDir, MasterPort  int
}

type pendingKey struct {
	Tile    TileLoc
	Channel int
	MM2S    bool
}

// NewNull returns a ready-to-use Null fake.
func NewNull() *Null {
	return &Null{
		pendingBD: map[pendingKey]int{},
		bdContent: map[pendingKey][]byte{},
	}
}

func (n *Null) StreamConnectEnable(_ context.Context, tile TileLoc, slaveDir, slavePort, masterDir, masterPort int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.StreamEnables = append(n.StreamEnables, StreamCall{tile, slaveDir, slavePort, masterDir, masterPort})
	return nil
}

func (n *Null) StreamConnectDisable(_ context.Context, tile TileLoc, slaveDir, slavePort, masterDir, masterPort int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.StreamDisables = append(n.StreamDisables, StreamCall{tile, slaveDir, slavePort, masterDir, masterPort})
	return nil
}

func (n *Null) StreamConnectDisableSilent(ctx context.Context, tile TileLoc, slaveDir, slavePort, masterDir, masterPort int) {
	_ = n.StreamConnectDisable(ctx, tile, slaveDir, slavePort, masterDir, masterPort)
}

func (n *Null) EnableShimDMAToAIE(context.Context, TileLoc, int) error { return nil }
func (n *Null) EnableAIEToShimDMA(context.Context, TileLoc, int) error { return nil }

func (n *Null) DMADescInit(context.Context, TileLoc, int) error { return nil }

func (n *Null) DMASetAddrLen(_ context.Context, _ TileLoc, _ int, _ Addr, _ int) error {
	return nil
}

func (n *Null) DMASetAddrOffsetLen(_ context.Context, _ TileLoc, _ int, _ int, _ int, _ int) error {
	return nil
}

func (n *Null) DMAEnableBD(context.Context, TileLoc, int) error { return nil }
func (n *Null) DMAWriteBD(context.Context, TileLoc, int) error  { return nil }

func (n *Null) DMAChannelPushBDToQueue(_ context.Context, tile TileLoc, channel int, isMM2S bool, _ int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pendingBD[pendingKey{tile, channel, isMM2S}]++
	return nil
}

func (n *Null) DMAChannelEnable(_ context.Context, tile TileLoc, channel int, isMM2S bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	key := pendingKey{tile, channel, isMM2S}
	if n.pendingBD[key] > 0 {
		n.pendingBD[key]--
	}
	return nil
}

func (n *Null) DMAPendingBDCount(_ context.Context, tile TileLoc, channel int, isMM2S bool) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pendingBD[pendingKey{tile, channel, isMM2S}], nil
}

func (n *Null) CoreEnable(context.Context, TileLoc) error { return nil }

func (n *Null) CoreWaitForDone(context.Context, TileLoc) (bool, error) { return true, nil }

func (n *Null) MemAllocate(_ context.Context, size int) (int, error) { return size, nil }
func (n *Null) MemGetDevAddr(_ context.Context, memHandle int) (Addr, error) {
	return Addr(memHandle), nil
}
func (n *Null) MemSyncForCPU(context.Context, int) error { return nil }
func (n *Null) MemSyncForDev(context.Context, int) error { return nil }

func (n *Null) DataMemBlockRead(_ context.Context, addr Addr, buf []byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	src := n.bdContent[pendingKey{Channel: int(addr)}]
	copy(buf, src)
	return nil
}

func (n *Null) DataMemBlockWrite(_ context.Context, addr Addr, buf []byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	cp := append([]byte(nil), buf...)
	n.bdContent[pendingKey{Channel: int(addr)}] = cp
	return nil
}

func (n *Null) BackendKind() BackendKind { return n.Backend }
