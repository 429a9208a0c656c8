// Package hardware defines the downstream primitives the routing
// engine calls but never implements itself: stream-switch
// configuration, shim DMA enable, DMA buffer-descriptor programming,
// core control, and device-memory access. The routing
// engine depends only on the Device interface, the way
// noc/networking/switching/switches depends only on
// noc/networking/routing.Table and noc/networking/arbitration.Arbiter
// rather than a concrete switch.
package hardware

import "context"

// Addr is a device-memory address as seen by a BD.
type Addr uint64

// TileLoc mirrors routing.TileLoc without importing the routing
// package, keeping hardware free of a dependency on its own caller.
type TileLoc struct {
	Col int
	Row int
}

// BDConfig is the set of fields a buffer descriptor is programmed
// with.
type BDConfig struct {
	Addr      Addr
	Length    int
	FromMem   bool // true: address resolved via mem instance at offset 0
	MemHandle int  // valid only when FromMem
}

// Device is the hardware collaborator the routing engine drives. A
// production implementation talks to real silicon or a simulator;
// Null and the generated mock (see mock_device.go) back tests.
type Device interface {
	// StreamConnectEnable wires slavePort@slaveDir to masterPort@masterDir
	// on tile's stream switch.
	StreamConnectEnable(ctx context.Context, tile TileLoc, slaveDir int, slavePort int, masterDir int, masterPort int) error
	// StreamConnectDisable is the inverse of StreamConnectEnable.
	StreamConnectDisable(ctx context.Context, tile TileLoc, slaveDir int, slavePort int, masterDir int, masterPort int) error
	// StreamConnectDisableSilent behaves like StreamConnectDisable but
	// never returns an error, even for an invalid tuple (used by
	// RoutingSwitchReset's sweep).
	StreamConnectDisableSilent(ctx context.Context, tile TileLoc, slaveDir int, slavePort int, masterDir int, masterPort int)

	EnableShimDMAToAIE(ctx context.Context, tile TileLoc, port int) error
	EnableAIEToShimDMA(ctx context.Context, tile TileLoc, port int) error

	DMADescInit(ctx context.Context, tile TileLoc, bd int) error
	DMASetAddrLen(ctx context.Context, tile TileLoc, bd int, addr Addr, length int) error
	DMASetAddrOffsetLen(ctx context.Context, tile TileLoc, bd int, memHandle int, offset int, length int) error
	DMAEnableBD(ctx context.Context, tile TileLoc, bd int) error
	DMAWriteBD(ctx context.Context, tile TileLoc, bd int) error
	DMAChannelPushBDToQueue(ctx context.Context, tile TileLoc, channel int, isMM2S bool, bd int) error
	DMAChannelEnable(ctx context.Context, tile TileLoc, channel int, isMM2S bool) error
	DMAPendingBDCount(ctx context.Context, tile TileLoc, channel int, isMM2S bool) (int, error)

	CoreEnable(ctx context.Context, tile TileLoc) error
	CoreWaitForDone(ctx context.Context, tile TileLoc) (bool, error)

	MemAllocate(ctx context.Context, size int) (int, error)
	MemGetDevAddr(ctx context.Context, memHandle int) (Addr, error)
	MemSyncForCPU(ctx context.Context, memHandle int) error
	MemSyncForDev(ctx context.Context, memHandle int) error

	DataMemBlockRead(ctx context.Context, addr Addr, buf []byte) error
	DataMemBlockWrite(ctx context.Context, addr Addr, buf []byte) error

	// BackendKind reports the transport in use. Consulted in exactly
	// one place: shim-tile BD address encoding.
	BackendKind() BackendKind
}

// BackendKind identifies the transport used to reach device memory.
type BackendKind int

const (
	BackendOther BackendKind = iota
	BackendBareMetal
	BackendSocket
)
