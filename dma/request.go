// Package dma implements the MoveData / BD allocator / DMA driver: it
// reserves buffer descriptors on the endpoints of a committed route,
// programs DMA descriptors, pushes them onto MM2S/S2MM channels, and
// optionally waits for completion.
package dma

import (
	"github.com/aie-routing/routectl/hardware"
	"github.com/aie-routing/routectl/routing"
	"github.com/rs/xid"
)

// DataObject is one endpoint of a transfer: either a raw device
// address or a handle into a mem instance at some offset, mirroring
// the "address-from-pointer vs address-from-mem-instance" distinction
// the original driver makes for shim tiles.
type DataObject struct {
	Addr      hardware.Addr
	MemHandle int
	Offset    int
	FromMem   bool
}

// MoveRequest is one MoveData invocation, grounded on
// datamoving/dmrequest.go's DataMoveRequest/DataMoveRequestBuilder
// chainable-builder idiom. ID generation uses github.com/rs/xid, the
// same package trace.Event rows use for their IDs.
type MoveRequest struct {
	ID string

	Src    routing.TileLoc
	Dst    routing.TileLoc
	SrcObj DataObject
	DstObj DataObject
	Size   int

	// Wait, if true, blocks until the destination channel drains
	// before returning.
	Wait bool
}

// MoveRequestBuilder is a chainable, value-receiver builder, matching
// DataMoveRequestBuilder's shape.
type MoveRequestBuilder struct {
	req MoveRequest
}

// NewMoveRequestBuilder starts a new builder.
func NewMoveRequestBuilder() MoveRequestBuilder {
	return MoveRequestBuilder{req: MoveRequest{Wait: true}}
}

func (b MoveRequestBuilder) WithSrc(t routing.TileLoc) MoveRequestBuilder {
	b.req.Src = t
	return b
}

func (b MoveRequestBuilder) WithDst(t routing.TileLoc) MoveRequestBuilder {
	b.req.Dst = t
	return b
}

func (b MoveRequestBuilder) WithSrcObject(o DataObject) MoveRequestBuilder {
	b.req.SrcObj = o
	return b
}

func (b MoveRequestBuilder) WithDstObject(o DataObject) MoveRequestBuilder {
	b.req.DstObj = o
	return b
}

func (b MoveRequestBuilder) WithSize(n int) MoveRequestBuilder {
	b.req.Size = n
	return b
}

func (b MoveRequestBuilder) WithWait(wait bool) MoveRequestBuilder {
	b.req.Wait = wait
	return b
}

// Build finalises the request, generating its ID.
func (b MoveRequestBuilder) Build() MoveRequest {
	b.req.ID = xid.New().String()
	return b.req
}
