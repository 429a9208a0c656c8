package trace

import (
	"context"
	"fmt"
	"time"

	"github.com/aie-routing/routectl/dma"
	"github.com/aie-routing/routectl/routing"
)

// Recorder wraps a routing.Instance and dma.Mover, writing a trace
// Event for every Route/DeRoute/MoveData call. It is the seam between
// the in-memory routes DB and the persisted SQLite trace, so a route
// can be queried after the fact without walking live tile state.
type Recorder struct {
	Instance *routing.Instance
	Mover    *dma.Mover
	Sink     *SQLiteWriter
}

// NewRecorder builds a Recorder. sink may be nil, in which case events
// are dropped (useful in tests that do not care about persistence).
func NewRecorder(inst *routing.Instance, mover *dma.Mover, sink *SQLiteWriter) *Recorder {
	return &Recorder{Instance: inst, Mover: mover, Sink: sink}
}

func (r *Recorder) record(op string, src, dst routing.TileLoc, start time.Time, portSummary string, err error) {
	if r.Sink == nil {
		return
	}
	errStr := ""
	if err != nil {
		errStr = err.Error()
	}
	r.Sink.Write(Event{
		Op:        op,
		Source:    src.String(),
		Dest:      dst.String(),
		Ports:     portSummary,
		DurationS: time.Since(start).Seconds(),
		Err:       errStr,
	})
}

// Route records a Route call.
func (r *Recorder) Route(ctx context.Context, src, dst routing.TileLoc, rc *routing.RouteConstraints) error {
	start := time.Now()
	err := r.Instance.Route(ctx, src, dst, rc)

	ports := ""
	if path, ok := r.Instance.FindRoute(src, dst); ok {
		ports = fmt.Sprintf("mm2s=%d s2mm=%d hops=%d", path.MM2SPort, path.S2MMPort, len(path.Steps))
	}

	r.record("Route", src, dst, start, ports, err)
	return err
}

// DeRoute records a DeRoute call.
func (r *Recorder) DeRoute(ctx context.Context, src, dst routing.TileLoc, modifyCoreConfig bool) error {
	start := time.Now()
	err := r.Instance.DeRoute(ctx, src, dst, modifyCoreConfig)
	r.record("DeRoute", src, dst, start, "", err)
	return err
}

// MoveData records a MoveData call.
func (r *Recorder) MoveData(ctx context.Context, req dma.MoveRequest) error {
	start := time.Now()
	err := r.Mover.MoveData(ctx, req)
	r.record("MoveData", req.Src, req.Dst, start, fmt.Sprintf("size=%d", req.Size), err)
	return err
}
