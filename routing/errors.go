package routing

import (
	"errors"
	"fmt"
)

// Sentinel errors forming this package's error taxonomy. Wrap with
// fmt.Errorf("%w: ...") to attach the offending tile/operation; callers
// can still match with errors.Is.
var (
	ErrInvalidArgs      = errors.New("routing: invalid arguments")
	ErrNoPath           = errors.New("routing: no path")
	ErrNoAvailablePort  = errors.New("routing: no available port")
	ErrAlreadyRouted    = errors.New("routing: already routed")
	ErrNoRoute          = errors.New("routing: no route")
	ErrNoBD             = errors.New("routing: no buffer descriptor available")
	ErrHardware         = errors.New("routing: hardware error")
	ErrAllocationFailed = errors.New("routing: allocation failure")
)

// opError wraps a sentinel error with the operation name and the tile
// it concerns, so a diagnostic line can identify both the operation
// and the offending tile coordinates.
type opError struct {
	op   string
	tile TileLoc
	err  error
}

func (e *opError) Error() string {
	return fmt.Sprintf("routing: %s at %s: %v", e.op, e.tile, e.err)
}

func (e *opError) Unwrap() error {
	return e.err
}

func wrapErr(op string, tile TileLoc, err error) error {
	if err == nil {
		return nil
	}
	return &opError{op: op, tile: tile, err: err}
}
