package routing

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aie-routing/routectl/config"
	"github.com/aie-routing/routectl/hardware"
)

// Instance is a Routing Instance bound to one device: the
// constraints grid plus the hardware collaborator every operation
// drives. Callers must serialise all calls against one Instance — it
// performs no internal locking.
type Instance struct {
	grid   *ConstraintGrid
	device hardware.Device
	logger *log.Logger
}

// InitRoutingHandler allocates a Routing Instance for geom bound to
// dev. logger may be nil, in which case diagnostics go to a new
// stdlib logger on stderr prefixed "routing: ", matching how other
// components here log straight to the stdlib logger.
func InitRoutingHandler(geom config.Geometry, dev hardware.Device, logger *log.Logger) (*Instance, error) {
	grid, err := NewConstraintGrid(geom)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}
	if logger == nil {
		logger = log.New(os.Stderr, "routing: ", log.LstdFlags)
	}
	return &Instance{grid: grid, device: dev, logger: logger}, nil
}

// RoutingInstanceFree releases the instance. The constraints grid is
// per-instance rather than process-global state, so there is nothing
// to release beyond letting the grid become garbage.
func (inst *Instance) RoutingInstanceFree() {
	inst.grid = nil
	inst.device = nil
}

// Grid exposes the constraints grid to collaborating packages (dma,
// diag) that need to inspect or allocate against it without the
// routing package depending on them.
func (inst *Instance) Grid() *ConstraintGrid { return inst.grid }

// Device exposes the hardware collaborator.
func (inst *Instance) Device() hardware.Device { return inst.device }

// Logger exposes the instance's diagnostic logger.
func (inst *Instance) Logger() *log.Logger { return inst.logger }

// Route discovers a legal path from src to dst, commits it against
// hardware, and records it in src's routes DB.
func (inst *Instance) Route(ctx context.Context, src, dst TileLoc, rc *RouteConstraints) error {
	if !inst.grid.InBounds(src) || !inst.grid.InBounds(dst) {
		return wrapErr("Route", src, ErrInvalidArgs)
	}

	if inst.grid.Tile(src).RoutesDB.find(dst) != nil {
		return wrapErr("Route", src, ErrAlreadyRouted)
	}

	planned, err := findShortestPath(inst.grid, src, dst, rc)
	if err != nil {
		inst.logger.Printf("Route %s->%s: %v", src, dst, err)
		return wrapErr("Route", src, err)
	}

	result, err := commitPath(ctx, inst.grid, inst.device, planned)
	if err != nil {
		inst.logger.Printf("Route %s->%s: commit failed after %d hop(s): %v",
			src, dst, result.hopsCommitted, err)
		return err
	}

	if len(planned.tiles) == 1 {
		// source == destination: no hardware touched, no route to
		// record. A later MoveData(src, dst) must still see ErrNoRoute.
		return nil
	}

	path := &RoutingPath{
		Source:      src,
		Destination: dst,
		MM2SPort:    result.mm2sPort,
		S2MMPort:    result.s2mmPort,
		Steps:       result.steps,
		state:       stateCommitted,
	}

	inst.grid.Tile(src).RoutesDB.insert(path)

	inst.autoMarkCoreExecute(src)
	inst.autoMarkCoreExecute(dst)

	return nil
}

// autoMarkCoreExecute sets CoreExecuting on compute-tile endpoints, as
// XAie_Route's tail does (SPEC_FULL §8.2).
func (inst *Instance) autoMarkCoreExecute(loc TileLoc) {
	tile := inst.grid.Tile(loc)
	if tile != nil && tile.Type == TileCompute {
		tile.CoreExecuting = true
	}
}

// DeRoute tears down the path from src to dst.
func (inst *Instance) DeRoute(ctx context.Context, src, dst TileLoc, modifyCoreConfig bool) error {
	srcTile := inst.grid.Tile(src)
	if srcTile == nil {
		return wrapErr("DeRoute", src, ErrInvalidArgs)
	}

	path := srcTile.RoutesDB.find(dst)
	if path == nil {
		return wrapErr("DeRoute", src, ErrNoRoute)
	}

	if err := deRoutePath(ctx, inst.grid, inst.device, path, modifyCoreConfig); err != nil {
		inst.logger.Printf("DeRoute %s->%s: %v", src, dst, err)
		return err
	}

	return nil
}

// FindRoute returns the committed path from src to dst, if any.
func (inst *Instance) FindRoute(src, dst TileLoc) (*RoutingPath, bool) {
	tile := inst.grid.Tile(src)
	if tile == nil {
		return nil, false
	}
	path := tile.RoutesDB.find(dst)
	return path, path != nil
}

// RoutingSwitchReset resets every non-auto-configured tile in tiles.
func (inst *Instance) RoutingSwitchReset(ctx context.Context, tiles []TileLoc) {
	routingSwitchReset(ctx, inst.grid, inst.device, tiles)
}

// SetCoreExecute marks tile's core as executable or not (SPEC_FULL
// §8.2, grounded on XAie_SetCoreExecute).
func (inst *Instance) SetCoreExecute(loc TileLoc, executing bool) error {
	tile := inst.grid.Tile(loc)
	if tile == nil || tile.Type != TileCompute {
		return wrapErr("SetCoreExecute", loc, ErrInvalidArgs)
	}
	tile.CoreExecuting = executing
	return nil
}

// Run calls CoreEnable on every tile currently marked executable,
// count times (SPEC_FULL §8.2, grounded on XAie_Run).
func (inst *Instance) Run(ctx context.Context, count int) error {
	for i := 0; i < count; i++ {
		for _, tile := range inst.grid.AllTiles() {
			if !tile.CoreExecuting {
				continue
			}
			if err := inst.device.CoreEnable(ctx, toHWTile(tile.Loc)); err != nil {
				return wrapErr("Run", tile.Loc, fmt.Errorf("%w: %v", ErrHardware, err))
			}
		}
	}
	return nil
}

// CoreWait blocks until tile's core reports done.
// There is no timeout; this matches XAie_CoreWait's do-while loop.
func (inst *Instance) CoreWait(ctx context.Context, loc TileLoc) error {
	for {
		done, err := inst.device.CoreWaitForDone(ctx, toHWTile(loc))
		if err != nil {
			return wrapErr("CoreWait", loc, fmt.Errorf("%w: %v", ErrHardware, err))
		}
		if done {
			return nil
		}
	}
}

// ConfigHostEdgeConstraints replaces a shim tile's host-edge port
// mapping tables (SPEC_FULL §8.3, grounded on
// XAie_ConfigHostEdgeConstraints). Ownership of the slices passed in
// is taken by the tile, matching the original's shallow-copy pointer
// reassignment — callers must not mutate the slices afterwards.
func (inst *Instance) ConfigHostEdgeConstraints(loc TileLoc, host2aie, aie2host []HostEdgePort) error {
	tile := inst.grid.Tile(loc)
	if tile == nil || tile.Type != TileShim {
		return wrapErr("ConfigHostEdgeConstraints", loc, ErrInvalidArgs)
	}
	tile.Host2AIE = host2aie
	tile.AIE2Host = aie2host
	return nil
}

// ResetHostEdgeConstraints restores the factory host-edge mapping on a
// shim tile (SPEC_FULL §8.3, grounded on XAie_ResetHostEdgeConstraints).
func (inst *Instance) ResetHostEdgeConstraints(loc TileLoc) error {
	tile := inst.grid.Tile(loc)
	if tile == nil || tile.Type != TileShim {
		return wrapErr("ResetHostEdgeConstraints", loc, ErrInvalidArgs)
	}
	tile.Host2AIE = defaultHost2AIE()
	tile.AIE2Host = defaultAIE2Host()
	return nil
}
