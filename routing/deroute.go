package routing

import (
	"context"
	"fmt"

	"github.com/aie-routing/routectl/hardware"
)

// deRoutePath is the Route Remover. It walks the path's
// steps in order, disables each switch connection, returns the ports
// to the free pool, and frees the path from the routes DB.
//
// The claim/release sides are not symmetric across steps: on every
// step but the last, SourceDirection/SourcePort was claimed as the
// slave (or mm2s/host-edge) side and DestDirection/DestPort as the
// master side; on the last step this flips, matching commitPath's
// terminal-tile handling, which also swaps master/slave roles there.
func deRoutePath(ctx context.Context, g *ConstraintGrid, dev hardware.Device, path *RoutingPath, modifyCoreConfig bool) error {
	n := len(path.Steps)
	for i, step := range path.Steps {
		tile := g.Tile(step.SourceTile)
		isLast := i == n-1

		if err := dev.StreamConnectDisable(ctx, toHWTile(step.SourceTile),
			int(step.SourceDirection), step.SourcePort,
			int(step.DestDirection), step.DestPort); err != nil {
			return wrapErr("DeRoute", step.SourceTile, fmt.Errorf("%w: %v", ErrHardware, err))
		}

		if isLast {
			releasePort(tile, step.SourceDirection, Master, step.SourcePort)
			// this tile is the route's destination: its DMA-side bit
			// is s2mm, its host-edge list is aie2host.
			releaseSlaveSide(tile, step.DestDirection, step.DestPort, false)
		} else {
			// only the very first step's slave side can be DMA/South;
			// this tile is then the route's source: mm2s / host2aie.
			releaseSlaveSide(tile, step.SourceDirection, step.SourcePort, true)
			releasePort(tile, step.DestDirection, Master, step.DestPort)
		}

		if tile.Type == TileShim {
			if i == 0 && step.SourceDirection == South {
				markHostEdgeAvailable(tile.Host2AIE, step.SourcePort)
			}
			if isLast && step.DestDirection == South {
				markHostEdgeAvailable(tile.AIE2Host, step.DestPort)
			}
		}
	}

	if modifyCoreConfig {
		dst := g.Tile(path.Destination)
		if dst != nil && dst.Type == TileCompute {
			dst.CoreExecuting = false
		}
	}

	src := g.Tile(path.Source)
	src.RoutesDB.erase(path.Destination)
	path.state = stateDecommitted

	return nil
}

// releaseSlaveSide is the inverse of claimSlaveSide. isSourceSide is
// true when releasing the route's source-tile DMA/host-edge side
// (mm2s / host2aie), false for the destination-tile side (s2mm /
// aie2host).
func releaseSlaveSide(c *CoreConstraint, dir Direction, port int, isSourceSide bool) {
	switch {
	case c.Type == TileShim && dir == South:
		// host-edge release handled by the caller, which knows
		// whether this is the host2aie or aie2host side.
	case dir == DMA:
		if isSourceSide {
			releaseMM2S(c, port)
		} else {
			releaseS2MM(c, port)
		}
	default:
		releasePort(c, dir, Slave, port)
	}
}
