package routing

import (
	"context"
	"fmt"

	"github.com/aie-routing/routectl/hardware"
)

func toHWTile(loc TileLoc) hardware.TileLoc {
	return hardware.TileLoc{Col: loc.Col, Row: loc.Row}
}

// commitResult carries enough information back from commitPath for the
// caller to build a RoutingPath and, on partial failure, to know how
// many hops were actually committed. No rollback is performed on
// partial failure (see DESIGN.md open question 1).
type commitResult struct {
	steps        []RoutingStep
	mm2sPort     int
	s2mmPort     int
	hopsCommitted int
}

// commitPath is the Route Committer. It walks the
// planner's path in order, allocating and enabling one switch
// connection per tile, and returns the resulting step chain.
func commitPath(ctx context.Context, g *ConstraintGrid, dev hardware.Device, path *plannedPath) (*commitResult, error) {
	res := &commitResult{}

	if len(path.tiles) == 1 {
		// source == destination: empty path, hardware untouched.
		return res, nil
	}

	// lastDir/lastPort carry the previous tile's egress port *as seen
	// from the next tile*: the direction pointing back at the tile just
	// configured, which is this tile's physical ingress (slave) side.
	var lastDir Direction
	var lastPort int

	n := len(path.tiles)
	for i := 0; i < n-1; i++ {
		loc := path.tiles[i]
		tile := g.Tile(loc)
		fwdDir := path.dirs[i]

		var slaveDir Direction
		switch {
		case i == 0 && tile.Type != TileShim:
			slaveDir = DMA
		case i == 0 && tile.Type == TileShim:
			slaveDir = South
		default:
			slaveDir = lastDir
		}
		masterDir := fwdDir

		srcPort := firstFreePort(tile, slaveDir, false)
		if srcPort == noPort {
			return res, wrapErr("Route", loc, fmt.Errorf("%w: no free %v port", ErrNoAvailablePort, slaveDir))
		}

		nextTile := g.Tile(path.tiles[i+1])
		destPort := firstMatchingPort(tile, nextTile, masterDir)
		if destPort == noPort {
			return res, wrapErr("Route", loc, fmt.Errorf("%w: no matching %v port towards %v", ErrNoAvailablePort, masterDir, path.tiles[i+1]))
		}

		if err := dev.StreamConnectEnable(ctx, toHWTile(loc), int(slaveDir), srcPort, int(masterDir), destPort); err != nil {
			return res, wrapErr("Route", loc, fmt.Errorf("%w: %v", ErrHardware, err))
		}

		claimSlaveSide(tile, slaveDir, srcPort, false)
		claimPort(tile, masterDir, Master, destPort)

		if tile.Type == TileShim && i == 0 {
			if err := dev.EnableShimDMAToAIE(ctx, toHWTile(loc), srcPort); err != nil {
				return res, wrapErr("Route", loc, fmt.Errorf("%w: %v", ErrHardware, err))
			}
			markHostEdgeUnavailable(tile.Host2AIE, srcPort)
		}

		if i == 0 {
			res.mm2sPort = srcPort
		}

		res.steps = append(res.steps, RoutingStep{
			SourceTile:      loc,
			SourcePort:      srcPort,
			DestPort:        destPort,
			SourceDirection: slaveDir,
			DestDirection:   masterDir,
		})
		res.hopsCommitted++

		tile.AutoConfigured = true
		lastDir = masterDir.Opposite()
		lastPort = destPort
	}

	// Terminal tile.
	terminalLoc := path.tiles[n-1]
	terminal := g.Tile(terminalLoc)

	destDir := DMA
	if terminal.Type == TileShim {
		destDir = South
	}

	destPort := firstFreePort(terminal, destDir, true)
	if destPort == noPort {
		return res, wrapErr("Route", terminalLoc, fmt.Errorf("%w: no free terminal %v port", ErrNoAvailablePort, destDir))
	}

	if err := dev.StreamConnectEnable(ctx, toHWTile(terminalLoc), int(lastDir), lastPort, int(destDir), destPort); err != nil {
		return res, wrapErr("Route", terminalLoc, fmt.Errorf("%w: %v", ErrHardware, err))
	}

	claimPort(terminal, lastDir, Master, lastPort)
	claimSlaveSide(terminal, destDir, destPort, true)

	if terminal.Type == TileShim {
		if err := dev.EnableAIEToShimDMA(ctx, toHWTile(terminalLoc), destPort); err != nil {
			return res, wrapErr("Route", terminalLoc, fmt.Errorf("%w: %v", ErrHardware, err))
		}
		markHostEdgeUnavailable(terminal.AIE2Host, destPort)
	}

	res.s2mmPort = destPort
	res.steps = append(res.steps, RoutingStep{
		SourceTile:      terminalLoc,
		SourcePort:      lastPort,
		DestPort:        destPort,
		SourceDirection: lastDir,
		DestDirection:   destDir,
	})
	res.hopsCommitted++
	terminal.AutoConfigured = true

	return res, nil
}

// claimSlaveSide claims the appropriate bit for a slave-side
// allocation, dispatching to the slave byte, the mm2s/s2mm state, or
// the host-edge list depending on dir (mirrors firstFreePort's
// dispatch). isEndTile selects s2mm over mm2s for the DMA case, the
// same way it selects aie2host over host2aie in firstFreePort.
func claimSlaveSide(c *CoreConstraint, dir Direction, port int, isEndTile bool) {
	switch {
	case c.Type == TileShim && dir == South:
		// host-edge claiming is done by the caller via
		// markHostEdgeUnavailable once the whole hop (including the
		// shim-DMA enable call) succeeds.
	case dir == DMA:
		if isEndTile {
			claimS2MM(c, port)
		} else {
			claimMM2S(c, port)
		}
	default:
		claimPort(c, dir, Slave, port)
	}
}
