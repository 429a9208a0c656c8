package routing

import (
	"context"

	"github.com/aie-routing/routectl/hardware"
)

// routingSwitchReset enumerates, for each non-auto-configured tile
// in tiles, every (slaveDir, slaveBit, masterDir, masterBit) tuple
// currently in use (bit cleared) and issues a silent disable so a
// spurious invalid tuple does not abort the sweep.
func routingSwitchReset(ctx context.Context, g *ConstraintGrid, dev hardware.Device, tiles []TileLoc) {
	for _, loc := range tiles {
		tile := g.Tile(loc)
		if tile == nil || tile.AutoConfigured {
			continue
		}

		for _, slaveDir := range neighborOrder {
			for bit := 0; bit < 8; bit++ {
				if portAvailable(tile, slaveDir, Slave, bit) {
					continue
				}
				for _, masterDir := range neighborOrder {
					for mbit := 0; mbit < 8; mbit++ {
						if portAvailable(tile, masterDir, Master, mbit) {
							continue
						}
						dev.StreamConnectDisableSilent(ctx, toHWTile(loc),
							int(slaveDir), bit, int(masterDir), mbit)
					}
				}
				releasePort(tile, slaveDir, Slave, bit)
			}
		}

		for _, masterDir := range neighborOrder {
			for mbit := 0; mbit < 8; mbit++ {
				if !portAvailable(tile, masterDir, Master, mbit) {
					releasePort(tile, masterDir, Master, mbit)
				}
			}
		}
	}
}
