package routing

// firstFreePort scans for the first free port in one of three
// shapes. direction is
// either a cardinal direction (scan the tile's slave byte for that
// direction), DMA (scan mm2s_state if !isEndTile, else s2mm_state), or
// South on a shim tile (consult host2aie_ports if !isEndTile, else
// aie2host_ports — the shim's external host-edge marker). isEndTile
// selects which side of an endpoint pair this call concerns.
func firstFreePort(c *CoreConstraint, direction Direction, isEndTile bool) int {
	if c.Type == TileShim && direction == South {
		if isEndTile {
			return firstFreeHostEdgePort(c.AIE2Host)
		}
		return firstFreeHostEdgePort(c.Host2AIE)
	}

	if direction == DMA {
		if isEndTile {
			return firstSetBit(c.S2MMState)
		}
		return firstSetBit(c.MM2SState)
	}

	return firstSetBit(c.SlaveBits[direction])
}

func firstFreeHostEdgePort(ports []HostEdgePort) int {
	for _, p := range ports {
		if p.Available {
			return p.Port
		}
	}
	return noPort
}

// firstMatchingPort scans for a port that already matches a given
// mask: traffic
// leaves src in direction (master) and enters dst from the mirrored
// direction (slave); intersect the two bytes and return the lowest
// set bit shared by both, else noPort.
func firstMatchingPort(src, dst *CoreConstraint, direction Direction) int {
	srcMaster := src.MasterBits[direction]
	dstSlave := dst.SlaveBits[direction.Opposite()]
	common := srcMaster & dstSlave
	return firstSetBit(common)
}

// hostEdgeChannelForPort translates a host-edge port number to its
// channel via the tile's mapping table. Returns
// noPort if the port is not present in the table.
func hostEdgeChannelForPort(ports []HostEdgePort, port int) int {
	for _, p := range ports {
		if p.Port == port {
			return p.Channel
		}
	}
	return noPort
}

// markHostEdgeUnavailable flips the Available flag off for the entry
// with the given port.
func markHostEdgeUnavailable(ports []HostEdgePort, port int) {
	for i := range ports {
		if ports[i].Port == port {
			ports[i].Available = false
			return
		}
	}
}

// markHostEdgeAvailable flips the Available flag back on.
func markHostEdgeAvailable(ports []HostEdgePort, port int) {
	for i := range ports {
		if ports[i].Port == port {
			ports[i].Available = true
			return
		}
	}
}
