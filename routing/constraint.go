package routing

// HostEdgePort is one entry of a shim tile's host-edge port/channel
// mapping table.
type HostEdgePort struct {
	Port      int
	Channel   int
	Available bool
}

// defaultHost2AIE and defaultAIE2Host are the factory host-edge
// mappings every shim tile starts with.
func defaultHost2AIE() []HostEdgePort {
	return []HostEdgePort{
		{Port: 3, Channel: 0, Available: true},
		{Port: 7, Channel: 1, Available: true},
	}
}

func defaultAIE2Host() []HostEdgePort {
	return []HostEdgePort{
		{Port: 2, Channel: 0, Available: true},
		{Port: 3, Channel: 1, Available: true},
	}
}

// CoreConstraint is the per-tile state the engine maintains: port and
// BD availability bit-vectors, host-edge mappings, and the routes
// rooted at this tile. It is the single most important entity in
// this package.
type CoreConstraint struct {
	Loc  TileLoc
	Type TileType

	AutoConfigured bool
	CoreExecuting  bool

	// Port-availability bit-vectors, one byte each. Bit i == 1 means
	// port i is free. Indexed by Direction (North..West); the DMA
	// index is unused here, the dma/shim analogues are the fields
	// below.
	SlaveBits  [4]uint8
	MasterBits [4]uint8

	// Endpoint-DMA port availability.
	MM2SState     uint8
	S2MMState     uint8
	ShimMM2SState uint8
	ShimS2MMState uint8

	// BDState is a 16-bit (compute/shim) or 48-bit (memory) free mask
	// for BD slots. Stored in a uint64 regardless of width; BDWidth
	// says how many low bits are meaningful.
	BDState uint64
	BDWidth int

	Host2AIE []HostEdgePort
	AIE2Host []HostEdgePort

	RoutesDB *routeList

	MM2SInUse []int
	S2MMInUse []int

	// DirSupported is a four-bit feature mask, one bit per cardinal
	// direction (North..West); memory tiles expose only N/S.
	DirSupported [4]bool
}

// RouteConstraints is the optional input to Route: a blacklist and a
// whitelist of tiles the path must avoid/include.
type RouteConstraints struct {
	Blacklist map[TileLoc]bool
	Whitelist map[TileLoc]bool
}

// IsBlacklisted reports whether loc is in the blacklist.
func (c *RouteConstraints) IsBlacklisted(loc TileLoc) bool {
	if c == nil || c.Blacklist == nil {
		return false
	}
	return c.Blacklist[loc]
}

// HasWhitelist reports whether a non-empty whitelist was supplied.
func (c *RouteConstraints) HasWhitelist() bool {
	return c != nil && len(c.Whitelist) > 0
}

// IsWhitelisted reports whether loc is in the whitelist.
func (c *RouteConstraints) IsWhitelisted(loc TileLoc) bool {
	if c == nil || c.Whitelist == nil {
		return false
	}
	return c.Whitelist[loc]
}
