package routing

import "github.com/aie-routing/routectl/config"

// ConstraintGrid is the dense [col][row] matrix of Core Constraints
// the engine owns.
type ConstraintGrid struct {
	geom  config.Geometry
	tiles [][]*CoreConstraint // indexed [col][row]
}

// NewConstraintGrid builds the grid from device geometry, assigning a
// tile type to every (col,row) by row band and loading the initial
// masks for each tile type.
func NewConstraintGrid(geom config.Geometry) (*ConstraintGrid, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	g := &ConstraintGrid{
		geom:  geom,
		tiles: make([][]*CoreConstraint, geom.NumCols),
	}

	for col := 0; col < geom.NumCols; col++ {
		g.tiles[col] = make([]*CoreConstraint, geom.NumRows)
		for row := 0; row < geom.NumRows; row++ {
			loc := TileLoc{Col: col, Row: row}
			g.tiles[col][row] = newCoreConstraint(loc, classifyTile(geom, row))
		}
	}

	return g, nil
}

func classifyTile(geom config.Geometry, row int) TileType {
	switch {
	case row == geom.ShimRow:
		return TileShim
	case row >= geom.MemTileRowStart && row < geom.MemTileRowStart+geom.MemTileNumRows:
		return TileMemory
	default:
		return TileCompute
	}
}

func newCoreConstraint(loc TileLoc, t TileType) *CoreConstraint {
	c := &CoreConstraint{
		Loc:      loc,
		Type:     t,
		RoutesDB: newRouteList(),
	}

	switch t {
	case TileCompute:
		c.SlaveBits = [4]uint8{North: 0x0F, South: 0x3F, East: 0x0F, West: 0x0F}
		c.MasterBits = [4]uint8{North: 0x3F, South: 0x0F, East: 0x0F, West: 0x0F}
		c.MM2SState = 0x03
		c.S2MMState = 0x03
		c.BDState = 0xFFFF
		c.BDWidth = 16
		c.DirSupported = [4]bool{North: true, South: true, East: true, West: true}
	case TileMemory:
		c.SlaveBits = [4]uint8{North: 0x0F, South: 0x3F, East: 0x00, West: 0x00}
		c.MasterBits = [4]uint8{North: 0x3F, South: 0x0F, East: 0x00, West: 0x00}
		c.MM2SState = 0x3F
		c.S2MMState = 0x3F
		c.BDState = 0xFFFFFFFFFFFF
		c.BDWidth = 48
		c.DirSupported = [4]bool{North: true, South: true, East: false, West: false}
	case TileShim:
		c.SlaveBits = [4]uint8{North: 0x0F, South: 0x00, East: 0x0F, West: 0x0F}
		c.MasterBits = [4]uint8{North: 0x3F, South: 0x00, East: 0x0F, West: 0x0F}
		c.MM2SState = 0x03
		c.S2MMState = 0x03
		c.BDState = 0xFFFF
		c.BDWidth = 16
		c.DirSupported = [4]bool{North: true, South: false, East: true, West: true}
		c.Host2AIE = defaultHost2AIE()
		c.AIE2Host = defaultAIE2Host()
	}

	return c
}

// Tile returns the Core Constraint at loc, or nil if loc is out of
// bounds.
func (g *ConstraintGrid) Tile(loc TileLoc) *CoreConstraint {
	if loc.Col < 0 || loc.Col >= g.geom.NumCols {
		return nil
	}
	if loc.Row < 0 || loc.Row >= g.geom.NumRows {
		return nil
	}
	return g.tiles[loc.Col][loc.Row]
}

// InBounds reports whether loc falls within the grid.
func (g *ConstraintGrid) InBounds(loc TileLoc) bool {
	return g.Tile(loc) != nil
}

// Geometry returns the geometry the grid was built from.
func (g *ConstraintGrid) Geometry() config.Geometry {
	return g.geom
}

// AllTiles returns every tile in row-major order. Used by diagnostics
// and RoutingSwitchReset sweeps.
func (g *ConstraintGrid) AllTiles() []*CoreConstraint {
	out := make([]*CoreConstraint, 0, g.geom.NumCols*g.geom.NumRows)
	for row := 0; row < g.geom.NumRows; row++ {
		for col := 0; col < g.geom.NumCols; col++ {
			out = append(out, g.tiles[col][row])
		}
	}
	return out
}
