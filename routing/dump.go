package routing

import (
	"fmt"
	"strings"
)

// RoutesReveal traces src's path to dst and renders an ASCII grid,
// one line per row from the top row down, marking the source 'S', the
// destination 'D', every other tile the route crosses '*', and the
// rest '.'.
func (inst *Instance) RoutesReveal(src, dst TileLoc) (string, error) {
	path := inst.grid.Tile(src).RoutesDB.find(dst)
	if path == nil {
		return "", wrapErr("RoutesReveal", src, ErrNoRoute)
	}

	on := map[TileLoc]bool{src: true}
	for _, s := range path.Steps {
		on[s.SourceTile] = true
	}
	on[dst] = true

	geom := inst.grid.Geometry()
	var b strings.Builder
	for row := geom.NumRows - 1; row >= 0; row-- {
		for col := 0; col < geom.NumCols; col++ {
			loc := TileLoc{Col: col, Row: row}
			switch {
			case loc == src:
				b.WriteByte('S')
			case loc == dst:
				b.WriteByte('D')
			case on[loc]:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// TileDump is the JSON-friendly shape of one tile's constraints,
// used by DumpConstraintsJSON/DumpTileConstraintJSON and diag.Server
// (SPEC_FULL §8.1).
type TileDump struct {
	Loc            TileLoc  `json:"loc"`
	Type           string   `json:"type"`
	AutoConfigured bool     `json:"auto_configured"`
	CoreExecuting  bool     `json:"core_executing"`
	SlaveBits      [4]uint8 `json:"slave_bits"`
	MasterBits     [4]uint8 `json:"master_bits"`
	MM2SState      uint8    `json:"mm2s_state"`
	S2MMState      uint8    `json:"s2mm_state"`
	BDFree         int      `json:"bd_free"`
	BDWidth        int      `json:"bd_width"`
	Routes         int      `json:"routes"`
	MM2SInUse      []int    `json:"mm2s_in_use"`
	S2MMInUse      []int    `json:"s2mm_in_use"`
}

func dumpTile(c *CoreConstraint) TileDump {
	free := 0
	for i := 0; i < c.BDWidth; i++ {
		if c.BDState&(1<<uint(i)) != 0 {
			free++
		}
	}

	return TileDump{
		Loc:            c.Loc,
		Type:           c.Type.String(),
		AutoConfigured: c.AutoConfigured,
		CoreExecuting:  c.CoreExecuting,
		SlaveBits:      c.SlaveBits,
		MasterBits:     c.MasterBits,
		MM2SState:      c.MM2SState,
		S2MMState:      c.S2MMState,
		BDFree:         free,
		BDWidth:        c.BDWidth,
		Routes:         c.RoutesDB.l.Len(),
		MM2SInUse:      append([]int(nil), c.MM2SInUse...),
		S2MMInUse:      append([]int(nil), c.S2MMInUse...),
	}
}

// DumpRoutingSwitchInfo dumps per-tile masks and the number of routes
// rooted at each of tiles. The routes themselves (their steps and
// ports) are not included. Purely diagnostic.
func (inst *Instance) DumpRoutingSwitchInfo(tiles []TileLoc) []TileDump {
	out := make([]TileDump, 0, len(tiles))
	for _, loc := range tiles {
		tile := inst.grid.Tile(loc)
		if tile == nil {
			continue
		}
		out = append(out, dumpTile(tile))
	}
	return out
}

// DumpConstraintsJSON returns a TileDump for every tile in the grid
// (SPEC_FULL §8.1, grounded on XAie_dumpConstraintsToPrint).
func (inst *Instance) DumpConstraintsJSON() []TileDump {
	all := inst.grid.AllTiles()
	out := make([]TileDump, 0, len(all))
	for _, t := range all {
		out = append(out, dumpTile(t))
	}
	return out
}

// DumpTileConstraintJSON returns the TileDump for a single tile, or an
// error if loc is out of bounds (grounded on
// XAie_dumpSpecificConstraintToPrint / XAie_coreConstraintToPrint).
func (inst *Instance) DumpTileConstraintJSON(loc TileLoc) (TileDump, error) {
	tile := inst.grid.Tile(loc)
	if tile == nil {
		return TileDump{}, fmt.Errorf("%w: tile %s out of bounds", ErrInvalidArgs, loc)
	}
	return dumpTile(tile), nil
}
