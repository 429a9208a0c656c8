package routing

import "fmt"

// AllocateBD claims a free buffer-descriptor slot on loc for the dma
// package. Returns ErrNoBD if the tile's pool is exhausted.
func (inst *Instance) AllocateBD(loc TileLoc) (int, error) {
	tile := inst.grid.Tile(loc)
	if tile == nil {
		return 0, wrapErr("MoveData", loc, ErrInvalidArgs)
	}
	bd := findFreeBD(tile)
	if bd == noPort {
		return 0, wrapErr("MoveData", loc, ErrNoBD)
	}
	return bd, nil
}

// ReleaseBD returns BD idx to loc's free pool.
func (inst *Instance) ReleaseBD(loc TileLoc, idx int) {
	tile := inst.grid.Tile(loc)
	if tile == nil {
		return
	}
	releaseBD(tile, idx)
}

// HostEdgeChannel translates a shim tile's port to its host-edge
// channel. isEndTile selects aie2host over host2aie. Returns an error
// if loc is not a shim tile or the port is not present in the table.
func (inst *Instance) HostEdgeChannel(loc TileLoc, port int, isEndTile bool) (int, error) {
	tile := inst.grid.Tile(loc)
	if tile == nil || tile.Type != TileShim {
		return 0, wrapErr("MoveData", loc, ErrInvalidArgs)
	}
	table := tile.Host2AIE
	if isEndTile {
		table = tile.AIE2Host
	}
	ch := hostEdgeChannelForPort(table, port)
	if ch == noPort {
		return 0, wrapErr("MoveData", loc, fmt.Errorf("%w: port %d not in host-edge table", ErrInvalidArgs, port))
	}
	return ch, nil
}

// IsShim reports whether loc is a shim tile.
func (inst *Instance) IsShim(loc TileLoc) bool {
	tile := inst.grid.Tile(loc)
	return tile != nil && tile.Type == TileShim
}

// NoteChannelInUse appends channel to the tile's mm2s/s2mm in-use
// diagnostic list (SPEC_FULL §8.5).
func (inst *Instance) NoteChannelInUse(loc TileLoc, channel int, kind ChannelKind) {
	tile := inst.grid.Tile(loc)
	if tile == nil {
		return
	}
	if kind == MM2S {
		tile.MM2SInUse = append(tile.MM2SInUse, channel)
		return
	}
	tile.S2MMInUse = append(tile.S2MMInUse, channel)
}

// ClearChannelInUse removes one occurrence of channel from the tile's
// in-use diagnostic list.
func (inst *Instance) ClearChannelInUse(loc TileLoc, channel int, kind ChannelKind) {
	tile := inst.grid.Tile(loc)
	if tile == nil {
		return
	}
	list := &tile.MM2SInUse
	if kind == S2MM {
		list = &tile.S2MMInUse
	}
	for i, c := range *list {
		if c == channel {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return
		}
	}
}
