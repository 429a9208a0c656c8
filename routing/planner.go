package routing

// plannedPath is the BFS planner's output before the committer turns
// it into a RoutingPath: an ordered list of tiles plus the direction
// used to move from each tile to the next.
type plannedPath struct {
	tiles []TileLoc
	// dirs[i] is the direction travelled from tiles[i] to tiles[i+1].
	// len(dirs) == len(tiles)-1.
	dirs []Direction
}

// neighborOrder is the fixed BFS exploration order: ties break by
// exploring neighbours in {North, South, East, West} sequence.
var neighborOrder = [4]Direction{North, South, East, West}

func neighborLoc(loc TileLoc, d Direction) TileLoc {
	switch d {
	case North:
		return TileLoc{Col: loc.Col, Row: loc.Row + 1}
	case South:
		return TileLoc{Col: loc.Col, Row: loc.Row - 1}
	case East:
		return TileLoc{Col: loc.Col + 1, Row: loc.Row}
	case West:
		return TileLoc{Col: loc.Col - 1, Row: loc.Row}
	default:
		panic("routing: neighborLoc called with non-cardinal direction")
	}
}

// findShortestPath is the BFS path planner.
func findShortestPath(g *ConstraintGrid, src, dst TileLoc, rc *RouteConstraints) (*plannedPath, error) {
	if src == dst {
		return &plannedPath{tiles: []TileLoc{src}}, nil
	}

	type predEntry struct {
		from TileLoc
		dir  Direction
	}

	visited := map[TileLoc]bool{src: true}
	pred := map[TileLoc]predEntry{}
	queue := []TileLoc{src}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		curTile := g.Tile(current)

		for _, d := range neighborOrder {
			adj := neighborLoc(current, d)
			if visited[adj] {
				continue
			}
			if !g.InBounds(adj) {
				continue
			}
			if rc.IsBlacklisted(adj) {
				continue
			}
			// A whitelist restricts traversal to whitelisted tiles
			// (and the destination, which must be reachable even if
			// a caller forgot to list it); the source is exempt.
			if rc.HasWhitelist() && adj != dst && !rc.IsWhitelisted(adj) {
				continue
			}

			adjTile := g.Tile(adj)
			// Port-availability precheck: the concrete port is chosen
			// later by the committer.
			if curTile.SlaveBits[d]&adjTile.MasterBits[d.Opposite()] == 0 {
				continue
			}

			visited[adj] = true
			pred[adj] = predEntry{from: current, dir: d}

			if adj == dst {
				// reconstruct
				tiles := []TileLoc{dst}
				dirs := []Direction{}
				cur := dst
				for cur != src {
					p := pred[cur]
					tiles = append([]TileLoc{p.from}, tiles...)
					dirs = append([]Direction{p.dir}, dirs...)
					cur = p.from
				}
				return &plannedPath{tiles: tiles, dirs: dirs}, nil
			}

			queue = append(queue, adj)
		}
	}

	return nil, ErrNoPath
}
