package routing

import "container/list"

// routeList is the routes database rooted at one tile: a linked list
// of RoutingPaths whose Source is that tile. It
// is implemented with container/list, the same list type
// noc/networking/switching/endpoint uses for its assembling-message
// queue, rather than a hand-rolled pointer chain.
type routeList struct {
	l *list.List
}

func newRouteList() *routeList {
	return &routeList{l: list.New()}
}

// insert adds path to the database. The caller guarantees
// path.Source == the tile that owns this routeList (invariant 3).
func (r *routeList) insert(path *RoutingPath) {
	r.l.PushBack(path)
}

// find returns the path whose Destination equals dst, or nil.
func (r *routeList) find(dst TileLoc) *RoutingPath {
	for e := r.l.Front(); e != nil; e = e.Next() {
		p := e.Value.(*RoutingPath)
		if p.Destination == dst {
			return p
		}
	}
	return nil
}

// erase removes the path whose Destination equals dst. It reports
// whether a path was found and removed.
func (r *routeList) erase(dst TileLoc) bool {
	for e := r.l.Front(); e != nil; e = e.Next() {
		p := e.Value.(*RoutingPath)
		if p.Destination == dst {
			r.l.Remove(e)
			return true
		}
	}
	return false
}

// all returns every path currently rooted at this tile, in insertion
// order. Nothing in the package calls it; the dumps report only the
// list's length.
func (r *routeList) all() []*RoutingPath {
	out := make([]*RoutingPath, 0, r.l.Len())
	for e := r.l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(*RoutingPath))
	}
	return out
}
