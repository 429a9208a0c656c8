package routing

// State is the caller-visible lifecycle stage of a RoutingPath (spec
// §4.10): Unplanned -> Planned -> Committed -> InUse -> Decommitted.
// Planned and Failed are declared but no operation stores a path in
// either state: a path is recorded only once committed, and a Route
// that fails records no path at all.
type State int

const (
	StateUnplanned State = iota
	StatePlanned
	StateCommitted
	StateInUse
	StateDecommitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnplanned:
		return "unplanned"
	case StatePlanned:
		return "planned"
	case StateCommitted:
		return "committed"
	case StateInUse:
		return "in_use"
	case StateDecommitted:
		return "decommitted"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State reports p's current lifecycle stage.
func (p *RoutingPath) State() State {
	switch p.state {
	case statePlanned:
		return StatePlanned
	case stateCommitted:
		return StateCommitted
	case stateInUse:
		return StateInUse
	case stateDecommitted:
		return StateDecommitted
	case stateFailed:
		return StateFailed
	default:
		return StateUnplanned
	}
}

// MarkInUse transitions a committed path to InUse on its first
// MoveData call. Called by the dma package.
func (p *RoutingPath) MarkInUse() {
	if p.state == stateCommitted {
		p.state = stateInUse
	}
}
