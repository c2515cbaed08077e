package netgraph

import "github.com/annel0/blocknetwork/internal/vec"

// Edge is a path connecting two (not necessarily distinct) nodes. The
// intermediate positions are ordered from the start side to the end
// side; an empty intermediate slice denotes a direct link.
type Edge[C any] struct {
	id           EdgeID
	start, end   NodeID
	startPos     vec.Vec3
	endPos       vec.Vec3
	intermediate []vec.Vec3
	component    C
}

func newEdge[C any](start, end NodeID, startPos, endPos vec.Vec3, intermediate []vec.Vec3, c C) *Edge[C] {
	return &Edge[C]{
		id:           newEdgeID(),
		start:        start,
		end:          end,
		startPos:     startPos,
		endPos:       endPos,
		intermediate: intermediate,
		component:    c,
	}
}

// ID returns the edge's stable identifier.
func (e *Edge[C]) ID() EdgeID { return e.id }

// Start and End return the edge's two endpoint node identifiers.
func (e *Edge[C]) Start() NodeID { return e.start }
func (e *Edge[C]) End() NodeID   { return e.end }

// StartPos and EndPos return the node-side lattice positions.
func (e *Edge[C]) StartPos() vec.Vec3 { return e.startPos }
func (e *Edge[C]) EndPos() vec.Vec3   { return e.endPos }

// Intermediate returns the ordered positions strictly between the
// endpoints. Empty means a direct link. Callers must not mutate it.
func (e *Edge[C]) Intermediate() []vec.Vec3 { return e.intermediate }

// Component returns the edge's own aggregated payload (excludes the
// endpoint nodes' components).
func (e *Edge[C]) Component() C { return e.component }

// Length is the number of block-to-block segments: len(intermediate)+1.
func (e *Edge[C]) Length() int { return len(e.intermediate) + 1 }

// IsDirectLink reports whether the edge has no intermediate blocks.
func (e *Edge[C]) IsDirectLink() bool { return len(e.intermediate) == 0 }

// opposite returns the node identifier on the far side of from, or
// violates if from is neither endpoint.
func (e *Edge[C]) opposite(from NodeID) NodeID {
	switch {
	case from == e.start:
		return e.end
	case from == e.end:
		return e.start
	default:
		violate("opposite: not an endpoint")
		return NodeID{}
	}
}

// stepFrom returns the first lattice position encountered walking away
// from the node identified by from — the far endpoint's node-side
// position if this is a direct link, otherwise the nearest intermediate.
func (e *Edge[C]) stepFrom(from NodeID) vec.Vec3 {
	switch {
	case from == e.start:
		if len(e.intermediate) == 0 {
			return e.endPos
		}
		return e.intermediate[0]
	case from == e.end:
		if len(e.intermediate) == 0 {
			return e.startPos
		}
		return e.intermediate[len(e.intermediate)-1]
	default:
		violate("stepFrom: not an endpoint")
		return vec.Vec3{}
	}
}

// reversedIntermediate returns a copy of the intermediate path in
// reverse order, used when stitching edges during collapse.
func reversedIntermediate(p []vec.Vec3) []vec.Vec3 {
	out := make([]vec.Vec3, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}
