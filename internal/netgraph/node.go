package netgraph

import "github.com/annel0/blocknetwork/internal/vec"

// Node is a graph vertex covering one or more mutually adjacent lattice
// positions. A Node's lifetime is bounded by its containing Network;
// nothing outside this package mutates a Node directly.
type Node[C any] struct {
	id        NodeID
	positions []vec.Vec3
	posSet    map[vec.Vec3]struct{}
	component C
	edges     map[EdgeID]struct{}
}

func newNode[C any](p vec.Vec3, c C) *Node[C] {
	return &Node[C]{
		id:        newNodeID(),
		positions: []vec.Vec3{p},
		posSet:    map[vec.Vec3]struct{}{p: {}},
		component: c,
		edges:     make(map[EdgeID]struct{}),
	}
}

// ID returns the node's stable identifier.
func (n *Node[C]) ID() NodeID { return n.id }

// Positions returns the block positions this node covers. Callers must
// not mutate the returned slice.
func (n *Node[C]) Positions() []vec.Vec3 { return n.positions }

// Contains reports whether p is one of this node's positions.
func (n *Node[C]) Contains(p vec.Vec3) bool {
	_, ok := n.posSet[p]
	return ok
}

// Component returns the node's aggregated payload.
func (n *Node[C]) Component() C { return n.component }

// Degree returns the number of incident edges.
func (n *Node[C]) Degree() int { return len(n.edges) }

func (n *Node[C]) addPosition(p vec.Vec3) {
	n.positions = append(n.positions, p)
	n.posSet[p] = struct{}{}
}

func (n *Node[C]) removePosition(p vec.Vec3) {
	delete(n.posSet, p)
	for i, q := range n.positions {
		if q == p {
			n.positions = append(n.positions[:i], n.positions[i+1:]...)
			break
		}
	}
}

func (n *Node[C]) addEdge(id EdgeID)    { n.edges[id] = struct{}{} }
func (n *Node[C]) removeEdge(id EdgeID) { delete(n.edges, id) }
