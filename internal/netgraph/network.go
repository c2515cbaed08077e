// Package netgraph implements the compressed incremental graph over a
// 3D lattice of block positions: one Network per maximal connected
// component, holding Nodes and Edges where linear runs of pass-through
// blocks are collapsed into single multi-block Edges.
package netgraph

import (
	"fmt"

	"github.com/annel0/blocknetwork/internal/component"
	"github.com/annel0/blocknetwork/internal/lattice"
	"github.com/annel0/blocknetwork/internal/vec"
)

// Predicate reports a boolean property of a lattice position.
type Predicate func(p vec.Vec3) bool

// Network owns one maximal connected component of in-network block
// positions, along with the compressed node/edge graph over them. It is
// generic over the client-supplied attribute algebra C.
type Network[C any] struct {
	id      NetworkID
	algebra component.Algebra[C]

	isAlwaysNode     Predicate
	isExtendableNode Predicate

	hooks *Hooks[C]

	componentMap map[vec.Vec3]C
	nodes        map[NodeID]*Node[C]
	edges        map[EdgeID]*Edge[C]
	nodeAt       map[vec.Vec3]NodeID
	edgeAt       map[vec.Vec3]EdgeID
}

// New creates an empty Network. isAlwaysNode and isExtendableNode must
// not be nil; hooks may be nil.
func New[C any](algebra component.Algebra[C], isAlwaysNode, isExtendableNode Predicate, hooks *Hooks[C]) *Network[C] {
	return &Network[C]{
		id:               newNetworkID(),
		algebra:          algebra,
		isAlwaysNode:     isAlwaysNode,
		isExtendableNode: isExtendableNode,
		hooks:            hooks,
		componentMap:     make(map[vec.Vec3]C),
		nodes:            make(map[NodeID]*Node[C]),
		edges:            make(map[EdgeID]*Edge[C]),
		nodeAt:           make(map[vec.Vec3]NodeID),
		edgeAt:           make(map[vec.Vec3]EdgeID),
	}
}

// ID returns the network's stable identifier.
func (n *Network[C]) ID() NetworkID { return n.id }

// Size returns the number of block positions this network covers.
func (n *Network[C]) Size() int { return len(n.componentMap) }

// Contains reports whether p belongs to this network.
func (n *Network[C]) Contains(p vec.Vec3) bool {
	_, ok := n.componentMap[p]
	return ok
}

// Positions returns every block position this network covers, in no
// particular order.
func (n *Network[C]) Positions() []vec.Vec3 {
	out := make([]vec.Vec3, 0, len(n.componentMap))
	for p := range n.componentMap {
		out = append(out, p)
	}
	return out
}

// Nodes returns every node in this network, in no particular order.
func (n *Network[C]) Nodes() []*Node[C] {
	out := make([]*Node[C], 0, len(n.nodes))
	for _, nd := range n.nodes {
		out = append(out, nd)
	}
	return out
}

// Edges returns every edge in this network, in no particular order.
func (n *Network[C]) Edges() []*Edge[C] {
	out := make([]*Edge[C], 0, len(n.edges))
	for _, e := range n.edges {
		out = append(out, e)
	}
	return out
}

// NodeAt returns the node covering position p, if p is a node position.
func (n *Network[C]) NodeAt(p vec.Vec3) (*Node[C], bool) {
	id, ok := n.nodeAt[p]
	if !ok {
		return nil, false
	}
	return n.nodes[id], true
}

// EdgeAt returns the edge whose intermediate path contains p, if p is
// an edge-intermediate position.
func (n *Network[C]) EdgeAt(p vec.Vec3) (*Edge[C], bool) {
	id, ok := n.edgeAt[p]
	if !ok {
		return nil, false
	}
	return n.edges[id], true
}

// IsNode reports whether p is currently a node position.
func (n *Network[C]) IsNode(p vec.Vec3) bool {
	_, ok := n.nodeAt[p]
	return ok
}

// ComponentAt returns the raw per-block payload stored for p.
func (n *Network[C]) ComponentAt(p vec.Vec3) (C, bool) {
	c, ok := n.componentMap[p]
	return c, ok
}

// AbsorbRaw inserts p's raw per-block payload directly into
// componentMap without touching the node/edge graph. It exists for the
// registry's bridge-merge and bulk-recompute paths (spec §4.4), which
// populate componentMap across several source networks before calling
// Rebuild once — calling AddBlock per position there would attempt (and
// fail) incremental structural maintenance on a graph that isn't
// connected yet.
func (n *Network[C]) AbsorbRaw(p vec.Vec3, c C) {
	n.componentMap[p] = c
}

func (n *Network[C]) String() string {
	return fmt.Sprintf("Network{%s size=%d nodes=%d edges=%d}", n.id, n.Size(), len(n.nodes), len(n.edges))
}

// calculateNetworkNeighbors performs a lattice walk around p using only
// the adjacency predicate and componentMap membership — it never
// consults the node/edge graph, so it stays correct while the graph is
// mid-mutation (the moment add_block calls it, p itself is already in
// componentMap but has no node/edge yet).
func (n *Network[C]) calculateNetworkNeighbors(p vec.Vec3) []vec.Vec3 {
	var out []vec.Vec3
	for _, q := range lattice.Neighbors(p) {
		if _, ok := n.componentMap[q]; ok {
			out = append(out, q)
		}
	}
	return out
}

// networkNeighbors is the graph-aware O(degree) equivalent of
// calculateNetworkNeighbors: it walks node.edges / edge.intermediate
// directly instead of re-scanning the lattice.
func (n *Network[C]) networkNeighbors(p vec.Vec3) []vec.Vec3 {
	if id, ok := n.nodeAt[p]; ok {
		node := n.nodes[id]
		out := make([]vec.Vec3, 0, len(node.edges))
		for eid := range node.edges {
			out = append(out, n.edges[eid].stepFrom(id))
		}
		return out
	}
	if id, ok := n.edgeAt[p]; ok {
		e := n.edges[id]
		idx := indexOfPos(e.intermediate, p)
		var out []vec.Vec3
		if idx == 0 {
			out = append(out, e.startPos)
		} else {
			out = append(out, e.intermediate[idx-1])
		}
		if idx == len(e.intermediate)-1 {
			out = append(out, e.endPos)
		} else {
			out = append(out, e.intermediate[idx+1])
		}
		return out
	}
	return nil
}

// shouldBeNode implements spec's node/degree-compression rule:
// is_always_node(p) OR the in-network degree of p (via a lattice walk,
// not the graph) is not exactly 2.
func (n *Network[C]) shouldBeNode(p vec.Vec3) bool {
	return n.isAlwaysNode(p) || len(n.calculateNetworkNeighbors(p)) != 2
}

func indexOfPos(s []vec.Vec3, p vec.Vec3) int {
	for i, v := range s {
		if v == p {
			return i
		}
	}
	return -1
}
