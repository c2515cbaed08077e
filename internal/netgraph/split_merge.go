package netgraph

import (
	"github.com/annel0/blocknetwork/internal/logging"
	"github.com/annel0/blocknetwork/internal/vec"
)

// posFor returns the node-side position belonging to the endpoint
// identified by id.
func (e *Edge[C]) posFor(id NodeID) vec.Vec3 {
	if id == e.start {
		return e.startPos
	}
	return e.endPos
}

// mergeNodes absorbs drop into keep: every edge incident to drop is
// repointed at keep, drop's positions become keep's positions, and the
// merged component is algebra.Add(keep, drop). drop is discarded.
func (n *Network[C]) mergeNodes(keep, drop *Node[C]) *Node[C] {
	if keep.id == drop.id {
		return keep
	}

	logging.Debug("merge_nodes: keep=%s drop=%s", keep.id, drop.id)

	for eid := range drop.edges {
		e := n.edges[eid]
		if e.start == drop.id {
			e.start = keep.id
		}
		if e.end == drop.id {
			e.end = keep.id
		}
		keep.addEdge(eid)
	}

	for _, p := range drop.positions {
		keep.addPosition(p)
		n.nodeAt[p] = keep.id
	}

	keep.component = n.algebra.Add(keep.component, drop.component)
	for _, p := range keep.positions {
		n.componentMap[p] = keep.component
	}

	delete(n.nodes, drop.id)
	return keep
}

// collapseDegreeTwoNode removes a node that has degree 2 and is not
// always-node, splicing its two incident edges into one that runs
// through the node's former position as an ordinary intermediate block.
// A no-op if the preconditions no longer hold (defensive; every call
// site has already checked, but the check is cheap and this keeps the
// function safe to call speculatively).
func (n *Network[C]) collapseDegreeTwoNode(node *Node[C]) {
	if node.Degree() != 2 || len(node.positions) != 1 || n.isAlwaysNode(node.positions[0]) {
		return
	}

	logging.Debug("collapse_degree_two_node: node=%s pos=%v", node.id, node.positions[0])

	eids := make([]EdgeID, 0, 2)
	for id := range node.edges {
		eids = append(eids, id)
	}
	e1, e2 := n.edges[eids[0]], n.edges[eids[1]]
	// Order the pair by the lattice position each edge steps to from the
	// node, so the merged edge's orientation doesn't depend on map order.
	if lessPos(e2.stepFrom(node.id), e1.stepFrom(node.id)) {
		e1, e2 = e2, e1
	}

	a := e1.opposite(node.id)
	b := e2.opposite(node.id)

	part1 := e1.intermediate
	if e1.start != a {
		part1 = reversedIntermediate(part1)
	}
	part2 := e2.intermediate
	if e2.start != node.id {
		part2 = reversedIntermediate(part2)
	}

	merged := make([]vec.Vec3, 0, len(part1)+1+len(part2))
	merged = append(merged, part1...)
	merged = append(merged, node.positions[0])
	merged = append(merged, part2...)

	comp := n.algebra.Add(n.algebra.Add(e1.component, node.component), e2.component)
	startPos := e1.posFor(a)
	endPos := e2.posFor(b)

	n.deregisterEdge(e1)
	n.deregisterEdge(e2)
	n.unregisterNode(node)

	merged2 := newEdge(a, b, startPos, endPos, merged, comp)
	n.registerEdge(merged2)
}

// splitEdgeAt carves a new node out of E at pos, one of E's
// intermediate positions, producing two edges either side of it.
// Violates if pos is not an intermediate of E.
func (n *Network[C]) splitEdgeAt(e *Edge[C], pos vec.Vec3) *Node[C] {
	idx := indexOfPos(e.intermediate, pos)
	if idx < 0 {
		violate("split_edge_at: position not on edge", pos)
	}

	logging.Debug("split_edge_at: edge=%s pos=%v", e.id, pos)

	left := e.intermediate[:idx]
	right := e.intermediate[idx+1:]

	nodeComp := n.algebra.FromLength(1)
	remainder := n.algebra.Del(e.component, nodeComp)
	lc, rc := n.algebra.Partition(remainder, maxInt(len(left), 1), maxInt(len(right), 1))

	node := newNode(pos, nodeComp)
	n.registerNode(node)

	edge1 := newEdge(e.start, node.id, e.startPos, pos, left, lc)
	edge2 := newEdge(node.id, e.end, pos, e.endPos, right, rc)

	n.deregisterEdge(e)
	n.registerEdge(edge1)
	n.registerEdge(edge2)

	return node
}
