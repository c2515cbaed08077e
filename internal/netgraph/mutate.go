package netgraph

import "github.com/annel0/blocknetwork/internal/vec"

// AddBlock inserts p with raw payload c and incrementally restores the
// compression/extendability invariants around it. p must not already be
// in the network.
func (n *Network[C]) AddBlock(p vec.Vec3, c C) {
	if _, ok := n.componentMap[p]; ok {
		violate("add_block: position already present", p)
	}
	n.componentMap[p] = c

	if n.shouldBeNode(p) {
		n.addBlockAsNode(p, c)
	} else {
		n.addBlockAsIntermediate(p, c)
	}

	n.hooks.fireBlockAdded(n)
	n.hooks.fireGraphUpdated(n)
}

func (n *Network[C]) addBlockAsNode(p vec.Vec3, c C) {
	node := newNode(p, c)
	n.registerNode(node)

	for _, q := range n.calculateNetworkNeighbors(p) {
		if qid, ok := n.nodeAt[q]; ok {
			qnode := n.nodes[qid]
			if n.isExtendableNode(p) && n.isExtendableNode(q) {
				node = n.mergeNodes(node, qnode)
				continue
			}
			edge := newEdge(node.id, qnode.id, p, q, nil, n.algebra.FromLength(0))
			n.registerEdge(edge)
			n.maybeCollapse(q)
			continue
		}
		if eid, ok := n.edgeAt[q]; ok {
			qNode := n.splitEdgeAt(n.edges[eid], q)
			edge := newEdge(node.id, qNode.id, p, q, nil, n.algebra.FromLength(0))
			n.registerEdge(edge)
		}
	}
}

func (n *Network[C]) addBlockAsIntermediate(p vec.Vec3, c C) {
	neighbors := n.calculateNetworkNeighbors(p)
	if len(neighbors) != 2 {
		violate("add_block: non-node position without exactly two in-network neighbors", p)
	}
	q1, q2 := neighbors[0], neighbors[1]

	n1ID, n1IsNode := n.nodeAt[q1]
	n2ID, n2IsNode := n.nodeAt[q2]

	var startID, endID NodeID
	var startPos, endPos vec.Vec3

	switch {
	case n1IsNode && n2IsNode:
		startID, startPos = n1ID, q1
		endID, endPos = n2ID, q2
	case n1IsNode && !n2IsNode:
		tip := n.splitEdgeAt(n.edges[n.edgeAt[q2]], q2)
		startID, startPos = n1ID, q1
		endID, endPos = tip.id, q2
	case !n1IsNode && n2IsNode:
		tip := n.splitEdgeAt(n.edges[n.edgeAt[q1]], q1)
		startID, startPos = tip.id, q1
		endID, endPos = n2ID, q2
	default:
		tip1 := n.splitEdgeAt(n.edges[n.edgeAt[q1]], q1)
		eid2, ok := n.edgeAt[q2]
		if !ok {
			violate("add_block: neighbor lost edge membership during split", q2)
		}
		tip2 := n.splitEdgeAt(n.edges[eid2], q2)
		startID, startPos = tip1.id, q1
		endID, endPos = tip2.id, q2
	}

	edge := newEdge(startID, endID, startPos, endPos, []vec.Vec3{p}, c)
	n.registerEdge(edge)
}

// RemoveBlock deletes p and restores the compression/extendability
// invariants around the gap it leaves. A no-op if p is not present.
func (n *Network[C]) RemoveBlock(p vec.Vec3) {
	if _, ok := n.componentMap[p]; !ok {
		return
	}

	if nodeID, ok := n.nodeAt[p]; ok {
		n.removeNodeBlock(nodeID, p)
	} else {
		n.removeIntermediateBlock(p)
	}

	n.hooks.fireBlockRemoved(n)
	n.hooks.fireGraphUpdated(n)
}

func (n *Network[C]) removeNodeBlock(nodeID NodeID, p vec.Vec3) {
	node := n.nodes[nodeID]

	if len(node.positions) > 1 {
		c := n.componentMap[p] // decided: read before delete (DESIGN.md Open Question 1)
		delete(n.componentMap, p)
		node.component = n.algebra.Del(node.component, c)
		node.removePosition(p)
		delete(n.nodeAt, p)
		for _, q := range node.positions {
			n.componentMap[q] = node.component
		}
		return
	}

	edges := make([]*Edge[C], 0, len(node.edges))
	for eid := range node.edges {
		edges = append(edges, n.edges[eid])
	}

	opposites := make(map[NodeID]struct{}, len(edges))
	for _, e := range edges {
		opposites[e.opposite(nodeID)] = struct{}{}

		if e.IsDirectLink() {
			n.deregisterEdge(e)
			continue
		}

		var tipPos vec.Vec3
		var oppID NodeID
		var oppPos vec.Vec3
		var remaining []vec.Vec3
		if e.start == nodeID {
			tipPos = e.intermediate[0]
			remaining = e.intermediate[1:]
			oppID, oppPos = e.end, e.endPos
		} else {
			tipPos = e.intermediate[len(e.intermediate)-1]
			remaining = e.intermediate[:len(e.intermediate)-1]
			oppID, oppPos = e.start, e.startPos
		}

		tipComp := n.algebra.FromLength(1)
		var edgeComp C
		if len(remaining) == 0 {
			edgeComp = n.algebra.FromLength(0)
		} else {
			edgeComp = n.algebra.Del(e.component, tipComp)
		}

		n.deregisterEdge(e)

		tipNode := newNode(tipPos, tipComp)
		n.registerNode(tipNode)
		newE := newEdge(oppID, tipNode.id, oppPos, tipPos, remaining, edgeComp)
		n.registerEdge(newE)
	}

	delete(n.componentMap, p)
	n.unregisterNode(node)

	for oppID := range opposites {
		n.maybeCollapseNode(oppID)
	}
}

func (n *Network[C]) removeIntermediateBlock(p vec.Vec3) {
	e := n.edges[n.edgeAt[p]]
	idx := indexOfPos(e.intermediate, p)
	first := e.intermediate[:idx]
	second := e.intermediate[idx+1:]

	removed := n.algebra.FromLength(1)
	remainder := n.algebra.Del(e.component, removed)

	var left, right C
	if len(first) == 0 && len(second) == 0 {
		left = n.algebra.FromLength(0)
		right = n.algebra.FromLength(0)
	} else {
		left, right = n.algebra.Partition(remainder, len(first), len(second))
	}

	startID, startPos := e.start, e.startPos
	endID, endPos := e.end, e.endPos

	n.deregisterEdge(e)
	delete(n.componentMap, p)

	if len(first) > 0 {
		tipPos := first[len(first)-1]
		inner := first[:len(first)-1]
		tipComp := n.algebra.FromLength(1)
		var edgeComp C
		if len(first) > 1 {
			edgeComp = n.algebra.Del(left, tipComp)
		} else {
			edgeComp = n.algebra.FromLength(0)
		}
		tipNode := newNode(tipPos, tipComp)
		n.registerNode(tipNode)
		newE := newEdge(startID, tipNode.id, startPos, tipPos, inner, edgeComp)
		n.registerEdge(newE)
	}

	if len(second) > 0 {
		tipPos := second[0]
		inner := second[1:]
		tipComp := n.algebra.FromLength(1)
		var edgeComp C
		if len(second) > 1 {
			edgeComp = n.algebra.Del(right, tipComp)
		} else {
			edgeComp = n.algebra.FromLength(0)
		}
		tipNode := newNode(tipPos, tipComp)
		n.registerNode(tipNode)
		newE := newEdge(tipNode.id, endID, tipPos, endPos, inner, edgeComp)
		n.registerEdge(newE)
	}

	n.maybeCollapseNode(startID)
	n.maybeCollapseNode(endID)
}
