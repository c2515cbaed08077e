package netgraph

import "github.com/annel0/blocknetwork/internal/vec"

// registerNode inserts a freshly built node into every index.
func (n *Network[C]) registerNode(node *Node[C]) {
	n.nodes[node.id] = node
	for _, p := range node.positions {
		n.nodeAt[p] = node.id
	}
}

// unregisterNode removes a node from every index without touching its
// edges — callers are responsible for detaching those first.
func (n *Network[C]) unregisterNode(node *Node[C]) {
	for _, p := range node.positions {
		delete(n.nodeAt, p)
	}
	delete(n.nodes, node.id)
}

// registerEdge inserts a freshly built edge into every index and wires
// it onto both endpoint nodes.
func (n *Network[C]) registerEdge(e *Edge[C]) {
	n.edges[e.id] = e
	for _, p := range e.intermediate {
		n.edgeAt[p] = e.id
	}
	if node, ok := n.nodes[e.start]; ok {
		node.addEdge(e.id)
	}
	if node, ok := n.nodes[e.end]; ok {
		node.addEdge(e.id)
	}
}

// deregisterEdge removes an edge from every index and detaches it from
// both endpoint nodes.
func (n *Network[C]) deregisterEdge(e *Edge[C]) {
	for _, p := range e.intermediate {
		delete(n.edgeAt, p)
	}
	delete(n.edges, e.id)
	if node, ok := n.nodes[e.start]; ok {
		node.removeEdge(e.id)
	}
	if node, ok := n.nodes[e.end]; ok {
		node.removeEdge(e.id)
	}
}

// maybeCollapse calls collapseDegreeTwoNode on p's node if p is
// currently a non-always-node of degree exactly 2 — the post-
// normalisation step spec calls for after any structural change that
// might have demoted a node to pass-through.
func (n *Network[C]) maybeCollapse(p vec.Vec3) {
	id, ok := n.nodeAt[p]
	if !ok {
		return
	}
	node := n.nodes[id]
	if node.Degree() == 2 && !n.isAlwaysNode(p) {
		n.collapseDegreeTwoNode(node)
	}
}

// maybeCollapseNode is maybeCollapse for callers that only have a
// NodeID (the node may already have moved on from the position that
// triggered the check).
func (n *Network[C]) maybeCollapseNode(id NodeID) {
	node, ok := n.nodes[id]
	if !ok || len(node.positions) != 1 {
		return
	}
	n.maybeCollapse(node.positions[0])
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
