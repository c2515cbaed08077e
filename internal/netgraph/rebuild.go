package netgraph

import (
	"sort"

	"github.com/annel0/blocknetwork/internal/lattice"
	"github.com/annel0/blocknetwork/internal/logging"
	"github.com/annel0/blocknetwork/internal/vec"
)

// Rebuild discards the node/edge graph and reconstructs it from
// componentMap alone. It is the reference semantics every incremental
// mutation must stay consistent with (spec's rebuild-equivalence
// property) and the only way the registry recovers structure after a
// merge or a bulk recompute.
func (n *Network[C]) Rebuild() {
	logging.Debug("rebuild: network=%s positions=%d", n.id, len(n.componentMap))

	n.nodes = make(map[NodeID]*Node[C])
	n.edges = make(map[EdgeID]*Edge[C])
	n.nodeAt = make(map[vec.Vec3]NodeID)
	n.edgeAt = make(map[vec.Vec3]EdgeID)

	positions := make([]vec.Vec3, 0, len(n.componentMap))
	for p := range n.componentMap {
		positions = append(positions, p)
	}
	sortPositions(positions)

	nodePositions := make([]vec.Vec3, 0, len(positions))
	for _, p := range positions {
		if n.shouldBeNode(p) {
			node := newNode(p, n.componentMap[p])
			n.registerNode(node)
			nodePositions = append(nodePositions, p)
		}
	}

	visited := make(map[vec.Vec3]bool)
	seenPairs := make(map[posPair]bool)

	for _, p := range nodePositions {
		nodeID := n.nodeAt[p]
		for _, q := range lattice.Neighbors(p) {
			if _, ok := n.componentMap[q]; !ok {
				continue
			}

			if qNodeID, ok := n.nodeAt[q]; ok {
				if qNodeID == nodeID {
					continue
				}
				key := unorderedPosPair(p, q)
				if seenPairs[key] {
					continue
				}
				seenPairs[key] = true

				if n.isExtendableNode(p) && n.isExtendableNode(q) {
					n.mergeNodes(n.nodes[nodeID], n.nodes[qNodeID])
				} else {
					edge := newEdge(nodeID, qNodeID, p, q, nil, n.algebra.FromLength(0))
					n.registerEdge(edge)
				}
				continue
			}

			if visited[q] {
				continue
			}
			n.traceAndRegisterEdge(nodeID, p, q, visited)
		}
	}
}

// traceAndRegisterEdge follows a linear run of non-node positions
// starting at firstStep until it reaches a node, folding add over each
// intermediate's raw component along the way.
func (n *Network[C]) traceAndRegisterEdge(startNodeID NodeID, startPos, firstStep vec.Vec3, visited map[vec.Vec3]bool) {
	path := []vec.Vec3{}
	comp := n.algebra.FromLength(0)
	prev := startPos
	cur := firstStep

	for {
		visited[cur] = true
		path = append(path, cur)
		comp = n.algebra.Add(comp, n.componentMap[cur])

		var next vec.Vec3
		found := false
		for _, nb := range lattice.Neighbors(cur) {
			if nb == prev {
				continue
			}
			if _, ok := n.componentMap[nb]; !ok {
				continue
			}
			next = nb
			found = true
			break
		}
		if !found {
			violate("rebuild: broken intermediate chain", cur)
		}

		if endID, ok := n.nodeAt[next]; ok {
			edge := newEdge(startNodeID, endID, startPos, next, path, comp)
			n.registerEdge(edge)
			return
		}

		prev = cur
		cur = next
	}
}

type posPair struct {
	a, b vec.Vec3
}

func unorderedPosPair(p, q vec.Vec3) posPair {
	if lessPos(p, q) {
		return posPair{p, q}
	}
	return posPair{q, p}
}

func lessPos(a, b vec.Vec3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

func sortPositions(p []vec.Vec3) {
	sort.Slice(p, func(i, j int) bool { return lessPos(p[i], p[j]) })
}
