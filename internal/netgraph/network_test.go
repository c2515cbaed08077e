package netgraph

import (
	"testing"

	"github.com/annel0/blocknetwork/internal/component"
	"github.com/annel0/blocknetwork/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func never(vec.Vec3) bool { return false }

func newCapacityNetwork() *Network[component.Capacity] {
	return New[component.Capacity](component.CapacityAlgebra{}, never, never, nil)
}

func p(x, y, z int) vec.Vec3 { return vec.Vec3{X: x, Y: y, Z: z} }

// Scenario 1: straight line compression.
func TestStraightLineCompression(t *testing.T) {
	n := newCapacityNetwork()
	alg := component.CapacityAlgebra{}

	for _, pos := range []vec.Vec3{p(0, 0, 0), p(1, 0, 0), p(2, 0, 0), p(3, 0, 0), p(4, 0, 0)} {
		n.AddBlock(pos, alg.FromLength(1))
	}

	assert.True(t, n.IsNode(p(0, 0, 0)))
	assert.True(t, n.IsNode(p(4, 0, 0)))
	assert.False(t, n.IsNode(p(1, 0, 0)))
	assert.False(t, n.IsNode(p(2, 0, 0)))
	assert.False(t, n.IsNode(p(3, 0, 0)))
	assert.Len(t, n.Nodes(), 2)
	require.Len(t, n.Edges(), 1)

	e := n.Edges()[0]
	assert.Equal(t, 4, e.Length())
	assert.Equal(t, component.Capacity(300), e.Component())
	assert.Equal(t, []vec.Vec3{p(1, 0, 0), p(2, 0, 0), p(3, 0, 0)}, e.Intermediate())
}

// Scenario 2: T-junction formation.
func TestTJunctionFormation(t *testing.T) {
	n := newCapacityNetwork()
	alg := component.CapacityAlgebra{}

	for _, pos := range []vec.Vec3{p(0, 0, 0), p(1, 0, 0), p(2, 0, 0), p(3, 0, 0), p(4, 0, 0)} {
		n.AddBlock(pos, alg.FromLength(1))
	}
	n.AddBlock(p(2, 1, 0), alg.FromLength(1))

	assert.True(t, n.IsNode(p(0, 0, 0)))
	assert.True(t, n.IsNode(p(4, 0, 0)))
	assert.True(t, n.IsNode(p(2, 1, 0)))
	assert.True(t, n.IsNode(p(2, 0, 0)))
	assert.Len(t, n.Nodes(), 4)
	assert.Len(t, n.Edges(), 3)

	junction, ok := n.NodeAt(p(2, 0, 0))
	require.True(t, ok)
	assert.Equal(t, 3, junction.Degree())

	var sawDirectLink bool
	for _, e := range n.Edges() {
		if e.IsDirectLink() {
			sawDirectLink = true
			assert.ElementsMatch(t, []vec.Vec3{e.StartPos(), e.EndPos()}, []vec.Vec3{p(2, 1, 0), p(2, 0, 0)})
		}
	}
	assert.True(t, sawDirectLink)
}

// Scenario 3: middle removal.
func TestMiddleRemoval(t *testing.T) {
	n := newCapacityNetwork()
	alg := component.CapacityAlgebra{}

	for _, pos := range []vec.Vec3{p(0, 0, 0), p(1, 0, 0), p(2, 0, 0), p(3, 0, 0), p(4, 0, 0)} {
		n.AddBlock(pos, alg.FromLength(1))
	}

	n.RemoveBlock(p(2, 0, 0))

	assert.Len(t, n.Nodes(), 4)
	assert.Len(t, n.Edges(), 2)
	assert.True(t, n.IsNode(p(1, 0, 0)))
	assert.True(t, n.IsNode(p(3, 0, 0)))

	total := component.Capacity(0)
	for _, nd := range n.Nodes() {
		total = alg.Add(total, nd.Component())
	}
	for _, e := range n.Edges() {
		total = alg.Add(total, e.Component())
	}
	assert.Equal(t, component.Capacity(400), total)

	for _, e := range n.Edges() {
		assert.True(t, e.IsDirectLink())
	}
}

// Scenario 4: bridge-merge happens at the registry layer (two
// networks); here we exercise the equivalent single-network rebuild
// path that the registry relies on after absorbing both sides.
func TestRebuildMatchesIncrementalBridge(t *testing.T) {
	n := newCapacityNetwork()
	alg := component.CapacityAlgebra{}

	for _, pos := range []vec.Vec3{p(0, 0, 0), p(1, 0, 0), p(3, 0, 0), p(4, 0, 0)} {
		n.AddBlock(pos, alg.FromLength(1))
	}
	n.AddBlock(p(2, 0, 0), alg.FromLength(1))

	n.Rebuild()

	assert.Len(t, n.Nodes(), 2)
	require.Len(t, n.Edges(), 1)
	e := n.Edges()[0]
	assert.Equal(t, []vec.Vec3{p(1, 0, 0), p(2, 0, 0), p(3, 0, 0)}, e.Intermediate())
}

// Scenario 5: multi-block extendable node.
func TestMultiBlockExtendableNode(t *testing.T) {
	extendable := map[vec.Vec3]bool{p(0, 0, 0): true, p(1, 0, 0): true, p(0, 1, 0): true}
	isExtendable := func(pos vec.Vec3) bool { return extendable[pos] }

	n := New[component.Capacity](component.CapacityAlgebra{}, never, isExtendable, nil)
	alg := component.CapacityAlgebra{}

	n.AddBlock(p(0, 0, 0), alg.FromLength(1))
	n.AddBlock(p(1, 0, 0), alg.FromLength(1))
	n.AddBlock(p(0, 1, 0), alg.FromLength(1))

	require.Len(t, n.Nodes(), 1)
	node := n.Nodes()[0]
	assert.Len(t, node.Positions(), 3)
	assert.Equal(t, component.Capacity(300), node.Component())
	assert.Equal(t, 0, node.Degree())
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	n := newCapacityNetwork()
	alg := component.CapacityAlgebra{}

	n.AddBlock(p(0, 0, 0), alg.FromLength(1))
	n.AddBlock(p(1, 0, 0), alg.FromLength(1))
	assert.Equal(t, 2, n.Size())

	n.RemoveBlock(p(1, 0, 0))
	assert.Equal(t, 1, n.Size())
	assert.True(t, n.IsNode(p(0, 0, 0)))
	assert.Len(t, n.Edges(), 0)
}

func TestInvariantViolationOnSplitAtWrongPosition(t *testing.T) {
	n := newCapacityNetwork()
	alg := component.CapacityAlgebra{}
	for _, pos := range []vec.Vec3{p(0, 0, 0), p(1, 0, 0), p(2, 0, 0)} {
		n.AddBlock(pos, alg.FromLength(1))
	}
	e := n.Edges()[0]

	assert.Panics(t, func() {
		n.splitEdgeAt(e, p(9, 9, 9))
	})
}
