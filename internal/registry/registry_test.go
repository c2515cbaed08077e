package registry

import (
	"testing"

	"github.com/annel0/blocknetwork/internal/component"
	"github.com/annel0/blocknetwork/internal/netgraph"
	"github.com/annel0/blocknetwork/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func never(vec.Vec3) bool { return false }

func newCapacityRegistry() *Registry[component.Capacity] {
	return New[component.Capacity](component.CapacityAlgebra{}, never, never, nil, nil)
}

func p(x, y, z int) vec.Vec3 { return vec.Vec3{X: x, Y: y, Z: z} }

func TestOnBlockPlacedCreatesNewNetwork(t *testing.T) {
	r := newCapacityRegistry()
	alg := component.CapacityAlgebra{}

	n := r.OnBlockPlaced(p(0, 0, 0), alg.FromLength(1))
	require.NotNil(t, n)
	assert.Len(t, r.AllNetworks(), 1)
	got, ok := r.NetworkAt(p(0, 0, 0))
	require.True(t, ok)
	assert.Equal(t, n.ID(), got.ID())
}

func TestOnBlockPlacedExtendsExistingNetwork(t *testing.T) {
	r := newCapacityRegistry()
	alg := component.CapacityAlgebra{}

	first := r.OnBlockPlaced(p(0, 0, 0), alg.FromLength(1))
	second := r.OnBlockPlaced(p(1, 0, 0), alg.FromLength(1))

	assert.Equal(t, first.ID(), second.ID())
	assert.Len(t, r.AllNetworks(), 1)
	assert.Equal(t, 2, second.Size())
}

// Scenario: placing a block that touches two previously separate
// networks bridges them into one, absorbing both sides' positions.
func TestOnBlockPlacedBridgesTwoNetworks(t *testing.T) {
	r := newCapacityRegistry()
	alg := component.CapacityAlgebra{}

	left := r.OnBlockPlaced(p(0, 0, 0), alg.FromLength(1))
	right := r.OnBlockPlaced(p(2, 0, 0), alg.FromLength(1))
	require.NotEqual(t, left.ID(), right.ID())
	require.Len(t, r.AllNetworks(), 2)

	bridged := r.OnBlockPlaced(p(1, 0, 0), alg.FromLength(1))

	assert.Len(t, r.AllNetworks(), 1)
	assert.Equal(t, 3, bridged.Size())
	assert.True(t, bridged.IsNode(p(0, 0, 0)))
	assert.True(t, bridged.IsNode(p(2, 0, 0)))
	assert.False(t, bridged.IsNode(p(1, 0, 0)))
	require.Len(t, bridged.Edges(), 1)
	assert.Equal(t, 2, bridged.Edges()[0].Length())

	leftNet, ok := r.NetworkAt(p(0, 0, 0))
	require.True(t, ok)
	rightNet, ok := r.NetworkAt(p(2, 0, 0))
	require.True(t, ok)
	assert.Equal(t, bridged.ID(), leftNet.ID())
	assert.Equal(t, bridged.ID(), rightNet.ID())
}

func TestOnBlockPlacedBridgesThreeNetworks(t *testing.T) {
	r := newCapacityRegistry()
	alg := component.CapacityAlgebra{}

	r.OnBlockPlaced(p(0, 0, 0), alg.FromLength(1))
	r.OnBlockPlaced(p(2, 0, 0), alg.FromLength(1))
	r.OnBlockPlaced(p(1, 1, 0), alg.FromLength(1))
	require.Len(t, r.AllNetworks(), 3)

	bridged := r.OnBlockPlaced(p(1, 0, 0), alg.FromLength(1))

	assert.Len(t, r.AllNetworks(), 1)
	assert.Equal(t, 4, bridged.Size())
}

func TestOnBlockRemovedNoopOnUnknownPosition(t *testing.T) {
	r := newCapacityRegistry()
	assert.NotPanics(t, func() {
		r.OnBlockRemoved(p(5, 5, 5))
	})
	assert.Len(t, r.AllNetworks(), 0)
}

func TestOnBlockRemovedDestroysEmptyNetwork(t *testing.T) {
	r := newCapacityRegistry()
	alg := component.CapacityAlgebra{}

	r.OnBlockPlaced(p(0, 0, 0), alg.FromLength(1))
	require.Len(t, r.AllNetworks(), 1)

	r.OnBlockRemoved(p(0, 0, 0))

	assert.Len(t, r.AllNetworks(), 0)
	_, ok := r.NetworkAt(p(0, 0, 0))
	assert.False(t, ok)
}

// Scenario 6: a removal that disconnects a network leaves the registry
// pointing both halves at the same (now-disconnected) network until
// RecalculateNetworks is run; after that it's split into two.
func TestRecalculateNetworksSplitsDisconnectedNetwork(t *testing.T) {
	r := newCapacityRegistry()
	alg := component.CapacityAlgebra{}

	for _, pos := range []vec.Vec3{p(0, 0, 0), p(1, 0, 0), p(2, 0, 0)} {
		r.OnBlockPlaced(pos, alg.FromLength(1))
	}
	require.Len(t, r.AllNetworks(), 1)

	r.OnBlockRemoved(p(1, 0, 0))
	require.Len(t, r.AllNetworks(), 1)

	r.RecalculateNetworks(func(vec.Vec3) component.Capacity { return alg.FromLength(1) })

	assert.Len(t, r.AllNetworks(), 2)
	leftNet, ok := r.NetworkAt(p(0, 0, 0))
	require.True(t, ok)
	rightNet, ok := r.NetworkAt(p(2, 0, 0))
	require.True(t, ok)
	assert.NotEqual(t, leftNet.ID(), rightNet.ID())
	assert.Equal(t, 1, leftNet.Size())
	assert.Equal(t, 1, rightNet.Size())
}

func TestClearTearsDownAllNetworks(t *testing.T) {
	r := newCapacityRegistry()
	alg := component.CapacityAlgebra{}

	r.OnBlockPlaced(p(0, 0, 0), alg.FromLength(1))
	r.OnBlockPlaced(p(5, 5, 5), alg.FromLength(1))
	require.Len(t, r.AllNetworks(), 2)

	var destroyed int
	r.hooks = &Hooks[component.Capacity]{
		OnNetworkDestroyed: func(n *netgraph.Network[component.Capacity]) { destroyed++ },
	}
	r.Clear()

	assert.Equal(t, 2, destroyed)
	assert.Len(t, r.AllNetworks(), 0)
	_, ok := r.NetworkAt(p(0, 0, 0))
	assert.False(t, ok)
}
