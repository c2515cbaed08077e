// Package registry implements the network registry / manager layer
// (spec §4.4): a position→network map spanning the whole lattice,
// routing placement/removal events to the right network, creating new
// networks for isolated placements, merging networks a new block
// bridges, and offering a full recompute entry point for bulk changes.
package registry

import (
	"fmt"
	"sort"

	"github.com/annel0/blocknetwork/internal/component"
	"github.com/annel0/blocknetwork/internal/lattice"
	"github.com/annel0/blocknetwork/internal/logging"
	"github.com/annel0/blocknetwork/internal/netgraph"
	"github.com/annel0/blocknetwork/internal/vec"
)

// ConnectedFunc is the optional connectivity filter used by the
// RecalculateNetworks flood-fill. A nil value defaults to
// lattice.Adjacent. Network.Rebuild does not consult it: it links any
// two lattice-adjacent positions of the network.
type ConnectedFunc func(a, b vec.Vec3) bool

// Registry owns the pos_to_network mapping across every network it has
// created. It is the single entry point a host feeds block
// placed/removed events into.
type Registry[C any] struct {
	algebra          component.Algebra[C]
	isAlwaysNode     netgraph.Predicate
	isExtendableNode netgraph.Predicate
	areConnected     ConnectedFunc

	hooks *Hooks[C]

	posToNetwork map[vec.Vec3]*netgraph.Network[C]
	networks     map[netgraph.NetworkID]*netgraph.Network[C]
}

// New creates an empty registry. isAlwaysNode and isExtendableNode must
// not be nil. areConnected may be nil (defaults to lattice.Adjacent);
// hooks may be nil.
func New[C any](algebra component.Algebra[C], isAlwaysNode, isExtendableNode netgraph.Predicate, areConnected ConnectedFunc, hooks *Hooks[C]) *Registry[C] {
	if areConnected == nil {
		areConnected = lattice.Adjacent
	}
	return &Registry[C]{
		algebra:          algebra,
		isAlwaysNode:     isAlwaysNode,
		isExtendableNode: isExtendableNode,
		areConnected:     areConnected,
		hooks:            hooks,
		posToNetwork:     make(map[vec.Vec3]*netgraph.Network[C]),
		networks:         make(map[netgraph.NetworkID]*netgraph.Network[C]),
	}
}

// NetworkAt returns the network owning p, if any.
func (r *Registry[C]) NetworkAt(p vec.Vec3) (*netgraph.Network[C], bool) {
	n, ok := r.posToNetwork[p]
	return n, ok
}

// ComponentAt returns the raw per-block payload stored for p.
func (r *Registry[C]) ComponentAt(p vec.Vec3) (C, bool) {
	n, ok := r.posToNetwork[p]
	if !ok {
		var zero C
		return zero, false
	}
	return n.ComponentAt(p)
}

// AllNetworks returns every active network, in no particular order.
func (r *Registry[C]) AllNetworks() []*netgraph.Network[C] {
	out := make([]*netgraph.Network[C], 0, len(r.networks))
	for _, n := range r.networks {
		out = append(out, n)
	}
	return out
}

func (r *Registry[C]) String() string {
	return fmt.Sprintf("Registry{networks=%d positions=%d}", len(r.networks), len(r.posToNetwork))
}

func (r *Registry[C]) newNetwork() *netgraph.Network[C] {
	return netgraph.New(r.algebra, r.isAlwaysNode, r.isExtendableNode, r.netgraphHooks())
}

// OnBlockPlaced routes a block-placed event to the right network,
// creating or merging networks as needed (spec §4.4).
func (r *Registry[C]) OnBlockPlaced(p vec.Vec3, c C) *netgraph.Network[C] {
	var found []*netgraph.Network[C]
	seen := make(map[netgraph.NetworkID]bool)
	for _, q := range lattice.Neighbors(p) {
		net, ok := r.posToNetwork[q]
		if !ok || seen[net.ID()] {
			continue
		}
		seen[net.ID()] = true
		found = append(found, net)
	}

	switch len(found) {
	case 0:
		n := r.newNetwork()
		n.AddBlock(p, c)
		r.posToNetwork[p] = n
		r.networks[n.ID()] = n
		r.hooks.fireNetworkCreated(n)
		return n

	case 1:
		target := found[0]
		target.AddBlock(p, c)
		r.posToNetwork[p] = target
		return target

	default:
		target := found[0]
		for _, other := range found[1:] {
			for _, q := range other.Positions() {
				comp, _ := other.ComponentAt(q)
				target.AbsorbRaw(q, comp)
				r.posToNetwork[q] = target
			}
			delete(r.networks, other.ID())
			r.hooks.fireNetworkDestroyed(other)
		}
		target.AbsorbRaw(p, c)
		r.posToNetwork[p] = target
		target.Rebuild()
		r.hooks.fireBlockAdded(target)
		r.hooks.fireGraphUpdated(target)
		return target
	}
}

// OnBlockRemoved routes a block-removed event to the owning network and
// tears the network down if it becomes empty. A no-op on an unknown
// position (spec §7).
func (r *Registry[C]) OnBlockRemoved(p vec.Vec3) {
	net, ok := r.posToNetwork[p]
	if !ok {
		logging.Warn("registry: remove_block on unknown position %v", p)
		return
	}

	delete(r.posToNetwork, p)
	net.RemoveBlock(p)

	if net.Size() == 0 {
		delete(r.networks, net.ID())
		r.hooks.fireNetworkDestroyed(net)
	}
}

// RecalculateNetworks performs a full world recompute: every position
// currently tracked is re-flood-filled into connected components via
// lattice adjacency plus the registry's connectivity filter, each
// becoming a fresh network populated from componentSource and rebuilt.
// This is the caller's answer to the split-detection caveat (spec §4.4):
// a single-block removal can silently disconnect a network, and nothing
// short of a full recompute finds that out.
func (r *Registry[C]) RecalculateNetworks(componentSource func(vec.Vec3) C) {
	universe := make(map[vec.Vec3]bool, len(r.posToNetwork))
	keys := make([]vec.Vec3, 0, len(r.posToNetwork))
	for p := range r.posToNetwork {
		universe[p] = true
		keys = append(keys, p)
	}
	sortPositions(keys)

	r.posToNetwork = make(map[vec.Vec3]*netgraph.Network[C])
	r.networks = make(map[netgraph.NetworkID]*netgraph.Network[C])

	visited := make(map[vec.Vec3]bool, len(keys))
	for _, start := range keys {
		if visited[start] {
			continue
		}

		group := r.floodFill(start, universe, visited)
		n := r.newNetwork()
		for _, p := range group {
			n.AbsorbRaw(p, componentSource(p))
		}
		n.Rebuild()

		for _, p := range group {
			r.posToNetwork[p] = n
		}
		r.networks[n.ID()] = n
		r.hooks.fireNetworkCreated(n)
	}
}

func (r *Registry[C]) floodFill(start vec.Vec3, universe map[vec.Vec3]bool, visited map[vec.Vec3]bool) []vec.Vec3 {
	queue := []vec.Vec3{start}
	visited[start] = true
	group := []vec.Vec3{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, q := range lattice.Neighbors(cur) {
			if !universe[q] || visited[q] || !r.areConnected(cur, q) {
				continue
			}
			visited[q] = true
			group = append(group, q)
			queue = append(queue, q)
		}
	}
	return group
}

// Clear tears down every network in one call — the "world unload" path
// spec §3's lifecycle summary doesn't otherwise provide.
func (r *Registry[C]) Clear() {
	ordered := make([]*netgraph.Network[C], 0, len(r.networks))
	for _, n := range r.networks {
		ordered = append(ordered, n)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID().String() < ordered[j].ID().String() })

	for _, n := range ordered {
		r.hooks.fireNetworkDestroyed(n)
	}
	r.posToNetwork = make(map[vec.Vec3]*netgraph.Network[C])
	r.networks = make(map[netgraph.NetworkID]*netgraph.Network[C])
}

func sortPositions(p []vec.Vec3) {
	sort.Slice(p, func(i, j int) bool {
		a, b := p[i], p[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
}
