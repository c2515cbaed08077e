package registry

import "github.com/annel0/blocknetwork/internal/netgraph"

// Hooks is the registry-level capability table: spec §9's "capability
// interface / callback table supplied at construction" for all five
// lifecycle events. All fields are optional.
type Hooks[C any] struct {
	OnNetworkCreated   func(n *netgraph.Network[C])
	OnNetworkDestroyed func(n *netgraph.Network[C])
	OnBlockAdded       func(n *netgraph.Network[C])
	OnBlockRemoved     func(n *netgraph.Network[C])
	OnGraphUpdated     func(n *netgraph.Network[C])
}

func (h *Hooks[C]) fireNetworkCreated(n *netgraph.Network[C]) {
	if h != nil && h.OnNetworkCreated != nil {
		h.OnNetworkCreated(n)
	}
}

func (h *Hooks[C]) fireNetworkDestroyed(n *netgraph.Network[C]) {
	if h != nil && h.OnNetworkDestroyed != nil {
		h.OnNetworkDestroyed(n)
	}
}

func (h *Hooks[C]) fireBlockAdded(n *netgraph.Network[C]) {
	if h != nil && h.OnBlockAdded != nil {
		h.OnBlockAdded(n)
	}
}

func (h *Hooks[C]) fireBlockRemoved(n *netgraph.Network[C]) {
	if h != nil && h.OnBlockRemoved != nil {
		h.OnBlockRemoved(n)
	}
}

func (h *Hooks[C]) fireGraphUpdated(n *netgraph.Network[C]) {
	if h != nil && h.OnGraphUpdated != nil {
		h.OnGraphUpdated(n)
	}
}

// netgraphHooks adapts the registry's own three network-scoped hook
// fields into the netgraph.Hooks table every owned Network is
// constructed with, so on_block_added/on_block_removed/on_graph_updated
// fired from inside AddBlock/RemoveBlock surface at the registry level
// too, without the registry having to wrap every call.
func (r *Registry[C]) netgraphHooks() *netgraph.Hooks[C] {
	return &netgraph.Hooks[C]{
		OnBlockAdded:   r.hooks.fireBlockAdded,
		OnBlockRemoved: r.hooks.fireBlockRemoved,
		OnGraphUpdated: r.hooks.fireGraphUpdated,
	}
}
