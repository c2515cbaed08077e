package netgraph

// Hooks is the capability table a Network calls into on structural
// change. All fields are optional; a nil field is simply not called.
// The registry wires its own five-hook table through to each network it
// owns, binding the network-scoped three (OnBlockAdded, OnBlockRemoved,
// OnGraphUpdated) directly and keeping the other two
// (on_network_created/destroyed) at its own level.
type Hooks[C any] struct {
	OnBlockAdded   func(n *Network[C])
	OnBlockRemoved func(n *Network[C])
	OnGraphUpdated func(n *Network[C])
}

func (h *Hooks[C]) fireBlockAdded(n *Network[C]) {
	if h != nil && h.OnBlockAdded != nil {
		h.OnBlockAdded(n)
	}
}

func (h *Hooks[C]) fireBlockRemoved(n *Network[C]) {
	if h != nil && h.OnBlockRemoved != nil {
		h.OnBlockRemoved(n)
	}
}

func (h *Hooks[C]) fireGraphUpdated(n *Network[C]) {
	if h != nil && h.OnGraphUpdated != nil {
		h.OnGraphUpdated(n)
	}
}
