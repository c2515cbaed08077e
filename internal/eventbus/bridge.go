package eventbus

import (
	"context"
	"fmt"
	"time"

	"github.com/annel0/blocknetwork/internal/netgraph"
	"github.com/annel0/blocknetwork/internal/registry"
	"github.com/google/uuid"
)

// BridgeHooks wraps base (which may be nil) so every hook it already
// calls also publishes an Envelope onto bus describing the same
// network. It is an optional downstream consumer composed onto the
// registry's callback table, not a replacement for it — a host that
// doesn't care about out-of-process observers can keep using
// registry.Hooks directly and never import this package.
func BridgeHooks[C any](bus EventBus, source string, base *registry.Hooks[C]) *registry.Hooks[C] {
	var b registry.Hooks[C]
	if base != nil {
		b = *base
	}

	publish := func(eventType string, n *netgraph.Network[C]) {
		env := &Envelope{
			ID:        uuid.New().String(),
			Timestamp: time.Now().UTC(),
			Source:    source,
			EventType: eventType,
			Version:   1,
			Priority:  5,
			Metadata: map[string]string{
				"network_id": n.ID().String(),
				"size":       fmt.Sprintf("%d", n.Size()),
			},
		}
		_ = bus.Publish(context.Background(), env)
	}

	wrap := func(eventType string, fn func(*netgraph.Network[C])) func(*netgraph.Network[C]) {
		return func(n *netgraph.Network[C]) {
			if fn != nil {
				fn(n)
			}
			publish(eventType, n)
		}
	}

	return &registry.Hooks[C]{
		OnNetworkCreated:   wrap("network_created", b.OnNetworkCreated),
		OnNetworkDestroyed: wrap("network_destroyed", b.OnNetworkDestroyed),
		OnBlockAdded:       wrap("block_added", b.OnBlockAdded),
		OnBlockRemoved:     wrap("block_removed", b.OnBlockRemoved),
		OnGraphUpdated:     wrap("graph_updated", b.OnGraphUpdated),
	}
}
