package netgraph

import "github.com/google/uuid"

// NodeID, EdgeID and NetworkID are stable opaque identifiers for graph
// elements. The Java source this engine was distilled from used live
// object references as HashMap keys (nodes and edges are mutable, so
// that only works under reference identity); Go gives mutable structs
// no such identity for map keys, so every element gets a UUID at
// creation time instead (spec §9, "Cyclic ownership" design note).
type NodeID uuid.UUID

// EdgeID uniquely identifies an Edge for the lifetime of the Network
// that owns it.
type EdgeID uuid.UUID

// NetworkID uniquely identifies a Network for the lifetime of the
// Registry that owns it.
type NetworkID uuid.UUID

func newNodeID() NodeID       { return NodeID(uuid.New()) }
func newEdgeID() EdgeID       { return EdgeID(uuid.New()) }
func newNetworkID() NetworkID { return NetworkID(uuid.New()) }

func (id NodeID) String() string    { return uuid.UUID(id).String() }
func (id EdgeID) String() string    { return uuid.UUID(id).String() }
func (id NetworkID) String() string { return uuid.UUID(id).String() }
