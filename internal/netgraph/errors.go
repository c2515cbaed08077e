package netgraph

import (
	"fmt"

	"github.com/annel0/blocknetwork/internal/logging"
	"github.com/annel0/blocknetwork/internal/vec"
)

// InvariantViolation is the panic value raised when a public entry
// point is asked to perform an operation the structural invariants
// forbid: splitting an edge at a position it doesn't contain, calling
// opposite-of on a non-endpoint, or placing a non-node block that
// doesn't have exactly two in-network neighbors (spec §7). These are
// programmer errors, not runtime conditions a caller can usefully
// recover from — the data structure may be left partially mutated
// after one fires, matching spec §7's propagation policy.
type InvariantViolation struct {
	Invariant string
	Positions []vec.Vec3
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("netgraph: invariant violated: %s %v", e.Invariant, e.Positions)
}

// violate logs the failure at ERROR level (so it's diagnosable even
// though the panic aborts the call) and panics with an
// *InvariantViolation.
func violate(invariant string, positions ...vec.Vec3) {
	logging.Error("netgraph invariant violated: %s %v", invariant, positions)
	panic(&InvariantViolation{Invariant: invariant, Positions: positions})
}
