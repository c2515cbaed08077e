// Package lattice implements the pure, stateless predicate layer over
// integer triples: six-direction adjacency, the 1-norm adjacency test,
// and a stable direction enumeration. Nothing here ever fails or
// allocates beyond the fixed-size neighbor array.
package lattice

import "github.com/annel0/blocknetwork/internal/vec"

// Direction enumerates the six axis-aligned lattice directions, in the
// fixed order face-bit layouts use (+x,-x,+y,-y,+z,-z). The order isn't
// observable from outside this package but stays stable across a run so
// that neighbor-dependent tie-breaks (which neighbor becomes "first" in
// a junction edge) are deterministic.
type Direction int

const (
	PosX Direction = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
)

// offsets holds the unit step for each Direction, indexed by Direction.
var offsets = [6]vec.Vec3{
	PosX: {X: 1},
	NegX: {X: -1},
	PosY: {Y: 1},
	NegY: {Y: -1},
	PosZ: {Z: 1},
	NegZ: {Z: -1},
}

// Offset returns the unit step vector for d.
func (d Direction) Offset() vec.Vec3 {
	return offsets[d]
}

// Opposite returns the direction pointing the opposite way.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Directions returns all six directions in the fixed, stable order.
func Directions() [6]Direction {
	return [6]Direction{PosX, NegX, PosY, NegY, PosZ, NegZ}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Adjacent reports whether p and q are exactly 1 apart in 1-norm
// distance, i.e. they differ by 1 on exactly one axis.
func Adjacent(p, q vec.Vec3) bool {
	d := p.Sub(q)
	return abs(d.X)+abs(d.Y)+abs(d.Z) == 1
}

// Neighbors returns the six lattice positions adjacent to p, in the
// fixed Direction order.
func Neighbors(p vec.Vec3) [6]vec.Vec3 {
	var out [6]vec.Vec3
	for _, d := range Directions() {
		out[d] = p.Add(d.Offset())
	}
	return out
}
