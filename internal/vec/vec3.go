// Package vec provides the integer lattice point type used throughout
// the block network engine as a block Position.
package vec

// Vec3 is an integer lattice coordinate (x, y, z). It is comparable, so
// it works directly as a map key without a custom Hash/Equals pair.
type Vec3 struct {
	X int
	Y int
	Z int
}

// Equals reports whether v and other denote the same lattice point.
func (v Vec3) Equals(other Vec3) bool {
	return v == other
}

// Add returns the componentwise sum of v and other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the componentwise difference v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}
