package lattice

import (
	"testing"

	"github.com/annel0/blocknetwork/internal/vec"
	"github.com/stretchr/testify/assert"
)

func TestAdjacent(t *testing.T) {
	origin := vec.Vec3{X: 0, Y: 0, Z: 0}

	assert.True(t, Adjacent(origin, vec.Vec3{X: 1, Y: 0, Z: 0}))
	assert.True(t, Adjacent(origin, vec.Vec3{X: 0, Y: 0, Z: -1}))
	assert.False(t, Adjacent(origin, origin), "a position is never adjacent to itself")
	assert.False(t, Adjacent(origin, vec.Vec3{X: 1, Y: 1, Z: 0}), "diagonal neighbors are not adjacent")
	assert.False(t, Adjacent(origin, vec.Vec3{X: 2, Y: 0, Z: 0}))
}

func TestNeighborsAreAllAdjacentAndDistinct(t *testing.T) {
	p := vec.Vec3{X: 5, Y: -2, Z: 7}
	ns := Neighbors(p)

	seen := map[vec.Vec3]bool{}
	for _, n := range ns {
		assert.True(t, Adjacent(p, n))
		assert.False(t, seen[n], "neighbors must be distinct")
		seen[n] = true
	}
	assert.Len(t, seen, 6)
}

func TestOppositeDirection(t *testing.T) {
	assert.Equal(t, NegX, PosX.Opposite())
	assert.Equal(t, PosX, NegX.Opposite())
	assert.Equal(t, NegZ, PosZ.Opposite())
}
