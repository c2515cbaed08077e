package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacityFromLength(t *testing.T) {
	alg := CapacityAlgebra{}
	assert.Equal(t, Capacity(0), alg.FromLength(0))
	assert.Equal(t, Capacity(500), alg.FromLength(5))
}

func TestCapacityAddDelRoundTrip(t *testing.T) {
	alg := CapacityAlgebra{}
	a, b := Capacity(300), Capacity(120)
	assert.Equal(t, a, alg.Del(alg.Add(a, b), b))
	assert.Equal(t, a, alg.Add(a, alg.FromLength(0)))
}

func TestCapacityPartitionProportional(t *testing.T) {
	alg := CapacityAlgebra{}
	l, r := alg.Partition(Capacity(300), 1, 2)
	assert.Equal(t, Capacity(100), l)
	assert.Equal(t, Capacity(200), r)
	assert.Equal(t, Capacity(300), alg.Add(l, r))
}

func TestCapacityPartitionZeroSide(t *testing.T) {
	alg := CapacityAlgebra{}

	l, r := alg.Partition(Capacity(400), 0, 3)
	assert.Equal(t, Capacity(0), l)
	assert.Equal(t, Capacity(400), r)

	l, r = alg.Partition(Capacity(400), 3, 0)
	assert.Equal(t, Capacity(400), l)
	assert.Equal(t, Capacity(0), r)
}
