package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/briandleahy/globaloptimize/geometry"
)

func TestNewPoint_CopiesInput(t *testing.T) {
	coords := []float64{1, 2, 3}
	p := geometry.NewPoint(coords)
	coords[0] = 99

	assert.Equal(t, geometry.Point{1, 2, 3}, p)
}

func TestPoint_Equal(t *testing.T) {
	a := geometry.NewPoint([]float64{1, 2})
	b := geometry.NewPoint([]float64{1, 2})
	c := geometry.NewPoint([]float64{1, 3})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestPoint_Distance(t *testing.T) {
	a := geometry.NewPoint([]float64{0, 0})
	b := geometry.NewPoint([]float64{3, 4})

	assert.Equal(t, 5.0, a.Distance(b))
}

func TestPoint_Midpoint(t *testing.T) {
	a := geometry.NewPoint([]float64{0, 0})
	b := geometry.NewPoint([]float64{2, 4})

	assert.Equal(t, geometry.Point{1, 2}, a.Midpoint(b))
}

func TestFunctionPoint_Equal(t *testing.T) {
	a := geometry.NewFunctionPoint([]float64{1, 2}, 3.0)
	b := geometry.NewFunctionPoint([]float64{1, 2}, 3.0)
	c := geometry.NewFunctionPoint([]float64{1, 2}, 4.0)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestFunctionPoint_Hash_ConsistentWithEqual(t *testing.T) {
	a := geometry.NewFunctionPoint([]float64{1, 2}, 3.0)
	b := geometry.NewFunctionPoint([]float64{1, 2}, 3.0)

	assert.Equal(t, a.Hash(), b.Hash())
}

func TestFunctionPoint_Hash_DiffersForDifferentValues(t *testing.T) {
	a := geometry.NewFunctionPoint([]float64{1, 2}, 3.0)
	b := geometry.NewFunctionPoint([]float64{1, 2}, 4.0)

	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestFunctionPoint_Equal_IgnoresIsLocalMinimum(t *testing.T) {
	a := geometry.NewFunctionPoint([]float64{1}, 1.0)
	a.IsLocalMinimum = true
	b := geometry.NewFunctionPoint([]float64{1}, 1.0)
	b.IsLocalMinimum = false

	assert.True(t, a.Equal(b))
}
