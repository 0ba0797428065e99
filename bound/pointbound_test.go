package bound_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briandleahy/globaloptimize/bound"
)

func TestNewOrdinaryPointBound_RejectsNegativeConstants(t *testing.T) {
	_, err := bound.NewOrdinaryPointBound(-1, 2)
	assert.ErrorIs(t, err, bound.ErrNegativeLipschitzConstant)

	_, err = bound.NewOrdinaryPointBound(1, -2)
	assert.ErrorIs(t, err, bound.ErrNegativeLipschitzConstant)
}

func TestOrdinaryPointBound_AllZerosIsIdenticallyZero(t *testing.T) {
	h, err := bound.NewOrdinaryPointBound(0, 0)
	require.NoError(t, err)

	for _, delta := range []float64{0, 1, 100} {
		assert.Equal(t, 0.0, h.At(delta))
	}
}

func TestOrdinaryPointBound_QuadraticRegimeDoublesOnDoubling(t *testing.T) {
	h, err := bound.NewOrdinaryPointBound(10, 1)
	require.NoError(t, err)
	// cutoff = 10, so delta=1 and 2*delta=2 are both well within the
	// quadratic regime.
	delta := 1.0

	assert.InDelta(t, 4*h.At(delta), h.At(2*delta), 1e-9)
}

func TestOrdinaryPointBound_LinearRegimeSlopeIsLf(t *testing.T) {
	lf := 3.0
	h, err := bound.NewOrdinaryPointBound(lf, 1)
	require.NoError(t, err)
	// cutoff = 3, stay in the linear regime throughout.
	delta, eps := 10.0, 0.001

	diff := h.At(delta+eps) - h.At(delta)

	assert.InDelta(t, lf*eps, diff, 1e-9)
}

func TestOrdinaryPointBound_ContinuousAtCutoff(t *testing.T) {
	lf, lg := 4.0, 2.0
	h, err := bound.NewOrdinaryPointBound(lf, lg)
	require.NoError(t, err)
	cutoff := lf / lg

	for _, eps := range []float64{1e-2, 1e-4, 1e-6} {
		below := h.At(cutoff - eps)
		above := h.At(cutoff + eps)
		// Across [cutoff-eps, cutoff+eps] h changes by at most 2*Lf*eps.
		assert.InDelta(t, below, above, 2*lf*eps)
	}
}

func TestOrdinaryPointBound_ShortDistanceLinearInLg(t *testing.T) {
	lf := 100.0 // keep cutoff large relative to delta in both cases
	delta := 0.01

	h1, err := bound.NewOrdinaryPointBound(lf, 1)
	require.NoError(t, err)
	h2, err := bound.NewOrdinaryPointBound(lf, 2)
	require.NoError(t, err)

	assert.InDelta(t, 2*h1.At(delta), h2.At(delta), 1e-9)
}

func TestOrdinaryPointBound_LgInfinityIsPureLinear(t *testing.T) {
	lf := 5.0
	h, err := bound.NewOrdinaryPointBound(lf, math.Inf(1))
	require.NoError(t, err)

	for _, delta := range []float64{0.1, 1, 10} {
		assert.Equal(t, lf*delta, h.At(delta))
	}
}

func TestOrdinaryPointBound_LfInfinityIsPureQuadratic(t *testing.T) {
	lg := 3.0
	h, err := bound.NewOrdinaryPointBound(math.Inf(1), lg)
	require.NoError(t, err)

	for _, delta := range []float64{0.1, 1, 10} {
		assert.Equal(t, 0.5*lg*delta*delta, h.At(delta))
	}
}

func TestOrdinaryPointBound_IsNonNegative(t *testing.T) {
	h, err := bound.NewOrdinaryPointBound(2.5, 1.5)
	require.NoError(t, err)

	for delta := 0.0; delta <= 20; delta += 0.37 {
		assert.GreaterOrEqual(t, h.At(delta), 0.0)
	}
}
