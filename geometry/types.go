package geometry

import (
	"hash/fnv"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is an immutable, ordered tuple of real numbers.
type Point []float64

// NewPoint copies coords into a new Point, so later mutation of the caller's
// slice does not affect the returned Point.
func NewPoint(coords []float64) Point {
	out := make(Point, len(coords))
	copy(out, coords)

	return out
}

// Dim returns the dimension (length) of p.
func (p Point) Dim() int { return len(p) }

// Equal reports whether p and other have identical coordinates.
func (p Point) Equal(other Point) bool {
	return floats.Equal(p, other)
}

// Distance returns the Euclidean (L2) distance between p and other. The two
// points must share a dimension; callers within this package only ever
// compare points of equal dimension (enforced by Simplex construction), so
// no error is returned here.
func (p Point) Distance(other Point) float64 {
	return floats.Distance(p, other, 2)
}

// Midpoint returns 0.5*(p+other).
func (p Point) Midpoint(other Point) Point {
	mid := make(Point, len(p))
	copy(mid, p)
	floats.Add(mid, other)
	floats.Scale(0.5, mid)

	return mid
}

// FunctionPoint is a point, the objective's value there, and whether the
// point is known to be a local minimum (unused by the core driver, carried
// for bound extensions per the design notes).
type FunctionPoint struct {
	Point          Point
	Value          float64
	IsLocalMinimum bool
}

// NewFunctionPoint constructs a FunctionPoint, copying point.
func NewFunctionPoint(point Point, value float64) FunctionPoint {
	return FunctionPoint{Point: NewPoint(point), Value: value}
}

// Equal reports whether fp and other have equal points and equal values.
// IsLocalMinimum does not participate in equality: it is a derived,
// extension-only annotation, not part of a FunctionPoint's identity.
func (fp FunctionPoint) Equal(other FunctionPoint) bool {
	return fp.Value == other.Value && fp.Point.Equal(other.Point)
}

// Hash returns a hash of fp consistent with Equal: equal FunctionPoints
// always produce the same Hash.
func (fp FunctionPoint) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, c := range fp.Point {
		putFloat64(&buf, c)
		h.Write(buf[:])
	}
	putFloat64(&buf, fp.Value)
	h.Write(buf[:])

	return h.Sum64()
}

func putFloat64(buf *[8]byte, f float64) {
	if f == 0 {
		// -0 == +0 under Equal, so both must hash the same.
		f = 0
	}
	bits := math.Float64bits(f)
	for i := 0; i < 8; i++ {
		buf[i] = byte(bits >> (8 * i))
	}
}

// Bound is one (lo, hi) axis range of a hyperrectangle domain.
type Bound struct {
	Lo, Hi float64
}
