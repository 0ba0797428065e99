package queue

// Pair decorates an arbitrary payload Object with a sort key Value. All
// ordering among Pairs is defined on Value only; Object never participates
// in comparison. This lets Queue stay agnostic of what it queues: the
// payload can be a simplex, a string, or anything else, and the queue only
// ever looks at Value.
type Pair[T any] struct {
	Object T
	Value  float64
}

// NewPair constructs a Pair from a payload and its sort key.
func NewPair[T any](object T, value float64) Pair[T] {
	return Pair[T]{Object: object, Value: value}
}

// Less reports whether p sorts strictly before other.
func (p Pair[T]) Less(other Pair[T]) bool { return p.Value < other.Value }

// Greater reports whether p sorts strictly after other.
func (p Pair[T]) Greater(other Pair[T]) bool { return p.Value > other.Value }

// LessOrEqual reports whether p does not sort after other.
func (p Pair[T]) LessOrEqual(other Pair[T]) bool { return p.Value <= other.Value }

// GreaterOrEqual reports whether p does not sort before other.
func (p Pair[T]) GreaterOrEqual(other Pair[T]) bool { return p.Value >= other.Value }

// EqualValue reports whether p and other share the same sort key. It does
// not compare Object.
func (p Pair[T]) EqualValue(other Pair[T]) bool { return p.Value == other.Value }
