package queue

// node is one node of the recursive tree heap. size counts the elements in
// the subtree rooted at this node, including the node itself.
type node[T any] struct {
	value Pair[T]
	left  *node[T]
	right *node[T]
	size  int
}

func newNode[T any](value Pair[T]) *node[T] {
	return &node[T]{value: value, size: 1}
}

func sizeOf[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	return n.size
}

// insert pushes x into the subtree rooted at n, which must be non-nil. If x
// sorts before n's current value, the two swap places and the previous
// value is the one pushed further down; either way, the pushed value
// descends into whichever child currently holds fewer elements, filling a
// nil child first.
func (n *node[T]) insert(x Pair[T]) {
	if x.Less(n.value) {
		n.value, x = x, n.value
	}
	n.size++

	switch {
	case n.left == nil:
		n.left = newNode(x)
	case n.right == nil:
		n.right = newNode(x)
	case n.left.size < n.right.size:
		n.left.insert(x)
	default:
		n.right.insert(x)
	}
}

// popMin removes and returns the minimum value from the subtree rooted at
// n, which must be non-nil, and returns the (possibly nil) replacement
// root for that subtree.
func popMin[T any](n *node[T]) (Pair[T], *node[T]) {
	out := n.value

	switch {
	case n.left == nil && n.right == nil:
		return out, nil
	case n.left == nil:
		v, newRight := popMin(n.right)
		n.value, n.right, n.size = v, newRight, n.size-1
	case n.right == nil:
		v, newLeft := popMin(n.left)
		n.value, n.left, n.size = v, newLeft, n.size-1
	case n.left.value.Less(n.right.value):
		v, newLeft := popMin(n.left)
		n.value, n.left, n.size = v, newLeft, n.size-1
	default:
		v, newRight := popMin(n.right)
		n.value, n.right, n.size = v, newRight, n.size-1
	}

	return out, n
}

// Queue is a min-priority queue of Pair[T], ordered on Pair.Value.
//
// The zero value is a valid, empty Queue.
type Queue[T any] struct {
	root *node[T]
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// NewFromSlice builds a Queue containing every element of items. It is
// equivalent to, but faster to write than, calling Insert once per element.
func NewFromSlice[T any](items []Pair[T]) *Queue[T] {
	q := New[T]()
	for _, item := range items {
		q.Insert(item)
	}

	return q
}

// Insert adds item to the queue.
func (q *Queue[T]) Insert(item Pair[T]) {
	if q.root == nil {
		q.root = newNode(item)

		return
	}
	q.root.insert(item)
}

// PopMin removes and returns the element for which no other stored element
// compares less. It returns ErrEmptyQueue if the queue holds no elements.
func (q *Queue[T]) PopMin() (Pair[T], error) {
	if q.root == nil {
		return Pair[T]{}, ErrEmptyQueue
	}
	v, newRoot := popMin(q.root)
	q.root = newRoot

	return v, nil
}

// Len reports the number of elements currently stored.
func (q *Queue[T]) Len() int {
	return sizeOf(q.root)
}

// HeapSort returns a non-decreasing permutation of items, built by inserting
// every element into a fresh Queue and then draining it with PopMin. It is
// provided chiefly as a correctness demonstration for Queue's ordering
// contract (see the package's testable properties).
func HeapSort[T any](items []Pair[T]) []Pair[T] {
	q := NewFromSlice(items)
	out := make([]Pair[T], 0, len(items))
	for q.Len() > 0 {
		v, _ := q.PopMin()
		out = append(out, v)
	}

	return out
}
