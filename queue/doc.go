// Package queue implements a recursively-defined, size-balanced min-priority
// queue over (object, value) pairs, ordered on value alone.
//
// Overview:
//
//   - Queue[T] holds Pair[T] elements and supports Insert and PopMin in
//     O(log n) expected time, tracking size for balance.
//   - PopMin always returns the element whose Value is less than or equal
//     to every other element currently stored; ties are broken arbitrarily
//     (the tree does not record insertion order).
//   - A popped element may be re-inserted; the queue does not distinguish
//     fresh elements from previously-popped ones.
//
// When to use:
//
//   - As the frontier structure for a best-first search (e.g. the
//     branch-and-bound driver in package optimize), where the payload is
//     some domain object and the priority is a derived scalar bound.
//   - Anywhere a reusable min-heap is needed over a payload type the queue
//     itself should not need to know about.
//
// Implementation:
//
//   - Each node stores one Pair[T], a left and a right child, and the size
//     of the subtree rooted at it (including itself).
//   - Insert compares the incoming value against the current node: the
//     smaller of the two stays at the node, and the other is pushed down
//     into whichever child subtree currently holds fewer elements (nil
//     counts as size zero and is filled first). This "less-populated
//     child" rule keeps the tree approximately balanced under arbitrary
//     insertion order without any rotation step.
//   - PopMin returns the root's value, then refills the root from whichever
//     child has the smaller value at its own root, recursing into that
//     child; a child that empties out is detached (set to nil).
//
// Complexity:
//
//   - Insert, PopMin: O(log n) expected, where n is the number of elements
//     in the queue. The size-balance invariant bounds the tree's height by
//     O(log n) under arbitrary insertion order; it does not guarantee the
//     stricter shape balance of a self-balancing BST.
//   - Len: O(1), since subtree size is maintained incrementally.
//
// Failure modes:
//
//   - PopMin on an empty queue returns ErrEmptyQueue. This is never a
//     recoverable condition the queue itself retries; callers decide.
package queue
