package queue

import "errors"

// ErrEmptyQueue is returned by PopMin when the queue holds no elements.
var ErrEmptyQueue = errors.New("queue: pop from empty queue")
