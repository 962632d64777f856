// SPDX-License-Identifier: MIT

// Package pqueue provides a typed binary min-heap priority queue.
//
// Queue[T] is a thin facade over github.com/emirpasic/gods/trees/binaryheap:
// the heap stores interface{} values and a comparator; Queue adds the type
// parameter and a less-function based ordering so callers never type-assert.
//
// Complexity: Insert and RemoveMin are O(log n); PeekMin, IsEmpty, Len are O(1).
//
// Ties: elements that compare equal come out in unspecified order. Callers that
// need a deterministic order must fold a tie-breaker (e.g. a sequence number)
// into less.
//
// Concurrency: not goroutine-safe.
package pqueue

import (
	"errors"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// ErrEmpty indicates RemoveMin or PeekMin was called on an empty queue.
var ErrEmpty = errors.New("pqueue: queue is empty")

// Queue is a min-priority queue ordered by the less function given to New.
type Queue[T any] struct {
	heap *binaryheap.Heap
}

// New returns an empty Queue where less(a, b) reports whether a has strictly
// higher priority (comes out earlier) than b.
func New[T any](less func(a, b T) bool) *Queue[T] {
	cmp := func(x, y interface{}) int {
		a, b := x.(T), y.(T)
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}

	return &Queue[T]{heap: binaryheap.NewWith(cmp)}
}

// Insert adds v to the queue.
func (q *Queue[T]) Insert(v T) { q.heap.Push(v) }

// RemoveMin removes and returns the highest-priority element.
// Returns ErrEmpty if the queue holds nothing.
func (q *Queue[T]) RemoveMin() (T, error) {
	v, ok := q.heap.Pop()
	if !ok {
		var zero T
		return zero, ErrEmpty
	}

	return v.(T), nil
}

// PeekMin returns the highest-priority element without removing it.
// Returns ErrEmpty if the queue holds nothing.
func (q *Queue[T]) PeekMin() (T, error) {
	v, ok := q.heap.Peek()
	if !ok {
		var zero T
		return zero, ErrEmpty
	}

	return v.(T), nil
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.heap.Empty() }

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.heap.Size() }
