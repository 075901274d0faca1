package mpscq

import (
	"sync"
)

// Queue is a generic, concurrency-safe FIFO queue. Elements are removed in
// the order they were appended. The zero value is not ready for use;
// construct via New or NewWithCapacity.
type Queue[T any] struct {
	mu   sync.Mutex
	data []T
}

// New creates a new queue.
//
// All exported methods are safe for concurrent use.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		data: make([]T, 0),
	}
}

// NewWithCapacity creates a new queue with the given initial capacity.
// Capacity preallocates internal storage; behavior is otherwise identical to
// New.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{
		data: make([]T, 0, capacity),
	}
}

// Enqueue appends v to the tail. Amortized complexity: O(1).
func (q *Queue[T]) Enqueue(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.data = append(q.data, v)
}

// EnqueueMany appends items to the tail in argument order.
// Amortized complexity: O(k) for k items.
func (q *Queue[T]) EnqueueMany(items ...T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.data = append(q.data, items...)
}

// Dequeue removes and returns the head value.
//
// The second result is false when the queue is empty. Amortized complexity: O(1).
func (q *Queue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if len(q.data) == 0 {
		return zero, false
	}
	v := q.data[0]
	// Zero the vacated slot so the element does not outlive its removal,
	// then reslice instead of shifting; the backing array is reclaimed by GC.
	q.data[0] = zero
	q.data = q.data[1:]
	return v, true
}

// Peek returns the head value without removing it.
// The second result is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if len(q.data) == 0 {
		return zero, false
	}
	return q.data[0], true
}

// Len returns the number of elements currently queued.
// Complexity: O(1). Safe for concurrent use.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.data)
}

// IsEmpty reports whether the queue is empty.
// Complexity: O(1). Equivalent to Len() == 0.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Clear removes all elements from the queue without inspecting them.
// Complexity: O(n) to release element references.
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	clear(q.data)
	q.data = q.data[:0]
}

// Drain removes every element in FIFO order, invoking fn on each removed
// element. fn receives a pointer to the removed element and may mutate or
// release it; a nil fn simply drops the elements. Returns the number of
// elements drained. Complexity: O(n).
//
// fn runs while the queue lock is held and must not call back into the
// queue.
func (q *Queue[T]) Drain(fn func(*T)) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	n := 0
	for len(q.data) > 0 {
		v := q.data[0]
		q.data[0] = zero
		q.data = q.data[1:]
		n++
		if fn != nil {
			fn(&v)
		}
	}
	return n
}

// ToSlice returns a copy of the queue's contents in FIFO order.
// Complexity: O(n). The returned slice is independent of the queue.
func (q *Queue[T]) ToSlice() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]T, len(q.data))
	copy(out, q.data)
	return out
}
