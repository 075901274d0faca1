package blockingqueue

import (
	"errors"
	"sync"

	"go.uber.org/atomic"

	base "github.com/xyhelper/mpscq"
)

// ErrConcurrentWait is returned by Take when another goroutine is already
// waiting on the same queue. It reports a contract violation in the caller
// (two consumer goroutines), not a transient condition; retrying does not
// help. The goroutine that was already waiting is unaffected.
var ErrConcurrentWait = errors.New("blockingqueue: another goroutine is already waiting in Take")

// ErrForcedWakeup is returned by Take when the wait was interrupted by Wake.
// It is a control signal rather than a failure: callers typically check a
// shutdown condition and either return or call Take again.
var ErrForcedWakeup = errors.New("blockingqueue: wait interrupted by Wake")

// noCopy may be embedded into structs which must not be copied after first use.
type noCopy struct{}

// Lock is a no-op used by the -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Queue is a blocking, concurrency-safe FIFO for many producers and a single
// consumer, built on mpscq. Any number of goroutines may call Put, PutMany,
// Wake, and Clear; at most one goroutine at a time may wait inside Take,
// enforced by the queue itself rather than by caller discipline.
//
// A Queue must not be copied after first use: it anchors a mutex and a
// condition to a fixed location. Keep it behind the pointer returned by New.
type Queue[T any] struct {
	noCopy noCopy

	mu      sync.Mutex
	cv      *sync.Cond
	q       *base.Queue[T]
	waiting int
	alarm   atomic.Bool
	cleaner func(*T)
}

// New creates a new blocking queue.
//
// cleaner, when non-nil, is invoked by Clear on every element it removes, in
// FIFO order, while the queue lock is held. Pass nil when removed elements
// need no cleanup. The cleaner must not call back into the queue; doing so
// deadlocks on the held lock.
//
// Go has no destructors: owners discarding a non-empty queue call Clear so
// that no element escapes the cleaner.
func New[T any](cleaner func(*T)) *Queue[T] {
	b := &Queue[T]{
		q:       base.New[T](),
		cleaner: cleaner,
	}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// NewWithCapacity creates a new blocking queue with initial capacity.
func NewWithCapacity[T any](cleaner func(*T), capacity int) *Queue[T] {
	b := &Queue[T]{
		q:       base.NewWithCapacity[T](capacity),
		cleaner: cleaner,
	}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// Put appends v to the tail and wakes the consumer if one is parked in Take.
// Put never blocks waiting for the consumer and never fails.
func (b *Queue[T]) Put(v T) {
	b.mu.Lock()
	b.q.Enqueue(v)
	b.mu.Unlock()
	b.cv.Signal()
}

// PutMany appends items in argument order and wakes the consumer once.
// Calling it with no items is a no-op.
func (b *Queue[T]) PutMany(items ...T) {
	if len(items) == 0 {
		return
	}
	b.mu.Lock()
	b.q.EnqueueMany(items...)
	b.mu.Unlock()
	b.cv.Signal()
}

// Take removes and returns the head element, blocking while the queue is
// empty and no forced wakeup is pending. Ownership of the returned element
// passes to the caller.
//
// Take fails with ErrConcurrentWait, without blocking, when another
// goroutine is already waiting on this queue. It fails with ErrForcedWakeup
// when the wait is interrupted by Wake; the pending wakeup is consumed, so a
// later Wake/Take pair behaves the same way. A forced wakeup takes priority
// over data that arrives at the same time: the element stays queued for the
// next call.
func (b *Queue[T]) Take() (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var zero T
	if b.waiting > 0 {
		return zero, ErrConcurrentWait
	}

	// Wait until an element is available or a wakeup is forced. The
	// predicate is re-checked after every wake.
	b.waiting++
	for b.q.IsEmpty() && !b.alarm.Load() {
		b.cv.Wait()
	}
	b.waiting--

	// A forced wakeup wins over available data.
	if b.alarm.Load() {
		b.alarm.Store(false)
		return zero, ErrForcedWakeup
	}

	v, _ := b.q.Dequeue()
	return v, nil
}

// TryTake removes and returns the head value without blocking.
// ok is false if the queue is empty. TryTake does not consume a pending
// forced wakeup; that signal is reserved for the blocking path.
func (b *Queue[T]) TryTake() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.Dequeue()
	b.mu.Unlock()
	return
}

// Wake forces the waiting consumer, if any, out of Take with
// ErrForcedWakeup.
//
// The wakeup is never lost: issued with no consumer parked, it is kept until
// the next Take observes and consumes it. Repeated calls before the wakeup
// is consumed are equivalent to a single call. Wake never fails and never
// blocks.
func (b *Queue[T]) Wake() {
	b.mu.Lock()
	b.alarm.Store(true)
	b.mu.Unlock()
	b.cv.Signal()
}

// Clear removes all elements, invoking the cleaner (when one was supplied to
// New) on each removed element in FIFO order. Clear never blocks on the
// consumer and leaves a pending forced wakeup and the waiter accounting
// untouched.
//
// A panic raised by the cleaner propagates to the caller of Clear; the queue
// lock is released on the way out and the queue remains usable, with the
// not-yet-drained elements still queued.
func (b *Queue[T]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.q.Drain(b.cleaner)
}

// Peek returns the head value without removing it. ok is false when empty.
func (b *Queue[T]) Peek() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.Peek()
	b.mu.Unlock()
	return
}

// Len returns the number of elements currently queued.
func (b *Queue[T]) Len() int {
	b.mu.Lock()
	n := b.q.Len()
	b.mu.Unlock()
	return n
}

// IsEmpty reports whether the queue is empty.
func (b *Queue[T]) IsEmpty() bool { return b.Len() == 0 }
