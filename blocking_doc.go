package mpscq

// Advanced: Blocking Consumption and Forced Wakeups
//
// mpscq exposes a non-blocking, concurrency-safe FIFO API. The blockingqueue
// subpackage layers the blocking consumer side on top of it: producers wake
// the consumer when items arrive, and a supervisor can interrupt a parked
// consumer without producing data.
//
// Design notes:
//   - One mutex guards the sequence, the waiter count, and the wakeup flag,
//     so the consumer's wait predicate never observes them inconsistently.
//   - At most one goroutine may wait in Take. A second concurrent Take is a
//     caller bug and fails immediately with ErrConcurrentWait instead of
//     queueing behind the first.
//   - Wake is the interrupt and shutdown signal. There is no built-in
//     timeout: a wakeup issued with no consumer waiting is kept until the
//     next Take observes it.
//   - Use the standard "wait in a loop" pattern to handle spurious wakeups;
//     the forced-wakeup flag is re-checked before the data path so an
//     interrupt is never masked by a racing Put.
//
// Minimal consumer loop:
//
//	bq := blockingqueue.New[job](nil)
//
//	for {
//	    j, err := bq.Take()
//	    if errors.Is(err, blockingqueue.ErrForcedWakeup) {
//	        if shuttingDown() {
//	            bq.Clear()
//	            return
//	        }
//	        continue
//	    }
//	    if err != nil {
//	        // ErrConcurrentWait: a second consumer goroutine exists.
//	        panic(err)
//	    }
//	    handle(j)
//	}
//
// Producers simply call bq.Put(j); to stop the consumer, call bq.Wake from
// the owner. When elements hold resources, pass a cleaner at construction
// and call Clear before discarding a non-empty queue:
//
//	bq := blockingqueue.New(func(m *message) { m.release() })
