// Package mpscq provides a generic FIFO queue for many-producer,
// single-consumer pipelines.
//
// The root package implements a non-blocking, concurrency-safe queue: all
// exported methods use internal locking and may be called from multiple
// goroutines. Construct a queue with New or NewWithCapacity. Elements are
// opaque values of any type and are delivered strictly in insertion order.
//
// The blockingqueue subpackage layers a blocking consumer on top of this
// queue, with two extra contracts: at most one goroutine may wait for an
// element at a time, and a parked consumer can be force-woken through a
// signal that is distinguishable from "an element arrived".
package mpscq
