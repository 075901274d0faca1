package blockingqueue

import (
	"runtime"
	"testing"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// Benchmark pairs of Put/Take with a single consumer.
func BenchmarkPutTake(b *testing.B) {
	bq := New[int](nil)
	done := make(chan struct{})
	// Consumer
	go func() {
		for i := 0; i < b.N; i++ {
			_, _ = bq.Take()
		}
		close(done)
	}()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bq.Put(i)
	}
	<-done
}

// Benchmark batched production against a single consumer.
func BenchmarkPutManyTake(b *testing.B) {
	const batch = 16
	bq := New[int](nil)
	done := make(chan struct{})
	go func() {
		for i := 0; i < b.N*batch; i++ {
			_, _ = bq.Take()
		}
		close(done)
	}()
	items := make([]int, batch)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bq.PutMany(items...)
	}
	<-done
}

// Benchmark TryTake in a polling-like scenario.
func BenchmarkTryTake(b *testing.B) {
	bq := New[int](nil)
	// Pre-fill
	for i := 0; i < b.N; i++ {
		bq.Put(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	taken := 0
	for taken < b.N {
		if _, ok := bq.TryTake(); ok {
			taken++
		} else {
			time.Sleep(time.Microsecond)
		}
	}
}

// Baseline: the same single-consumer workload on xsync's bounded MPMC queue.
func BenchmarkPutTake_XSyncMPMC(b *testing.B) {
	q := xsync.NewMPMCQueueOf[int](1024)
	done := make(chan struct{})
	go func() {
		for i := 0; i < b.N; i++ {
			for {
				if _, ok := q.TryDequeue(); ok {
					break
				}
				runtime.Gosched()
			}
		}
		close(done)
	}()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !q.TryEnqueue(i) {
			runtime.Gosched()
		}
	}
	<-done
}
