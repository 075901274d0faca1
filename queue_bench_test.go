package mpscq

import (
	"testing"
)

func BenchmarkEnqueue(b *testing.B) {
	q := New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
	}
}

func BenchmarkEnqueueDequeue(b *testing.B) {
	q := New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		if i%2 == 1 { // keep size bounded
			q.Dequeue()
		}
	}
}

func BenchmarkEnqueueMany(b *testing.B) {
	const batch = 16
	items := make([]int, batch)
	q := New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.EnqueueMany(items...)
		if i%2 == 1 { // keep size bounded
			q.Drain(nil)
		}
	}
}
