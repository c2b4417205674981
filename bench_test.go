package slist

import (
	"math/rand"
	"testing"
)

// go test -bench=. -cpuprofile profile.out
// go tool pprof -http="localhost:8000" pprofbin ./profile.out

func BenchmarkAdd(b *testing.B) {
	const count = 1000

	for i := 0; i < b.N; i++ {
		l := New[int]()
		for j := 0; j < count; j++ {
			l.Add(j)
		}
	}
}

func BenchmarkSort(b *testing.B) {
	const count = 1000

	l := New[int]()
	for j := 0; j < count; j++ {
		l.Add(rand.Int())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		c := l.Copy()
		b.StartTimer()

		c.Sort()
	}
}
