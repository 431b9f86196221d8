package flyweight

import (
	"strconv"
	"testing"
)

func BenchmarkCacheGetHit(b *testing.B) {
	c := newCircleCache(nil)
	_, _ = c.Get("red", 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get("red", 1)
	}
}

func BenchmarkCacheGetHitParallel(b *testing.B) {
	c := newCircleCache(nil)
	_, _ = c.Get("red", 1)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = c.Get("red", 1)
		}
	})
}

func BenchmarkCacheGetMiss(b *testing.B) {
	c := newCircleCache(nil)
	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = "color-" + strconv.Itoa(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get(keys[i], i)
	}
}

func BenchmarkDispatcherCreate(b *testing.B) {
	d := newAnimalDispatcher()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Create("cat")
	}
}
