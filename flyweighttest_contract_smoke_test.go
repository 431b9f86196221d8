package flyweight_test

import (
	"testing"

	"github.com/goforj/flyweight"
	"github.com/goforj/flyweight/flyweighttest"
)

type tile struct {
	name string
	size int
}

func TestFlyweighttestRunCacheContract_Cache(t *testing.T) {
	flyweighttest.RunCacheContract(t, func(opts ...flyweight.Option) *flyweight.Cache[int, *tile] {
		return flyweight.NewCache(func(key string, size int) *tile {
			return &tile{name: key, size: size}
		}, opts...)
	}, func(i int) int { return i + 1 }, flyweighttest.Options{})
}

func TestFlyweighttestRunCacheContract_InstanceCache(t *testing.T) {
	flyweighttest.RunCacheContract(t, func(opts ...flyweight.Option) *flyweight.Cache[string, *flyweight.Instance[string]] {
		return flyweight.NewInstanceCache[string](nil, opts...)
	}, func(i int) string { return "params" }, flyweighttest.Options{Concurrency: 100})
}
