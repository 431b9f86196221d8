// Package flyweighttest provides a reusable contract suite for flyweight.Cache values.
//
// Any cache whose values are comparable (usually pointers) can be checked:
//
//	func TestTileCacheContract(t *testing.T) {
//		flyweighttest.RunCacheContract(t, func(opts ...flyweight.Option) *flyweight.Cache[int, *Tile] {
//			return flyweight.NewCache(newTile, opts...)
//		}, func(i int) int { return i + 1 }, flyweighttest.Options{})
//	}
//
// The factory must honor the options it is given; the suite attaches a recording
// observer through them.
package flyweighttest
