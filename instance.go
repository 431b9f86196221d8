package flyweight

import "fmt"

// Instance is a shared, immutable value built once for its key.
type Instance[P any] struct {
	key      string
	attrs    P
	rendered string
}

// Key returns the key the instance was built for.
func (i *Instance[P]) Key() string { return i.key }

// Attributes returns the construction parameters of the first request for Key.
func (i *Instance[P]) Attributes() P { return i.attrs }

// String returns the rendered form computed at construction.
func (i *Instance[P]) String() string { return i.rendered }

// Renderer produces the human-readable form of an Instance.
type Renderer[P any] func(key string, params P) string

// NewInstanceCache returns a cache of plain Instances. A nil render falls back to
// "[key] params".
// @group Cache
//
// Example: instances keyed by color
//
//	c := flyweight.NewInstanceCache(func(key string, radius int) string {
//		return fmt.Sprintf("[%s] radius %d", key, radius)
//	})
//	red, _ := c.Get("red", 1)
//	fmt.Println(red) // [red] radius 1
func NewInstanceCache[P any](render Renderer[P], opts ...Option) *Cache[P, *Instance[P]] {
	if render == nil {
		render = defaultRender[P]
	}
	return NewCache(func(key string, params P) *Instance[P] {
		return &Instance[P]{key: key, attrs: params, rendered: render(key, params)}
	}, opts...)
}

func defaultRender[P any](key string, params P) string {
	return fmt.Sprintf("[%s] %v", key, params)
}
