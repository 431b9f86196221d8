package shape

import (
	"context"
	"strings"

	"github.com/goforj/flyweight"
)

const (
	// DefaultRadius is used when a request carries no positive radius.
	DefaultRadius = 1

	defaultCacheName = "circles"
)

// Option configures a Factory.
type Option func(*Factory)

// WithDefaultRadius overrides the radius used for requests with radius <= 0.
func WithDefaultRadius(radius int) Option {
	return func(f *Factory) {
		if radius > 0 {
			f.defaultRadius = radius
		}
	}
}

// WithCacheOptions forwards options to the underlying circle cache.
func WithCacheOptions(opts ...flyweight.Option) Option {
	return func(f *Factory) {
		f.cacheOpts = append(f.cacheOpts, opts...)
	}
}

// Factory hands out one shared Circle per color.
// The first request for a color fixes its radius.
type Factory struct {
	circles       *flyweight.Cache[int, *Circle]
	defaultRadius int
	cacheOpts     []flyweight.Option
}

// NewFactory creates a factory with its own, empty circle cache.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{defaultRadius: DefaultRadius}
	for _, opt := range opts {
		opt(f)
	}
	cacheOpts := append([]flyweight.Option{flyweight.WithName(defaultCacheName)}, f.cacheOpts...)
	f.circles = flyweight.NewCache(newCircle, cacheOpts...)
	return f
}

// Circle returns the shared circle for color.
func (f *Factory) Circle(color string, radius int) (*Circle, error) {
	return f.CircleCtx(context.Background(), color, radius)
}

// CircleCtx is the context-aware variant of Circle.
func (f *Factory) CircleCtx(ctx context.Context, color string, radius int) (*Circle, error) {
	if radius <= 0 {
		radius = f.defaultRadius
	}
	return f.circles.GetCtx(ctx, strings.TrimSpace(color), radius)
}

// Colors returns the colors served so far, in construction order.
func (f *Factory) Colors() []string {
	return f.circles.Keys()
}

// Len reports how many distinct circles have been built.
func (f *Factory) Len() int {
	return f.circles.Len()
}
