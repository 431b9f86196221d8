package flyweight

import (
	"context"
	"sort"
	"time"
)

// Constructor builds a fresh variant value.
type Constructor[V any] func() V

// Dispatcher maps a closed set of discriminants to constructors.
// Every Create call returns a newly constructed value; nothing is cached.
type Dispatcher[V any] struct {
	name     string
	variants map[string]Constructor[V]
	known    []string
	observer Observer
}

// NewDispatcher creates a dispatcher over variants. The map is copied; nil
// constructors are ignored.
// @group Dispatcher
//
// Example: closed variant set
//
//	d := flyweight.NewDispatcher(map[string]flyweight.Constructor[Animal]{
//		"cat": func() Animal { return &Cat{} },
//		"dog": func() Animal { return &Dog{} },
//	})
//	_, err := d.Create("cow")
//	fmt.Println(errors.Is(err, flyweight.ErrUnknownVariant)) // true
func NewDispatcher[V any](variants map[string]Constructor[V], opts ...Option) *Dispatcher[V] {
	cfg := newConfig(defaultDispatcherName, opts)
	d := &Dispatcher[V]{
		name:     cfg.Name,
		variants: make(map[string]Constructor[V], len(variants)),
		observer: cfg.Observer,
	}
	for discriminant, ctor := range variants {
		if ctor == nil {
			continue
		}
		d.variants[discriminant] = ctor
		d.known = append(d.known, discriminant)
	}
	sort.Strings(d.known)
	return d
}

// Name reports the label the dispatcher was configured with.
func (d *Dispatcher[V]) Name() string {
	return d.name
}

// Create builds the variant registered for discriminant.
// @group Dispatcher
func (d *Dispatcher[V]) Create(discriminant string) (V, error) {
	return d.CreateCtx(context.Background(), discriminant)
}

// CreateCtx is the context-aware variant of Create.
func (d *Dispatcher[V]) CreateCtx(ctx context.Context, discriminant string) (V, error) {
	var zero V
	start := time.Now()
	ctor, ok := d.variants[discriminant]
	if !ok {
		err := &UnknownVariantError{Factory: d.name, Discriminant: discriminant, Known: d.Variants()}
		observe(ctx, d.observer, d.name, OpCreate, discriminant, false, err, start)
		return zero, err
	}
	value := ctor()
	observe(ctx, d.observer, d.name, OpCreate, discriminant, true, nil, start)
	return value, nil
}

// Variants returns the recognized discriminants in sorted order.
func (d *Dispatcher[V]) Variants() []string {
	out := make([]string, len(d.known))
	copy(out, d.known)
	return out
}
