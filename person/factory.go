package person

import (
	"context"
	"strings"

	"github.com/goforj/flyweight"
)

const defaultFactoryName = "persons"

// Factory creates a new Person for each recognized discriminant.
type Factory struct {
	dispatch *flyweight.Dispatcher[Person]
}

// NewFactory creates a factory over variants A, B and C.
func NewFactory(opts ...flyweight.Option) *Factory {
	opts = append([]flyweight.Option{flyweight.WithName(defaultFactoryName)}, opts...)
	return &Factory{
		dispatch: flyweight.NewDispatcher(map[string]flyweight.Constructor[Person]{
			string(VariantA): func() Person { return &PersonA{label: "person A"} },
			string(VariantB): func() Person { return &PersonB{label: "person B"} },
			string(VariantC): func() Person { return &PersonC{label: "person C"} },
		}, opts...),
	}
}

// Create returns a fresh Person for discriminant. Surrounding whitespace and case
// are ignored. Unrecognized discriminants fail with *flyweight.UnknownVariantError.
func (f *Factory) Create(discriminant string) (Person, error) {
	return f.CreateCtx(context.Background(), discriminant)
}

// CreateCtx is the context-aware variant of Create.
func (f *Factory) CreateCtx(ctx context.Context, discriminant string) (Person, error) {
	return f.dispatch.CreateCtx(ctx, strings.ToUpper(strings.TrimSpace(discriminant)))
}

// Variants lists the recognized discriminants.
func (f *Factory) Variants() []Variant {
	known := f.dispatch.Variants()
	out := make([]Variant, len(known))
	for i, v := range known {
		out[i] = Variant(v)
	}
	return out
}
