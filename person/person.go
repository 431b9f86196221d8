// Package person builds one of a closed set of person variants by discriminant.
package person

// Variant is the discriminant of a Person.
type Variant string

const (
	VariantA Variant = "A"
	VariantB Variant = "B"
	VariantC Variant = "C"
)

// Person is the capability shared by every variant.
type Person interface {
	Variant() Variant
	Describe() string
}

type PersonA struct{ label string }

func (p *PersonA) Variant() Variant  { return VariantA }
func (p *PersonA) Describe() string { return p.label }

type PersonB struct{ label string }

func (p *PersonB) Variant() Variant  { return VariantB }
func (p *PersonB) Describe() string { return p.label }

type PersonC struct{ label string }

func (p *PersonC) Variant() Variant  { return VariantC }
func (p *PersonC) Describe() string { return p.label }
