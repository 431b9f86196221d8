package flyweight

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidKey matches every *InvalidKeyError via errors.Is.
	ErrInvalidKey = errors.New("flyweight: invalid key")
	// ErrUnknownVariant matches every *UnknownVariantError via errors.Is.
	ErrUnknownVariant = errors.New("flyweight: unknown variant")
)

// InvalidKeyError is returned when a cache lookup is attempted with an empty key.
type InvalidKeyError struct {
	Cache string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("flyweight: cache %q: key must not be empty", e.Cache)
}

// Is reports whether target is ErrInvalidKey.
func (e *InvalidKeyError) Is(target error) bool { return target == ErrInvalidKey }

// UnknownVariantError is returned when a dispatcher has no constructor for a discriminant.
type UnknownVariantError struct {
	Factory      string
	Discriminant string
	Known        []string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("flyweight: factory %q: unknown variant %q (known: %s)",
		e.Factory, e.Discriminant, strings.Join(e.Known, ", "))
}

// Is reports whether target is ErrUnknownVariant.
func (e *UnknownVariantError) Is(target error) bool { return target == ErrUnknownVariant }
