// Package shape serves circles through a flyweight cache keyed by color.
package shape

import (
	"fmt"
	"io"
)

// Shape is anything that can draw itself.
type Shape interface {
	Draw(w io.Writer) error
	String() string
}

// Circle is a shared, immutable circle. Obtain one from a Factory.
type Circle struct {
	color  string
	radius int
}

var _ Shape = (*Circle)(nil)

func newCircle(color string, radius int) *Circle {
	return &Circle{color: color, radius: radius}
}

func (c *Circle) Color() string { return c.color }

func (c *Circle) Radius() int { return c.radius }

func (c *Circle) String() string {
	return fmt.Sprintf("[%s]  radius : %d", c.color, c.radius)
}

// Draw writes the circle's rendered form followed by a newline.
func (c *Circle) Draw(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.String())
	return err
}
