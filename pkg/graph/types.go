package graph

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
)

// ID identifies an element for the lifetime of its graph.
// The zero ID is never allocated.
type ID uint64

// Kind distinguishes vertices from edges.
type Kind int

const (
	// KindVertex marks a [Vertex].
	KindVertex Kind = iota
	// KindEdge marks an [Edge].
	KindEdge
)

func (k Kind) String() string {
	if k == KindEdge {
		return "edge"
	}
	return "vertex"
}

// =============================================================================
// Geometry
// =============================================================================

// Point is a 2D integer position in canvas coordinates.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// =============================================================================
// Color
// =============================================================================

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
	Red   = Color{R: 255}
	Green = Color{G: 255}
	Blue  = Color{B: 255}
)

// RGB builds a Color from channel values.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// ParseColor parses "#rrggbb" or "#rgb" hex notation.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return Color{}, gerrors.Wrap(gerrors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// =============================================================================
// Shape
// =============================================================================

// Shape is the outline drawn for a vertex.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeCircle
	ShapeTriangle
	ShapeCross
)

var shapeNames = [...]string{"square", "circle", "triangle", "cross"}

// Shapes lists every shape in declaration order.
var Shapes = []Shape{ShapeSquare, ShapeCircle, ShapeTriangle, ShapeCross}

// Valid reports whether s is one of the declared shapes.
func (s Shape) Valid() bool { return s >= ShapeSquare && s <= ShapeCross }

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Next returns the following shape, wrapping around after ShapeCross.
func (s Shape) Next() Shape {
	if !s.Valid() {
		return ShapeSquare
	}
	return Shape((int(s) + 1) % len(shapeNames))
}

// ParseShape parses a shape name case-insensitively.
func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range shapeNames {
		if s == n {
			return Shape(i), nil
		}
	}
	return 0, gerrors.New(gerrors.ErrCodeInvalidShape, "unknown shape %q (must be square, circle, triangle or cross)", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, gerrors.New(gerrors.ErrCodeInvalidShape, "unknown shape %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
