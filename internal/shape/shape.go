// Package shape defines the two geometric shapes the editor works with.
// Shapes are plain numeric records: they expose an area, the four borders of
// their axis-aligned bounding box, and can be translated in place.
package shape

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies a shape variant.
type Kind string

const (
	KindCircle    Kind = "circle"
	KindRectangle Kind = "rectangle"
)

// Shape is implemented by *Circle and *Rectangle only.
type Shape interface {
	Area() float64
	TopBorder() float64
	BottomBorder() float64
	LeftBorder() float64
	RightBorder() float64
	Move(dx, dy float64)

	// Snapshot returns a detached copy of the shape's fields.
	Snapshot() Snapshot

	sealed()
}

// Circle is centered at (X, Y). Radius is never negative once stored in a list.
type Circle struct {
	X, Y   float64
	Radius float64
}

// NewCircle returns a circle centered at (x, y).
func NewCircle(x, y, radius float64) *Circle {
	return &Circle{X: x, Y: y, Radius: radius}
}

func (c *Circle) Area() float64         { return math.Pi * c.Radius * c.Radius }
func (c *Circle) TopBorder() float64    { return c.Y + c.Radius }
func (c *Circle) BottomBorder() float64 { return c.Y - c.Radius }
func (c *Circle) LeftBorder() float64   { return c.X - c.Radius }
func (c *Circle) RightBorder() float64  { return c.X + c.Radius }

// Move translates the center by (dx, dy).
func (c *Circle) Move(dx, dy float64) {
	c.X += dx
	c.Y += dy
}

func (c *Circle) Snapshot() Snapshot {
	return Snapshot{Kind: KindCircle, X: c.X, Y: c.Y, Radius: c.Radius}
}

func (c *Circle) String() string { return c.Snapshot().String() }

func (*Circle) sealed() {}

// Rectangle has its origin (X, Y) at the bottom-left corner.
type Rectangle struct {
	X, Y   float64
	Height float64
	Width  float64
}

// NewRectangle returns a rectangle whose bottom-left corner is (x, y).
func NewRectangle(x, y, height, width float64) *Rectangle {
	return &Rectangle{X: x, Y: y, Height: height, Width: width}
}

func (r *Rectangle) Area() float64         { return r.Height * r.Width }
func (r *Rectangle) TopBorder() float64    { return r.Y + r.Height }
func (r *Rectangle) BottomBorder() float64 { return r.Y }
func (r *Rectangle) LeftBorder() float64   { return r.X }
func (r *Rectangle) RightBorder() float64  { return r.X + r.Width }

// Move translates the origin by (dx, dy).
func (r *Rectangle) Move(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

func (r *Rectangle) Snapshot() Snapshot {
	return Snapshot{Kind: KindRectangle, X: r.X, Y: r.Y, Height: r.Height, Width: r.Width}
}

func (r *Rectangle) String() string { return r.Snapshot().String() }

func (*Rectangle) sealed() {}

// Compare orders shapes by area. Shapes with equal areas compare equal.
func Compare(a, b Shape) int {
	return compareFloat(a.Area(), b.Area())
}

// CompareLeft orders shapes by their left border.
func CompareLeft(a, b Shape) int {
	return compareFloat(a.LeftBorder(), b.LeftBorder())
}

// CompareBottom orders shapes by their bottom border.
func CompareBottom(a, b Shape) int {
	return compareFloat(a.BottomBorder(), b.BottomBorder())
}

// compareFloat treats incomparable values (NaN) as equal so that stable
// sorting keeps their relative order.
func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Snapshot is a read-only copy of a shape's kind and numeric fields. Only the
// fields relevant to Kind are set.
type Snapshot struct {
	Kind   Kind    `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius,omitempty"`
	Height float64 `json:"height,omitempty"`
	Width  float64 `json:"width,omitempty"`
}

// String renders the snapshot as Circle(X=.., Y=.., Radius=..) or
// Rectangle(X=.., Y=.., Height=.., Width=..).
func (s Snapshot) String() string {
	switch s.Kind {
	case KindCircle:
		return fmt.Sprintf("Circle(X=%s, Y=%s, Radius=%s)", num(s.X), num(s.Y), num(s.Radius))
	case KindRectangle:
		return fmt.Sprintf("Rectangle(X=%s, Y=%s, Height=%s, Width=%s)",
			num(s.X), num(s.Y), num(s.Height), num(s.Width))
	default:
		return fmt.Sprintf("Shape(%s)", s.Kind)
	}
}

// MarshalJSON writes non-finite values as strings ("+Inf", "NaN"), since
// encoding/json rejects them as numbers. Zero sizes are omitted.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	type wire struct {
		Kind   Kind `json:"kind"`
		X      any  `json:"x"`
		Y      any  `json:"y"`
		Radius any  `json:"radius,omitempty"`
		Height any  `json:"height,omitempty"`
		Width  any  `json:"width,omitempty"`
	}
	w := wire{Kind: s.Kind, X: jsonNumber(s.X), Y: jsonNumber(s.Y)}
	if s.Radius != 0 {
		w.Radius = jsonNumber(s.Radius)
	}
	if s.Height != 0 {
		w.Height = jsonNumber(s.Height)
	}
	if s.Width != 0 {
		w.Width = jsonNumber(s.Width)
	}
	return json.Marshal(w)
}

func jsonNumber(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return num(v)
	}
	return v
}

// Area returns the area described by the snapshot.
func (s Snapshot) Area() float64 {
	switch s.Kind {
	case KindCircle:
		return math.Pi * s.Radius * s.Radius
	case KindRectangle:
		return s.Height * s.Width
	default:
		return 0
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
