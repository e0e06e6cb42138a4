package geom

import "math"

// Circle is a radial volume anchored at its center.
type Circle struct {
	Entity
	radius float64
}

// NewCircle returns the circle with the given center and radius.
func NewCircle(center Vector, radius float64) Circle {
	return Circle{Entity: NewEntity(center), radius: radius}
}

// CircleFromPoints returns the circle centered at center whose
// circumference passes through circum.
func CircleFromPoints(center, circum Vector) Circle {
	return Circle{Entity: NewEntity(center), radius: planarDistance(center, circum)}
}

// Radius returns the circle's radius.
func (c Circle) Radius() float64 {
	return c.radius
}

// Diameter returns twice the radius.
func (c Circle) Diameter() float64 {
	return c.radius * 2
}

// Width returns the diameter.
func (c Circle) Width() float64 {
	return c.Diameter()
}

// Height returns the diameter.
func (c Circle) Height() float64 {
	return c.Diameter()
}

// Size returns (diameter, diameter).
func (c Circle) Size() Size {
	return SizeOf(c.Diameter(), c.Diameter())
}

// Center returns the circle's center, which is also its anchor.
func (c Circle) Center() Vector {
	return c.Position()
}

// PointAt returns the point on the circumference at the given angle in
// radians.
func (c Circle) PointAt(rad float64) Vector {
	sin, cos := math.Sincos(rad)
	p, _ := c.Position().Add(Vec2(cos, sin).Scale(c.radius))
	return p
}

// ContainsPoint reports whether a point lies within the circle,
// circumference included.
func (c Circle) ContainsPoint(p Vector) bool {
	return planarDistance(c.Position(), p) <= c.radius
}

// ContainsRect reports whether the rectangle's top-left and
// bottom-right corners both lie inside the circle. Only those two
// corners are checked, so a rectangle whose remaining corners poke out
// of the circle still reports as contained. The partial test is part
// of the containment contract.
func (c Circle) ContainsRect(r Rectangle) bool {
	return c.ContainsPoint(r.Position()) &&
		c.ContainsPoint(Vec2(r.Right(), r.Bottom()))
}

// ContainsCircle reports whether other fits entirely inside c: the
// radius must be strictly larger and the center distance strictly less
// than the radius difference. A circle never contains one of equal or
// greater radius.
func (c Circle) ContainsCircle(other Circle) bool {
	if c.radius <= other.radius {
		return false
	}
	return planarDistance(c.Position(), other.Position()) < c.radius-other.radius
}

// Contains dispatches by the runtime kind of other, mirroring
// Rectangle.Contains.
func (c Circle) Contains(other any) (bool, error) {
	switch o := other.(type) {
	case Vector:
		return c.ContainsPoint(o), nil
	case Rectangle:
		return c.ContainsRect(o), nil
	case *Rectangle:
		return c.ContainsRect(*o), nil
	case Circle:
		return c.ContainsCircle(o), nil
	case *Circle:
		return c.ContainsCircle(*o), nil
	case Positioned: // keep last
		return c.ContainsPoint(o.Position()), nil
	}
	return false, &UnsupportedKindError{Value: other}
}

// WithRadius returns a circle at the same center with a new radius.
// This is the circle's volume-offset operation: it resizes rather than
// translating or inflating.
func (c Circle) WithRadius(radius float64) Circle {
	return Circle{Entity: c.Entity, radius: radius}
}

// Translate returns a copy of the circle shifted by v.
func (c Circle) Translate(v Vector) (Circle, error) {
	center, err := c.Position().Add(v)
	if err != nil {
		return Circle{}, err
	}
	return NewCircle(center, c.radius), nil
}

// Components returns (x, y, radius) as a flat slice.
func (c Circle) Components() []float64 {
	return []float64{c.Position().X(), c.Position().Y(), c.radius}
}

// IntComponents returns Components truncated toward zero.
func (c Circle) IntComponents() []int {
	return []int{int(c.Position().X()), int(c.Position().Y()), int(c.radius)}
}

// planarDistance is the distance between two points in the x/y plane.
// Volume queries are 2D; any z component is ignored.
func planarDistance(a, b Vector) float64 {
	return math.Hypot(a.X()-b.X(), a.Y()-b.Y())
}
