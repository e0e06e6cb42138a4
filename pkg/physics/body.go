// Package physics provides velocity-based movement for positioned
// entities. It deliberately stops at kinematics: no forces, no
// collision response, just capped velocity integration and a bounding
// circle for the trigger and collision consumers.
package physics

import (
	"github.com/opd-ai/go-gamekit/pkg/geom"
)

// Default physical attributes applied when a zero Attributes is used.
const (
	DefaultMaxVelocity = 10.0
	DefaultMass        = 10.0
	DefaultRadius      = 10.0
)

// Attributes describes a body's physical properties.
type Attributes struct {
	MaxVelocity float64
	Mass        float64
	Radius      float64
}

// DefaultAttributes returns the package default attributes.
func DefaultAttributes() Attributes {
	return Attributes{
		MaxVelocity: DefaultMaxVelocity,
		Mass:        DefaultMass,
		Radius:      DefaultRadius,
	}
}

// Body is a positioned entity with velocity. Velocity is capped at the
// body's MaxVelocity both on write and on every update.
type Body struct {
	geom.Entity
	Attrs Attributes

	vel geom.Vector
}

// NewBody returns a body at rest at the given position.
func NewBody(pos geom.Vector, attrs Attributes) *Body {
	return &Body{
		Entity: geom.NewEntity(pos),
		Attrs:  attrs,
		vel:    pos.Scale(0), // zero vector of matching dimension
	}
}

// Velocity returns the body's current velocity.
func (b *Body) Velocity() geom.Vector {
	return b.vel
}

// SetVelocity replaces the velocity, capping it at MaxVelocity.
func (b *Body) SetVelocity(vel geom.Vector) error {
	if vel.Dim() != b.Position().Dim() {
		return &geom.DimensionError{Left: b.Position().Dim(), Right: vel.Dim()}
	}
	if vel.Length() > b.Attrs.MaxVelocity {
		vel = vel.Normalize().Scale(b.Attrs.MaxVelocity)
	}
	b.vel = vel
	return nil
}

// SetPosition teleports the body and clears its velocity. A moved body
// does not keep momentum from wherever it used to be.
func (b *Body) SetPosition(pos geom.Vector) {
	b.Entity.SetPosition(pos)
	b.vel = pos.Scale(0)
}

// Update advances the body's position by one time step. The velocity
// cap is re-applied first so direct writes through embedded fields
// cannot exceed it.
func (b *Body) Update(dt float64) {
	if b.vel.Length() > b.Attrs.MaxVelocity {
		b.vel = b.vel.Normalize().Scale(b.Attrs.MaxVelocity)
	}
	b.Move(b.vel.Scale(dt))
}

// IsMoving reports whether the body has any velocity.
func (b *Body) IsMoving() bool {
	return !b.vel.IsZero()
}

// Bounds returns the body's bounding circle, centered at its current
// position with the attribute radius.
func (b *Body) Bounds() geom.Circle {
	return geom.NewCircle(b.Position(), b.Attrs.Radius)
}
