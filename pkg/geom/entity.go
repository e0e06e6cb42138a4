package geom

import "math"

// Entity is a positioned object. It is the base for everything in the
// library that lives somewhere: bounding volumes embed it, and the
// physics and trigger packages build on it.
type Entity struct {
	pos Vector
}

// NewEntity returns an entity at the given position.
func NewEntity(pos Vector) Entity {
	return Entity{pos: pos}
}

// Position returns the entity's position.
func (e Entity) Position() Vector {
	return e.pos
}

// SetPosition replaces the position wholesale.
func (e *Entity) SetPosition(pos Vector) {
	e.pos = pos
}

// SetCoords updates the first two components of the position without
// replacing the vector. The entity must be 2-dimensional.
func (e *Entity) SetCoords(x, y float64) error {
	return e.pos.Set(x, y)
}

// Move translates the position by an offset in place.
func (e *Entity) Move(offset Vector) error {
	return e.pos.AddAssign(offset)
}

// Positioned is satisfied by Entity and anything embedding it. The
// polymorphic containment queries fall back to it for operand kinds
// that carry a position but are not themselves volumes.
type Positioned interface {
	Position() Vector
}

// degreesPerRadian converts between the two angle units used by Ray.
const degreesPerRadian = 360 / (2 * math.Pi)

// Ray is an entity with an independently settable direction. The
// direction's dimension must match the position's; the constructors
// enforce this.
type Ray struct {
	Entity
	dir Vector
}

// NewRay returns a ray at pos pointing along dir.
func NewRay(pos, dir Vector) (Ray, error) {
	if pos.Dim() != dir.Dim() {
		return Ray{}, &DimensionError{Left: pos.Dim(), Right: dir.Dim()}
	}
	return Ray{Entity: NewEntity(pos), dir: dir}, nil
}

// RayFromPoints returns the ray from origin toward target.
func RayFromPoints(origin, target Vector) (Ray, error) {
	dir, err := target.Sub(origin)
	if err != nil {
		return Ray{}, err
	}
	return Ray{Entity: NewEntity(origin), dir: dir}, nil
}

// Dir returns the ray's direction.
func (r Ray) Dir() Vector {
	return r.dir
}

// SetDir replaces the direction.
func (r *Ray) SetDir(dir Vector) error {
	if dir.Dim() != r.Position().Dim() {
		return &DimensionError{Left: r.Position().Dim(), Right: dir.Dim()}
	}
	r.dir = dir
	return nil
}

// Set replaces both position and direction.
func (r *Ray) Set(pos, dir Vector) error {
	if pos.Dim() != dir.Dim() {
		return &DimensionError{Left: pos.Dim(), Right: dir.Dim()}
	}
	r.SetPosition(pos)
	r.dir = dir
	return nil
}

// Length returns the geometric length of the ray's direction.
func (r Ray) Length() float64 {
	return r.dir.Length()
}

// Angle returns the ray's heading in radians: atan2 of the direction
// plus a half turn, so the result lies in (0, 2π].
func (r Ray) Angle() float64 {
	return math.Atan2(r.dir.Y(), r.dir.X()) + math.Pi
}

// AngleDegrees returns Angle converted to degrees.
func (r Ray) AngleDegrees() float64 {
	return r.Angle() * degreesPerRadian
}

// Rotate rotates the direction by rad radians using the standard 2D
// rotation matrix. Both new components are computed from the original
// pair.
func (r *Ray) Rotate(rad float64) {
	sin, cos := math.Sincos(rad)
	x, y := r.dir.X(), r.dir.Y()
	r.dir.SetX(x*cos - y*sin)
	r.dir.SetY(x*sin + y*cos)
}

// RotateDegrees rotates the direction by deg degrees.
func (r *Ray) RotateDegrees(deg float64) {
	r.Rotate(deg / degreesPerRadian)
}

// EndPoint returns the point the ray reaches: position plus direction.
func (r Ray) EndPoint() Vector {
	// The dimension invariant is enforced by the constructors and setters.
	end, _ := r.Position().Add(r.dir)
	return end
}
