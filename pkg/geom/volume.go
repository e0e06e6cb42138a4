package geom

// Volume is a positioned region of space supporting containment
// queries. Rectangle and Circle are the two concrete volumes. The
// position is the volume's anchor point: the top-left corner for a
// Rectangle, the center for a Circle.
//
// Containment is evaluated with the querying volume's semantics and is
// not symmetric: a.Contains(b) and b.Contains(a) answer different
// questions.
type Volume interface {
	Positioned

	// Center returns the volume's geometric center.
	Center() Vector

	// Width and Height return the volume's extent along each axis.
	Width() float64
	Height() float64

	// Size returns (Width, Height) as a Size.
	Size() Size

	// ContainsPoint reports whether a point lies inside the volume,
	// boundary included.
	ContainsPoint(p Vector) bool

	// Contains dispatches a containment query over the supported
	// operand kinds: Vector, Rectangle, Circle, and anything
	// Positioned. Any other kind reports an UnsupportedKindError.
	Contains(other any) (bool, error)
}

var (
	_ Volume = Rectangle{}
	_ Volume = Circle{}
)
