// Package geom provides the geometric primitives shared by the rest of
// go-gamekit: a small fixed-dimension vector type, positioned entities,
// rays, and the Rectangle/Circle bounding volumes with their containment
// and intersection queries.
package geom

import (
	"fmt"
	"math"
	"strings"
)

// MaxDim is the highest vector dimensionality the library supports.
const MaxDim = 3

// Vector is a 2- or 3-component vector. The dimension is fixed at
// construction; operations between vectors of different dimensions
// report a DimensionError. The zero Vector has dimension zero and is
// only useful as an "absent" value.
//
// Vector is a value type: plain assignment copies it. Methods with
// pointer receivers mutate the receiver in place, everything else
// returns a new value.
type Vector struct {
	c [MaxDim]float64
	n int
}

// Vec2 returns a 2D vector.
func Vec2(x, y float64) Vector {
	return Vector{c: [MaxDim]float64{x, y}, n: 2}
}

// Vec3 returns a 3D vector.
func Vec3(x, y, z float64) Vector {
	return Vector{c: [MaxDim]float64{x, y, z}, n: 3}
}

// New returns a vector with the given components. It fails unless
// exactly two or three coordinates are supplied.
func New(coords ...float64) (Vector, error) {
	if len(coords) < 2 || len(coords) > MaxDim {
		return Vector{}, &DimensionError{Left: len(coords), Right: MaxDim}
	}
	v := Vector{n: len(coords)}
	copy(v.c[:], coords)
	return v, nil
}

// Dim returns the vector's dimension.
func (v Vector) Dim() int {
	return v.n
}

// At returns the i-th component. It panics if i is outside [0, Dim()),
// matching slice indexing semantics.
func (v Vector) At(i int) float64 {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("geom: component index %d out of range for %d-dimensional vector", i, v.n))
	}
	return v.c[i]
}

// SetAt replaces the i-th component. It panics if i is outside [0, Dim()).
func (v *Vector) SetAt(i int, value float64) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("geom: component index %d out of range for %d-dimensional vector", i, v.n))
	}
	v.c[i] = value
}

// X returns the first component.
func (v Vector) X() float64 { return v.At(0) }

// Y returns the second component.
func (v Vector) Y() float64 { return v.At(1) }

// Z returns the third component.
func (v Vector) Z() float64 { return v.At(2) }

// SetX replaces the first component.
func (v *Vector) SetX(x float64) { v.SetAt(0, x) }

// SetY replaces the second component.
func (v *Vector) SetY(y float64) { v.SetAt(1, y) }

// SetZ replaces the third component.
func (v *Vector) SetZ(z float64) { v.SetAt(2, z) }

// Add returns the component-wise sum of two vectors.
func (v Vector) Add(other Vector) (Vector, error) {
	if v.n != other.n {
		return Vector{}, &DimensionError{Left: v.n, Right: other.n}
	}
	out := v
	for i := 0; i < v.n; i++ {
		out.c[i] += other.c[i]
	}
	return out, nil
}

// AddAssign adds other to v in place.
func (v *Vector) AddAssign(other Vector) error {
	if v.n != other.n {
		return &DimensionError{Left: v.n, Right: other.n}
	}
	for i := 0; i < v.n; i++ {
		v.c[i] += other.c[i]
	}
	return nil
}

// Sub returns the component-wise difference of two vectors.
func (v Vector) Sub(other Vector) (Vector, error) {
	if v.n != other.n {
		return Vector{}, &DimensionError{Left: v.n, Right: other.n}
	}
	out := v
	for i := 0; i < v.n; i++ {
		out.c[i] -= other.c[i]
	}
	return out, nil
}

// SubAssign subtracts other from v in place.
func (v *Vector) SubAssign(other Vector) error {
	if v.n != other.n {
		return &DimensionError{Left: v.n, Right: other.n}
	}
	for i := 0; i < v.n; i++ {
		v.c[i] -= other.c[i]
	}
	return nil
}

// Scale returns the vector multiplied by a scalar.
func (v Vector) Scale(factor float64) Vector {
	out := v
	for i := 0; i < v.n; i++ {
		out.c[i] *= factor
	}
	return out
}

// ScaleAssign multiplies v by a scalar in place.
func (v *Vector) ScaleAssign(factor float64) {
	for i := 0; i < v.n; i++ {
		v.c[i] *= factor
	}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(other Vector) (float64, error) {
	if v.n != other.n {
		return 0, &DimensionError{Left: v.n, Right: other.n}
	}
	var sum float64
	for i := 0; i < v.n; i++ {
		sum += v.c[i] * other.c[i]
	}
	return sum, nil
}

// Neg returns the component-wise negation of the vector.
func (v Vector) Neg() Vector {
	out := v
	for i := 0; i < v.n; i++ {
		out.c[i] = -out.c[i]
	}
	return out
}

// Equal reports whether two vectors have the same dimension and equal
// components. Vectors of different dimensions are never equal.
func (v Vector) Equal(other Vector) bool {
	if v.n != other.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if v.c[i] != other.c[i] {
			return false
		}
	}
	return true
}

// Length returns the Euclidean magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the magnitude squared (cheaper for comparisons).
func (v Vector) LengthSquared() float64 {
	var sum float64
	for i := 0; i < v.n; i++ {
		sum += v.c[i] * v.c[i]
	}
	return sum
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	for i := 0; i < v.n; i++ {
		if v.c[i] != 0 {
			return false
		}
	}
	return true
}

// Normalize returns a unit-length copy of the vector. Normalizing a
// zero-length vector returns the vector unchanged rather than failing,
// so callers never see a divide-by-zero.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Scale(1 / length)
}

// Truncate returns a copy with every component truncated toward zero.
func (v Vector) Truncate() Vector {
	out := v
	for i := 0; i < v.n; i++ {
		out.c[i] = math.Trunc(out.c[i])
	}
	return out
}

// Clear zeroes every component in place.
func (v *Vector) Clear() {
	for i := 0; i < v.n; i++ {
		v.c[i] = 0
	}
}

// Set replaces all components. The number of coordinates must match the
// vector's dimension.
func (v *Vector) Set(coords ...float64) error {
	if len(coords) != v.n {
		return &DimensionError{Left: v.n, Right: len(coords)}
	}
	copy(v.c[:v.n], coords)
	return nil
}

// Distance returns the Euclidean distance between two vectors.
func (v Vector) Distance(other Vector) (float64, error) {
	diff, err := v.Sub(other)
	if err != nil {
		return 0, err
	}
	return diff.Length(), nil
}

// Lerp returns the linear interpolation from v toward other by fraction d.
// The fraction is not clamped: values outside [0, 1] extrapolate.
func (v Vector) Lerp(other Vector, d float64) (Vector, error) {
	diff, err := other.Sub(v)
	if err != nil {
		return Vector{}, err
	}
	out, _ := v.Add(diff.Scale(d))
	return out, nil
}

// Components returns the components as a flat slice.
func (v Vector) Components() []float64 {
	out := make([]float64, v.n)
	copy(out, v.c[:v.n])
	return out
}

// IntComponents returns the components truncated toward zero.
func (v Vector) IntComponents() []int {
	out := make([]int, v.n)
	for i := 0; i < v.n; i++ {
		out[i] = int(v.c[i])
	}
	return out
}

func (v Vector) String() string {
	parts := make([]string, v.n)
	for i := 0; i < v.n; i++ {
		parts[i] = fmt.Sprintf("%g", v.c[i])
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// Size is a Vector whose components are read as extents rather than
// coordinates: width, height and (for 3D) length.
type Size struct {
	Vector
}

// SizeOf returns a 2D size.
func SizeOf(w, h float64) Size {
	return Size{Vec2(w, h)}
}

// SizeOf3 returns a 3D size.
func SizeOf3(w, h, l float64) Size {
	return Size{Vec3(w, h, l)}
}

// W returns the width component.
func (s Size) W() float64 { return s.At(0) }

// H returns the height component.
func (s Size) H() float64 { return s.At(1) }

// L returns the length (depth) component.
func (s Size) L() float64 { return s.At(2) }

// SetW replaces the width component.
func (s *Size) SetW(w float64) { s.SetAt(0, w) }

// SetH replaces the height component.
func (s *Size) SetH(h float64) { s.SetAt(1, h) }

// SetL replaces the length component.
func (s *Size) SetL(l float64) { s.SetAt(2, l) }
