package geom

import "fmt"

// DimensionError reports an operation between vectors of unequal
// dimensionality. Mixing dimensions is always an explicit failure, not
// a silent truncation.
type DimensionError struct {
	Left  int
	Right int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("geom: dimension mismatch: %d != %d", e.Left, e.Right)
}

// UnsupportedKindError reports a containment or intersection query
// against an operand kind outside {Vector, Rectangle, Circle, Entity}.
type UnsupportedKindError struct {
	Value any
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("geom: unsupported volume kind %T", e.Value)
}
