package animation

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/opd-ai/go-gamekit/pkg/geom"
)

// Tween eases a 2D entity's position toward a target over a fixed
// duration. Call Update every frame until it reports done; the tween
// writes positions through the entity's setter each step.
type Tween struct {
	x, y   *gween.Tween
	target *geom.Entity
	done   bool
}

// NewTween returns a tween moving target from its current position to
// the given point over duration seconds. The entity must be
// 2-dimensional.
func NewTween(target *geom.Entity, to geom.Vector, duration float32, fn ease.TweenFunc) (*Tween, error) {
	if target.Position().Dim() != 2 || to.Dim() != 2 {
		return nil, &geom.DimensionError{Left: target.Position().Dim(), Right: to.Dim()}
	}
	from := target.Position()
	return &Tween{
		x:      gween.New(float32(from.X()), float32(to.X()), duration, fn),
		y:      gween.New(float32(from.Y()), float32(to.Y()), duration, fn),
		target: target,
	}, nil
}

// Update advances the tween by dt seconds, writes the eased position
// to the target, and reports whether the tween has completed.
func (t *Tween) Update(dt float32) bool {
	if t.done {
		return true
	}
	xv, xdone := t.x.Update(dt)
	yv, ydone := t.y.Update(dt)
	t.target.SetCoords(float64(xv), float64(yv))
	t.done = xdone && ydone
	return t.done
}

// Done reports whether the tween has completed.
func (t *Tween) Done() bool { return t.done }
