package trigger

import "github.com/opd-ai/go-gamekit/pkg/geom"

// Proximity fires when a watched entity enters a bounding volume and
// re-arms when it leaves, so each visit fires exactly once. Proximity
// triggers never auto-remove; they watch for as long as they are
// registered.
type Proximity struct {
	Base
	target geom.Positioned
	volume geom.Volume
}

// NewProximity returns a trigger watching target against volume.
func NewProximity(name string, target geom.Positioned, volume geom.Volume, callback Callback) *Proximity {
	return &Proximity{
		Base:   NewBase(name, callback, false),
		target: target,
		volume: volume,
	}
}

// Update checks containment and fires on entry. Leaving the volume
// resets the trigger so the next entry fires again.
func (p *Proximity) Update(dt float64) bool {
	if p.volume.ContainsPoint(p.target.Position()) {
		if !p.triggered {
			p.fire(p)
		}
	} else if p.triggered {
		p.Reset()
	}
	return false
}

// Volume returns the watched bounding volume.
func (p *Proximity) Volume() geom.Volume { return p.volume }

// Target returns the watched entity.
func (p *Proximity) Target() geom.Positioned { return p.target }
