// Package ui provides a minimal retained widget tree for hit-testing
// and layout over the geometry core. It knows nothing about rendering:
// widgets carry bounds and pointer state, and a theme layer elsewhere
// decides what they look like.
package ui

import "github.com/opd-ai/go-gamekit/pkg/geom"

// Widget is a node in the UI tree with rectangular bounds.
type Widget interface {
	// Bounds returns the widget's screen rectangle.
	Bounds() geom.Rectangle

	// SetBounds replaces the widget's screen rectangle.
	SetBounds(geom.Rectangle)

	// HitTest returns the front-most widget under the point, or nil
	// when the point misses this widget entirely.
	HitTest(p geom.Vector) Widget
}

// Base carries the bounds shared by all widgets.
type Base struct {
	bounds geom.Rectangle
}

// Bounds returns the widget's rectangle.
func (b *Base) Bounds() geom.Rectangle { return b.bounds }

// SetBounds replaces the widget's rectangle.
func (b *Base) SetBounds(r geom.Rectangle) { b.bounds = r }

// Label is a passive widget: it occupies space but never captures
// pointer hits.
type Label struct {
	Base
	Text string
}

// NewLabel returns a label with the given bounds and text.
func NewLabel(bounds geom.Rectangle, text string) *Label {
	l := &Label{Text: text}
	l.SetBounds(bounds)
	return l
}

// HitTest always reports a miss; labels are transparent to pointers.
func (l *Label) HitTest(geom.Vector) Widget { return nil }
