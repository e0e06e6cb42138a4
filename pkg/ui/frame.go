package ui

import "github.com/opd-ai/go-gamekit/pkg/geom"

// Frame is a container widget. Children are kept in insertion order;
// later children sit in front of earlier ones for hit-testing.
type Frame struct {
	Base
	children []Widget
}

// NewFrame returns an empty frame with the given bounds.
func NewFrame(bounds geom.Rectangle) *Frame {
	f := &Frame{}
	f.SetBounds(bounds)
	return f
}

// Add appends a child to the front of the hit-test order.
func (f *Frame) Add(w Widget) {
	f.children = append(f.children, w)
}

// Remove drops a child. Removing an unknown widget is a no-op.
func (f *Frame) Remove(w Widget) {
	for i, child := range f.children {
		if child == w {
			f.children = append(f.children[:i], f.children[i+1:]...)
			return
		}
	}
}

// Children returns the frame's children in insertion (back-to-front)
// order.
func (f *Frame) Children() []Widget {
	return f.children
}

// HitTest walks the children front-to-back and returns the first hit.
// A point inside the frame but over no child hits the frame itself.
func (f *Frame) HitTest(p geom.Vector) Widget {
	if !f.bounds.ContainsPoint(p) {
		return nil
	}
	for i := len(f.children) - 1; i >= 0; i-- {
		if hit := f.children[i].HitTest(p); hit != nil {
			return hit
		}
	}
	return f
}
