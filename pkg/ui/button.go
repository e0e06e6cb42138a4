package ui

import "github.com/opd-ai/go-gamekit/pkg/geom"

// State is a button's pointer interaction state.
type State int

const (
	StateUp State = iota
	StateHover
	StateDown
)

// Button is a clickable widget. Feed it pointer events; it tracks
// up/hover/down state and fires its callback on a completed click
// (press and release both inside the bounds).
type Button struct {
	Base
	Text    string
	state   State
	onClick func(*Button)
}

// NewButton returns a button with the given bounds, caption and click
// callback.
func NewButton(bounds geom.Rectangle, text string, onClick func(*Button)) *Button {
	b := &Button{Text: text, onClick: onClick}
	b.SetBounds(bounds)
	return b
}

// State returns the current interaction state.
func (b *Button) State() State { return b.state }

// HitTest reports the button itself when the point is inside.
func (b *Button) HitTest(p geom.Vector) Widget {
	if b.bounds.ContainsPoint(p) {
		return b
	}
	return nil
}

// PointerMove updates hover state. A held button stays down while the
// pointer remains inside and releases to hover tracking when it
// leaves.
func (b *Button) PointerMove(p geom.Vector) {
	inside := b.bounds.ContainsPoint(p)
	switch {
	case b.state == StateDown && inside:
		// held
	case inside:
		b.state = StateHover
	default:
		b.state = StateUp
	}
}

// PointerDown presses the button when the point is inside.
func (b *Button) PointerDown(p geom.Vector) {
	if b.bounds.ContainsPoint(p) {
		b.state = StateDown
	}
}

// PointerUp releases the button. A release inside the bounds of a
// pressed button fires the click callback.
func (b *Button) PointerUp(p geom.Vector) {
	pressed := b.state == StateDown
	if b.bounds.ContainsPoint(p) {
		b.state = StateHover
		if pressed && b.onClick != nil {
			b.onClick(b)
		}
	} else {
		b.state = StateUp
	}
}
