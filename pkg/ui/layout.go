package ui

import "github.com/opd-ai/go-gamekit/pkg/geom"

// Flags select layout behavior when placing content inside a
// rectangle.
type Flags uint8

const (
	CenterHorz Flags = 1 << iota
	CenterVert
	PadHorz
	PadVert
)

const (
	CenterFull = CenterHorz | CenterVert
	PadFull    = PadHorz | PadVert
)

// Align places content of the given size inside outer according to
// flags and returns its top-left position. Padding shrinks the usable
// area on both sides of each padded axis before centering.
func Align(outer geom.Rectangle, content geom.Size, flags Flags, padding float64) geom.Vector {
	left, top, right, bottom := outer.Sides()
	if flags&PadHorz != 0 {
		left += padding
		right -= padding
	}
	if flags&PadVert != 0 {
		top += padding
		bottom -= padding
	}

	x, y := left, top
	if flags&CenterHorz != 0 {
		x = left + ((right-left)-content.W())/2
	}
	if flags&CenterVert != 0 {
		y = top + ((bottom-top)-content.H())/2
	}
	return geom.Vec2(x, y)
}
