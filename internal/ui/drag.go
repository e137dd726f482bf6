// Package ui holds the per-view pointer state shared by the narrative
// and slide views.
package ui

import (
	"fmt"

	"github.com/rjkroege/colloquium/stylesheet"
)

// DragState is the phase of a pointer gesture.
type DragState int

const (
	Idle      DragState = iota
	CouldDrag           // button down, no motion yet
	Dragging
)

func (s DragState) String() string {
	switch s {
	case Idle:
		return "idle"
	case CouldDrag:
		return "could-drag"
	case Dragging:
		return "dragging"
	}
	return fmt.Sprintf("DragState(%d)", int(s))
}

// Reason is what a drag does. It is decided when the button goes down
// and does not change until it comes up.
type Reason int

const (
	NoReason Reason = iota
	Create
	Move
	Resize
	TextSelect
	Import
)

var reasonNames = [...]string{
	NoReason:   "none",
	Create:     "create",
	Move:       "move",
	Resize:     "resize",
	TextSelect: "text-select",
	Import:     "import",
}

func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("Reason(%d)", int(r))
	}
	return reasonNames[r]
}

// Corner is a frame corner grabbed by a resize.
type Corner int

const (
	NoCorner Corner = iota
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

// HotZone is the side of the square at each frame corner in which a
// button press starts a resize.
const HotZone = 20

// CornerAt returns the corner of r whose hot zone holds (x, y). Zones
// are clipped to r so a small frame still has a middle.
func CornerAt(r stylesheet.Rect, x, y float64) Corner {
	if !r.Contains(x, y) {
		return NoCorner
	}
	zw, zh := min(HotZone, r.W/2), min(HotZone, r.H/2)
	left, right := x < r.X+zw, x >= r.X+r.W-zw
	top, bottom := y < r.Y+zh, y >= r.Y+r.H-zh
	switch {
	case top && left:
		return TopLeft
	case top && right:
		return TopRight
	case bottom && left:
		return BottomLeft
	case bottom && right:
		return BottomRight
	}
	return NoCorner
}

// ResizeRect moves corner c of r by (dx, dy). The opposite corner stays
// put and the result never has a negative extent.
func ResizeRect(r stylesheet.Rect, c Corner, dx, dy float64) stylesheet.Rect {
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
	switch c {
	case TopLeft:
		x0, y0 = x0+dx, y0+dy
	case TopRight:
		x1, y0 = x1+dx, y0+dy
	case BottomLeft:
		x0, y1 = x0+dx, y1+dy
	case BottomRight:
		x1, y1 = x1+dx, y1+dy
	default:
		return r
	}
	return Span(x0, y0, x1, y1)
}

// Span returns the rectangle with corners (x0, y0) and (x1, y1) in any
// order.
func Span(x0, y0, x1, y1 float64) stylesheet.Rect {
	return stylesheet.Rect{
		X: min(x0, x1),
		Y: min(y0, y1),
		W: max(x0, x1) - min(x0, x1),
		H: max(y0, y1) - min(y0, y1),
	}
}

// Drag follows one gesture from button down to button up. The zero
// value is Idle.
type Drag struct {
	state  DragState
	reason Reason
	corner Corner
	item   int

	startX, startY float64
	lastX, lastY   float64
}

// Down starts a gesture at (x, y) on item, or -1 for none. The corner
// is only kept for Resize.
func (d *Drag) Down(x, y float64, reason Reason, item int, c Corner) {
	if reason != Resize {
		c = NoCorner
	}
	*d = Drag{
		state:  CouldDrag,
		reason: reason,
		corner: c,
		item:   item,
		startX: x,
		startY: y,
		lastX:  x,
		lastY:  y,
	}
}

// Motion records pointer motion and returns the step since the last
// call. It reports false while Idle.
func (d *Drag) Motion(x, y float64) (dx, dy float64, ok bool) {
	if d.state == Idle {
		return 0, 0, false
	}
	d.state = Dragging
	dx, dy = x-d.lastX, y-d.lastY
	d.lastX, d.lastY = x, y
	return dx, dy, true
}

// Up ends the gesture and reports whether the pointer moved while the
// button was down.
func (d *Drag) Up() (dragged bool) {
	dragged = d.state == Dragging
	*d = Drag{}
	return dragged
}

func (d *Drag) State() DragState { return d.state }
func (d *Drag) Reason() Reason   { return d.reason }
func (d *Drag) Corner() Corner   { return d.corner }
func (d *Drag) Item() int        { return d.item }

// Start returns where the button went down.
func (d *Drag) Start() (x, y float64) { return d.startX, d.startY }

// Last returns the latest pointer position.
func (d *Drag) Last() (x, y float64) { return d.lastX, d.lastY }

// Swept returns the rectangle between the start and the latest position.
func (d *Drag) Swept() stylesheet.Rect {
	return Span(d.startX, d.startY, d.lastX, d.lastY)
}
