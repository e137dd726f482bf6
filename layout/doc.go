package layout

import (
	"github.com/rjkroege/colloquium/narrative"
	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/shape"
	"github.com/rjkroege/colloquium/stylesheet"
)

// ensure wraps item i if it has never been wrapped. Geometry is never
// read from an item without a layout.
func (e *Engine) ensure(i int) {
	e.check("ensure", i)
	if !e.entries[i].wrapped {
		e.wrap(i)
	}
}

// Wrapped reports whether item i has a layout.
func (e *Engine) Wrapped(i int) bool {
	e.check("Wrapped", i)
	return e.entries[i].wrapped
}

func (e *Engine) NumItems() int { return len(e.entries) }

func (e *Engine) Paragraph(i int) *rich.Paragraph {
	return narrative.Paragraph(e.n.Item(i))
}

// Layout returns the shaped paragraph of item i, or nil for items
// without text.
func (e *Engine) Layout(i int) shape.Layout {
	e.ensure(i)
	return e.entries[i].layout
}

// ItemTop returns the y coordinate of the top of item i.
func (e *Engine) ItemTop(i int) float64 {
	e.check("ItemTop", i)
	y := e.docPadding()[stylesheet.Top]
	for j := 0; j < i; j++ {
		e.ensure(j)
		y += e.entries[j].height
	}
	return y
}

// ItemHeight returns the height of item i including its paragraph
// spacing.
func (e *Engine) ItemHeight(i int) float64 {
	e.ensure(i)
	return e.entries[i].height
}

// Inset returns the offset of the layout origin within item i.
func (e *Engine) Inset(i int) (x, y float64) {
	e.ensure(i)
	return e.docPadding()[stylesheet.Left] + e.entries[i].insetX, e.entries[i].insetY
}

// Visible returns the first and last items intersecting [top, bottom).
func (e *Engine) Visible(top, bottom float64) (first, last int) {
	first, last = -1, -1
	y := e.docPadding()[stylesheet.Top]
	for i := range e.entries {
		e.ensure(i)
		h := e.entries[i].height
		if y+h > top && y < bottom {
			if first < 0 {
				first = i
			}
			last = i
		}
		y += h
	}
	return first, last
}
