package cursor

import (
	"unicode/utf8"

	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/shape"
)

// Doc is a vertically stacked list of items, some of which hold a
// shaped paragraph. The wrap engine implements it over a narrative and
// the slide view over the paragraphs of a text frame.
type Doc interface {
	NumItems() int

	// Paragraph returns nil for items without text.
	Paragraph(i int) *rich.Paragraph

	// Layout returns the shaped paragraph of item i, wrapping it first
	// if needed. It returns nil for items without text.
	Layout(i int) shape.Layout

	ItemTop(i int) float64
	ItemHeight(i int) float64

	// Inset is the offset of the layout origin from the item's top left.
	Inset(i int) (x, y float64)
}

// MoveHorizontal moves pos one grapheme in direction dir (negative is
// backwards). Leaving a paragraph enters the neighbouring item: the end
// of the previous one or the start of the next. Movement stops at the
// first and last items.
func MoveHorizontal(d Doc, pos Pos, dir int) Pos {
	if l := d.Layout(pos.Item); l != nil {
		off, trail := l.MoveVisually(pos.Offset, pos.Trail, dir)
		if off >= 0 && off != shape.OffEnd {
			return Pos{Item: pos.Item, Offset: off, Trail: trail}
		}
	}

	if dir < 0 {
		if pos.Item == 0 {
			return pos
		}
		return End(d, pos.Item-1)
	}
	if pos.Item >= d.NumItems()-1 {
		return pos
	}
	return Pos{Item: pos.Item + 1}
}

// End returns the position after the last codepoint of item i.
func End(d Doc, i int) Pos {
	p := d.Paragraph(i)
	if p == nil || p.IsEmpty() {
		return Pos{Item: i}
	}
	_, sz := utf8.DecodeLastRuneInString(p.Text())
	return Pos{Item: i, Offset: p.Len() - sz, Trail: true}
}

// FindCursor maps a point in document coordinates to a position. Items
// without text resolve to offset 0. Points above the first item or below
// the last land in those items.
func FindCursor(d Doc, x, y float64) Pos {
	n := d.NumItems()
	for i := 0; i < n; i++ {
		top := d.ItemTop(i)
		if y >= top+d.ItemHeight(i) && i < n-1 {
			continue
		}
		l := d.Layout(i)
		if l == nil {
			return Pos{Item: i}
		}
		ix, iy := d.Inset(i)
		off, trail := l.IndexAt(x-ix, y-top-iy)
		return Pos{Item: i, Offset: off, Trail: trail}
	}
	return Pos{}
}
