// Package slide holds the freeform frames of a single slide and the
// text editing scoped to one frame.
package slide

import (
	"fmt"

	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/stylesheet"
)

// Slide owns an ordered list of frames. Later frames are on top.
type Slide struct {
	items []Item

	hasSize bool
	w, h    float64

	rev uint64
}

// New returns an empty slide using the stylesheet's slide size.
func New(items ...Item) *Slide {
	return &Slide{items: items}
}

// NumItems returns the number of frames.
func (s *Slide) NumItems() int { return len(s.items) }

// Item returns frame i.
func (s *Slide) Item(i int) Item { return s.items[i] }

// Items returns the frames. The slice must not be modified.
func (s *Slide) Items() []Item { return s.items }

// Rev returns a counter bumped by every change made through Slide
// methods.
func (s *Slide) Rev() uint64 { return s.rev }

// Changed records a change made to a frame's paragraphs directly.
func (s *Slide) Changed() { s.rev++ }

// AddItem appends a frame on top of the others and returns its index.
func (s *Slide) AddItem(it Item) int {
	s.items = append(s.items, it)
	s.rev++
	return len(s.items) - 1
}

// DeleteItem removes frame i.
func (s *Slide) DeleteItem(i int) {
	s.check("DeleteItem", i)
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.rev++
}

func (s *Slide) check(op string, i int) {
	if i < 0 || i >= len(s.items) {
		panic(fmt.Sprint("slide.", op, ": item ", i, " outside slide of ", len(s.items), " items"))
	}
}

// SetSize gives the slide an explicit logical size.
func (s *Slide) SetSize(w, h float64) {
	s.hasSize, s.w, s.h = true, w, h
	s.rev++
}

// ClearSize reverts to the stylesheet's slide size.
func (s *Slide) ClearSize() {
	s.hasSize = false
	s.rev++
}

// HasSize reports whether the slide has an explicit size.
func (s *Slide) HasSize() bool { return s.hasSize }

// Size returns the logical slide size.
func (s *Slide) Size(sheet stylesheet.Sheet) (w, h float64) {
	if s.hasSize {
		return s.w, s.h
	}
	return sheet.SlideSize()
}

// Geom returns the absolute rectangle of frame i. Frames placed by the
// stylesheet report false when their style is missing.
func (s *Slide) Geom(i int, sheet stylesheet.Sheet) (stylesheet.Rect, bool) {
	s.check("Geom", i)
	w, h := s.Size(sheet)
	it := s.items[i]
	if g, ok := ownGeometry(it); ok {
		return g.Resolve(w, h), true
	}
	st, ok := sheet.Lookup(StyleName(it))
	if !ok {
		return stylesheet.Rect{}, false
	}
	return st.Geometry.Resolve(w, h), true
}

// Padding returns the absolute left, right, top and bottom padding of
// frame i.
func (s *Slide) Padding(i int, sheet stylesheet.Sheet) [4]float64 {
	s.check("Padding", i)
	st, ok := sheet.Lookup(StyleName(s.items[i]))
	if !ok {
		return [4]float64{}
	}
	w, h := s.Size(sheet)
	return stylesheet.ResolveSides(st.Padding, w, h)
}

// ParaSpace returns the absolute paragraph spacing of frame i.
func (s *Slide) ParaSpace(i int, sheet stylesheet.Sheet) [4]float64 {
	s.check("ParaSpace", i)
	st, ok := sheet.Lookup(StyleName(s.items[i]))
	if !ok {
		return [4]float64{}
	}
	w, h := s.Size(sheet)
	return stylesheet.ResolveSides(st.ParaSpace, w, h)
}

// Alignment returns the effective alignment of frame i.
func (s *Slide) Alignment(i int, sheet stylesheet.Sheet) rich.Alignment {
	s.check("Alignment", i)
	def := rich.Left
	if st, ok := sheet.Lookup(StyleName(s.items[i])); ok {
		def = st.Align.Resolve(rich.Left)
	}
	if tf, ok := s.items[i].(*TextFrame); ok {
		return tf.Align.Resolve(def)
	}
	return def
}

// MoveItem shifts a freely placed frame by (dx, dy). Each geometry field
// keeps its unit. Frames placed by the stylesheet do not move.
func (s *Slide) MoveItem(i int, dx, dy float64, sheet stylesheet.Sheet) bool {
	s.check("MoveItem", i)
	r, ok := s.Geom(i, sheet)
	if !ok {
		return false
	}
	r.X += dx
	r.Y += dy
	return s.ResizeItem(i, r, sheet)
}

// ResizeItem places a freely placed frame at r. Each geometry field
// keeps its unit, so fractional frames keep scaling with the slide.
func (s *Slide) ResizeItem(i int, r stylesheet.Rect, sheet stylesheet.Sheet) bool {
	s.check("ResizeItem", i)
	g, ok := ownGeometry(s.items[i])
	if !ok {
		return false
	}
	w, h := s.Size(sheet)
	*g = g.WithRect(r, w, h)
	s.rev++
	return true
}

// ItemAt returns the topmost frame containing (x, y), or -1.
func (s *Slide) ItemAt(x, y float64, sheet stylesheet.Sheet) int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if r, ok := s.Geom(i, sheet); ok && r.Contains(x, y) {
			return i
		}
	}
	return -1
}

func (s *Slide) textOf(op string, i int) *Text {
	s.check(op, i)
	t, ok := TextOf(s.items[i])
	if !ok {
		panic(fmt.Sprintf("slide.%s: item %d (%T) holds no text", op, i, s.items[i]))
	}
	return t
}

// SplitTextParagraph splits paragraph para of frame i at off.
func (s *Slide) SplitTextParagraph(i, para, off int) {
	t := s.textOf("SplitTextParagraph", i)
	if para < 0 || para >= len(t.Paras) {
		panic(fmt.Sprint("slide.SplitTextParagraph: paragraph ", para, " outside ", len(t.Paras)))
	}
	t.splitParagraph(para, off)
	s.rev++
}

// DeleteText deletes from (p1, o1) to (p2, o2) within frame i. A span
// covering several paragraphs always merges the remains of the last one
// into the first.
func (s *Slide) DeleteText(i, p1, o1, p2, o2 int) {
	t := s.textOf("DeleteText", i)
	t.Paras = rich.DeleteSpan(t.Paras, p1, o1, p2, o2)
	s.rev++
}

// InsertTextInParagraph inserts text into paragraph para of frame i.
func (s *Slide) InsertTextInParagraph(i, para, off int, text string) {
	t := s.textOf("InsertTextInParagraph", i)
	if para < 0 || para >= len(t.Paras) {
		panic(fmt.Sprint("slide.InsertTextInParagraph: paragraph ", para, " outside ", len(t.Paras)))
	}
	t.Paras[para].Insert(off, text)
	s.rev++
}
