// Package layout is the incremental wrap engine for a narrative. It
// keeps a shaped layout and a height per item, rewraps only the items
// an edit touched and maintains the document height by delta.
package layout

import (
	"fmt"
	"image"
	"log"
	"slices"

	"github.com/rjkroege/colloquium/cursor"
	"github.com/rjkroege/colloquium/narrative"
	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/shape"
	"github.com/rjkroege/colloquium/slide"
	"github.com/rjkroege/colloquium/stylesheet"
)

const (
	// EOPHeight is the height of an end of presentation marker.
	EOPHeight = 20

	// ThumbHeight is the height at which slides are shown in the narrative.
	ThumbHeight = 320

	// DefaultWidth is the available width of a new Engine.
	DefaultWidth = 600
)

// Thumbnailer renders a slide at a given height, keeping its aspect ratio.
type Thumbnailer interface {
	Thumbnail(s *slide.Slide, sheet stylesheet.Sheet, height float64) image.Image
}

type entry struct {
	wrapped bool
	layout  shape.Layout // nil for items without text
	height  float64
	insetX  float64
	insetY  float64
	thumbW  float64
	slide   *slide.Slide // set once a slide item is wrapped
}

type thumb struct {
	rev    uint64
	height float64
	img    image.Image
}

// Engine wraps the items of one narrative. It observes the narrative so
// that structural edits mark the affected items dirty.
type Engine struct {
	n           *narrative.Narrative
	shaper      shape.Shaper
	thumbnailer Thumbnailer
	width       float64
	sel         cursor.Selection

	entries []entry
	total   float64 // sum of entry heights

	dirtyMin, dirtyMax int // dirtyMin > dirtyMax when clean

	thumbs  map[*slide.Slide]thumb
	missing map[string]bool
}

var (
	_ narrative.Observer = (*Engine)(nil)
	_ cursor.Doc         = (*Engine)(nil)
)

// New returns an engine for n with every item dirty.
func New(n *narrative.Narrative, opts ...Option) *Engine {
	e := &Engine{
		n:       n,
		width:   DefaultWidth,
		entries: make([]entry, n.Len()),
		thumbs:  make(map[*slide.Slide]thumb),
		missing: make(map[string]bool),
	}
	for _, o := range opts {
		o(e)
	}
	if e.shaper == nil {
		e.shaper = shape.New(shape.NewGoFaces(72))
	}
	e.clean()
	e.markDirty(0, n.Len()-1)
	n.AddObserver(e)
	return e
}

// Close detaches e from its narrative.
func (e *Engine) Close() {
	e.n.DelObserver(e)
}

func (e *Engine) Narrative() *narrative.Narrative { return e.n }
func (e *Engine) Width() float64                  { return e.width }
func (e *Engine) Selection() cursor.Selection     { return e.sel }

func (e *Engine) check(op string, i int) {
	if i < 0 || i >= len(e.entries) {
		panic(fmt.Sprint("layout.", op, ": item ", i, " outside engine of ", len(e.entries), " items"))
	}
}

// style returns the style at path, falling back to an empty style with
// the default font. Each missing path is logged once.
func (e *Engine) style(path string) *stylesheet.Style {
	st, ok := e.n.Sheet().Lookup(path)
	if !ok {
		if !e.missing[path] {
			log.Printf("layout: no style %q", path)
			e.missing[path] = true
		}
		st = &stylesheet.Style{}
	}
	if st.Font == "" {
		c := *st
		c.Font = stylesheet.DefaultFont
		st = &c
	}
	return st
}

// docPadding returns the narrative's own padding.
func (e *Engine) docPadding() [4]float64 {
	st, ok := e.n.Sheet().Lookup(stylesheet.Narrative)
	if !ok {
		return [4]float64{}
	}
	return stylesheet.ResolveSides(st.Padding, e.width, e.width)
}

// WrapRange sets the width and selection and rewraps exactly the items
// in [lo, hi]. A new width leaves every other item dirty.
func (e *Engine) WrapRange(width float64, lo, hi int, sel cursor.Selection) {
	e.check("WrapRange", lo)
	e.check("WrapRange", hi)
	if width != e.width {
		e.width = width
		e.markDirty(0, lo-1)
		e.markDirty(hi+1, len(e.entries)-1)
	}
	e.sel = sel
	for i := lo; i <= hi; i++ {
		e.wrap(i)
	}
	if e.dirtyMin >= lo && e.dirtyMax <= hi {
		e.clean()
	}
}

// wrap lays out item i and updates the running total.
func (e *Engine) wrap(i int) {
	old := e.entries[i].height
	var en entry

	switch it := e.n.Item(i).(type) {
	case *narrative.EndOfPresentation:
		en.height = EOPHeight
	case *narrative.Slide:
		en.height = ThumbHeight
		en.thumbW = e.thumbWidth(it.Slide)
		en.slide = it.Slide
		e.thumbnail(it.Slide)
	default:
		p := narrative.Paragraph(it)
		st := e.style(narrative.StyleName(it))
		pad := stylesheet.ResolveSides(st.Padding, e.width, e.width)
		space := stylesheet.ResolveSides(st.ParaSpace, e.width, e.width)

		l := e.shaper.Shape(p.Runs, st.Font, e.width-pad[stylesheet.Left]-pad[stylesheet.Right], p.Align.Resolve(st.Align.Resolve(rich.Left)))
		if s, t, ok := e.highlight(i, p); ok {
			l.SetHighlight(s, t)
		}
		_, h := l.Size()
		en.layout = l
		en.insetX = pad[stylesheet.Left]
		en.insetY = space[stylesheet.Top]
		en.height = h + space[stylesheet.Top] + space[stylesheet.Bottom]
	}
	en.wrapped = true
	e.entries[i] = en
	e.total += en.height - old
}

// highlight returns the part of paragraph p of item i covered by the
// selection.
func (e *Engine) highlight(i int, p *rich.Paragraph) (int, int, bool) {
	if !e.sel.Contains(i) {
		return 0, 0, false
	}
	start, end := e.sel.Span()
	s, t := 0, p.Len()
	if start.Item == i {
		s = cursor.PositionToOffset(p, start.Offset, start.Trail)
	}
	if end.Item == i {
		t = cursor.PositionToOffset(p, end.Offset, end.Trail)
	}
	if s >= t {
		return 0, 0, false
	}
	return s, t, true
}

func (e *Engine) thumbWidth(s *slide.Slide) float64 {
	w, h := s.Size(e.n.Sheet())
	if h <= 0 {
		return 0
	}
	return ThumbHeight * w / h
}

// thumbnail renders s unless an image for its current revision exists.
func (e *Engine) thumbnail(s *slide.Slide) image.Image {
	if e.thumbnailer == nil {
		return nil
	}
	if t, ok := e.thumbs[s]; ok && t.rev == s.Rev() && t.height == ThumbHeight {
		return t.img
	}
	img := e.thumbnailer.Thumbnail(s, e.n.Sheet(), ThumbHeight)
	e.thumbs[s] = thumb{rev: s.Rev(), height: ThumbHeight, img: img}
	return img
}

// Thumbnail returns the cached image for the slide at item i, or nil.
func (e *Engine) Thumbnail(i int) image.Image {
	e.check("Thumbnail", i)
	s, ok := e.n.Item(i).(*narrative.Slide)
	if !ok {
		return nil
	}
	if t, ok := e.thumbs[s.Slide]; ok {
		return t.img
	}
	return nil
}

// ThumbSize returns the size at which item i's slide is shown.
func (e *Engine) ThumbSize(i int) (w, h float64) {
	e.ensure(i)
	return e.entries[i].thumbW, ThumbHeight
}

// SetWidth changes the available width, dirtying every item.
func (e *Engine) SetWidth(w float64) {
	if w == e.width {
		return
	}
	e.width = w
	e.markDirty(0, len(e.entries)-1)
}

// SetSelection changes the selection, dirtying the items whose
// highlight changes.
func (e *Engine) SetSelection(sel cursor.Selection) {
	for _, s := range []cursor.Selection{e.sel, sel} {
		if !s.Empty() {
			a, b := s.Span()
			e.markDirty(a.Item, min(b.Item, len(e.entries)-1))
		}
	}
	e.sel = sel
}

// Dirty returns the range of items needing a wrap.
func (e *Engine) Dirty() (lo, hi int, ok bool) {
	return e.dirtyMin, e.dirtyMax, e.dirtyMin <= e.dirtyMax
}

// Rewrap wraps exactly the dirty range.
func (e *Engine) Rewrap() {
	if lo, hi, ok := e.Dirty(); ok {
		e.WrapRange(e.width, lo, hi, e.sel)
	}
}

func (e *Engine) clean() {
	e.dirtyMin, e.dirtyMax = 0, -1
}

func (e *Engine) markDirty(lo, hi int) {
	if lo > hi {
		return
	}
	if _, _, ok := e.Dirty(); !ok {
		e.dirtyMin, e.dirtyMax = lo, hi
		return
	}
	e.dirtyMin = min(e.dirtyMin, lo)
	e.dirtyMax = max(e.dirtyMax, hi)
}

// TotalHeight returns the document height: the item heights plus the
// narrative's top and bottom padding.
func (e *Engine) TotalHeight() float64 {
	pad := e.docPadding()
	return e.total + pad[stylesheet.Top] + pad[stylesheet.Bottom]
}

// SumHeights recomputes TotalHeight from the item heights.
func (e *Engine) SumHeights() float64 {
	pad := e.docPadding()
	h := pad[stylesheet.Top] + pad[stylesheet.Bottom]
	for _, en := range e.entries {
		h += en.height
	}
	return h
}

// ItemsInserted implements narrative.Observer.
func (e *Engine) ItemsInserted(i, n int) {
	e.entries = slices.Insert(e.entries, i, make([]entry, n)...)
	if _, _, ok := e.Dirty(); ok {
		if e.dirtyMin >= i {
			e.dirtyMin += n
		}
		if e.dirtyMax >= i {
			e.dirtyMax += n
		}
	}
	e.markDirty(i, i+n-1)
}

// ItemsDeleted implements narrative.Observer.
func (e *Engine) ItemsDeleted(i, n int) {
	for _, en := range e.entries[i : i+n] {
		e.total -= en.height
		if en.slide != nil {
			delete(e.thumbs, en.slide)
		}
	}
	e.entries = slices.Delete(e.entries, i, i+n)

	if _, _, ok := e.Dirty(); !ok {
		return
	}
	shift := func(j int, low bool) int {
		switch {
		case j < i:
			return j
		case j >= i+n:
			return j - n
		case low:
			return i
		}
		return i - 1
	}
	e.dirtyMin, e.dirtyMax = shift(e.dirtyMin, true), shift(e.dirtyMax, false)
	if e.dirtyMax >= len(e.entries) {
		e.dirtyMax = len(e.entries) - 1
	}
	if e.dirtyMin > e.dirtyMax {
		e.clean()
	}
}

// ItemChanged implements narrative.Observer.
func (e *Engine) ItemChanged(i int) {
	e.markDirty(i, i)
}
