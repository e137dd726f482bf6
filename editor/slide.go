package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rjkroege/colloquium/cursor"
	"github.com/rjkroege/colloquium/imagestore"
	"github.com/rjkroege/colloquium/internal/sync"
	"github.com/rjkroege/colloquium/internal/ui"
	"github.com/rjkroege/colloquium/narrative"
	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/shape"
	"github.com/rjkroege/colloquium/slide"
	"github.com/rjkroege/colloquium/stylesheet"
)

// ErrNoImages is returned when importing into a narrative without an
// image store.
var ErrNoImages = errors.New("editor: narrative has no image store")

// SlideView edits the frames of one slide of a narrative. Pointer
// coordinates are view pixels; Scale pixels make one slide unit.
type SlideView struct {
	n       *narrative.Narrative
	s       *slide.Slide
	session *sync.Session
	shaper  shape.Shaper
	scale   float64

	drag     ui.Drag
	selected int              // frame, or -1
	sel      cursor.Selection // paragraph positions inside the selected frame
	doc      *frameDoc        // nil unless the selected frame holds text
	pending  string           // image waiting to be dropped
}

// NewSlideView returns a view of s, which must belong to n. A nil
// shaper uses the Go fonts.
func NewSlideView(n *narrative.Narrative, s *slide.Slide, session *sync.Session, shaper shape.Shaper) *SlideView {
	if n.ItemIndex(s) < 0 {
		panic("editor.NewSlideView: slide not in narrative")
	}
	if session == nil {
		session = sync.NewSession()
	}
	if shaper == nil {
		shaper = shape.New(shape.NewGoFaces(72))
	}
	return &SlideView{
		n:        n,
		s:        s,
		session:  session,
		shaper:   shaper,
		scale:    1,
		selected: -1,
	}
}

func (v *SlideView) Slide() *slide.Slide         { return v.s }
func (v *SlideView) Scale() float64              { return v.scale }
func (v *SlideView) Selected() int               { return v.selected }
func (v *SlideView) Selection() cursor.Selection { return v.sel }
func (v *SlideView) Cursor() cursor.Pos          { return v.sel.Head }

// FrameDoc returns the selected frame's paragraphs for cursor
// addressing, or nil.
func (v *SlideView) FrameDoc() cursor.Doc {
	if v.doc == nil {
		return nil
	}
	return v.doc
}

func (v *SlideView) sheet() stylesheet.Sheet { return v.n.Sheet() }

// Resize fits the slide into a view of the given size.
func (v *SlideView) Resize(width, height float64) {
	v.session.WithLock(sync.SlideOwner, func() {
		sw, sh := v.s.Size(v.sheet())
		if sw <= 0 || sh <= 0 || width <= 0 || height <= 0 {
			return
		}
		v.scale = min(width/sw, height/sh)
	})
}

func (v *SlideView) toSlide(x, y float64) (float64, float64) {
	return x / v.scale, y / v.scale
}

// Select makes frame i current, or clears the selection for -1.
func (v *SlideView) Select(i int) {
	v.session.WithLock(sync.SlideOwner, func() {
		if i >= v.s.NumItems() {
			panic(fmt.Sprint("editor.Select: frame ", i, " outside slide of ", v.s.NumItems(), " frames"))
		}
		v.selectFrame(i)
	})
}

func (v *SlideView) selectFrame(i int) {
	if i != v.selected {
		v.sel = cursor.Selection{}
	}
	v.selected = i
	v.refresh()
}

// refresh rebuilds the frame document and fits the selection into it.
func (v *SlideView) refresh() {
	if v.selected >= v.s.NumItems() {
		v.selected = -1
	}
	v.doc = nil
	if v.selected >= 0 {
		v.doc = newFrameDoc(v.s, v.selected, v.sheet(), v.shaper)
	}
	if v.doc == nil {
		v.sel = cursor.Selection{}
		return
	}
	v.sel = cursor.Selection{Anchor: v.fit(v.sel.Anchor), Head: v.fit(v.sel.Head)}
	v.doc.highlight(v.sel)
}

func (v *SlideView) fit(p cursor.Pos) cursor.Pos {
	paras := v.doc.text.Paras
	if p.Item < 0 {
		return cursor.Pos{}
	}
	if p.Item >= len(paras) {
		last := len(paras) - 1
		return at(last, paras[last].Len())
	}
	if !paras[p.Item].ValidOffset(p.Offset) {
		return at(p.Item, paras[p.Item].Len())
	}
	return p
}

// changed records an edit to the slide.
func (v *SlideView) changed() {
	v.n.SlideChanged(v.s)
	v.refresh()
}

func movable(it slide.Item) bool {
	switch it.(type) {
	case *slide.TextFrame, *slide.Image:
		return true
	}
	return false
}

func geometry(r stylesheet.Rect) stylesheet.Geometry {
	return stylesheet.Geometry{
		X: stylesheet.Units(r.X),
		Y: stylesheet.Units(r.Y),
		W: stylesheet.Units(r.W),
		H: stylesheet.Units(r.H),
	}
}

// ButtonDown starts a gesture. What the gesture does is decided here:
// a pending import drops an image, empty space creates a text frame, a
// corner of a freely placed frame resizes it, a click inside the
// selected text frame selects text and anything else moves the frame
// under the pointer.
func (v *SlideView) ButtonDown(x, y float64) {
	v.session.WithLock(sync.SlideOwner, func() {
		sx, sy := v.toSlide(x, y)
		if v.pending != "" {
			v.drag.Down(sx, sy, ui.Import, -1, ui.NoCorner)
			return
		}
		i := v.s.ItemAt(sx, sy, v.sheet())
		if i < 0 {
			v.selectFrame(-1)
			v.drag.Down(sx, sy, ui.Create, -1, ui.NoCorner)
			return
		}
		r, _ := v.s.Geom(i, v.sheet())
		c := ui.CornerAt(r, sx, sy)
		switch {
		case c != ui.NoCorner && movable(v.s.Item(i)):
			v.selectFrame(i)
			v.drag.Down(sx, sy, ui.Resize, i, c)
		case i == v.selected && v.doc != nil:
			v.drag.Down(sx, sy, ui.TextSelect, i, ui.NoCorner)
			v.sel = cursor.At(cursor.FindCursor(v.doc, sx, sy))
			v.refresh()
		default:
			v.selectFrame(i)
			v.drag.Down(sx, sy, ui.Move, i, ui.NoCorner)
		}
	})
}

// Motion continues a gesture.
func (v *SlideView) Motion(x, y float64) {
	v.session.WithLock(sync.SlideOwner, func() { v.motion(x, y) })
}

func (v *SlideView) motion(x, y float64) {
	sx, sy := v.toSlide(x, y)
	dx, dy, ok := v.drag.Motion(sx, sy)
	if !ok {
		return
	}
	i := v.drag.Item()
	switch v.drag.Reason() {
	case ui.Move:
		if v.s.MoveItem(i, dx, dy, v.sheet()) {
			v.changed()
		}
	case ui.Resize:
		r, _ := v.s.Geom(i, v.sheet())
		if v.s.ResizeItem(i, ui.ResizeRect(r, v.drag.Corner(), dx, dy), v.sheet()) {
			v.changed()
		}
	case ui.TextSelect:
		if v.doc != nil {
			v.sel.Head = cursor.FindCursor(v.doc, sx, sy)
			v.refresh()
		}
	}
}

// ButtonUp ends a gesture and reports whether the pointer moved. A
// create drag makes a text frame over the swept rectangle; an import
// places the pending image over it, or at its natural size for a click.
func (v *SlideView) ButtonUp(x, y float64) (dragged bool, err error) {
	v.session.WithLock(sync.SlideOwner, func() {
		if lx, ly := v.drag.Last(); x/v.scale != lx || y/v.scale != ly {
			v.motion(x, y)
		}
		reason, swept := v.drag.Reason(), v.drag.Swept()
		sx, sy := v.drag.Start()
		dragged = v.drag.Up()

		switch reason {
		case ui.Create:
			if dragged && swept.W > 0 && swept.H > 0 {
				i := v.s.AddItem(&slide.TextFrame{Text: slide.NewText(), Geom: geometry(swept)})
				v.selected = i
				v.sel = cursor.Selection{}
				v.changed()
			}
		case ui.Import:
			name := v.pending
			v.pending = ""
			if dragged && swept.W > 0 && swept.H > 0 {
				v.addImage(name, swept)
			} else {
				_, err = v.importAt(name, sx, sy)
			}
		}
	})
	return dragged, err
}

// BeginImport arms the next gesture to drop filename.
func (v *SlideView) BeginImport(filename string) {
	v.session.WithLock(sync.SlideOwner, func() { v.pending = filename })
}

// Import places the image filename with its top left corner at view
// position (x, y). The frame takes the image's size, shrunk to fit the
// slide. It returns the new frame.
func (v *SlideView) Import(filename string, x, y float64) (int, error) {
	var i int
	var err error
	v.session.WithLock(sync.SlideOwner, func() {
		sx, sy := v.toSlide(x, y)
		i, err = v.importAt(filename, sx, sy)
	})
	return i, err
}

func (v *SlideView) importAt(filename string, sx, sy float64) (int, error) {
	store := v.n.ImageStore()
	if store == nil {
		return -1, ErrNoImages
	}
	iw, ih, err := store.Size(filename)
	if err != nil {
		return -1, fmt.Errorf("importing %s: %w", filename, err)
	}
	return v.addImage(filename, fitImage(iw, ih, v.s, v.sheet(), sx, sy)), nil
}

// fitImage returns an iw x ih rectangle at (x, y), scaled down to fit
// the slide.
func fitImage(iw, ih int, s *slide.Slide, sheet stylesheet.Sheet, x, y float64) stylesheet.Rect {
	sw, sh := s.Size(sheet)
	w, h := float64(iw), float64(ih)
	if k := min(sw/w, sh/h); k < 1 {
		w, h = w*k, h*k
	}
	return stylesheet.Rect{X: x, Y: y, W: w, H: h}
}

func (v *SlideView) addImage(filename string, r stylesheet.Rect) int {
	i := v.s.AddItem(&slide.Image{Filename: filename, Geom: geometry(r)})
	v.selected = i
	v.changed()
	return i
}

// DeleteFrame removes the selected frame.
func (v *SlideView) DeleteFrame() {
	v.session.WithLock(sync.SlideOwner, func() {
		if v.selected < 0 {
			return
		}
		v.s.DeleteItem(v.selected)
		v.selected = -1
		v.changed()
	})
}

// editText runs fn under the session when the selected frame holds
// text and reports whether it did.
func (v *SlideView) editText(fn func()) bool {
	done := false
	v.session.WithLock(sync.SlideOwner, func() {
		if v.doc == nil {
			return
		}
		fn()
		v.changed()
		done = true
	})
	return done
}

func (v *SlideView) offset(p cursor.Pos) int {
	return cursor.PositionToOffset(v.doc.text.Paras[p.Item], p.Offset, p.Trail)
}

func (v *SlideView) deleteSelection() bool {
	if v.sel.Empty() {
		return false
	}
	start, end := v.sel.Span()
	so := v.offset(start)
	v.s.DeleteText(v.selected, start.Item, so, end.Item, v.offset(end))
	v.sel = cursor.At(at(start.Item, so))
	return true
}

// InsertText replaces the frame selection with text. Newlines start
// new paragraphs. It reports false when no text frame is selected.
func (v *SlideView) InsertText(text string) bool {
	return v.editText(func() {
		v.deleteSelection()
		cur := v.sel.Head
		para, off := cur.Item, v.offset(cur)
		for k, line := range strings.Split(text, "\n") {
			if k > 0 {
				v.s.SplitTextParagraph(v.selected, para, off)
				para, off = para+1, 0
			}
			p := v.doc.text.Paras[para]
			before := p.Len()
			v.s.InsertTextInParagraph(v.selected, para, off, strings.TrimSuffix(line, "\r"))
			off += p.Len() - before
		}
		v.sel = cursor.At(at(para, off))
	})
}

// Return splits the frame paragraph at the cursor.
func (v *SlideView) Return() bool {
	return v.editText(func() {
		v.deleteSelection()
		cur := v.sel.Head
		v.s.SplitTextParagraph(v.selected, cur.Item, v.offset(cur))
		v.sel = cursor.At(at(cur.Item+1, 0))
	})
}

// Backspace deletes the selection or the grapheme before the cursor,
// joining paragraphs at a paragraph start.
func (v *SlideView) Backspace() bool {
	return v.editText(func() {
		if v.deleteSelection() {
			return
		}
		cur := v.sel.Head
		j, off := cur.Item, v.offset(cur)
		switch {
		case off > 0:
			prev := cursor.PrevBoundary(v.doc.text.Paras[j], off)
			v.s.DeleteText(v.selected, j, prev, j, off)
			v.sel = cursor.At(at(j, prev))
		case j > 0:
			l := v.doc.text.Paras[j-1].Len()
			v.s.DeleteText(v.selected, j-1, l, j, 0)
			v.sel = cursor.At(at(j-1, l))
		}
	})
}

// DeleteForward deletes the selection or the grapheme after the
// cursor, joining paragraphs at a paragraph end.
func (v *SlideView) DeleteForward() bool {
	return v.editText(func() {
		if v.deleteSelection() {
			return
		}
		cur := v.sel.Head
		j, off := cur.Item, v.offset(cur)
		p := v.doc.text.Paras[j]
		switch {
		case off < p.Len():
			v.s.DeleteText(v.selected, j, off, j, cursor.NextBoundary(p, off))
		case j < len(v.doc.text.Paras)-1:
			v.s.DeleteText(v.selected, j, off, j+1, 0)
		}
		v.sel = cursor.At(at(j, off))
	})
}

// Style applies run style st to the frame selection.
func (v *SlideView) Style(st rich.Style) bool {
	return v.editText(func() {
		if v.sel.Empty() {
			return
		}
		start, end := v.sel.Span()
		for j := start.Item; j <= end.Item; j++ {
			p := v.doc.text.Paras[j]
			s, e := 0, p.Len()
			if j == start.Item {
				s = v.offset(start)
			}
			if j == end.Item {
				e = v.offset(end)
			}
			if s < e {
				p.SetStyle(s, e, st)
			}
		}
	})
}

// Move moves the frame cursor one grapheme in direction dir.
func (v *SlideView) Move(dir int, extend bool) {
	v.session.WithLock(sync.SlideOwner, func() {
		if v.doc == nil {
			return
		}
		p := cursor.MoveHorizontal(v.doc, v.sel.Head, dir)
		if extend {
			v.sel.Head = p
		} else {
			v.sel = cursor.At(p)
		}
		v.refresh()
	})
}

// SelectedText returns the frame selection, one line per paragraph.
func (v *SlideView) SelectedText() string {
	var out string
	v.session.WithLock(sync.SlideOwner, func() {
		if v.doc == nil || v.sel.Empty() {
			return
		}
		start, end := v.sel.Span()
		var parts []string
		for j := start.Item; j <= end.Item; j++ {
			p := v.doc.text.Paras[j]
			s, e := 0, p.Len()
			if j == start.Item {
				s = v.offset(start)
			}
			if j == end.Item {
				e = v.offset(end)
			}
			parts = append(parts, p.Slice(s, e).String())
		}
		out = strings.Join(parts, "\n")
	})
	return out
}

// ImageStore returns the store images are imported from.
func (v *SlideView) ImageStore() *imagestore.Store { return v.n.ImageStore() }
