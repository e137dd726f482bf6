// Package editor holds the two views onto a presentation: the narrative
// view editing the running text and the slide view editing the frames
// of one slide. Both serialize their edits through a shared session.
package editor

import (
	"github.com/rjkroege/colloquium/cursor"
	"github.com/rjkroege/colloquium/internal/sync"
	"github.com/rjkroege/colloquium/internal/ui"
	"github.com/rjkroege/colloquium/layout"
	"github.com/rjkroege/colloquium/narrative"
	"github.com/rjkroege/colloquium/rich"
)

// NarrativeView edits a narrative through a wrap engine. Coordinates
// passed to the pointer methods are relative to the top left of the
// view; the view adds its scroll offset.
type NarrativeView struct {
	n       *narrative.Narrative
	engine  *layout.Engine
	session *sync.Session

	sel    cursor.Selection // Head is the cursor
	drag   ui.Drag
	scroll float64
	height float64
}

// NewNarrativeView returns a view of n with the cursor at the start.
// The engine is built with opts.
func NewNarrativeView(n *narrative.Narrative, session *sync.Session, opts ...layout.Option) *NarrativeView {
	if session == nil {
		session = sync.NewSession()
	}
	v := &NarrativeView{
		n:       n,
		engine:  layout.New(n, opts...),
		session: session,
	}
	v.engine.Rewrap()
	return v
}

// Close detaches the view's engine from the narrative.
func (v *NarrativeView) Close() { v.engine.Close() }

func (v *NarrativeView) Narrative() *narrative.Narrative { return v.n }
func (v *NarrativeView) Engine() *layout.Engine          { return v.engine }
func (v *NarrativeView) Session() *sync.Session          { return v.session }
func (v *NarrativeView) Selection() cursor.Selection     { return v.sel }
func (v *NarrativeView) Cursor() cursor.Pos              { return v.sel.Head }
func (v *NarrativeView) Scroll() float64                 { return v.scroll }

// SetSelection replaces the selection after fitting both ends into the
// document.
func (v *NarrativeView) SetSelection(sel cursor.Selection) {
	v.session.WithLock(sync.NarrativeOwner, func() {
		v.sel = cursor.Selection{Anchor: v.fit(sel.Anchor), Head: v.fit(sel.Head)}
		v.sync()
	})
}

// SetCursor collapses the selection to p.
func (v *NarrativeView) SetCursor(p cursor.Pos) {
	v.SetSelection(cursor.At(p))
}

// edit runs fn under the session and rewraps what it changed.
func (v *NarrativeView) edit(fn func()) {
	v.session.WithLock(sync.NarrativeOwner, func() {
		v.sel = cursor.Selection{Anchor: v.fit(v.sel.Anchor), Head: v.fit(v.sel.Head)}
		fn()
		v.sync()
	})
}

// sync hands the selection to the engine and rewraps the dirty items.
func (v *NarrativeView) sync() {
	v.engine.SetSelection(v.sel)
	v.engine.Rewrap()
}

func (v *NarrativeView) collapse(p cursor.Pos) {
	v.sel = cursor.At(v.fit(p))
}

// fit returns p moved into the document: past the last item it becomes
// the end of the document and offsets not on a codepoint become the end
// of their item. Another view may have shortened the narrative.
func (v *NarrativeView) fit(p cursor.Pos) cursor.Pos {
	if p.Item < 0 {
		return cursor.Pos{}
	}
	if p.Item >= v.n.Len() {
		return cursor.End(v.engine, v.n.Len()-1)
	}
	para := narrative.Paragraph(v.n.Item(p.Item))
	if para == nil {
		return cursor.Pos{Item: p.Item}
	}
	if !para.ValidOffset(p.Offset) {
		return cursor.End(v.engine, p.Item)
	}
	return p
}

func at(i, off int) cursor.Pos { return cursor.Pos{Item: i, Offset: off} }

// deleteSelection removes a non-empty selection and leaves the cursor
// where it started.
func (v *NarrativeView) deleteSelection() bool {
	if v.sel.Empty() {
		return false
	}
	start, end := v.sel.Span()
	off := v.n.Offset(start)
	v.n.DeleteBlock(start, end)
	v.collapse(at(start.Item, off))
	return true
}

// InsertText replaces the selection with text. Newlines start new
// paragraphs.
func (v *NarrativeView) InsertText(text string) {
	v.edit(func() {
		v.deleteSelection()
		v.collapse(v.n.InsertText(v.sel.Head, text))
	})
}

// Return ends the paragraph at the cursor.
func (v *NarrativeView) Return() {
	v.edit(func() {
		v.deleteSelection()
		cur := v.sel.Head
		v.n.SplitItem(cur.Item, v.n.Offset(cur))
		v.collapse(at(cur.Item+1, 0))
	})
}

// Backspace deletes the selection or the grapheme before the cursor. At
// the start of a paragraph it joins the paragraph onto the previous one
// or removes the previous item when that has no text. With the cursor on
// an item without text the item itself goes.
func (v *NarrativeView) Backspace() {
	v.edit(func() {
		if v.deleteSelection() {
			return
		}
		cur := v.sel.Head
		i := cur.Item
		p := narrative.Paragraph(v.n.Item(i))
		off := v.n.Offset(cur)
		switch {
		case p == nil:
			v.n.DeleteItem(i)
			if i == 0 {
				v.collapse(at(0, 0))
			} else {
				v.collapse(cursor.End(v.engine, i-1))
			}
		case off > 0:
			prev := cursor.PrevBoundary(p, off)
			v.n.DeleteBlock(at(i, prev), at(i, off))
			v.collapse(at(i, prev))
		case i == 0:
		case !narrative.IsText(v.n.Item(i - 1)):
			v.n.DeleteItem(i - 1)
			v.collapse(at(i-1, 0))
		default:
			l := narrative.Paragraph(v.n.Item(i - 1)).Len()
			v.n.DeleteBlock(at(i-1, l), at(i, 0))
			v.collapse(at(i-1, l))
		}
	})
}

// DeleteForward deletes the selection or the grapheme after the cursor.
// At the end of a paragraph it pulls the next paragraph up or removes
// the next item when that has no text.
func (v *NarrativeView) DeleteForward() {
	v.edit(func() {
		if v.deleteSelection() {
			return
		}
		cur := v.sel.Head
		i := cur.Item
		p := narrative.Paragraph(v.n.Item(i))
		off := v.n.Offset(cur)
		last := i == v.n.Len()-1
		switch {
		case p == nil:
			v.n.DeleteItem(i)
			v.collapse(at(i, 0))
		case off < p.Len():
			next := cursor.NextBoundary(p, off)
			v.n.DeleteBlock(at(i, off), at(i, next))
			v.collapse(at(i, off))
		case last:
		case !narrative.IsText(v.n.Item(i + 1)):
			v.n.DeleteItem(i + 1)
			v.collapse(at(i, off))
		default:
			v.n.DeleteBlock(at(i, off), at(i+1, 0))
			v.collapse(at(i, off))
		}
	})
}

// Cut deletes the selection and returns it as text.
func (v *NarrativeView) Cut() string {
	var s string
	v.edit(func() {
		s = v.selectedText()
		v.deleteSelection()
	})
	return s
}

// InsertItem places it after the cursor's item and moves the cursor
// onto it.
func (v *NarrativeView) InsertItem(it narrative.Item) {
	v.edit(func() {
		v.collapse(at(v.n.InsertItem(v.sel.Head.Item+1, it), 0))
	})
}

// Move moves the cursor one grapheme in direction dir, crossing into
// neighbouring items. With extend the anchor stays put.
func (v *NarrativeView) Move(dir int, extend bool) {
	v.session.WithLock(sync.NarrativeOwner, func() {
		v.moveTo(cursor.MoveHorizontal(v.engine, v.fit(v.sel.Head), dir), extend)
	})
}

// MoveVertical moves the cursor to the line above (dir < 0) or below,
// keeping its x position. Movement stops at the first and last lines.
func (v *NarrativeView) MoveVertical(dir int, extend bool) {
	v.session.WithLock(sync.NarrativeOwner, func() {
		cur := v.fit(v.sel.Head)
		i := cur.Item
		top := v.engine.ItemTop(i)
		x, iy := v.engine.Inset(i)
		y, h, lh := top, v.engine.ItemHeight(i), 0.0
		if l := v.engine.Layout(i); l != nil {
			r := l.CursorRect(v.n.Offset(cur))
			_, lh = l.Size()
			x, y, h = x+r.X, top+iy+r.Y, r.H
		}

		var ty float64
		switch {
		case dir < 0 && y-1 >= top+iy:
			ty = y - 1
		case dir < 0 && i > 0:
			ty = top - 1
		case dir > 0 && y+h < top+iy+lh:
			ty = y + h
		case dir > 0 && i < v.n.Len()-1:
			ty = v.engine.ItemTop(i + 1)
		default:
			return
		}
		v.moveTo(cursor.FindCursor(v.engine, x, ty), extend)
	})
}

func (v *NarrativeView) moveTo(p cursor.Pos, extend bool) {
	if extend {
		v.sel.Head = p
	} else {
		v.sel = cursor.At(p)
	}
	v.sync()
}

// ButtonDown starts a text selection at (x, y).
func (v *NarrativeView) ButtonDown(x, y float64) {
	v.session.WithLock(sync.NarrativeOwner, func() {
		p := cursor.FindCursor(v.engine, x, y+v.scroll)
		v.drag.Down(x, y, ui.TextSelect, p.Item, ui.NoCorner)
		v.moveTo(p, false)
	})
}

// Motion extends a selection started by ButtonDown.
func (v *NarrativeView) Motion(x, y float64) {
	v.session.WithLock(sync.NarrativeOwner, func() { v.motion(x, y) })
}

func (v *NarrativeView) motion(x, y float64) {
	if _, _, ok := v.drag.Motion(x, y); !ok || v.drag.Reason() != ui.TextSelect {
		return
	}
	v.moveTo(cursor.FindCursor(v.engine, x, y+v.scroll), true)
}

// ButtonUp ends the gesture and reports whether it was a drag.
func (v *NarrativeView) ButtonUp(x, y float64) bool {
	var dragged bool
	v.session.WithLock(sync.NarrativeOwner, func() {
		if lx, ly := v.drag.Last(); x != lx || y != ly {
			v.motion(x, y)
		}
		dragged = v.drag.Up()
	})
	return dragged
}

// Dragging reports whether a gesture is in progress.
func (v *NarrativeView) Dragging() bool {
	var d bool
	v.session.WithLock(sync.NarrativeOwner, func() { d = v.drag.State() != ui.Idle })
	return d
}

// SelectedText returns the selection as text, one line per paragraph.
func (v *NarrativeView) SelectedText() string {
	var s string
	v.session.WithLock(sync.NarrativeOwner, func() { s = v.selectedText() })
	return s
}

func (v *NarrativeView) selectedText() string {
	if v.sel.Empty() {
		return ""
	}
	start, end := v.sel.Span()
	return v.n.RangeAsText(start.Item, v.n.Offset(start), end.Item, v.n.Offset(end))
}

// SelectedMarkup returns the selection as storycode.
func (v *NarrativeView) SelectedMarkup() string {
	var s string
	v.session.WithLock(sync.NarrativeOwner, func() {
		if v.sel.Empty() {
			return
		}
		start, end := v.sel.Span()
		s = v.n.RangeAsMarkup(start.Item, v.n.Offset(start), end.Item, v.n.Offset(end))
	})
	return s
}

// SelectAll selects from the start of the first item to the end of the
// last.
func (v *NarrativeView) SelectAll() {
	v.session.WithLock(sync.NarrativeOwner, func() {
		v.sel = cursor.Selection{Anchor: at(0, 0), Head: v.endPos()}
		v.sync()
	})
}

func (v *NarrativeView) endPos() cursor.Pos {
	last := v.n.Len() - 1
	if p := narrative.Paragraph(v.n.Item(last)); p != nil {
		return at(last, p.Len())
	}
	return at(last, 0)
}

// Resize changes the size of the view. A new width rewraps everything.
func (v *NarrativeView) Resize(width, height float64) {
	v.session.WithLock(sync.NarrativeOwner, func() {
		v.height = height
		v.engine.SetWidth(width)
		v.engine.Rewrap()
		v.setScroll(v.scroll)
	})
}

// SetScroll scrolls the view so that document y is at its top.
func (v *NarrativeView) SetScroll(y float64) {
	v.session.WithLock(sync.NarrativeOwner, func() { v.setScroll(y) })
}

func (v *NarrativeView) setScroll(y float64) {
	y = min(y, v.engine.TotalHeight()-v.height)
	v.scroll = max(y, 0)
}

// ShowCursor scrolls the least distance that brings the cursor into
// view.
func (v *NarrativeView) ShowCursor() {
	v.session.WithLock(sync.NarrativeOwner, func() {
		cur := v.fit(v.sel.Head)
		i := cur.Item
		top, h := v.engine.ItemTop(i), v.engine.ItemHeight(i)
		if l := v.engine.Layout(i); l != nil {
			_, iy := v.engine.Inset(i)
			r := l.CursorRect(v.n.Offset(cur))
			top, h = top+iy+r.Y, r.H
		}
		switch {
		case top < v.scroll:
			v.setScroll(top)
		case top+h > v.scroll+v.height:
			v.setScroll(top + h - v.height)
		}
	})
}

// Visible returns the first and last items on screen.
func (v *NarrativeView) Visible() (first, last int) {
	v.session.WithLock(sync.NarrativeOwner, func() {
		first, last = v.engine.Visible(v.scroll, v.scroll+v.height)
	})
	return first, last
}

// Style applies run style st to the selection.
func (v *NarrativeView) Style(st rich.Style) {
	v.edit(func() {
		if !v.sel.Empty() {
			start, end := v.sel.Span()
			v.n.SetStyle(start, end, st)
		}
	})
}
