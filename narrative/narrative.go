// Package narrative is the editable presentation document: an ordered
// list of note paragraphs, bullet points, titles and embedded slides.
//
// Item indices are handles only until the next structural edit. Callers
// holding an index across InsertItem, DeleteItem, DeleteBlock, SplitItem
// or InsertText must re-resolve it, typically through an Observer.
package narrative

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rjkroege/colloquium/cursor"
	"github.com/rjkroege/colloquium/imagestore"
	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/slide"
	"github.com/rjkroege/colloquium/stylesheet"
)

// Narrative is never empty: an empty document holds one empty Text.
type Narrative struct {
	items     []Item
	sheet     stylesheet.Sheet
	images    *imagestore.Store
	lang      string
	saved     bool
	observers map[Observer]struct{}
}

// New returns an empty narrative styled by sheet. A nil sheet selects
// stylesheet.Default. images may be nil when no slide shows an image.
func New(sheet stylesheet.Sheet, images *imagestore.Store) *Narrative {
	if sheet == nil {
		sheet = stylesheet.Default()
	}
	return &Narrative{
		items:  []Item{NewText()},
		sheet:  sheet,
		images: images,
		saved:  true,
	}
}

func (n *Narrative) Sheet() stylesheet.Sheet       { return n.sheet }
func (n *Narrative) ImageStore() *imagestore.Store { return n.images }

func (n *Narrative) Language() string { return n.lang }

func (n *Narrative) SetLanguage(lang string) {
	if lang != n.lang {
		n.lang = lang
		n.saved = false
	}
}

// Saved reports whether n is unchanged since it was loaded or last
// marked saved.
func (n *Narrative) Saved() bool { return n.saved }

func (n *Narrative) SetSaved(saved bool) { n.saved = saved }

// Len returns the number of items.
func (n *Narrative) Len() int { return len(n.items) }

// Item returns item i.
func (n *Narrative) Item(i int) Item {
	n.check("Item", i)
	return n.items[i]
}

// Items returns the items. The slice must not be modified.
func (n *Narrative) Items() []Item { return n.items }

func (n *Narrative) check(op string, i int) {
	if i < 0 || i >= len(n.items) {
		panic(fmt.Sprint("narrative.", op, ": item ", i, " outside narrative of ", len(n.items), " items"))
	}
}

// checkPos panics unless p addresses a valid position in n. Offsets in
// items without text are ignored.
func (n *Narrative) checkPos(op string, p cursor.Pos) {
	n.check(op, p.Item)
	if para := Paragraph(n.items[p.Item]); para != nil && !para.ValidOffset(p.Offset) {
		panic(fmt.Sprint("narrative.", op, ": bad offset ", p, " in item of length ", para.Len()))
	}
}

// Offset resolves p to a byte offset within its item.
func (n *Narrative) Offset(p cursor.Pos) int {
	n.checkPos("Offset", p)
	para := Paragraph(n.items[p.Item])
	if para == nil {
		return 0
	}
	return cursor.PositionToOffset(para, p.Offset, p.Trail)
}

// InsertItem inserts it at index pos and returns pos. A nil item inserts
// an empty Text.
func (n *Narrative) InsertItem(pos int, it Item) int {
	if pos < 0 || pos > len(n.items) {
		panic(fmt.Sprint("narrative.InsertItem: position ", pos, " outside [0,", len(n.items), "]"))
	}
	if it == nil {
		it = NewText()
	}
	n.items = slices.Insert(n.items, pos, it)
	n.inserted(pos, 1)
	return pos
}

// DeleteItem removes item i.
func (n *Narrative) DeleteItem(i int) {
	n.check("DeleteItem", i)
	n.removeItems(i, 1)
}

func (n *Narrative) removeItems(i, count int) {
	if count == 0 {
		return
	}
	n.items = slices.Delete(n.items, i, i+count)
	n.deleted(i, count)
	if len(n.items) == 0 {
		n.items = append(n.items, NewText())
		n.inserted(0, 1)
	}
}

// InsertText inserts text at pos and returns the position after it.
// Each newline in text ends the current paragraph and starts a sibling
// of the same kind. Text typed onto an item without text goes into a
// new Text item after it.
func (n *Narrative) InsertText(pos cursor.Pos, text string) cursor.Pos {
	n.checkPos("InsertText", pos)
	i := pos.Item
	p := Paragraph(n.items[i])
	off := 0
	if p == nil {
		i = n.InsertItem(i+1, nil)
		p = Paragraph(n.items[i])
	} else {
		off = cursor.PositionToOffset(p, pos.Offset, pos.Trail)
	}

	for k, line := range strings.Split(text, "\n") {
		if k > 0 {
			n.SplitItem(i, off)
			i, off = i+1, 0
			p = Paragraph(n.items[i])
		}
		before := p.Len()
		p.Insert(off, strings.TrimSuffix(line, "\r"))
		off += p.Len() - before
	}
	n.changed(i)
	return cursor.Pos{Item: i, Offset: off, Trail: off == p.Len()}
}

// SplitItem splits text item i at byte offset off into two siblings of
// the same kind. Splitting an item without text inserts an empty Text
// after it.
func (n *Narrative) SplitItem(i, off int) {
	n.check("SplitItem", i)
	it := n.items[i]
	p := Paragraph(it)
	if p == nil {
		n.InsertItem(i+1, nil)
		return
	}
	left, right := p.Split(off)
	setParagraph(it, left)
	n.items = slices.Insert(n.items, i+1, sibling(it, right))
	n.changed(i)
	n.inserted(i+1, 1)
}

// DeleteBlock deletes the span between start and end, which may be
// given in either order.
//
// Within one text item the span is removed from its paragraph. Items
// without text at the start of the span are deleted whole, after which
// the span resumes at the start of the following item. Otherwise the
// start paragraph is cut at its offset, the items strictly between are
// deleted and the end paragraph loses everything before its offset.
// When both original ends are text items the end remainder is merged
// onto the start paragraph. Without a merge an end item that has no
// text is deleted and the start item keeps what is left of its text,
// even when that is nothing.
//
// All positions are checked before n is modified.
func (n *Narrative) DeleteBlock(start, end cursor.Pos) {
	start, end = cursor.Normalize(start, end)
	n.checkPos("DeleteBlock", start)
	n.checkPos("DeleteBlock", end)
	si, so := start.Item, n.Offset(start)
	ei, eo := end.Item, n.Offset(end)
	if si == ei && so > eo {
		so, eo = eo, so
	}
	merge := IsText(n.items[si]) && IsText(n.items[ei])

	for !IsText(n.items[si]) {
		n.removeItems(si, 1)
		if si == ei {
			return
		}
		ei--
		so = 0
	}
	if si == ei {
		Paragraph(n.items[si]).DeleteRange(so, eo)
		n.changed(si)
		return
	}

	sp := Paragraph(n.items[si])
	sp.DeleteRange(so, rich.ToEnd)
	if ep := Paragraph(n.items[ei]); ep != nil {
		ep.DeleteRange(0, eo)
	}
	if ei > si+1 {
		n.removeItems(si+1, ei-si-1)
		ei = si + 1
	}

	if merge {
		sp.Append(Paragraph(n.items[ei]))
		n.removeItems(ei, 1)
		n.changed(si)
		return
	}
	if IsText(n.items[ei]) {
		n.changed(ei)
	} else {
		n.removeItems(ei, 1)
	}
	n.changed(si)
}

// SetStyle gives the text between start and end run style st. Items
// without text are skipped.
func (n *Narrative) SetStyle(start, end cursor.Pos, st rich.Style) {
	start, end = cursor.Normalize(start, end)
	n.checkPos("SetStyle", start)
	n.checkPos("SetStyle", end)
	n.walk("SetStyle", start.Item, n.Offset(start), end.Item, n.Offset(end), func(i int, it Item, s, e int) {
		p := Paragraph(it)
		if p == nil {
			return
		}
		if e == rich.ToEnd {
			e = p.Len()
		}
		if s < e {
			p.SetStyle(s, e, st)
			n.changed(i)
		}
	})
}

// SlideChanged records an edit to s, which must belong to n.
func (n *Narrative) SlideChanged(s *slide.Slide) {
	i := n.ItemIndex(s)
	if i < 0 {
		panic("narrative.SlideChanged: slide not in narrative")
	}
	s.Changed()
	n.changed(i)
}
