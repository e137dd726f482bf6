package narrative

import (
	"fmt"
	"strings"

	"github.com/rjkroege/colloquium/rich"
)

// walk calls fn for every item from (p1, o1) to (p2, o2) with the byte
// range of the item inside the span. The end offset is rich.ToEnd for
// all but the last item. The ends may be given in either order and
// either offset may be rich.ToEnd.
func (n *Narrative) walk(op string, p1, o1, p2, o2 int, fn func(i int, it Item, start, end int)) {
	n.check(op, p1)
	n.check(op, p2)
	o1, o2 = n.resolveEnd(p1, o1), n.resolveEnd(p2, o2)
	if p1 > p2 || (p1 == p2 && o1 > o2) {
		p1, o1, p2, o2 = p2, o2, p1, o1
	}
	for i := p1; i <= p2; i++ {
		start, end := 0, rich.ToEnd
		if i == p1 {
			start = o1
		}
		if i == p2 {
			end = o2
		}
		it := n.items[i]
		if !IsText(it) {
			start, end = 0, 0
		}
		fn(i, it, start, end)
	}
}

// resolveEnd replaces rich.ToEnd with the length of item i.
func (n *Narrative) resolveEnd(i, off int) int {
	if off != rich.ToEnd {
		return off
	}
	if p := Paragraph(n.items[i]); p != nil {
		return p.Len()
	}
	return 0
}

// RangeAsText returns the text from (p1, o1) to (p2, o2) with a newline
// between paragraphs. Items without text contribute nothing. Inserting
// the result with InsertText recreates the paragraphs.
func (n *Narrative) RangeAsText(p1, o1, p2, o2 int) string {
	var parts []string
	n.walk("RangeAsText", p1, o1, p2, o2, func(_ int, it Item, start, end int) {
		if p := Paragraph(it); p != nil {
			parts = append(parts, p.Slice(start, end).String())
		}
	})
	return strings.Join(parts, "\n")
}

// RangeAsMarkup returns the span from (p1, o1) to (p2, o2) as storycode,
// one item per line. Slides and markers inside the span are included
// whole.
func (n *Narrative) RangeAsMarkup(p1, o1, p2, o2 int) string {
	var parts []string
	n.walk("RangeAsMarkup", p1, o1, p2, o2, func(_ int, it Item, start, end int) {
		if p := Paragraph(it); p != nil {
			cut := &rich.Paragraph{Runs: p.Slice(start, end), Align: p.Align}
			it = sibling(it, cut)
		}
		parts = append(parts, itemMarkup(it))
	})
	return strings.Join(parts, "\n")
}

// Text returns the whole narrative as text.
func (n *Narrative) Text() string {
	return n.RangeAsText(0, 0, len(n.items)-1, rich.ToEnd)
}

func (n *Narrative) String() string {
	return fmt.Sprintf("narrative of %d items, %d slides", len(n.items), n.NumSlides())
}
