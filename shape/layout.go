package shape

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/stylesheet"
)

type layout struct {
	runs  rich.Runs
	text  string
	font  string
	faces FaceSource
	width float64

	lines  []Line
	bounds []int // grapheme cluster starts plus len(text)

	hlStart, hlEnd int
}

var _ Layout = (*layout)(nil)

func (l *layout) graphemes() {
	g := uniseg.NewGraphemes(l.text)
	for g.Next() {
		from, _ := g.Positions()
		l.bounds = append(l.bounds, from)
	}
	l.bounds = append(l.bounds, len(l.text))
}

func (l *layout) whichRun(off int) (int, int) {
	pos := 0
	for i, r := range l.runs {
		if off < pos+len(r.Text) || i == len(l.runs)-1 {
			return i, off - pos
		}
		pos += len(r.Text)
	}
	return 0, 0
}

func (l *layout) runStart(i int) int {
	pos := 0
	for _, r := range l.runs[:i] {
		pos += len(r.Text)
	}
	return pos
}

func (l *layout) Text() string  { return l.text }
func (l *layout) Lines() []Line { return l.lines }

func (l *layout) Size() (w, h float64) {
	for _, ln := range l.lines {
		if ln.X+ln.W > w {
			w = ln.X + ln.W
		}
	}
	last := l.lines[len(l.lines)-1]
	return w, last.Y + last.H
}

// xAt returns the x coordinate of byte offset off within ln.
func (l *layout) xAt(ln *Line, off int) float64 {
	x := ln.X
	for _, b := range ln.Boxes {
		if off >= b.End {
			x += b.W
			continue
		}
		if off > b.Start {
			f := l.faces.Face(l.font, b.Style)
			x += f.Width(l.text[b.Start:off])
		}
		break
	}
	return x
}

// lineFor returns the line showing the caret at off. An offset at a wrap
// point belongs to the following line.
func (l *layout) lineFor(off int) *Line {
	for i := range l.lines {
		if off < l.lines[i].End {
			return &l.lines[i]
		}
	}
	return &l.lines[len(l.lines)-1]
}

func (l *layout) check(op string, off int) {
	if off < 0 || off > len(l.text) {
		panic(fmt.Sprint("shape.", op, " offset ", off, " out of range [0,", len(l.text), "]"))
	}
}

// lastCodepoint returns the start of the final codepoint before end.
func (l *layout) lastCodepoint(end int) int {
	_, sz := utf8.DecodeLastRuneInString(l.text[:end])
	return end - sz
}

func (l *layout) IndexAt(x, y float64) (int, bool) {
	if len(l.text) == 0 {
		return 0, false
	}
	li := len(l.lines) - 1
	for i, ln := range l.lines {
		if y < ln.Y+ln.H {
			li = i
			break
		}
	}
	ln := &l.lines[li]
	if ln.Start == ln.End {
		return ln.Start, false
	}

	gi := sort.SearchInts(l.bounds, ln.Start)
	for ; gi < len(l.bounds)-1 && l.bounds[gi] < ln.End; gi++ {
		gs, ge := l.bounds[gi], l.bounds[gi+1]
		x0, x1 := l.xAt(ln, gs), l.xAt(ln, ge)
		if x < x1 {
			if x >= (x0+x1)/2 {
				return l.lastCodepoint(ge), true
			}
			return gs, false
		}
	}

	// Past the end of the line.
	last := l.lastCodepoint(ln.End)
	if li < len(l.lines)-1 {
		switch l.text[last] {
		case ' ', '\t', '\n', '\r':
			return last, false
		}
	}
	return last, true
}

func (l *layout) MoveVisually(off int, trail bool, dir int) (int, bool) {
	l.check("MoveVisually", off)
	if trail && off < len(l.text) {
		_, sz := utf8.DecodeRuneInString(l.text[off:])
		off += sz
	}
	if dir > 0 {
		if off >= len(l.text) {
			return OffEnd, false
		}
		next := l.bounds[sort.SearchInts(l.bounds, off+1)]
		if next >= len(l.text) {
			return l.lastCodepoint(len(l.text)), true
		}
		return next, false
	}
	if off <= 0 {
		return -1, false
	}
	return l.bounds[sort.SearchInts(l.bounds, off)-1], false
}

func (l *layout) CursorRect(off int) stylesheet.Rect {
	l.check("CursorRect", off)
	ln := l.lineFor(off)
	return stylesheet.Rect{X: l.xAt(ln, off), Y: ln.Y, H: ln.H}
}

func (l *layout) SetHighlight(start, end int) {
	l.check("SetHighlight", start)
	l.check("SetHighlight", end)
	if start > end {
		start, end = end, start
	}
	l.hlStart, l.hlEnd = start, end
}

func (l *layout) Highlight() (int, int, bool) {
	return l.hlStart, l.hlEnd, l.hlStart != l.hlEnd
}

func (l *layout) HighlightRects() []stylesheet.Rect {
	if l.hlStart == l.hlEnd {
		return nil
	}
	var rs []stylesheet.Rect
	for i := range l.lines {
		ln := &l.lines[i]
		s, e := max(l.hlStart, ln.Start), min(l.hlEnd, ln.End)
		if s >= e {
			continue
		}
		x0, x1 := l.xAt(ln, s), l.xAt(ln, e)
		rs = append(rs, stylesheet.Rect{X: x0, Y: ln.Y, W: x1 - x0, H: ln.H})
	}
	return rs
}
