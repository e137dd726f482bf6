package shape

import (
	"strings"

	"github.com/rivo/uniseg"
	"github.com/rjkroege/colloquium/rich"
)

// Greedy is a Shaper that fills each line with as many line-break
// segments as fit. Break opportunities follow the Unicode line breaking
// rules and may fall inside or between runs.
type Greedy struct {
	faces FaceSource
}

var _ Shaper = (*Greedy)(nil)

// New returns a Greedy shaper measuring with faces.
func New(faces FaceSource) *Greedy {
	return &Greedy{faces: faces}
}

// ascender is implemented by faces that know their ascent.
type ascender interface {
	Ascent() float64
}

func ascentOf(f Face) float64 {
	if a, ok := f.(ascender); ok {
		return a.Ascent()
	}
	return f.Height() * 0.8
}

// Shape lays out runs. A width <= 0 means no wrapping.
func (g *Greedy) Shape(runs rich.Runs, font string, width float64, align rich.Alignment) Layout {
	l := &layout{
		runs:  append(rich.Runs(nil), runs...),
		text:  runs.String(),
		font:  font,
		faces: g.faces,
		width: width,
	}
	if len(l.runs) == 0 {
		l.runs = rich.Runs{{}}
	}
	l.graphemes()
	l.breakLines()
	l.align(align)
	return l
}

type lineBuilder struct {
	line    Line
	trimmed float64 // width without trailing white space
}

func (l *layout) breakLines() {
	var cur lineBuilder
	cur.line.Start = 0
	pos := 0
	state := -1
	rest := l.text

	for len(rest) > 0 {
		var seg string
		var mustBreak bool
		seg, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)
		start, end := pos, pos+len(seg)
		pos = end

		boxes, w, trimmed := l.measure(start, end)
		if len(cur.line.Boxes) > 0 && l.width > 0 && cur.line.W+trimmed > l.width {
			l.finish(&cur, start)
			cur = lineBuilder{line: Line{Start: start}}
		}
		for _, b := range boxes {
			b.X = cur.line.W
			cur.line.W += b.W
			cur.line.Boxes = append(cur.line.Boxes, b)
		}
		cur.trimmed = cur.line.W - (w - trimmed)

		if mustBreak && len(rest) > 0 {
			l.finish(&cur, end)
			cur = lineBuilder{line: Line{Start: end}}
		}
	}
	l.finish(&cur, len(l.text))
}

// finish closes the line being built at byte offset end.
func (l *layout) finish(b *lineBuilder, end int) {
	ln := b.line
	ln.End = end
	ln.W = b.trimmed
	if len(ln.Boxes) == 0 {
		ri, _ := l.whichRun(ln.Start)
		f := l.faces.Face(l.font, l.runs[ri].Style)
		ln.H = f.Height()
		ln.Ascent = ascentOf(f)
	}
	for _, bx := range ln.Boxes {
		f := l.faces.Face(l.font, bx.Style)
		if h := f.Height(); h > ln.H {
			ln.H = h
		}
		if a := ascentOf(f); a > ln.Ascent {
			ln.Ascent = a
		}
	}
	if n := len(l.lines); n > 0 {
		ln.Y = l.lines[n-1].Y + l.lines[n-1].H
	}
	l.lines = append(l.lines, ln)
}

// measure splits [start, end) at run boundaries and measures each piece.
// It also returns the width without trailing white space.
func (l *layout) measure(start, end int) (boxes []Box, w, trimmed float64) {
	ri, _ := l.whichRun(start)
	rs := l.runStart(ri)
	for pos := start; pos < end; ri++ {
		re := rs + len(l.runs[ri].Text)
		pe := end
		if re < pe {
			pe = re
		}
		if pe > pos {
			f := l.faces.Face(l.font, l.runs[ri].Style)
			bw := f.Width(strings.TrimRight(l.text[pos:pe], "\r\n"))
			boxes = append(boxes, Box{Start: pos, End: pe, W: bw, Style: l.runs[ri].Style})
			w += bw
		}
		pos = pe
		rs = re
	}

	trimmed = w
	if n := len(boxes); n > 0 {
		last := boxes[n-1]
		s := l.text[last.Start:last.End]
		if t := strings.TrimRight(s, " \t\r\n\u00a0\u3000"); t != s {
			f := l.faces.Face(l.font, last.Style)
			trimmed = w - last.W + f.Width(t)
		}
	}
	return boxes, w, trimmed
}

func (l *layout) align(a rich.Alignment) {
	for i := range l.lines {
		ln := &l.lines[i]
		if l.width <= 0 {
			continue
		}
		slack := l.width - ln.W
		if slack < 0 {
			slack = 0
		}
		switch a {
		case rich.Right:
			ln.X = slack
		case rich.Center:
			ln.X = slack / 2
		}
	}
}
