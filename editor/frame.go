package editor

import (
	"github.com/rjkroege/colloquium/cursor"
	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/shape"
	"github.com/rjkroege/colloquium/slide"
	"github.com/rjkroege/colloquium/stylesheet"
)

// frameDoc presents the paragraphs of one text frame as a cursor.Doc in
// slide units, so the narrative's cursor movement and hit testing work
// inside frames. It is rebuilt after every edit to the frame.
type frameDoc struct {
	text    *slide.Text
	rect    stylesheet.Rect
	pad     [4]float64
	layouts []shape.Layout
	heights []float64 // with paragraph spacing
	spaceT  float64
}

var _ cursor.Doc = (*frameDoc)(nil)

// newFrameDoc shapes frame i of s, or returns nil when the frame has no
// text or no placement.
func newFrameDoc(s *slide.Slide, i int, sheet stylesheet.Sheet, shaper shape.Shaper) *frameDoc {
	t, ok := slide.TextOf(s.Item(i))
	if !ok {
		return nil
	}
	rect, ok := s.Geom(i, sheet)
	if !ok {
		return nil
	}
	font := stylesheet.DefaultFont
	if st, ok := sheet.Lookup(slide.StyleName(s.Item(i))); ok && st.Font != "" {
		font = st.Font
	}
	space := s.ParaSpace(i, sheet)
	d := &frameDoc{
		text:   t,
		rect:   rect,
		pad:    s.Padding(i, sheet),
		spaceT: space[stylesheet.Top],
	}
	width := rect.W - d.pad[stylesheet.Left] - d.pad[stylesheet.Right]
	align := s.Alignment(i, sheet)
	for _, p := range t.Paras {
		l := shaper.Shape(p.Runs, font, width, p.Align.Resolve(align))
		_, h := l.Size()
		d.layouts = append(d.layouts, l)
		d.heights = append(d.heights, h+space[stylesheet.Top]+space[stylesheet.Bottom])
	}
	return d
}

func (d *frameDoc) NumItems() int                   { return len(d.text.Paras) }
func (d *frameDoc) Paragraph(j int) *rich.Paragraph { return d.text.Paras[j] }
func (d *frameDoc) Layout(j int) shape.Layout       { return d.layouts[j] }
func (d *frameDoc) ItemHeight(j int) float64        { return d.heights[j] }

func (d *frameDoc) ItemTop(j int) float64 {
	y := d.rect.Y + d.pad[stylesheet.Top]
	for _, h := range d.heights[:j] {
		y += h
	}
	return y
}

func (d *frameDoc) Inset(j int) (x, y float64) {
	return d.rect.X + d.pad[stylesheet.Left], d.spaceT
}

// highlight marks the part of each paragraph covered by sel.
func (d *frameDoc) highlight(sel cursor.Selection) {
	if sel.Empty() {
		return
	}
	start, end := sel.Span()
	for j := start.Item; j <= end.Item && j < len(d.layouts); j++ {
		p := d.text.Paras[j]
		s, e := 0, p.Len()
		if j == start.Item {
			s = cursor.PositionToOffset(p, start.Offset, start.Trail)
		}
		if j == end.Item {
			e = cursor.PositionToOffset(p, end.Offset, end.Trail)
		}
		if s < e {
			d.layouts[j].SetHighlight(s, e)
		}
	}
}
