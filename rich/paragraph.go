package rich

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ToEnd is the end offset meaning "the end of the paragraph".
const ToEnd = -1

// Paragraph is a sequence of styled runs. It always holds at least one
// run; only an empty paragraph holds an empty run, and then exactly one.
//
// All offsets are byte offsets into the concatenated run text and must
// fall on UTF-8 sequence boundaries. Callers snap offsets to codepoint
// boundaries; an offset that does not satisfy this panics.
type Paragraph struct {
	Runs  Runs
	Align Alignment

	rev uint64
}

// NewParagraph builds a paragraph from runs, dropping empty ones.
func NewParagraph(runs ...Run) *Paragraph {
	style := Normal
	if len(runs) > 0 {
		style = runs[0].Style
	}
	return &Paragraph{Runs: fromRuns(runs, style)}
}

// Plain returns a paragraph holding text in a single Normal run.
func Plain(text string) *Paragraph {
	return NewParagraph(Run{Text: text})
}

// fromRuns copies runs, dropping empty ones. If nothing remains, the
// result is a single empty run of the given style.
func fromRuns(runs []Run, style Style) Runs {
	out := make(Runs, 0, len(runs))
	for _, r := range runs {
		if r.Text != "" {
			out = append(out, Run{Text: strings.ToValidUTF8(r.Text, "�"), Style: r.Style})
		}
	}
	if len(out) == 0 {
		out = append(out, Run{Style: style})
	}
	return out
}

// Len returns the paragraph length in bytes.
func (p *Paragraph) Len() int { return p.Runs.Len() }

// Text returns the full text of the paragraph.
func (p *Paragraph) Text() string { return p.Runs.String() }

// IsEmpty reports whether the paragraph has no text.
func (p *Paragraph) IsEmpty() bool { return p.Len() == 0 }

// Rev returns a counter that changes whenever the paragraph is edited.
func (p *Paragraph) Rev() uint64 { return p.rev }

// Clone returns a deep copy of p.
func (p *Paragraph) Clone() *Paragraph {
	np := &Paragraph{Align: p.Align}
	np.Runs = append(Runs(nil), p.Runs...)
	return np
}

func (p *Paragraph) touch(op string) {
	p.rev++
	p.validate(op)
}

// ValidOffset reports whether off lies within p on a codepoint boundary.
func (p *Paragraph) ValidOffset(off int) bool {
	n := p.Len()
	if off < 0 || off > n {
		return false
	}
	if off == n {
		return true
	}
	i, o := p.WhichRun(off)
	return utf8.RuneStart(p.Runs[i].Text[o])
}

// checkOffset panics unless off is a valid offset into p.
func (p *Paragraph) checkOffset(op string, off int) {
	n := p.Len()
	if off < 0 || off > n {
		panic(fmt.Sprint("rich.", op, ": offset ", off, " outside paragraph of length ", n))
	}
	if off == n {
		return
	}
	i, o := p.WhichRun(off)
	if !utf8.RuneStart(p.Runs[i].Text[o]) {
		panic(fmt.Sprint("rich.", op, ": offset ", off, " is inside a UTF-8 sequence"))
	}
}

// WhichRun locates the run holding byte offset off and returns the run
// index and the offset within that run. An offset on a boundary between
// two runs belongs to the start of the following run; the offset at the
// very end of the paragraph resolves to the end of the last run.
func (p *Paragraph) WhichRun(off int) (run, offInRun int) {
	if off < 0 {
		panic(fmt.Sprint("rich.WhichRun: negative offset ", off))
	}
	pos := 0
	for i, r := range p.Runs {
		if off < pos+len(r.Text) {
			return i, off - pos
		}
		pos += len(r.Text)
	}
	if off == pos {
		last := len(p.Runs) - 1
		return last, len(p.Runs[last].Text)
	}
	panic(fmt.Sprint("rich.WhichRun: offset ", off, " outside paragraph of length ", pos))
}

// RunStart returns the paragraph offset at which run i begins.
func (p *Paragraph) RunStart(i int) int {
	pos := 0
	for _, r := range p.Runs[:i] {
		pos += len(r.Text)
	}
	return pos
}

// span resolves [start, end) to run coordinates using the WhichRun
// boundary rule. Deletion and extraction share it so that what is
// extracted is exactly what a delete would remove.
func (p *Paragraph) span(op string, start, end int) (si, so, ei, eo int) {
	if end == ToEnd {
		end = p.Len()
	}
	p.checkOffset(op, start)
	p.checkOffset(op, end)
	if start > end {
		panic(fmt.Sprint("rich.", op, ": start ", start, " after end ", end))
	}
	si, so = p.WhichRun(start)
	ei, eo = p.WhichRun(end)
	return
}

// Slice returns a copy of the runs covering [start, end). End may be
// ToEnd.
func (p *Paragraph) Slice(start, end int) Runs {
	si, so, ei, eo := p.span("Slice", start, end)
	if si == ei {
		r := p.Runs[si]
		return Runs{{Text: r.Text[so:eo], Style: r.Style}}
	}
	out := make(Runs, 0, ei-si+1)
	out = append(out, Run{Text: p.Runs[si].Text[so:], Style: p.Runs[si].Style})
	out = append(out, p.Runs[si+1:ei]...)
	out = append(out, Run{Text: p.Runs[ei].Text[:eo], Style: p.Runs[ei].Style})
	return out.Coalesce()
}

// DeleteRange removes the text in [start, end). End may be ToEnd.
func (p *Paragraph) DeleteRange(start, end int) {
	si, so, ei, eo := p.span("DeleteRange", start, end)
	if si == ei && so == eo {
		return
	}
	style := p.Runs[si].Style

	if si == ei {
		r := &p.Runs[si]
		r.Text = r.Text[:so] + r.Text[eo:]
	} else {
		p.Runs[si].Text = p.Runs[si].Text[:so]
		p.Runs[ei].Text = p.Runs[ei].Text[eo:]
		p.Runs = append(p.Runs[:si+1], p.Runs[ei:]...)
	}
	p.dropEmpty(style)
	p.touch("DeleteRange")
}

// dropEmpty removes empty runs, collapsing to a single empty run of the
// given style when nothing is left.
func (p *Paragraph) dropEmpty(style Style) {
	out := p.Runs[:0]
	for _, r := range p.Runs {
		if r.Text != "" {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		out = append(out, Run{Style: style})
	}
	p.Runs = out
}

// Split divides p at off. The run holding off is cut in two, both halves
// keeping its style. Left holds everything before off and right the
// rest. p itself is not modified.
func (p *Paragraph) Split(off int) (left, right *Paragraph) {
	p.checkOffset("Split", off)
	i, o := p.WhichRun(off)
	r := p.Runs[i]

	lr := make([]Run, 0, i+1)
	lr = append(lr, p.Runs[:i]...)
	lr = append(lr, Run{Text: r.Text[:o], Style: r.Style})

	rr := make([]Run, 0, len(p.Runs)-i)
	rr = append(rr, Run{Text: r.Text[o:], Style: r.Style})
	rr = append(rr, p.Runs[i+1:]...)

	left = &Paragraph{Runs: fromRuns(lr, r.Style), Align: p.Align}
	right = &Paragraph{Runs: fromRuns(rr, r.Style), Align: p.Align}
	return left, right
}

// Insert splices text into the run containing off. The new text takes
// the style of that run.
func (p *Paragraph) Insert(off int, text string) {
	p.checkOffset("Insert", off)
	if text == "" {
		return
	}
	text = strings.ToValidUTF8(text, "�")
	i, o := p.WhichRun(off)
	r := &p.Runs[i]
	r.Text = r.Text[:o] + text + r.Text[o:]
	p.touch("Insert")
}

// InsertRuns splices styled runs in at off, splitting the run there.
func (p *Paragraph) InsertRuns(off int, runs Runs) {
	p.checkOffset("InsertRuns", off)
	runs = Runs(fromRuns(runs, Normal)).Coalesce()
	if len(runs) == 0 {
		return
	}
	i, o := p.WhichRun(off)
	r := p.Runs[i]
	out := make(Runs, 0, len(p.Runs)+len(runs)+1)
	out = append(out, p.Runs[:i]...)
	out = append(out, Run{Text: r.Text[:o], Style: r.Style})
	out = append(out, runs...)
	out = append(out, Run{Text: r.Text[o:], Style: r.Style})
	out = append(out, p.Runs[i+1:]...)
	p.Runs = out.Coalesce()
	p.touch("InsertRuns")
}

// Append merges the runs of other onto the end of p. Matching styles at
// the seam are joined into one run.
func (p *Paragraph) Append(other *Paragraph) {
	if other.IsEmpty() {
		p.touch("Append")
		return
	}
	if p.IsEmpty() {
		p.Runs = append(Runs(nil), other.Runs...)
		p.touch("Append")
		return
	}
	first := other.Runs[0]
	if last := &p.Runs[len(p.Runs)-1]; last.Style == first.Style {
		last.Text += first.Text
		p.Runs = append(p.Runs, other.Runs[1:]...)
	} else {
		p.Runs = append(p.Runs, other.Runs...)
	}
	p.touch("Append")
}

// DeleteSpan deletes from (p1, o1) to (p2, o2) across a list of
// paragraphs and returns the updated list. Either offset may be ToEnd.
// The endpoints are normalized first. When the span covers several paragraphs, what is left of the
// last one is merged onto the first.
func DeleteSpan(paras []*Paragraph, p1, o1, p2, o2 int) []*Paragraph {
	if min(p1, p2) < 0 || max(p1, p2) >= len(paras) {
		panic(fmt.Sprint("rich.DeleteSpan: paragraphs ", p1, "..", p2, " outside list of length ", len(paras)))
	}
	if o1 == ToEnd {
		o1 = paras[p1].Len()
	}
	if o2 == ToEnd {
		o2 = paras[p2].Len()
	}
	if p1 > p2 || (p1 == p2 && o1 > o2) {
		p1, o1, p2, o2 = p2, o2, p1, o1
	}
	paras[p1].checkOffset("DeleteSpan", o1)
	paras[p2].checkOffset("DeleteSpan", o2)

	if p1 == p2 {
		paras[p1].DeleteRange(o1, o2)
		return paras
	}
	paras[p1].DeleteRange(o1, ToEnd)
	paras[p2].DeleteRange(0, o2)
	paras[p1].Append(paras[p2])
	return append(paras[:p1+1], paras[p2+1:]...)
}

// SetStyle gives the text in [start, end) style st. End may be ToEnd.
func (p *Paragraph) SetStyle(start, end int, st Style) {
	runs := p.Slice(start, end)
	if runs.Len() == 0 {
		return
	}
	for i := range runs {
		runs[i].Style = st
	}
	p.DeleteRange(start, end)
	p.InsertRuns(start, runs)
}
