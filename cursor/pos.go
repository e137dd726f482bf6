// Package cursor addresses positions in a sequence of paragraphs: item
// index, byte offset and a trailing-edge flag. It converts between
// positions and byte offsets, moves a cursor across items and maps
// points to positions.
package cursor

import (
	"fmt"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/rjkroege/colloquium/rich"
)

// Pos is a cursor or selection endpoint. When Trail is set the cursor
// sits after the codepoint starting at Offset rather than before it.
type Pos struct {
	Item   int
	Offset int
	Trail  bool
}

func (p Pos) String() string {
	if p.Trail {
		return fmt.Sprintf("{%d,%d,trail}", p.Item, p.Offset)
	}
	return fmt.Sprintf("{%d,%d}", p.Item, p.Offset)
}

// Compare orders positions by item and then by byte offset. The
// trailing flag does not participate.
func Compare(a, b Pos) int {
	switch {
	case a.Item < b.Item:
		return -1
	case a.Item > b.Item:
		return 1
	case a.Offset < b.Offset:
		return -1
	case a.Offset > b.Offset:
		return 1
	}
	return 0
}

// Normalize returns a and b in order.
func Normalize(a, b Pos) (start, end Pos) {
	if Compare(b, a) < 0 {
		return b, a
	}
	return a, b
}

// Selection is the span between an anchor and the moving head. A
// selection whose ends compare equal is a plain cursor.
type Selection struct {
	Anchor, Head Pos
}

// At returns an empty selection at p.
func At(p Pos) Selection { return Selection{Anchor: p, Head: p} }

func (s Selection) Empty() bool { return Compare(s.Anchor, s.Head) == 0 }

// Span returns the normalized ends of s.
func (s Selection) Span() (start, end Pos) { return Normalize(s.Anchor, s.Head) }

// Contains reports whether item i is touched by s.
func (s Selection) Contains(i int) bool {
	st, en := s.Span()
	return !s.Empty() && st.Item <= i && i <= en.Item
}

// PositionToOffset converts an offset and trailing flag within p into a
// byte offset. A trailing cursor is moved past one codepoint of the run
// holding offset; at the end of the paragraph it stays at the end.
func PositionToOffset(p *rich.Paragraph, offset int, trail bool) int {
	ri, o := p.WhichRun(offset)
	if !trail {
		return offset
	}
	text := p.Runs[ri].Text
	n := utf8.RuneCountInString(text[:o]) + 1

	b := 0
	for i := 0; i < n && b < len(text); i++ {
		_, sz := utf8.DecodeRuneInString(text[b:])
		b += sz
	}
	return p.RunStart(ri) + b
}

// PrevBoundary returns the start of the grapheme cluster before off.
func PrevBoundary(p *rich.Paragraph, off int) int {
	text := p.Text()
	if off <= 0 {
		return 0
	}
	prev, pos := 0, 0
	state := -1
	rest := text
	for len(rest) > 0 && pos < off {
		var c string
		prev = pos
		c, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(c)
	}
	return prev
}

// NextBoundary returns the end of the grapheme cluster holding off.
func NextBoundary(p *rich.Paragraph, off int) int {
	text := p.Text()
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var c string
		c, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(c)
		if pos > off {
			return pos
		}
	}
	return len(text)
}
