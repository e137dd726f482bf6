// Package shape is the text shaping service: it breaks styled runs into
// lines against a width and answers geometric questions about the
// result. Measuring is delegated to a FaceSource.
package shape

import (
	"math"

	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/stylesheet"
)

// OffEnd is returned by Layout.MoveVisually when the cursor leaves the
// end of the text. Leaving the start yields -1.
const OffEnd = math.MaxInt32

// Box is a measured piece of a line in one style.
type Box struct {
	Start, End int // byte offsets into the paragraph
	X, W       float64
	Style      rich.Style
}

// Line is one wrapped line. X already includes the alignment offset.
type Line struct {
	Start, End int
	X, Y, W, H float64
	Ascent     float64
	Boxes      []Box
}

// Layout is a shaped, line-broken paragraph.
type Layout interface {
	// Size returns the width of the widest line and the total height.
	Size() (w, h float64)

	Lines() []Line

	// Text returns the shaped text.
	Text() string

	// IndexAt maps a point relative to the layout origin to the cursor
	// position nearest to it. When trail is set the cursor sits after the
	// codepoint at offset.
	IndexAt(x, y float64) (offset int, trail bool)

	// MoveVisually moves the cursor one grapheme in direction dir. It
	// returns -1 or OffEnd when the cursor leaves the text.
	MoveVisually(offset int, trail bool, dir int) (int, bool)

	// CursorRect returns the caret rectangle at byte offset off.
	CursorRect(off int) stylesheet.Rect

	// SetHighlight marks [start, end) as selected; start == end clears it.
	SetHighlight(start, end int)
	Highlight() (start, end int, ok bool)
	HighlightRects() []stylesheet.Rect
}

// Shaper turns runs into a Layout.
type Shaper interface {
	Shape(runs rich.Runs, font string, width float64, align rich.Alignment) Layout
}

// Face measures text in one font and style.
type Face interface {
	// Height is the line height.
	Height() float64
	Width(s string) float64
}

// FaceSource resolves a font description and run style to a Face.
type FaceSource interface {
	Face(font string, style rich.Style) Face
}
