package narrative

import (
	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/slide"
	"github.com/rjkroege/colloquium/stylesheet"
)

// Item is one element of a narrative.
type Item interface {
	isItem()
}

// Text is a paragraph of speaker notes.
type Text struct {
	Para *rich.Paragraph
}

// BulletPoint is a bulleted paragraph.
type BulletPoint struct {
	Para *rich.Paragraph
}

// Prestitle is the title of the presentation.
type Prestitle struct {
	Para *rich.Paragraph
}

// Slide embeds a slide in the narrative. The item owns the slide.
type Slide struct {
	Slide *slide.Slide
}

// EndOfPresentation marks where the presented slides stop.
type EndOfPresentation struct{}

func (*Text) isItem()              {}
func (*BulletPoint) isItem()       {}
func (*Prestitle) isItem()         {}
func (*Slide) isItem()             {}
func (*EndOfPresentation) isItem() {}

// Paragraph returns the paragraph held by it or nil if it holds none.
func Paragraph(it Item) *rich.Paragraph {
	switch it := it.(type) {
	case *Text:
		return it.Para
	case *BulletPoint:
		return it.Para
	case *Prestitle:
		return it.Para
	}
	return nil
}

// IsText reports whether it holds a paragraph.
func IsText(it Item) bool { return Paragraph(it) != nil }

// StyleName returns the stylesheet path for it. Items without text
// have no style.
func StyleName(it Item) string {
	switch it.(type) {
	case *Text:
		return stylesheet.NarrativeText
	case *BulletPoint:
		return stylesheet.NarrativeBP
	case *Prestitle:
		return stylesheet.NarrativePrestitle
	}
	return ""
}

// sibling returns a new item of the same kind as it holding p.
func sibling(it Item, p *rich.Paragraph) Item {
	switch it.(type) {
	case *BulletPoint:
		return &BulletPoint{Para: p}
	case *Prestitle:
		return &Prestitle{Para: p}
	}
	return &Text{Para: p}
}

// setParagraph replaces the paragraph of a text item.
func setParagraph(it Item, p *rich.Paragraph) {
	switch it := it.(type) {
	case *Text:
		it.Para = p
	case *BulletPoint:
		it.Para = p
	case *Prestitle:
		it.Para = p
	}
}

// NewText returns an empty Text item.
func NewText() *Text {
	return &Text{Para: rich.Plain("")}
}
