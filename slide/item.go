package slide

import (
	"strings"

	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/stylesheet"
)

// Item is one frame on a slide. It is one of *TextFrame, *Image,
// *Footer, *Title or *Prestitle.
type Item interface {
	isItem()
}

// Text is the paragraph list of a text-bearing frame. It always holds at
// least one paragraph.
type Text struct {
	Paras []*rich.Paragraph
}

// NewText returns a Text holding paras, or one empty paragraph.
func NewText(paras ...*rich.Paragraph) Text {
	if len(paras) == 0 {
		paras = []*rich.Paragraph{rich.Plain("")}
	}
	return Text{Paras: paras}
}

// PlainText returns the paragraphs joined by newlines.
func (t *Text) PlainText() string {
	parts := make([]string, len(t.Paras))
	for i, p := range t.Paras {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

func (t *Text) splitParagraph(para, off int) {
	l, r := t.Paras[para].Split(off)
	t.Paras[para] = l
	t.Paras = append(t.Paras, nil)
	copy(t.Paras[para+2:], t.Paras[para+1:])
	t.Paras[para+1] = r
}

func (t *Text) text() *Text { return t }

// TextFrame is a freely placed text box.
type TextFrame struct {
	Text
	Geom  stylesheet.Geometry
	Align rich.Alignment
}

// Image is a freely placed picture.
type Image struct {
	Filename string
	Geom     stylesheet.Geometry
}

// Footer is the slide footer; its placement and look come from the
// stylesheet.
type Footer struct{}

// Title is the slide title, placed by the stylesheet.
type Title struct {
	Text
}

// Prestitle is the presentation title, placed by the stylesheet.
type Prestitle struct {
	Text
}

func (*TextFrame) isItem() {}
func (*Image) isItem()     {}
func (*Footer) isItem()    {}
func (*Title) isItem()     {}
func (*Prestitle) isItem() {}

type texter interface {
	text() *Text
}

// TextOf returns the paragraphs of a text-bearing item.
func TextOf(it Item) (*Text, bool) {
	if t, ok := it.(texter); ok {
		return t.text(), true
	}
	return nil, false
}

// StyleName returns the stylesheet path for the kind of it.
func StyleName(it Item) string {
	switch it.(type) {
	case *TextFrame:
		return stylesheet.SlideText
	case *Title:
		return stylesheet.SlideTitle
	case *Prestitle:
		return stylesheet.SlidePrestitle
	case *Footer:
		return stylesheet.SlideFooter
	}
	return ""
}

// ownGeometry returns the geometry held by the item itself, if any.
func ownGeometry(it Item) (*stylesheet.Geometry, bool) {
	switch it := it.(type) {
	case *TextFrame:
		return &it.Geom, true
	case *Image:
		return &it.Geom, true
	}
	return nil, false
}
