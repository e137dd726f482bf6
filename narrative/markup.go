package narrative

import (
	"fmt"
	"io"
	"strings"

	"github.com/rjkroege/colloquium/imagestore"
	"github.com/rjkroege/colloquium/sc"
	"github.com/rjkroege/colloquium/slide"
	"github.com/rjkroege/colloquium/stylesheet"
)

// Storycode tag names for narrative items.
const (
	tagBulletPoint       = "bp"
	tagPrestitle         = "prestitle"
	tagSlide             = "slide"
	tagEndOfPresentation = "endofpresentation"
	tagLanguage          = "language"
)

func itemMarkup(it Item) string {
	switch it := it.(type) {
	case *Text:
		return sc.ParagraphMarkup(it.Para)
	case *BulletPoint:
		return sc.Tag(tagBulletPoint, "", sc.ParagraphMarkup(it.Para))
	case *Prestitle:
		return sc.Tag(tagPrestitle, "", sc.ParagraphMarkup(it.Para))
	case *Slide:
		return it.Slide.Markup()
	case *EndOfPresentation:
		return sc.Bare(tagEndOfPresentation, "")
	}
	panic(fmt.Sprintf("narrative: unknown item %T", it))
}

// Markup returns n as storycode: an optional \language line and then
// one line per item.
func (n *Narrative) Markup() string {
	var b strings.Builder
	if n.lang != "" {
		b.WriteString(sc.Bare(tagLanguage, n.lang))
		b.WriteByte('\n')
	}
	for _, it := range n.items {
		b.WriteString(itemMarkup(it))
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteMarkup writes n as storycode. It does not mark n saved.
func (n *Narrative) WriteMarkup(w io.Writer) error {
	_, err := io.WriteString(w, n.Markup())
	return err
}

// Load parses storycode from r into a narrative.
func Load(r io.Reader, sheet stylesheet.Sheet, images *imagestore.Store) (*Narrative, error) {
	blocks, err := sc.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromBlocks(blocks, sheet, images)
}

// FromBlocks builds a narrative from a parsed storycode tree. Each line
// is one item; a line holding only a \bp, \prestitle, \slide or
// \endofpresentation block is that kind of item and any other line is a
// Text paragraph.
func FromBlocks(blocks []*sc.Block, sheet stylesheet.Sheet, images *imagestore.Store) (*Narrative, error) {
	n := New(sheet, images)
	n.items = n.items[:0]

	lines := sc.Lines(blocks)
	if k := len(lines); k > 1 && len(lines[k-1]) == 0 {
		lines = lines[:k-1]
	}
	for ln, line := range lines {
		it, err := n.itemFromLine(line)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", ln+1, err)
		}
		if it != nil {
			n.items = append(n.items, it)
		}
	}
	if len(n.items) == 0 {
		n.items = append(n.items, NewText())
	}
	n.saved = true
	return n, nil
}

// soleTag returns the one tag in line when everything else is white
// space.
func soleTag(line []*sc.Block) *sc.Block {
	var tag *sc.Block
	for _, b := range line {
		if b.IsText() {
			if strings.TrimSpace(b.Text) != "" {
				return nil
			}
			continue
		}
		if tag != nil {
			return nil
		}
		tag = b
	}
	return tag
}

// itemFromLine returns nil for lines that carry document settings.
func (n *Narrative) itemFromLine(line []*sc.Block) (Item, error) {
	if tag := soleTag(line); tag != nil {
		switch tag.Name {
		case tagLanguage:
			n.lang = tag.Option(0)
			return nil, nil
		case tagBulletPoint:
			p, err := sc.Paragraph(tag.Children)
			if err != nil {
				return nil, err
			}
			return &BulletPoint{Para: p}, nil
		case tagPrestitle:
			p, err := sc.Paragraph(tag.Children)
			if err != nil {
				return nil, err
			}
			return &Prestitle{Para: p}, nil
		case tagSlide:
			s, err := slide.FromBlock(tag)
			if err != nil {
				return nil, err
			}
			return &Slide{Slide: s}, nil
		case tagEndOfPresentation:
			return &EndOfPresentation{}, nil
		}
	}
	p, err := sc.Paragraph(line)
	if err != nil {
		return nil, err
	}
	return &Text{Para: p}, nil
}
