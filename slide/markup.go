package slide

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/sc"
	"github.com/rjkroege/colloquium/stylesheet"
)

// Markup returns the slide as a \slide{...} storycode block.
func (s *Slide) Markup() string {
	var parts []string
	if s.hasSize {
		parts = append(parts, sc.Bare("slidesize", formatFloat(s.w)+"x"+formatFloat(s.h)))
	}
	for _, it := range s.items {
		parts = append(parts, itemMarkup(it))
	}
	return sc.Tag("slide", "", strings.Join(parts, "\n"))
}

// WriteMarkup writes the slide as storycode.
func (s *Slide) WriteMarkup(w io.Writer) error {
	_, err := io.WriteString(w, s.Markup())
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func itemMarkup(it Item) string {
	switch it := it.(type) {
	case *TextFrame:
		opts := it.Geom.String()
		if it.Align != rich.Inherit {
			opts += "," + it.Align.String()
		}
		return sc.Tag("text", opts, sc.ParagraphsMarkup(it.Paras))
	case *Image:
		return sc.Tag("image", it.Geom.String(), sc.Escape(it.Filename))
	case *Footer:
		return sc.Bare("footer", "")
	case *Title:
		return sc.Tag("slidetitle", "", sc.ParagraphsMarkup(it.Paras))
	case *Prestitle:
		return sc.Tag("prestitle", "", sc.ParagraphsMarkup(it.Paras))
	}
	panic(fmt.Sprintf("slide: unknown item %T", it))
}

// DefaultGeometry is used for \text and \image blocks without one.
var DefaultGeometry = stylesheet.Geometry{
	X: stylesheet.Units(0),
	Y: stylesheet.Units(0),
	W: stylesheet.Fraction(1),
	H: stylesheet.Fraction(1),
}

// FromBlock builds a slide from a parsed \slide block.
func FromBlock(b *sc.Block) (*Slide, error) {
	if b.Name != "slide" {
		return nil, fmt.Errorf("expected \\slide, got \\%s: %w", b.Name, sc.ErrSyntax)
	}
	s := New()
	for _, c := range b.Children {
		if c.IsText() {
			if strings.TrimSpace(c.Text) != "" {
				return nil, fmt.Errorf("stray text %q in \\slide: %w", c.Text, sc.ErrSyntax)
			}
			continue
		}
		if c.Name == "slidesize" {
			ws, hs, ok := strings.Cut(c.Options, "x")
			w, werr := strconv.ParseFloat(ws, 64)
			h, herr := strconv.ParseFloat(hs, 64)
			if !ok || werr != nil || herr != nil {
				return nil, fmt.Errorf("bad \\slidesize[%s]: %w", c.Options, sc.ErrSyntax)
			}
			s.SetSize(w, h)
			continue
		}
		it, err := itemFromBlock(c)
		if err != nil {
			return nil, err
		}
		s.AddItem(it)
	}
	s.rev = 0
	return s, nil
}

func geometryOption(c *sc.Block) (stylesheet.Geometry, error) {
	o := c.Option(0)
	if o == "" {
		return DefaultGeometry, nil
	}
	g, err := stylesheet.ParseGeometry(o)
	if err != nil {
		return g, fmt.Errorf("\\%s: %w", c.Name, err)
	}
	return g, nil
}

func itemFromBlock(c *sc.Block) (Item, error) {
	switch c.Name {
	case "text":
		g, err := geometryOption(c)
		if err != nil {
			return nil, err
		}
		align, ok := rich.ParseAlignment(c.Option(1))
		if !ok {
			return nil, fmt.Errorf("\\text: bad alignment %q: %w", c.Option(1), sc.ErrSyntax)
		}
		paras, err := sc.Paragraphs(c.Children)
		if err != nil {
			return nil, err
		}
		return &TextFrame{Text: NewText(paras...), Geom: g, Align: align}, nil
	case "image":
		g, err := geometryOption(c)
		if err != nil {
			return nil, err
		}
		var name strings.Builder
		for _, t := range c.Children {
			if !t.IsText() {
				return nil, fmt.Errorf("\\image: unexpected \\%s: %w", t.Name, sc.ErrSyntax)
			}
			name.WriteString(t.Text)
		}
		return &Image{Filename: strings.TrimSpace(name.String()), Geom: g}, nil
	case "footer":
		return &Footer{}, nil
	case "slidetitle", "prestitle":
		paras, err := sc.Paragraphs(c.Children)
		if err != nil {
			return nil, err
		}
		if c.Name == "slidetitle" {
			return &Title{Text: NewText(paras...)}, nil
		}
		return &Prestitle{Text: NewText(paras...)}, nil
	}
	return nil, fmt.Errorf("unknown slide item \\%s: %w", c.Name, sc.ErrSyntax)
}
