package sc

import (
	"fmt"
	"strings"

	"github.com/rjkroege/colloquium/rich"
)

var tagStyles = map[string]rich.Style{
	"b": rich.Bold,
	"i": rich.Italic,
	"u": rich.Underline,
}

// Runs converts one paragraph worth of blocks into styled runs. Style
// blocks may nest; the innermost style wins. Any other block is an
// error.
func Runs(blocks []*Block) (rich.Runs, error) {
	var out rich.Runs
	if err := appendRuns(&out, blocks, rich.Normal); err != nil {
		return nil, err
	}
	return out.Coalesce(), nil
}

func appendRuns(out *rich.Runs, blocks []*Block, style rich.Style) error {
	for _, b := range blocks {
		if b.IsText() {
			*out = append(*out, rich.Run{Text: b.Text, Style: style})
			continue
		}
		s, ok := tagStyles[b.Name]
		if !ok {
			return fmt.Errorf("unexpected \\%s inside text: %w", b.Name, ErrSyntax)
		}
		if err := appendRuns(out, b.Children, s); err != nil {
			return err
		}
	}
	return nil
}

// Paragraph converts one line of blocks into a paragraph. A leading bare
// \para[alignment] block sets the paragraph alignment.
func Paragraph(line []*Block) (*rich.Paragraph, error) {
	align := rich.Inherit
	if len(line) > 0 && line[0].Name == "para" {
		a, ok := rich.ParseAlignment(line[0].Option(0))
		if !ok {
			return nil, fmt.Errorf("bad paragraph alignment %q: %w", line[0].Options, ErrSyntax)
		}
		align = a
		line = line[1:]
	}
	runs, err := Runs(line)
	if err != nil {
		return nil, err
	}
	p := rich.NewParagraph(runs...)
	p.Align = align
	return p, nil
}

// ParagraphMarkup is the inverse of Paragraph.
func ParagraphMarkup(p *rich.Paragraph) string {
	s := RunsMarkup(p.Runs)
	if p.Align != rich.Inherit {
		s = Bare("para", p.Align.String()) + s
	}
	return s
}

// Paragraphs converts block contents into one paragraph per line.
func Paragraphs(blocks []*Block) ([]*rich.Paragraph, error) {
	var paras []*rich.Paragraph
	for _, line := range Lines(blocks) {
		p, err := Paragraph(line)
		if err != nil {
			return nil, err
		}
		paras = append(paras, p)
	}
	return paras, nil
}

// ParagraphsMarkup is the inverse of Paragraphs.
func ParagraphsMarkup(paras []*rich.Paragraph) string {
	parts := make([]string, len(paras))
	for i, p := range paras {
		parts[i] = ParagraphMarkup(p)
	}
	return strings.Join(parts, "\n")
}
