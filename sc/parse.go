package sc

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("storycode syntax error")

// Block is one node of a parsed storycode tree. A block with an empty
// Name is literal text held in Text.
type Block struct {
	Name     string
	Options  string
	Text     string
	Children []*Block

	// Braced is set when the block had a {contents} part, even an empty one.
	Braced bool
}

// IsText reports whether b is literal text.
func (b *Block) IsText() bool { return b.Name == "" }

// Option returns the i'th comma-separated option of b, or "".
func (b *Block) Option(i int) string {
	opts := SplitOptions(b.Options)
	if i < len(opts) {
		return opts[i]
	}
	return ""
}

// Find returns the first direct child named name, or nil.
func (b *Block) Find(name string) *Block {
	for _, c := range b.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// SplitOptions splits an option string on commas, trimming spaces.
func SplitOptions(opts string) []string {
	if strings.TrimSpace(opts) == "" {
		return nil
	}
	parts := strings.Split(opts, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

type parser struct {
	src  string
	pos  int
	line int
}

// Parse reads a complete storycode document.
func Parse(r io.Reader) ([]*Block, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading storycode: %w", err)
	}
	return ParseString(string(b))
}

// ParseString parses storycode held in a string.
func ParseString(s string) ([]*Block, error) {
	p := &parser{src: s, line: 1}
	blocks, err := p.sequence(false)
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s: %w", p.line, fmt.Sprintf(format, args...), ErrSyntax)
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// sequence parses blocks until the end of input or, when nested, until
// the closing brace, which it consumes.
func (p *parser) sequence(nested bool) ([]*Block, error) {
	var blocks []*Block
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			blocks = append(blocks, &Block{Text: text.String()})
			text.Reset()
		}
	}

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '\n':
			p.line++
			text.WriteByte(c)
			p.pos++
		case '}':
			if !nested {
				return nil, p.errorf("unbalanced }")
			}
			p.pos++
			flush()
			return blocks, nil
		case '{':
			return nil, p.errorf("unexpected { outside a block")
		case '\\':
			p.pos++
			if p.pos >= len(p.src) {
				return nil, p.errorf("trailing backslash")
			}
			if e := p.src[p.pos]; e == '\\' || e == '{' || e == '}' {
				text.WriteByte(e)
				p.pos++
				continue
			}
			flush()
			b, err := p.block()
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, b)
		default:
			text.WriteByte(c)
			p.pos++
		}
	}
	if nested {
		return nil, p.errorf("unterminated block")
	}
	flush()
	return blocks, nil
}

// block parses name[options]{contents} following a backslash.
func (p *parser) block() (*Block, error) {
	start := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return nil, p.errorf("expected a block name after \\")
	}
	b := &Block{Name: p.src[start:p.pos]}

	if p.pos < len(p.src) && p.src[p.pos] == '[' {
		end := strings.IndexByte(p.src[p.pos:], ']')
		if end < 0 {
			return nil, p.errorf("unterminated options for \\%s", b.Name)
		}
		b.Options = p.src[p.pos+1 : p.pos+end]
		p.line += strings.Count(b.Options, "\n")
		p.pos += end + 1
	}

	if p.pos < len(p.src) && p.src[p.pos] == '{' {
		p.pos++
		children, err := p.sequence(true)
		if err != nil {
			return nil, err
		}
		b.Children = children
		b.Braced = true
	}
	return b, nil
}

// Lines splits a block sequence into paragraphs at the newlines held in
// its literal text blocks. A sequence with no content yields one empty
// line.
func Lines(blocks []*Block) [][]*Block {
	lines := [][]*Block{nil}
	for _, b := range blocks {
		if !b.IsText() {
			lines[len(lines)-1] = append(lines[len(lines)-1], b)
			continue
		}
		parts := strings.Split(b.Text, "\n")
		for i, s := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if s != "" {
				lines[len(lines)-1] = append(lines[len(lines)-1], &Block{Text: s})
			}
		}
	}
	return lines
}
