package sc

import (
	"strings"

	"github.com/rjkroege/colloquium/rich"
)

var escaper = strings.NewReplacer(`\`, `\\`, `{`, `\{`, `}`, `\}`)

// Escape protects the storycode metacharacters in s.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Tag formats a block. Empty options are omitted; body is written
// verbatim and must already be escaped.
func Tag(name, options, body string) string {
	var b strings.Builder
	writeTag(&b, name, options, body, true)
	return b.String()
}

// Bare formats a block with no contents part.
func Bare(name, options string) string {
	var b strings.Builder
	writeTag(&b, name, options, "", false)
	return b.String()
}

func writeTag(b *strings.Builder, name, options, body string, braced bool) {
	b.WriteByte('\\')
	b.WriteString(name)
	if options != "" {
		b.WriteByte('[')
		b.WriteString(options)
		b.WriteByte(']')
	}
	if braced {
		b.WriteByte('{')
		b.WriteString(body)
		b.WriteByte('}')
	}
}

var styleTags = map[rich.Style]string{
	rich.Bold:      "b",
	rich.Italic:    "i",
	rich.Underline: "u",
}

// RunsMarkup returns runs as storycode: Normal runs as escaped text and
// the others wrapped in \b, \i or \u.
func RunsMarkup(runs rich.Runs) string {
	var b strings.Builder
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if tag, ok := styleTags[r.Style]; ok {
			writeTag(&b, tag, "", Escape(r.Text), true)
			continue
		}
		b.WriteString(Escape(r.Text))
	}
	return b.String()
}
