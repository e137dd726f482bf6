// Package colloquiumtest contains utility functions that help with testing Colloquium.
package colloquiumtest

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rjkroege/colloquium/draw"
	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/shape"
)

var _ = draw.Display((*mockDisplay)(nil))

const (
	fwidth  = 13
	fheight = 10
)

// mockDisplay implements draw.Display.
type mockDisplay struct {
	mu     sync.Mutex
	opened []string
	closed bool
}

// NewDisplay returns a mock draw.Display whose fonts are all fixed width.
func NewDisplay() draw.Display {
	return &mockDisplay{}
}

func (d *mockDisplay) OpenFont(name string) (draw.Font, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opened = append(d.opened, name)
	return NewFont(fwidth, fheight), nil
}

func (d *mockDisplay) ScaleSize(n int) int { return n }

func (d *mockDisplay) Close() error {
	d.closed = true
	return nil
}

var _ = draw.Font((*mockFont)(nil))

// mockFont implements draw.Font and mocks as a fixed width font.
type mockFont struct {
	width, height int
}

// NewFont returns a draw.Font that mocks a fixed-width font.
func NewFont(width, height int) draw.Font {
	return &mockFont{
		width:  width,
		height: height,
	}
}

const MockFontName = "/lib/font/bit/lucsans/euro.8.font"

func (f *mockFont) Name() string             { return Plan9FontPath(MockFontName) }
func (f *mockFont) Height() int              { return f.height }
func (f *mockFont) BytesWidth(b []byte) int  { return f.width * utf8.RuneCount(b) }
func (f *mockFont) RunesWidth(r []rune) int  { return f.width * len(r) }
func (f *mockFont) StringWidth(s string) int { return f.width * utf8.RuneCountInString(s) }

func Plan9FontPath(name string) string {
	const prefix = "/lib/font/bit"
	if strings.HasPrefix(name, prefix) {
		root := os.Getenv("PLAN9")
		if root == "" {
			root = "/usr/local/plan9"
		}
		return filepath.Join(root, "/font/", name[len(prefix):])
	}
	return name
}

// NewFaces returns a face source where every codepoint is width wide and
// every line height high, whatever the font description or style.
func NewFaces(width, height int) shape.FaceSource {
	return &shape.DrawFaces{Default: NewFont(width, height)}
}

// NewShaper returns a greedy shaper over NewFaces(width, height).
func NewShaper(width, height int) *shape.Greedy {
	return shape.New(NewFaces(width, height))
}

// Para builds a paragraph of alternating text and style arguments, for
// example Para("plain ", rich.Normal, "bold", rich.Bold).
func Para(args ...any) *rich.Paragraph {
	var runs []rich.Run
	for i := 0; i < len(args); i += 2 {
		r := rich.Run{Text: args[i].(string)}
		if i+1 < len(args) {
			r.Style = args[i+1].(rich.Style)
		}
		runs = append(runs, r)
	}
	return rich.NewParagraph(runs...)
}
