// Package stylesheet is the read-only style lookup consulted by the
// document core. Styles are addressed by dotted paths such as
// "SLIDE.TEXT".
package stylesheet

import (
	"sort"

	"github.com/rjkroege/colloquium/draw"
	"github.com/rjkroege/colloquium/rich"
)

// BackgroundKind selects how a background is painted.
type BackgroundKind int

const (
	NoBackground BackgroundKind = iota
	Solid
	GradientVertical
	GradientHorizontal
)

// Background describes a frame or page fill. Solid uses Colors[0];
// gradients run from Colors[0] to Colors[1].
type Background struct {
	Kind   BackgroundKind
	Colors [2]draw.Color
}

// At returns the background colour at fraction (fx, fy) of the filled
// area.
func (b Background) At(fx, fy float64) draw.Color {
	switch b.Kind {
	case GradientVertical:
		return draw.Mix(b.Colors[0], b.Colors[1], fy)
	case GradientHorizontal:
		return draw.Mix(b.Colors[0], b.Colors[1], fx)
	}
	return b.Colors[0]
}

// Style is one stylesheet entry.
type Style struct {
	Geometry  Geometry
	Font      string
	Fg        draw.Color
	Bg        Background
	Padding   [4]Length
	ParaSpace [4]Length
	Align     rich.Alignment
}

// Sheet is the read-only view of a stylesheet.
type Sheet interface {
	// Lookup returns the style at path. The returned style must not be
	// modified.
	Lookup(path string) (*Style, bool)

	// SlideSize is the default logical slide size.
	SlideSize() (w, h float64)
}

// Style paths used by the core.
const (
	Narrative          = "NARRATIVE"
	NarrativeText      = "NARRATIVE.TEXT"
	NarrativeBP        = "NARRATIVE.BP"
	NarrativePrestitle = "NARRATIVE.PRESTITLE"
	Slide              = "SLIDE"
	SlideText          = "SLIDE.TEXT"
	SlideTitle         = "SLIDE.TITLE"
	SlidePrestitle     = "SLIDE.PRESTITLE"
	SlideFooter        = "SLIDE.FOOTER"
)

// DefaultFont is used when a style names no font.
const DefaultFont = "Sans 14"

// Map is an in-memory Sheet. Mutation through Set belongs to whoever
// parses the stylesheet; the core only calls Lookup.
type Map struct {
	styles         map[string]*Style
	slideW, slideH float64
}

var _ Sheet = (*Map)(nil)

// NewMap returns an empty sheet with a 1024x768 slide size.
func NewMap() *Map {
	return &Map{
		styles: make(map[string]*Style),
		slideW: 1024,
		slideH: 768,
	}
}

func (m *Map) Lookup(path string) (*Style, bool) {
	s, ok := m.styles[path]
	return s, ok
}

func (m *Map) SlideSize() (float64, float64) { return m.slideW, m.slideH }

// Set replaces the style at path.
func (m *Map) Set(path string, s Style) {
	m.styles[path] = &s
}

// SetSlideSize sets the default slide size.
func (m *Map) SetSlideSize(w, h float64) {
	m.slideW, m.slideH = w, h
}

// Paths returns the defined style paths in sorted order.
func (m *Map) Paths() []string {
	paths := make([]string, 0, len(m.styles))
	for p := range m.styles {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Default returns the built-in stylesheet.
func Default() *Map {
	m := NewMap()
	white := Background{Kind: Solid, Colors: [2]draw.Color{draw.White, draw.White}}

	m.Set(Narrative, Style{
		Padding: Uniform(Units(10)),
		Bg:      white,
	})
	m.Set(NarrativeText, Style{
		Font:      "Sans 16",
		Fg:        draw.Black,
		Padding:   [4]Length{Units(10), Units(10), Units(0), Units(0)},
		ParaSpace: [4]Length{Units(0), Units(0), Units(10), Units(10)},
		Align:     rich.Left,
	})
	m.Set(NarrativeBP, Style{
		Font:      "Sans 16",
		Fg:        draw.Black,
		Padding:   [4]Length{Units(30), Units(10), Units(0), Units(0)},
		ParaSpace: [4]Length{Units(0), Units(0), Units(5), Units(5)},
		Align:     rich.Left,
	})
	m.Set(NarrativePrestitle, Style{
		Font:      "Sans Bold 22",
		Fg:        draw.Black,
		Padding:   [4]Length{Units(10), Units(10), Units(0), Units(0)},
		ParaSpace: [4]Length{Units(0), Units(0), Units(20), Units(20)},
		Align:     rich.Center,
	})
	m.Set(Slide, Style{
		Geometry: Geometry{W: Units(1024), H: Units(768)},
		Bg:       white,
	})
	m.Set(SlideText, Style{
		Font:      "Sans 24",
		Fg:        draw.Black,
		Padding:   Uniform(Units(10)),
		ParaSpace: [4]Length{Units(0), Units(0), Units(5), Units(5)},
		Align:     rich.Left,
	})
	m.Set(SlideTitle, Style{
		Geometry: Geometry{X: Units(0), Y: Units(0), W: Fraction(1), H: Units(140)},
		Font:     "Sans Bold 40",
		Fg:       draw.Black,
		Padding:  Uniform(Units(20)),
		Align:    rich.Center,
	})
	m.Set(SlidePrestitle, Style{
		Geometry: Geometry{X: Units(0), Y: Fraction(0.3), W: Fraction(1), H: Units(240)},
		Font:     "Sans Bold 64",
		Fg:       draw.Black,
		Padding:  Uniform(Units(20)),
		Align:    rich.Center,
	})
	m.Set(SlideFooter, Style{
		Geometry: Geometry{X: Units(0), Y: Fraction(0.95), W: Fraction(1), H: Fraction(0.05)},
		Font:     "Sans 12",
		Fg:       draw.Black,
		Padding:  Uniform(Units(5)),
		Align:    rich.Right,
	})
	return m
}
