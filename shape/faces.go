package shape

import (
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/rjkroege/colloquium/draw"
	"github.com/rjkroege/colloquium/rich"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Description is a parsed font description such as "Sans Bold 14".
type Description struct {
	Family       string
	Bold, Italic bool
	Size         float64
}

// DefaultSize is used when a description names no size.
const DefaultSize = 14

// ParseDescription parses a font description: a family name, optional
// Bold and Italic words and an optional trailing point size.
func ParseDescription(s string) Description {
	d := Description{Size: DefaultSize}
	f := strings.Fields(s)
	if n := len(f); n > 0 {
		if v, err := strconv.ParseFloat(f[n-1], 64); err == nil && v > 0 {
			d.Size = v
			f = f[:n-1]
		}
	}
	var fam []string
	for _, w := range f {
		switch strings.ToLower(w) {
		case "bold":
			d.Bold = true
		case "italic", "oblique":
			d.Italic = true
		default:
			fam = append(fam, w)
		}
	}
	d.Family = strings.Join(fam, " ")
	return d
}

// Mono reports whether d asks for a fixed-width family.
func (d Description) Mono() bool {
	switch strings.ToLower(d.Family) {
	case "mono", "monospace", "go mono", "courier":
		return true
	}
	return false
}

// GoFaces resolves descriptions to the Go font family rendered with
// golang.org/x/image/font/opentype. Faces are cached.
type GoFaces struct {
	DPI float64

	mu    sync.Mutex
	fonts map[string]*opentype.Font
	faces map[goKey]*GoFace
}

type goKey struct {
	ttf  string
	size float64
}

var _ FaceSource = (*GoFaces)(nil)

// NewGoFaces returns a face source at dpi. A dpi of 72 makes a point a
// layout unit.
func NewGoFaces(dpi float64) *GoFaces {
	return &GoFaces{
		DPI:   dpi,
		fonts: make(map[string]*opentype.Font),
		faces: make(map[goKey]*GoFace),
	}
}

var goTTF = map[string][]byte{
	"regular":        goregular.TTF,
	"bold":           gobold.TTF,
	"italic":         goitalic.TTF,
	"bolditalic":     gobolditalic.TTF,
	"mono":           gomono.TTF,
	"monobold":       gomonobold.TTF,
	"monoitalic":     gomonoitalic.TTF,
	"monobolditalic": gomonobolditalic.TTF,
}

func ttfName(d Description, style rich.Style) string {
	bold := d.Bold || style == rich.Bold
	italic := d.Italic || style == rich.Italic
	name := ""
	if d.Mono() {
		name = "mono"
	}
	switch {
	case bold && italic:
		name += "bolditalic"
	case bold:
		name += "bold"
	case italic:
		name += "italic"
	case name == "":
		name = "regular"
	}
	return name
}

// Face returns the face for desc in style. Underline is drawn by the
// renderer and measures as the plain face.
func (g *GoFaces) Face(desc string, style rich.Style) Face {
	return g.GoFace(desc, style)
}

// GoFace is Face with the concrete type, for renderers that need the
// underlying font.Face.
func (g *GoFaces) GoFace(desc string, style rich.Style) *GoFace {
	d := ParseDescription(desc)
	key := goKey{ttf: ttfName(d, style), size: d.Size}

	g.mu.Lock()
	defer g.mu.Unlock()
	if f, ok := g.faces[key]; ok {
		return f
	}
	f := &GoFace{face: g.open(key)}
	g.faces[key] = f
	return f
}

func (g *GoFaces) open(key goKey) font.Face {
	otf, ok := g.fonts[key.ttf]
	if !ok {
		var err error
		otf, err = opentype.Parse(goTTF[key.ttf])
		if err != nil {
			log.Printf("shape: parsing %s: %v", key.ttf, err)
			return basicfont.Face7x13
		}
		g.fonts[key.ttf] = otf
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     g.DPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		log.Printf("shape: face %s %v: %v", key.ttf, key.size, err)
		return basicfont.Face7x13
	}
	return face
}

// GoFace measures with a golang.org/x/image font.Face.
type GoFace struct {
	face font.Face
	mu   sync.Mutex
}

func toFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func (f *GoFace) Height() float64 { return toFloat(f.face.Metrics().Height) }
func (f *GoFace) Ascent() float64 { return toFloat(f.face.Metrics().Ascent) }

// Width measures s. opentype faces are not safe for concurrent use.
func (f *GoFace) Width(s string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return toFloat(font.MeasureString(f.face, s))
}

// FontFace returns the underlying face. Callers must not use it
// concurrently with Width.
func (f *GoFace) FontFace() font.Face { return f.face }

// DrawFaces measures with plan9 fonts opened through a draw.Display.
// Plan9 fonts carry no size or weight so descriptions only select a
// font by run style.
type DrawFaces struct {
	Default draw.Font
	Styled  map[rich.Style]draw.Font
}

var _ FaceSource = (*DrawFaces)(nil)

func (d *DrawFaces) Face(desc string, style rich.Style) Face {
	if f, ok := d.Styled[style]; ok && f != nil {
		return drawFace{f}
	}
	return drawFace{d.Default}
}

type drawFace struct {
	f draw.Font
}

func (d drawFace) Height() float64        { return float64(d.f.Height()) }
func (d drawFace) Width(s string) float64 { return float64(d.f.StringWidth(s)) }
