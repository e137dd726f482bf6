// Package thumb renders slides into images. The narrative shows slides
// as thumbnails drawn by a Renderer.
package thumb

import (
	"image"
	"math"

	"github.com/rjkroege/colloquium/draw"
	"github.com/rjkroege/colloquium/imagestore"
	"github.com/rjkroege/colloquium/layout"
	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/shape"
	"github.com/rjkroege/colloquium/slide"
	"github.com/rjkroege/colloquium/stylesheet"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Placeholder fills image frames whose file cannot be loaded.
var Placeholder = draw.Color(0xC0C0C0FF)

// Renderer draws slides with the Go fonts. Images are taken from a
// store; without one every image frame shows the placeholder.
// A Renderer must not be used concurrently.
type Renderer struct {
	images *imagestore.Store
	faces  map[float64]*shape.GoFaces // by scale
}

var _ layout.Thumbnailer = (*Renderer)(nil)

// New returns a renderer loading images from images, which may be nil.
func New(images *imagestore.Store) *Renderer {
	return &Renderer{
		images: images,
		faces:  make(map[float64]*shape.GoFaces),
	}
}

// facesAt returns Go faces whose points measure scale pixels.
func (r *Renderer) facesAt(scale float64) *shape.GoFaces {
	f, ok := r.faces[scale]
	if !ok {
		f = shape.NewGoFaces(72 * scale)
		r.faces[scale] = f
	}
	return f
}

// Thumbnail renders s to a new image height pixels high.
func (r *Renderer) Thumbnail(s *slide.Slide, sheet stylesheet.Sheet, height float64) image.Image {
	w, h := s.Size(sheet)
	if w <= 0 || h <= 0 || height <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	scale := height / h
	dst := image.NewRGBA(image.Rect(0, 0, int(math.Round(w*scale)), int(math.Round(height))))
	r.Render(dst, s, sheet, scale)
	return dst
}

// Render draws s into dst with one slide unit spanning scale pixels.
// Frames are painted in order so later frames cover earlier ones.
func (r *Renderer) Render(dst *image.RGBA, s *slide.Slide, sheet stylesheet.Sheet, scale float64) {
	if st, ok := sheet.Lookup(stylesheet.Slide); ok {
		fill(dst, dst.Bounds(), st.Bg)
	}
	for i, it := range s.Items() {
		rect, ok := s.Geom(i, sheet)
		if !ok {
			continue
		}
		pr := pixels(rect, scale).Add(dst.Bounds().Min)
		clip, ok := dst.SubImage(pr).(*image.RGBA)
		if !ok || clip.Bounds().Empty() {
			continue
		}

		if img, ok := it.(*slide.Image); ok {
			r.drawImage(clip, img.Filename)
			continue
		}
		st, ok := sheet.Lookup(slide.StyleName(it))
		if !ok {
			continue
		}
		fill(clip, clip.Bounds(), st.Bg)
		if t, ok := slide.TextOf(it); ok {
			r.drawText(clip, t, textBox{
				rect:  rect,
				pad:   s.Padding(i, sheet),
				space: s.ParaSpace(i, sheet),
				align: s.Alignment(i, sheet),
				font:  fontOf(st),
				fg:    st.Fg,
			}, scale, dst.Bounds().Min)
		}
	}
}

func fontOf(st *stylesheet.Style) string {
	if st.Font == "" {
		return stylesheet.DefaultFont
	}
	return st.Font
}

// pixels converts a rectangle in slide units to pixels.
func pixels(r stylesheet.Rect, scale float64) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X*scale)),
		int(math.Round(r.Y*scale)),
		int(math.Round((r.X+r.W)*scale)),
		int(math.Round((r.Y+r.H)*scale)),
	)
}

// fill paints bg over r, one band per row or column for gradients.
func fill(dst xdraw.Image, r image.Rectangle, bg stylesheet.Background) {
	r = r.Intersect(dst.Bounds())
	if bg.Kind == stylesheet.NoBackground || r.Empty() {
		return
	}
	band := func(b image.Rectangle, c draw.Color) {
		xdraw.Draw(dst, b, image.NewUniform(draw.RGBA(c)), image.Point{}, xdraw.Over)
	}
	switch bg.Kind {
	case stylesheet.GradientVertical:
		for y := r.Min.Y; y < r.Max.Y; y++ {
			band(image.Rect(r.Min.X, y, r.Max.X, y+1), bg.At(0, frac(y-r.Min.Y, r.Dy())))
		}
	case stylesheet.GradientHorizontal:
		for x := r.Min.X; x < r.Max.X; x++ {
			band(image.Rect(x, r.Min.Y, x+1, r.Max.Y), bg.At(frac(x-r.Min.X, r.Dx()), 0))
		}
	default:
		band(r, bg.At(0, 0))
	}
}

func frac(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// drawImage scales the named image into dst keeping its aspect ratio
// and centring it.
func (r *Renderer) drawImage(dst *image.RGBA, filename string) {
	b := dst.Bounds()
	if r.images == nil {
		fill(dst, b, stylesheet.Background{Kind: stylesheet.Solid, Colors: [2]draw.Color{Placeholder}})
		return
	}
	src, err := r.images.Lookup(filename)
	if err != nil {
		fill(dst, b, stylesheet.Background{Kind: stylesheet.Solid, Colors: [2]draw.Color{Placeholder}})
		return
	}
	sb := src.Bounds()
	if sb.Empty() {
		return
	}
	k := math.Min(float64(b.Dx())/float64(sb.Dx()), float64(b.Dy())/float64(sb.Dy()))
	w, h := int(math.Round(float64(sb.Dx())*k)), int(math.Round(float64(sb.Dy())*k))
	x, y := b.Min.X+(b.Dx()-w)/2, b.Min.Y+(b.Dy()-h)/2
	xdraw.ApproxBiLinear.Scale(dst, image.Rect(x, y, x+w, y+h), src, sb, xdraw.Over, nil)
}

type textBox struct {
	rect  stylesheet.Rect
	pad   [4]float64
	space [4]float64
	align rich.Alignment
	font  string
	fg    draw.Color
}

// drawText sets the paragraphs of t inside the padded frame. origin is
// the pixel position of the slide's top left corner.
func (r *Renderer) drawText(dst *image.RGBA, t *slide.Text, tb textBox, scale float64, origin image.Point) {
	faces := r.facesAt(scale)
	sh := shape.New(faces)
	src := image.NewUniform(draw.RGBA(tb.fg))

	x0 := float64(origin.X) + (tb.rect.X+tb.pad[stylesheet.Left])*scale
	y := float64(origin.Y) + (tb.rect.Y+tb.pad[stylesheet.Top])*scale
	width := (tb.rect.W - tb.pad[stylesheet.Left] - tb.pad[stylesheet.Right]) * scale
	bottom := dst.Bounds().Max.Y

	for _, p := range t.Paras {
		y += tb.space[stylesheet.Top] * scale
		if int(y) >= bottom {
			return
		}
		l := sh.Shape(p.Runs, tb.font, width, p.Align.Resolve(tb.align))
		text := l.Text()
		for _, ln := range l.Lines() {
			base := y + ln.Y + ln.Ascent
			for _, b := range ln.Boxes {
				x := x0 + ln.X + b.X
				d := font.Drawer{
					Dst:  dst,
					Src:  src,
					Face: faces.GoFace(tb.font, b.Style).FontFace(),
					Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(base)},
				}
				d.DrawString(text[b.Start:b.End])
				if b.Style == rich.Underline {
					u := int(math.Round(base)) + 1
					xdraw.Draw(dst, image.Rect(int(x), u, int(math.Ceil(x+b.W)), u+max(1, int(scale))), src, image.Point{}, xdraw.Over)
				}
			}
		}
		_, h := l.Size()
		y += h + tb.space[stylesheet.Bottom]*scale
	}
}

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }
