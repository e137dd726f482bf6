// Command colloquium loads a storycode presentation and reports on it.
// It prints the narrative as text or markup, lists item heights as the
// wrap engine lays them out, summarises the slides and renders slide
// thumbnails as PNG files.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rjkroege/colloquium/draw"
	"github.com/rjkroege/colloquium/imagestore"
	"github.com/rjkroege/colloquium/internal/sync"
	"github.com/rjkroege/colloquium/layout"
	"github.com/rjkroege/colloquium/narrative"
	"github.com/rjkroege/colloquium/shape"
	"github.com/rjkroege/colloquium/slide"
	"github.com/rjkroege/colloquium/stylesheet"
	"github.com/rjkroege/colloquium/thumb"
)

var debug = flag.Bool("d", false, "set for verbose debugging")
var fontflag = flag.String("f", "", "Plan 9 font for measuring text (default: built-in Go fonts)")
var imagedirflag = flag.String("i", "", "Image directory (default: directory of the presentation)")
var modeflag = flag.String("m", "text", "Output: text, markup, layout or slides")
var outflag = flag.String("o", "", "Thumbnail output file")
var sheetflag = flag.String("s", "", "Stylesheet file (YAML)")
var thumbflag = flag.Int("t", -1, "Render a thumbnail of slide number")
var thumbheightflag = flag.Float64("H", 480, "Thumbnail height")
var widthflag = flag.Float64("w", 600, "Wrap width")

func main() {
	flag.Parse()
	if !*debug {
		log.SetOutput(io.Discard)
	}
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: colloquium [flags] presentation.sc")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	sheet, err := loadSheet(*sheetflag)
	if err != nil {
		fatalf("can't load stylesheet %q: %v", *sheetflag, err)
	}

	dir := *imagedirflag
	if dir == "" {
		dir = filepath.Dir(path)
	}
	images := imagestore.New(dir, 0)

	f, err := os.Open(path)
	if err != nil {
		fatalf("can't open %q: %v", path, err)
	}
	n, err := narrative.Load(f, sheet, images)
	f.Close()
	if err != nil {
		fatalf("can't load %q: %v", path, err)
	}

	shaper, err := newShaper(*fontflag)
	if err != nil {
		fatalf("can't open font %q: %v", *fontflag, err)
	}

	session := sync.NewSession()
	var e *layout.Engine
	session.WithLock(sync.DriverOwner, func() {
		e = layout.New(n,
			layout.WithShaper(shaper),
			layout.WithThumbnailer(thumb.New(images)),
			layout.WithWidth(*widthflag))
		e.Rewrap()
	})
	defer e.Close()

	if *thumbflag >= 0 {
		if err := writeThumbnail(n, sheet, images, *thumbflag, *thumbheightflag, *outflag); err != nil {
			fatalf("thumbnail: %v", err)
		}
		return
	}

	switch *modeflag {
	case "text":
		fmt.Print(n.Text())
	case "markup":
		if err := n.WriteMarkup(os.Stdout); err != nil {
			fatalf("writing markup: %v", err)
		}
	case "layout":
		printLayout(os.Stdout, e)
	case "slides":
		printSlides(os.Stdout, n)
	default:
		fatalf("unknown output %q", *modeflag)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "colloquium: "+format+"\n", args...)
	os.Exit(1)
}

func loadSheet(name string) (stylesheet.Sheet, error) {
	if name == "" {
		return stylesheet.Default(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := stylesheet.Load(f)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// newShaper measures with the Go fonts unless a Plan 9 font is named,
// in which case it needs a devdraw connection to open the font.
func newShaper(fontname string) (shape.Shaper, error) {
	if fontname == "" {
		return shape.New(shape.NewGoFaces(72)), nil
	}
	d, err := draw.Open(fontname, "colloquium", func(err error) {
		log.Printf("devdraw: %v", err)
	})
	if err != nil {
		return nil, err
	}
	font, err := d.OpenFont(fontname)
	if err != nil {
		return nil, err
	}
	return shape.New(&shape.DrawFaces{Default: font}), nil
}

func printLayout(w io.Writer, e *layout.Engine) {
	n := e.Narrative()
	for i, it := range n.Items() {
		fmt.Fprintf(w, "%4d %-20s top %8.1f height %6.1f\n", i, kind(it), e.ItemTop(i), e.ItemHeight(i))
	}
	fmt.Fprintf(w, "total %.1f\n", e.TotalHeight())
}

func kind(it narrative.Item) string {
	switch it.(type) {
	case *narrative.Slide:
		return "slide"
	case *narrative.EndOfPresentation:
		return "endofpresentation"
	}
	return strings.ToLower(strings.TrimPrefix(narrative.StyleName(it), "NARRATIVE."))
}

func printSlides(w io.Writer, n *narrative.Narrative) {
	for k, s := range n.Slides() {
		fmt.Fprintf(w, "slide %d: item %d, %d frames", k, n.ItemIndex(s), s.NumItems())
		if title := slideTitle(s); title != "" {
			fmt.Fprintf(w, ", %q", title)
		}
		fmt.Fprintln(w)
	}
	if eop := n.CountUntilEOP(); eop < n.Len() {
		fmt.Fprintf(w, "end of presentation at item %d\n", eop)
	}
	for _, f := range n.ImageFiles() {
		fmt.Fprintf(w, "image %s\n", f)
	}
}

func slideTitle(s *slide.Slide) string {
	for _, it := range s.Items() {
		if t, ok := it.(*slide.Title); ok {
			return t.PlainText()
		}
	}
	return ""
}

func writeThumbnail(n *narrative.Narrative, sheet stylesheet.Sheet, images *imagestore.Store, k int, height float64, out string) error {
	s, ok := n.SlideByNumber(k)
	if !ok {
		return fmt.Errorf("no slide %d of %d", k, n.NumSlides())
	}
	img := thumb.New(images).Thumbnail(s, sheet, height)
	if out == "" {
		out = fmt.Sprintf("slide%d.png", k)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
