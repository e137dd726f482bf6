package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/colloquium/colloquiumtest"
	"github.com/rjkroege/colloquium/layout"
	"github.com/rjkroege/colloquium/narrative"
	"github.com/rjkroege/colloquium/stylesheet"
)

const talk = `hello
\slide{\slidetitle{Intro}
\image[0.5fx0.5f+0+0]{pic.png}}
\endofpresentation
\bp{x}
`

func load(t *testing.T) *narrative.Narrative {
	t.Helper()
	n, err := narrative.Load(strings.NewReader(talk), nil, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return n
}

func TestPrintLayout(t *testing.T) {
	e := layout.New(load(t), layout.WithShaper(colloquiumtest.NewShaper(10, 10)), layout.WithWidth(200))
	defer e.Close()
	e.Rewrap()

	var b strings.Builder
	printLayout(&b, e)
	want := []string{
		"   0 text                 top     10.0 height   30.0",
		"   1 slide                top     40.0 height  320.0",
		"   2 endofpresentation    top    360.0 height   20.0",
		"   3 bp                   top    380.0 height   20.0",
		"total 410.0",
		"",
	}
	if diff := cmp.Diff(want, strings.Split(b.String(), "\n")); diff != "" {
		t.Errorf("printLayout mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintSlides(t *testing.T) {
	var b strings.Builder
	printSlides(&b, load(t))
	want := []string{
		`slide 0: item 1, 2 frames, "Intro"`,
		"end of presentation at item 2",
		"image pic.png",
		"",
	}
	if diff := cmp.Diff(want, strings.Split(b.String(), "\n")); diff != "" {
		t.Errorf("printSlides mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSheet(t *testing.T) {
	s, err := loadSheet("")
	if err != nil {
		t.Fatalf("loadSheet default: %v", err)
	}
	if w, h := s.SlideSize(); w != 1024 || h != 768 {
		t.Errorf("default slide size %v x %v", w, h)
	}

	if _, err := loadSheet(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("loadSheet of a missing file succeeded")
	}
}

func TestWriteThumbnail(t *testing.T) {
	n := load(t)
	out := filepath.Join(t.TempDir(), "s.png")
	if err := writeThumbnail(n, stylesheet.Default(), nil, 0, 96, out); err != nil {
		t.Fatalf("writeThumbnail: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding thumbnail: %v", err)
	}
	if got, want := img.Bounds().Size(), image.Pt(128, 96); got != want {
		t.Errorf("thumbnail size %v, want %v", got, want)
	}

	if err := writeThumbnail(n, stylesheet.Default(), nil, 1, 96, out); err == nil {
		t.Errorf("writeThumbnail of a missing slide succeeded")
	}
}
