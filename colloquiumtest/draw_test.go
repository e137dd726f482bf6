package colloquiumtest

import (
	"image/color"
	"testing"

	"github.com/rjkroege/colloquium/draw"
	"github.com/rjkroege/colloquium/rich"
)

func TestMockFontMeasuresCodepoints(t *testing.T) {
	d := NewDisplay()
	f, err := d.OpenFont("/lib/font/bit/lucsans/euro.8.font")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.StringWidth("héllo"), 5*fwidth; got != want {
		t.Errorf("StringWidth got %d want %d", got, want)
	}
	if got, want := f.Height(), fheight; got != want {
		t.Errorf("Height got %d want %d", got, want)
	}
	if err := d.Close(); err != nil {
		t.Error(err)
	}
}

func TestNewFaces(t *testing.T) {
	fs := NewFaces(7, 12)
	for _, st := range []rich.Style{rich.Normal, rich.Bold, rich.Italic} {
		f := fs.Face("Sans 40", st)
		if got := f.Width("abc"); got != 21 {
			t.Errorf("%v: Width got %v want 21", st, got)
		}
		if got := f.Height(); got != 12 {
			t.Errorf("%v: Height got %v want 12", st, got)
		}
	}
}

func TestPara(t *testing.T) {
	p := Para("a", rich.Normal, "b", rich.Bold, "c")
	if got, want := p.Text(), "abc"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got := len(p.Runs); got != 3 {
		t.Errorf("got %d runs want 3", got)
	}
}

func TestColourName(t *testing.T) {
	for _, tc := range []struct {
		c    color.Color
		want string
	}{
		{draw.RGBA(draw.Medblue), "Medblue"},
		{color.RGBA{0xff, 0, 0, 0xff}, "Red"},
		{color.White, "White"},
		{color.RGBA{0x12, 0x34, 0x56, 0x78}, "color(12345678)"},
	} {
		if got := ColourName(tc.c); got != tc.want {
			t.Errorf("ColourName(%v) = %q, want %q", tc.c, got, tc.want)
		}
	}
}
