package stylesheet

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rjkroege/colloquium/draw"
	"github.com/rjkroege/colloquium/rich"
)

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		src  string
		want Geometry
	}{
		{"0.5fx0.5f+0.1f+0.1f", Geometry{X: Fraction(0.1), Y: Fraction(0.1), W: Fraction(0.5), H: Fraction(0.5)}},
		{"300ux1f+10u+-5u", Geometry{X: Units(10), Y: Units(-5), W: Units(300), H: Fraction(1)}},
		{"100x50+0+0", Geometry{X: Units(0), Y: Units(0), W: Units(100), H: Units(50)}},
	}
	for _, tc := range tests {
		got, err := ParseGeometry(tc.src)
		if err != nil {
			t.Fatalf("ParseGeometry(%q): %v", tc.src, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseGeometry(%q) mismatch (-want +got):\n%s", tc.src, diff)
		}
		again, err := ParseGeometry(got.String())
		if err != nil || again != got {
			t.Errorf("String() %q does not parse back: %v %v", got.String(), again, err)
		}
	}
	for _, bad := range []string{"", "1x1", "1x1+2", "axb+c+d", "1q x1+0+0"} {
		if _, err := ParseGeometry(bad); !errors.Is(err, ErrBadLength) {
			t.Errorf("ParseGeometry(%q) error = %v, want ErrBadLength", bad, err)
		}
	}
}

func TestResolveFractional(t *testing.T) {
	g := Geometry{X: Fraction(0.1), Y: Fraction(0.1), W: Fraction(0.5), H: Fraction(0.5)}
	got := g.Resolve(1000, 800)
	want := Rect{X: 100, Y: 80, W: 500, H: 400}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestWithRectKeepsUnits(t *testing.T) {
	g := Geometry{X: Fraction(0.1), Y: Units(20), W: Fraction(0.5), H: Units(100)}
	got := g.WithRect(Rect{X: 200, Y: 40, W: 250, H: 50}, 1000, 800)
	want := Geometry{X: Fraction(0.2), Y: Units(40), W: Fraction(0.25), H: Units(50)}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("WithRect mismatch (-want +got):\n%s", diff)
	}
}

func TestRectInsetContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 50}.Inset([4]float64{5, 5, 10, 10})
	if want := (Rect{X: 15, Y: 20, W: 90, H: 30}); r != want {
		t.Errorf("Inset = %v, want %v", r, want)
	}
	if !r.Contains(15, 20) || r.Contains(105, 20) {
		t.Errorf("Contains wrong at the edges of %v", r)
	}
}

func TestDefault(t *testing.T) {
	m := Default()
	for _, p := range []string{NarrativeText, NarrativeBP, NarrativePrestitle, SlideText, SlideTitle, SlidePrestitle, SlideFooter} {
		if _, ok := m.Lookup(p); !ok {
			t.Errorf("default sheet lacks %s", p)
		}
	}
	if _, ok := m.Lookup("NO.SUCH"); ok {
		t.Errorf("lookup of a missing path succeeded")
	}
	if w, h := m.SlideSize(); w != 1024 || h != 768 {
		t.Errorf("SlideSize = %vx%v, want 1024x768", w, h)
	}
}

const sampleSheet = `
slidesize: 1000x800
NARRATIVE:
  padding: 20u
  TEXT:
    font: Serif 12
    fg: "#102030"
    paraspace: [0, 0, 4u, 0.01f]
    alignment: right
SLIDE:
  bg:
    gradient: vertical
    colors: ["#000000", "#ffffff"]
  TEXT:
    geometry: 0.5fx0.5f+0.1f+0.1f
`

func TestLoad(t *testing.T) {
	m, err := Load(strings.NewReader(sampleSheet))
	if err != nil {
		t.Fatal(err)
	}
	if w, h := m.SlideSize(); w != 1000 || h != 800 {
		t.Errorf("SlideSize = %vx%v", w, h)
	}
	st, ok := m.Lookup(NarrativeText)
	if !ok {
		t.Fatal("NARRATIVE.TEXT missing")
	}
	if st.Font != "Serif 12" || st.Fg != draw.Color(0x102030FF) || st.Align != rich.Right {
		t.Errorf("NARRATIVE.TEXT = %+v", st)
	}
	if want := [4]Length{Units(0), Units(0), Units(4), Fraction(0.01)}; st.ParaSpace != want {
		t.Errorf("paraspace = %v, want %v", st.ParaSpace, want)
	}
	// Fields not mentioned keep their defaults.
	if st.Padding[Left] != Units(10) {
		t.Errorf("padding overwritten: %v", st.Padding)
	}
	n, _ := m.Lookup(Narrative)
	if n.Padding != Uniform(Units(20)) {
		t.Errorf("NARRATIVE padding = %v", n.Padding)
	}
	s, _ := m.Lookup(Slide)
	if s.Bg.Kind != GradientVertical || s.Bg.At(0, 1) != draw.Color(0xFFFFFFFF) {
		t.Errorf("SLIDE bg = %+v", s.Bg)
	}
	txt, _ := m.Lookup(SlideText)
	if txt.Geometry.W != Fraction(0.5) {
		t.Errorf("SLIDE.TEXT geometry = %v", txt.Geometry)
	}
}

func TestLoadJSON(t *testing.T) {
	m, err := Load(strings.NewReader(`{"SLIDE": {"FOOTER": {"font": "Mono 8"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	if st, _ := m.Lookup(SlideFooter); st.Font != "Mono 8" {
		t.Errorf("footer font = %q", st.Font)
	}
}

func TestLoadErrors(t *testing.T) {
	for _, src := range []string{
		"NARRATIVE: 3",
		"NARRATIVE:\n  fg: blue",
		"NARRATIVE:\n  padding: [1, 2]",
		"slidesize: big",
		"SLIDE:\n  alignment: sideways",
	} {
		if _, err := Load(strings.NewReader(src)); err == nil {
			t.Errorf("Load(%q) succeeded", src)
		}
	}
}

func TestLoadEmpty(t *testing.T) {
	m, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Lookup(NarrativeText); !ok {
		t.Errorf("empty stylesheet lost the defaults")
	}
}
