package shape_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/colloquium/colloquiumtest"
	"github.com/rjkroege/colloquium/rich"
	"github.com/rjkroege/colloquium/shape"
	"github.com/rjkroege/colloquium/stylesheet"
)

type span struct {
	Start, End int
	X, Y, W, H float64
}

func spans(l shape.Layout) []span {
	var out []span
	for _, ln := range l.Lines() {
		out = append(out, span{ln.Start, ln.End, ln.X, ln.Y, ln.W, ln.H})
	}
	return out
}

func TestShapeLines(t *testing.T) {
	sh := colloquiumtest.NewShaper(7, 10)
	for _, tc := range []struct {
		name  string
		runs  rich.Runs
		width float64
		align rich.Alignment
		want  []span
	}{
		{
			name:  "empty",
			runs:  nil,
			width: 100,
			want:  []span{{0, 0, 0, 0, 0, 10}},
		},
		{
			name:  "fits",
			runs:  rich.Runs{{Text: "hello"}},
			width: 100,
			want:  []span{{0, 5, 0, 0, 35, 10}},
		},
		{
			name:  "wraps at space",
			runs:  rich.Runs{{Text: "hello world foo"}},
			width: 70,
			want: []span{
				{0, 6, 0, 0, 35, 10},
				{6, 15, 0, 10, 63, 10},
			},
		},
		{
			name:  "break inside run boundary",
			runs:  rich.Runs{{Text: "hello wo"}, {Text: "rld foo", Style: rich.Bold}},
			width: 70,
			want: []span{
				{0, 6, 0, 0, 35, 10},
				{6, 15, 0, 10, 63, 10},
			},
		},
		{
			name:  "mandatory break",
			runs:  rich.Runs{{Text: "a\nb"}},
			width: 100,
			want: []span{
				{0, 2, 0, 0, 7, 10},
				{2, 3, 0, 10, 7, 10},
			},
		},
		{
			name:  "long word overflows",
			runs:  rich.Runs{{Text: "abcdefghijkl"}},
			width: 35,
			want:  []span{{0, 12, 0, 0, 84, 10}},
		},
		{
			name:  "no wrapping",
			runs:  rich.Runs{{Text: "hello world"}},
			width: 0,
			want:  []span{{0, 11, 0, 0, 77, 10}},
		},
		{
			name:  "centred",
			runs:  rich.Runs{{Text: "ab"}},
			width: 100,
			align: rich.Center,
			want:  []span{{0, 2, 43, 0, 14, 10}},
		},
		{
			name:  "right",
			runs:  rich.Runs{{Text: "ab "}},
			width: 100,
			align: rich.Right,
			want:  []span{{0, 3, 86, 0, 14, 10}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := sh.Shape(tc.runs, "Sans 14", tc.width, tc.align)
			if diff := cmp.Diff(tc.want, spans(l)); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSize(t *testing.T) {
	sh := colloquiumtest.NewShaper(7, 10)
	l := sh.Shape(rich.Runs{{Text: "hello world foo"}}, "", 70, rich.Left)
	w, h := l.Size()
	if w != 63 || h != 20 {
		t.Errorf("Size got (%v, %v) want (63, 20)", w, h)
	}
	if got := l.Text(); got != "hello world foo" {
		t.Errorf("Text got %q", got)
	}
}

type hit struct {
	Off   int
	Trail bool
}

func TestIndexAt(t *testing.T) {
	sh := colloquiumtest.NewShaper(10, 10)
	abc := sh.Shape(rich.Runs{{Text: "abc"}}, "", 100, rich.Left)
	combining := sh.Shape(rich.Runs{{Text: "e\u0301x"}}, "", 100, rich.Left)
	wrapped := sh.Shape(rich.Runs{{Text: "ab cd"}}, "", 30, rich.Left)
	empty := sh.Shape(nil, "", 100, rich.Left)

	for _, tc := range []struct {
		name string
		l    shape.Layout
		x, y float64
		want hit
	}{
		{"leading half", abc, 4, 5, hit{0, false}},
		{"trailing half", abc, 6, 5, hit{0, true}},
		{"last grapheme leading", abc, 24, 5, hit{2, false}},
		{"past end", abc, 100, 5, hit{2, true}},
		{"left of start", abc, -5, 5, hit{0, false}},
		{"below", abc, 4, 50, hit{0, false}},
		{"cluster trailing lands on last codepoint", combining, 15, 5, hit{1, true}},
		{"cluster leading", combining, 5, 5, hit{0, false}},
		{"after cluster", combining, 21, 5, hit{3, false}},
		{"end of wrapped line", wrapped, 35, 5, hit{2, false}},
		{"second line", wrapped, 14, 15, hit{4, false}},
		{"empty", empty, 40, 5, hit{0, false}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			off, trail := tc.l.IndexAt(tc.x, tc.y)
			if diff := cmp.Diff(tc.want, hit{off, trail}); diff != "" {
				t.Errorf("IndexAt(%v, %v) mismatch (-want +got):\n%s", tc.x, tc.y, diff)
			}
		})
	}
}

func TestMoveVisually(t *testing.T) {
	sh := colloquiumtest.NewShaper(10, 10)
	abc := sh.Shape(rich.Runs{{Text: "abc"}}, "", 100, rich.Left)
	combining := sh.Shape(rich.Runs{{Text: "xe\u0301"}}, "", 100, rich.Left)

	for _, tc := range []struct {
		name string
		l    shape.Layout
		from hit
		dir  int
		want hit
	}{
		{"forward", abc, hit{0, false}, 1, hit{1, false}},
		{"forward onto last", abc, hit{1, false}, 1, hit{2, false}},
		{"forward to end", abc, hit{2, false}, 1, hit{2, true}},
		{"forward off end", abc, hit{2, true}, 1, hit{shape.OffEnd, false}},
		{"back off start", abc, hit{0, false}, -1, hit{-1, false}},
		{"back from end", abc, hit{2, true}, -1, hit{2, false}},
		{"back from trailing", abc, hit{0, true}, -1, hit{0, false}},
		{"forward over cluster", combining, hit{1, false}, 1, hit{2, true}},
		{"back over cluster", combining, hit{2, true}, -1, hit{1, false}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			off, trail := tc.l.MoveVisually(tc.from.Off, tc.from.Trail, tc.dir)
			if diff := cmp.Diff(tc.want, hit{off, trail}); diff != "" {
				t.Errorf("MoveVisually mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCursorRect(t *testing.T) {
	sh := colloquiumtest.NewShaper(10, 10)
	l := sh.Shape(rich.Runs{{Text: "ab cd"}}, "", 30, rich.Left)
	for _, tc := range []struct {
		off  int
		want stylesheet.Rect
	}{
		{0, stylesheet.Rect{X: 0, Y: 0, H: 10}},
		{2, stylesheet.Rect{X: 20, Y: 0, H: 10}},
		{3, stylesheet.Rect{X: 0, Y: 10, H: 10}},
		{5, stylesheet.Rect{X: 20, Y: 10, H: 10}},
	} {
		if diff := cmp.Diff(tc.want, l.CursorRect(tc.off)); diff != "" {
			t.Errorf("CursorRect(%d) mismatch (-want +got):\n%s", tc.off, diff)
		}
	}
}

func TestHighlight(t *testing.T) {
	sh := colloquiumtest.NewShaper(7, 10)
	l := sh.Shape(rich.Runs{{Text: "hello world foo"}}, "", 70, rich.Left)
	if _, _, ok := l.Highlight(); ok {
		t.Fatal("fresh layout has a highlight")
	}
	l.SetHighlight(9, 3)
	s, e, ok := l.Highlight()
	if !ok || s != 3 || e != 9 {
		t.Errorf("Highlight got (%d, %d, %v)", s, e, ok)
	}
	want := []stylesheet.Rect{
		{X: 21, Y: 0, W: 21, H: 10},
		{X: 0, Y: 10, W: 21, H: 10},
	}
	if diff := cmp.Diff(want, l.HighlightRects()); diff != "" {
		t.Errorf("HighlightRects mismatch (-want +got):\n%s", diff)
	}
	l.SetHighlight(4, 4)
	if got := l.HighlightRects(); got != nil {
		t.Errorf("cleared highlight got %v", got)
	}
}

func TestParseDescription(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want shape.Description
	}{
		{"Sans 14", shape.Description{Family: "Sans", Size: 14}},
		{"Sans Bold 20", shape.Description{Family: "Sans", Bold: true, Size: 20}},
		{"Go Mono Italic", shape.Description{Family: "Go Mono", Italic: true, Size: shape.DefaultSize}},
		{"", shape.Description{Size: shape.DefaultSize}},
	} {
		if diff := cmp.Diff(tc.want, shape.ParseDescription(tc.in)); diff != "" {
			t.Errorf("ParseDescription(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestGoFaces(t *testing.T) {
	gf := shape.NewGoFaces(72)
	f := gf.Face("Sans 20", rich.Normal)
	if f.Height() <= 0 {
		t.Errorf("Height got %v", f.Height())
	}
	if n, w := f.Width("iiii"), f.Width("MMMM"); !(n < w) {
		t.Errorf("proportional widths got i=%v M=%v", n, w)
	}
	if big, small := gf.Face("Sans 40", rich.Normal).Width("x"), f.Width("x"); !(big > small) {
		t.Errorf("size ignored: 40pt %v 20pt %v", big, small)
	}
	if gf.GoFace("Sans 20", rich.Normal) != gf.GoFace("Sans 20", rich.Normal) {
		t.Error("faces not cached")
	}
	if gf.GoFace("Sans 20", rich.Bold) == gf.GoFace("Sans 20", rich.Normal) {
		t.Error("bold resolved to the regular face")
	}
	m := gf.Face("Mono 20", rich.Normal)
	if m.Width("iiii") != m.Width("MMMM") {
		t.Error("mono face is proportional")
	}
}
