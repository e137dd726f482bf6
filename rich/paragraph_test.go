package rich

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func helloBold() *Paragraph {
	return NewParagraph(Run{Text: "He", Style: Bold}, Run{Text: "llo", Style: Normal})
}

func TestWhichRun(t *testing.T) {
	p := NewParagraph(
		Run{Text: "ab", Style: Bold},
		Run{Text: "cde", Style: Normal},
		Run{Text: "f", Style: Italic},
	)
	tests := []struct {
		off      int
		run, pos int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 0}, // boundary belongs to the following run
		{4, 1, 2},
		{5, 2, 0},
		{6, 2, 1}, // final boundary stays in the last run
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.off), func(t *testing.T) {
			run, pos := p.WhichRun(tc.off)
			if run != tc.run || pos != tc.pos {
				t.Errorf("WhichRun(%d) = (%d, %d), want (%d, %d)", tc.off, run, pos, tc.run, tc.pos)
			}
		})
	}
}

func TestWhichRunMonotonic(t *testing.T) {
	p := NewParagraph(
		Run{Text: "日本", Style: Bold},
		Run{Text: "語x", Style: Normal},
		Run{Text: "ü", Style: Underline},
	)
	prev := 0
	for off := 0; off <= p.Len(); off++ {
		run, _ := p.WhichRun(off)
		if run < prev {
			t.Fatalf("WhichRun(%d) = %d after %d", off, run, prev)
		}
		prev = run
	}
}

func TestWhichRunEmpty(t *testing.T) {
	p := Plain("")
	if run, pos := p.WhichRun(0); run != 0 || pos != 0 {
		t.Errorf("WhichRun(0) on empty = (%d, %d), want (0, 0)", run, pos)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		para        *Paragraph
		off         int
		left, right Runs
	}{
		{
			name:  "at style boundary",
			para:  helloBold(),
			off:   2,
			left:  Runs{{Text: "He", Style: Bold}},
			right: Runs{{Text: "llo", Style: Normal}},
		},
		{
			name:  "inside a run",
			para:  helloBold(),
			off:   3,
			left:  Runs{{Text: "He", Style: Bold}, {Text: "l", Style: Normal}},
			right: Runs{{Text: "lo", Style: Normal}},
		},
		{
			name:  "at start",
			para:  helloBold(),
			off:   0,
			left:  Runs{{Text: "", Style: Bold}},
			right: Runs{{Text: "He", Style: Bold}, {Text: "llo", Style: Normal}},
		},
		{
			name:  "at end",
			para:  helloBold(),
			off:   5,
			left:  Runs{{Text: "He", Style: Bold}, {Text: "llo", Style: Normal}},
			right: Runs{{Text: "", Style: Normal}},
		},
		{
			name:  "multibyte",
			para:  Plain("añb"),
			off:   3,
			left:  Runs{{Text: "añ"}},
			right: Runs{{Text: "b"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.para.Text()
			l, r := tc.para.Split(tc.off)
			if diff := cmp.Diff(tc.left, l.Runs); diff != "" {
				t.Errorf("left mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.right, r.Runs); diff != "" {
				t.Errorf("right mismatch (-want +got):\n%s", diff)
			}
			if got := tc.para.Text(); got != before {
				t.Errorf("Split modified the paragraph: %q", got)
			}
			if err := l.Validate(); err != nil {
				t.Errorf("left invalid: %v", err)
			}
			if err := r.Validate(); err != nil {
				t.Errorf("right invalid: %v", err)
			}
		})
	}
}

func TestDeleteRange(t *testing.T) {
	tests := []struct {
		name       string
		para       *Paragraph
		start, end int
		want       Runs
	}{
		{
			name:  "same run",
			para:  Plain("Hello"),
			start: 1, end: 3,
			want: Runs{{Text: "Hlo"}},
		},
		{
			name:  "across runs",
			para:  helloBold(),
			start: 1, end: 4,
			want: Runs{{Text: "H", Style: Bold}, {Text: "o", Style: Normal}},
		},
		{
			name:  "whole middle run",
			para:  NewParagraph(Run{Text: "a"}, Run{Text: "bc", Style: Italic}, Run{Text: "d"}),
			start: 1, end: 3,
			want: Runs{{Text: "a"}, {Text: "d"}},
		},
		{
			name:  "to end sentinel",
			para:  helloBold(),
			start: 1, end: ToEnd,
			want: Runs{{Text: "H", Style: Bold}},
		},
		{
			name:  "everything collapses to one empty run",
			para:  helloBold(),
			start: 0, end: ToEnd,
			want: Runs{{Text: "", Style: Bold}},
		},
		{
			name:  "first run removed",
			para:  helloBold(),
			start: 0, end: 2,
			want: Runs{{Text: "llo", Style: Normal}},
		},
		{
			name:  "empty range",
			para:  helloBold(),
			start: 2, end: 2,
			want: Runs{{Text: "He", Style: Bold}, {Text: "llo", Style: Normal}},
		},
		{
			name:  "multibyte",
			para:  Plain("日本語"),
			start: 3, end: 6,
			want: Runs{{Text: "日語"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.para.DeleteRange(tc.start, tc.end)
			if diff := cmp.Diff(tc.want, tc.para.Runs); diff != "" {
				t.Errorf("runs mismatch (-want +got):\n%s", diff)
			}
			if err := tc.para.Validate(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		para *Paragraph
		off  int
		text string
		want Runs
	}{
		{"empty", Plain(""), 0, "Hello", Runs{{Text: "Hello"}}},
		{"middle of run", Plain("Hlo"), 1, "el", Runs{{Text: "Hello"}}},
		{"boundary goes to following run", helloBold(), 2, "X", Runs{{Text: "He", Style: Bold}, {Text: "Xllo"}}},
		{"end goes to last run", helloBold(), 5, "!", Runs{{Text: "He", Style: Bold}, {Text: "llo!"}}},
		{"start", helloBold(), 0, ">", Runs{{Text: ">He", Style: Bold}, {Text: "llo"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rev := tc.para.Rev()
			tc.para.Insert(tc.off, tc.text)
			if diff := cmp.Diff(tc.want, tc.para.Runs); diff != "" {
				t.Errorf("runs mismatch (-want +got):\n%s", diff)
			}
			if tc.para.Rev() == rev {
				t.Errorf("revision not bumped")
			}
		})
	}
}

func TestInsertRuns(t *testing.T) {
	p := Plain("ad")
	p.InsertRuns(1, Runs{{Text: "b", Style: Bold}, {Text: "c"}})
	want := Runs{{Text: "a"}, {Text: "b", Style: Bold}, {Text: "cd"}}
	if diff := cmp.Diff(want, p.Runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestSetStyle(t *testing.T) {
	tests := []struct {
		name       string
		para       *Paragraph
		start, end int
		style      Style
		want       Runs
	}{
		{"inside run", Plain("Hello"), 1, 3, Italic, Runs{{Text: "H"}, {Text: "el", Style: Italic}, {Text: "lo"}}},
		{"across runs", helloBold(), 1, 4, Underline, Runs{{Text: "H", Style: Bold}, {Text: "ell", Style: Underline}, {Text: "o"}}},
		{"whole paragraph", helloBold(), 0, ToEnd, Normal, Runs{{Text: "Hello"}}},
		{"joins neighbour", helloBold(), 2, 3, Bold, Runs{{Text: "Hel", Style: Bold}, {Text: "lo"}}},
		{"empty span", helloBold(), 2, 2, Italic, helloBold().Runs},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.para.SetStyle(tc.start, tc.end, tc.style)
			if diff := cmp.Diff(tc.want, tc.para.Runs); diff != "" {
				t.Errorf("runs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitAppendInverse(t *testing.T) {
	for off := 0; off <= 5; off++ {
		p := helloBold()
		l, r := p.Split(off)
		l.Append(r)
		if diff := cmp.Diff(helloBold().Runs, l.Runs); diff != "" {
			t.Errorf("split at %d then append mismatch (-want +got):\n%s", off, diff)
		}
	}
}

func TestSlice(t *testing.T) {
	p := NewParagraph(Run{Text: "ab", Style: Bold}, Run{Text: "cd"}, Run{Text: "ef", Style: Italic})
	got := p.Slice(1, 5)
	want := Runs{{Text: "b", Style: Bold}, {Text: "cd"}, {Text: "e", Style: Italic}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Slice mismatch (-want +got):\n%s", diff)
	}
	if got, want := p.Slice(2, ToEnd).String(), "cdef"; got != want {
		t.Errorf("Slice(2, ToEnd) = %q, want %q", got, want)
	}
}

func TestDeleteSpan(t *testing.T) {
	paras := []*Paragraph{Plain("AB"), Plain("xx"), NewParagraph(Run{Text: "CD", Style: Bold})}
	paras = DeleteSpan(paras, 2, 1, 0, 1)
	if len(paras) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(paras))
	}
	want := Runs{{Text: "A"}, {Text: "D", Style: Bold}}
	if diff := cmp.Diff(want, paras[0].Runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteSpanToEnd(t *testing.T) {
	for _, tc := range []struct {
		name           string
		p1, o1, p2, o2 int
		want           []string
	}{
		{"same paragraph", 0, 3, 0, ToEnd, []string{"Hel", "World"}},
		{"same paragraph reversed", 0, ToEnd, 0, 3, []string{"Hel", "World"}},
		{"across paragraphs", 0, 1, 1, ToEnd, []string{"H"}},
		{"start at end", 0, ToEnd, 1, 2, []string{"Hellorld"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			paras := DeleteSpan([]*Paragraph{Plain("Hello"), Plain("World")}, tc.p1, tc.o1, tc.p2, tc.o2)
			var got []string
			for _, p := range paras {
				got = append(got, p.Text())
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContractViolations(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"past end", func() { Plain("abc").Insert(4, "x") }},
		{"negative", func() { Plain("abc").DeleteRange(-1, 2) }},
		{"mid codepoint", func() { Plain("日本").Split(1) }},
		{"reversed", func() { Plain("abc").DeleteRange(2, 1) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected a panic")
				}
			}()
			tc.fn()
		})
	}
}

func TestCoalesce(t *testing.T) {
	got := Runs{{Text: "a"}, {Text: ""}, {Text: "b"}, {Text: "c", Style: Bold}}.Coalesce()
	want := Runs{{Text: "ab"}, {Text: "c", Style: Bold}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Coalesce mismatch (-want +got):\n%s", diff)
	}
}
