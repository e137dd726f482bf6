package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/colloquium/stylesheet"
)

// TestDragLifecycle walks a gesture through every state.
func TestDragLifecycle(t *testing.T) {
	var d Drag
	if d.State() != Idle {
		t.Fatalf("zero Drag is %v, want idle", d.State())
	}
	if _, _, ok := d.Motion(5, 5); ok {
		t.Error("Motion while idle reported ok")
	}

	d.Down(10, 20, Move, 3, TopLeft)
	if got, want := d.State(), CouldDrag; got != want {
		t.Errorf("after Down %v, want %v", got, want)
	}
	if got := d.Corner(); got != NoCorner {
		t.Errorf("Move latched corner %v", got)
	}
	if got := d.Item(); got != 3 {
		t.Errorf("Item() = %d, want 3", got)
	}

	dx, dy, ok := d.Motion(15, 18)
	if !ok || dx != 5 || dy != -2 {
		t.Errorf("Motion = %v, %v, %v, want 5, -2, true", dx, dy, ok)
	}
	if got, want := d.State(), Dragging; got != want {
		t.Errorf("after Motion %v, want %v", got, want)
	}
	dx, dy, _ = d.Motion(16, 18)
	if dx != 1 || dy != 0 {
		t.Errorf("second Motion = %v, %v, want 1, 0", dx, dy)
	}
	if diff := cmp.Diff(stylesheet.Rect{X: 10, Y: 18, W: 6, H: 2}, d.Swept()); diff != "" {
		t.Errorf("Swept mismatch (-want +got):\n%s", diff)
	}
	if got := d.Reason(); got != Move {
		t.Errorf("reason changed to %v mid-drag", got)
	}

	if !d.Up() {
		t.Error("Up after motion reported no drag")
	}
	if d.State() != Idle || d.Reason() != NoReason {
		t.Errorf("after Up: %v %v", d.State(), d.Reason())
	}
}

// TestDragClick checks a press and release without motion.
func TestDragClick(t *testing.T) {
	var d Drag
	d.Down(1, 1, Resize, 0, BottomRight)
	if got := d.Corner(); got != BottomRight {
		t.Errorf("Corner() = %v, want BottomRight", got)
	}
	if d.Up() {
		t.Error("click reported as drag")
	}
}

func TestCornerAt(t *testing.T) {
	r := stylesheet.Rect{X: 100, Y: 100, W: 200, H: 100}
	small := stylesheet.Rect{X: 0, Y: 0, W: 10, H: 10}
	for _, tc := range []struct {
		name string
		r    stylesheet.Rect
		x, y float64
		want Corner
	}{
		{"top left", r, 105, 105, TopLeft},
		{"top left edge of zone", r, 119, 119, TopLeft},
		{"just outside zone", r, 120, 105, NoCorner},
		{"top right", r, 295, 101, TopRight},
		{"bottom left", r, 100, 199, BottomLeft},
		{"bottom right", r, 299, 199, BottomRight},
		{"middle", r, 200, 150, NoCorner},
		{"outside", r, 99, 99, NoCorner},
		{"small top left", small, 2, 2, TopLeft},
		{"small bottom right", small, 7, 7, BottomRight},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := CornerAt(tc.r, tc.x, tc.y); got != tc.want {
				t.Errorf("CornerAt(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestResizeRect(t *testing.T) {
	r := stylesheet.Rect{X: 10, Y: 10, W: 100, H: 50}
	for _, tc := range []struct {
		name   string
		c      Corner
		dx, dy float64
		want   stylesheet.Rect
	}{
		{"top left", TopLeft, 5, 5, stylesheet.Rect{X: 15, Y: 15, W: 95, H: 45}},
		{"top right", TopRight, 10, -5, stylesheet.Rect{X: 10, Y: 5, W: 110, H: 55}},
		{"bottom left", BottomLeft, -10, 10, stylesheet.Rect{X: 0, Y: 10, W: 110, H: 60}},
		{"bottom right", BottomRight, 20, 20, stylesheet.Rect{X: 10, Y: 10, W: 120, H: 70}},
		{"flip", BottomRight, -150, 0, stylesheet.Rect{X: -40, Y: 10, W: 50, H: 50}},
		{"no corner", NoCorner, 5, 5, r},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ResizeRect(r, tc.c, tc.dx, tc.dy)); diff != "" {
				t.Errorf("ResizeRect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStrings(t *testing.T) {
	for _, tc := range []struct {
		got, want string
	}{
		{Dragging.String(), "dragging"},
		{DragState(9).String(), "DragState(9)"},
		{TextSelect.String(), "text-select"},
		{Reason(-1).String(), "Reason(-1)"},
	} {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}
