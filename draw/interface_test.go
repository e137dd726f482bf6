package draw

import (
	"image/color"
	"testing"
)

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		c     Color
		alpha uint8
		want  Color
	}{
		{0xFFFFFFFF, 0xFF, 0xFFFFFFFF},
		{0xFFFFFFFF, 0x00, 0x00000000},
		{0x80402000, 0xFF, 0x804020FF},
	}
	for _, tc := range tests {
		if got := WithAlpha(tc.c, tc.alpha); got != tc.want {
			t.Errorf("WithAlpha(%#08x, %#02x) = %#08x, want %#08x", uint32(tc.c), tc.alpha, uint32(got), uint32(tc.want))
		}
	}
}

func TestRGBA(t *testing.T) {
	if got, want := RGBA(0x11223344), (color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}); got != want {
		t.Errorf("RGBA = %v, want %v", got, want)
	}
}

func TestMix(t *testing.T) {
	tests := []struct {
		t    float64
		want Color
	}{
		{0, 0x000000FF},
		{1, 0xFFFFFFFF},
		{0.5, 0x808080FF},
		{-1, 0x000000FF},
	}
	for _, tc := range tests {
		if got := Mix(0x000000FF, 0xFFFFFFFF, tc.t); got != tc.want {
			t.Errorf("Mix(black, white, %v) = %#08x, want %#08x", tc.t, uint32(got), uint32(tc.want))
		}
	}
}
