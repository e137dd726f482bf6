// Package draw is the narrow seam onto 9fans.net/go/draw: packed colours
// and plan9 font metrics. Nothing in the document core draws; fonts are
// only measured.
package draw

import "image/color"

// Display is the part of a devdraw connection needed to obtain fonts.
type Display interface {
	OpenFont(name string) (Font, error)
	ScaleSize(n int) int
	Close() error
}

// Font measures text set in a plan9 font.
type Font interface {
	Name() string
	Height() int
	BytesWidth(b []byte) int
	RunesWidth(r []rune) int
	StringWidth(s string) int
}

// WithAlpha scales the colour channels of c by alpha and sets its alpha.
func WithAlpha(c Color, alpha uint8) Color {
	r := uint32(c >> 24)
	g := uint32(c>>16) & 0xFF
	b := uint32(c>>8) & 0xFF
	r = (r * uint32(alpha)) / 255
	g = (g * uint32(alpha)) / 255
	b = (b * uint32(alpha)) / 255
	return Color(r<<24 | g<<16 | b<<8 | uint32(alpha))
}

// RGBA converts a packed 0xRRGGBBAA colour for use with image/draw.
func RGBA(c Color) color.RGBA {
	return color.RGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}
}

// Mix returns the linear blend of a and b at t in [0, 1].
func Mix(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	var out uint32
	for shift := 24; shift >= 0; shift -= 8 {
		ca := float64((uint32(a) >> shift) & 0xFF)
		cb := float64((uint32(b) >> shift) & 0xFF)
		out |= uint32(ca+(cb-ca)*t+0.5) << shift
	}
	return Color(out)
}
