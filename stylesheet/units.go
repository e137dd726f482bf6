package stylesheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadLength is wrapped by errors from parsing lengths and geometry.
var ErrBadLength = errors.New("bad length")

// Unit says how a Length is measured.
type Unit int

const (
	// Fixed lengths are absolute logical units.
	Fixed Unit = iota
	// Frac lengths are a fraction of the parent's width or height.
	Frac
)

// Length is a distance in a given unit.
type Length struct {
	V float64
	U Unit
}

// Units returns a Fixed length.
func Units(v float64) Length { return Length{V: v, U: Fixed} }

// Fraction returns a Frac length.
func Fraction(v float64) Length { return Length{V: v, U: Frac} }

// Resolve returns the absolute value of l inside a parent of the given
// extent.
func (l Length) Resolve(parent float64) float64 {
	if l.U == Frac {
		return l.V * parent
	}
	return l.V
}

// FromAbs returns a length of the same unit as l whose resolved value in
// parent is abs.
func (l Length) FromAbs(abs, parent float64) Length {
	if l.U == Frac {
		if parent == 0 {
			return Length{V: 0, U: Frac}
		}
		return Length{V: abs / parent, U: Frac}
	}
	return Length{V: abs, U: Fixed}
}

func (l Length) String() string {
	suffix := "u"
	if l.U == Frac {
		suffix = "f"
	}
	return strconv.FormatFloat(l.V, 'g', -1, 64) + suffix
}

// ParseLength parses "12u", "0.5f" or a bare number (units).
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	u := Fixed
	switch {
	case strings.HasSuffix(s, "f"):
		u = Frac
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "u"):
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Length{}, fmt.Errorf("%q: %w", s, ErrBadLength)
	}
	return Length{V: v, U: u}, nil
}

// Rect is an absolute rectangle in logical units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by the padding l, r, t, b.
func (r Rect) Inset(pad [4]float64) Rect {
	return Rect{
		X: r.X + pad[Left],
		Y: r.Y + pad[Top],
		W: r.W - pad[Left] - pad[Right],
		H: r.H - pad[Top] - pad[Bottom],
	}
}

// Geometry places a frame inside its parent. Every field carries its own
// unit.
type Geometry struct {
	X, Y, W, H Length
}

// Resolve returns the absolute rectangle for a parent of size pw x ph.
func (g Geometry) Resolve(pw, ph float64) Rect {
	return Rect{
		X: g.X.Resolve(pw),
		Y: g.Y.Resolve(ph),
		W: g.W.Resolve(pw),
		H: g.H.Resolve(ph),
	}
}

// WithRect returns g moved and sized to r, each field keeping its unit.
func (g Geometry) WithRect(r Rect, pw, ph float64) Geometry {
	return Geometry{
		X: g.X.FromAbs(r.X, pw),
		Y: g.Y.FromAbs(r.Y, ph),
		W: g.W.FromAbs(r.W, pw),
		H: g.H.FromAbs(r.H, ph),
	}
}

// String formats g as WxH+X+Y.
func (g Geometry) String() string {
	return g.W.String() + "x" + g.H.String() + "+" + g.X.String() + "+" + g.Y.String()
}

// ParseGeometry parses WxH+X+Y, for example "0.5fx0.5f+0.1f+10u".
func ParseGeometry(s string) (Geometry, error) {
	wh, pos, ok := strings.Cut(strings.TrimSpace(s), "+")
	if !ok {
		return Geometry{}, fmt.Errorf("geometry %q: missing +X+Y: %w", s, ErrBadLength)
	}
	ws, hs, ok := strings.Cut(wh, "x")
	if !ok {
		return Geometry{}, fmt.Errorf("geometry %q: missing WxH: %w", s, ErrBadLength)
	}
	xs, ys, ok := strings.Cut(pos, "+")
	if !ok {
		return Geometry{}, fmt.Errorf("geometry %q: missing +Y: %w", s, ErrBadLength)
	}
	var g Geometry
	var err error
	for _, f := range []struct {
		dst *Length
		src string
	}{{&g.W, ws}, {&g.H, hs}, {&g.X, xs}, {&g.Y, ys}} {
		if *f.dst, err = ParseLength(f.src); err != nil {
			return Geometry{}, fmt.Errorf("geometry %q: %w", s, err)
		}
	}
	return g, nil
}

// Padding sides.
const (
	Left = iota
	Right
	Top
	Bottom
)

// ResolveSides resolves left/right against pw and top/bottom against ph.
func ResolveSides(sides [4]Length, pw, ph float64) [4]float64 {
	return [4]float64{
		sides[Left].Resolve(pw),
		sides[Right].Resolve(pw),
		sides[Top].Resolve(ph),
		sides[Bottom].Resolve(ph),
	}
}

// Uniform returns four equal sides.
func Uniform(l Length) [4]Length { return [4]Length{l, l, l, l} }
