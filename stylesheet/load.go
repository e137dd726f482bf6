package stylesheet

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rjkroege/colloquium/draw"
	"github.com/rjkroege/colloquium/rich"
	"gopkg.in/yaml.v3"
)

// ErrBadColor is wrapped by errors from parsing colours.
var ErrBadColor = errors.New("bad colour")

// Load reads a YAML (or JSON) stylesheet on top of Default. Keys starting
// with an upper case letter are nested styles, so NARRATIVE: {TEXT: ...}
// defines NARRATIVE.TEXT. Unknown fields are ignored.
func Load(r io.Reader) (*Map, error) {
	var doc map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return nil, fmt.Errorf("decoding stylesheet: %w", err)
	}
	m := Default()
	for k, v := range doc {
		if k == "slidesize" {
			w, h, err := parseSize(fmt.Sprint(v))
			if err != nil {
				return nil, err
			}
			m.SetSlideSize(w, h)
			continue
		}
		if err := m.load(k, v); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func isChild(key string) bool {
	for _, r := range key {
		return unicode.IsUpper(r)
	}
	return false
}

func (m *Map) load(path string, v interface{}) error {
	fields, ok := v.(map[string]interface{})
	if !ok {
		return fmt.Errorf("style %s: expected a mapping, got %T", path, v)
	}
	var st Style
	if old, ok := m.styles[path]; ok {
		st = *old
	}
	for k, fv := range fields {
		if isChild(k) {
			if err := m.load(path+"."+k, fv); err != nil {
				return err
			}
			continue
		}
		if err := st.set(k, fv); err != nil {
			return fmt.Errorf("style %s: %w", path, err)
		}
	}
	m.Set(path, st)
	return nil
}

func (st *Style) set(key string, v interface{}) error {
	var err error
	switch key {
	case "geometry":
		st.Geometry, err = ParseGeometry(fmt.Sprint(v))
	case "font":
		st.Font = fmt.Sprint(v)
	case "fg":
		st.Fg, err = ParseColor(fmt.Sprint(v))
	case "bg":
		st.Bg, err = parseBackground(v)
	case "padding":
		st.Padding, err = parseSides(v)
	case "paraspace":
		st.ParaSpace, err = parseSides(v)
	case "alignment", "align":
		a, ok := rich.ParseAlignment(fmt.Sprint(v))
		if !ok {
			err = fmt.Errorf("unknown alignment %q", v)
		}
		st.Align = a
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// ParseColor parses #rrggbb or #rrggbbaa.
func ParseColor(s string) (draw.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return draw.Color(v), nil
}

func parseBackground(v interface{}) (Background, error) {
	switch bg := v.(type) {
	case string:
		if bg == "none" {
			return Background{}, nil
		}
		c, err := ParseColor(bg)
		if err != nil {
			return Background{}, err
		}
		return Background{Kind: Solid, Colors: [2]draw.Color{c, c}}, nil
	case map[string]interface{}:
		var b Background
		switch dir := fmt.Sprint(bg["gradient"]); dir {
		case "vertical":
			b.Kind = GradientVertical
		case "horizontal":
			b.Kind = GradientHorizontal
		default:
			return Background{}, fmt.Errorf("unknown gradient %q", dir)
		}
		colors, ok := bg["colors"].([]interface{})
		if !ok || len(colors) != 2 {
			return Background{}, errors.New("gradient needs two colours")
		}
		for i, c := range colors {
			var err error
			if b.Colors[i], err = ParseColor(fmt.Sprint(c)); err != nil {
				return Background{}, err
			}
		}
		return b, nil
	}
	return Background{}, fmt.Errorf("unexpected background %T", v)
}

func parseSides(v interface{}) ([4]Length, error) {
	var sides [4]Length
	list, ok := v.([]interface{})
	if !ok {
		l, err := ParseLength(fmt.Sprint(v))
		if err != nil {
			return sides, err
		}
		return Uniform(l), nil
	}
	if len(list) != 4 {
		return sides, fmt.Errorf("need 4 sides, got %d: %w", len(list), ErrBadLength)
	}
	for i, e := range list {
		l, err := ParseLength(fmt.Sprint(e))
		if err != nil {
			return sides, err
		}
		sides[i] = l
	}
	return sides, nil
}

func parseSize(s string) (float64, float64, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("slide size %q: %w", s, ErrBadLength)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(ws), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("slide size %q: %w", s, ErrBadLength)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(hs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("slide size %q: %w", s, ErrBadLength)
	}
	return w, h, nil
}
