package colloquiumtest

import (
	"fmt"
	"image/color"

	"github.com/rjkroege/colloquium/draw"
)

var colourNames = map[draw.Color]string{
	draw.Black:       "Black",
	draw.Medblue:     "Medblue",
	draw.Notacolor:   "Notacolor",
	draw.Paleyellow:  "Paleyellow",
	draw.Transparent: "Transparent",
	draw.White:       "White",
	0xFF0000FF:       "Red",
	0x0000FFFF:       "Blue",
	0xC0C0C0FF:       "Grey",
}

// ColourName names c for test failure messages.
func ColourName(c color.Color) string {
	r, g, b, a := c.RGBA()
	num := draw.Color(r>>8<<24 | g>>8<<16 | b>>8<<8 | a>>8)
	if s, ok := colourNames[num]; ok {
		return s
	}
	return fmt.Sprintf("color(%08x)", uint32(num))
}
