package draw

import (
	"fmt"

	draw "9fans.net/go/draw"
)

const (
	Black       = draw.Black
	White       = draw.White
	Transparent = draw.Transparent
	Notacolor   = draw.Notacolor
	Paleyellow  = draw.Paleyellow
	Medblue     = draw.Medblue
)

type (
	Color       = draw.Color
	drawDisplay = draw.Display
	drawFont    = draw.Font
)

// Open connects to devdraw with fontname as the default font. Errors
// reported asynchronously by the connection are passed to errfn.
func Open(fontname, label string, errfn func(error)) (Display, error) {
	errch := make(chan error, 1)
	d, err := draw.Init(errch, fontname, label, "")
	if err != nil {
		return nil, fmt.Errorf("opening display: %w", err)
	}
	go func() {
		for err := range errch {
			if errfn != nil {
				errfn(err)
			}
		}
	}()
	return &displayImpl{d}, nil
}

// displayImpl implements the Display interface.
type displayImpl struct {
	*drawDisplay
}

var _ = Display((*displayImpl)(nil))

func (d *displayImpl) OpenFont(name string) (Font, error) {
	f, err := d.drawDisplay.OpenFont(name)
	if err != nil {
		return nil, err
	}
	return &fontImpl{f}, nil
}

func (d *displayImpl) ScaleSize(n int) int { return d.drawDisplay.ScaleSize(n) }
func (d *displayImpl) Close() error        { return d.drawDisplay.Close() }

type fontImpl struct {
	*drawFont
}

func (f *fontImpl) Name() string { return f.drawFont.Name }
func (f *fontImpl) Height() int  { return f.drawFont.Height }
