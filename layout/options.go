package layout

import (
	"github.com/rjkroege/colloquium/shape"
)

// Option configures an Engine.
type Option func(*Engine)

// WithShaper is an Option that sets the text shaper.
func WithShaper(s shape.Shaper) Option {
	return func(e *Engine) {
		e.shaper = s
	}
}

// WithThumbnailer is an Option that sets the slide thumbnailer. Without
// one, slides keep their height but have no image.
func WithThumbnailer(t Thumbnailer) Option {
	return func(e *Engine) {
		e.thumbnailer = t
	}
}

// WithWidth is an Option that sets the available width.
func WithWidth(w float64) Option {
	return func(e *Engine) {
		e.width = w
	}
}
