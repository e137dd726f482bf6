package colloquiumtest

import (
	"image"
	"sync"

	"github.com/rjkroege/colloquium/slide"
	"github.com/rjkroege/colloquium/stylesheet"
)

// Thumbnailer records the slides it is asked to render and returns blank
// images of the requested height.
type Thumbnailer struct {
	mu    sync.Mutex
	calls []*slide.Slide
}

func (t *Thumbnailer) Thumbnail(s *slide.Slide, sheet stylesheet.Sheet, height float64) image.Image {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, s)
	w, h := s.Size(sheet)
	return image.NewRGBA(image.Rect(0, 0, int(height*w/h), int(height)))
}

// Calls returns how many thumbnails were rendered.
func (t *Thumbnailer) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.calls)
}
