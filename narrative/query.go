package narrative

import (
	"github.com/rjkroege/colloquium/slide"
)

// CountUntilEOP returns the number of items before the first
// EndOfPresentation, or Len if there is none.
func (n *Narrative) CountUntilEOP() int {
	for i, it := range n.items {
		if _, ok := it.(*EndOfPresentation); ok {
			return i
		}
	}
	return len(n.items)
}

// NumSlides returns the number of slides.
func (n *Narrative) NumSlides() int {
	c := 0
	for _, it := range n.items {
		if _, ok := it.(*Slide); ok {
			c++
		}
	}
	return c
}

// Slides returns the slides in narrative order.
func (n *Narrative) Slides() []*slide.Slide {
	var out []*slide.Slide
	for _, it := range n.items {
		if s, ok := it.(*Slide); ok {
			out = append(out, s.Slide)
		}
	}
	return out
}

// SlideByNumber returns slide k, counting only slides and starting at 0.
func (n *Narrative) SlideByNumber(k int) (*slide.Slide, bool) {
	c := 0
	for _, it := range n.items {
		s, ok := it.(*Slide)
		if !ok {
			continue
		}
		if c == k {
			return s.Slide, true
		}
		c++
	}
	return nil, false
}

// SlideNumber is the inverse of SlideByNumber.
func (n *Narrative) SlideNumber(sl *slide.Slide) (int, bool) {
	c := 0
	for _, it := range n.items {
		s, ok := it.(*Slide)
		if !ok {
			continue
		}
		if s.Slide == sl {
			return c, true
		}
		c++
	}
	return 0, false
}

// ItemIndex returns the index of the item holding sl or -1.
func (n *Narrative) ItemIndex(sl *slide.Slide) int {
	for i, it := range n.items {
		if s, ok := it.(*Slide); ok && s.Slide == sl {
			return i
		}
	}
	return -1
}

// ImageFiles returns the distinct image filenames shown on slides.
func (n *Narrative) ImageFiles() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range n.Slides() {
		for _, it := range s.Items() {
			img, ok := it.(*slide.Image)
			if !ok || seen[img.Filename] {
				continue
			}
			seen[img.Filename] = true
			out = append(out, img.Filename)
		}
	}
	return out
}
