package rich

// Run represents a piece of text with uniform style. A run never spans
// a paragraph boundary.
type Run struct {
	Text  string
	Style Style
}

// Runs is the run sequence of a paragraph or a fragment of one.
type Runs []Run

// Len returns the total byte count.
func (rs Runs) Len() int {
	n := 0
	for _, r := range rs {
		n += len(r.Text)
	}
	return n
}

// String returns the concatenated text of the runs.
func (rs Runs) String() string {
	if len(rs) == 1 {
		return rs[0].Text
	}
	b := make([]byte, 0, rs.Len())
	for _, r := range rs {
		b = append(b, r.Text...)
	}
	return string(b)
}

// Coalesce merges neighbouring runs of equal style and drops empty
// runs. An all-empty input yields nil.
func (rs Runs) Coalesce() Runs {
	var out Runs
	for _, r := range rs {
		if r.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == r.Style {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}
