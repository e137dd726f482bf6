package narrative

// Observer implementations register with a Narrative to be told of
// every structural change. Indices are those after the change.
type Observer interface {
	// ItemsInserted reports that n items now occupy [i, i+n).
	ItemsInserted(i, n int)

	// ItemsDeleted reports that the n items that were at [i, i+n) are gone.
	ItemsDeleted(i, n int)

	// ItemChanged reports that the content of item i was edited.
	ItemChanged(i int)
}

// AddObserver adds o as an observer of edits to n.
func (n *Narrative) AddObserver(o Observer) {
	if n.observers == nil {
		n.observers = make(map[Observer]struct{})
	}
	n.observers[o] = struct{}{}
}

// DelObserver removes o.
func (n *Narrative) DelObserver(o Observer) {
	delete(n.observers, o)
}

func (n *Narrative) inserted(i, count int) {
	n.saved = false
	for o := range n.observers {
		o.ItemsInserted(i, count)
	}
}

func (n *Narrative) deleted(i, count int) {
	n.saved = false
	for o := range n.observers {
		o.ItemsDeleted(i, count)
	}
}

func (n *Narrative) changed(i int) {
	n.saved = false
	for o := range n.observers {
		o.ItemChanged(i)
	}
}
