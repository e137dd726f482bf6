// Package sync serializes the views editing one document.
//
// A narrative and its slides may be edited from more than one view but
// no document operation is safe to interleave with another. Every
// mutating view method therefore runs under the document's Session.
package sync

import "sync"

// Owners identify which view holds a Session.
const (
	NarrativeOwner = 'N'
	SlideOwner     = 'S'
	DriverOwner    = 'D'
)

// Session is the single lock guarding a document.
type Session struct {
	mu sync.Mutex

	state  sync.Mutex // guards locked and owner
	locked bool
	owner  int
}

// NewSession returns an unlocked session.
func NewSession() *Session {
	return &Session{}
}

// Lock acquires the session for owner.
func (s *Session) Lock(owner int) {
	s.mu.Lock()
	s.state.Lock()
	s.locked = true
	s.owner = owner
	s.state.Unlock()
}

// Unlock releases the session.
func (s *Session) Unlock() {
	s.state.Lock()
	s.owner = 0
	s.locked = false
	s.state.Unlock()
	s.mu.Unlock()
}

// IsLocked returns true if the session is currently held.
func (s *Session) IsLocked() bool {
	s.state.Lock()
	defer s.state.Unlock()
	return s.locked
}

// Owner returns the holder of the session, or 0.
func (s *Session) Owner() int {
	s.state.Lock()
	defer s.state.Unlock()
	return s.owner
}

// WithLock executes fn while holding the session, ensuring unlock on
// return. The session is released even if fn panics.
func (s *Session) WithLock(owner int, fn func()) {
	s.Lock(owner)
	defer s.Unlock()
	fn()
}
