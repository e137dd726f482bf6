package sync

import (
	"sync"
	"testing"
)

// TestSessionNew tests that a new Session is unlocked.
func TestSessionNew(t *testing.T) {
	s := NewSession()
	if s.IsLocked() {
		t.Error("new Session should not be locked")
	}
	if s.Owner() != 0 {
		t.Errorf("new Session owned by %c", s.Owner())
	}
}

// TestSessionLockUnlock tests basic lock and unlock operations.
func TestSessionLockUnlock(t *testing.T) {
	s := NewSession()

	s.Lock(NarrativeOwner)
	if !s.IsLocked() {
		t.Error("Session should be locked after Lock()")
	}
	if got := s.Owner(); got != NarrativeOwner {
		t.Errorf("Owner() = %c, want %c", got, NarrativeOwner)
	}

	s.Unlock()
	if s.IsLocked() {
		t.Error("Session should not be locked after Unlock()")
	}
	if s.Owner() != 0 {
		t.Errorf("owner %c kept after Unlock()", s.Owner())
	}
}

// TestSessionWithLock tests that fn runs locked and the lock is released.
func TestSessionWithLock(t *testing.T) {
	s := NewSession()
	var held bool
	var owner int
	s.WithLock(SlideOwner, func() {
		held = s.IsLocked()
		owner = s.Owner()
	})
	if !held || owner != SlideOwner {
		t.Errorf("inside WithLock: locked %v owner %c", held, owner)
	}
	if s.IsLocked() {
		t.Error("Session should be unlocked after WithLock")
	}
}

// TestSessionWithLockPanic tests that the lock is released on panic.
func TestSessionWithLockPanic(t *testing.T) {
	s := NewSession()
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		s.WithLock(DriverOwner, func() { panic("edit failed") })
	}()
	if s.IsLocked() {
		t.Error("Session should be unlocked after panic in WithLock")
	}
}

// TestSessionSerializes tests that concurrent holders do not interleave.
func TestSessionSerializes(t *testing.T) {
	s := NewSession()
	var wg sync.WaitGroup
	inside, most := 0, 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.WithLock(NarrativeOwner, func() {
				inside++
				if inside > most {
					most = inside
				}
				inside--
			})
		}()
	}
	wg.Wait()
	if most != 1 {
		t.Errorf("%d holders at once, want 1", most)
	}
}

// TestSessionStateWhileHeld tests that another goroutine can query the
// session while it is held.
func TestSessionStateWhileHeld(t *testing.T) {
	s := NewSession()
	held, release := make(chan struct{}), make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.WithLock(DriverOwner, func() {
			close(held)
			<-release
		})
	}()

	<-held
	if !s.IsLocked() {
		t.Error("IsLocked() false while held")
	}
	if got := s.Owner(); got != DriverOwner {
		t.Errorf("Owner() = %c, want %c", got, DriverOwner)
	}
	close(release)
	<-done
	if s.IsLocked() || s.Owner() != 0 {
		t.Errorf("after release: locked %v owner %c", s.IsLocked(), s.Owner())
	}
}
