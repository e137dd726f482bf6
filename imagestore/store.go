package imagestore

import (
	"image"
	"log"
	"path/filepath"
	"sync"
)

// DefaultCapacity is the number of images a Store keeps by default.
const DefaultCapacity = 32

// Store maps image filenames, relative to a document directory, to
// decoded images. Failures are cached too so that a missing file is not
// reopened on every wrap. The least recently used entry is evicted when
// the store is full.
type Store struct {
	dir      string
	capacity int

	mu      sync.Mutex
	entries map[string]*entry
	clock   uint64
}

type entry struct {
	img  image.Image
	err  error
	used uint64
}

// New returns a store resolving relative filenames against dir.
func New(dir string, capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		dir:      dir,
		capacity: capacity,
		entries:  make(map[string]*entry),
	}
}

// Dir returns the directory relative filenames are resolved against.
func (s *Store) Dir() string { return s.dir }

// Path returns the file that filename refers to.
func (s *Store) Path(filename string) string {
	if filepath.IsAbs(filename) || s.dir == "" {
		return filename
	}
	return filepath.Join(s.dir, filename)
}

// Lookup returns the decoded image for filename.
func (s *Store) Lookup(filename string) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clock++
	if e, ok := s.entries[filename]; ok {
		e.used = s.clock
		return e.img, e.err
	}

	img, err := LoadImage(s.Path(filename))
	if err != nil {
		log.Printf("imagestore: %s: %v", filename, err)
	}
	s.evict()
	s.entries[filename] = &entry{img: img, err: err, used: s.clock}
	return img, err
}

// Size returns the pixel size of filename.
func (s *Store) Size(filename string) (w, h int, err error) {
	img, err := s.Lookup(filename)
	if err != nil {
		return 0, 0, err
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}

// Invalidate drops filename so that the next Lookup reloads it.
func (s *Store) Invalidate(filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, filename)
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// evict makes room for one more entry. Called with mu held.
func (s *Store) evict() {
	for len(s.entries) >= s.capacity {
		var oldest string
		var used uint64
		first := true
		for name, e := range s.entries {
			if first || e.used < used {
				oldest, used, first = name, e.used, false
			}
		}
		delete(s.entries, oldest)
	}
}
