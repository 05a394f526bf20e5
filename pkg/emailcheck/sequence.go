package emailcheck

import "sync"

// Sequence issues monotonically increasing generation numbers for validation
// requests on a single field. A check result is applied only while its
// generation is still the latest issued, so an in-flight lookup that
// completes after the field changed again cannot overwrite newer state.
type Sequence struct {
	mu     sync.Mutex
	latest uint64
}

// Next issues a new generation, superseding all previously issued ones.
func (s *Sequence) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// Current reports whether the generation is still the latest issued.
func (s *Sequence) Current(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return generation == s.latest
}
