package controller

import "sync"

// Sequence hands out increasing submission tokens. Only the holder of the
// most recent token may write to the report region, so a slow response can
// never replace the result of a later submission.
type Sequence struct {
	mu     sync.Mutex
	latest uint64
}

// Next issues a new token, invalidating every earlier one.
func (s *Sequence) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// Latest returns the most recently issued token.
func (s *Sequence) Latest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Commit runs fn if token is still the latest and reports whether it ran.
// fn runs under the lock, so no newer token can be issued mid-write.
func (s *Sequence) Commit(token uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.latest {
		return false
	}
	fn()
	return true
}
