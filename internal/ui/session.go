package ui

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shaj13/libcache"
	_ "github.com/shaj13/libcache/lru"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/controller"
)

// pageField is the hidden form field carrying the id of the page a
// submission comes from.
const pageField = "page_id"

// Sessions maps rendered pages to their submission sequence, so that only
// the latest submission of a page is rendered into its report region.
// Every tab gets its own page id, so tabs never supersede each other.
// Entries live in a bounded LRU and expire after the configured TTL of
// inactivity.
type Sessions struct {
	mu    sync.Mutex
	cache libcache.Cache
}

// NewSessions returns a store holding at most capacity pages.
func NewSessions(capacity int, ttl time.Duration) *Sessions {
	cache := libcache.LRU.New(capacity)
	cache.SetTTL(ttl)
	cache.RegisterOnExpired(func(key, _ interface{}) {
		cache.Delete(key)
	})
	return &Sessions{cache: cache}
}

// Sequence returns the sequence of the given page, creating it on first
// use. Every access renews the page's TTL.
func (s *Sessions) Sequence(id string) *controller.Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.cache.Load(id); ok {
		if seq, ok := v.(*controller.Sequence); ok {
			s.cache.Store(id, seq)
			return seq
		}
	}
	seq := &controller.Sequence{}
	s.cache.Store(id, seq)
	return seq
}

// Len returns the number of live pages.
func (s *Sessions) Len() int {
	return s.cache.Len()
}

// newPageID returns the id embedded in a freshly rendered page.
func newPageID() string {
	return uuid.NewString()
}

// pageID returns the id of the page a parsed form was posted from. Forms
// without a well-formed id get a fresh one, which gives them a sequence
// of their own.
func pageID(r *http.Request) string {
	if id := r.PostFormValue(pageField); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	return newPageID()
}
