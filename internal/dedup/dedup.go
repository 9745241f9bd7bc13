package dedup

import "sync"

// Set tracks job URLs already collected within one search so the same posting
// never appears twice in a result list. First occurrence wins.
type Set struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add records the URL and reports whether this was its first occurrence.
// Mutex is required because Go maps are NOT thread-safe
func (s *Set) Add(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.seen[url]; exists {
		return false
	}
	s.seen[url] = struct{}{}
	return true
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}
