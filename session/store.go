package session

import (
	"sync"
	"time"
)

// Store is an in-memory TTL session store. Entries expire a fixed duration
// after their last write; a background sweeper reclaims them.
type Store struct {
	mu      sync.Mutex
	items   map[string]item
	ttl     time.Duration
	done    chan struct{}
	closing sync.Once
}

type item struct {
	value   any
	expires time.Time
}

// NewStore returns a store whose entries live for ttl after each Put.
// Close must be called to stop the sweeper.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		items: make(map[string]item),
		ttl:   ttl,
		done:  make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Get returns the value for a key, or false when the key is missing or
// has expired
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(it.expires) {
		delete(s.items, key)
		return nil, false
	}
	return it.value, true
}

// Put stores a value and resets its expiry
func (s *Store) Put(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = item{value: value, expires: time.Now().Add(s.ttl)}
}

// Delete removes a key
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

// Len reports how many live entries the store holds
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	n := 0
	for _, it := range s.items {
		if now.Before(it.expires) {
			n++
		}
	}
	return n
}

// Close stops the background sweeper
func (s *Store) Close() {
	s.closing.Do(func() { close(s.done) })
}

func (s *Store) sweep() {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for key, it := range s.items {
				if now.After(it.expires) {
					delete(s.items, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
