package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStorePutGet(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Close()

	s.Put("a", "payload")
	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "payload", v)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	s := NewStore(20 * time.Millisecond)
	defer s.Close()

	s.Put("a", 1)
	time.Sleep(40 * time.Millisecond)

	_, ok := s.Get("a")
	assert.False(t, ok)
}

func TestStorePutResetsExpiry(t *testing.T) {
	s := NewStore(50 * time.Millisecond)
	defer s.Close()

	s.Put("a", 1)
	time.Sleep(30 * time.Millisecond)
	s.Put("a", 2)
	time.Sleep(30 * time.Millisecond)

	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestStoreDelete(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Close()

	s.Put("a", 1)
	s.Delete("a")
	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}
