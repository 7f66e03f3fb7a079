// pkg/memcache/session_notes.go
package memcache

import (
	"sync"
	"time"
)

type NoteStore interface {
	Put(sessionID string, text string, ttl time.Duration)

	// Get returns the note text for sessionID if not expired.
	Get(sessionID string) (string, bool)
}

type noteEntry struct {
	text      string
	expiresAt time.Time
}

// SessionNotes holds per-session freeform notes in memory. Notes live
// only for the session TTL; there is no persistence.
type SessionNotes struct {
	mu   sync.RWMutex
	data map[string]noteEntry
}

func NewSessionNotes() *SessionNotes {
	return &SessionNotes{
		data: make(map[string]noteEntry),
	}
}

func (s *SessionNotes) Put(sessionID string, text string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = noteEntry{
		text:      text,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *SessionNotes) Get(sessionID string) (string, bool) {
	s.mu.RLock()
	e, ok := s.data[sessionID]
	s.mu.RUnlock()

	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, sessionID) // cleanup expired
		s.mu.Unlock()
		return "", false
	}
	return e.text, true
}
