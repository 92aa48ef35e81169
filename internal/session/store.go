package session

import (
	"sync"

	"faqbot/internal/domain"
)

// Store keeps per-user dialog sessions in memory. Sessions are transient:
// a restart drops them all, and navigation recovers from the next input.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*domain.Session),
	}
}

// Get returns a copy of the user's session, or an idle session if none exists
func (s *Store) Get(userID int64) domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[userID]
	if !exists {
		return domain.Session{State: domain.StateIdle}
	}
	return *sess
}

// Set replaces the user's session
func (s *Store) Set(userID int64, sess domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &sess
}

// Reset returns the user to the idle state and clears remembered context
func (s *Store) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
