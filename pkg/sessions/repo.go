package sessions

import (
	"sync"
	"time"
)

type Session struct {
	ID         string
	UserID     string
	Expiration time.Time
}

// SessionRepo is the dev backend's registry of issued sessions. Tokens whose
// session is missing here are rejected even if their signature is valid, so
// restarting the backend invalidates every token it issued.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]Session),
	}
}

func (sr *SessionRepo) Add(userID, sessionID string, exp time.Time) {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	sr.sessions[sessionID] = Session{ID: sessionID, UserID: userID, Expiration: exp}
}

func (sr *SessionRepo) Check(sessionID, userID string) error {
	sr.mu.RLock()
	defer sr.mu.RUnlock()
	s, ok := sr.sessions[sessionID]
	if !ok || s.UserID != userID {
		return ErrNoAuth
	}
	if time.Now().After(s.Expiration) {
		return ErrExpired
	}
	return nil
}

func (sr *SessionRepo) DestroyAll(userID string) {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	for id, s := range sr.sessions {
		if s.UserID == userID {
			delete(sr.sessions, id)
		}
	}
}
