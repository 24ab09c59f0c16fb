package api

import (
	"context"
	"sync"
	"time"

	"github.com/color-game/schemefinder/palette"
	"github.com/google/uuid"
)

// Session owns one Finder and therefore one reference color and tolerance.
type Session struct {
	ID       string
	Finder   *palette.Finder
	LastSeen time.Time
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create registers a new session with the default reference state.
func (s *SessionStore) Create(repo *palette.Repository) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{
		ID:       uuid.NewString(),
		Finder:   palette.NewFinder(repo),
		LastSeen: s.now(),
	}
	s.sessions[session.ID] = session
	return session
}

// Get returns the session and marks it as seen.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if ok {
		session.LastSeen = s.now()
	}
	return session, ok
}

// Sweep removes sessions idle for longer than ttl and returns how many went.
func (s *SessionStore) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	removed := 0
	for id, session := range s.sessions {
		if session.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

type sessionContextKey struct{}

func withSessionContext(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

func sessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*Session)
	return session, ok
}
