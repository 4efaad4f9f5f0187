package repo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/browse/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

type session struct {
	browser  domain.Browser
	lastSeen time.Time
}

// SessionStore is an in-memory registry of open views. Sessions idle for
// longer than the TTL expire; a zero TTL keeps them until removed.
type SessionStore struct {
	mu       sync.Mutex
	clock    clock.Clock
	ttl      time.Duration
	max      int
	sessions map[string]*session
}

// NewSessionStore creates a registry holding at most maxViews views
// (0 = unbounded).
func NewSessionStore(clk clock.Clock, ttl time.Duration, maxViews int) *SessionStore {
	return &SessionStore{
		clock:    clk,
		ttl:      ttl,
		max:      maxViews,
		sessions: make(map[string]*session),
	}
}

// Add registers b and returns its id. Expired sessions are evicted before
// the capacity check.
func (s *SessionStore) Add(b domain.Browser) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.sessions) >= s.max {
		s.sweepLocked()
		if len(s.sessions) >= s.max {
			return "", domain.ErrTooManyViews
		}
	}

	id := uuid.NewString()
	s.sessions[id] = &session{browser: b, lastSeen: s.clock.Now()}
	return id, nil
}

// Get returns the browser for id and marks the session as used.
func (s *SessionStore) Get(id string) (domain.Browser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrViewNotFound
	}
	now := s.clock.Now()
	if s.expired(sess, now) {
		delete(s.sessions, id)
		return nil, domain.ErrViewNotFound
	}
	sess.lastSeen = now
	return sess.browser, nil
}

// Remove closes a session.
func (s *SessionStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domain.ErrViewNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of registered sessions, expired or not.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep evicts expired sessions and returns how many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked()
}

func (s *SessionStore) sweepLocked() int {
	now := s.clock.Now()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *SessionStore) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}

// RunSweeper sweeps every interval until ctx is done.
func (s *SessionStore) RunSweeper(ctx context.Context, interval time.Duration, logger *zap.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Debug("expired views swept", zap.Int("removed", n), zap.Int("open", s.Len()))
			}
		}
	}
}
