// Package session keeps extracted chat in memory for the duration of
// the viewer interaction. Nothing survives a restart; the tool is
// stateless by design.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/106-/wows-chat-viewer/internal/model/chat"
)

var ErrSessionNotFound = errors.New("session not found")

// DefaultLimit caps concurrently held sessions when no override is
// configured.
const DefaultLimit = 64

// Service owns one record sequence per uploaded replay, keyed by
// session id so concurrent viewers never share state.
type Service struct {
	mu       sync.RWMutex
	limit    int
	order    []string
	sessions map[string]chat.Session
	records  map[string][]chat.Record
}

// NewService bootstraps the in-memory store. Non-positive limits fall
// back to DefaultLimit.
func NewService(limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{
		limit:    limit,
		sessions: make(map[string]chat.Session),
		records:  make(map[string][]chat.Record),
	}
}

// Create stores a freshly extracted record sequence under a new
// session. When the cap is reached the oldest session is evicted.
func (s *Service) Create(_ context.Context, replayName string, records []chat.Record) chat.Session {
	session := chat.Session{
		ID:         uuid.NewString(),
		ReplayName: replayName,
		CreatedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.order) >= s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.sessions, oldest)
		delete(s.records, oldest)
	}

	s.order = append(s.order, session.ID)
	s.sessions[session.ID] = session
	s.records[session.ID] = append([]chat.Record(nil), records...)
	return session
}

// Get retrieves a session by identifier.
func (s *Service) Get(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// Apply returns the session's records passing the filter, in original
// order. The underlying sequence is never mutated; an empty filter
// returns every record.
func (s *Service) Apply(_ context.Context, sessionID string, filter chat.Filter) ([]chat.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.records[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	filtered := make([]chat.Record, 0, len(records))
	for _, r := range records {
		if filter.Match(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Stats aggregates the full (unfiltered) record sequence.
func (s *Service) Stats(_ context.Context, sessionID string) (chat.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.records[sessionID]
	if !ok {
		return chat.Stats{}, ErrSessionNotFound
	}
	return chat.Aggregate(records), nil
}

// Len reports how many sessions are currently held.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
