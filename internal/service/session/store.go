package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/skolathu-cds/smart-travel-consultant/internal/model/travel"
)

// Store owns every live session for the process lifetime. Sessions are
// created on first reference and guarded by a per-session lock so that at
// most one turn is in flight per session id.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu      sync.Mutex
	session *travel.Session
}

// NewStore bootstraps the in-memory session store.
func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// Create provisions a new session with a generated identifier.
func (s *Store) Create() travel.Session {
	id := uuid.NewString()
	s.getOrCreate(id)

	created, _ := s.Snapshot(id)
	return created
}

// Do runs fn with exclusive access to the session for id, creating the
// session if it does not exist yet. Mutations made by fn are retained.
func (s *Store) Do(id string, fn func(*travel.Session)) {
	e := s.getOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
}

// Snapshot returns a copy of the session for read-only use.
func (s *Store) Snapshot(id string) (travel.Session, bool) {
	s.mu.Lock()
	e, ok := s.entries[id]
	s.mu.Unlock()
	if !ok {
		return travel.Session{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	copied := *e.session
	copied.Turns = append([]travel.Turn(nil), e.session.Turns...)
	copied.CollectedData = make(map[string]string, len(e.session.CollectedData))
	for k, v := range e.session.CollectedData {
		copied.CollectedData[k] = v
	}
	return copied, true
}

func (s *Store) getOrCreate(id string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		e = &entry{session: travel.NewSession(id)}
		s.entries[id] = e
	}
	return e
}
