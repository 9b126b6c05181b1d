package optimizer

import (
	"sync"

	"go.trai.ch/sharetree/internal/core/domain"
)

// Registry owns the sessions of concurrently running builds.
type Registry struct {
	mu       sync.Mutex
	nextID   domain.SessionID
	sessions map[domain.SessionID]*domain.Session
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[domain.SessionID]*domain.Session),
	}
}

// Create allocates a session seeded with one empty table entry per share key.
func (r *Registry) Create(shareKeys []string) *domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	session := domain.NewSession(r.nextID, shareKeys)
	r.sessions[session.ID] = session
	return session
}

// Get returns the session with the given id.
func (r *Registry) Get(id domain.SessionID) (*domain.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	return session, ok
}

// Remove discards the session with the given id. Removing an unknown id is a no-op.
func (r *Registry) Remove(id domain.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
