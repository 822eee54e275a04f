// Package registry implements the in-memory session registry.
package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/browsearcher/backend/internal/domain"
	"github.com/browsearcher/backend/internal/idgen"
)

// DefaultTitle is the placeholder title assigned to new sessions.
const DefaultTitle = "New Chat"

// Registry is the authoritative set of sessions for the process's lifetime,
// keyed by session ID. State lives in process memory only: it starts empty
// and is discarded at shutdown. Handlers run in parallel, so the map is
// guarded by a mutex; every operation completes under the lock and callers
// only ever receive copies of registry-owned state.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	order    []string // creation order, backs List
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{sessions: make(map[string]*domain.Session)}
}

// Create constructs a session with a fresh ID and default title, status and
// empty history, stores it, and returns a copy.
func (r *Registry) Create() domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &domain.Session{
		SessionID: idgen.New("sid_"),
		Title:     DefaultTitle,
		CreatedAt: now(),
		Events:    []domain.Event{},
		Status:    domain.SessionStatusActive,
	}
	r.sessions[s.SessionID] = s
	r.order = append(r.order, s.SessionID)
	return snapshot(s)
}

// Get returns a copy of the session with the given ID. ok is false when the
// ID is unknown.
func (r *Registry) Get(id string) (domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return domain.Session{}, false
	}
	return snapshot(s), true
}

// List returns copies of all sessions in creation order.
func (r *Registry) List() []domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Session, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, snapshot(r.sessions[id]))
	}
	return out
}

// Delete removes the session if present and reports whether a removal
// occurred. Deleting twice is safe; the second call reports false.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	for i, sid := range r.order {
		if sid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Stop marks the session stopped. Stopping an already-stopped session
// succeeds. Reports false when the ID is unknown.
func (r *Registry) Stop(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return false
	}
	s.Status = domain.SessionStatusStopped
	return true
}

// AppendEvent appends an immutable event to the session's history and
// returns a copy of the stored event. Reports false when the ID is unknown.
func (r *Registry) AppendEvent(id string, eventType domain.EventType, data map[string]any) (domain.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return domain.Event{}, false
	}
	e := domain.Event{
		EventID:   "evt_" + uuid.NewString(),
		Type:      eventType,
		Data:      copyData(data),
		Timestamp: now(),
	}
	s.Events = append(s.Events, e)
	return copyEvent(e), true
}

func now() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// snapshot deep-copies a session so callers never alias registry state.
func snapshot(s *domain.Session) domain.Session {
	out := *s
	out.Events = make([]domain.Event, len(s.Events))
	for i, e := range s.Events {
		out.Events[i] = copyEvent(e)
	}
	return out
}

func copyEvent(e domain.Event) domain.Event {
	e.Data = copyData(e.Data)
	return e
}

func copyData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
