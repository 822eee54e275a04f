package service

import "github.com/browsearcher/backend/internal/domain"

// CreateSession creates a new session with default title and status.
func (s *Service) CreateSession() domain.Session {
	return s.registry.Create()
}

// GetSession returns a session by ID. ok is false when the ID is unknown.
func (s *Service) GetSession(id string) (domain.Session, bool) {
	return s.registry.Get(id)
}

// ListSessions returns all sessions in creation order.
func (s *Service) ListSessions() []domain.Session {
	return s.registry.List()
}

// DeleteSession removes a session and reports whether a removal occurred.
func (s *Service) DeleteSession(id string) bool {
	return s.registry.Delete(id)
}

// StopSession marks a session stopped.
func (s *Service) StopSession(id string) bool {
	return s.registry.Stop(id)
}

// AppendEvent appends an event to a session's history.
func (s *Service) AppendEvent(id string, eventType domain.EventType, data map[string]any) (domain.Event, bool) {
	return s.registry.AppendEvent(id, eventType, data)
}
