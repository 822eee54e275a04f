package domain

// SessionStatus represents the lifecycle status of a session.
type SessionStatus string

const (
	SessionStatusActive  SessionStatus = "active"
	SessionStatusStopped SessionStatus = "stopped"
)

// EventType represents the type of an event.
type EventType string

const (
	EventTypeMessage EventType = "message"
)
