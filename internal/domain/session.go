// Package domain defines the core domain models for the session backend.
package domain

// Event is an immutable record of something that happened in a session.
// Once appended to a session it is never mutated or reordered.
type Event struct {
	EventID   string         `json:"event_id"`
	Type      EventType      `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp float64        `json:"timestamp"` // Unix seconds
}

// Session represents a conversation session.
type Session struct {
	SessionID          string        `json:"session_id"`
	Title              string        `json:"title"`
	CreatedAt          float64       `json:"created_at"` // Unix seconds
	Events             []Event       `json:"events"`
	Status             SessionStatus `json:"status"`
	UnreadMessageCount int           `json:"unread_message_count"`
}

// LatestMessage returns the content of the most recent message event,
// scanning the history from the end. ok is false when the session has no
// message event, or when the event carries no string content.
func (s *Session) LatestMessage() (string, bool) {
	for i := len(s.Events) - 1; i >= 0; i-- {
		if s.Events[i].Type != EventTypeMessage {
			continue
		}
		content, ok := s.Events[i].Data["content"].(string)
		return content, ok
	}
	return "", false
}

// LatestMessageAt returns the timestamp of the most recent message event.
// ok is false when the session has no message event.
func (s *Session) LatestMessageAt() (float64, bool) {
	for i := len(s.Events) - 1; i >= 0; i-- {
		if s.Events[i].Type == EventTypeMessage {
			return s.Events[i].Timestamp, true
		}
	}
	return 0, false
}
