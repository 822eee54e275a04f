package v1

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CreateSession creates a new conversation session.
// PUT /api/v1/sessions
func (h *Handler) CreateSession(c echo.Context) error {
	session := h.service.CreateSession()
	return c.JSON(http.StatusOK, session)
}

// ListSessions returns all current sessions.
// GET /api/v1/sessions
func (h *Handler) ListSessions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListSessions())
}

// GetSession returns a session including its conversation history.
// GET /api/v1/sessions/:session_id
func (h *Handler) GetSession(c echo.Context) error {
	session, ok := h.service.GetSession(c.Param("session_id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	return c.JSON(http.StatusOK, session)
}

// DeleteSession deletes a session.
// DELETE /api/v1/sessions/:session_id
func (h *Handler) DeleteSession(c echo.Context) error {
	if !h.service.DeleteSession(c.Param("session_id")) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// StopSession marks an active session as stopped.
// POST /api/v1/sessions/:session_id/stop
func (h *Handler) StopSession(c echo.Context) error {
	sessionID := c.Param("session_id")
	if !h.service.StopSession(sessionID) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Session %s stopped.", sessionID),
	})
}
