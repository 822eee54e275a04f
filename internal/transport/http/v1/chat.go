package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ChatWithSession sends a message to the session.
// POST /api/v1/sessions/:session_id/chat
//
// The chat pipeline is not wired up yet. This checks that the session
// exists and returns a placeholder; it does not invoke a model or append
// events to the history.
func (h *Handler) ChatWithSession(c echo.Context) error {
	if _, ok := h.service.GetSession(c.Param("session_id")); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Chat functionality not yet implemented.",
	})
}
