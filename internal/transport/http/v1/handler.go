// Package v1 provides the versioned REST handlers for the session backend.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/browsearcher/backend/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers the API routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")

	// Session API
	g.PUT("/sessions", h.CreateSession)
	g.GET("/sessions", h.ListSessions)
	g.GET("/sessions/:session_id", h.GetSession)
	g.DELETE("/sessions/:session_id", h.DeleteSession)
	g.POST("/sessions/:session_id/stop", h.StopSession)
	g.POST("/sessions/:session_id/chat", h.ChatWithSession)

	g.GET("/health", h.Health)
}

// Health returns health status.
// GET /api/v1/health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
