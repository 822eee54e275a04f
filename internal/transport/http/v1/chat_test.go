package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatWithSession(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	session := h.service.CreateSession()

	t.Run("Placeholder Response", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+session.SessionID+"/chat", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("session_id")
		c.SetParamValues(session.SessionID)

		err := h.ChatWithSession(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Chat functionality not yet implemented.", resp["message"])
	})

	t.Run("Appends No Events", func(t *testing.T) {
		got, ok := h.service.GetSession(session.SessionID)
		require.True(t, ok)
		assert.Empty(t, got.Events)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sid_missing/chat", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("session_id")
		c.SetParamValues("sid_missing")

		err := h.ChatWithSession(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
