package notification

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"prospectcrm/internal/pkg/jwt"
)

func TestHub_PushesToConnectedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens := jwt.New("ws-secret", time.Hour)
	hub := NewHub(zap.NewNop())
	r := gin.New()
	RegisterWSRoutes(r, NewWSHandler(hub, tokens, nil, zap.NewNop()))

	srv := httptest.NewServer(r)
	defer srv.Close()

	token, err := tokens.GenerateToken("u-1", "Jane", "sales")
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/notifications?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Connected("u-1") == 1 }, time.Second, 10*time.Millisecond)

	hub.SendToUser("u-2", &WSEvent{Type: EventNotification, Payload: "not for u-1"})
	hub.SendToUser("u-1", &WSEvent{Type: EventNotification, Payload: map[string]string{"title": "Prospect approved"}})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev struct {
		Type    string            `json:"type"`
		Payload map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg, &ev))
	assert.Equal(t, EventNotification, ev.Type)
	assert.Equal(t, "Prospect approved", ev.Payload["title"])

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Connected("u-1") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWSHandler_RejectsMissingOrBadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterWSRoutes(r, NewWSHandler(NewHub(zap.NewNop()), jwt.New("s", time.Hour), nil, zap.NewNop()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws/notifications", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_REQUIRED")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws/notifications?token=junk", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}
