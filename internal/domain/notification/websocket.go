package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"prospectcrm/internal/pkg/jwt"
	"prospectcrm/internal/pkg/response"
)

// WSHandler upgrades authenticated clients to a notification stream.
type WSHandler struct {
	hub      *Hub
	tokens   *jwt.Service
	upgrader websocket.Upgrader
	log      *zap.Logger
}

// NewWSHandler creates the websocket handler. allowedOrigins empty accepts
// any origin.
func NewWSHandler(hub *Hub, tokens *jwt.Service, allowedOrigins []string, log *zap.Logger) *WSHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return &WSHandler{
		hub:    hub,
		tokens: tokens,
		log:    log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// HandleWebSocket handles GET /ws/notifications?token=JWT
//
// Browsers cannot set headers on websocket requests, so the token travels in
// the query string.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "TOKEN_REQUIRED", "Use ?token=YOUR_JWT_TOKEN")
		return
	}

	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.log.Debug("websocket connected", zap.String("user_id", claims.UserID))
	h.hub.ServeWS(conn, claims.UserID)
	h.log.Debug("websocket disconnected", zap.String("user_id", claims.UserID))
}
