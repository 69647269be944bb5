package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"prospectcrm/internal/middleware"
)

func TestHandler_Endpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := NewService(setupTestRepo(t), nil, zap.NewNop())
	require.NoError(t, svc.Notify(context.Background(), "u-1", Notice{Level: LevelSuccess, Title: "hello"}))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID := c.GetHeader("X-Test-User-ID"); userID != "" {
			middleware.SetIdentity(c, middleware.Identity{UserID: userID})
		}
		c.Next()
	})
	RegisterRoutes(r.Group("/api/v1"), NewHandler(svc))

	do := func(method, path string, authorized bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if authorized {
			req.Header.Set("X-Test-User-ID", "u-1")
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/api/v1/notifications", false).Code)

	w := do(http.MethodGet, "/api/v1/notifications", true)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data NotificationListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Notifications, 1)
	assert.Equal(t, int64(1), body.Data.UnreadCount)

	id := body.Data.Notifications[0].ID
	assert.Equal(t, http.StatusNotFound, do(http.MethodPatch, "/api/v1/notifications/missing/read", true).Code)
	assert.Equal(t, http.StatusOK, do(http.MethodPatch, "/api/v1/notifications/"+id+"/read", true).Code)

	w = do(http.MethodGet, "/api/v1/notifications/unread-count", true)
	assert.Contains(t, w.Body.String(), `"unread_count":0`)

	assert.Equal(t, http.StatusOK, do(http.MethodPost, "/api/v1/notifications/read-all", true).Code)
}
