package notification

import "github.com/gin-gonic/gin"

// RegisterRoutes registers notification routes on an authenticated group.
func RegisterRoutes(protected *gin.RouterGroup, handler *Handler) {
	notifGroup := protected.Group("/notifications")
	{
		notifGroup.GET("", handler.GetNotifications)
		notifGroup.GET("/unread-count", handler.GetUnreadCount)
		notifGroup.PATCH("/:id/read", handler.MarkAsRead)
		notifGroup.POST("/read-all", handler.MarkAllAsRead)
	}
}

// RegisterWSRoutes registers the websocket endpoint. It authenticates by
// query token and must not sit behind the header-based JWT middleware.
func RegisterWSRoutes(r gin.IRoutes, ws *WSHandler) {
	r.GET("/ws/notifications", ws.HandleWebSocket)
}
