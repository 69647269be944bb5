package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prospectcrm/internal/middleware"
	"prospectcrm/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetNotifications returns the current user's notifications.
// @Summary		List notifications
// @Description	Latest notifications of the current user plus the unread count.
// @Tags		Notifications
// @Security	BearerAuth
// @Param		limit	query	int	false	"Page size (default 20, max 100)"
// @Param		offset	query	int	false	"Offset"
// @Success		200	{object}	NotificationListResponse
// @Failure		401	{object}	response.Response
// @Failure		500	{object}	response.Response
// @Router		/notifications [GET]
func (h *Handler) GetNotifications(c *gin.Context) {
	id, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	list, unread, total, err := h.service.List(c.Request.Context(), id.UserID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get notifications")
		return
	}

	response.Success(c, http.StatusOK, NotificationListResponse{
		Notifications: list,
		UnreadCount:   unread,
		Total:         total,
	})
}

// GetUnreadCount returns the number of unread notifications.
// @Summary		Unread count
// @Tags		Notifications
// @Security	BearerAuth
// @Success		200	{object}	UnreadCountResponse
// @Failure		401	{object}	response.Response
// @Router		/notifications/unread-count [GET]
func (h *Handler) GetUnreadCount(c *gin.Context) {
	id, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	unread, err := h.service.UnreadCount(c.Request.Context(), id.UserID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get unread count")
		return
	}

	response.Success(c, http.StatusOK, UnreadCountResponse{UnreadCount: unread})
}

// MarkAsRead marks one notification as read.
// @Summary		Mark as read
// @Tags		Notifications
// @Security	BearerAuth
// @Param		id	path	string	true	"Notification ID"
// @Success		200	{object}	response.Response
// @Failure		404	{object}	response.Response
// @Router		/notifications/{id}/read [PATCH]
func (h *Handler) MarkAsRead(c *gin.Context) {
	id, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), c.Param("id"), id.UserID); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "read"})
}

// MarkAllAsRead marks every unread notification of the user as read.
// @Summary		Mark all as read
// @Tags		Notifications
// @Security	BearerAuth
// @Success		200	{object}	response.Response
// @Router		/notifications/read-all [POST]
func (h *Handler) MarkAllAsRead(c *gin.Context) {
	id, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	n, err := h.service.MarkAllAsRead(c.Request.Context(), id.UserID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "all_read", "updated": n})
}
