package notification

// NotificationListResponse for list endpoint
type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unread_count"`
	Total         int64          `json:"total"`
}

// UnreadCountResponse for unread count endpoint
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}
