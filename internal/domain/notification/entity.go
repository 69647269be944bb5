package notification

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Level is the severity shown to the user.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Data links a notification to the records it is about. RedirectTo is the
// page the client should open.
type Data struct {
	Outcome        string `json:"outcome,omitempty"`
	ProspectID     string `json:"prospect_id,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
	ContactID      string `json:"contact_id,omitempty"`
	RedirectTo     string `json:"redirect_to,omitempty"`
}

// Notice is a notification before it is addressed to and stored for a user.
type Notice struct {
	Level   Level  `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Data    Data   `json:"data"`
}

// Notification is a persisted user notification
type Notification struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	UserID    string          `gorm:"column:user_id;size:36;not null;index:idx_notifications_user_unread" json:"user_id"`
	Level     Level           `gorm:"column:level;size:16;not null" json:"level"`
	Title     string          `gorm:"column:title;not null" json:"title"`
	Message   string          `gorm:"column:message" json:"message"`
	Data      json.RawMessage `gorm:"column:data" json:"data,omitempty"`
	IsRead    bool            `gorm:"column:is_read;not null;default:false;index:idx_notifications_user_unread" json:"is_read"`
	ReadAt    *time.Time      `gorm:"column:read_at" json:"read_at,omitempty"`
	CreatedAt time.Time       `gorm:"column:created_at;index" json:"created_at"`
}

// TableName specifies table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(_ *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// SetData encodes data to JSON
func (n *Notification) SetData(d Data) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	n.Data = b
	return nil
}

// GetData decodes data from JSON
func (n *Notification) GetData() Data {
	var d Data
	if len(n.Data) > 0 {
		_ = json.Unmarshal(n.Data, &d)
	}
	return d
}
