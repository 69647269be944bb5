package contact

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is a person at an organization. It is always created together
// with, and owned by, exactly one organization.
type Contact struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	OrganizationID string    `gorm:"column:organization_id;size:36;not null;index" json:"organization_id"`
	FirstName      *string   `gorm:"column:first_name" json:"first_name"`
	LastName       *string   `gorm:"column:last_name" json:"last_name"`
	Email          *string   `gorm:"column:email" json:"email,omitempty"`
	Phone          *string   `gorm:"column:phone" json:"phone,omitempty"`
	LinkedInURL    *string   `gorm:"column:linkedin_url" json:"linkedin_url,omitempty"`
	IsPrimary      bool      `gorm:"column:is_primary;not null;default:false" json:"is_primary"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

func (c *Contact) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
