package organization

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusLead is the status of an organization freshly converted from a
// prospect.
const StatusLead = "lead"

// Organization is a CRM company record. ProspectID links back to the
// prospect it was converted from; it is written on insert only.
type Organization struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ProspectID  *string   `gorm:"column:prospect_id;size:36;uniqueIndex" json:"prospect_id,omitempty"`
	Name        string    `gorm:"column:name;size:255;not null" json:"name"`
	Website     *string   `gorm:"column:website" json:"website,omitempty"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	Status      string    `gorm:"column:status;size:32;not null" json:"status"`
	CreatedBy   *string   `gorm:"column:created_by;size:36" json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}

func (o *Organization) BeforeCreate(_ *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = StatusLead
	}
	return nil
}
