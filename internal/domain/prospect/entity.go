package prospect

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is stored as an open-ended string; these are the values the
// service itself writes or reacts to.
type Status string

const (
	StatusNew        Status = "new"
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
)

type Source string

const (
	SourceManual Source = "manual"
	SourceImport Source = "import"
)

// Prospect is an unqualified sales lead, the pre-CRM record.
type Prospect struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	CompanyName string  `gorm:"column:company_name;size:255;not null" json:"company_name"`
	Website     *string `gorm:"column:website" json:"website,omitempty"`
	Description *string `gorm:"column:description" json:"description,omitempty"`

	// Contact person
	ContactName  *string `gorm:"column:contact_name" json:"contact_name,omitempty"`
	ContactEmail *string `gorm:"column:contact_email" json:"contact_email,omitempty"`
	ContactPhone *string `gorm:"column:contact_phone" json:"contact_phone,omitempty"`
	LinkedInURL  *string `gorm:"column:linkedin_url" json:"linkedin_url,omitempty"`

	// Lead management
	Status         Status  `gorm:"column:status;size:32;not null;index" json:"status"`
	AssignedTo     *string `gorm:"column:assigned_to;size:36;index" json:"assigned_to,omitempty"`
	AssignedToName *string `gorm:"column:assigned_to_name" json:"assigned_to_name,omitempty"`

	Source    Source    `gorm:"column:source;size:16" json:"source"`
	CreatedBy *string   `gorm:"column:created_by;size:36" json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Prospect) TableName() string {
	return "prospects"
}

func (p *Prospect) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	if p.Source == "" {
		p.Source = SourceManual
	}
	return nil
}

// IsApproved returns true once the prospect has been converted.
func (p *Prospect) IsApproved() bool {
	return p.Status == StatusApproved
}

// HasContactData reports whether any of the contact name, email or phone
// carries a value. A field that is set but blank counts as absent, so rows
// written outside optional() cannot produce an empty contact. LinkedIn alone
// is not contact data.
func (p *Prospect) HasContactData() bool {
	return present(p.ContactName) || present(p.ContactEmail) || present(p.ContactPhone)
}

// Assignable reports whether assignment should advance the status to
// in_progress.
func (s Status) Assignable() bool {
	return s == StatusNew || s == StatusPending
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// optional turns blank input into nil.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
