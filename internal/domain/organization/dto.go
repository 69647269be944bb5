package organization

import "prospectcrm/internal/domain/contact"

// OrganizationListResponse represents paginated list
type OrganizationListResponse struct {
	Organizations []Organization `json:"organizations"`
	Total         int64          `json:"total"`
}

// ContactListResponse wraps an organization's contacts
type ContactListResponse struct {
	Contacts []contact.Contact `json:"contacts"`
}
