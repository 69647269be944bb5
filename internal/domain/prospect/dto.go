package prospect

// CreateProspectRequest represents manual prospect entry
type CreateProspectRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=255"`
	Website     string `json:"website" validate:"omitempty,max=2048"`
	Description string `json:"description"`

	// Contact person
	ContactName  string `json:"contact_name" validate:"omitempty,max=255"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,max=64"`
	LinkedInURL  string `json:"linkedin_url" validate:"omitempty,max=2048"`
}

// ProspectListResponse represents paginated list
type ProspectListResponse struct {
	Prospects []Prospect `json:"prospects"`
	Total     int64      `json:"total"`
}

// ImportRowError describes a row that could not be imported. Row is the
// 1-based line in the source file, header included.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarises a bulk import.
type ImportResult struct {
	Imported  int              `json:"imported"`
	Skipped   int              `json:"skipped"`
	Truncated bool             `json:"truncated"`
	Errors    []ImportRowError `json:"errors,omitempty"`
}
