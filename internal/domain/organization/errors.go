package organization

import "errors"

var (
	ErrOrganizationNotFound  = errors.New("organization not found")
	ErrDuplicateProspectLink = errors.New("prospect already linked to an organization")
)
