package conversion

import (
	"context"

	"prospectcrm/internal/domain/contact"
	"prospectcrm/internal/domain/notification"
	"prospectcrm/internal/domain/organization"
	"prospectcrm/internal/domain/prospect"
)

// ProspectStore is implemented by *prospect.Repository.
type ProspectStore interface {
	GetByID(ctx context.Context, id string) (*prospect.Prospect, error)
	UpdateStatus(ctx context.Context, id string, status prospect.Status) error
	Assign(ctx context.Context, id string, a prospect.Assignment) error
}

// OrganizationStore is implemented by *organization.Repository.
type OrganizationStore interface {
	Create(ctx context.Context, o *organization.Organization) error
	GetByProspectID(ctx context.Context, prospectID string) (*organization.Organization, error)
}

// ContactStore is implemented by *contact.Repository.
type ContactStore interface {
	Create(ctx context.Context, c *contact.Contact) error
}

// UserDirectory resolves display names. Implemented by *auth.Repository.
type UserDirectory interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

// Notifier delivers the single notice of a run. Implemented by
// *notification.Service.
type Notifier interface {
	Notify(ctx context.Context, userID string, n notification.Notice) error
}

// Actor is the user who triggered a workflow run.
type Actor struct {
	UserID string
	Name   string
}
