package organization

import (
	"context"

	"prospectcrm/internal/domain/contact"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// ContactLister is the read side of the contact repository.
type ContactLister interface {
	ListByOrganization(ctx context.Context, organizationID string) ([]contact.Contact, error)
}

// Service exposes organization reads.
type Service struct {
	repo     *Repository
	contacts ContactLister
}

func NewService(repo *Repository, contacts ContactLister) *Service {
	return &Service{repo: repo, contacts: contacts}
}

func (s *Service) GetByID(ctx context.Context, id string) (*Organization, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Organization, int64, error) {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.repo.List(ctx, f)
}

// Contacts returns the contacts of an existing organization.
func (s *Service) Contacts(ctx context.Context, organizationID string) ([]contact.Contact, error) {
	if _, err := s.repo.GetByID(ctx, organizationID); err != nil {
		return nil, err
	}
	return s.contacts.ListByOrganization(ctx, organizationID)
}
