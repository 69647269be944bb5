package contact

import (
	"context"

	"gorm.io/gorm"
)

// Repository handles contact data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates contact repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new contact
func (r *Repository) Create(ctx context.Context, c *Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// ListByOrganization returns the organization's contacts, primary first.
func (r *Repository) ListByOrganization(ctx context.Context, organizationID string) ([]Contact, error) {
	var out []Contact
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("is_primary DESC, created_at ASC").
		Find(&out).Error
	return out, err
}
