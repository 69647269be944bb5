package organization

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// Repository handles organization data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates organization repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListFilter narrows List results.
type ListFilter struct {
	ProspectID string
	Limit      int
	Offset     int
}

// Create inserts o. A second organization for the same prospect fails with
// ErrDuplicateProspectLink.
func (r *Repository) Create(ctx context.Context, o *Organization) error {
	err := r.db.WithContext(ctx).Create(o).Error
	if isUniqueViolation(err) {
		return ErrDuplicateProspectLink
	}
	return err
}

// GetByID retrieves organization by ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Organization, error) {
	var o Organization
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByProspectID returns the organization converted from prospectID.
func (r *Repository) GetByProspectID(ctx context.Context, prospectID string) (*Organization, error) {
	var o Organization
	err := r.db.WithContext(ctx).Where("prospect_id = ?", prospectID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns organizations newest first plus the total count.
func (r *Repository) List(ctx context.Context, f ListFilter) ([]Organization, int64, error) {
	q := r.db.WithContext(ctx).Model(&Organization{})
	if f.ProspectID != "" {
		q = q.Where("prospect_id = ?", f.ProspectID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []Organization
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&out).Error
	return out, total, err
}

// isUniqueViolation recognises duplicate-key errors from every driver the
// service runs on. gorm translates postgres and cgo sqlite errors; the pure-Go
// sqlite driver is matched by message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
