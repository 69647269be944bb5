package prospect

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Repository handles prospect data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates prospect repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	Status     *Status
	AssignedTo string
	Search     string
	Limit      int
	Offset     int
}

// Assignment is the patch written by an assignment.
type Assignment struct {
	UserID   string
	UserName string
	Status   *Status // nil leaves the status unchanged
}

// Create inserts a new prospect
func (r *Repository) Create(ctx context.Context, p *Prospect) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// CreateBatch inserts prospects in chunks.
func (r *Repository) CreateBatch(ctx context.Context, ps []*Prospect) error {
	if len(ps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(ps, 200).Error
}

// GetByID retrieves prospect by ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Prospect, error) {
	var p Prospect
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProspectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns prospects matching the filter, newest first, plus the total
// number of matches.
func (r *Repository) List(ctx context.Context, f ListFilter) ([]Prospect, int64, error) {
	q := r.db.WithContext(ctx).Model(&Prospect{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.AssignedTo != "" {
		q = q.Where("assigned_to = ?", f.AssignedTo)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(company_name) LIKE ? OR LOWER(COALESCE(contact_name, '')) LIKE ? OR LOWER(COALESCE(contact_email, '')) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []Prospect
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&out).Error
	return out, total, err
}

// UpdateStatus updates prospect status
func (r *Repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	res := r.db.WithContext(ctx).Model(&Prospect{}).Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProspectNotFound
	}
	return nil
}

// Assign writes the owner reference, its cached display name and, when
// requested, the new status in a single update.
func (r *Repository) Assign(ctx context.Context, id string, a Assignment) error {
	patch := map[string]any{
		"assigned_to":      a.UserID,
		"assigned_to_name": a.UserName,
		"updated_at":       time.Now(),
	}
	if a.Status != nil {
		patch["status"] = *a.Status
	}

	res := r.db.WithContext(ctx).Model(&Prospect{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProspectNotFound
	}
	return nil
}

// RefreshAssigneeName rewrites the cached display name on every prospect
// assigned to userID.
func (r *Repository) RefreshAssigneeName(ctx context.Context, userID, name string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Prospect{}).
		Where("assigned_to = ?", userID).
		Update("assigned_to_name", name)
	return res.RowsAffected, res.Error
}

// CountByStatus returns prospect counts by status
func (r *Repository) CountByStatus(ctx context.Context) (map[Status]int64, error) {
	var rows []struct {
		Status Status
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&Prospect{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
