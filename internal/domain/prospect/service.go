package prospect

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// Service handles prospect business logic
type Service struct {
	repo *Repository
	log  *zap.Logger
}

// NewService creates prospect service
func NewService(repo *Repository, log *zap.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create stores a manually entered prospect in pending status.
func (s *Service) Create(ctx context.Context, req *CreateProspectRequest, createdBy string) (*Prospect, error) {
	if strings.TrimSpace(req.CompanyName) == "" {
		return nil, ErrCompanyNameMissing
	}

	p := &Prospect{
		CompanyName:  strings.TrimSpace(req.CompanyName),
		Website:      optional(req.Website),
		Description:  optional(req.Description),
		ContactName:  optional(req.ContactName),
		ContactEmail: optional(req.ContactEmail),
		ContactPhone: optional(req.ContactPhone),
		LinkedInURL:  optional(req.LinkedInURL),
		Status:       StatusPending,
		Source:       SourceManual,
		CreatedBy:    optional(createdBy),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("prospect created", zap.String("prospect_id", p.ID), zap.String("company", p.CompanyName))
	return p, nil
}

// GetByID returns prospect by ID
func (s *Service) GetByID(ctx context.Context, id string) (*Prospect, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns prospects with optional filters. Limit is clamped to
// [1, 100] with 50 as the default.
func (s *Service) List(ctx context.Context, f ListFilter) ([]Prospect, int64, error) {
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

// Stats returns prospect counts by status
func (s *Service) Stats(ctx context.Context) (map[Status]int64, error) {
	return s.repo.CountByStatus(ctx)
}
