package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"prospectcrm/internal/pkg/jwt"
)

// AssigneeRefresher rewrites denormalised copies of a user's display name.
type AssigneeRefresher interface {
	RefreshAssigneeName(ctx context.Context, userID, name string) (int64, error)
}

type Service struct {
	repo      *Repository
	tokens    *jwt.Service
	refresher AssigneeRefresher
	log       *zap.Logger
}

func NewService(repo *Repository, tokens *jwt.Service, refresher AssigneeRefresher, log *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		tokens:    tokens,
		refresher: refresher,
		log:       log,
	}
}

func (s *Service) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u := &User{
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Role:         req.Role,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := CheckPassword(password, u.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID, u.Name, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, User: u}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Rename changes the user's display name and refreshes every prospect that
// cached the old one. A failed refresh is logged; the rename itself stands.
func (s *Service) Rename(ctx context.Context, id, name string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if err := s.repo.UpdateName(ctx, id, name); err != nil {
		return nil, err
	}

	if s.refresher != nil {
		n, err := s.refresher.RefreshAssigneeName(ctx, id, name)
		if err != nil {
			s.log.Warn("assignee name refresh failed", zap.String("user_id", id), zap.Error(err))
		} else {
			s.log.Info("assignee names refreshed", zap.String("user_id", id), zap.Int64("prospects", n))
		}
	}

	return s.repo.GetByID(ctx, id)
}
