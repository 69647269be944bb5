package notification

import (
	"context"

	"go.uber.org/zap"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Pusher delivers events to connected clients. *Hub implements it.
type Pusher interface {
	SendToUser(userID string, event *WSEvent)
}

type Service struct {
	repo   *Repository
	pusher Pusher
	log    *zap.Logger
}

func NewService(repo *Repository, pusher Pusher, log *zap.Logger) *Service {
	return &Service{repo: repo, pusher: pusher, log: log}
}

// Notify stores n for userID, pushes it to the user's open connections and
// logs it. Push is best effort; only the store can fail.
func (s *Service) Notify(ctx context.Context, userID string, n Notice) error {
	rec := &Notification{
		UserID:  userID,
		Level:   n.Level,
		Title:   n.Title,
		Message: n.Message,
	}
	if err := rec.SetData(n.Data); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.log.Error("notification not stored",
			zap.String("user_id", userID),
			zap.String("title", n.Title),
			zap.Error(err),
		)
		return err
	}

	if s.pusher != nil {
		s.pusher.SendToUser(userID, &WSEvent{Type: EventNotification, Payload: rec})
	}

	s.log.Info("notification sent",
		zap.String("user_id", userID),
		zap.String("level", string(n.Level)),
		zap.String("title", n.Title),
		zap.String("redirect_to", n.Data.RedirectTo),
	)
	return nil
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Notification, int64, int64, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	list, total, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, 0, err
	}
	return list, unread, total, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkAsRead(ctx context.Context, id, userID string) error {
	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	return s.repo.MarkAllAsRead(ctx, userID)
}
