package notification

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CleanupService prunes old notifications
type CleanupService struct {
	repo *Repository
	log  *zap.Logger
}

// NewCleanupService creates cleanup service
func NewCleanupService(repo *Repository, log *zap.Logger) *CleanupService {
	return &CleanupService{repo: repo, log: log}
}

// CleanupOldNotifications removes notifications older than daysToKeep days.
func (c *CleanupService) CleanupOldNotifications(ctx context.Context, daysToKeep int) (int64, error) {
	start := time.Now()

	deleted, err := c.repo.DeleteOlderThan(ctx, time.Duration(daysToKeep)*24*time.Hour)
	if err != nil {
		c.log.Error("notification cleanup failed", zap.Error(err))
		return 0, err
	}

	c.log.Info("notification cleanup completed",
		zap.Int64("deleted", deleted),
		zap.Int("retention_days", daysToKeep),
		zap.Duration("took", time.Since(start)),
	)
	return deleted, nil
}

// Schedule registers the sweep on sched under the given cron spec.
func (c *CleanupService) Schedule(sched *cron.Cron, spec string, daysToKeep int) (cron.EntryID, error) {
	return sched.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		_, _ = c.CleanupOldNotifications(ctx, daysToKeep)
	})
}
