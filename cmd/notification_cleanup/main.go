package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"prospectcrm/internal/config"
	"prospectcrm/internal/database"
	"prospectcrm/internal/domain/notification"
	"prospectcrm/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	db, err := database.Connect(cfg.DatabaseURL, zl)
	if err != nil {
		zl.Fatal("db connect failed", zap.Error(err))
	}

	cleanup := notification.NewCleanupService(notification.NewRepository(db), zl)
	deleted, err := cleanup.CleanupOldNotifications(context.Background(), cfg.NotificationRetentionDays)
	if err != nil {
		zl.Fatal("notification cleanup failed", zap.Error(err))
	}

	zl.Info("notification cleanup completed", zap.Int64("deleted", deleted))
}
