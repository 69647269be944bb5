package database

import (
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"prospectcrm/internal/domain/auth"
	"prospectcrm/internal/domain/contact"
	"prospectcrm/internal/domain/notification"
	"prospectcrm/internal/domain/organization"
	"prospectcrm/internal/domain/prospect"
)

// Connect opens PostgreSQL for postgres:// URLs and a pure-Go SQLite
// database for anything else.
func Connect(dsn string, log *zap.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Info("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Info("using SQLite for local development", zap.String("dsn", dsn))

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&auth.User{},
		&prospect.Prospect{},
		&organization.Organization{},
		&contact.Contact{},
		&notification.Notification{},
	}
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
