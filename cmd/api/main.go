package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"prospectcrm/internal/config"
	"prospectcrm/internal/database"
	"prospectcrm/internal/domain/auth"
	"prospectcrm/internal/domain/contact"
	"prospectcrm/internal/domain/conversion"
	"prospectcrm/internal/domain/notification"
	"prospectcrm/internal/domain/organization"
	"prospectcrm/internal/domain/prospect"
	"prospectcrm/internal/pkg/jwt"
	"prospectcrm/internal/pkg/logger"
	"prospectcrm/internal/server"
)

func newDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("database migrated")
	return db, nil
}

func newTokens(cfg *config.Config) *jwt.Service {
	return jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL)
}

func newAuthService(repo *auth.Repository, tokens *jwt.Service, prospects *prospect.Repository, log *zap.Logger) *auth.Service {
	return auth.NewService(repo, tokens, prospects, log)
}

func newImporter(repo *prospect.Repository, cfg *config.Config, log *zap.Logger) *prospect.Importer {
	return prospect.NewImporter(repo, cfg.ImportMaxRows, log)
}

func newOrganizationService(repo *organization.Repository, contacts *contact.Repository) *organization.Service {
	return organization.NewService(repo, contacts)
}

func newNotificationService(repo *notification.Repository, hub *notification.Hub, log *zap.Logger) *notification.Service {
	return notification.NewService(repo, hub, log)
}

func newWSHandler(hub *notification.Hub, tokens *jwt.Service, cfg *config.Config, log *zap.Logger) *notification.WSHandler {
	return notification.NewWSHandler(hub, tokens, cfg.CORSAllowedOrigins, log)
}

func newWorkflow(
	prospects *prospect.Repository,
	orgs *organization.Repository,
	contacts *contact.Repository,
	users *auth.Repository,
	notifications *notification.Service,
	log *zap.Logger,
) *conversion.Workflow {
	return conversion.NewWorkflow(prospects, orgs, contacts, users, notifications, log)
}

type handlerParams struct {
	fx.In

	Auth          *auth.Handler
	Prospects     *prospect.Handler
	Conversion    *conversion.Handler
	Organizations *organization.Handler
	Notifications *notification.Handler
	WS            *notification.WSHandler
}

func newRouter(cfg *config.Config, log *zap.Logger, tokens *jwt.Service, p handlerParams) *gin.Engine {
	return server.NewRouter(cfg, log, tokens, server.Handlers{
		Auth:          p.Auth,
		Prospects:     p.Prospects,
		Conversion:    p.Conversion,
		Organizations: p.Organizations,
		Notifications: p.Notifications,
		WS:            p.WS,
	})
}

// StartServer runs the HTTP server in the background and drains it on stop.
func StartServer(lc fx.Lifecycle, srv *http.Server, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("server starting", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			return srv.Shutdown(ctx)
		},
	})
}

// StartScheduler registers background jobs on a cron scheduler tied to the app lifecycle.
func StartScheduler(lc fx.Lifecycle, cfg *config.Config, cleanup *notification.CleanupService, log *zap.Logger) error {
	sched := cron.New()

	if cfg.NotificationCleanupEnabled {
		if _, err := cleanup.Schedule(sched, cfg.NotificationCleanupCron, cfg.NotificationRetentionDays); err != nil {
			return err
		}
		log.Info("notification cleanup scheduled",
			zap.String("schedule", cfg.NotificationCleanupCron),
			zap.Int("retention_days", cfg.NotificationRetentionDays))
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sched.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			<-sched.Stop().Done()
			return nil
		},
	})
	return nil
}

// @title           Prospect CRM API
// @version         1.0
// @description     Prospect intake and conversion into organizations and contacts.

// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		fx.Provide(
			config.Load,
			logger.New,
			newDatabase,
			newTokens,

			// Repositories
			auth.NewRepository,
			prospect.NewRepository,
			organization.NewRepository,
			contact.NewRepository,
			notification.NewRepository,

			// Services
			notification.NewHub,
			newNotificationService,
			notification.NewCleanupService,
			newAuthService,
			prospect.NewService,
			newImporter,
			newOrganizationService,
			newWorkflow,

			// Handlers
			auth.NewHandler,
			prospect.NewHandler,
			conversion.NewHandler,
			organization.NewHandler,
			notification.NewHandler,
			newWSHandler,

			newRouter,
			server.NewHTTPServer,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			StartServer,
			StartScheduler,
		),
	)

	app.Run()
}
