package main

import (
	"context"
	"errors"
	"log"

	"go.uber.org/zap"

	"prospectcrm/internal/config"
	"prospectcrm/internal/database"
	"prospectcrm/internal/domain/auth"
	"prospectcrm/internal/domain/prospect"
	"prospectcrm/internal/pkg/jwt"
	"prospectcrm/internal/pkg/logger"
)

type seedUser struct {
	email, password, name string
	role                  auth.Role
}

var users = []seedUser{
	{"admin@prospectcrm.local", "admin12345", "Administrator", auth.RoleAdmin},
	{"sales@prospectcrm.local", "sales12345", "Jane Doe", auth.RoleSales},
}

func strPtr(s string) *string { return &s }

var prospects = []*prospect.Prospect{
	{CompanyName: "Acme Co", Website: strPtr("https://acme.example"), ContactName: strPtr("Wile E Coyote"), ContactEmail: strPtr("wile@acme.example")},
	{CompanyName: "Globex", ContactName: strPtr("Hank Scorpio"), ContactPhone: strPtr("+1 555 0100")},
	{CompanyName: "Initech", Description: strPtr("TPS reports"), LinkedInURL: strPtr("https://linkedin.com/company/initech")},
	{CompanyName: "Umbrella Corp", Status: prospect.StatusPending},
	{CompanyName: "Stark Industries", ContactName: strPtr("Pepper"), ContactEmail: strPtr("pepper@stark.example")},
}

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
	if err := database.Migrate(db); err != nil {
		zl.Fatal("migrate failed", zap.Error(err))
	}

	ctx := context.Background()
	prospectRepo := prospect.NewRepository(db)
	authSvc := auth.NewService(auth.NewRepository(db), jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL), prospectRepo, zl)

	var creator string
	for _, u := range users {
		created, err := authSvc.CreateUser(ctx, &auth.CreateUserRequest{
			Email: u.email, Password: u.password, Name: u.name, Role: u.role,
		})
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			zl.Info("user exists, skipping", zap.String("email", u.email))
			continue
		}
		if err != nil {
			zl.Fatal("create user failed", zap.String("email", u.email), zap.Error(err))
		}
		if creator == "" {
			creator = created.ID
		}
		zl.Info("user created", zap.String("email", u.email), zap.String("role", string(u.role)))
	}

	var existing int64
	if err := db.Model(&prospect.Prospect{}).Count(&existing).Error; err != nil {
		zl.Fatal("count prospects failed", zap.Error(err))
	}
	if existing > 0 {
		zl.Info("prospects already seeded", zap.Int64("count", existing))
		return
	}

	for _, p := range prospects {
		if p.Status == "" {
			p.Status = prospect.StatusNew
		}
		p.Source = prospect.SourceManual
		if creator != "" {
			p.CreatedBy = &creator
		}
	}
	if err := prospectRepo.CreateBatch(ctx, prospects); err != nil {
		zl.Fatal("seed prospects failed", zap.Error(err))
	}
	zl.Info("seed completed", zap.Int("prospects", len(prospects)))
}
