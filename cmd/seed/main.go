package main

import (
	"context"
	"flag"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	catalogapp "github.com/muhammadheryan/gadgetfix/application/catalog"
	userapp "github.com/muhammadheryan/gadgetfix/application/user"
	"github.com/muhammadheryan/gadgetfix/cmd/config"
	"github.com/muhammadheryan/gadgetfix/model"
	catalogRepo "github.com/muhammadheryan/gadgetfix/repository/catalog"
	userRepo "github.com/muhammadheryan/gadgetfix/repository/user"
	"github.com/muhammadheryan/gadgetfix/utils/logger"
	"go.uber.org/zap"
)

// seed creates or refreshes the administrator account and, with -catalog,
// loads catalog entries from an xlsx workbook.
func main() {
	catalogFile := flag.String("catalog", "", "optional xlsx workbook of catalog entries")
	flag.Parse()

	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "gadgetfix-seed"); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Seed.AdminPassword == "" {
		logger.Fatal("SEED_ADMIN_PASSWORD is required")
	}

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	UserRepo := userRepo.NewUserRepository(db)

	// Issuing sessions is not needed here.
	UserApp := userapp.NewUserApp(UserRepo, nil)

	admin, err := UserApp.EnsureAdmin(ctx, &model.RegisterRequest{
		Name:     cfg.Seed.AdminName,
		Email:    cfg.Seed.AdminEmail,
		Phone:    cfg.Seed.AdminPhone,
		Password: cfg.Seed.AdminPassword,
	})
	if err != nil {
		logger.Fatal("err seed admin", zap.Error(err))
	}
	logger.Info("Admin account ready", zap.Uint64("id", admin.ID), zap.String("email", admin.Email))

	if *catalogFile == "" {
		return
	}

	f, err := os.Open(*catalogFile)
	if err != nil {
		logger.Fatal("err open catalog file", zap.Error(err))
	}
	defer f.Close()

	CatalogApp := catalogapp.NewCatalogApp(catalogRepo.NewCatalogRepository(db))
	res, err := CatalogApp.ImportServices(ctx, &model.Actor{ID: admin.ID, Role: admin.Role}, f)
	if err != nil {
		logger.Fatal("err import catalog", zap.Error(err))
	}
	for _, msg := range res.Errors {
		logger.Warn("catalog row skipped", zap.String("reason", msg))
	}
	logger.Info("Catalog imported", zap.Int("created", res.Created), zap.Int("skipped", res.Skipped))
}
