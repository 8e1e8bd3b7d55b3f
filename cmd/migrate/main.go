package main

import (
	"context"
	"os"

	"github.com/danieltechTI/ReiBurguer/config"
	"github.com/danieltechTI/ReiBurguer/internal/database"
	"github.com/danieltechTI/ReiBurguer/internal/hashing"
	"github.com/danieltechTI/ReiBurguer/internal/logger"
	"github.com/danieltechTI/ReiBurguer/internal/migrate"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	ctx := context.Background()
	if err := migrate.Run(ctx, db, log, migrate.DefaultOptions()); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	// Optional admin bootstrap for the order board.
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		hasher := hashing.NewBcrypt(0)
		hash, err := hasher.Hash(adminPassword)
		if err != nil {
			log.Fatal("hashing admin password failed", zap.Error(err))
		}
		if err := migrate.SeedAdmin(ctx, db, adminEmail, hash, "Admin"); err != nil {
			log.Fatal("seeding admin failed", zap.Error(err))
		}
		log.Info("admin account ensured", zap.String("email", adminEmail))
	}
}
