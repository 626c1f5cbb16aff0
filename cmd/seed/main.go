package main

import (
	"context"
	"fmt"
	"time"

	"voyager-gear/internal/config"
	"voyager-gear/internal/database"
	"voyager-gear/internal/logger"
	"voyager-gear/internal/repository"
	"voyager-gear/internal/seed"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	log, err := logger.New(cfg.Server.Env, cfg.Server.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	dbService, err := database.New(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB(), log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	created, err := seed.Run(ctx, repository.NewProductRepository(dbService.DB()), log)
	if err != nil {
		log.Fatal("Seed failed", zap.Int("created", created), zap.Error(err))
	}
	log.Info("Seed complete", zap.Int("created", created))
}
