package main

import (
	"context"

	"go.uber.org/zap"

	"storefront-core/internal/config"
	"storefront-core/internal/db"
	"storefront-core/internal/migrate"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Parse()
	if err != nil {
		logger.Fatal("parse config", zap.Error(err))
	}
	if cfg.DatabaseURI == "" {
		logger.Fatal("database URI required")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DatabaseURI)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatal("apply migrations", zap.Error(err))
	}

	logger.Info("migrations applied")
}
