// Command dbsetup создаёт схему маркетплейса. Запуск повторно безопасен.
package main

import (
	"ArmoryExchange/internal/config"
	"ArmoryExchange/internal/repo"
	"os"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() { _ = logger.Sync() }()

	db, err := repo.Open(cfg.DatabaseDSN)
	if err != nil {
		sugar.Errorw("failed to connect", "error", err)
		os.Exit(1)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := repo.Migrate(db); err != nil {
		sugar.Errorw("failed to create schema", "error", err)
		os.Exit(1)
	}

	tables, err := db.Migrator().GetTables()
	if err != nil {
		sugar.Warnw("schema created, but listing tables failed", "error", err)
		return
	}
	sugar.Infow("schema is ready",
		"postgres", repo.IsPostgresDSN(cfg.DatabaseDSN),
		"tables", tables,
	)
}
