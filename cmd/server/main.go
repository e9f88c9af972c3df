package main

import (
	"ArmoryExchange/internal/config"
	"ArmoryExchange/internal/handlers"
	"ArmoryExchange/internal/middleware"
	"ArmoryExchange/internal/repo"
	"ArmoryExchange/internal/service"
	"ArmoryExchange/internal/session"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	middleware.SetSecureCookies(cfg.EnableHTTPS)
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	storeRepo := repo.NewStoreRepository(gormDB)
	categoryRepo := repo.NewCategoryRepository(gormDB)
	productRepo := repo.NewProductRepository(gormDB)
	orderRepo := repo.NewOrderRepository(gormDB)

	market := service.NewMarketService(storeRepo, categoryRepo, productRepo)
	svc := handlers.Services{
		Users:  service.NewUserService(userRepo),
		Stores: service.NewStoreService(storeRepo, categoryRepo, productRepo, orderRepo, sugar),
		Market: market,
		Orders: service.NewOrderService(orderRepo, market, sugar),
	}
	sessions := session.NewManager(cfg.AuthTTL)

	h := handlers.NewHandler(svc, sessions, sugar, cfg)

	addr := cfg.BaseURL
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"Postgres", repo.IsPostgresDSN(cfg.DatabaseDSN),
		"AuthTTL", cfg.AuthTTL,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	case <-ctx.Done():
		sugar.Infow("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("graceful shutdown failed", "error", err)
		}
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
