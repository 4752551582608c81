package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"customsduty/internal/config"
	"customsduty/internal/handler"
	"customsduty/internal/hsnsearch"
	"customsduty/internal/icegate"
	"customsduty/internal/logger"
	"customsduty/internal/router"
	"customsduty/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// A missing .env is fine; variables may come from the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: loading .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize upstream clients
	tariffSource := icegate.NewClient(&cfg.ICEGate, zlog.Named("icegate"))
	hsnSearcher := hsnsearch.NewClient(&cfg.HSNSearch, zlog.Named("hsnsearch"))

	// Initialize services
	tariffSvc := service.NewTariffService(tariffSource, cfg.ICEGate.Countries, cfg.Lookup, zlog.Named("tariff"))
	hsnSvc := service.NewHSNService(hsnSearcher)

	// Initialize handlers
	tariffH := handler.NewTariffHandler(tariffSvc, cfg.Lookup)
	hsnH := handler.NewHSNHandler(hsnSvc)
	healthH := handler.NewHealthHandler(tariffSvc)

	r := router.Setup(zlog, cfg.CORS.AllowedOrigins, tariffH, hsnH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("environment", cfg.Server.Environment),
			zap.Int("countries", len(tariffSvc.Countries())))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zlog.Info("shutting down, waiting for in-flight requests")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	zlog.Info("shutdown complete")
	return nil
}
