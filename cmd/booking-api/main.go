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
	"go.uber.org/zap"

	_ "github.com/noah-isme/course-booking-api/api/swagger"
	"github.com/noah-isme/course-booking-api/internal/router"
	"github.com/noah-isme/course-booking-api/internal/service"
	"github.com/noah-isme/course-booking-api/pkg/config"
	"github.com/noah-isme/course-booking-api/pkg/database"
	"github.com/noah-isme/course-booking-api/pkg/logger"
)

// @title Course Booking API
// @version 1.0.0
// @description Users, courses, availabilities, reservations and reviews.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(context.Background(), cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	r := router.New(cfg, logr, metrics, router.Wire(db, metrics, logr))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logr.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		logr.Error("server failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		logr.Error("closing database failed", zap.Error(err))
	}
	logr.Info("server stopped")
}
