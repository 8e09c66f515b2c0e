package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"forex-dashboard/internal/logger"
	"forex-dashboard/internal/scheduler"
	"forex-dashboard/internal/server"
	"forex-dashboard/internal/store"
	"forex-dashboard/internal/trace"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := initializeSystem(); err != nil {
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = trace.Shutdown(shutdownCtx)
		_ = logger.Shutdown(shutdownCtx)
	}()

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}

	settings, err := store.OpenSettings(cfg.SettingsPath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to open settings", err)
		os.Exit(1)
	}

	comps, err := initializeComponents(ctx, cfg, settings)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to initialize components", err)
		os.Exit(1)
	}

	sched := scheduler.New(comps.news, comps.calendar, settings)
	if err := sched.Start(); err != nil {
		logger.ErrorWithErr(ctx, "Failed to start scheduler", err)
		os.Exit(1)
	}
	defer sched.Stop()

	e := echo.New()
	e.HideBanner = true
	handler := server.NewHandler(comps.news, comps.market, comps.calendar, comps.panels, comps.clock, comps.classifier, settings)
	server.SetupRoutes(e, handler)

	go func() {
		logger.Info(ctx, "Dashboard started", "addr", cfg.Server.Addr)
		if err := e.Start(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
			logger.ErrorWithErr(ctx, "Server stopped", err)
			cancel()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigc:
		logger.Info(ctx, "Shutting down...")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithErr(ctx, "Server shutdown failed", err)
	}
}
