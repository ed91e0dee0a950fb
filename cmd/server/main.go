package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard-portal/config"
	"jobboard-portal/internal/database"
	"jobboard-portal/internal/server"
	"jobboard-portal/pkg/logger"

	"go.uber.org/zap"
)

// @title Job Board API
// @version 1.0
// @description REST API for browsing job postings and the company directory

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Cfg

	// Initialize logger
	if err := logger.Init(cfg); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting Job Board API",
		zap.String("version", "1.0.0"),
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("data_source", cfg.Data.Source),
	)

	snapshot, err := server.LoadSnapshot(cfg, logger.Named("data"))
	if err != nil {
		logger.Fatal("Failed to load job data", zap.Error(err))
	}

	srv := server.New(cfg, logger.Logger, snapshot)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Router,

		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,

		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("address", httpServer.Addr),
			zap.Int("jobs", snapshot.JobCount()),
			zap.Int("companies", snapshot.CompanyCount()),
		)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(); err != nil {
		logger.Error("Failed to close database connection", zap.Error(err))
	}

	logger.Info("Server shutdown complete")
}
