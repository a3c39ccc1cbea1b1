package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yukikurage/assignment-tracker/internal/config"
	"github.com/yukikurage/assignment-tracker/internal/database"
	"github.com/yukikurage/assignment-tracker/internal/logger"
	"github.com/yukikurage/assignment-tracker/internal/metrics"
	"github.com/yukikurage/assignment-tracker/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Open(cfg.Database, logr)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}

	// Create schema if absent
	if err := database.Migrate(db, logr); err != nil {
		logr.Fatal("failed to run migrations", zap.Error(err))
	}

	if cfg.Database.SeedUsers {
		if _, err := database.Seed(db, logr); err != nil {
			logr.Fatal("failed to seed users", zap.Error(err))
		}
	}

	r := router.New(db, metrics.New(), logr)

	logr.Info("server starting", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
	if err := r.Run(cfg.Addr()); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}
