package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/exemplo/crudmongo-api/internal/server"
	"github.com/exemplo/crudmongo-api/pkg/config"
	"github.com/exemplo/crudmongo-api/pkg/logger"
)

// @title Academic CRUD API
// @version 1.0.0
// @description CRUD endpoints for students, courses, disciplines, curricula and class sections
// @BasePath /api
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

	srv, err := server.New(context.Background(), cfg, logr)
	if err != nil {
		logr.Fatal("failed to initialise server", zap.Error(err))
	}

	if err := srv.Run(); err != nil {
		logr.Error("server exited with error", zap.Error(err))
	}
}
