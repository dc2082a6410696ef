package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-tracker/config"
	_ "todo-tracker/docs" // Swagger docs
	"todo-tracker/internal/httpserver"
	"todo-tracker/internal/middleware"
	"todo-tracker/internal/task/repository"
	fileRepo "todo-tracker/internal/task/repository/file"
	"todo-tracker/internal/task/usecase"
	"todo-tracker/pkg/datemath"
	"todo-tracker/pkg/log"
)

// @title       To-do Tracker API
// @description Personal task tracker with DD/MM/YYYY deadlines and flat-file persistence.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		OutputPaths:  cfg.Logger.OutputPaths,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting To-do Tracker API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task file: %s (autosave=%t)", cfg.Storage.Path, cfg.Storage.Autosave)

	// 3. Task domain
	repo := fileRepo.New(repository.FileOptions{Path: cfg.Storage.Path}, logger)
	taskUC := usecase.New(logger, repo, datemath.NewParser(nil), usecase.Options{
		Autosave: cfg.Storage.Autosave,
	})
	if err := taskUC.Load(ctx); err != nil {
		logger.Warnf(ctx, "Serving an empty task list, load failed: %v", err)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.RateLimit),
		TaskUseCase: taskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	// 6. Persist on the way out
	if err := taskUC.Save(context.Background()); err != nil {
		logger.Error(context.Background(), "Failed to save tasks on shutdown: ", err)
		os.Exit(1)
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
