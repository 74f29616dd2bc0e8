package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-extraction/config"
	_ "task-extraction/docs" // Swagger docs
	"task-extraction/internal/extractor"
	"task-extraction/internal/httpserver"
	taskHTTP "task-extraction/internal/task/delivery/http"
	memoryRepo "task-extraction/internal/task/repository/memory"
	"task-extraction/internal/task/usecase"
	"task-extraction/internal/webhook"
	"task-extraction/pkg/log"
)

// @title       Task Extraction API
// @description Deterministic task extraction from call and space summaries.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Extraction service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Extraction engine
	ext, err := extractor.New(cfg.Extractor.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Extractor.Timezone, err)
		ext, _ = extractor.New("UTC")
	}

	// 4. Task domain
	taskRepo := memoryRepo.New(logger)
	taskUC := usecase.New(logger, ext, taskRepo)
	taskHandler := taskHTTP.New(logger, taskUC)

	// 5. Webhook ingress (optional)
	var webhookHandler *webhook.Handler
	if cfg.Webhook.Enabled {
		webhookHandler = webhook.NewHandler(taskUC, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)
		logger.Info(ctx, "Summary webhook ingress enabled")
	} else {
		logger.Info(ctx, "Summary webhook ingress disabled")
	}

	// 6. HTTP Server
	serverCfg := httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		TaskHandler: taskHandler,
	}
	if webhookHandler != nil {
		serverCfg.WebhookHandler = webhookHandler
	}

	httpServer, err := httpserver.New(logger, serverCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
