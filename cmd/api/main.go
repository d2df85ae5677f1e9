package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/resumeai/platform/internal/adapters/builder"
	"github.com/resumeai/platform/internal/adapters/docker"
	"github.com/resumeai/platform/internal/adapters/extract"
	"github.com/resumeai/platform/internal/adapters/gemini"
	httpadapter "github.com/resumeai/platform/internal/adapters/http"
	"github.com/resumeai/platform/internal/adapters/store"
	"github.com/resumeai/platform/internal/config"
	"github.com/resumeai/platform/internal/core/domain"
)

func main() {
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// 1. Initialize Adapters (Infrastructure)
	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	dockerAdapter, err := docker.NewAdapter()
	if err != nil {
		log.Fatalf("Failed to initialize Docker adapter: %v", err)
	}

	builderAdapter, err := builder.NewAdapter()
	if err != nil {
		log.Fatalf("Failed to initialize builder adapter: %v", err)
	}

	chatModel, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}

	imageSpec := domain.ImageSpec{
		BaseImage:  cfg.BaseImage,
		PipVersion: cfg.PipVersion,
		Port:       cfg.StreamlitPort,
	}

	// 2. Initialize HTTP Handlers (Interface Adapters)
	assistantHandler := httpadapter.NewAssistantHandler(db, extract.NewExtractor(), chatModel, cfg.MemoryTurns, cfg.MaxUploadBytes)
	containerHandler := httpadapter.NewContainerHandler(dockerAdapter, builderAdapter, db, imageSpec)
	proxyHandler := httpadapter.NewProxyHandler(dockerAdapter)

	// 3. Setup Framework (Fiber)
	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxUploadBytes),
	})

	// 4. Define Routes
	// Subdomain requests go to the deployed app containers; everything else
	// falls through to the API.
	app.Use(proxyHandler.ProxyRequest)
	httpadapter.RegisterRoutes(app, assistantHandler, containerHandler)

	// 5. Start Server
	go func() {
		slog.Info("server starting", "port", cfg.HTTPPort)
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
