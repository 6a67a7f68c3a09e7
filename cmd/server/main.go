// Package main initializes and starts the slides API server, setting up
// configuration, logging, the database, repositories, services,
// handlers, and graceful shutdown.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/config"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/db"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/gemini"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/logger"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/repository"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/server/handler/http"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT_SECRET is required")
	}

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Remove presentations that were created but never filled in.
	db.StartDraftCleaner(context.Background(), postgresDB,
		time.Hour,       // interval
		30*24*time.Hour, // retention: 30 days
		zapLogger,
	)

	// Generative model client.
	model, err := gemini.NewClient(context.Background(), options.GeminiAPIKey, options.GeminiModel)
	if err != nil {
		zapLogger.Fatal("cannot init gemini client", zap.Error(err))
	}

	// Repositories.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	presentationRepo := repository.NewPostgresPresentationRepository(postgresDB)

	// Business-logic services.
	tokenTTL := time.Duration(options.JWTTTLHours) * time.Hour
	authService := service.NewAuthService(userRepo, []byte(options.JWTSecret), tokenTTL)
	presentationService := service.NewPresentationService(presentationRepo)
	generatorService := service.NewGeneratorService(presentationRepo, model, zapLogger)

	// HTTP handlers and router.
	authHandler := http.NewAuthHandler(authService, tokenTTL, zapLogger)
	presentationHandler := http.NewPresentationHandler(presentationService, generatorService, zapLogger)
	router := http.NewRouter(authHandler, presentationHandler, []byte(options.JWTSecret), zapLogger)

	server := &nethttp.Server{
		Addr:    options.Port,
		Handler: router,
	}

	// Shut down cleanly on SIGINT/SIGTERM.
	idle := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			zapLogger.Error("server shutdown failed", zap.Error(err))
		}
		close(idle)
	}()

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
	<-idle
	zapLogger.Info("server stopped")
}
