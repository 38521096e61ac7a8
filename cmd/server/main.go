package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aurafashions/server/docs"
	"github.com/aurafashions/server/internal/auth"
	"github.com/aurafashions/server/internal/config"
	"github.com/aurafashions/server/internal/logger"
)

// @title AuraFashions API
// @version 1.0
// @description E-commerce API for AuraFashions - T-Shirts & Hoodies
// @description
// @description Features:
// @description - Google sign-in (ID tokens, Firebase tokens and access tokens)
// @description - Product catalog with size/color variants
// @description - Order placement with stock tracking

// @contact.name API Support
// @contact.url https://aurafashions.in

// @host api.aurafashions.in

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token for authenticated requests. Format: Bearer {token}

func main() {
	logger.Info("starting aurafashions server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	if cfg.DevMode {
		logger.Warn("dev mode enabled: token verification is bypassed")
	}

	// initialize the OAuth redirect flow provider
	if err := auth.InitializeProviders(cfg); err != nil {
		logger.Fatal("failed to initialize OAuth providers", "error", err)
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// close database connection
	srv.db.Close()

	logger.Info("server stopped")
}
