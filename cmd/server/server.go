package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aurafashions/server/aura/orders"
	"github.com/aurafashions/server/aura/products"
	"github.com/aurafashions/server/aura/users"
	"github.com/aurafashions/server/internal/auth"
	"github.com/aurafashions/server/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// modest pool; this service is not on a hot path
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	userRepo := users.NewRepository(db)
	productRepo := products.NewRepository(db)
	orderRepo := orders.NewRepository(db)

	certClient := auth.NewCertClient()
	verifier := auth.NewVerifier(cfg.CertificateSources, cfg.UserinfoURL, certClient)
	issuer := auth.NewIssuer(userRepo, cfg.SessionSecret, cfg.SessionLifetime)
	validator := auth.NewValidator(userRepo, cfg.SessionSecret)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		db:          db,
		config:      cfg,
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		verifier:    verifier,
		issuer:      issuer,
		validator:   validator,
		router:      router,
	}

	if err := RegisterRoutes(router, server); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to register routes: %w", err)
	}

	return server, nil
}
