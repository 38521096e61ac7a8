package main

import (
	"context"
	"flag"

	"github.com/aurafashions/server/internal/config"
	"github.com/aurafashions/server/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seeds the database with the sample catalog. Run once after provisioning:
//
//	seeder [--clear]
func main() {
	clearFlag := flag.Bool("clear", false, "clear existing products before seeding")
	flag.Parse()

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	ctx := context.Background()

	db, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("connected to database")

	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		logger.Fatal("failed to create schema", "error", err)
	}

	logger.Info("schema ready")

	if err := SeedProducts(ctx, db, *clearFlag); err != nil {
		logger.Fatal("failed to seed products", "error", err)
	}
}
