package main

import (
	"github.com/aurafashions/server/aura/orders"
	"github.com/aurafashions/server/aura/products"
	"github.com/aurafashions/server/aura/users"
	"github.com/aurafashions/server/internal/auth"
	"github.com/aurafashions/server/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	userRepo    *users.Repository
	productRepo *products.Repository
	orderRepo   *orders.Repository
	verifier    *auth.Verifier
	issuer      *auth.Issuer
	validator   *auth.Validator
	router      *gin.Engine
}
