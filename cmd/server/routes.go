package main

import (
	authrest "github.com/aurafashions/server/api/rest/auth"
	"github.com/aurafashions/server/api/rest/health"
	ordersrest "github.com/aurafashions/server/api/rest/orders"
	productsrest "github.com/aurafashions/server/api/rest/products"
	"github.com/gin-gonic/gin"
)

// failed logins are cheap to retry; keep credential probing slow
const authRateLimit = "30-M"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	router.Use(CORSMiddleware(server.config))

	router.GET("/", health.RootHandler)
	router.GET("/health", health.Handler)

	root := router.Group("")

	authArea := root.Group("")

	rateLimit, err := RateLimitMiddleware(authRateLimit)
	if err != nil {
		return err
	}

	authArea.Use(rateLimit)
	authrest.RegisterRoutes(authArea, server.verifier, server.issuer, server.validator, server.config.DevMode)

	productsrest.RegisterRoutes(root, server.productRepo, server.validator)
	ordersrest.RegisterRoutes(root, server.orderRepo, server.validator)

	return nil
}
