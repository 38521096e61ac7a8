package main

import (
	"time"

	"github.com/aurafashions/server/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// configures CORS for the web frontend
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins: []string{
			cfg.FrontendURL,
			"http://localhost:5173",
			"http://localhost:3000",
			"https://aurafashions.in",
			"https://www.aurafashions.in",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	return cors.New(corsConfig)
}

// builds a per-IP rate limit middleware from a formatted rate such as "20-M"
func RateLimitMiddleware(formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate)), nil
}
