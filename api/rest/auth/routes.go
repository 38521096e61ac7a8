package auth

import (
	"github.com/aurafashions/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes
func RegisterRoutes(
	router *gin.RouterGroup,
	verifier *auth.Verifier,
	issuer *auth.Issuer,
	validator *auth.Validator,
	devMode bool,
) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/google", GoogleAuthHandler(verifier, issuer, devMode))
		authGroup.POST("/dev-login", DevLoginHandler(issuer, devMode))
		authGroup.GET("/dev-mode", DevModeHandler(devMode))
		authGroup.GET("/me", auth.Middleware(validator), MeHandler())

		// browser redirect flow
		authGroup.GET("/google/login", BeginGoogleHandler())
		authGroup.GET("/google/callback", GoogleCallbackHandler(issuer))
		authGroup.POST("/logout", LogoutHandler())
	}
}
