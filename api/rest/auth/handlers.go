package auth

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/aurafashions/server/internal/auth"
	"github.com/aurafashions/server/internal/errors"
	"github.com/aurafashions/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

// GoogleAuthHandler godoc
// @Summary Authenticate with a Google token
// @Description Verifies a Google ID token, Firebase token or access token and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleAuthRequest true "Google token"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/google [post]
func GoogleAuthHandler(verifier *auth.Verifier, issuer *auth.Issuer, devMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GoogleAuthRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// dev mode accepts any token and signs in the dev admin
		if devMode {
			token, user, err := issuer.IssueDev(c.Request.Context(), auth.DevEmail, auth.DevName, true)
			if err != nil {
				errors.InternalError(c, "failed to issue session", err)
				return
			}

			c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer", User: user})
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), req.Token)
		if err != nil {
			// always a generic 401: which strategy failed is nobody's business
			errors.Unauthorized(c, "invalid google token")
			return
		}

		token, user, err := issuer.Issue(c.Request.Context(), identity)
		if err != nil {
			if stderrors.Is(err, auth.ErrUnauthorized) {
				errors.Unauthorized(c, "invalid google token")
				return
			}

			errors.InternalError(c, "failed to issue session", err)
			return
		}

		c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer", User: user})
	}
}

// DevLoginHandler godoc
// @Summary Development-only login
// @Description Issues a session without token verification. Only available when dev mode is enabled
// @Tags auth
// @Accept json
// @Produce json
// @Param request body DevLoginRequest false "Dev login options"
// @Success 200 {object} TokenResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /auth/dev-login [post]
func DevLoginHandler(issuer *auth.Issuer, devMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !devMode {
			errors.Forbidden(c, "dev login is only available in development mode")
			return
		}

		// body is optional; every field has a default
		var req DevLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
			errors.ValidationError(c, err)
			return
		}

		token, user, err := issuer.IssueDev(c.Request.Context(), req.Email, req.Name, req.IsAdmin)
		if err != nil {
			errors.InternalError(c, "failed to issue session", err)
			return
		}

		c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer", User: user})
	}
}

// MeHandler godoc
// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
// @Security BearerAuth
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

// DevModeHandler godoc
// @Summary Check dev mode
// @Tags auth
// @Produce json
// @Success 200 {object} DevModeResponse
// @Router /auth/dev-mode [get]
func DevModeHandler(devMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, DevModeResponse{DevMode: devMode})
	}
}

// BeginGoogleHandler godoc
// @Summary Start the Google OAuth redirect flow
// @Tags auth
// @Success 302 {string} string "Redirect to Google"
// @Router /auth/google/login [get]
func BeginGoogleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", "google")
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// GoogleCallbackHandler godoc
// @Summary Google OAuth callback
// @Description Completes the redirect flow and returns a session token
// @Tags auth
// @Produce json
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/google/callback [get]
func GoogleCallbackHandler(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		q.Add("provider", "google")
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			errors.Unauthorized(c, "authentication failed")
			return
		}

		identity := &auth.Identity{
			Email:   gothUser.Email,
			Name:    gothUser.Name,
			Picture: gothUser.AvatarURL,
			Subject: gothUser.UserID,
		}

		token, user, err := issuer.Issue(c.Request.Context(), identity)
		if err != nil {
			if stderrors.Is(err, auth.ErrUnauthorized) {
				errors.Unauthorized(c, "authentication failed")
				return
			}

			errors.InternalError(c, "failed to issue session", err)
			return
		}

		c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer", User: user})
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Clears the OAuth redirect session. Bearer session tokens simply expire
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to clear oauth session")
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}
