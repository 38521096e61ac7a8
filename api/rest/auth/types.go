package auth

import "github.com/aurafashions/server/aura/users"

// GoogleAuthRequest carries the third-party token to verify
type GoogleAuthRequest struct {
	Token string `json:"token" binding:"required"`
}

// DevLoginRequest for the development-only login endpoint; all fields have
// defaults
type DevLoginRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// TokenResponse returned after successful authentication
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        *users.User `json:"user"`
}

// UserResponse wraps user data
type UserResponse struct {
	User *users.User `json:"user"`
}

// DevModeResponse reports whether dev mode is enabled
type DevModeResponse struct {
	DevMode bool `json:"dev_mode"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
