package auth

import (
	"net/http"
	"strings"

	"github.com/aurafashions/server/internal/config"
	"github.com/aurafashions/server/internal/logger"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
)

// sets up the Google OAuth provider for the browser redirect flow. The
// token-POST endpoint works without it, so missing credentials only disable
// the redirect routes.
func InitializeProviders(cfg *config.Config) error {
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		logger.Warn("google redirect flow disabled: GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET not configured")
		return nil
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	// cookie only needs to survive the OAuth redirect round trip
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300, // 5 minutes
		HttpOnly: true,
		Secure:   strings.HasPrefix(cfg.BaseURL, "https://"),
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	goth.UseProviders(google.New(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.BaseURL+"/auth/google/callback",
		"email", "profile",
	))

	return nil
}
