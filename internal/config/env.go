package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// Google's JWKS endpoint for OAuth ID tokens
	googleCertsURL = "https://www.googleapis.com/oauth2/v3/certs"

	// JWKS endpoint for Firebase-issued (secure token) credentials
	firebaseCertsURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

	// userinfo endpoint used to introspect opaque access tokens
	defaultUserinfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

	defaultSessionLifetimeMinutes = 30
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	sessionSecret := os.Getenv("SESSION_SECRET")
	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	googleClientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	firebaseProjectID := os.Getenv("FIREBASE_PROJECT_ID")
	baseURL := os.Getenv("BASE_URL")
	frontendURL := os.Getenv("FRONTEND_URL")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	devMode := false
	if raw := os.Getenv("DEV_MODE"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid DEV_MODE value %q: %w", raw, err)
		}
		devMode = parsed
	}

	if googleClientID == "" && !devMode {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID environment variable is required unless DEV_MODE is enabled")
	}

	lifetimeMinutes := defaultSessionLifetimeMinutes
	if raw := os.Getenv("SESSION_LIFETIME_MINUTES"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid SESSION_LIFETIME_MINUTES value %q", raw)
		}
		lifetimeMinutes = parsed
	}

	if environment == "" {
		environment = "development"
	}

	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}

	if port == "" {
		port = "8080"
	}

	return &Config{
		DatabaseURL:        databaseURL,
		SessionSecret:      sessionSecret,
		SessionLifetime:    time.Duration(lifetimeMinutes) * time.Minute,
		GoogleClientID:     googleClientID,
		GoogleClientSecret: googleClientSecret,
		FirebaseProjectID:  firebaseProjectID,
		CertificateSources: buildCertificateSources(googleClientID, firebaseProjectID),
		UserinfoURL:        defaultUserinfoURL,
		DevMode:            devMode,
		BaseURL:            baseURL,
		FrontendURL:        frontendURL,
		Environment:        environment,
		Port:               port,
	}, nil
}

// assembles the ordered list of trust domains consulted by the token
// verifier. Order matters: the primary OAuth domain is tried before the
// Firebase token-exchange domain.
func buildCertificateSources(googleClientID, firebaseProjectID string) []CertificateSource {
	var sources []CertificateSource

	if googleClientID != "" {
		sources = append(sources, CertificateSource{
			Name:      "google",
			URL:       googleCertsURL,
			Issuers:   []string{"accounts.google.com", "https://accounts.google.com"},
			Audiences: []string{googleClientID},
		})
	}

	if firebaseProjectID != "" {
		sources = append(sources, CertificateSource{
			Name:      "firebase",
			URL:       firebaseCertsURL,
			Issuers:   []string{"https://securetoken.google.com/" + firebaseProjectID},
			Audiences: []string{firebaseProjectID},
		})
	}

	return sources
}
