package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("DATABASE_URL", "postgres://localhost/aura_test")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "test-client-id")
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.SessionLifetime)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, defaultUserinfoURL, cfg.UserinfoURL)
	assert.False(t, cfg.DevMode)
}

func TestLoadEnvironmentVariables_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_SECRET", "test-secret")

	_, err := LoadEnvironmentVariables()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadEnvironmentVariables_MissingSessionSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/aura_test")
	t.Setenv("SESSION_SECRET", "")

	_, err := LoadEnvironmentVariables()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoadEnvironmentVariables_GoogleClientIDRequiredOutsideDevMode(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/aura_test")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "")

	_, err := LoadEnvironmentVariables()
	assert.Error(t, err)

	t.Setenv("DEV_MODE", "true")

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)
	assert.True(t, cfg.DevMode)
}

func TestLoadEnvironmentVariables_InvalidDevMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DEV_MODE", "maybe")

	_, err := LoadEnvironmentVariables()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DEV_MODE")
}

func TestLoadEnvironmentVariables_SessionLifetime(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_LIFETIME_MINUTES", "120")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.SessionLifetime)
}

func TestLoadEnvironmentVariables_RejectsNonPositiveLifetime(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_LIFETIME_MINUTES", "0")

	_, err := LoadEnvironmentVariables()

	assert.Error(t, err)
}

func TestBuildCertificateSources_GoogleOnly(t *testing.T) {
	sources := buildCertificateSources("client-id", "")

	require.Len(t, sources, 1)
	assert.Equal(t, "google", sources[0].Name)
	assert.Equal(t, googleCertsURL, sources[0].URL)
	assert.Contains(t, sources[0].Issuers, "accounts.google.com")
	assert.Contains(t, sources[0].Issuers, "https://accounts.google.com")
	assert.Equal(t, []string{"client-id"}, sources[0].Audiences)
}

func TestBuildCertificateSources_WithFirebase(t *testing.T) {
	sources := buildCertificateSources("client-id", "my-project")

	require.Len(t, sources, 2)
	assert.Equal(t, "google", sources[0].Name, "primary OAuth source comes first")
	assert.Equal(t, "firebase", sources[1].Name)
	assert.Equal(t, []string{"https://securetoken.google.com/my-project"}, sources[1].Issuers)
	assert.Equal(t, []string{"my-project"}, sources[1].Audiences)
}

func TestBuildCertificateSources_Empty(t *testing.T) {
	assert.Empty(t, buildCertificateSources("", ""))
}
