package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aurafashions/server/internal/config"
	"github.com/lestrrat-go/jwx/jwa"
	"github.com/lestrrat-go/jwx/jwk"
	"github.com/lestrrat-go/jwx/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a signing key pair plus the JWKS endpoint that publishes its public half
type testKeySource struct {
	key    jwk.Key
	server *httptest.Server
}

func newTestKeySource(t *testing.T, kid string) *testKeySource {
	t.Helper()

	raw, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	key, err := jwk.New(raw)
	require.NoError(t, err)
	require.NoError(t, key.Set(jwk.KeyIDKey, kid))
	require.NoError(t, key.Set(jwk.AlgorithmKey, jwa.RS256))

	public, err := jwk.New(raw.PublicKey)
	require.NoError(t, err)
	require.NoError(t, public.Set(jwk.KeyIDKey, kid))
	require.NoError(t, public.Set(jwk.AlgorithmKey, jwa.RS256))

	set := jwk.NewSet()
	set.Add(public)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(set) //nolint:errcheck // test server
	}))
	t.Cleanup(server.Close)

	return &testKeySource{key: key, server: server}
}

// signs an ID-token-shaped JWT with the source's private key
func (s *testKeySource) signToken(t *testing.T, issuer, audience string, claims map[string]any) string {
	t.Helper()

	token := jwt.New()
	require.NoError(t, token.Set(jwt.IssuerKey, issuer))
	require.NoError(t, token.Set(jwt.AudienceKey, audience))
	require.NoError(t, token.Set(jwt.SubjectKey, "provider-sub-1"))
	require.NoError(t, token.Set(jwt.IssuedAtKey, time.Now()))
	require.NoError(t, token.Set(jwt.ExpirationKey, time.Now().Add(time.Hour)))

	for name, value := range claims {
		require.NoError(t, token.Set(name, value))
	}

	signed, err := jwt.Sign(token, jwa.RS256, s.key)
	require.NoError(t, err)

	return string(signed)
}

// userinfo endpoint that accepts exactly one bearer token
func newUserinfoServer(t *testing.T, acceptedToken string, identity Identity) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+acceptedToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(identity) //nolint:errcheck // test server
	}))
	t.Cleanup(server.Close)

	return server
}

func googleSource(jwksURL string) config.CertificateSource {
	return config.CertificateSource{
		Name:      "google",
		URL:       jwksURL,
		Issuers:   []string{"accounts.google.com", "https://accounts.google.com"},
		Audiences: []string{"test-client-id"},
	}
}

func TestVerify_ValidIDToken(t *testing.T) {
	source := newTestKeySource(t, "google-kid")
	userinfo := newUserinfoServer(t, "never-used", Identity{})

	token := source.signToken(t, "accounts.google.com", "test-client-id", map[string]any{
		"email":   "ada@example.com",
		"name":    "Ada Lovelace",
		"picture": "https://example.com/ada.png",
	})

	verifier := NewVerifier([]config.CertificateSource{googleSource(source.server.URL)}, userinfo.URL, NewCertClient())

	identity, err := verifier.Verify(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.Equal(t, "Ada Lovelace", identity.Name)
	assert.Equal(t, "https://example.com/ada.png", identity.Picture)
	assert.Equal(t, "provider-sub-1", identity.Subject)
}

func TestVerify_AudienceRoutesBetweenSources(t *testing.T) {
	googleKeys := newTestKeySource(t, "google-kid")
	firebaseKeys := newTestKeySource(t, "firebase-kid")
	userinfo := newUserinfoServer(t, "never-used", Identity{})

	sources := []config.CertificateSource{
		googleSource(googleKeys.server.URL),
		{
			Name:      "firebase",
			URL:       firebaseKeys.server.URL,
			Issuers:   []string{"https://securetoken.google.com/test-project"},
			Audiences: []string{"test-project"},
		},
	}

	verifier := NewVerifier(sources, userinfo.URL, NewCertClient())

	// signed by the second source's key, addressed to its audience
	token := firebaseKeys.signToken(t, "https://securetoken.google.com/test-project", "test-project", map[string]any{
		"email": "ada@example.com",
	})

	identity, err := verifier.Verify(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", identity.Email)
}

func TestVerify_WrongKeyFailsSignature(t *testing.T) {
	trusted := newTestKeySource(t, "trusted-kid")
	rogue := newTestKeySource(t, "rogue-kid")
	userinfo := newUserinfoServer(t, "never-used", Identity{})

	// correct audience and issuer, but signed by a key the source never published
	token := rogue.signToken(t, "accounts.google.com", "test-client-id", map[string]any{
		"email": "mallory@example.com",
	})

	verifier := NewVerifier([]config.CertificateSource{googleSource(trusted.server.URL)}, userinfo.URL, NewCertClient())

	_, err := verifier.Verify(context.Background(), token)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_WrongIssuerRejected(t *testing.T) {
	source := newTestKeySource(t, "google-kid")
	userinfo := newUserinfoServer(t, "never-used", Identity{})

	token := source.signToken(t, "https://evil.example.com", "test-client-id", map[string]any{
		"email": "ada@example.com",
	})

	verifier := NewVerifier([]config.CertificateSource{googleSource(source.server.URL)}, userinfo.URL, NewCertClient())

	_, err := verifier.Verify(context.Background(), token)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_ExpiredTokenRejected(t *testing.T) {
	source := newTestKeySource(t, "google-kid")
	userinfo := newUserinfoServer(t, "never-used", Identity{})

	token := jwt.New()
	require.NoError(t, token.Set(jwt.IssuerKey, "accounts.google.com"))
	require.NoError(t, token.Set(jwt.AudienceKey, "test-client-id"))
	require.NoError(t, token.Set(jwt.ExpirationKey, time.Now().Add(-time.Hour)))
	require.NoError(t, token.Set("email", "ada@example.com"))

	signed, err := jwt.Sign(token, jwa.RS256, source.key)
	require.NoError(t, err)

	verifier := NewVerifier([]config.CertificateSource{googleSource(source.server.URL)}, userinfo.URL, NewCertClient())

	_, err = verifier.Verify(context.Background(), string(signed))

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_MissingEmailRejected(t *testing.T) {
	source := newTestKeySource(t, "google-kid")
	userinfo := newUserinfoServer(t, "never-used", Identity{})

	token := source.signToken(t, "accounts.google.com", "test-client-id", nil)

	verifier := NewVerifier([]config.CertificateSource{googleSource(source.server.URL)}, userinfo.URL, NewCertClient())

	_, err := verifier.Verify(context.Background(), token)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_OpaqueTokenFallsBackToUserinfo(t *testing.T) {
	source := newTestKeySource(t, "google-kid")
	userinfo := newUserinfoServer(t, "opaque-access-token", Identity{
		Email:   "ada@example.com",
		Name:    "Ada Lovelace",
		Subject: "provider-sub-1",
	})

	verifier := NewVerifier([]config.CertificateSource{googleSource(source.server.URL)}, userinfo.URL, NewCertClient())

	identity, err := verifier.Verify(context.Background(), "opaque-access-token")

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.Equal(t, "Ada Lovelace", identity.Name)
}

func TestVerify_UserinfoRejectionYieldsUnauthorized(t *testing.T) {
	source := newTestKeySource(t, "google-kid")
	userinfo := newUserinfoServer(t, "some-other-token", Identity{Email: "ada@example.com"})

	verifier := NewVerifier([]config.CertificateSource{googleSource(source.server.URL)}, userinfo.URL, NewCertClient())

	_, err := verifier.Verify(context.Background(), "rejected-token")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_UserinfoWithoutEmailRejected(t *testing.T) {
	source := newTestKeySource(t, "google-kid")
	userinfo := newUserinfoServer(t, "opaque-access-token", Identity{Name: "No Email"})

	verifier := NewVerifier([]config.CertificateSource{googleSource(source.server.URL)}, userinfo.URL, NewCertClient())

	_, err := verifier.Verify(context.Background(), "opaque-access-token")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_NameFallsBackToEmailLocalPart(t *testing.T) {
	source := newTestKeySource(t, "google-kid")
	userinfo := newUserinfoServer(t, "never-used", Identity{})

	token := source.signToken(t, "accounts.google.com", "test-client-id", map[string]any{
		"email": "grace@example.com",
	})

	verifier := NewVerifier([]config.CertificateSource{googleSource(source.server.URL)}, userinfo.URL, NewCertClient())

	identity, err := verifier.Verify(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "grace", identity.Name)
}
