package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lestrrat-go/jwx/jwk"
	"golang.org/x/time/rate"
)

// CertClient performs the outbound Google calls for the token verifier:
// signing-key-set fetches and the userinfo introspection request. It holds no
// decision logic.
//
// Key sets are fetched per request (no certificate caching), so outbound
// fetches are throttled to keep an auth storm from hammering the endpoints.
type CertClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

const (
	certFetchRate  = 5  // sustained key-set fetches per second
	certFetchBurst = 10 // allowed burst before Wait blocks
)

// creates a client with sane timeouts and outbound throttling
func NewCertClient() *CertClient {
	return &CertClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(certFetchRate), certFetchBurst),
	}
}

// fetches the current signing-key set from a certificate source URL
func (c *CertClient) FetchKeySet(ctx context.Context, url string) (jwk.Set, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("key set fetch throttled: %w", err)
	}

	set, err := jwk.Fetch(ctx, url, jwk.WithHTTPClient(c.httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch key set from %s: %w", url, err)
	}

	return set, nil
}

// presents the token as a bearer credential to the userinfo endpoint. A
// non-200 response means the remote service rejected the token.
func (c *CertClient) Userinfo(ctx context.Context, userinfoURL, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}

	return &identity, nil
}
