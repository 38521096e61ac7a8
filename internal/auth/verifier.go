package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/aurafashions/server/internal/config"
	"github.com/aurafashions/server/internal/logger"
	"github.com/lestrrat-go/jwx/jwt"
)

// ErrUnauthorized is the only verification error that crosses the component
// boundary. Per-strategy failures are absorbed so callers cannot probe which
// strategy almost worked.
var ErrUnauthorized = errors.New("token verification failed")

// a single unreachable certificate source must not stall the whole attempt
const strategyTimeout = 5 * time.Second

// one verification attempt against one trust scheme
type strategy struct {
	name    string
	attempt func(ctx context.Context, token string) (*Identity, error)
}

// Verifier classifies and validates an opaque bearer token against an
// ordered list of trust schemes: one signed-token strategy per configured
// certificate source, then the userinfo introspection fallback. First
// success wins.
type Verifier struct {
	strategies []strategy
}

// builds a verifier from the configured certificate sources. The userinfo
// fallback always runs last, even for tokens whose audience matched no
// source: opaque access tokens carry no readable claims at all.
func NewVerifier(sources []config.CertificateSource, userinfoURL string, certs *CertClient) *Verifier {
	strategies := make([]strategy, 0, len(sources)+1)

	for _, src := range sources {
		strategies = append(strategies, strategy{
			name:    "signed:" + src.Name,
			attempt: signedTokenStrategy(src, certs),
		})
	}

	strategies = append(strategies, strategy{
		name:    "userinfo",
		attempt: userinfoStrategy(userinfoURL, certs),
	})

	return &Verifier{strategies: strategies}
}

// runs the strategies in order and returns the first identity produced.
// Individual failures are logged at debug level and otherwise discarded;
// when every strategy fails the caller sees ErrUnauthorized and nothing else.
func (v *Verifier) Verify(ctx context.Context, token string) (*Identity, error) {
	for _, s := range v.strategies {
		attemptCtx, cancel := context.WithTimeout(ctx, strategyTimeout)
		identity, err := s.attempt(attemptCtx, token)
		cancel()

		if err != nil {
			logger.Debug("verification strategy failed", "strategy", s.name, "error", err)
			continue
		}

		identity.normalize()
		return identity, nil
	}

	return nil, ErrUnauthorized
}

// verifies a self-contained signed token against one certificate source.
// The audience claim is read without signature verification first, purely to
// decide whether this source should be consulted at all; it feeds no
// authorization decision.
func signedTokenStrategy(src config.CertificateSource, certs *CertClient) func(context.Context, string) (*Identity, error) {
	return func(ctx context.Context, token string) (*Identity, error) {
		audiences, err := unverifiedAudience(token)
		if err != nil {
			return nil, fmt.Errorf("not a parseable signed token: %w", err)
		}

		matched := firstAcceptedAudience(audiences, src.Audiences)
		if matched == "" {
			return nil, fmt.Errorf("token audience not accepted by source %q", src.Name)
		}

		set, err := certs.FetchKeySet(ctx, src.URL)
		if err != nil {
			return nil, err
		}

		verified, err := jwt.Parse(
			[]byte(token),
			jwt.WithKeySet(set),
			jwt.WithValidate(true),
			jwt.WithAudience(matched),
		)
		if err != nil {
			return nil, fmt.Errorf("signature verification against source %q failed: %w", src.Name, err)
		}

		if !slices.Contains(src.Issuers, verified.Issuer()) {
			return nil, fmt.Errorf("unexpected issuer %q for source %q", verified.Issuer(), src.Name)
		}

		return identityFromClaims(verified)
	}
}

// delegates trust entirely to the remote userinfo endpoint; used for opaque
// access tokens that carry no independently checkable signature
func userinfoStrategy(userinfoURL string, certs *CertClient) func(context.Context, string) (*Identity, error) {
	return func(ctx context.Context, token string) (*Identity, error) {
		identity, err := certs.Userinfo(ctx, userinfoURL, token)
		if err != nil {
			return nil, err
		}

		if identity.Email == "" {
			return nil, errors.New("userinfo response carries no email")
		}

		return identity, nil
	}
}

// reads the audience claim without verifying the signature. Routing only.
func unverifiedAudience(token string) ([]string, error) {
	parsed, err := jwt.Parse([]byte(token))
	if err != nil {
		return nil, err
	}

	return parsed.Audience(), nil
}

func firstAcceptedAudience(tokenAudiences, accepted []string) string {
	for _, aud := range tokenAudiences {
		if slices.Contains(accepted, aud) {
			return aud
		}
	}

	return ""
}

// extracts the canonical identity fields from verified claims. A token
// without an email is a verification failure, not a partial success.
func identityFromClaims(token jwt.Token) (*Identity, error) {
	email := stringClaim(token, "email")
	if email == "" {
		return nil, errors.New("verified token carries no email claim")
	}

	return &Identity{
		Email:   email,
		Name:    stringClaim(token, "name"),
		Picture: stringClaim(token, "picture"),
		Subject: token.Subject(),
	}, nil
}

func stringClaim(token jwt.Token, name string) string {
	raw, ok := token.Get(name)
	if !ok {
		return ""
	}

	value, ok := raw.(string)
	if !ok {
		return ""
	}

	return value
}
