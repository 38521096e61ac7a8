package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aurafashions/server/aura/users"
	"github.com/golang-jwt/jwt/v5"
)

// identities used when development mode bypasses verification
const (
	DevEmail = "dev@aurafashions.com"
	DevName  = "Dev User"
)

// Claims carried by a locally-issued session credential
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// UserStore is the identity store consulted during issuance and validation.
// *users.Repository satisfies it; tests use an in-memory fake.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	FindByID(ctx context.Context, userID int64) (*users.User, error)
	Upsert(ctx context.Context, email, name string, picture *string, role string) (*users.User, error)
	UpdateProfile(ctx context.Context, userID int64, name string, picture *string) (*users.User, error)
	PromoteToAdmin(ctx context.Context, userID int64) (*users.User, error)
}

// Issuer exchanges a verified identity for a persisted user and a signed,
// time-bounded session credential. Sessions are stateless: nothing is
// persisted beyond the user row.
type Issuer struct {
	store    UserStore
	secret   []byte
	lifetime time.Duration
}

func NewIssuer(store UserStore, secret string, lifetime time.Duration) *Issuer {
	return &Issuer{
		store:    store,
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// Issue loads or creates the user for a verified identity and mints a
// session token. A new user gets the 'user' role; an existing user's role is
// never touched here, and name/picture are rewritten only when the provider
// reports different values (at most one store write per call).
func (i *Issuer) Issue(ctx context.Context, identity *Identity) (string, *users.User, error) {
	if identity == nil || identity.Email == "" {
		return "", nil, ErrUnauthorized
	}

	identity.normalize()
	picture := identity.picturePtr()

	user, err := i.store.FindByEmail(ctx, identity.Email)

	switch {
	case errors.Is(err, users.ErrUserNotFound):
		user, err = i.store.Upsert(ctx, identity.Email, identity.Name, picture, users.RoleUser)
		if err != nil {
			return "", nil, fmt.Errorf("failed to create user: %w", err)
		}

	case err != nil:
		return "", nil, fmt.Errorf("failed to look up user: %w", err)

	default:
		if user.Name != identity.Name || !equalPicture(user.Picture, picture) {
			user, err = i.store.UpdateProfile(ctx, user.ID, identity.Name, picture)
			if err != nil {
				return "", nil, fmt.Errorf("failed to refresh user profile: %w", err)
			}
		}
	}

	token, err := i.mint(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// IssueDev issues a session without any token verification, for the
// development-only login path. A missing user is created with the requested
// role; an existing user is promoted to admin when asked, never demoted.
func (i *Issuer) IssueDev(ctx context.Context, email, name string, isAdmin bool) (string, *users.User, error) {
	if email == "" {
		email = DevEmail
	}

	if name == "" {
		name = DevName
	}

	role := users.RoleUser
	if isAdmin {
		role = users.RoleAdmin
	}

	user, err := i.store.FindByEmail(ctx, email)

	switch {
	case errors.Is(err, users.ErrUserNotFound):
		user, err = i.store.Upsert(ctx, email, name, nil, role)
		if err != nil {
			return "", nil, fmt.Errorf("failed to create dev user: %w", err)
		}

	case err != nil:
		return "", nil, fmt.Errorf("failed to look up dev user: %w", err)

	default:
		if isAdmin && !user.IsAdmin() {
			user, err = i.store.PromoteToAdmin(ctx, user.ID)
			if err != nil {
				return "", nil, fmt.Errorf("failed to promote dev user: %w", err)
			}
		}
	}

	token, err := i.mint(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// creates a signed session token for the user
func (i *Issuer) mint(user *users.User) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Validator is the read side of session issuance: it checks the signature
// and expiry of a session credential and resolves the asserted user.
type Validator struct {
	store  UserStore
	secret []byte
}

func NewValidator(store UserStore, secret string) *Validator {
	return &Validator{store: store, secret: []byte(secret)}
}

// parses and verifies a session token, returning its claims
func (v *Validator) ParseClaims(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return v.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ResolveUser verifies the credential and loads the asserted user. A
// dangling user id is indistinguishable from a forged token at this
// boundary, so both come back as ErrUnauthorized.
func (v *Validator) ResolveUser(ctx context.Context, tokenString string) (*users.User, error) {
	claims, err := v.ParseClaims(tokenString)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := v.store.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	return user, nil
}

func equalPicture(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
