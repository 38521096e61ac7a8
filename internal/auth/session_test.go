package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/aurafashions/server/aura/users"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// in-memory UserStore that counts writes
type fakeStore struct {
	byEmail map[string]*users.User
	nextID  int64
	upserts int
	updates int
}

func newFakeStore() *fakeStore {
	return &fakeStore{byEmail: map[string]*users.User{}, nextID: 1}
}

func (s *fakeStore) FindByEmail(_ context.Context, email string) (*users.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, users.ErrUserNotFound
	}

	copy := *user
	return &copy, nil
}

func (s *fakeStore) FindByID(_ context.Context, userID int64) (*users.User, error) {
	for _, user := range s.byEmail {
		if user.ID == userID {
			copy := *user
			return &copy, nil
		}
	}

	return nil, users.ErrUserNotFound
}

func (s *fakeStore) Upsert(_ context.Context, email, name string, picture *string, role string) (*users.User, error) {
	s.upserts++

	user := &users.User{
		ID:        s.nextID,
		Email:     email,
		Name:      name,
		Picture:   picture,
		Role:      role,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.byEmail[email] = user

	copy := *user
	return &copy, nil
}

func (s *fakeStore) UpdateProfile(_ context.Context, userID int64, name string, picture *string) (*users.User, error) {
	s.updates++

	for _, user := range s.byEmail {
		if user.ID == userID {
			user.Name = name
			user.Picture = picture

			copy := *user
			return &copy, nil
		}
	}

	return nil, users.ErrUserNotFound
}

func (s *fakeStore) PromoteToAdmin(_ context.Context, userID int64) (*users.User, error) {
	for _, user := range s.byEmail {
		if user.ID == userID {
			user.Role = users.RoleAdmin

			copy := *user
			return &copy, nil
		}
	}

	return nil, users.ErrUserNotFound
}

const testSecret = "test-secret-key-for-testing"

func TestIssue_CreatesNewUser(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, testSecret, 30*time.Minute)

	token, user, err := issuer.Issue(context.Background(), &Identity{
		Email:   "ada@example.com",
		Name:    "Ada Lovelace",
		Picture: "https://example.com/ada.png",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, users.RoleUser, user.Role)
	assert.Equal(t, 1, store.upserts)
}

func TestIssue_ExistingUserUnchangedProfileWritesNothing(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, testSecret, 30*time.Minute)

	identity := &Identity{Email: "ada@example.com", Name: "Ada Lovelace"}

	_, _, err := issuer.Issue(context.Background(), identity)
	require.NoError(t, err)

	_, user, err := issuer.Issue(context.Background(), identity)
	require.NoError(t, err)

	assert.Equal(t, 1, store.upserts, "second login must not create again")
	assert.Equal(t, 0, store.updates, "unchanged profile must not be rewritten")
	assert.Equal(t, users.RoleUser, user.Role)
}

func TestIssue_RefreshesChangedProfile(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, testSecret, 30*time.Minute)

	_, _, err := issuer.Issue(context.Background(), &Identity{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	_, user, err := issuer.Issue(context.Background(), &Identity{Email: "ada@example.com", Name: "Ada Lovelace"})
	require.NoError(t, err)

	assert.Equal(t, 1, store.updates)
	assert.Equal(t, "Ada Lovelace", user.Name)
}

func TestIssue_PreservesExistingRole(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, testSecret, 30*time.Minute)

	admin, err := store.Upsert(context.Background(), "root@example.com", "Root", nil, users.RoleAdmin)
	require.NoError(t, err)
	require.True(t, admin.IsAdmin())

	_, user, err := issuer.Issue(context.Background(), &Identity{Email: "root@example.com", Name: "Root"})
	require.NoError(t, err)

	assert.Equal(t, users.RoleAdmin, user.Role, "regular login must not demote an admin")
}

func TestIssue_EmptyEmailRejected(t *testing.T) {
	issuer := NewIssuer(newFakeStore(), testSecret, 30*time.Minute)

	_, _, err := issuer.Issue(context.Background(), &Identity{Name: "No Email"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestIssue_NameFallsBackToLocalPart(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, testSecret, 30*time.Minute)

	_, user, err := issuer.Issue(context.Background(), &Identity{Email: "grace@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "grace", user.Name)
}

func TestIssueDev_DefaultsAndAdminRole(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, testSecret, 30*time.Minute)

	token, user, err := issuer.IssueDev(context.Background(), "", "", true)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, DevEmail, user.Email)
	assert.Equal(t, DevName, user.Name)
	assert.Equal(t, users.RoleAdmin, user.Role)
}

func TestIssueDev_PromotesExistingUser(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, testSecret, 30*time.Minute)

	_, _, err := issuer.IssueDev(context.Background(), "dev@example.com", "Dev", false)
	require.NoError(t, err)

	_, user, err := issuer.IssueDev(context.Background(), "dev@example.com", "Dev", true)
	require.NoError(t, err)

	assert.Equal(t, users.RoleAdmin, user.Role)
}

func TestIssueDev_NeverDemotes(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, testSecret, 30*time.Minute)

	_, _, err := issuer.IssueDev(context.Background(), "dev@example.com", "Dev", true)
	require.NoError(t, err)

	_, user, err := issuer.IssueDev(context.Background(), "dev@example.com", "Dev", false)
	require.NoError(t, err)

	assert.Equal(t, users.RoleAdmin, user.Role, "a later non-admin dev login must not demote")
}

func TestParseClaims_RoundTrip(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, testSecret, 30*time.Minute)
	validator := NewValidator(store, testSecret)

	token, user, err := issuer.Issue(context.Background(), &Identity{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	claims, err := validator.ParseClaims(token)

	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, users.RoleUser, claims.Role)
	assert.Equal(t, strconv.FormatInt(user.ID, 10), claims.Subject)
}

func TestParseClaims_ExpiredToken(t *testing.T) {
	validator := NewValidator(newFakeStore(), testSecret)

	claims := Claims{
		UserID: 1,
		Email:  "ada@example.com",
		Role:   users.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = validator.ParseClaims(signed)

	assert.Error(t, err, "expired token must be rejected")
}

func TestParseClaims_TamperedToken(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, testSecret, 30*time.Minute)
	validator := NewValidator(store, testSecret)

	token, _, err := issuer.Issue(context.Background(), &Identity{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	tampered := token[:len(token)-5] + "XXXXX"

	_, err = validator.ParseClaims(tampered)
	assert.Error(t, err)
}

func TestParseClaims_WrongSecret(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, testSecret, 30*time.Minute)
	validator := NewValidator(store, "a-different-secret")

	token, _, err := issuer.Issue(context.Background(), &Identity{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	_, err = validator.ParseClaims(token)
	assert.Error(t, err)
}

func TestParseClaims_RejectsUnsignedToken(t *testing.T) {
	validator := NewValidator(newFakeStore(), testSecret)

	claims := Claims{
		UserID: 1,
		Email:  "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = validator.ParseClaims(unsigned)
	assert.Error(t, err, "alg=none must be rejected")
}

func TestResolveUser_LoadsAssertedUser(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, testSecret, 30*time.Minute)
	validator := NewValidator(store, testSecret)

	token, issued, err := issuer.Issue(context.Background(), &Identity{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	user, err := validator.ResolveUser(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, issued.ID, user.ID)
	assert.Equal(t, issued.Email, user.Email)
}

func TestResolveUser_DanglingUser(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, testSecret, 30*time.Minute)
	validator := NewValidator(store, testSecret)

	token, user, err := issuer.Issue(context.Background(), &Identity{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	delete(store.byEmail, user.Email)

	_, err = validator.ResolveUser(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveUser_GarbageToken(t *testing.T) {
	validator := NewValidator(newFakeStore(), testSecret)

	_, err := validator.ResolveUser(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, ErrUnauthorized)
}
