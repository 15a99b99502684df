package auth

import (
	"context"
	"fmt"
	"testing"

	pkgauth "github.com/brasadourada/brasa-backend/pkg/auth"
	"github.com/brasadourada/brasa-backend/pkg/auth/session"
	"github.com/brasadourada/brasa-backend/pkg/config"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"

	"github.com/brasadourada/brasa-backend/internal/users"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubSessions struct {
	refreshByID map[string]string
	revoked     []string
}

func newStubSessions() *stubSessions {
	return &stubSessions{refreshByID: map[string]string{}}
}

func (s *stubSessions) Generate(_ context.Context, accessID string) (string, error) {
	token := uuid.NewString()
	s.refreshByID[accessID] = token
	return token, nil
}

func (s *stubSessions) Rotate(_ context.Context, oldAccessID, provided string) (string, string, error) {
	stored, ok := s.refreshByID[oldAccessID]
	if !ok || stored != provided {
		return "", "", session.ErrInvalidRefreshToken
	}
	delete(s.refreshByID, oldAccessID)
	newID := uuid.NewString()
	newToken := uuid.NewString()
	s.refreshByID[newID] = newToken
	return newID, newToken, nil
}

func (s *stubSessions) Revoke(_ context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	delete(s.refreshByID, accessID)
	return nil
}

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:users_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  phone TEXT,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'customer',
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)
	return db
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "brasa-test",
		ExpirationMinutes: 15,
	}
}

func newAuthService(t *testing.T) (Service, *stubSessions) {
	t.Helper()
	repo := users.NewRepository(setupUsersTestDB(t))
	sessions := newStubSessions()
	svc, err := NewService(repo, sessions, testJWTConfig(), config.PasswordConfig{})
	require.NoError(t, err)
	return svc, sessions
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:     "Clara Mendes",
		Email:    fmt.Sprintf("clara_%s@example.com", uuid.NewString()),
		Password: "correct-horse",
	}
}

func TestRegister_CreatesCustomerWithSession(t *testing.T) {
	svc, sessions := newAuthService(t)

	result, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)
	assert.Equal(t, "customer", result.User.Role)
	assert.NotEmpty(t, result.Session.RefreshToken)
	assert.Len(t, sessions.refreshByID, 1)

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), result.Session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	input := validRegisterInput()
	_, err := svc.Register(ctx, input)
	require.NoError(t, err)

	_, err = svc.Register(ctx, input)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestRegister_ValidatesPayload(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "C",
		Email:    "not-an-email",
		Password: "short",
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Len(t, details, 3)
}

func TestLogin_RoundtripAndBadPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	input := validRegisterInput()
	_, err := svc.Register(ctx, input)
	require.NoError(t, err)

	result, err := svc.Login(ctx, LoginInput{Email: input.Email, Password: input.Password})
	require.NoError(t, err)
	assert.NotNil(t, result.User.LastLoginAt)

	_, err = svc.Login(ctx, LoginInput{Email: input.Email, Password: "wrong-password"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())

	// unknown email reads the same as a bad password
	_, err = svc.Login(ctx, LoginInput{Email: "ghost@example.com", Password: input.Password})
	require.Error(t, err)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
}

func TestRefresh_RotatesSession(t *testing.T) {
	svc, sessions := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, registered.Session.AccessToken, registered.Session.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, registered.Session.RefreshToken, refreshed.Session.RefreshToken)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)

	// the old refresh token is burned after rotation
	_, err = svc.Refresh(ctx, registered.Session.AccessToken, registered.Session.RefreshToken)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())

	assert.Len(t, sessions.refreshByID, 1)
}

func TestLogout_RevokesSession(t *testing.T) {
	svc, sessions := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), registered.Session.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.ID))
	assert.Equal(t, []string{claims.ID}, sessions.revoked)
	assert.Empty(t, sessions.refreshByID)
}
