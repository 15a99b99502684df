package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brasadourada/brasa-backend/internal/users"
	pkgauth "github.com/brasadourada/brasa-backend/pkg/auth"
	"github.com/brasadourada/brasa-backend/pkg/auth/session"
	"github.com/brasadourada/brasa-backend/pkg/config"
	"github.com/brasadourada/brasa-backend/pkg/db"
	"github.com/brasadourada/brasa-backend/pkg/db/models"
	"github.com/brasadourada/brasa-backend/pkg/enums"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/brasadourada/brasa-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const minPasswordLength = 8

// Service exposes account registration and session lifecycle operations.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResultDTO, error)
	Login(ctx context.Context, input LoginInput) (*AuthResultDTO, error)
	Refresh(ctx context.Context, staleAccessToken, refreshToken string) (*AuthResultDTO, error)
	Logout(ctx context.Context, accessID string) error
}

// RegisterInput holds the validated signup payload.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    *string
	Password string
}

// LoginInput holds the login form payload.
type LoginInput struct {
	Email    string
	Password string
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

type service struct {
	repo     *users.Repository
	sessions sessionManager
	jwtCfg   config.JWTConfig
	pwCfg    config.PasswordConfig
	now      func() time.Time
}

// NewService constructs an auth service instance.
func NewService(repo *users.Repository, sessions sessionManager, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	if jwtCfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret required")
	}
	return &service{
		repo:     repo,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		pwCfg:    pwCfg,
		now:      time.Now,
	}, nil
}

// Register creates a customer account and opens its first session.
func (s *service) Register(ctx context.Context, input RegisterInput) (*AuthResultDTO, error) {
	if err := validateRegister(input); err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(input.Password, s.pwCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        normalizeEmail(input.Email),
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         enums.AppRoleCustomer,
	}
	if _, err := s.repo.Create(ctx, user); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email is already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert user")
	}

	return s.openSession(ctx, user)
}

// Login verifies the credentials and opens a session. Unknown emails and bad
// passwords are indistinguishable to the caller.
func (s *service) Login(ctx context.Context, input LoginInput) (*AuthResultDTO, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: find user")
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	loginAt := s.now()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, loginAt); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: stamp last login")
	}
	user.LastLoginAt = &loginAt

	return s.openSession(ctx, user)
}

// Refresh rotates the refresh token and mints a fresh JWT for the same user.
// The stale access token identifies the session, its expiry is ignored.
func (s *service) Refresh(ctx context.Context, staleAccessToken, refreshToken string) (*AuthResultDTO, error) {
	claims, err := pkgauth.ParseExpiredAccessToken(s.jwtCfg, staleAccessToken)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session")
	}

	newAccessID, newRefresh, err := s.sessions.Rotate(ctx, claims.ID, refreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotate session")
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: find user")
	}

	access, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		JTI:    newAccessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	result := &AuthResultDTO{
		User: NewUserDTO(user),
		Session: SessionDTO{
			AccessToken:  access,
			RefreshToken: newRefresh,
		},
	}
	return result, nil
}

// Logout revokes the session so the refresh token can never be used again.
func (s *service) Logout(ctx context.Context, accessID string) error {
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

func (s *service) openSession(ctx context.Context, user *models.User) (*AuthResultDTO, error) {
	accessID := session.NewAccessID()
	refresh, err := s.sessions.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "open session")
	}

	access, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &AuthResultDTO{
		User: NewUserDTO(user),
		Session: SessionDTO{
			AccessToken:  access,
			RefreshToken: refresh,
		},
	}, nil
}

func validateRegister(input RegisterInput) error {
	details := map[string]string{}

	if len(strings.TrimSpace(input.Name)) < 2 {
		details["name"] = "must be at least 2 characters"
	}
	email := normalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		details["email"] = "must be a valid email address"
	}
	if len(input.Password) < minPasswordLength {
		details["password"] = "must be at least 8 characters"
	}

	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "registration payload is invalid").
			WithDetails(details)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
