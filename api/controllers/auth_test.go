package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	authsvc "github.com/brasadourada/brasa-backend/internal/auth"
	pkgauth "github.com/brasadourada/brasa-backend/pkg/auth"
	"github.com/brasadourada/brasa-backend/pkg/auth/session"
	"github.com/brasadourada/brasa-backend/pkg/config"
	"github.com/brasadourada/brasa-backend/pkg/enums"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResultDTO, error)
	loginFn    func(ctx context.Context, input authsvc.LoginInput) (*authsvc.AuthResultDTO, error)
	logoutFn   func(ctx context.Context, accessID string) error
}

func (s stubAuthService) Register(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResultDTO, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, input)
	}
	panic("unimplemented")
}

func (s stubAuthService) Login(ctx context.Context, input authsvc.LoginInput) (*authsvc.AuthResultDTO, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, input)
	}
	panic("unimplemented")
}

func (s stubAuthService) Refresh(ctx context.Context, staleAccessToken, refreshToken string) (*authsvc.AuthResultDTO, error) {
	panic("unimplemented")
}

func (s stubAuthService) Logout(ctx context.Context, accessID string) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx, accessID)
	}
	panic("unimplemented")
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "brasa-test", ExpirationMinutes: 15}
}

func TestAuthRegisterSuccess(t *testing.T) {
	userID := uuid.New()
	svc := stubAuthService{
		registerFn: func(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResultDTO, error) {
			if input.Email != "ana@example.com" {
				t.Fatalf("unexpected email %q", input.Email)
			}
			return &authsvc.AuthResultDTO{
				User:    authsvc.UserDTO{ID: userID, Name: input.Name, Email: input.Email, Role: string(enums.AppRoleCustomer)},
				Session: authsvc.SessionDTO{AccessToken: "jwt", RefreshToken: "refresh"},
			}, nil
		},
	}

	body := `{"name":"Ana Souza","email":"ana@example.com","password":"supersecret"}`
	handler := AuthRegister(svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data authsvc.AuthResultDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.User.ID != userID || envelope.Data.Session.AccessToken != "jwt" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestAuthRegisterRejectsShortPassword(t *testing.T) {
	handler := AuthRegister(stubAuthService{}, nil)
	body := `{"name":"Ana Souza","email":"ana@example.com","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthLoginBadCredentials(t *testing.T) {
	svc := stubAuthService{
		loginFn: func(ctx context.Context, input authsvc.LoginInput) (*authsvc.AuthResultDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		},
	}

	handler := AuthLogin(svc, nil)
	body := `{"email":"ana@example.com","password":"wrongwrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthLogoutWithoutBearer(t *testing.T) {
	handler := AuthLogout(stubAuthService{}, testJWTConfig(), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthLogoutRevokesSession(t *testing.T) {
	cfg := testJWTConfig()
	accessID := session.NewAccessID()
	token, err := pkgauth.MintAccessToken(cfg, time.Now(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.AppRoleCustomer,
		JTI:    accessID,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	revoked := ""
	svc := stubAuthService{
		logoutFn: func(ctx context.Context, gotAccessID string) error {
			revoked = gotAccessID
			return nil
		},
	}

	handler := AuthLogout(svc, cfg, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if revoked != accessID {
		t.Fatalf("expected session %q revoked, got %q", accessID, revoked)
	}
}
