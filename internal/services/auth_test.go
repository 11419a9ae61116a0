package services

import (
	"testing"

	"github.com/abdullah-briah/neuralinker-sub000/internal/config"
	"github.com/abdullah-briah/neuralinker-sub000/internal/utils"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/response"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	utils.SetJWTSecret("test-secret")
	return NewAuthService(newTestDB(t), &config.JWTConfig{
		Secret:            "test-secret",
		ExpireHour:        1,
		RefreshExpireHour: 24,
	})
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register(&RegisterRequest{
		Username: "Dana",
		Email:    "dana@example.com",
		Password: "secret123",
		Name:     "Dana",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Username != "dana" {
		t.Errorf("username = %q, want lowercased %q", user.Username, "dana")
	}
	if user.Password == "secret123" {
		t.Error("password must be stored hashed")
	}

	result, err := svc.Login(&LoginRequest{Username: "dana", Password: "secret123"}, "127.0.0.1", "test")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("login should issue both tokens")
	}

	claims, err := utils.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("issued token unparseable: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token user = %d, want %d", claims.UserID, user.ID)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc := newAuthService(t)

	req := &RegisterRequest{Username: "dana", Email: "dana@example.com", Password: "secret123", Name: "Dana"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := svc.Register(req)
	if !response.IsConflict(err) {
		t.Errorf("duplicate username should conflict, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(t)

	svc.Register(&RegisterRequest{Username: "dana", Email: "d@example.com", Password: "secret123", Name: "Dana"})

	_, err := svc.Login(&LoginRequest{Username: "dana", Password: "nope"}, "", "")
	var appErr *response.AppError
	if !asAppError(err, &appErr) || appErr.HTTPStatus != 401 {
		t.Errorf("want 401 AppError, got %v", err)
	}
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	svc := newAuthService(t)

	svc.Register(&RegisterRequest{Username: "dana", Email: "d@example.com", Password: "secret123", Name: "Dana"})
	login, err := svc.Login(&LoginRequest{Username: "dana", Password: "secret123"}, "", "")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	refreshed, err := svc.Refresh(login.RefreshToken, "", "")
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Error("refresh should rotate the token")
	}

	// The old token is revoked and cannot be replayed.
	_, err = svc.Refresh(login.RefreshToken, "", "")
	var appErr *response.AppError
	if !asAppError(err, &appErr) || appErr.HTTPStatus != 401 {
		t.Errorf("replayed token should be rejected with 401, got %v", err)
	}
}

func TestAuthService_RevokeRefreshToken(t *testing.T) {
	svc := newAuthService(t)

	svc.Register(&RegisterRequest{Username: "dana", Email: "d@example.com", Password: "secret123", Name: "Dana"})
	login, _ := svc.Login(&LoginRequest{Username: "dana", Password: "secret123"}, "", "")

	if err := svc.RevokeRefreshToken(login.RefreshToken); err != nil {
		t.Fatalf("RevokeRefreshToken failed: %v", err)
	}

	if _, err := svc.Refresh(login.RefreshToken, "", ""); err == nil {
		t.Error("revoked token should not refresh")
	}

	// Revoking an unknown token is a no-op.
	if err := svc.RevokeRefreshToken("deadbeef"); err != nil {
		t.Errorf("unknown token revoke should be silent, got %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc := newAuthService(t)

	user, _ := svc.Register(&RegisterRequest{Username: "dana", Email: "d@example.com", Password: "secret123", Name: "Dana"})

	if err := svc.ChangePassword(user.ID, &ChangePasswordRequest{OldPassword: "wrong", NewPassword: "newpass1"}); err == nil {
		t.Error("wrong old password should fail")
	}

	if err := svc.ChangePassword(user.ID, &ChangePasswordRequest{OldPassword: "secret123", NewPassword: "newpass1"}); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if _, err := svc.Login(&LoginRequest{Username: "dana", Password: "newpass1"}, "", ""); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
}
