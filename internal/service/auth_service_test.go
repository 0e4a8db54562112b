package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"staffmatch/internal/dto"
	"staffmatch/pkg/auth"

	"go.uber.org/zap"
)

func newAuthService(store UserStore) *AuthService {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(store, jwtManager, zap.NewNop())
}

func registerRequest(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         email,
		Password:      "correct-horse",
		DepartmentID:  1,
		DesignationID: 2,
	}
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	registered, err := svc.Register(context.Background(), registerRequest("ada@example.com"))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if registered.Email != "ada@example.com" || registered.FirstName != "Ada" {
		t.Fatalf("unexpected registered user: %+v", registered)
	}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ada@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.AccessToken == "" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected token response: %+v", resp)
	}
	if resp.User.ID != registered.ID || resp.User.DepartmentID != 1 || resp.User.DesignationID != 2 {
		t.Fatalf("login must echo registration attributes: %+v", resp.User)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	if _, err := svc.Register(context.Background(), registerRequest("dup@example.com")); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	_, err := svc.Register(context.Background(), registerRequest("dup@example.com"))
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// first user must survive the failed attempt
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "dup@example.com",
		Password: "correct-horse",
	}); err != nil {
		t.Fatalf("first user no longer queryable: %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthService(newFakeUserStore())
	if _, err := svc.Register(context.Background(), registerRequest("ada@example.com")); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ada@example.com",
		Password: "wrong",
	})
	_, unknownEmail := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody@example.com",
		Password: "correct-horse",
	})

	if !errors.Is(wrongPass, ErrInvalidCredentials) || !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Fatalf("both failures must be ErrInvalidCredentials: %v / %v", wrongPass, unknownEmail)
	}
	if wrongPass.Error() != unknownEmail.Error() {
		t.Fatalf("error text must not reveal the failure cause")
	}
}

func TestGetUserByTokenClaims(t *testing.T) {
	svc := newAuthService(newFakeUserStore())
	registered, err := svc.Register(context.Background(), registerRequest("ada@example.com"))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	user, err := svc.GetUser(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetUser(context.Background(), "not-a-uuid"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for malformed id, got %v", err)
	}
}
