package auth

import (
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("s3cret-password", hash) {
		t.Fatalf("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatalf("wrong password accepted")
	}
}

func TestJWTGenerateAndValidate(t *testing.T) {
	m := NewJWTManager("unit-test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken("user-123", "ada@example.com")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.UserID != "user-123" || claims.Email != "ada@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("unit-test-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateToken("user-123", "ada@example.com")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if _, err := m.ValidateToken(token); err == nil {
		t.Fatalf("expired token accepted")
	}
}

func TestJWTRejectsForeignSignature(t *testing.T) {
	issuer := NewJWTManager("issuer-secret", time.Hour, 24*time.Hour)
	verifier := NewJWTManager("other-secret", time.Hour, 24*time.Hour)

	token, err := issuer.GenerateToken("user-123", "ada@example.com")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatalf("token with foreign signature accepted")
	}
}

func TestRefreshTokenCarriesUserID(t *testing.T) {
	m := NewJWTManager("unit-test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}
	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}
