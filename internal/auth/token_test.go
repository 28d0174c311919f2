package auth

import (
	"testing"
	"time"

	"github.com/deskflow/helpdesk/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 24)
	user := &domain.User{ID: "u1", Email: "alice@company.com", Role: domain.RoleUser}

	token, expiresAt, err := tm.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if until := time.Until(expiresAt); until < 23*time.Hour {
		t.Fatalf("expected ~24h expiry, got %v", until)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "alice@company.com" || claims.Role != domain.RoleUser {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 24)
	verifier := NewTokenManager("secret-b", 24)
	token, _, err := issuer.GenerateToken(&domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatalf("expected signature verification to fail")
	}
}

func TestTokenRejectsMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 24)
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := tm.ParseToken(token); err == nil {
			t.Fatalf("expected malformed token %q to fail", token)
		}
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	tm := &TokenManager{secret: []byte("test-secret"), ttl: -time.Hour}
	token, _, err := tm.GenerateToken(&domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleAgent})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := tm.ParseToken(token); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}
