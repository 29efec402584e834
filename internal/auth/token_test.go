package auth

import (
	"testing"
	"time"

	"github.com/spec-kit/makeready-service/internal/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, expiresAt, err := tm.GenerateToken("principal-agent")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Error("expiry must lie in the future")
	}

	principal, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if principal != domain.Principal("principal-agent") {
		t.Errorf("expected principal-agent, got %q", principal)
	}
}

func TestTokenManager_RejectsAnonymous(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	if _, _, err := tm.GenerateToken(domain.Anonymous); err == nil {
		t.Fatal("expected error for anonymous principal")
	}
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60)
	verifier := NewTokenManager("secret-b", 60)

	token, _, err := issuer.GenerateToken("principal-agent")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	principal, err := verifier.ParseToken(token)
	if err == nil {
		t.Fatal("expected signature validation failure")
	}
	if principal != domain.Anonymous {
		t.Errorf("failed parse must yield anonymous, got %q", principal)
	}
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	if _, err := tm.ParseToken("not-a-token"); err == nil {
		t.Fatal("expected parse failure")
	}
}
