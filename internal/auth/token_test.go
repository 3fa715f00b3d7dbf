package auth

import (
	"testing"
	"time"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	token, err := tokens.Issue("guest@example.com")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error verifying token: %v", err)
	}
	if claims.Email != "guest@example.com" {
		t.Errorf("expected email claim 'guest@example.com', got %q", claims.Email)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining > time.Hour || remaining < 59*time.Minute {
		t.Errorf("expected expiry about 1 hour out, got %s", remaining)
	}
}

func TestTokenService_RepeatedIssueYieldsValidTokens(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	first, err := tokens.Issue("guest@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := tokens.Issue("guest@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, token := range []string{first, second} {
		if _, err := tokens.Verify(token); err != nil {
			t.Errorf("expected token to verify, got error: %v", err)
		}
	}
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	tokens := NewTokenService("test-secret", -time.Minute)

	token, err := tokens.Issue("guest@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := tokens.Verify(token); err == nil {
		t.Error("expected verification of an expired token to fail")
	}
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("guest@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("expected verification with a different secret to fail")
	}
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	if _, err := tokens.Verify("not-a-token"); err == nil {
		t.Error("expected verification of garbage input to fail")
	}
}
