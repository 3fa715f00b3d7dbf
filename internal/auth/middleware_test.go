package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aircnc/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func TestRequired_RejectsMissingOrMalformedHeader(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	guard := Required(tokens, testLogger())

	nextCalled := false
	protected := guard(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		nextCalled = true
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no scheme", header: "sometoken"},
		{name: "wrong scheme", header: "Basic sometoken"},
		{name: "invalid token", header: "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled = false
			req := httptest.NewRequest(http.MethodGet, "/rooms/host@example.com", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			protected(w, req, httprouter.Params{})

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", w.Code)
			}
			if nextCalled {
				t.Error("next handler should not run on auth failure")
			}
		})
	}
}

func TestRequired_AttachesClaims(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	guard := Required(tokens, testLogger())

	token, err := tokens.Issue("host@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var gotEmail string
	protected := guard(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if claims := ClaimsFrom(r.Context()); claims != nil {
			gotEmail = claims.Email
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/rooms/host@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	protected(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if gotEmail != "host@example.com" {
		t.Errorf("expected claims email 'host@example.com', got %q", gotEmail)
	}
}

func TestRequired_AcceptsLowercaseBearer(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	guard := Required(tokens, testLogger())

	token, err := tokens.Issue("host@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	protected := guard(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/rooms/host@example.com", nil)
	req.Header.Set("Authorization", "bearer "+token)
	w := httptest.NewRecorder()

	protected(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}
