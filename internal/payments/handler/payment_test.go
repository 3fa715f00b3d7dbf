package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aircnc/internal/auth"
	"aircnc/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type mockPaymentService struct {
	createIntentFunc func(ctx context.Context, price float64) (string, error)
}

func (m *mockPaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if m.createIntentFunc != nil {
		return m.createIntentFunc(ctx, price)
	}
	return "pi_secret", nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func identityGuard() auth.Guard {
	return func(next httprouter.Handle) httprouter.Handle { return next }
}

func TestCreateIntent_ReturnsClientSecret(t *testing.T) {
	var gotPrice float64
	mockService := &mockPaymentService{
		createIntentFunc: func(ctx context.Context, price float64) (string, error) {
			gotPrice = price
			return "pi_123_secret", nil
		},
	}

	h := NewPaymentHandler(mockService, identityGuard(), testLogger())

	body := bytes.NewBufferString(`{"price":99.99}`)
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", body)
	w := httptest.NewRecorder()

	h.CreateIntent(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if gotPrice != 99.99 {
		t.Errorf("expected price 99.99, got %v", gotPrice)
	}

	var resp PaymentIntentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ClientSecret != "pi_123_secret" {
		t.Errorf("unexpected client secret %q", resp.ClientSecret)
	}
}

func TestCreateIntent_ZeroPriceSkipsProvider(t *testing.T) {
	serviceCalled := false
	mockService := &mockPaymentService{
		createIntentFunc: func(ctx context.Context, price float64) (string, error) {
			serviceCalled = true
			return "pi_secret", nil
		},
	}

	h := NewPaymentHandler(mockService, identityGuard(), testLogger())

	tests := []struct {
		name string
		body string
	}{
		{name: "zero price", body: `{"price":0}`},
		{name: "missing price", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceCalled = false
			req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.CreateIntent(w, req, httprouter.Params{})

			if w.Code != http.StatusNoContent {
				t.Errorf("expected status 204, got %d", w.Code)
			}
			if w.Body.Len() != 0 {
				t.Errorf("expected empty body, got %q", w.Body.String())
			}
			if serviceCalled {
				t.Error("payment provider should not be called for a zero price")
			}
		})
	}
}

func TestCreateIntent_InvalidBodyIsBadRequest(t *testing.T) {
	h := NewPaymentHandler(&mockPaymentService{}, identityGuard(), testLogger())

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(`{bad`))
	w := httptest.NewRecorder()

	h.CreateIntent(w, req, httprouter.Params{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
