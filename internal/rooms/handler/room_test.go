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
	"aircnc/pkg/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

type mockRoomService struct {
	getByHostEmailFunc func(ctx context.Context, email string) ([]*model.Room, error)
	updateStatusFunc   func(ctx context.Context, id string, booked bool) (*model.UpdateResult, error)
	deleteFunc         func(ctx context.Context, id string) (*model.DeleteResult, error)
}

func (m *mockRoomService) Create(ctx context.Context, room *model.Room) (*model.InsertResult, error) {
	return &model.InsertResult{Acknowledged: true}, nil
}

func (m *mockRoomService) Update(ctx context.Context, id string, room *model.Room) (*model.UpdateResult, error) {
	return &model.UpdateResult{Acknowledged: true}, nil
}

func (m *mockRoomService) UpdateStatus(ctx context.Context, id string, booked bool) (*model.UpdateResult, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, booked)
	}
	return &model.UpdateResult{Acknowledged: true}, nil
}

func (m *mockRoomService) GetAll(ctx context.Context) ([]*model.Room, error) {
	return []*model.Room{}, nil
}

func (m *mockRoomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	return nil, nil
}

func (m *mockRoomService) GetByHostEmail(ctx context.Context, email string) ([]*model.Room, error) {
	if m.getByHostEmailFunc != nil {
		return m.getByHostEmailFunc(ctx, email)
	}
	return []*model.Room{}, nil
}

func (m *mockRoomService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return &model.DeleteResult{Acknowledged: true}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func identityGuard() auth.Guard {
	return func(next httprouter.Handle) httprouter.Handle { return next }
}

func requestWithClaims(r *http.Request, email string) *http.Request {
	claims := &auth.Claims{Email: email, RegisteredClaims: jwt.RegisteredClaims{}}
	return r.WithContext(auth.WithClaims(r.Context(), claims))
}

func TestGetByHostEmail_MismatchIsForbiddenWithoutRead(t *testing.T) {
	serviceCalled := false
	mockService := &mockRoomService{
		getByHostEmailFunc: func(ctx context.Context, email string) ([]*model.Room, error) {
			serviceCalled = true
			return []*model.Room{}, nil
		},
	}

	h := NewRoomHandler(mockService, identityGuard(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/rooms/host@example.com", nil)
	req = requestWithClaims(req, "other@example.com")
	w := httptest.NewRecorder()

	h.GetByHostEmail(w, req, httprouter.Params{{Key: "email", Value: "host@example.com"}})

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", w.Code)
	}
	if serviceCalled {
		t.Error("service should not be called on email mismatch")
	}
}

func TestGetByHostEmail_NoClaimsIsForbidden(t *testing.T) {
	h := NewRoomHandler(&mockRoomService{}, identityGuard(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/rooms/host@example.com", nil)
	w := httptest.NewRecorder()

	h.GetByHostEmail(w, req, httprouter.Params{{Key: "email", Value: "host@example.com"}})

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", w.Code)
	}
}

func TestGetByHostEmail_MatchReturnsRooms(t *testing.T) {
	mockService := &mockRoomService{
		getByHostEmailFunc: func(ctx context.Context, email string) ([]*model.Room, error) {
			return []*model.Room{
				{Title: "Cozy cabin", Host: model.Host{Email: email}},
			}, nil
		},
	}

	h := NewRoomHandler(mockService, identityGuard(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/rooms/host@example.com", nil)
	req = requestWithClaims(req, "host@example.com")
	w := httptest.NewRecorder()

	h.GetByHostEmail(w, req, httprouter.Params{{Key: "email", Value: "host@example.com"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var rooms []model.Room
	if err := json.NewDecoder(w.Body).Decode(&rooms); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Title != "Cozy cabin" {
		t.Errorf("unexpected rooms payload: %+v", rooms)
	}
}

func TestUpdateStatus_PassesOnlyBookedFlag(t *testing.T) {
	var gotID string
	var gotBooked bool
	mockService := &mockRoomService{
		updateStatusFunc: func(ctx context.Context, id string, booked bool) (*model.UpdateResult, error) {
			gotID = id
			gotBooked = booked
			return &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}

	h := NewRoomHandler(mockService, identityGuard(), testLogger())

	body := bytes.NewBufferString(`{"status":true}`)
	req := httptest.NewRequest(http.MethodPatch, "/rooms/status/6643f9", body)
	w := httptest.NewRecorder()

	h.UpdateStatus(w, req, httprouter.Params{{Key: "id", Value: "6643f9"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if gotID != "6643f9" || !gotBooked {
		t.Errorf("expected id=6643f9 booked=true, got id=%s booked=%v", gotID, gotBooked)
	}
}

func TestDelete_ZeroCountIsSuccess(t *testing.T) {
	mockService := &mockRoomService{
		deleteFunc: func(ctx context.Context, id string) (*model.DeleteResult, error) {
			return &model.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
		},
	}

	h := NewRoomHandler(mockService, identityGuard(), testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/rooms/missing", nil)
	w := httptest.NewRecorder()

	h.Delete(w, req, httprouter.Params{{Key: "id", Value: "missing"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var result model.DeleteResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.DeletedCount != 0 {
		t.Errorf("expected deleted count 0, got %d", result.DeletedCount)
	}
}
