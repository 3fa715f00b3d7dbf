package service

import (
	"context"
	"errors"
	"testing"

	"aircnc/pkg/config"
	apperrors "aircnc/pkg/errors"
	"aircnc/pkg/logger"
	"aircnc/pkg/model"
)

type mockUserRepository struct {
	upsertFunc      func(ctx context.Context, email string, user *model.User) (*model.UpdateResult, error)
	findByEmailFunc func(ctx context.Context, email string) (*model.User, error)
}

func (m *mockUserRepository) Upsert(ctx context.Context, email string, user *model.User) (*model.UpdateResult, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, email, user)
	}
	return &model.UpdateResult{Acknowledged: true}, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: "error", Service: "test"}),
	}
}

func TestUpsert_PathEmailWinsOverBody(t *testing.T) {
	var storedEmail string
	repo := &mockUserRepository{
		upsertFunc: func(ctx context.Context, email string, user *model.User) (*model.UpdateResult, error) {
			storedEmail = user.Email
			return &model.UpdateResult{Acknowledged: true, UpsertedCount: 1}, nil
		},
	}

	svc := NewUserService(repo, testConfig())

	user := &model.User{Email: "spoofed@example.com", Role: "guest"}
	result, err := svc.Upsert(context.Background(), "real@example.com", user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storedEmail != "real@example.com" {
		t.Errorf("expected path email to win, stored %q", storedEmail)
	}
	if result.UpsertedCount != 1 {
		t.Errorf("expected upserted count 1, got %d", result.UpsertedCount)
	}
}

func TestUpsert_EmptyEmailRejected(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, testConfig())

	_, err := svc.Upsert(context.Background(), "", &model.User{})
	if err == nil {
		t.Fatal("expected error for empty email")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", apperrors.AsAppError(err).Code)
	}
}

func TestGetByEmail_NotFoundIsNotAnError(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, testConfig())

	user, err := svc.GetByEmail(context.Background(), "missing@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
}

func TestGetByEmail_RepoFailureBecomesInternal(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return nil, errors.New("connection reset")
		},
	}

	svc := NewUserService(repo, testConfig())

	_, err := svc.GetByEmail(context.Background(), "guest@example.com")
	if err == nil {
		t.Fatal("expected error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", apperrors.AsAppError(err).Code)
	}
}
