package service

import (
	"context"

	"aircnc/internal/users/repository"
	"aircnc/pkg/config"
	apperrors "aircnc/pkg/errors"
	"aircnc/pkg/model"
)

type UserService interface {
	Upsert(ctx context.Context, email string, user *model.User) (*model.UpdateResult, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
	cfg  *config.Config
}

func NewUserService(repo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *userService) Upsert(ctx context.Context, email string, user *model.User) (*model.UpdateResult, error) {
	if email == "" {
		return nil, apperrors.InvalidInput("Email cannot be empty")
	}

	// The path parameter is the key; it wins over whatever the body carries.
	user.Email = email

	result, err := s.repo.Upsert(ctx, email, user)
	if err != nil {
		s.cfg.Log.Error("Failed to upsert user", "email", email, "error", err)
		return nil, apperrors.Internal("Failed to save user", err)
	}

	s.cfg.Log.Info("User saved",
		"email", email,
		"matched", result.MatchedCount,
		"upserted", result.UpsertedCount,
	)
	return result, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, apperrors.InvalidInput("Email cannot be empty")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to retrieve user", "email", email, "error", err)
		return nil, apperrors.Internal("Failed to retrieve user", err)
	}

	return user, nil
}
