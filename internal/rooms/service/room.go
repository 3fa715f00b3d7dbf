package service

import (
	"context"

	"aircnc/internal/rooms/repository"
	"aircnc/pkg/config"
	apperrors "aircnc/pkg/errors"
	"aircnc/pkg/model"
)

type RoomService interface {
	Create(ctx context.Context, room *model.Room) (*model.InsertResult, error)
	Update(ctx context.Context, id string, room *model.Room) (*model.UpdateResult, error)
	UpdateStatus(ctx context.Context, id string, booked bool) (*model.UpdateResult, error)
	GetAll(ctx context.Context) ([]*model.Room, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
	GetByHostEmail(ctx context.Context, email string) ([]*model.Room, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type roomService struct {
	repo repository.RoomRepository
	cfg  *config.Config
}

func NewRoomService(repo repository.RoomRepository, cfg *config.Config) RoomService {
	return &roomService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *roomService) Create(ctx context.Context, room *model.Room) (*model.InsertResult, error) {
	result, err := s.repo.Insert(ctx, room)
	if err != nil {
		s.cfg.Log.Error("Failed to create room", "error", err)
		return nil, apperrors.Internal("Failed to create room", err)
	}

	s.cfg.Log.Info("Room created", "id", room.ID.Hex(), "host", room.Host.Email)
	return result, nil
}

func (s *roomService) Update(ctx context.Context, id string, room *model.Room) (*model.UpdateResult, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	result, err := s.repo.UpsertByID(ctx, id, room)
	if err != nil {
		s.cfg.Log.Error("Failed to update room", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update room", err)
	}

	s.cfg.Log.Info("Room updated", "id", id, "matched", result.MatchedCount)
	return result, nil
}

func (s *roomService) UpdateStatus(ctx context.Context, id string, booked bool) (*model.UpdateResult, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	result, err := s.repo.UpdateStatus(ctx, id, booked)
	if err != nil {
		s.cfg.Log.Error("Failed to update room status", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update room status", err)
	}

	s.cfg.Log.Info("Room status updated", "id", id, "booked", booked)
	return result, nil
}

func (s *roomService) GetAll(ctx context.Context) ([]*model.Room, error) {
	rooms, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list rooms", "error", err)
		return nil, apperrors.Internal("Failed to retrieve rooms", err)
	}
	return rooms, nil
}

func (s *roomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.cfg.Log.Error("Failed to retrieve room", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve room", err)
	}
	return room, nil
}

func (s *roomService) GetByHostEmail(ctx context.Context, email string) ([]*model.Room, error) {
	rooms, err := s.repo.FindByHostEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to list rooms by host", "email", email, "error", err)
		return nil, apperrors.Internal("Failed to retrieve rooms", err)
	}
	return rooms, nil
}

func (s *roomService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	result, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.cfg.Log.Error("Failed to delete room", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to delete room", err)
	}

	s.cfg.Log.Info("Room deleted", "id", id, "deleted", result.DeletedCount)
	return result, nil
}
