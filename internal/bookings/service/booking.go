package service

import (
	"context"
	"fmt"

	"aircnc/internal/bookings/repository"
	"aircnc/internal/bookings/validator"
	"aircnc/internal/events"
	"aircnc/internal/notifications"
	"aircnc/pkg/config"
	apperrors "aircnc/pkg/errors"
	"aircnc/pkg/model"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (*model.InsertResult, error)
	GetByGuestEmail(ctx context.Context, email string) ([]*model.Booking, error)
	GetByHostEmail(ctx context.Context, email string) ([]*model.Booking, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	notifier  notifications.Notifier
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	bookingValidator *validator.BookingValidator,
	notifier notifications.Notifier,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: bookingValidator,
		notifier:  notifier,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create persists the booking, then queues exactly two notification
// attempts (guest confirmation, host notice) and emits a booking.created
// event. Notification and event delivery are best-effort; a relay or broker
// failure never fails the booking.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (*model.InsertResult, error) {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	result, err := s.repo.Insert(ctx, booking)
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	bookingID := booking.ID.Hex()

	s.notifier.Notify(notifications.Notification{
		To:      booking.Guest.Email,
		Subject: "Booking Successful!",
		Message: fmt.Sprintf("Booking Id: %s, TransactionId: %s", bookingID, booking.TransactionID),
	})
	s.notifier.Notify(notifications.Notification{
		To:      booking.Host,
		Subject: "Your room got booked!",
		Message: fmt.Sprintf("Booking Id: %s, TransactionId: %s. Check dashboard for more info", bookingID, booking.TransactionID),
	})

	s.publisher.Publish(ctx, bookingID, events.TypeBookingCreated, booking)

	s.cfg.Log.Info("Booking created",
		"id", bookingID,
		"room_id", booking.RoomID,
		"guest", booking.Guest.Email,
		"host", booking.Host,
		"transaction_id", booking.TransactionID,
	)
	return result, nil
}

// GetByGuestEmail returns an empty list when no email filter is supplied;
// an absent filter never means "list all".
func (s *bookingService) GetByGuestEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	if email == "" {
		return []*model.Booking{}, nil
	}

	bookings, err := s.repo.FindByGuestEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings by guest", "email", email, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) GetByHostEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	if email == "" {
		return []*model.Booking{}, nil
	}

	bookings, err := s.repo.FindByHostEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings by host", "email", email, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	result, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to delete booking", err)
	}

	s.publisher.Publish(ctx, id, events.TypeBookingDeleted, map[string]any{"id": id})

	s.cfg.Log.Info("Booking deleted", "id", id, "deleted", result.DeletedCount)
	return result, nil
}
