package repository

import (
	"context"
	"fmt"
	"time"

	bookingserrors "aircnc/internal/bookings/errors"
	"aircnc/pkg/config"
	"aircnc/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "bookings"

type BookingRepository interface {
	Insert(ctx context.Context, booking *model.Booking) (*model.InsertResult, error)
	FindByGuestEmail(ctx context.Context, email string) ([]*model.Booking, error)
	FindByHostEmail(ctx context.Context, email string) ([]*model.Booking, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type mongoBookingRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBookingRepository(cfg *config.Config) BookingRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoBookingRepository) Insert(ctx context.Context, booking *model.Booking) (*model.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	booking.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}

	return &model.InsertResult{
		Acknowledged: true,
		InsertedID:   result.InsertedID,
	}, nil
}

func (r *mongoBookingRepository) FindByGuestEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	return r.findByFilter(ctx, bson.M{"guest.email": email})
}

func (r *mongoBookingRepository) FindByHostEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	return r.findByFilter(ctx, bson.M{"host": email})
}

func (r *mongoBookingRepository) findByFilter(ctx context.Context, filter bson.M) ([]*model.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []*model.Booking{}
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

// Delete removes the booking by id; zero deletions is a valid outcome.
func (r *mongoBookingRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}

	return &model.DeleteResult{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	}, nil
}
