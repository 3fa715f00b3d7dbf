package repository

import (
	"context"
	"errors"
	"fmt"

	roomserrors "aircnc/internal/rooms/errors"
	"aircnc/pkg/config"
	"aircnc/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "rooms"

type RoomRepository interface {
	Insert(ctx context.Context, room *model.Room) (*model.InsertResult, error)
	UpsertByID(ctx context.Context, id string, room *model.Room) (*model.UpdateResult, error)
	UpdateStatus(ctx context.Context, id string, booked bool) (*model.UpdateResult, error)
	FindAll(ctx context.Context) ([]*model.Room, error)
	FindByID(ctx context.Context, id string) (*model.Room, error)
	FindByHostEmail(ctx context.Context, email string) ([]*model.Room, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type mongoRoomRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoRoomRepository(cfg *config.Config) RoomRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoRoomRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoRoomRepository) Insert(ctx context.Context, room *model.Room) (*model.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, room)
	if err != nil {
		return nil, fmt.Errorf("failed to insert room: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		room.ID = oid
	}

	return &model.InsertResult{
		Acknowledged: true,
		InsertedID:   result.InsertedID,
	}, nil
}

func (r *mongoRoomRepository) UpsertByID(ctx context.Context, id string, room *model.Room) (*model.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", roomserrors.ErrInvalidID, id)
	}

	room.ID = primitive.NilObjectID // never $set the key itself
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": room}
	opts := options.Update().SetUpsert(true)

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return &model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
		UpsertedID:    result.UpsertedID,
	}, nil
}

// UpdateStatus touches only the booked flag; every other room attribute is
// left as-is.
func (r *mongoRoomRepository) UpdateStatus(ctx context.Context, id string, booked bool) (*model.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", roomserrors.ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{"booked": booked}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update room status: %w", err)
	}

	return &model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}, nil
}

func (r *mongoRoomRepository) FindAll(ctx context.Context) ([]*model.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	defer cursor.Close(ctx)

	rooms := []*model.Room{}
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}

	return rooms, nil
}

// FindByID returns (nil, nil) when no room matches.
func (r *mongoRoomRepository) FindByID(ctx context.Context, id string) (*model.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", roomserrors.ErrInvalidID, id)
	}

	var room model.Room
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}

	return &room, nil
}

func (r *mongoRoomRepository) FindByHostEmail(ctx context.Context, email string) ([]*model.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"host.email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find rooms by host: %w", err)
	}
	defer cursor.Close(ctx)

	rooms := []*model.Room{}
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}

	return rooms, nil
}

// Delete removes the room by id. Zero deletions is a valid outcome, not an
// error.
func (r *mongoRoomRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", roomserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete room: %w", err)
	}

	return &model.DeleteResult{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	}, nil
}
