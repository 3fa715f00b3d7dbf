package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Guest struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
	Email string `json:"email" bson:"email" validate:"required,email"`
}

// Booking snapshots guest and host emails at creation time; no referential
// integrity is enforced against the rooms collection.
type Booking struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Guest         Guest              `json:"guest" bson:"guest" validate:"required"`
	Host          string             `json:"host" bson:"host" validate:"required,email"`
	RoomID        string             `json:"roomId" bson:"roomId" validate:"required"`
	TransactionID string             `json:"transactionId" bson:"transactionId" validate:"required"`
	From          *time.Time         `json:"from,omitempty" bson:"from,omitempty"`
	To            *time.Time         `json:"to,omitempty" bson:"to,omitempty"`
	Price         float64            `json:"price,omitempty" bson:"price,omitempty"`
	CreatedAt     time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
