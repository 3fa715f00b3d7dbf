package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Host struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
	Email string `json:"email" bson:"email" validate:"required,email"`
}

type Room struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title,omitempty" bson:"title,omitempty"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	From        *time.Time         `json:"from,omitempty" bson:"from,omitempty"`
	To          *time.Time         `json:"to,omitempty" bson:"to,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	TotalGuests int                `json:"total_guest,omitempty" bson:"total_guest,omitempty"`
	Bedrooms    int                `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms   int                `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	Host        Host               `json:"host" bson:"host"`
	Booked      bool               `json:"booked" bson:"booked"`
}

// RoomStatusUpdate carries the single field the status route may touch.
type RoomStatusUpdate struct {
	Status bool `json:"status"`
}
