package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is keyed by email; the upsert path guarantees at most one document
// per email regardless of how many times the frontend replays the save.
type User struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email  string             `json:"email" bson:"email" validate:"required,email"`
	Name   string             `json:"name,omitempty" bson:"name,omitempty"`
	Image  string             `json:"image,omitempty" bson:"image,omitempty"`
	Role   string             `json:"role,omitempty" bson:"role,omitempty"`
	Status string             `json:"status,omitempty" bson:"status,omitempty"`
}
