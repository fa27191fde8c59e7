package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a bookable treatment with a fixed slot inventory.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots,omitempty" json:"slots,omitempty"`
}

// AvailableService is a Service annotated with the slots still open on one date.
// Available is computed per request and never stored.
type AvailableService struct {
	Service
	Available []string `json:"available"`
}
