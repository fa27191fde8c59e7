package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a patient's reservation of one slot of one service on one date.
// At most one booking exists per (treatment, date, patient).
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Patient     string             `bson:"patient" json:"patient" binding:"required"`
	PatientName string             `bson:"patientName" json:"patientName"`
	Treatment   string             `bson:"treatment" json:"treatment" binding:"required"`
	Date        string             `bson:"date" json:"date" binding:"required"`
	Slot        string             `bson:"slot" json:"slot" binding:"required"`
}

// BookingResponse is the body of POST /booking. Exactly one of Result or Booking is set.
type BookingResponse struct {
	Success bool          `json:"success"`
	Result  *InsertResult `json:"result,omitempty"`
	Booking *Booking      `json:"booking,omitempty"`
}
