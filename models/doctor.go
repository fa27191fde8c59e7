package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor is managed by admins only. Fields beyond the typed ones are kept in
// Extra and stored as sent.
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name" binding:"required"`
	Email     string             `bson:"email" json:"email" binding:"required"`
	Specialty string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Img       string             `bson:"img,omitempty" json:"img,omitempty"`
	Extra     Extra              `bson:",inline" json:"-"`
}

var doctorFields = []string{"_id", "name", "email", "specialty", "img"}

func (d Doctor) MarshalJSON() ([]byte, error) {
	typed := map[string]interface{}{"name": d.Name, "email": d.Email}
	if !d.ID.IsZero() {
		typed["_id"] = d.ID
	}
	if d.Specialty != "" {
		typed["specialty"] = d.Specialty
	}
	if d.Img != "" {
		typed["img"] = d.Img
	}
	return flatten(d.Extra, typed)
}

func (d *Doctor) UnmarshalJSON(data []byte) error {
	type doctor Doctor
	var typed doctor
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}
	extra, err := leftover(data, doctorFields...)
	if err != nil {
		return err
	}
	typed.Extra = extra
	*d = Doctor(typed)
	return nil
}
