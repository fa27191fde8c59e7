package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

// User is keyed by email. An empty role means an ordinary patient. Any other
// profile fields the client sent on login live in Extra.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
	Extra Extra              `bson:",inline" json:"-"`
}

var userFields = []string{"_id", "email", "name", "role"}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u User) MarshalJSON() ([]byte, error) {
	typed := map[string]interface{}{"_id": u.ID, "email": u.Email}
	if u.Name != "" {
		typed["name"] = u.Name
	}
	if u.Role != "" {
		typed["role"] = u.Role
	}
	return flatten(u.Extra, typed)
}

func (u *User) UnmarshalJSON(data []byte) error {
	type user User
	var typed user
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}
	extra, err := leftover(data, userFields...)
	if err != nil {
		return err
	}
	typed.Extra = extra
	*u = User(typed)
	return nil
}

// UserUpdate is the body of PUT /user/:email, applied field by field with $set.
// The email always comes from the path.
type UserUpdate map[string]interface{}

// Validate rejects values that cannot be stored in the typed user fields.
func (u UserUpdate) Validate() error {
	for _, key := range []string{"name", "role"} {
		v, ok := u[key]
		if !ok || v == nil {
			continue
		}
		if _, isString := v.(string); !isString {
			return fmt.Errorf("%s must be a string", key)
		}
	}
	return nil
}

// Fields returns the fields to $set for email: the body minus _id, with email
// taken from the path. stripRole drops a client-supplied role.
func (u UserUpdate) Fields(email string, stripRole bool) map[string]interface{} {
	set := make(map[string]interface{}, len(u)+1)
	for k, v := range u {
		set[k] = v
	}
	delete(set, "_id")
	if stripRole {
		delete(set, "role")
	}
	set["email"] = email
	return set
}

// UpsertUserResponse is returned after a login upsert.
type UpsertUserResponse struct {
	Result UpdateResult `json:"result"`
	Token  string       `json:"token"`
}
